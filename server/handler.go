package server

import (
	"time"

	"github.com/kresge/ticketsrv/catalog"
	"github.com/kresge/ticketsrv/internal/logging"
	"github.com/kresge/ticketsrv/protocol"
	"github.com/kresge/ticketsrv/reservation"
)

// Handler implements the per-datagram state machine: sweep, shape-check,
// dispatch, encode. It owns no I/O; Endpoint drives it with the bytes it
// read off the socket and gives it a reusable reply buffer to encode into.
type Handler struct {
	catalog *catalog.Catalog
	ledger  *reservation.Ledger
	timeout time.Duration
	log     *logging.Logger
}

// NewHandler builds a Handler over cat and ledger. timeout is the
// reservation hold duration applied to every GET_RESERVATION.
func NewHandler(cat *catalog.Catalog, ledger *reservation.Ledger, timeout time.Duration) *Handler {
	return &Handler{catalog: cat, ledger: ledger, timeout: timeout, log: logging.Default()}
}

// HandleDatagram runs one request to completion: it always sweeps expiries
// first, then either returns (reply, true) to send back to the request's
// source, or (nil, false) when the datagram is malformed and must be
// silently dropped.
func (h *Handler) HandleDatagram(req []byte, replyBuf []byte, now time.Time) ([]byte, bool) {
	before := h.ledger.Len()
	h.ledger.Sweep(now)
	if reclaimed := before - h.ledger.Len(); reclaimed > 0 {
		h.log.Infof("sweep reclaimed seats from %d expired reservation(s)", reclaimed)
	}

	if len(req) == 0 {
		return nil, false
	}

	switch protocol.MessageType(req[0]) {
	case protocol.TypeGetEvents:
		if len(req) != protocol.LenGetEvents {
			h.log.Infof("dropping malformed GET_EVENTS (length %d)", len(req))
			return nil, false
		}
		return h.handleGetEvents(replyBuf), true

	case protocol.TypeGetReservation:
		if len(req) != protocol.LenGetReservation {
			h.log.Infof("dropping malformed GET_RESERVATION (length %d)", len(req))
			return nil, false
		}
		return h.handleGetReservation(req, replyBuf, now), true

	case protocol.TypeGetTickets:
		if len(req) != protocol.LenGetTickets {
			h.log.Infof("dropping malformed GET_TICKETS (length %d)", len(req))
			return nil, false
		}
		return h.handleGetTickets(req, replyBuf, now), true

	default:
		h.log.Infof("dropping datagram with unknown type %d", req[0])
		return nil, false
	}
}

func (h *Handler) handleGetEvents(replyBuf []byte) []byte {
	events := h.catalog.IterInIDOrder()
	records := make([]protocol.EventRecord, len(events))
	for i, e := range events {
		records[i] = protocol.EventRecord{
			EventID:          e.ID,
			TicketsAvailable: e.TicketsAvailable,
			Description:      e.Description,
		}
	}
	return protocol.EncodeEvents(replyBuf, records)
}

func (h *Handler) handleGetReservation(req []byte, replyBuf []byte, now time.Time) []byte {
	// Shape already validated by the caller; the decode error path is
	// unreachable.
	reqMsg, _ := protocol.DecodeGetReservation(req)

	res, err := h.ledger.Create(reqMsg.EventID, reqMsg.TicketCount, now, h.timeout)
	if err != nil {
		return protocol.BadRequestResponse{ID: reqMsg.EventID}.Encode(replyBuf)
	}

	resp := protocol.ReservationResponse{
		ReservationID:  res.ID,
		EventID:        res.EventID,
		TicketCount:    res.TicketCount,
		Cookie:         res.Cookie,
		ExpirationTime: uint64(res.ExpirationTime),
	}
	return resp.Encode(replyBuf)
}

func (h *Handler) handleGetTickets(req []byte, replyBuf []byte, now time.Time) []byte {
	reqMsg, _ := protocol.DecodeGetTickets(req)

	res, err := h.ledger.Redeem(reqMsg.ReservationID, reqMsg.Cookie, now)
	if err != nil {
		return protocol.BadRequestResponse{ID: reqMsg.ReservationID}.Encode(replyBuf)
	}

	resp := protocol.TicketsResponse{
		ReservationID: res.ID,
		Tickets:       res.Tickets,
	}
	return resp.Encode(replyBuf)
}
