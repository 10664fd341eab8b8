package protocol

import "errors"

// ErrWrongLength is returned by Decode* functions when the input slice is
// not exactly the length required for that request's declared type.
var ErrWrongLength = errors.New("protocol: wrong length for declared type")

// Cookie is the 48-byte secret returned with a RESERVATION response and
// required, byte-for-byte, to redeem a GET_TICKETS request.
type Cookie [CookieSize]byte

// TicketCode is one generated 7-byte ticket identifier.
type TicketCode [TicketCodeSize]byte

// GetReservationRequest is the decoded body of a GET_RESERVATION datagram:
// [3][event_id:u32][ticket_count:u16].
type GetReservationRequest struct {
	EventID     uint32
	TicketCount uint16
}

// DecodeGetReservation decodes a GET_RESERVATION request. buf must be
// exactly LenGetReservation bytes, type byte included.
func DecodeGetReservation(buf []byte) (GetReservationRequest, error) {
	if len(buf) != LenGetReservation {
		return GetReservationRequest{}, ErrWrongLength
	}
	c := NewReadCursor(buf[1:])
	eventID, _ := c.GetUint32()
	ticketCount, _ := c.GetUint16()
	return GetReservationRequest{EventID: eventID, TicketCount: ticketCount}, nil
}

// GetTicketsRequest is the decoded body of a GET_TICKETS datagram:
// [5][reservation_id:u32][cookie:48].
type GetTicketsRequest struct {
	ReservationID uint32
	Cookie        Cookie
}

// DecodeGetTickets decodes a GET_TICKETS request. buf must be exactly
// LenGetTickets bytes, type byte included.
func DecodeGetTickets(buf []byte) (GetTicketsRequest, error) {
	if len(buf) != LenGetTickets {
		return GetTicketsRequest{}, ErrWrongLength
	}
	c := NewReadCursor(buf[1:])
	reservationID, _ := c.GetUint32()
	cookieBytes, _ := c.GetBytes(CookieSize)
	var cookie Cookie
	copy(cookie[:], cookieBytes)
	return GetTicketsRequest{ReservationID: reservationID, Cookie: cookie}, nil
}

// ReservationResponse is the RESERVATION reply:
// [4][reservation_id:u32][event_id:u32][ticket_count:u16][cookie:48][expiration_time:u64].
type ReservationResponse struct {
	ReservationID  uint32
	EventID        uint32
	TicketCount    uint16
	Cookie         Cookie
	ExpirationTime uint64
}

// Encode writes the response into buf (which must be at least LenReservation
// bytes) and returns the written slice.
func (r ReservationResponse) Encode(buf []byte) []byte {
	c := NewCursor(buf)
	c.PutUint8(uint8(TypeReservation))
	c.PutUint32(r.ReservationID)
	c.PutUint32(r.EventID)
	c.PutUint16(r.TicketCount)
	c.PutBytes(r.Cookie[:])
	c.PutUint64(r.ExpirationTime)
	return c.Bytes()
}

// BadRequestResponse is the BAD_REQUEST reply: [255][id:u32].
type BadRequestResponse struct {
	ID uint32
}

func (r BadRequestResponse) Encode(buf []byte) []byte {
	c := NewCursor(buf)
	c.PutUint8(uint8(TypeBadRequest))
	c.PutUint32(r.ID)
	return c.Bytes()
}

// TicketsResponse is the TICKETS reply:
// [6][reservation_id:u32][ticket_count:u16] (ticket:7 bytes)*ticket_count.
type TicketsResponse struct {
	ReservationID uint32
	Tickets       []TicketCode
}

// Encode writes the response into buf, which must be at least
// LenTicketsHeader+7*len(Tickets) bytes.
func (r TicketsResponse) Encode(buf []byte) []byte {
	c := NewCursor(buf)
	c.PutUint8(uint8(TypeTickets))
	c.PutUint32(r.ReservationID)
	c.PutUint16(uint16(len(r.Tickets)))
	for _, t := range r.Tickets {
		c.PutBytes(t[:])
	}
	return c.Bytes()
}

// EventRecord is the encoding-time view of one catalogue entry; it exists so
// this package stays independent of the catalog package's storage layout.
type EventRecord struct {
	EventID          uint32
	TicketsAvailable uint16
	Description      []byte
}

// EncodeEvents writes an EVENTS response into buf, appending records in the
// order given until the next record would overflow buf's capacity (which
// callers size to MaxDatagramSize). Remaining records are silently omitted;
// the reply is valid even if empty after the type byte.
func EncodeEvents(buf []byte, events []EventRecord) []byte {
	c := NewCursor(buf)
	c.PutUint8(uint8(TypeEvents))
	for _, e := range events {
		need := 4 + 2 + 1 + len(e.Description)
		if c.Remaining() < need {
			break
		}
		c.PutUint32(e.EventID)
		c.PutUint16(e.TicketsAvailable)
		c.PutUint8(uint8(len(e.Description)))
		c.PutBytes(e.Description)
	}
	return c.Bytes()
}

// DecodeEvents parses an EVENTS response (type byte included), used by
// round-trip tests and any future client. It stops at the first truncated
// trailing record rather than erroring, since a well-formed encoder never
// produces one.
func DecodeEvents(buf []byte) ([]EventRecord, error) {
	if len(buf) < 1 || MessageType(buf[0]) != TypeEvents {
		return nil, ErrWrongLength
	}
	c := NewReadCursor(buf[1:])
	var out []EventRecord
	for c.Remaining() > 0 {
		eventID, err := c.GetUint32()
		if err != nil {
			break
		}
		ticketsAvailable, err := c.GetUint16()
		if err != nil {
			break
		}
		descLen, err := c.GetUint8()
		if err != nil {
			break
		}
		desc, err := c.GetBytes(int(descLen))
		if err != nil {
			break
		}
		out = append(out, EventRecord{EventID: eventID, TicketsAvailable: ticketsAvailable, Description: desc})
	}
	return out, nil
}

// DecodeReservation parses a RESERVATION response (type byte included).
func DecodeReservation(buf []byte) (ReservationResponse, error) {
	if len(buf) != LenReservation || MessageType(buf[0]) != TypeReservation {
		return ReservationResponse{}, ErrWrongLength
	}
	c := NewReadCursor(buf[1:])
	reservationID, _ := c.GetUint32()
	eventID, _ := c.GetUint32()
	ticketCount, _ := c.GetUint16()
	cookieBytes, _ := c.GetBytes(CookieSize)
	expirationTime, _ := c.GetUint64()
	var cookie Cookie
	copy(cookie[:], cookieBytes)
	return ReservationResponse{
		ReservationID:  reservationID,
		EventID:        eventID,
		TicketCount:    ticketCount,
		Cookie:         cookie,
		ExpirationTime: expirationTime,
	}, nil
}

// DecodeBadRequest parses a BAD_REQUEST response (type byte included).
func DecodeBadRequest(buf []byte) (BadRequestResponse, error) {
	if len(buf) != LenBadRequest || MessageType(buf[0]) != TypeBadRequest {
		return BadRequestResponse{}, ErrWrongLength
	}
	c := NewReadCursor(buf[1:])
	id, _ := c.GetUint32()
	return BadRequestResponse{ID: id}, nil
}

// DecodeTickets parses a TICKETS response (type byte included).
func DecodeTickets(buf []byte) (TicketsResponse, error) {
	if len(buf) < LenTicketsHeader || MessageType(buf[0]) != TypeTickets {
		return TicketsResponse{}, ErrWrongLength
	}
	c := NewReadCursor(buf[1:])
	reservationID, err := c.GetUint32()
	if err != nil {
		return TicketsResponse{}, err
	}
	count, err := c.GetUint16()
	if err != nil {
		return TicketsResponse{}, err
	}
	if c.Remaining() != int(count)*TicketCodeSize {
		return TicketsResponse{}, ErrWrongLength
	}
	tickets := make([]TicketCode, count)
	for i := range tickets {
		b, err := c.GetBytes(TicketCodeSize)
		if err != nil {
			return TicketsResponse{}, err
		}
		copy(tickets[i][:], b)
	}
	return TicketsResponse{ReservationID: reservationID, Tickets: tickets}, nil
}
