package reservation

import (
	"errors"
	"time"

	"github.com/kresge/ticketsrv/catalog"
	"github.com/kresge/ticketsrv/protocol"
)

var (
	ErrZeroTickets        = errors.New("reservation: ticket count must be positive")
	ErrUnknownEvent       = errors.New("reservation: unknown event")
	ErrInsufficientSeats  = errors.New("reservation: insufficient seats")
	ErrResponseTooLarge   = errors.New("reservation: response would exceed datagram cap")
	ErrUnknownReservation = errors.New("reservation: unknown reservation")
	ErrWrongCookie        = errors.New("reservation: wrong cookie")
	ErrExpired            = errors.New("reservation: expired")
)

// firstReservationID is the starting value of the reservation-id counter.
// It is chosen well above any realistic event-id range so the two id spaces
// can never collide inside a BAD_REQUEST echo.
const firstReservationID = 1_000_000

// maxTicketsPerReservation bounds ticket_count so that the resulting
// TICKETS response (7 + 7*ticket_count bytes) never exceeds the datagram
// cap.
const maxTicketsPerReservation = (protocol.MaxDatagramSize - protocol.LenTicketsHeader) / protocol.TicketCodeSize

// Ledger owns reservation id assignment, cookie issuance, ticket generation,
// and expiry. It mutates the catalog it was built with whenever a
// reservation is created or expires unredeemed. Like Catalog, it needs no
// internal locking: the single request loop is its only caller.
type Ledger struct {
	catalog *catalog.Catalog

	entries map[uint32]*Reservation

	nextReservationID uint32
	nextTicketID      uint64
}

// NewLedger creates an empty ledger backed by cat.
func NewLedger(cat *catalog.Catalog) *Ledger {
	return &Ledger{
		catalog:           cat,
		entries:           make(map[uint32]*Reservation),
		nextReservationID: firstReservationID,
	}
}

// Create validates and, on success, opens a reservation for ticketCount
// tickets on eventID, expiring at now+timeout. Preconditions are checked in
// a fixed order, so the first violated one determines the error:
// ticketCount must be positive, the event must exist, it must have enough
// seats, and the eventual TICKETS response must fit one datagram.
func (l *Ledger) Create(eventID uint32, ticketCount uint16, now time.Time, timeout time.Duration) (*Reservation, error) {
	if ticketCount == 0 {
		return nil, ErrZeroTickets
	}
	ev, ok := l.catalog.Get(eventID)
	if !ok {
		return nil, ErrUnknownEvent
	}
	if ev.TicketsAvailable < ticketCount {
		return nil, ErrInsufficientSeats
	}
	if ticketCount > maxTicketsPerReservation {
		return nil, ErrResponseTooLarge
	}

	cookie, err := newCookie()
	if err != nil {
		return nil, err
	}

	if err := l.catalog.Reserve(eventID, ticketCount); err != nil {
		return nil, err
	}

	res := &Reservation{
		ID:             l.nextReservationID,
		EventID:        eventID,
		TicketCount:    ticketCount,
		ExpirationTime: now.Add(timeout).Unix(),
		Cookie:         cookie,
	}
	l.entries[res.ID] = res
	l.nextReservationID++
	return res, nil
}

// Redeem validates the cookie and expiry for reservationID and, on first
// success, generates its tickets. Subsequent successful redemptions return
// the same tickets without regenerating them.
func (l *Ledger) Redeem(reservationID uint32, cookie protocol.Cookie, now time.Time) (*Reservation, error) {
	res, ok := l.entries[reservationID]
	if !ok {
		return nil, ErrUnknownReservation
	}
	if res.Cookie != cookie {
		return nil, ErrWrongCookie
	}
	if !res.Achieved && res.ExpirationTime < now.Unix() {
		return nil, ErrExpired
	}

	if !res.Achieved {
		res.Tickets = make([]protocol.TicketCode, res.TicketCount)
		for i := range res.Tickets {
			res.Tickets[i] = encodeTicketCode(l.nextTicketID)
			l.nextTicketID++
		}
		res.Achieved = true
	}
	return res, nil
}

// Sweep reclaims seats from every reservation that is not achieved and
// whose expiration_time is strictly before now, then removes it from the
// ledger. It must run before every request is validated or dispatched.
func (l *Ledger) Sweep(now time.Time) {
	nowUnix := now.Unix()
	for id, res := range l.entries {
		if !res.Achieved && res.ExpirationTime < nowUnix {
			_ = l.catalog.Release(res.EventID, res.TicketCount)
			delete(l.entries, id)
		}
	}
}

// Len returns the number of reservations currently tracked, for tests and
// diagnostics.
func (l *Ledger) Len() int {
	return len(l.entries)
}
