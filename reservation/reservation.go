package reservation

import "github.com/kresge/ticketsrv/protocol"

// Reservation is a time-limited hold on a ticket count for one event.
type Reservation struct {
	ID             uint32
	EventID        uint32
	TicketCount    uint16
	ExpirationTime int64 // absolute unix seconds
	Cookie         protocol.Cookie
	Achieved       bool
	Tickets        []protocol.TicketCode
}
