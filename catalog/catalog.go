package catalog

import "errors"

var (
	// ErrUnknownEvent is returned by Reserve/Release for an id with no
	// matching event (Get reports a miss through its bool result instead).
	ErrUnknownEvent = errors.New("catalog: unknown event")
	// ErrInsufficientSeats is returned by Reserve when tickets_available is
	// lower than the requested count.
	ErrInsufficientSeats = errors.New("catalog: insufficient seats")
)

// SeedEntry is one (description, tickets) pair as produced by the seed-file
// parser, in file order.
type SeedEntry struct {
	Description      []byte
	TicketsAvailable uint16
}

// Catalog is the seed-once, process-lifetime event store. Event ids are
// assigned 0, 1, 2, ... in seed order, so the backing store is a plain
// slice indexed by id rather than a map.
type Catalog struct {
	events []Event
}

// New builds a Catalog from the seed sequence, assigning ids in order.
func New(entries []SeedEntry) *Catalog {
	events := make([]Event, len(entries))
	for i, e := range entries {
		events[i] = Event{
			ID:               uint32(i),
			Description:      e.Description,
			TicketsAvailable: e.TicketsAvailable,
		}
	}
	return &Catalog{events: events}
}

// Get returns the event with the given id.
func (c *Catalog) Get(id uint32) (Event, bool) {
	if id >= uint32(len(c.events)) {
		return Event{}, false
	}
	return c.events[id], true
}

// IterInIDOrder returns a snapshot of every event in ascending id order, for
// EVENTS encoding.
func (c *Catalog) IterInIDOrder() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Reserve decrements tickets_available by n. It fails if the event doesn't
// exist or doesn't have n seats available; tickets_available is left
// untouched on failure, so it never underflows.
func (c *Catalog) Reserve(id uint32, n uint16) error {
	if id >= uint32(len(c.events)) {
		return ErrUnknownEvent
	}
	ev := &c.events[id]
	if ev.TicketsAvailable < n {
		return ErrInsufficientSeats
	}
	ev.TicketsAvailable -= n
	return nil
}

// Release re-increments tickets_available by n. Events are never removed,
// so a release always targets an extant event (see ticketsrv design notes).
func (c *Catalog) Release(id uint32, n uint16) error {
	if id >= uint32(len(c.events)) {
		return ErrUnknownEvent
	}
	c.events[id].TicketsAvailable += n
	return nil
}
