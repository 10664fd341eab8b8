package catalog

import "testing"

func seeded() *Catalog {
	return New([]SeedEntry{
		{Description: []byte("Concert"), TicketsAvailable: 100},
		{Description: []byte("Play"), TicketsAvailable: 2},
	})
}

func TestNewAssignsIDsInOrder(t *testing.T) {
	c := seeded()
	events := c.IterInIDOrder()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID != 0 || events[1].ID != 1 {
		t.Fatalf("ids not assigned in order: %+v", events)
	}
}

func TestGetUnknownEvent(t *testing.T) {
	c := seeded()
	if _, ok := c.Get(99); ok {
		t.Fatalf("expected unknown event to miss")
	}
}

func TestReserveDecrementsAndRefusesOverbooking(t *testing.T) {
	c := seeded()
	if err := c.Reserve(1, 2); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	ev, _ := c.Get(1)
	if ev.TicketsAvailable != 0 {
		t.Fatalf("expected 0 seats left, got %d", ev.TicketsAvailable)
	}
	if err := c.Reserve(1, 1); err != ErrInsufficientSeats {
		t.Fatalf("expected ErrInsufficientSeats, got %v", err)
	}
	// Failure must not touch the count.
	ev, _ = c.Get(1)
	if ev.TicketsAvailable != 0 {
		t.Fatalf("failed reserve mutated seat count: %d", ev.TicketsAvailable)
	}
}

func TestReserveUnknownEvent(t *testing.T) {
	c := seeded()
	if err := c.Reserve(42, 1); err != ErrUnknownEvent {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
}

func TestReleaseReincrements(t *testing.T) {
	c := seeded()
	if err := c.Reserve(0, 10); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if err := c.Release(0, 10); err != nil {
		t.Fatalf("Release: %v", err)
	}
	ev, _ := c.Get(0)
	if ev.TicketsAvailable != 100 {
		t.Fatalf("expected seats restored to 100, got %d", ev.TicketsAvailable)
	}
}
