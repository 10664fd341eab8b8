package catalog

// Event is a ticketed offering. Description and DescriptionLength agree for
// the lifetime of the event; only TicketsAvailable ever changes.
type Event struct {
	ID               uint32
	Description      []byte
	TicketsAvailable uint16
}

// DescriptionLength is the redundant length octet transmitted alongside
// Description in an EVENTS response.
func (e Event) DescriptionLength() uint8 {
	return uint8(len(e.Description))
}
