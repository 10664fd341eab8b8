// Package reservation implements the reservation ledger: id assignment,
// cookie issuance, achievement, and lazy expiry.
//
// Grounded on the same shape as a session ticket store (issue -> lookup ->
// lazily reclaim on cleanup), adapted to ticketsrv's seat-holding semantics:
// a reservation holds ticket_count seats on one catalog.Catalog event
// until either it is redeemed (achieved, permanent) or it expires
// unredeemed (seats released back to the event, entry removed).
package reservation
