// Package catalog holds the server's ordered event-id -> {description,
// seats-available} mapping. It is seeded once at startup from an external
// sequence of (description, tickets) pairs and mutated only by reservation
// activity (Reserve/Release); nothing ever removes an event.
//
// The single request loop is the only caller, so unlike a general-purpose
// in-memory store, Catalog needs no internal locking (see the ticketsrv
// concurrency model: one request runs to completion before the next is
// read off the socket).
package catalog
