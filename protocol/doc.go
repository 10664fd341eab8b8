// Package protocol implements the fixed-layout, big-endian wire codec used
// between a ticketsrv client and server.
//
// Every message starts with a single type octet (see MessageType). Request
// layouts have an exact, type-implied length; response layouts are exact
// except EVENTS and TICKETS, which carry a repeated tail. Integers are
// unsigned and big-endian at the widths given in each message's doc comment.
// Encoding is done through Cursor, an explicit typed write/read head over a
// caller-owned byte slice — there is no generic or reflection-based
// dispatch.
package protocol
