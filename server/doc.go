// Package server wires the catalog, ledger, and wire codec into the
// request handler state machine (Handler) and the blocking UDP receive/reply
// loop (Endpoint) described by the protocol spec's components E and F.
package server
