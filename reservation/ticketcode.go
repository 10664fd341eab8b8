package reservation

import "github.com/kresge/ticketsrv/protocol"

// ticketAlphabet is the 36-character base used to derive ticket codes.
const ticketAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// encodeTicketCode base-36 encodes counter into a fixed-width 7-char code,
// most-significant character first, zero-padded on the left.
func encodeTicketCode(counter uint64) protocol.TicketCode {
	var code protocol.TicketCode
	for i := protocol.TicketCodeSize - 1; i >= 0; i-- {
		code[i] = ticketAlphabet[counter%36]
		counter /= 36
	}
	return code
}
