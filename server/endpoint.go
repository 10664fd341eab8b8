package server

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/kresge/ticketsrv/internal/logging"
	"github.com/kresge/ticketsrv/protocol"
)

// Endpoint binds an IPv4 UDP socket on INADDR_ANY:port and runs the single
// serial receive -> handle -> reply loop. There is no connected socket:
// every reply is unicast back to the source address of the datagram that
// triggered it.
type Endpoint struct {
	conn *net.UDPConn
	log  *logging.Logger
}

// Listen binds the endpoint's socket. A bind failure is always fatal to the
// caller.
func Listen(port uint16) (*Endpoint, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: int(port)})
	if err != nil {
		return nil, fmt.Errorf("bind: %w", err)
	}
	return &Endpoint{conn: conn, log: logging.Default()}, nil
}

// Addr returns the bound local address.
func (e *Endpoint) Addr() net.Addr { return e.conn.LocalAddr() }

// Close releases the underlying socket.
func (e *Endpoint) Close() error { return e.conn.Close() }

// Handle is the shape of Handler.HandleDatagram, kept as a function type so
// Run can be driven directly by tests without depending on *Handler.
type Handle func(req []byte, replyBuf []byte, now time.Time) ([]byte, bool)

// Run loops forever: block in a receive, hand the datagram and arrival time
// to handle, and unicast the reply (if any) back to the source address.
// Each iteration runs to completion before the next receive, matching the
// single-threaded serial model; Run only returns on a fatal transport
// error.
func (e *Endpoint) Run(handle Handle) error {
	req := make([]byte, protocol.MaxDatagramSize)
	reply := make([]byte, protocol.MaxDatagramSize)

	for {
		n, src, err := e.conn.ReadFromUDP(req)
		if err != nil {
			if isRecoverable(err) {
				continue
			}
			return fmt.Errorf("recvfrom: %w", err)
		}

		now := time.Now()
		out, shouldReply := handle(req[:n], reply, now)
		if !shouldReply {
			continue
		}

		if err := e.reply(src, out); err != nil {
			return err
		}
	}
}

func (e *Endpoint) reply(dst *net.UDPAddr, out []byte) error {
	for {
		written, err := e.conn.WriteToUDP(out, dst)
		if err != nil {
			if isRecoverable(err) {
				continue
			}
			return fmt.Errorf("sendto: %w", err)
		}
		if written != len(out) {
			return fmt.Errorf("sendto: short write %d of %d bytes", written, len(out))
		}
		return nil
	}
}

// isRecoverable reports whether err ultimately wraps a syscall errno that a
// single-threaded datagram server should transparently retry rather than
// treat as fatal: a signal-interrupted call, a transient resource-temporarily-
// unavailable condition, or (for an unconnected UDP socket) a queued ICMP
// port-unreachable from an earlier, unrelated reply.
func isRecoverable(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	switch errno {
	case unix.EINTR, unix.EAGAIN, unix.ECONNREFUSED:
		return true
	default:
		return false
	}
}
