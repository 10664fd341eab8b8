package protocol

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is returned by Get* methods when the cursor has fewer
// remaining bytes than the field being read requires.
var ErrShortBuffer = errors.New("protocol: short buffer")

// Cursor is a write or read head over a caller-owned byte slice. Put methods
// report whether the field fit in the remaining capacity instead of
// growing the slice, since every wire buffer in this protocol is a single
// fixed-size datagram buffer that must never be reallocated mid-encode.
// Get methods instead return an error, since decode operates on a slice
// whose length has already been validated by the caller.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor wraps buf for writing, starting at offset 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// NewReadCursor wraps buf for reading, starting at offset 0.
func NewReadCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Off returns the current offset.
func (c *Cursor) Off() int { return c.off }

// Bytes returns the portion of the underlying buffer written so far.
func (c *Cursor) Bytes() []byte { return c.buf[:c.off] }

// Remaining returns the number of bytes left before the buffer is full.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

func (c *Cursor) PutUint8(v uint8) bool {
	if c.Remaining() < 1 {
		return false
	}
	c.buf[c.off] = v
	c.off++
	return true
}

func (c *Cursor) PutUint16(v uint16) bool {
	if c.Remaining() < 2 {
		return false
	}
	binary.BigEndian.PutUint16(c.buf[c.off:], v)
	c.off += 2
	return true
}

func (c *Cursor) PutUint32(v uint32) bool {
	if c.Remaining() < 4 {
		return false
	}
	binary.BigEndian.PutUint32(c.buf[c.off:], v)
	c.off += 4
	return true
}

func (c *Cursor) PutUint64(v uint64) bool {
	if c.Remaining() < 8 {
		return false
	}
	binary.BigEndian.PutUint64(c.buf[c.off:], v)
	c.off += 8
	return true
}

func (c *Cursor) PutBytes(b []byte) bool {
	if c.Remaining() < len(b) {
		return false
	}
	copy(c.buf[c.off:], b)
	c.off += len(b)
	return true
}

func (c *Cursor) GetUint8() (uint8, error) {
	if c.Remaining() < 1 {
		return 0, ErrShortBuffer
	}
	v := c.buf[c.off]
	c.off++
	return v, nil
}

func (c *Cursor) GetUint16() (uint16, error) {
	if c.Remaining() < 2 {
		return 0, ErrShortBuffer
	}
	v := binary.BigEndian.Uint16(c.buf[c.off:])
	c.off += 2
	return v, nil
}

func (c *Cursor) GetUint32() (uint32, error) {
	if c.Remaining() < 4 {
		return 0, ErrShortBuffer
	}
	v := binary.BigEndian.Uint32(c.buf[c.off:])
	c.off += 4
	return v, nil
}

func (c *Cursor) GetUint64() (uint64, error) {
	if c.Remaining() < 8 {
		return 0, ErrShortBuffer
	}
	v := binary.BigEndian.Uint64(c.buf[c.off:])
	c.off += 8
	return v, nil
}

// GetBytes returns a copy of the next n bytes. The caller's buffer is
// typically a single reused receive buffer, so callers that need to retain
// the result past the next decode must copy it; GetBytes does that copy for
// them.
func (c *Cursor) GetBytes(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, ErrShortBuffer
	}
	out := make([]byte, n)
	copy(out, c.buf[c.off:c.off+n])
	c.off += n
	return out, nil
}
