package protocol

import "testing"

func TestCursorPutGetRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	w := NewCursor(buf)
	if !w.PutUint8(1) || !w.PutUint16(2) || !w.PutUint32(3) || !w.PutUint64(4) || !w.PutBytes([]byte("hi")) {
		t.Fatalf("unexpected short write")
	}

	r := NewReadCursor(w.Bytes())
	u8, err := r.GetUint8()
	if err != nil || u8 != 1 {
		t.Fatalf("GetUint8: %v %d", err, u8)
	}
	u16, err := r.GetUint16()
	if err != nil || u16 != 2 {
		t.Fatalf("GetUint16: %v %d", err, u16)
	}
	u32, err := r.GetUint32()
	if err != nil || u32 != 3 {
		t.Fatalf("GetUint32: %v %d", err, u32)
	}
	u64, err := r.GetUint64()
	if err != nil || u64 != 4 {
		t.Fatalf("GetUint64: %v %d", err, u64)
	}
	b, err := r.GetBytes(2)
	if err != nil || string(b) != "hi" {
		t.Fatalf("GetBytes: %v %q", err, b)
	}
}

func TestCursorPutRefusesOverflow(t *testing.T) {
	buf := make([]byte, 1)
	c := NewCursor(buf)
	if !c.PutUint8(1) {
		t.Fatalf("expected first byte to fit")
	}
	if c.PutUint8(2) {
		t.Fatalf("expected overflow to be refused")
	}
}

func TestCursorGetRefusesShortBuffer(t *testing.T) {
	c := NewReadCursor([]byte{1})
	if _, err := c.GetUint32(); err != ErrShortBuffer {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
}
