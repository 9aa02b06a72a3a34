package buf

import "encoding/binary"

// Cursor reads little-endian fields front to back from a byte slice.
//
// A read that would run past the end returns ok == false and leaves the
// cursor exhausted: every later read fails as well, so callers can keep the
// fields decoded before the short read and stop at the first failure.
type Cursor struct {
	b       []byte
	off     int
	drained bool
}

// NewCursor returns a cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	if c.drained {
		return 0
	}
	return len(c.b) - c.off
}

func (c *Cursor) take(n int) ([]byte, bool) {
	if c.drained {
		return nil, false
	}
	s, ok := Slice(c.b, c.off, n)
	if !ok {
		c.drained = true
		return nil, false
	}
	c.off += n
	return s, true
}

// U32 reads the next little-endian uint32.
func (c *Cursor) U32() (uint32, bool) {
	s, ok := c.take(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(s), true
}

// I32 reads the next little-endian int32.
func (c *Cursor) I32() (int32, bool) {
	v, ok := c.U32()
	return int32(v), ok
}

// U64 reads the next little-endian uint64.
func (c *Cursor) U64() (uint64, bool) {
	s, ok := c.take(8)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(s), true
}

// Skip advances past n bytes.
func (c *Cursor) Skip(n int) bool {
	_, ok := c.take(n)
	return ok
}
