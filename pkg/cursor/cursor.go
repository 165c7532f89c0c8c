// Package cursor implements a positioned reader over raw chain bytes.
package cursor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

// ErrOutOfBounds is returned when a read would go past the end of the buffer.
var ErrOutOfBounds = errors.New("read past end of buffer")

// Cursor reads fixed-width primitives and compact-size integers from a
// borrowed byte buffer. It never reads out of bounds and never copies
// the underlying data.
type Cursor struct {
	buf []byte
	pos int
}

// New returns a cursor over buf positioned at start.
func New(buf []byte, start int) *Cursor {
	return &Cursor{buf: buf, pos: start}
}

// Pos returns the current offset into the buffer.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	if c.pos >= len(c.buf) {
		return 0
	}
	return len(c.buf) - c.pos
}

// Bytes returns the next n bytes as a sub-slice of the buffer.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrOutOfBounds, n, c.pos, c.Remaining())
	}
	out := c.buf[c.pos : c.pos+n]
	c.pos += n
	return out, nil
}

// Uint32 reads a little-endian 32-bit integer.
func (c *Cursor) Uint32() (uint32, error) {
	b, err := c.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// VarInt reads a Bitcoin compact-size integer. Non-minimal encodings
// are rejected, matching the wire format's canonical form.
func (c *Cursor) VarInt() (uint64, error) {
	if c.pos >= len(c.buf) {
		return 0, fmt.Errorf("%w: varint at offset %d", ErrOutOfBounds, c.pos)
	}
	r := bytes.NewReader(c.buf[c.pos:])
	v, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return 0, fmt.Errorf("varint at offset %d: %w", c.pos, err)
	}
	c.pos += wire.VarIntSerializeSize(v)
	return v, nil
}
