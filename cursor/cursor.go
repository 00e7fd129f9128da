// Package cursor provides a bounds-checked, sequential, little-endian
// reader over an in-memory byte slice.
//
// Every SPC file component (the 512-byte main header, X blocks, 32-byte
// subfile headers, Y blocks) is read through a single Cursor so that
// truncation is detected uniformly at the point of the offending read
// rather than via ad-hoc length checks scattered across the parsers.
package cursor

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/WillCallahan/specio3/errs"
)

// Cursor is a read-only, forward-only view over a byte slice. It never
// mutates the underlying slice and never seeks backward; the decoder
// that owns it discards it once parsing completes.
type Cursor struct {
	data []byte
	pos  int
}

// New wraps data in a Cursor positioned at offset 0.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// require returns errs.ErrTruncated, annotated with what was being
// read, if fewer than n bytes remain.
func (c *Cursor) require(n int, what string) error {
	if c.Remaining() < n {
		return fmt.Errorf("%w: need %d bytes for %s, have %d", errs.ErrTruncated, n, what, c.Remaining())
	}

	return nil
}

// Take returns the next n bytes and advances the cursor past them. The
// returned slice aliases the cursor's underlying data and must not be
// retained past the decode call without copying.
func (c *Cursor) Take(n int, what string) ([]byte, error) {
	if err := c.require(n, what); err != nil {
		return nil, err
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// Skip advances the cursor by n bytes without returning them.
func (c *Cursor) Skip(n int, what string) error {
	_, err := c.Take(n, what)
	return err
}

// U8 reads an unsigned 8-bit integer.
func (c *Cursor) U8(what string) (uint8, error) {
	b, err := c.Take(1, what)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// I8 reads a signed 8-bit integer.
func (c *Cursor) I8(what string) (int8, error) {
	v, err := c.U8(what)
	return int8(v), err
}

// U16 reads a little-endian unsigned 16-bit integer.
func (c *Cursor) U16(what string) (uint16, error) {
	b, err := c.Take(2, what)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

// I16 reads a little-endian signed 16-bit integer.
func (c *Cursor) I16(what string) (int16, error) {
	v, err := c.U16(what)
	return int16(v), err
}

// U32 reads a little-endian unsigned 32-bit integer.
func (c *Cursor) U32(what string) (uint32, error) {
	b, err := c.Take(4, what)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

// I32 reads a little-endian signed 32-bit integer.
func (c *Cursor) I32(what string) (int32, error) {
	v, err := c.U32(what)
	return int32(v), err
}

// F32 reads a little-endian IEEE-754 binary32 value, widened to float64.
func (c *Cursor) F32(what string) (float64, error) {
	b, err := c.Take(4, what)
	if err != nil {
		return 0, err
	}

	bits := binary.LittleEndian.Uint32(b)

	return float64(math.Float32frombits(bits)), nil
}

// F64 reads a little-endian IEEE-754 binary64 value.
func (c *Cursor) F64(what string) (float64, error) {
	b, err := c.Take(8, what)
	if err != nil {
		return 0, err
	}

	bits := binary.LittleEndian.Uint64(b)

	return math.Float64frombits(bits), nil
}
