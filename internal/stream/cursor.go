// Package stream provides a bounds-checked sequential reader over an
// in-memory byte buffer.
//
// Cursor is the only type that mutates the read offset. Every bounds check
// happens before any mutation: a failed read or skip leaves the offset
// exactly where it was, and the offset never moves backward.
package stream

import (
	"encoding/binary"
	"errors"
)

// ErrOutOfRange is returned when a read or skip would move past the end of
// the buffer.
var ErrOutOfRange = errors.New("rarindex: read out of range")

// Cursor reads sequentially from an immutable byte buffer.
//
// Cursor is not safe for concurrent use.
type Cursor struct {
	data []byte
	pos  int
}

// New returns a cursor positioned at the start of data. The buffer is
// retained, not copied; callers must not modify it while the cursor is in
// use.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// CanRead reports whether n more bytes are available at the current
// offset. Negative n reports false.
func (c *Cursor) CanRead(n int) bool {
	return n >= 0 && n <= len(c.data)-c.pos
}

// Peek returns the next n bytes without advancing the offset. The returned
// slice aliases the buffer and must be treated as immutable.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if !c.CanRead(n) {
		return nil, ErrOutOfRange
	}
	return c.data[c.pos : c.pos+n], nil
}

// ReadByte returns the byte at the current offset and advances by one.
func (c *Cursor) ReadByte() (byte, error) {
	if !c.CanRead(1) {
		return 0, ErrOutOfRange
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// ReadBytes returns a copy of the next n bytes and advances by n.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if !c.CanRead(n) {
		return nil, ErrOutOfRange
	}
	out := make([]byte, n)
	copy(out, c.data[c.pos:])
	c.pos += n
	return out, nil
}

// ReadUint16 reads a little-endian 16-bit unsigned integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	if !c.CanRead(2) {
		return 0, ErrOutOfRange
	}
	v := binary.LittleEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadUint32 reads a little-endian 32-bit unsigned integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	if !c.CanRead(4) {
		return 0, ErrOutOfRange
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

// Skip advances the offset by n without returning data.
func (c *Cursor) Skip(n int) error {
	if !c.CanRead(n) {
		return ErrOutOfRange
	}
	c.pos += n
	return nil
}

// Pos returns the current offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// EOF reports whether the offset has reached the end of the buffer.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.data)
}
