package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanRead(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		n    int
		want bool
	}{
		{"zero from empty", nil, 0, true},
		{"one from empty", nil, 1, false},
		{"exact length", []byte{1, 2, 3}, 3, true},
		{"one past end", []byte{1, 2, 3}, 4, false},
		{"negative", []byte{1, 2, 3}, -1, false},
		{"huge", []byte{1}, int(^uint(0) >> 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.data)
			assert.Equal(t, tt.want, c.CanRead(tt.n))
		})
	}
}

func TestReadByte(t *testing.T) {
	c := New([]byte{0xAA, 0xBB})

	b, err := c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xAA), b)
	assert.Equal(t, 1, c.Pos())

	b, err = c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xBB), b)

	_, err = c.ReadByte()
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 2, c.Pos())
}

func TestReadBytesReturnsCopy(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	c := New(data)

	got, err := c.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, got)

	got[0] = 0xFF
	assert.Equal(t, byte(1), data[0], "mutating the result must not touch the buffer")
}

func TestReadBytesOutOfRangeKeepsOffset(t *testing.T) {
	c := New([]byte{1, 2, 3})
	require.NoError(t, c.Skip(1))

	_, err := c.ReadBytes(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 1, c.Pos(), "failed read must not advance")

	got, err := c.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, got)
}

func TestReadUint16(t *testing.T) {
	c := New([]byte{0x34, 0x12, 0xFF})

	v, err := c.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v, "little-endian: least significant byte first")
	assert.Equal(t, 2, c.Pos())

	_, err = c.ReadUint16()
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 2, c.Pos(), "no partial advancement")

	b, err := c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), b)
}

func TestReadUint32(t *testing.T) {
	c := New([]byte{0x78, 0x56, 0x34, 0x12, 0x00, 0x00})

	v, err := c.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), v)

	_, err = c.ReadUint32()
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 4, c.Pos(), "no partial advancement")
}

func TestSkip(t *testing.T) {
	c := New([]byte{1, 2, 3, 4})

	require.NoError(t, c.Skip(3))
	assert.Equal(t, 3, c.Pos())

	assert.ErrorIs(t, c.Skip(2), ErrOutOfRange)
	assert.Equal(t, 3, c.Pos())

	assert.ErrorIs(t, c.Skip(-1), ErrOutOfRange)

	require.NoError(t, c.Skip(1))
	assert.True(t, c.EOF())
}

func TestPeekDoesNotAdvance(t *testing.T) {
	c := New([]byte{1, 2, 3})

	got, err := c.Peek(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, got)
	assert.Equal(t, 0, c.Pos())

	_, err = c.Peek(4)
	assert.ErrorIs(t, err, ErrOutOfRange)

	b, err := c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(1), b)
}

func TestPosRemainingEOF(t *testing.T) {
	c := New([]byte{1, 2, 3})
	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 3, c.Remaining())
	assert.False(t, c.EOF())

	require.NoError(t, c.Skip(3))
	assert.Equal(t, 3, c.Pos())
	assert.Equal(t, 0, c.Remaining())
	assert.True(t, c.EOF())

	empty := New(nil)
	assert.True(t, empty.EOF())
}
