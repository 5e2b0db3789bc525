// Package testutil builds synthetic RAR 4.x buffers for tests.
package testutil

import (
	"encoding/binary"
	"testing"
)

// signature is the RAR 4.x magic: "Rar!" 0x1A 0x07 0x00.
var signature = []byte{0x52, 0x61, 0x72, 0x21, 0x1A, 0x07, 0x00}

// Signature returns a fresh copy of the RAR 4.x magic.
func Signature() []byte {
	out := make([]byte, len(signature))
	copy(out, signature)
	return out
}

// FileSpec describes one file header block to synthesize.
type FileSpec struct {
	// Name is written as raw single-byte characters.
	Name string

	PackedSize   uint32
	UnpackedSize uint32
	Attributes   uint32

	// DeclaredNameLen overrides the name length field when > 0, without
	// changing the bytes actually written. Used to fabricate truncated
	// names.
	DeclaredNameLen int

	// DeclaredSize overrides the header size field when > 0, without
	// changing the bytes actually written. Used to fabricate headers that
	// declare less than their own body.
	DeclaredSize int

	// HeaderExtra is appended after the name and counted by the declared
	// header size, modeling extension fields.
	HeaderExtra []byte

	// Payload is written verbatim after the header. When nil, PackedSize
	// zero bytes are written instead; pass a non-nil short slice to model
	// a truncated payload.
	Payload []byte
}

// blockHeader assembles the 7-byte common prefix: crc(2) type(1) flags(2)
// size(2), all little-endian.
func blockHeader(typ byte, flags, size uint16) []byte {
	buf := make([]byte, 7)
	binary.LittleEndian.PutUint16(buf[0:2], 0) // header CRC, never verified
	buf[2] = typ
	binary.LittleEndian.PutUint16(buf[3:5], flags)
	binary.LittleEndian.PutUint16(buf[5:7], size)
	return buf
}

// ArchiveHeader returns a minimal archive-level header block (type 0x73).
// Real archives carry 6 reserved bytes in the body, making the block 13
// bytes long.
func ArchiveHeader(tb testing.TB) []byte {
	tb.Helper()
	block := blockHeader(0x73, 0, 13)
	return append(block, make([]byte, 6)...)
}

// RawBlock returns a block with an arbitrary type tag and body. The
// declared size covers the prefix plus the body.
func RawBlock(tb testing.TB, typ byte, body []byte) []byte {
	tb.Helper()
	size := 7 + len(body)
	if size > 0xFFFF {
		tb.Fatalf("block size %d exceeds the 16-bit size field", size)
	}
	return append(blockHeader(typ, 0, uint16(size)), body...)
}

// FileBlock returns a file header block (type 0x74) followed by its
// payload bytes.
func FileBlock(tb testing.TB, spec FileSpec) []byte {
	tb.Helper()

	nameLen := len(spec.Name)
	if spec.DeclaredNameLen > 0 {
		nameLen = spec.DeclaredNameLen
	}
	size := 7 + 25 + len(spec.Name) + len(spec.HeaderExtra)
	if spec.DeclaredSize > 0 {
		size = spec.DeclaredSize
	}
	if size > 0xFFFF {
		tb.Fatalf("file block size %d exceeds the 16-bit size field", size)
	}

	buf := blockHeader(0x74, 0, uint16(size))
	buf = binary.LittleEndian.AppendUint32(buf, spec.PackedSize)
	buf = binary.LittleEndian.AppendUint32(buf, spec.UnpackedSize)
	buf = append(buf, 0)                           // host OS
	buf = binary.LittleEndian.AppendUint32(buf, 0) // file CRC
	buf = binary.LittleEndian.AppendUint32(buf, 0) // mtime
	buf = append(buf, 20)                          // format version
	buf = append(buf, 0x30)                        // method: stored
	buf = binary.LittleEndian.AppendUint16(buf, uint16(nameLen))
	buf = binary.LittleEndian.AppendUint32(buf, spec.Attributes)
	buf = append(buf, spec.Name...)
	buf = append(buf, spec.HeaderExtra...)

	payload := spec.Payload
	if payload == nil {
		payload = make([]byte, spec.PackedSize)
	}
	return append(buf, payload...)
}

// Build concatenates the signature and the given blocks into one archive
// buffer.
func Build(tb testing.TB, blocks ...[]byte) []byte {
	tb.Helper()
	buf := Signature()
	for _, b := range blocks {
		buf = append(buf, b...)
	}
	return buf
}
