// Package format implements the RAR 4.x block layout: signature detection,
// the common block header, and the file header body.
//
// The scanner is deliberately lenient. Archives in the wild are often
// truncated or carry garbage between blocks, so anything that does not
// look like a plausible block header is stepped over one byte at a time
// until the next plausible header appears. Only two conditions abort a
// scan: a missing signature and a file name that runs past the end of the
// buffer.
package format

import (
	"errors"
	"fmt"
)

// Signature is the fixed 7-byte magic at the start of every RAR 4.x
// archive: "Rar!" followed by 0x1A 0x07 0x00.
var Signature = []byte{0x52, 0x61, 0x72, 0x21, 0x1A, 0x07, 0x00}

// Block type tags.
const (
	// TypeArchiveHeader is the archive-level header block. It carries no
	// entry and is skipped whole.
	TypeArchiveHeader = 0x73

	// TypeFileHeader is a file header block, followed by the file's
	// packed payload.
	TypeFileHeader = 0x74
)

// AttrDirectory is the attribute bit marking an entry as a directory.
const AttrDirectory = 0x10

const (
	// headerPrefixSize covers the common prefix every block starts with:
	// crc(2) type(1) flags(2) size(2).
	headerPrefixSize = 7

	// fileFixedSize covers the fixed part of a file header body:
	// packed(4) unpacked(4) host(1) crc(4) mtime(4) version(1) method(1)
	// nameLen(2) attrs(4).
	fileFixedSize = 25
)

// FileBlock is the decoded metadata of one file header block. Name bytes
// are reported raw; decoding them is the caller's concern.
type FileBlock struct {
	RawName      []byte
	PackedSize   uint32
	UnpackedSize uint32
	Attributes   uint32
	HeaderOffset int // offset of the block's first byte in the buffer
	DataOffset   int // offset of the packed payload
}

// Sentinel errors for block scanning.
var (
	// ErrNotRAR is returned when the buffer does not start with Signature.
	ErrNotRAR = errors.New("rarindex: not a rar archive")

	// ErrTooManyEntries is returned when a scan produces more file blocks
	// than the configured limit.
	ErrTooManyEntries = errors.New("rarindex: too many entries")
)

// TruncatedNameError is returned when a file header declares a name longer
// than the bytes remaining in the buffer. Unlike a malformed block header
// this happens mid-decode of a structurally valid header; resuming from a
// resync point would fabricate a wrong entry, so the scan aborts instead.
type TruncatedNameError struct {
	Offset  int // offset of the offending block header
	NameLen int // declared name length
}

func (e *TruncatedNameError) Error() string {
	return fmt.Sprintf("rarindex: truncated file name in block at offset %d (declared %d bytes)", e.Offset, e.NameLen)
}
