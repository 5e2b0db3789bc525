package rarindex

// Entry describes one archive member. Entries are immutable values,
// constructed fully populated when a file header block is decoded.
type Entry struct {
	// Name is the file name decoded with the configured legacy encoding.
	// It may contain path separators; archives written on DOS and Windows
	// store backslashes, see NormalizeName.
	Name string

	// RawName holds the undecoded name bytes exactly as stored in the
	// header.
	RawName []byte

	// UnpackedSize is the logical content size in bytes.
	UnpackedSize uint32

	// PackedSize is the number of payload bytes the entry occupies in the
	// archive stream.
	PackedSize uint32

	// Attributes is the raw host attribute field from the file header.
	Attributes uint32

	// IsDir reports whether the entry is a directory: either the 0x10
	// attribute bit is set or the decoded name ends in a slash.
	IsDir bool

	// HeaderOffset is the offset of the entry's header block within the
	// archive buffer.
	HeaderOffset int

	// DataOffset is the offset where the entry's packed payload begins.
	DataOffset int
}
