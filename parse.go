package rarindex

import (
	"fmt"
	"strings"

	"github.com/meigma/rarindex/internal/format"
)

// Parse reads the block structure of a RAR 4.x archive held in data and
// returns its entry index. Only headers are read; payload bytes are
// skipped, never decompressed.
//
// Unrecognized or corrupt blocks do not fail the parse. The scanner steps
// over them byte by byte until it finds the next plausible header, and a
// buffer that simply runs out of data ends the parse cleanly with the
// entries collected so far. Two conditions are fatal: data does not start
// with the RAR signature (ErrNotRAR), and a file header declaring a name
// that extends past the end of the buffer (TruncatedNameError). In the
// latter case the returned archive still holds the entries decoded before
// the failure.
//
// Parse keeps no state between calls; parsing the same buffer twice
// yields identical archives.
func Parse(data []byte, opts ...Option) (*Archive, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	blocks, scanErr := format.Scan(data, cfg.maxEntries)
	if scanErr != nil && len(blocks) == 0 {
		return nil, scanErr
	}

	decoder := cfg.nameEncoding.NewDecoder()
	entries := make([]Entry, 0, len(blocks))
	for _, b := range blocks {
		name, err := decoder.Bytes(b.RawName)
		if err != nil {
			return nil, fmt.Errorf("rarindex: decode name in block at offset %d: %w", b.HeaderOffset, err)
		}
		entries = append(entries, newEntry(b, string(name)))
	}
	return newArchive(entries), scanErr
}

func newEntry(b format.FileBlock, name string) Entry {
	return Entry{
		Name:         name,
		RawName:      b.RawName,
		UnpackedSize: b.UnpackedSize,
		PackedSize:   b.PackedSize,
		Attributes:   b.Attributes,
		IsDir:        b.Attributes&format.AttrDirectory != 0 || strings.HasSuffix(name, "/"),
		HeaderOffset: b.HeaderOffset,
		DataOffset:   b.DataOffset,
	}
}
