package rarindex

import "github.com/meigma/rarindex/internal/format"

// Errors re-exported from the block scanner.
var (
	// ErrNotRAR is returned when a buffer does not start with the RAR 4.x
	// signature.
	ErrNotRAR = format.ErrNotRAR

	// ErrTooManyEntries is returned when a parse exceeds the cap set by
	// WithMaxEntries.
	ErrTooManyEntries = format.ErrTooManyEntries
)

// TruncatedNameError is returned when a file header declares a name longer
// than the bytes remaining in the buffer. The error message carries the
// offset of the offending block.
type TruncatedNameError = format.TruncatedNameError
