package rarindex

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Option configures Parse.
type Option func(*parseConfig)

type parseConfig struct {
	nameEncoding encoding.Encoding
	maxEntries   int
}

func defaultConfig() parseConfig {
	return parseConfig{nameEncoding: charmap.ISO8859_1}
}

// WithNameEncoding selects the legacy 8-bit encoding used to decode file
// names. The default is ISO 8859-1, which maps every byte to the code
// point of the same value. Archives written by DOS-era tools typically
// want charmap.CodePage437 or charmap.Windows1252 instead. A nil encoding
// keeps the default.
func WithNameEncoding(enc encoding.Encoding) Option {
	return func(c *parseConfig) {
		if enc != nil {
			c.nameEncoding = enc
		}
	}
}

// WithMaxEntries caps the number of entries a parse may produce. Exceeding
// the cap fails the parse with ErrTooManyEntries. Values <= 0 disable the
// cap (the default).
func WithMaxEntries(n int) Option {
	return func(c *parseConfig) {
		if n < 0 {
			n = 0
		}
		c.maxEntries = n
	}
}
