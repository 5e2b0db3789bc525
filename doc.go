// Package rarindex reads the block structure of legacy RAR 4.x archives
// and produces a metadata-only index of their contents.
//
// The package walks the archive's self-describing blocks and collects one
// [Entry] per file header: name, packed and unpacked size, and a directory
// flag. It never decompresses payload data and never reconstructs file
// content; payload bytes are skipped using the sizes the headers declare.
//
// # Quick start
//
// Parse a buffer and list its entries:
//
//	data, err := os.ReadFile("backup.rar")
//	if err != nil {
//	    return err
//	}
//	archive, err := rarindex.Parse(data)
//	if err != nil {
//	    return err
//	}
//	for e := range archive.Entries() {
//	    fmt.Printf("%s (%d bytes)\n", e.Name, e.UnpackedSize)
//	}
//
// # Robustness
//
// RAR archives in the wild are often truncated or partially overwritten.
// The scanner does not give up on the first malformed block: anything that
// does not look like a plausible header is stepped over one byte at a time
// until the next plausible header appears. Only a missing signature
// ([ErrNotRAR]) and a file name running past the end of the buffer
// ([TruncatedNameError]) abort a parse.
//
// # Name encoding
//
// RAR 4.x stores names in a single-byte legacy encoding. The default
// decoder is ISO 8859-1, which maps every byte to the code point of the
// same value; archives written by DOS-era tools usually want
// [golang.org/x/text/encoding/charmap.CodePage437] instead, selected with
// [WithNameEncoding]. The undecoded bytes stay available as
// [Entry].RawName.
package rarindex
