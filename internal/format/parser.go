package format

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/meigma/rarindex/internal/stream"
)

// Scan walks the block sequence of a RAR 4.x archive and returns its file
// blocks in archive order. limit caps the number of file blocks produced;
// 0 means no cap.
//
// Scan never reads payload bytes; it skips them using the sizes each
// header declares. The scan ends cleanly when the buffer runs out of room
// for another header, or when a block's residual or payload cannot be
// skipped in full. On ErrTooManyEntries or a TruncatedNameError the blocks
// decoded before the failure are returned alongside the error.
func Scan(data []byte, limit int) ([]FileBlock, error) {
	cur := stream.New(data)

	sig, err := cur.ReadBytes(len(Signature))
	if err != nil || !bytes.Equal(sig, Signature) {
		return nil, ErrNotRAR
	}

	var blocks []FileBlock
scan:
	for !cur.EOF() && cur.CanRead(headerPrefixSize) {
		blockStart := cur.Pos()

		// Examine the common header prefix without committing the
		// cursor: if the header turns out to be implausible the scan
		// resumes one byte after blockStart, so bytes 1..6 of the
		// prefix must remain readable.
		hdr, err := cur.Peek(headerPrefixSize)
		if err != nil {
			break // unreachable, the loop condition guards the peek
		}
		typ := hdr[2]
		size := int(binary.LittleEndian.Uint16(hdr[5:7]))

		// A plausible header covers at least its own prefix and fits
		// in the remaining buffer. Anything else is noise: step over
		// one byte and keep scanning.
		if size < headerPrefixSize || !cur.CanRead(size) {
			if err := cur.Skip(1); err != nil {
				break
			}
			continue
		}

		switch typ {
		case TypeArchiveHeader:
			// Guarded by the CanRead(size) check above.
			if err := cur.Skip(size); err != nil {
				break scan
			}

		case TypeFileHeader:
			if err := cur.Skip(headerPrefixSize); err != nil {
				break scan
			}
			fb, err := readFileBlock(cur, blockStart, size)
			if err != nil {
				if errors.Is(err, stream.ErrOutOfRange) {
					// Buffer ended inside the fixed fields: clean
					// termination, not corruption.
					break scan
				}
				return blocks, err
			}
			if limit > 0 && len(blocks) >= limit {
				return blocks, ErrTooManyEntries
			}
			blocks = append(blocks, fb)

			// Headers may carry extension fields beyond the fixed
			// part; skip whatever the declared size still covers,
			// then the packed payload. The entry stays even when
			// the skips run out of data.
			if consumed := cur.Pos() - blockStart; size > consumed {
				if err := cur.Skip(size - consumed); err != nil {
					break scan
				}
			}
			if err := cur.Skip(int(fb.PackedSize)); err != nil {
				break scan
			}

		default:
			// Unrecognized block type. The prefix has already been
			// examined, so resume one byte past it.
			if err := cur.Skip(headerPrefixSize + 1); err != nil {
				break scan
			}
		}
	}
	return blocks, nil
}

// readFileBlock decodes the body of a file header block. The cursor must
// sit just past the common header prefix. It returns stream.ErrOutOfRange
// when the fixed fields run past the buffer end and a TruncatedNameError
// when the declared name does.
func readFileBlock(cur *stream.Cursor, blockStart, size int) (FileBlock, error) {
	packed, err := cur.ReadUint32()
	if err != nil {
		return FileBlock{}, err
	}
	unpacked, err := cur.ReadUint32()
	if err != nil {
		return FileBlock{}, err
	}
	// Host OS, file CRC, mtime, format version and compression method
	// occupy the next 11 bytes. The index does not use them.
	if err := cur.Skip(11); err != nil {
		return FileBlock{}, err
	}
	nameLen, err := cur.ReadUint16()
	if err != nil {
		return FileBlock{}, err
	}
	attrs, err := cur.ReadUint32()
	if err != nil {
		return FileBlock{}, err
	}
	rawName, err := cur.ReadBytes(int(nameLen))
	if err != nil {
		return FileBlock{}, &TruncatedNameError{Offset: blockStart, NameLen: int(nameLen)}
	}
	// The payload follows the declared header size. A degenerate header
	// can declare a size smaller than the fields already decoded; the
	// payload then starts at the position actually reached.
	dataOffset := blockStart + size
	if pos := cur.Pos(); pos > dataOffset {
		dataOffset = pos
	}
	return FileBlock{
		RawName:      rawName,
		PackedSize:   packed,
		UnpackedSize: unpacked,
		Attributes:   attrs,
		HeaderOffset: blockStart,
		DataOffset:   dataOffset,
	}, nil
}
