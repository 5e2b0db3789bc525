package rarindex

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// snapshotVersion is the on-disk version of the index snapshot format.
const snapshotVersion = 1

// encMode is the CBOR encoder configured with Core Deterministic Encoding
// (RFC 8949 §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. The same entry table always produces identical
// bytes, so snapshot files can be compared or content-addressed.
var encMode cbor.EncMode

// decMode is the CBOR decoder. Unknown fields are ignored for forward
// compatibility.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("rarindex: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("rarindex: CBOR decoder initialization failed: " + err.Error())
	}
}

type snapshot struct {
	Version uint32  `cbor:"version"`
	Entries []Entry `cbor:"entries"`
}

// MarshalBinary encodes the entry table as a deterministic CBOR snapshot.
// Drivers can cache the snapshot beside an archive and list it later
// without rescanning the blocks; see UnmarshalBinary.
func (a *Archive) MarshalBinary() ([]byte, error) {
	return encMode.Marshal(snapshot{Version: snapshotVersion, Entries: a.entries})
}

// UnmarshalBinary replaces the archive's contents with the entries from a
// snapshot produced by MarshalBinary.
func (a *Archive) UnmarshalBinary(data []byte) error {
	var s snapshot
	if err := decMode.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("rarindex: decode index snapshot: %w", err)
	}
	if s.Version != snapshotVersion {
		return fmt.Errorf("rarindex: unsupported index snapshot version %d", s.Version)
	}
	*a = *newArchive(s.Entries)
	return nil
}
