package rarindex

import (
	"iter"
	"strings"
)

// Archive is an ordered, immutable index of the entries found in one
// archive buffer. It holds metadata only; no payload data is retained.
type Archive struct {
	entries []Entry
	byName  map[string]int
}

func newArchive(entries []Entry) *Archive {
	byName := make(map[string]int, len(entries))
	for i, e := range entries {
		if _, ok := byName[e.Name]; !ok {
			byName[e.Name] = i
		}
	}
	return &Archive{entries: entries, byName: byName}
}

// Len returns the number of entries.
func (a *Archive) Len() int {
	return len(a.entries)
}

// Entries returns an iterator over all entries in archive order.
func (a *Archive) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range a.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Entry returns the entry with the given decoded name. When an archive
// stores several entries under the same name the first one wins. Lookup is
// by exact name; callers wanting slash-normalized matching should
// normalize at both ends with NormalizeName.
func (a *Archive) Entry(name string) (Entry, bool) {
	i, ok := a.byName[name]
	if !ok {
		return Entry{}, false
	}
	return a.entries[i], true
}

// EntriesWithPrefix returns an iterator over entries whose decoded name
// starts with prefix, in archive order.
func (a *Archive) EntriesWithPrefix(prefix string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range a.entries {
			if !strings.HasPrefix(e.Name, prefix) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Stats contains aggregate counts and sizes for an archive.
type Stats struct {
	// Files and Dirs count non-directory and directory entries.
	Files int
	Dirs  int

	// PackedSize and UnpackedSize are summed over all entries.
	PackedSize   uint64
	UnpackedSize uint64
}

// Stats aggregates counts and sizes over all entries.
func (a *Archive) Stats() Stats {
	var s Stats
	for _, e := range a.entries {
		if e.IsDir {
			s.Dirs++
		} else {
			s.Files++
		}
		s.PackedSize += uint64(e.PackedSize)
		s.UnpackedSize += uint64(e.UnpackedSize)
	}
	return s
}
