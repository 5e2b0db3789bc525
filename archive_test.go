package rarindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/rarindex"
	"github.com/meigma/rarindex/internal/testutil"
)

func buildArchive(t *testing.T) *rarindex.Archive {
	t.Helper()
	data := testutil.Build(t,
		testutil.ArchiveHeader(t),
		testutil.FileBlock(t, testutil.FileSpec{Name: "docs/", Attributes: 0x10}),
		testutil.FileBlock(t, testutil.FileSpec{Name: "docs/readme.txt", PackedSize: 40, UnpackedSize: 100}),
		testutil.FileBlock(t, testutil.FileSpec{Name: "docs/spec.txt", PackedSize: 10, UnpackedSize: 25}),
		testutil.FileBlock(t, testutil.FileSpec{Name: "main.go", PackedSize: 30, UnpackedSize: 60}),
	)
	archive, err := rarindex.Parse(data)
	require.NoError(t, err)
	return archive
}

func TestArchiveLookup(t *testing.T) {
	archive := buildArchive(t)

	e, ok := archive.Entry("docs/readme.txt")
	require.True(t, ok)
	assert.Equal(t, uint32(100), e.UnpackedSize)

	_, ok = archive.Entry("missing.txt")
	assert.False(t, ok)
}

func TestArchiveLookupDuplicateNamesFirstWins(t *testing.T) {
	data := testutil.Build(t,
		testutil.FileBlock(t, testutil.FileSpec{Name: "a.txt", UnpackedSize: 1}),
		testutil.FileBlock(t, testutil.FileSpec{Name: "a.txt", UnpackedSize: 2}),
	)
	archive, err := rarindex.Parse(data)
	require.NoError(t, err)
	require.Equal(t, 2, archive.Len())

	e, ok := archive.Entry("a.txt")
	require.True(t, ok)
	assert.Equal(t, uint32(1), e.UnpackedSize)
}

func TestArchiveEntriesEarlyStop(t *testing.T) {
	archive := buildArchive(t)

	var count int
	for range archive.Entries() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestArchiveEntriesWithPrefix(t *testing.T) {
	archive := buildArchive(t)

	var names []string
	for e := range archive.EntriesWithPrefix("docs/") {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"docs/", "docs/readme.txt", "docs/spec.txt"}, names)

	names = nil
	for e := range archive.EntriesWithPrefix("nope/") {
		names = append(names, e.Name)
	}
	assert.Empty(t, names)
}

func TestArchiveStats(t *testing.T) {
	archive := buildArchive(t)

	s := archive.Stats()
	assert.Equal(t, 3, s.Files)
	assert.Equal(t, 1, s.Dirs)
	assert.Equal(t, uint64(80), s.PackedSize)
	assert.Equal(t, uint64(185), s.UnpackedSize)
}
