package rarindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meigma/rarindex"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "a.txt", "a.txt"},
		{"backslashes", `docs\readme.txt`, "docs/readme.txt"},
		{"mixed separators", `docs\sub/readme.txt`, "docs/sub/readme.txt"},
		{"leading slash", "/docs/readme.txt", "docs/readme.txt"},
		{"leading backslash", `\docs\readme.txt`, "docs/readme.txt"},
		{"trailing slash", "docs/", "docs"},
		{"doubled separators", `docs\\sub`, "docs/sub"},
		{"empty", "", "."},
		{"only separators", `\\/`, "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rarindex.NormalizeName(tt.input))
		})
	}
}
