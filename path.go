package rarindex

import "strings"

// NormalizeName converts an entry name to slash-separated form suitable
// for display or cross-entry comparison.
//
// It performs the following transformations:
//   - Converts backslash separators to slashes: `docs\readme.txt` → "docs/readme.txt"
//   - Strips leading and trailing separators: "/docs/" → "docs"
//   - Collapses consecutive separators: "docs//a.txt" → "docs/a.txt"
//   - Converts an empty name to root: "" → "."
//
// Parse never applies this transformation itself; Entry.Name carries the
// decoded header bytes as-is, and the directory rule runs on that raw
// form.
func NormalizeName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = strings.Trim(name, "/")
	if name == "" {
		return "."
	}

	// Collapse consecutive slashes by splitting and rejoining.
	parts := strings.Split(name, "/")
	result := parts[:0]
	for _, part := range parts {
		if part != "" {
			result = append(result, part)
		}
	}
	if len(result) == 0 {
		return "."
	}
	return strings.Join(result, "/")
}
