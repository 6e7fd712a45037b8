package importer

import "fmt"

// uniqueHeaders renames repeated column names to name_1, name_2, ... so no
// column shadows another. When blank is non-empty it replaces empty names.
func uniqueHeaders(raw []string, blank string) []string {
	used := make(map[string]bool, len(raw))
	counts := make(map[string]int, len(raw))
	out := make([]string, len(raw))
	for i, h := range raw {
		if h == "" && blank != "" {
			h = blank
		}
		name := h
		for used[name] {
			counts[h]++
			name = fmt.Sprintf("%s_%d", h, counts[h])
		}
		used[name] = true
		out[i] = name
	}
	return out
}
