package parser

import (
	"fmt"
	"strings"
)

// unnamedMarker marks generic column names produced by other tools for
// headerless columns ("Unnamed: 3").
const unnamedMarker = "Unnamed"

// PlaceholderName returns the synthesized name of the column at the
// 0-based index col.
func PlaceholderName(col int) string {
	return fmt.Sprintf("列%d", col+1)
}

// NormalizeHeaders turns a raw header row into column names.
// Blank headers and headers containing "Unnamed" become placeholders,
// everything else is trimmed. Repeated names get ".1", ".2", ... suffixes
// so that every column keeps a distinct key.
func NormalizeHeaders(raw []string) []string {
	names := make([]string, len(raw))
	seen := make(map[string]int, len(raw))

	for i, h := range raw {
		name := strings.TrimSpace(h)
		if name == "" || strings.Contains(name, unnamedMarker) {
			name = PlaceholderName(i)
		}

		if next, dup := seen[name]; dup {
			base := name
			for {
				name = fmt.Sprintf("%s.%d", base, next)
				next++
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[base] = next
		}
		seen[name] = 1
		names[i] = name
	}

	return names
}
