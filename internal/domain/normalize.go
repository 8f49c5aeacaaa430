package domain

import (
	"regexp"
	"strings"
)

// parenNote matches an innermost note; Normalize repeats it so nested notes
// like "(x (y))" go away entirely.
var parenNote = regexp.MustCompile(`\s*\([^()]*\)\s*`)

// Normalize lowercases a raw entry, drops parenthetical notes such as
// "(backup)" together with their surrounding whitespace, and trims it.
// An empty result means the entry is unusable.
func Normalize(raw string) Domain {
	s := strings.ToLower(strings.TrimSpace(raw))
	for parenNote.MatchString(s) {
		s = parenNote.ReplaceAllString(s, "")
	}
	return Domain(strings.TrimSpace(s))
}

// NormalizeAll normalizes raw entries, drops empty ones and removes
// duplicates. The first occurrence of a domain keeps its position.
func NormalizeAll(raw []string) []Domain {
	seen := make(map[Domain]struct{}, len(raw))
	out := make([]Domain, 0, len(raw))
	for _, r := range raw {
		d := Normalize(r)
		if d == "" {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
