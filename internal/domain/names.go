package domain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName derives a human-readable name from a domain: the label before
// the first dot, hyphens read as spaces, each whitespace-separated word
// capitalized (first rune upper, the rest lower).
//
//	DisplayName("cyber-tool-suite.com") // "Cyber Tool Suite"
func DisplayName(d Domain) string {
	base, _, _ := strings.Cut(string(d), ".")
	words := strings.Fields(strings.ReplaceAll(base, "-", " "))
	if len(words) == 0 {
		return ""
	}

	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + lower.String(w[size:])
	}
	return strings.Join(words, " ")
}
