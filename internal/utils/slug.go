package utils

import (
	"strings"
	"unicode"
)

// DisplayName maps a team-member slug like "jane_doe" to "Jane Doe".
// Pure and total: empty words are dropped, so an empty or underscore-only
// slug maps to the empty string and symbol-only words pass through with
// their first rune upper-cased where that is meaningful.
func DisplayName(slug string) string {
	words := strings.Split(slug, "_")
	out := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		out = append(out, string(runes))
	}
	return strings.Join(out, " ")
}
