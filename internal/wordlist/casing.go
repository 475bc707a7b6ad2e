package wordlist

import (
	"strings"
	"unicode"
)

// CaseVariants returns the case expansions of token: the token itself,
// all-lowercase, all-uppercase, first-letter capitalized, and title case.
// Variants that coincide collapse (set semantics). When enabled is false,
// only the original token is returned.
func CaseVariants(token string, enabled bool) map[string]struct{} {
	variants := map[string]struct{}{token: {}}
	if !enabled {
		return variants
	}

	variants[strings.ToLower(token)] = struct{}{}
	variants[strings.ToUpper(token)] = struct{}{}
	variants[capitalize(token)] = struct{}{}
	variants[titleCase(token)] = struct{}{}

	return variants
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// titleCase capitalizes each whitespace-separated word.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	startOfWord := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
