package wordlist

import "unicode"

// leetMap is the fixed substitution alphabet. Each entry lists the
// alternatives for a letter, including the lowercase letter itself.
// Lookups are case-insensitive; characters without an entry map to
// themselves only.
var leetMap = map[rune][]rune{
	'a': {'a', '@', '4'},
	'e': {'e', '3'},
	'i': {'i', '1', '!'},
	'o': {'o', '0'},
	's': {'s', '5', '$'},
	't': {'t', '7'},
}

// LeetVariants returns every leet-speak expansion of token: the Cartesian
// product of the per-character alternative sets, each combination joined in
// original character order. The variant count is the product of the
// per-character alternative counts. When enabled is false, only the
// original token is returned.
//
// No truncation happens here; bounding the result is the pipeline's job.
func LeetVariants(token string, enabled bool) map[string]struct{} {
	if !enabled {
		return map[string]struct{}{token: {}}
	}

	// Per-character alternative sets, preserving original case for
	// characters outside the substitution alphabet.
	runes := []rune(token)
	choices := make([][]rune, len(runes))
	for i, r := range runes {
		if alts, ok := leetMap[unicode.ToLower(r)]; ok {
			choices[i] = alts
		} else {
			choices[i] = []rune{r}
		}
	}

	variants := make(map[string]struct{})
	buf := make([]rune, len(runes))

	var expand func(pos int)
	expand = func(pos int) {
		if pos == len(choices) {
			variants[string(buf)] = struct{}{}
			return
		}
		for _, alt := range choices[pos] {
			buf[pos] = alt
			expand(pos + 1)
		}
	}
	expand(0)

	return variants
}
