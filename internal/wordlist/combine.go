package wordlist

import "strings"

// CombineTokens returns every string formed by taking an ordered arrangement
// (permutation without repetition) of 1 to maxPerCombo tokens and joining it
// with each separator. Arrangement length is additionally capped by the
// number of tokens. Empty tokens are skipped.
//
// Growth is combinatorial in both the token count and maxPerCombo; callers
// must bound both to keep generation tractable.
func CombineTokens(tokens []string, maxPerCombo int, separators []string) map[string]struct{} {
	if maxPerCombo < 1 {
		maxPerCombo = 1
	}

	pool := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			pool = append(pool, t)
		}
	}

	combos := make(map[string]struct{})
	maxLen := maxPerCombo
	if len(pool) < maxLen {
		maxLen = len(pool)
	}

	used := make([]bool, len(pool))
	arrangement := make([]string, 0, maxLen)

	var permute func()
	permute = func() {
		if len(arrangement) > 0 {
			for _, sep := range separators {
				combos[strings.Join(arrangement, sep)] = struct{}{}
			}
		}
		if len(arrangement) == maxLen {
			return
		}
		for i := range pool {
			if used[i] {
				continue
			}
			used[i] = true
			arrangement = append(arrangement, pool[i])
			permute()
			arrangement = arrangement[:len(arrangement)-1]
			used[i] = false
		}
	}
	permute()

	return combos
}
