// Package wordlist implements the candidate wordlist generation engine:
// token splitting, case and leet-speak expansion, bounded permutation
// combining, suffix appending, and the pipeline that orders them.
package wordlist

import "unicode"

// SplitDigitRuns splits s into maximal runs of digit and non-digit
// characters, in order. Concatenating the returned fragments reproduces s
// exactly. An empty input yields nil.
//
// This recovers natural sub-tokens from mixed seeds, e.g. "john1985"
// splits into "john" and "1985".
func SplitDigitRuns(s string) []string {
	if s == "" {
		return nil
	}

	var runs []string
	start := 0
	runes := []rune(s)
	lastDigit := unicode.IsDigit(runes[0])

	for i := 1; i < len(runes); i++ {
		isDigit := unicode.IsDigit(runes[i])
		if isDigit != lastDigit {
			runs = append(runs, string(runes[start:i]))
			start = i
			lastDigit = isDigit
		}
	}
	runs = append(runs, string(runes[start:]))

	return runs
}
