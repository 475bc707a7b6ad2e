package analysis

import (
	"fmt"
	"strings"
)

// Feedback tables keyed by score. The Go zxcvbn port does not expose the
// reference implementation's feedback field, so the messages are fixed per
// strength class.
var scoreWarnings = [5]string{
	"This password is among the most commonly guessed.",
	"This password is very easy to guess.",
	"This password is somewhat guessable.",
	"",
	"",
}

var scoreSuggestions = [5][]string{
	{
		"Use several unrelated words instead of a single guessable token.",
		"Avoid names, dates, and keyboard patterns.",
	},
	{
		"Add more words or increase length significantly.",
		"Avoid predictable substitutions like '@' for 'a'.",
	},
	{
		"Add another word or a few more characters.",
	},
	{
		"Consider adding one more word for long-term safety.",
	},
	nil,
}

// FormatReport renders a report as display text, one section per report:
//
//	=== Analysis ===
//	Password: hunter2
//	Score (0-4): 0 | Entropy ~0 bits
//	Crack times (est.):
//	  - online throttled (100 per hour): instant
//	  ...
func FormatReport(r *Report) string {
	var b strings.Builder

	b.WriteString("=== Analysis ===\n")
	fmt.Fprintf(&b, "Password: %s\n", r.Password)
	fmt.Fprintf(&b, "Score (0-4): %d | Entropy ~%g bits\n", r.Score, r.EntropyBits)

	b.WriteString("Crack times (est.):\n")
	for _, ct := range r.CrackTimes {
		fmt.Fprintf(&b, "  - %s: %s\n", ct.Scenario, ct.Display)
	}

	if r.Warning != "" {
		fmt.Fprintf(&b, "Warning: %s\n", r.Warning)
	}
	if len(r.Suggestions) > 0 {
		b.WriteString("Suggestions:\n")
		for _, s := range r.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}

	return b.String()
}
