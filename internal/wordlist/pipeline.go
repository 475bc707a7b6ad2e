package wordlist

import (
	"sort"
	"strings"
)

// DefaultSeparators is the separator set used when none are configured.
var DefaultSeparators = []string{"", ".", "-", "_"}

// Options configures a single generation run. The zero value produces an
// empty wordlist; callers normally start from the configured defaults.
type Options struct {
	// Inputs are the raw seed strings. Whitespace is trimmed and blank
	// entries are dropped; each survivor is also digit-split into
	// sub-tokens.
	Inputs []string

	// Years are appended to every combined candidate with no separator.
	// Empty means no year appending.
	Years []string

	// Leet enables leet-speak expansion of every case variant.
	Leet bool

	// Case enables case-variant expansion of every base token.
	Case bool

	// Suffixes enables appending the built-in CommonSuffixes list.
	Suffixes bool

	// Separators join tokens within a combination. Empty means
	// DefaultSeparators.
	Separators []string

	// MaxPerCombo bounds the arrangement length in token combination.
	// Values below 1 are clamped to 1.
	MaxPerCombo int

	// MaxWords truncates the final sorted output. Zero or negative means
	// unlimited.
	MaxWords int
}

// Result carries the generated words along with per-stage counts, which the
// CLI traces at debug level.
type Result struct {
	Words     []string
	Base      int // distinct base tokens after trimming and digit-splitting
	Expanded  int // tokens after case and leet expansion
	Combined  int // candidates after permutation joining
	Total     int // candidates before truncation
	Truncated bool
}

// Generate runs the full wordlist pipeline and returns the ordered,
// deduplicated candidate list.
//
// The intermediate candidate set is fully materialized before truncation:
// leet expansion is exponential in token length and combination is
// factorial in token count, so memory is bounded only by the caller-supplied
// Separators, MaxPerCombo, and input sizes, not by MaxWords.
func Generate(opts Options) []string {
	return Run(opts).Words
}

// Run is Generate with per-stage counts.
func Run(opts Options) Result {
	maxPerCombo := opts.MaxPerCombo
	if maxPerCombo < 1 {
		maxPerCombo = 1
	}
	maxWords := opts.MaxWords
	if maxWords < 0 {
		maxWords = 0
	}
	separators := opts.Separators
	if len(separators) == 0 {
		separators = DefaultSeparators
	}

	// Base tokens: trimmed inputs plus their digit-run fragments.
	base := make(map[string]struct{})
	for _, raw := range opts.Inputs {
		item := strings.TrimSpace(raw)
		if item == "" {
			continue
		}
		base[item] = struct{}{}
		for _, frag := range SplitDigitRuns(item) {
			if frag != "" {
				base[frag] = struct{}{}
			}
		}
	}

	// Case then leet expansion of every base token.
	expanded := make(map[string]struct{})
	for tok := range base {
		for cv := range CaseVariants(tok, opts.Case) {
			for lv := range LeetVariants(cv, opts.Leet) {
				expanded[lv] = struct{}{}
			}
		}
	}

	// Combination input must be deterministically ordered so repeated runs
	// produce identical output.
	tokens := make([]string, 0, len(expanded))
	for t := range expanded {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)

	candidates := CombineTokens(tokens, maxPerCombo, separators)
	combined := len(candidates)

	if len(opts.Years) > 0 {
		candidates = AppendYears(candidates, opts.Years)
	}
	if opts.Suffixes {
		candidates = AppendSuffixes(candidates)
	}

	// Shorter candidates first, lexicographic within a length.
	words := make([]string, 0, len(candidates))
	for w := range candidates {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) < len(words[j])
		}
		return words[i] < words[j]
	})

	res := Result{
		Base:     len(base),
		Expanded: len(expanded),
		Combined: combined,
		Total:    len(words),
	}
	if maxWords > 0 && len(words) > maxWords {
		words = words[:maxWords]
		res.Truncated = true
	}
	res.Words = words

	return res
}
