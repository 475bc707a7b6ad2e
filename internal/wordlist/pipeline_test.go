package wordlist

import (
	"reflect"
	"sort"
	"testing"
)

func TestGenerate_EndToEnd(t *testing.T) {
	opts := Options{
		Inputs:      []string{"Max", "1999"},
		Separators:  []string{"", "-"},
		MaxPerCombo: 2,
	}

	words := Generate(opts)

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}

	for _, want := range []string{"Max", "1999", "Max1999", "Max-1999", "1999Max", "1999-Max"} {
		if _, ok := set[want]; !ok {
			t.Errorf("missing candidate %q in %v", want, words)
		}
	}

	// Shortest candidates first.
	if words[0] != "Max" {
		t.Errorf("expected shortest candidate first, got %q", words[0])
	}
	for i := 1; i < len(words); i++ {
		if len(words[i-1]) > len(words[i]) {
			t.Errorf("output not sorted by length at %d: %q before %q", i, words[i-1], words[i])
		}
		if len(words[i-1]) == len(words[i]) && words[i-1] >= words[i] {
			t.Errorf("output not lexicographic within length at %d: %q before %q", i, words[i-1], words[i])
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := Options{
		Inputs:      []string{"alice", "bob42", " spaced "},
		Years:       []string{"2020"},
		Leet:        true,
		Case:        true,
		Suffixes:    true,
		MaxPerCombo: 2,
		MaxWords:    500,
	}

	first := Generate(opts)
	second := Generate(opts)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must produce byte-identical output")
	}
	if len(first) != 500 {
		t.Errorf("expected truncation to 500 words, got %d", len(first))
	}
}

func TestGenerate_Truncation(t *testing.T) {
	opts := Options{
		Inputs:      []string{"aa", "bb", "cc"},
		MaxPerCombo: 3,
	}

	full := Generate(opts)

	opts.MaxWords = 4
	truncated := Generate(opts)

	if len(truncated) != 4 {
		t.Fatalf("expected 4 words, got %d", len(truncated))
	}
	if !reflect.DeepEqual(truncated, full[:4]) {
		t.Errorf("truncated output %v is not a prefix of full output %v", truncated, full)
	}

	// max-words beyond the candidate count returns everything.
	opts.MaxWords = len(full) + 100
	if got := Generate(opts); len(got) != len(full) {
		t.Errorf("expected %d words, got %d", len(full), len(got))
	}
}

func TestGenerate_ClampsBounds(t *testing.T) {
	opts := Options{
		Inputs:      []string{"tok"},
		MaxPerCombo: -3, // clamped to 1
		MaxWords:    -1, // clamped to unlimited
	}

	words := Generate(opts)

	if len(words) != 1 || words[0] != "tok" {
		t.Errorf("expected single candidate, got %v", words)
	}
}

func TestGenerate_FiltersBlankInputs(t *testing.T) {
	opts := Options{
		Inputs:      []string{"", "   ", "\t", "real"},
		MaxPerCombo: 1,
	}

	words := Generate(opts)

	if len(words) != 1 || words[0] != "real" {
		t.Errorf("blank inputs must be silently dropped, got %v", words)
	}
	for _, w := range words {
		if w == "" {
			t.Error("output must never contain the empty string")
		}
	}
}

func TestGenerate_DigitSplitAddsFragments(t *testing.T) {
	opts := Options{
		Inputs:      []string{"john1985"},
		MaxPerCombo: 1,
	}

	words := Generate(opts)

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	for _, want := range []string{"john1985", "john", "1985"} {
		if _, ok := set[want]; !ok {
			t.Errorf("missing candidate %q in %v", want, words)
		}
	}
}

func TestGenerate_YearsOnlyWhenSupplied(t *testing.T) {
	base := Options{Inputs: []string{"pw"}, MaxPerCombo: 1}

	without := Generate(base)

	withYears := base
	withYears.Years = []string{"99"}
	with := Generate(withYears)

	if len(with) != 2*len(without) {
		t.Errorf("expected year appending to double the set, got %d vs %d", len(with), len(without))
	}

	set := make(map[string]struct{}, len(with))
	for _, w := range with {
		set[w] = struct{}{}
	}
	if _, ok := set["pw99"]; !ok {
		t.Errorf("missing year-suffixed candidate, got %v", with)
	}
}

func TestGenerate_DefaultSeparators(t *testing.T) {
	opts := Options{
		Inputs:      []string{"a", "b"},
		MaxPerCombo: 2,
	}

	words := Generate(opts)

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	for _, want := range []string{"ab", "a.b", "a-b", "a_b"} {
		if _, ok := set[want]; !ok {
			t.Errorf("missing default-separator candidate %q in %v", want, words)
		}
	}
}

func TestRun_StageCounts(t *testing.T) {
	res := Run(Options{
		Inputs:      []string{"max1999"},
		MaxPerCombo: 1,
	})

	// Base tokens: max1999, max, 1999.
	if res.Base != 3 {
		t.Errorf("expected 3 base tokens, got %d", res.Base)
	}
	if res.Expanded != 3 {
		t.Errorf("expected 3 expanded tokens, got %d", res.Expanded)
	}
	if res.Combined != 3 || res.Total != 3 {
		t.Errorf("expected 3 candidates, got combined=%d total=%d", res.Combined, res.Total)
	}
	if res.Truncated {
		t.Error("no truncation expected")
	}
	if !sort.SliceIsSorted(res.Words, func(i, j int) bool {
		if len(res.Words[i]) != len(res.Words[j]) {
			return len(res.Words[i]) < len(res.Words[j])
		}
		return res.Words[i] < res.Words[j]
	}) {
		t.Errorf("words not sorted: %v", res.Words)
	}
}
