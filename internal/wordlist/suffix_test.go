package wordlist

import "testing"

func toSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func TestAppendYears(t *testing.T) {
	in := toSet("max", "rex")
	years := []string{"1999", "2001"}

	got := AppendYears(in, years)

	// Identity-preserving and multiplicative: |in| * (1 + |years|).
	wantSize := len(in) * (1 + len(years))
	if len(got) != wantSize {
		t.Errorf("expected %d words, got %d: %v", wantSize, len(got), got)
	}

	for w := range in {
		if _, ok := got[w]; !ok {
			t.Errorf("original word %q missing from output", w)
		}
		for _, y := range years {
			if _, ok := got[w+y]; !ok {
				t.Errorf("missing %q in output", w+y)
			}
		}
	}
}

func TestAppendYears_NoYears(t *testing.T) {
	in := toSet("max")

	got := AppendYears(in, nil)

	if len(got) != 1 {
		t.Errorf("expected passthrough, got %v", got)
	}
}

func TestAppendSuffixes(t *testing.T) {
	in := toSet("word")

	got := AppendSuffixes(in)

	if _, ok := got["word"]; !ok {
		t.Error("original word missing from output")
	}
	for _, s := range []string{"word!", "word123", "word2024", "word00"} {
		if _, ok := got[s]; !ok {
			t.Errorf("missing %q in output", s)
		}
	}

	// CommonSuffixes lists "!" twice; the set collapses it, so the size is
	// 1 + distinct suffix count.
	distinct := make(map[string]struct{})
	for _, s := range CommonSuffixes {
		distinct[s] = struct{}{}
	}
	if len(got) != 1+len(distinct) {
		t.Errorf("expected %d words, got %d", 1+len(distinct), len(got))
	}
}
