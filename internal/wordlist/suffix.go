package wordlist

// CommonSuffixes is the fixed built-in list appended by AppendSuffixes:
// punctuation and short numeric strings commonly tacked onto passwords.
var CommonSuffixes = []string{
	"!", "@", "#", "1", "12", "123", "1234",
	"2020", "2021", "2022", "2023", "2024", "2025",
	".", "*", "!", "00",
}

// AppendYears returns the union of words with every word+year
// concatenation (no separator). The original words are preserved.
func AppendYears(words map[string]struct{}, years []string) map[string]struct{} {
	return appendAll(words, years)
}

// AppendSuffixes returns the union of words with every word+suffix
// concatenation, using the built-in CommonSuffixes list. The original
// words are preserved.
func AppendSuffixes(words map[string]struct{}) map[string]struct{} {
	return appendAll(words, CommonSuffixes)
}

func appendAll(words map[string]struct{}, tails []string) map[string]struct{} {
	out := make(map[string]struct{}, len(words)*(1+len(tails)))
	for w := range words {
		out[w] = struct{}{}
		for _, tail := range tails {
			out[w+tail] = struct{}{}
		}
	}
	return out
}
