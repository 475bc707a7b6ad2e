// Package mcp provides an MCP (Model Context Protocol) server exposing
// passforge's wordlist generation and password analysis as tools.
package mcp

// GenerateWordlistInput defines the input for the generate_wordlist tool.
type GenerateWordlistInput struct {
	Inputs      []string `json:"inputs" jsonschema:"Seed tokens to build the wordlist from (names, dates, pet names)"`
	Years       []string `json:"years,omitempty" jsonschema:"Years to append to every combination"`
	Leet        bool     `json:"leet,omitempty" jsonschema:"Enable leet-speak substitutions (a->@, e->3, ...)"`
	Case        bool     `json:"case,omitempty" jsonschema:"Enable case variants (lower, UPPER, Capitalize)"`
	Suffixes    bool     `json:"suffixes,omitempty" jsonschema:"Append common suffixes (!, 123, 2024, ...)"`
	Separators  []string `json:"separators,omitempty" jsonschema:"Separators used when joining tokens (default: none, '.', '-', '_')"`
	MaxPerCombo int      `json:"max_per_combo,omitempty" jsonschema:"Maximum tokens per combination (default from config, minimum 1)"`
	MaxWords    int      `json:"max_words,omitempty" jsonschema:"Maximum words in the output, 0 for unlimited (default from config)"`
}

// GenerateWordlistOutput defines the output for the generate_wordlist tool.
type GenerateWordlistOutput struct {
	Words     []string `json:"words" jsonschema:"Generated candidate passwords, shortest first"`
	Count     int      `json:"count" jsonschema:"Number of words returned"`
	Total     int      `json:"total" jsonschema:"Number of candidates before truncation"`
	Truncated bool     `json:"truncated" jsonschema:"Whether the list was truncated to max_words"`
}

// AnalyzePasswordInput defines the input for the analyze_password tool.
type AnalyzePasswordInput struct {
	Password   string   `json:"password" jsonschema:"Password to analyze"`
	UserInputs []string `json:"user_inputs,omitempty" jsonschema:"Personal context strings that weaken the password (names, usernames)"`
	Save       bool     `json:"save,omitempty" jsonschema:"Record the analysis (SHA-256 digest only) in the local history"`
}

// CrackTimeItem is one attack scenario estimate in an analysis result.
type CrackTimeItem struct {
	Scenario string `json:"scenario"`
	Display  string `json:"display"`
}

// AnalyzePasswordOutput defines the output for the analyze_password tool.
// The plaintext password is never echoed back.
type AnalyzePasswordOutput struct {
	Score       int             `json:"score" jsonschema:"Strength score from 0 (weakest) to 4 (strongest)"`
	EntropyBits float64         `json:"entropy_estimate_bits" jsonschema:"Coarse entropy estimate in bits"`
	CrackTimes  []CrackTimeItem `json:"crack_times" jsonschema:"Estimated crack time per attack scenario"`
	Warning     string          `json:"warning,omitempty" jsonschema:"Warning for weak passwords"`
	Suggestions []string        `json:"suggestions,omitempty" jsonschema:"Suggestions for improving the password"`
}
