// Package analysis provides password strength analysis backed by a zxcvbn
// scorer. It produces a Report with a 0-4 score, a coarse entropy estimate,
// human-readable crack-time estimates, and feedback text.
package analysis

import (
	"errors"
	"math"
	"strconv"

	"github.com/nbutton23/zxcvbn-go"
)

// ErrScorerUnavailable is returned when analysis is requested but no scorer
// is configured. It is fatal for the analysis invocation; the generation
// path is unaffected.
var ErrScorerUnavailable = errors.New("password scorer unavailable")

// Scorer scores a password given optional user-supplied context strings
// (names, dates, and other tokens an attacker might know).
type Scorer interface {
	Score(password string, userInputs []string) ScoreResult
}

// ScoreResult is the raw output of a Scorer.
type ScoreResult struct {
	// Score is the 0 (weakest) to 4 (strongest) strength class.
	Score int

	// Entropy is the scorer's guess-entropy estimate in bits, used to
	// derive crack-time scenarios.
	Entropy float64
}

// zxcvbnScorer is the default Scorer, backed by the zxcvbn-go port.
type zxcvbnScorer struct{}

func (zxcvbnScorer) Score(password string, userInputs []string) ScoreResult {
	res := zxcvbn.PasswordStrength(password, userInputs)
	return ScoreResult{Score: res.Score, Entropy: res.Entropy}
}

// CrackTime is one attack-scenario estimate.
type CrackTime struct {
	Scenario string `json:"scenario"`
	Display  string `json:"display"`
}

// Report is the result of analyzing one password.
type Report struct {
	Password    string      `json:"password"`
	Score       int         `json:"score"`
	EntropyBits float64     `json:"entropy_estimate_bits"`
	CrackTimes  []CrackTime `json:"crack_times"`
	Warning     string      `json:"warning,omitempty"`
	Suggestions []string    `json:"suggestions,omitempty"`
}

// Analyzer analyzes passwords with a configured Scorer.
type Analyzer struct {
	scorer Scorer
}

// NewAnalyzer returns an Analyzer backed by the built-in zxcvbn scorer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{scorer: zxcvbnScorer{}}
}

// NewAnalyzerWithScorer returns an Analyzer using the given scorer. A nil
// scorer makes every Analyze call fail with ErrScorerUnavailable.
func NewAnalyzerWithScorer(s Scorer) *Analyzer {
	return &Analyzer{scorer: s}
}

// Analyze scores password against the optional user-supplied context
// strings and builds the full report.
func (a *Analyzer) Analyze(password string, userInputs []string) (*Report, error) {
	if a == nil || a.scorer == nil {
		return nil, ErrScorerUnavailable
	}

	res := a.scorer.Score(password, userInputs)

	return &Report{
		Password:    password,
		Score:       res.Score,
		EntropyBits: EntropyFromScore(res.Score),
		CrackTimes:  crackTimes(res.Entropy),
		Warning:     scoreWarnings[clampScore(res.Score)],
		Suggestions: scoreSuggestions[clampScore(res.Score)],
	}, nil
}

// entropyByScore maps the integer score to fixed bit values. This is a
// coarse heuristic with no information-theoretic derivation; callers must
// not treat it as a real entropy calculation.
var entropyByScore = [5]float64{0.0, 10.0, 28.0, 40.0, 60.0}

// EntropyFromScore returns the fixed entropy-bits heuristic for a 0-4
// score. Out-of-range scores map to 0.
func EntropyFromScore(score int) float64 {
	if score < 0 || score > 4 {
		return 0.0
	}
	return entropyByScore[score]
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 4 {
		return 4
	}
	return score
}

// Attack scenarios and guess rates, matching the reference zxcvbn
// crack-time display set.
var attackScenarios = []struct {
	name string
	rate float64 // guesses per second
}{
	{"online throttled (100 per hour)", 100.0 / 3600.0},
	{"online unthrottled (10 per second)", 10},
	{"offline slow hash (10k per second)", 1e4},
	{"offline fast hash (10B per second)", 1e10},
}

// crackTimes derives the per-scenario estimates from the scorer's entropy.
// Expected guesses are half the keyspace.
func crackTimes(entropyBits float64) []CrackTime {
	guesses := 0.5 * math.Pow(2, entropyBits)

	out := make([]CrackTime, 0, len(attackScenarios))
	for _, sc := range attackScenarios {
		out = append(out, CrackTime{
			Scenario: sc.name,
			Display:  displayTime(guesses / sc.rate),
		})
	}
	return out
}

// displayTime renders a duration in seconds as a rough human-readable
// estimate.
func displayTime(seconds float64) string {
	const (
		minute  = 60
		hour    = minute * 60
		day     = hour * 24
		month   = day * 31
		year    = month * 12
		century = year * 100
	)

	switch {
	case seconds < 1:
		return "instant"
	case seconds < minute:
		return plural(seconds, "second")
	case seconds < hour:
		return plural(seconds/minute, "minute")
	case seconds < day:
		return plural(seconds/hour, "hour")
	case seconds < month:
		return plural(seconds/day, "day")
	case seconds < year:
		return plural(seconds/month, "month")
	case seconds < century:
		return plural(seconds/year, "year")
	default:
		return "centuries"
	}
}

func plural(n float64, unit string) string {
	count := int(math.Round(n))
	if count <= 1 {
		count = 1
	}
	if count == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(count) + " " + unit + "s"
}
