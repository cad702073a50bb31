package match

import (
	"github.com/pmezard/go-difflib/difflib"

	"remapper/internal/symbol"
)

// DefaultMinInstructions is the size below which Diff does not try to match.
const DefaultMinInstructions = 8

// Diff accepts bodies whose edit-script similarity reaches the threshold
// for their size. A low similarity is too weak a signal to reject a pair,
// so Diff returns Match or Unknown, never Fail.
type Diff struct {
	Thresholds Thresholds
	// MinInstructions skips fuzzy matching when the larger body is smaller.
	MinInstructions int
}

// NewDiff returns a Diff with the default threshold table.
func NewDiff() Diff {
	return Diff{
		Thresholds:      DefaultThresholds(),
		MinInstructions: DefaultMinInstructions,
	}
}

// Match implements Matcher.
func (d Diff) Match(left, right symbol.Body) Verdict {
	size := max(len(left.Code), len(right.Code))
	if size < d.MinInstructions {
		return Unknown
	}

	stats := Compare(left.Code, right.Code)
	if stats.Reaches(d.Thresholds.For(size)) {
		return Match
	}

	return Unknown
}

// DiffStats summarises an edit script. A replaced block counts as many
// differing rows as the longer of its two sides.
type DiffStats struct {
	Equal     int
	Differing int
}

// Total is the number of aligned rows.
func (s DiffStats) Total() int { return s.Equal + s.Differing }

// Similarity is 100 - differing/total*100; two empty bodies are identical.
func (s DiffStats) Similarity() float64 {
	if s.Total() == 0 {
		return 100
	}

	return 100 - float64(s.Differing)/float64(s.Total())*100
}

// Reaches reports similarity >= pct without rounding error on whole percents.
func (s DiffStats) Reaches(pct float64) bool {
	if s.Total() == 0 {
		return true
	}

	return float64(s.Equal)*100 >= pct*float64(s.Total())
}

// Compare computes the edit script between two instruction lists, using
// structural keys as diff tokens.
func Compare(left, right []symbol.Instruction) DiffStats {
	m := difflib.NewMatcherWithJunk(keys(left), keys(right), false, nil)

	var s DiffStats

	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'e':
			s.Equal += op.I2 - op.I1
		case 'r':
			s.Differing += max(op.I2-op.I1, op.J2-op.J1)
		case 'd':
			s.Differing += op.I2 - op.I1
		case 'i':
			s.Differing += op.J2 - op.J1
		}
	}

	return s
}

func keys(code []symbol.Instruction) []string {
	out := make([]string, len(code))
	for i := range code {
		out[i] = code[i].Key()
	}

	return out
}
