package match

import "remapper/internal/symbol"

// Direct matches bodies of identical length whose instructions are
// structurally equal one by one. It never returns Unknown.
type Direct struct{}

// Match implements Matcher.
func (Direct) Match(left, right symbol.Body) Verdict {
	if len(left.Code) != len(right.Code) {
		return Fail
	}

	for i := range left.Code {
		if !left.Code[i].Equal(right.Code[i]) {
			return Fail
		}
	}

	return Match
}
