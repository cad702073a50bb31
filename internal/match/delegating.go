package match

import "remapper/internal/symbol"

// Delegating tries its matchers in order and returns the first verdict that
// is not Unknown. When every matcher defers, the pair is rejected.
type Delegating []Matcher

// Match implements Matcher.
func (d Delegating) Match(left, right symbol.Body) Verdict {
	for _, m := range d {
		if v := m.Match(left, right); v != Unknown {
			return v
		}
	}

	return Fail
}
