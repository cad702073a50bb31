package match

import "remapper/internal/symbol"

//go:generate go tool stringer -type=Verdict -output=verdict_string.go

// Verdict is the tri-state result of a Matcher.
type Verdict int

const (
	// Unknown defers the decision to the next strategy.
	Unknown Verdict = iota
	// Match accepts the pair.
	Match
	// Fail rejects the pair.
	Fail
)

// Matcher compares two method bodies.
type Matcher interface {
	Match(left, right symbol.Body) Verdict
}

// Func adapts a function to the Matcher interface.
type Func func(left, right symbol.Body) Verdict

// Match calls f.
func (f Func) Match(left, right symbol.Body) Verdict { return f(left, right) }
