package mapper

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"remapper/internal/symbol"
)

// InvariantError reports a broken bijection. Combinators panic with it.
type InvariantError struct {
	Mapper string
	Reason string
	Detail string
}

func (e *InvariantError) Error() string {
	msg := "mapping invariant violated: " + e.Reason
	if e.Mapper != "" {
		msg = e.Mapper + ": " + msg
	}

	if e.Detail != "" {
		msg += "\n" + e.Detail
	}

	return msg
}

// Check verifies that r is a bijection over exactly the given inputs.
func (r Result[T]) Check(sources, candidates []T) error {
	if err := cover("source", sources, r.UnmappedSources, r.Mappings, func(p Pair[T]) T { return p.Source }); err != nil {
		return err
	}

	return cover("candidate", candidates, r.UnmappedCandidates, r.Mappings, func(p Pair[T]) T { return p.Candidate })
}

// cover checks that mapped and unmapped partition input.
func cover[T Symbol](side string, input, unmapped []T, pairs []Pair[T], pick func(Pair[T]) T) error {
	declared := make(map[symbol.Handle]bool, len(input))
	for i, s := range input {
		if s.Handle().IsZero() {
			return &InvariantError{Reason: fmt.Sprintf("%s %d was not built by a symbol.Builder", side, i)}
		}

		declared[s.Handle()] = true
	}

	seen := make(map[symbol.Handle]string, len(input))

	visit := func(s T, how string) error {
		h := s.Handle()
		if !declared[h] {
			return &InvariantError{
				Reason: fmt.Sprintf("%s %s is %s but was not an input", side, h, how),
				Detail: spew.Sdump(h),
			}
		}

		if prev, dup := seen[h]; dup {
			return &InvariantError{
				Reason: fmt.Sprintf("%s %s is both %s and %s", side, h, prev, how),
				Detail: spew.Sdump(h),
			}
		}

		seen[h] = how

		return nil
	}

	for _, p := range pairs {
		if err := visit(pick(p), "mapped"); err != nil {
			return err
		}
	}

	for _, s := range unmapped {
		if err := visit(s, "unmapped"); err != nil {
			return err
		}
	}

	if len(seen) != len(declared) {
		for _, s := range input {
			if _, ok := seen[s.Handle()]; !ok {
				return &InvariantError{
					Reason: fmt.Sprintf("%s %s was dropped", side, s.Handle()),
					Detail: spew.Sdump(s.Handle()),
				}
			}
		}
	}

	return nil
}

// MustCheck panics when an inner mapper broke the bijection.
func MustCheck[T Symbol](name string, r Result[T], sources, candidates []T) {
	err := r.Check(sources, candidates)
	if err == nil {
		return
	}

	if ie, ok := err.(*InvariantError); ok {
		ie.Mapper = name
		panic(ie)
	}

	panic(err)
}
