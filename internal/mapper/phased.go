package mapper

import (
	"slices"
	"strconv"
)

// Phased runs its mappers in order. Each phase only sees what the previous
// phases left unmapped, so earlier phases have first claim.
type Phased[T Symbol] []Mapper[T]

// Map implements Mapper.
func (p Phased[T]) Map(sources, candidates []T) Result[T] {
	if len(candidates) == 0 || len(sources) == 0 {
		return Unmapped(sources, candidates)
	}

	srcs, cands := sources, candidates

	var pairs []Pair[T]

	for i, m := range p {
		if len(srcs) == 0 || len(cands) == 0 {
			break
		}

		r := m.Map(srcs, cands)
		MustCheck("phase "+strconv.Itoa(i), r, srcs, cands)

		pairs = append(pairs, r.Mappings...)
		srcs, cands = r.UnmappedSources, r.UnmappedCandidates
	}

	return Result[T]{
		UnmappedSources:    slices.Clone(srcs),
		Mappings:           pairs,
		UnmappedCandidates: slices.Clone(cands),
	}
}
