package mapper

import (
	"slices"
)

// Aligned sorts both sides with Less, then walks the sorted sources and
// lets Picker choose from the sorted candidates that are still unclaimed.
// Each pick shrinks the pool for the next source, so the alignment is
// greedy and order-dependent: deterministic, not globally optimal.
type Aligned[T Symbol] struct {
	Less   func(a, b T) bool
	Picker Picker[T]
}

// Map implements Mapper.
func (a Aligned[T]) Map(sources, candidates []T) Result[T] {
	if len(candidates) == 0 || len(sources) == 0 {
		return Unmapped(sources, candidates)
	}

	cmp := func(x, y T) int {
		switch {
		case a.Less(x, y):
			return -1
		case a.Less(y, x):
			return 1
		default:
			return 0
		}
	}

	srcs := slices.Clone(sources)
	cands := slices.Clone(candidates)
	slices.SortStableFunc(srcs, cmp)
	slices.SortStableFunc(cands, cmp)

	return InputOrder(pickAll(a.Picker, srcs, NewPool(cands)), sources, candidates)
}
