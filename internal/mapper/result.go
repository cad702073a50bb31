package mapper

import (
	"slices"

	"remapper/internal/symbol"
)

// Symbol is anything a Mapper can pair up.
type Symbol interface {
	comparable
	Handle() symbol.Handle
}

// Pair is one mapped source and the candidate it was matched to.
type Pair[T Symbol] struct {
	Source    T
	Candidate T
}

// Result is the outcome of one mapping call.
type Result[T Symbol] struct {
	UnmappedSources    []T
	Mappings           []Pair[T]
	UnmappedCandidates []T
}

// Mapper pairs sources with candidates.
type Mapper[T Symbol] interface {
	Map(sources, candidates []T) Result[T]
}

// Func adapts a function to the Mapper interface.
type Func[T Symbol] func(sources, candidates []T) Result[T]

// Map calls f.
func (f Func[T]) Map(sources, candidates []T) Result[T] { return f(sources, candidates) }

// Unmapped is the result that maps nothing.
func Unmapped[T Symbol](sources, candidates []T) Result[T] {
	return Result[T]{
		UnmappedSources:    slices.Clone(sources),
		UnmappedCandidates: slices.Clone(candidates),
	}
}

// Lookup returns the candidate mapped to source.
func (r Result[T]) Lookup(source T) (T, bool) {
	h := source.Handle()
	for _, p := range r.Mappings {
		if p.Source.Handle() == h {
			return p.Candidate, true
		}
	}

	var zero T

	return zero, false
}

// Index returns source handle -> candidate for repeated lookups.
func (r Result[T]) Index() map[symbol.Handle]T {
	out := make(map[symbol.Handle]T, len(r.Mappings))
	for _, p := range r.Mappings {
		out[p.Source.Handle()] = p.Candidate
	}

	return out
}

// Reverse returns candidate handle -> source.
func (r Result[T]) Reverse() map[symbol.Handle]T {
	out := make(map[symbol.Handle]T, len(r.Mappings))
	for _, p := range r.Mappings {
		out[p.Candidate.Handle()] = p.Source
	}

	return out
}

// Sources returns the mapped sources in mapping order.
func (r Result[T]) Sources() []T {
	out := make([]T, len(r.Mappings))
	for i, p := range r.Mappings {
		out[i] = p.Source
	}

	return out
}

// Merge concatenates independent results over disjoint inputs.
func Merge[T Symbol](results ...Result[T]) Result[T] {
	var out Result[T]
	for _, r := range results {
		out.UnmappedSources = append(out.UnmappedSources, r.UnmappedSources...)
		out.Mappings = append(out.Mappings, r.Mappings...)
		out.UnmappedCandidates = append(out.UnmappedCandidates, r.UnmappedCandidates...)
	}

	return out
}

// InputOrder sorts r in place so every list follows the order of the
// inputs; mappings follow source order.
func InputOrder[T Symbol](r Result[T], sources, candidates []T) Result[T] {
	srcPos := positions(sources)
	candPos := positions(candidates)

	bySrc := func(a, b T) int { return srcPos[a.Handle()] - srcPos[b.Handle()] }
	byCand := func(a, b T) int { return candPos[a.Handle()] - candPos[b.Handle()] }

	slices.SortStableFunc(r.UnmappedSources, bySrc)
	slices.SortStableFunc(r.UnmappedCandidates, byCand)
	slices.SortStableFunc(r.Mappings, func(a, b Pair[T]) int { return bySrc(a.Source, b.Source) })

	return r
}

func positions[T Symbol](items []T) map[symbol.Handle]int {
	out := make(map[symbol.Handle]int, len(items))
	for i, it := range items {
		out[it.Handle()] = i
	}

	return out
}
