package chain

import (
	"slices"

	"remapper/internal/mapper"
	"remapper/internal/symbol"
)

// Link connects a newest-generation symbol to the older symbol it was
// matched with.
type Link[T mapper.Symbol] struct {
	Source    T
	Candidate T
	// Generation is the index of the generation Candidate belongs to.
	Generation int
	Via        Via
	// Trail is Candidate followed by its counterparts in ever older
	// generations, as far as the hops connect them.
	Trail []T

	hop int
}

// Origin returns the oldest symbol on the trail.
func (l Link[T]) Origin() T {
	return l.Trail[len(l.Trail)-1]
}

// Lineage is the final partition of the newest generation for one kind.
type Lineage[T mapper.Symbol] struct {
	// Links are ordered like the newest generation's symbols.
	Links []Link[T]
	// Unmapped are the newest symbols without any counterpart.
	Unmapped []T
}

// Lookup returns the link of source.
func (l Lineage[T]) Lookup(source T) (Link[T], bool) {
	h := source.Handle()
	for _, link := range l.Links {
		if link.Source.Handle() == h {
			return link, true
		}
	}

	return Link[T]{}, false
}

// newLineage orders links like all and lists the symbols of all that have none.
func newLineage[T mapper.Symbol](all []T, links []Link[T]) Lineage[T] {
	pos := make(map[symbol.Handle]int, len(all))
	for i, s := range all {
		pos[s.Handle()] = i
	}

	linked := make(map[symbol.Handle]bool, len(links))
	for _, l := range links {
		linked[l.Source.Handle()] = true
	}

	sorted := slices.Clone(links)
	slices.SortFunc(sorted, func(a, b Link[T]) int {
		return pos[a.Source.Handle()] - pos[b.Source.Handle()]
	})

	var unmapped []T

	for _, s := range all {
		if !linked[s.Handle()] {
			unmapped = append(unmapped, s)
		}
	}

	return Lineage[T]{Links: sorted, Unmapped: unmapped}
}

// trail follows first, a candidate of hops[hop], through the hops further back.
func trail[T mapper.Symbol](hops []*Hop, hop int, first T, counterpart func(*Hop) map[symbol.Handle]T) []T {
	out := []T{first}

	cur := first
	for k := hop + 1; k < len(hops); k++ {
		next, ok := counterpart(hops[k])[cur.Handle()]
		if !ok {
			break
		}

		out = append(out, next)
		cur = next
	}

	return out
}

// parameterTrail follows a parameter along the trail of its method while
// position and descriptor stay the same.
func parameterTrail(first *symbol.Parameter, methods []*symbol.Method) []*symbol.Parameter {
	out := []*symbol.Parameter{first}

	for _, m := range methods[1:] {
		if first.Index >= len(m.Params) || m.Params[first.Index].Desc != first.Desc {
			break
		}

		out = append(out, m.Params[first.Index])
	}

	return out
}
