package mapper

import (
	"fmt"
	"iter"

	"remapper/internal/symbol"
)

// Pool is the set of candidates not yet claimed during one mapping call,
// in input order.
type Pool[T Symbol] struct {
	items   []T
	claimed []bool
	index   map[symbol.Handle]int
	left    int
}

// NewPool copies candidates into a fresh pool.
func NewPool[T Symbol](candidates []T) *Pool[T] {
	p := &Pool[T]{
		items:   make([]T, len(candidates)),
		claimed: make([]bool, len(candidates)),
		index:   make(map[symbol.Handle]int, len(candidates)),
		left:    len(candidates),
	}

	for i, c := range candidates {
		h := c.Handle()
		if h.IsZero() {
			panic(&InvariantError{Reason: fmt.Sprintf("candidate %d was not built by a symbol.Builder", i)})
		}

		if _, dup := p.index[h]; dup {
			panic(&InvariantError{Reason: fmt.Sprintf("candidate %s listed twice", h)})
		}

		p.items[i] = c
		p.index[h] = i
	}

	return p
}

// Len is the number of unclaimed candidates.
func (p *Pool[T]) Len() int { return p.left }

// All yields the unclaimed candidates in order.
func (p *Pool[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, c := range p.items {
			if p.claimed[i] {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// First returns the first unclaimed candidate satisfying pred.
func (p *Pool[T]) First(pred func(T) bool) (T, bool) {
	for c := range p.All() {
		if pred(c) {
			return c, true
		}
	}

	var zero T

	return zero, false
}

// Contains reports whether c is still unclaimed.
func (p *Pool[T]) Contains(c T) bool {
	i, ok := p.index[c.Handle()]
	return ok && !p.claimed[i]
}

// Claim removes c from the pool. Claiming a symbol that is not an
// unclaimed member of the pool breaks the bijection and panics.
func (p *Pool[T]) Claim(c T) {
	i, ok := p.index[c.Handle()]
	if !ok {
		panic(&InvariantError{Reason: fmt.Sprintf("candidate %s is not an input", c.Handle())})
	}

	if p.claimed[i] {
		panic(&InvariantError{Reason: fmt.Sprintf("candidate %s claimed twice", c.Handle())})
	}

	p.claimed[i] = true
	p.left--
}

// Remaining returns a copy of the unclaimed candidates.
func (p *Pool[T]) Remaining() []T {
	out := make([]T, 0, p.left)
	for c := range p.All() {
		out = append(out, c)
	}

	return out
}
