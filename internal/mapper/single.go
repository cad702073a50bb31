package mapper

// Picker chooses at most one unclaimed candidate for a source.
type Picker[T Symbol] interface {
	Pick(source T, pool *Pool[T]) (T, bool)
}

// PickFunc adapts a function to the Picker interface.
type PickFunc[T Symbol] func(source T, pool *Pool[T]) (T, bool)

// Pick calls f.
func (f PickFunc[T]) Pick(source T, pool *Pool[T]) (T, bool) { return f(source, pool) }

// PickFirst picks the first unclaimed candidate accepted by accept.
func PickFirst[T Symbol](accept func(source, candidate T) bool) Picker[T] {
	return PickFunc[T](func(source T, pool *Pool[T]) (T, bool) {
		return pool.First(func(c T) bool { return accept(source, c) })
	})
}

// PickKey picks the first unclaimed candidate whose key equals the source's.
func PickKey[T Symbol](key func(T) string) Picker[T] {
	return PickFirst(func(s, c T) bool { return key(s) == key(c) })
}

// SingleEntry asks its Picker for one candidate per source, in source
// order. A claimed candidate is invisible to every later source.
type SingleEntry[T Symbol] struct {
	Picker Picker[T]
}

// Map implements Mapper.
func (s SingleEntry[T]) Map(sources, candidates []T) Result[T] {
	if len(candidates) == 0 || len(sources) == 0 {
		return Unmapped(sources, candidates)
	}

	return pickAll(s.Picker, sources, NewPool(candidates))
}

// pickAll runs picker over sources in order against pool.
func pickAll[T Symbol](picker Picker[T], sources []T, pool *Pool[T]) Result[T] {
	var r Result[T]

	for _, src := range sources {
		if pool.Len() == 0 {
			r.UnmappedSources = append(r.UnmappedSources, src)
			continue
		}

		c, ok := picker.Pick(src, pool)
		if !ok {
			r.UnmappedSources = append(r.UnmappedSources, src)
			continue
		}

		pool.Claim(c)
		r.Mappings = append(r.Mappings, Pair[T]{Source: src, Candidate: c})
	}

	r.UnmappedCandidates = pool.Remaining()

	return r
}
