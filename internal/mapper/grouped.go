package mapper

// Grouped partitions sources and candidates by Key and maps every group
// independently. A candidate is only ever eligible for sources of its own
// group. Groups are processed in order of first appearance among sources.
type Grouped[T Symbol] struct {
	Key   func(T) string
	Inner func(key string) Mapper[T]
}

// GroupedBy uses the same inner mapper for every group.
func GroupedBy[T Symbol](key func(T) string, inner Mapper[T]) Grouped[T] {
	return Grouped[T]{
		Key:   key,
		Inner: func(string) Mapper[T] { return inner },
	}
}

type group[T Symbol] struct {
	sources    []T
	candidates []T
}

// Map implements Mapper.
func (g Grouped[T]) Map(sources, candidates []T) Result[T] {
	if len(candidates) == 0 || len(sources) == 0 {
		return Unmapped(sources, candidates)
	}

	var order []string

	groups := make(map[string]*group[T])
	bucket := func(k string) *group[T] {
		grp, ok := groups[k]
		if !ok {
			grp = &group[T]{}
			groups[k] = grp
			order = append(order, k)
		}

		return grp
	}

	for _, s := range sources {
		grp := bucket(g.Key(s))
		grp.sources = append(grp.sources, s)
	}

	for _, c := range candidates {
		grp := bucket(g.Key(c))
		grp.candidates = append(grp.candidates, c)
	}

	results := make([]Result[T], 0, len(order))

	for _, k := range order {
		grp := groups[k]
		if len(grp.sources) == 0 || len(grp.candidates) == 0 {
			results = append(results, Unmapped(grp.sources, grp.candidates))
			continue
		}

		r := g.Inner(k).Map(grp.sources, grp.candidates)
		MustCheck("group "+k, r, grp.sources, grp.candidates)
		results = append(results, r)
	}

	return InputOrder(Merge(results...), sources, candidates)
}
