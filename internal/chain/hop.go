package chain

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"remapper/internal/mapper"
	"remapper/internal/symbol"
)

var errWorkerPanicked = errors.New("member mapping panicked")

// Hop is the direct mapping between two adjacent generations. Sources come
// from Newer, candidates from Older. Each result covers every symbol of its
// kind in both generations: members of unmatched classes are listed as
// unmapped.
type Hop struct {
	Newer *symbol.Generation
	Older *symbol.Generation

	Classes mapper.Result[*symbol.Class]
	Methods mapper.Result[*symbol.Method]
	Fields  mapper.Result[*symbol.Field]

	classes map[symbol.Handle]*symbol.Class
	methods map[symbol.Handle]*symbol.Method
	fields  map[symbol.Handle]*symbol.Field

	freeMethods map[symbol.Handle]bool
	freeFields  map[symbol.Handle]bool
}

// memberResults holds the member mapping of one matched class pair.
type memberResults struct {
	methods mapper.Result[*symbol.Method]
	fields  mapper.Result[*symbol.Field]
}

// buildHop maps newer onto older. Member mapping of matched class pairs
// runs on up to parallelism workers; results are merged in pair order, so
// the hop is the same for any worker count.
func buildHop(
	ctx context.Context,
	s mapper.Strategies,
	parallelism int,
	newer, older *symbol.Generation,
) (*Hop, error) {
	classes := mapChecked("classes", s.Classes, newer.Classes, older.Classes)

	per, err := mapPairs(ctx, s, parallelism, classes.Mappings)
	if err != nil {
		return nil, err
	}

	methods := make([]mapper.Result[*symbol.Method], 0, len(per)+1)
	fields := make([]mapper.Result[*symbol.Field], 0, len(per)+1)

	for _, r := range per {
		methods = append(methods, r.methods)
		fields = append(fields, r.fields)
	}

	var orphans memberResults
	for _, c := range classes.UnmappedSources {
		orphans.methods.UnmappedSources = append(orphans.methods.UnmappedSources, c.Methods...)
		orphans.fields.UnmappedSources = append(orphans.fields.UnmappedSources, c.Fields...)
	}

	for _, c := range classes.UnmappedCandidates {
		orphans.methods.UnmappedCandidates = append(orphans.methods.UnmappedCandidates, c.Methods...)
		orphans.fields.UnmappedCandidates = append(orphans.fields.UnmappedCandidates, c.Fields...)
	}

	methods = append(methods, orphans.methods)
	fields = append(fields, orphans.fields)

	h := &Hop{
		Newer:   newer,
		Older:   older,
		Classes: classes,
		Methods: mapper.InputOrder(mapper.Merge(methods...), newer.Methods(), older.Methods()),
		Fields:  mapper.InputOrder(mapper.Merge(fields...), newer.Fields(), older.Fields()),
	}

	mapper.MustCheck("hop methods", h.Methods, newer.Methods(), older.Methods())
	mapper.MustCheck("hop fields", h.Fields, newer.Fields(), older.Fields())

	h.index()

	return h, nil
}

func (h *Hop) index() {
	h.classes = h.Classes.Index()
	h.methods = h.Methods.Index()
	h.fields = h.Fields.Index()
	h.freeMethods = handleSet(h.Methods.UnmappedCandidates)
	h.freeFields = handleSet(h.Fields.UnmappedCandidates)
}

// Counterpart returns the older class c was mapped to at this hop.
func (h *Hop) Counterpart(c *symbol.Class) (*symbol.Class, bool) {
	older, ok := h.classes[c.Handle()]
	return older, ok
}

// freeMembers returns the members of c, an Older class, that no Newer
// member claimed at this hop.
func (h *Hop) freeMembers(c *symbol.Class) ([]*symbol.Method, []*symbol.Field) {
	var methods []*symbol.Method

	for _, m := range c.Methods {
		if h.freeMethods[m.Handle()] {
			methods = append(methods, m)
		}
	}

	var fields []*symbol.Field

	for _, f := range c.Fields {
		if h.freeFields[f.Handle()] {
			fields = append(fields, f)
		}
	}

	return methods, fields
}

// mapPairs maps the members of every matched class pair. Below two workers
// the pairs are mapped on the calling goroutine. Otherwise a panic in a
// worker is re-raised on the calling goroutine once all workers stopped,
// so a broken member mapper fails the same way for any worker count.
func mapPairs(
	ctx context.Context,
	s mapper.Strategies,
	parallelism int,
	pairs []mapper.Pair[*symbol.Class],
) ([]memberResults, error) {
	per := make([]memberResults, len(pairs))

	if parallelism < 2 {
		for i, pair := range pairs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			per[i] = mapMembers(s, pair.Source.Methods, pair.Candidate.Methods, pair.Source.Fields, pair.Candidate.Fields)
		}

		return per, nil
	}

	caught := make([]any, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, pair := range pairs {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					caught[i] = r
					err = errWorkerPanicked
				}
			}()

			if cerr := gctx.Err(); cerr != nil {
				return cerr
			}

			per[i] = mapMembers(s, pair.Source.Methods, pair.Candidate.Methods, pair.Source.Fields, pair.Candidate.Fields)

			return nil
		})
	}

	err := g.Wait()

	for _, r := range caught {
		if r != nil {
			panic(r)
		}
	}

	if err != nil {
		return nil, err
	}

	return per, nil
}

// mapMembers maps the methods and fields of one class pair.
func mapMembers(
	s mapper.Strategies,
	srcMethods, candMethods []*symbol.Method,
	srcFields, candFields []*symbol.Field,
) memberResults {
	return memberResults{
		methods: mapChecked("methods", s.Methods, srcMethods, candMethods),
		fields:  mapChecked("fields", s.Fields, srcFields, candFields),
	}
}

func mapChecked[T mapper.Symbol](name string, m mapper.Mapper[T], sources, candidates []T) mapper.Result[T] {
	r := m.Map(sources, candidates)
	mapper.MustCheck(name, r, sources, candidates)

	return r
}

func handleSet[T mapper.Symbol](items []T) map[symbol.Handle]bool {
	out := make(map[symbol.Handle]bool, len(items))
	for _, it := range items {
		out[it.Handle()] = true
	}

	return out
}
