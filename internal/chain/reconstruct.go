package chain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"remapper/internal/diagnostic"
	"remapper/internal/mapper"
	"remapper/internal/match"
	"remapper/internal/symbol"
)

// Config holds configuration for a reconstruction run.
type Config struct {
	// Strategies are the mappers used for every kind.
	Strategies mapper.Strategies
	// Parallelism is the number of workers mapping members of matched
	// class pairs. Values below 2 map sequentially on the calling goroutine.
	Parallelism int
}

// DefaultConfig returns the default reconstruction configuration.
func DefaultConfig() Config {
	return Config{
		Strategies:  mapper.DefaultStrategies(match.NewDiff()),
		Parallelism: 1,
	}
}

// Reconstructor runs the transitive reconstruction.
type Reconstructor struct {
	config Config
	logger *slog.Logger
}

// NewReconstructor creates a Reconstructor. A nil logger discards output.
func NewReconstructor(config Config, logger *slog.Logger) *Reconstructor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Reconstructor{config: config, logger: logger}
}

// run is the working state of one Reconstruct call.
type run struct {
	*Reconstructor

	gens []*symbol.Generation
	hops []*Hop

	rejuvenated []rejuvenation
	histories   []*History

	classLinks  []Link[*symbol.Class]
	methodLinks []Link[*symbol.Method]
	fieldLinks  []Link[*symbol.Field]

	linked  map[symbol.Handle]bool // newest members with a link
	claimed map[symbol.Handle]bool // older members taken outside the hops

	stats Stats
}

// rejuvenation is a newest class recovered at hops[hop].
type rejuvenation struct {
	class *symbol.Class
	older *symbol.Class
	hop   int
}

// Reconstruct links the symbols of the newest generation in gens, which
// must be ordered oldest first, to their older counterparts.
//
// The context is checked between steps; a cancelled run returns ctx.Err().
func (r *Reconstructor) Reconstruct(ctx context.Context, gens []*symbol.Generation) (*Outcome, error) {
	if err := checkGenerations(gens); err != nil {
		return nil, err
	}

	if err := r.config.Strategies.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	st := &run{
		Reconstructor: r,
		gens:          gens,
		linked:        make(map[symbol.Handle]bool),
		claimed:       make(map[symbol.Handle]bool),
	}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"hops", st.buildHops},
		{"class rejuvenation", st.rejuvenateClasses},
		{"member rejuvenation", st.rejuvenateMembers},
		{"histories", st.buildHistories},
		{"residual members", st.mapResidual},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()

		if err := step.fn(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", step.name, err)
		}

		r.logger.Debug("step finished",
			slog.String("step", step.name),
			slog.Duration("elapsed", time.Since(start)))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := st.outcome()

	r.logger.Info("reconstruction finished",
		slog.String("newest", out.Newest().Name),
		slog.Int("generations", len(gens)),
		slog.Int("classes", out.Stats.Classes.Mapped),
		slog.Int("methods", out.Stats.Methods.Mapped),
		slog.Int("fields", out.Stats.Fields.Mapped),
		slog.Int("parameters", out.Stats.Parameters.Mapped),
		slog.Int("unmapped_classes", out.Stats.Classes.Unmapped))

	return out, nil
}

// buildHops maps every adjacent pair, newest first.
func (st *run) buildHops(ctx context.Context) error {
	n := len(st.gens)

	for k := range n - 1 {
		newer, older := st.gens[n-1-k], st.gens[n-2-k]

		hop, err := buildHop(ctx, st.config.Strategies, st.config.Parallelism, newer, older)
		if err != nil {
			return fmt.Errorf("%s -> %s: %w", newer, older, err)
		}

		st.hops = append(st.hops, hop)
		st.stats.Hops = append(st.stats.Hops, HopStats{
			Newer:   newer.Name,
			Older:   older.Name,
			Classes: len(hop.Classes.Mappings),
			Methods: len(hop.Methods.Mappings),
			Fields:  len(hop.Fields.Mappings),
		})

		st.logger.Debug("hop mapped",
			slog.String("newer", newer.Name),
			slog.String("older", older.Name),
			slog.Int("classes", len(hop.Classes.Mappings)),
			slog.Int("unmapped_classes", len(hop.Classes.UnmappedSources)),
			slog.Int("methods", len(hop.Methods.Mappings)),
			slog.Int("fields", len(hop.Fields.Mappings)))
	}

	direct := st.hops[0]
	gen := direct.Older.Index

	for _, p := range direct.Classes.Mappings {
		st.classLinks = append(st.classLinks, Link[*symbol.Class]{Source: p.Source, Candidate: p.Candidate, Generation: gen, Via: ViaDirect})
	}

	for _, p := range direct.Methods.Mappings {
		st.addMethod(p, gen, ViaDirect, 0)
	}

	for _, p := range direct.Fields.Mappings {
		st.addField(p, gen, ViaDirect, 0)
	}

	return nil
}

// rejuvenateClasses retries classes lost at the newest hop against the
// unmapped classes of each older hop in turn. A class stops at the first
// hop that yields a match.
func (st *run) rejuvenateClasses(context.Context) error {
	pending := st.hops[0].Classes.UnmappedSources

	for k := 1; k < len(st.hops) && len(pending) > 0; k++ {
		hop := st.hops[k]

		r := mapChecked("class rejuvenation", st.config.Strategies.Classes, pending, hop.Classes.UnmappedCandidates)
		for _, p := range r.Mappings {
			st.rejuvenated = append(st.rejuvenated, rejuvenation{class: p.Source, older: p.Candidate, hop: k})
			st.classLinks = append(st.classLinks, Link[*symbol.Class]{
				Source:     p.Source,
				Candidate:  p.Candidate,
				Generation: hop.Older.Index,
				Via:        ViaRejuvenation,
				hop:        k,
			})

			st.logger.Debug("class rejuvenated",
				slog.String("class", p.Source.Name),
				slog.String("older", p.Candidate.Name),
				slog.String("generation", hop.Older.Name))
		}

		pending = r.UnmappedSources
	}

	st.stats.RejuvenatedClasses = len(st.rejuvenated)

	st.logger.Debug("class rejuvenation finished",
		slog.Int("recovered", len(st.rejuvenated)),
		slog.Int("lost", len(pending)))

	return nil
}

// rejuvenateMembers maps the members of every recovered class against the
// members of its recovered counterpart that are still free at that hop.
func (st *run) rejuvenateMembers(context.Context) error {
	for _, rj := range st.rejuvenated {
		hop := st.hops[rj.hop]
		methods, fields := hop.freeMembers(rj.older)

		r := mapMembers(st.config.Strategies, rj.class.Methods, methods, rj.class.Fields, fields)
		for _, p := range r.methods.Mappings {
			st.addMethod(p, hop.Older.Index, ViaRejuvenation, rj.hop)
		}

		for _, p := range r.fields.Mappings {
			st.addField(p, hop.Older.Index, ViaRejuvenation, rj.hop)
		}

		st.stats.RejuvenatedMembers += len(r.methods.Mappings) + len(r.fields.Mappings)
	}

	return nil
}

// buildHistories records the backward history of every directly mapped
// and every rejuvenated class.
func (st *run) buildHistories(context.Context) error {
	byClass := make(map[symbol.Handle]*History)

	for _, p := range st.hops[0].Classes.Mappings {
		byClass[p.Source.Handle()] = buildHistory(st.hops, p.Source, ViaDirect, 0, p.Candidate)
	}

	for _, rj := range st.rejuvenated {
		byClass[rj.class.Handle()] = buildHistory(st.hops, rj.class, ViaRejuvenation, rj.hop, rj.older)
	}

	for _, c := range st.newest().Classes {
		if h, ok := byClass[c.Handle()]; ok {
			st.histories = append(st.histories, h)
		}
	}

	return nil
}

// mapResidual replays the still unmapped members of every class with a
// history against the history entries after the first, nearest first.
func (st *run) mapResidual(context.Context) error {
	s := st.config.Strategies

	for _, h := range st.histories {
		methods := without(h.Class.Methods, st.linked)
		fields := without(h.Class.Fields, st.linked)

		for _, e := range h.Entries[1:] {
			if len(methods) == 0 && len(fields) == 0 {
				break
			}

			mr := mapChecked("residual methods", s.Methods, methods, without(e.Methods, st.claimed))
			for _, p := range mr.Mappings {
				st.addMethod(p, e.Generation.Index, ViaResidual, e.hop)
			}

			fr := mapChecked("residual fields", s.Fields, fields, without(e.Fields, st.claimed))
			for _, p := range fr.Mappings {
				st.addField(p, e.Generation.Index, ViaResidual, e.hop)
			}

			if n := len(mr.Mappings) + len(fr.Mappings); n > 0 {
				st.stats.ResidualMembers += n
				st.logger.Debug("residual members mapped",
					slog.String("class", h.Class.Name),
					slog.String("generation", e.Generation.Name),
					slog.Int("members", n))
			}

			methods, fields = mr.UnmappedSources, fr.UnmappedSources
		}
	}

	return nil
}

func (st *run) newest() *symbol.Generation {
	return st.gens[len(st.gens)-1]
}

func (st *run) addMethod(p mapper.Pair[*symbol.Method], gen int, via Via, hop int) {
	st.linked[p.Source.Handle()] = true
	st.claimed[p.Candidate.Handle()] = true
	st.methodLinks = append(st.methodLinks, Link[*symbol.Method]{Source: p.Source, Candidate: p.Candidate, Generation: gen, Via: via, hop: hop})
}

func (st *run) addField(p mapper.Pair[*symbol.Field], gen int, via Via, hop int) {
	st.linked[p.Source.Handle()] = true
	st.claimed[p.Candidate.Handle()] = true
	st.fieldLinks = append(st.fieldLinks, Link[*symbol.Field]{Source: p.Source, Candidate: p.Candidate, Generation: gen, Via: via, hop: hop})
}

// outcome assembles lineages, trails and parameters.
func (st *run) outcome() *Outcome {
	newest := st.newest()

	for i := range st.classLinks {
		l := &st.classLinks[i]
		l.Trail = trail(st.hops, l.hop, l.Candidate, func(h *Hop) map[symbol.Handle]*symbol.Class { return h.classes })
	}

	for i := range st.methodLinks {
		l := &st.methodLinks[i]
		l.Trail = trail(st.hops, l.hop, l.Candidate, func(h *Hop) map[symbol.Handle]*symbol.Method { return h.methods })
	}

	for i := range st.fieldLinks {
		l := &st.fieldLinks[i]
		l.Trail = trail(st.hops, l.hop, l.Candidate, func(h *Hop) map[symbol.Handle]*symbol.Field { return h.fields })
	}

	var paramLinks []Link[*symbol.Parameter]

	for _, ml := range st.methodLinks {
		r := mapChecked("parameters", st.config.Strategies.Parameters, ml.Source.Params, ml.Candidate.Params)
		for _, p := range r.Mappings {
			paramLinks = append(paramLinks, Link[*symbol.Parameter]{
				Source:     p.Source,
				Candidate:  p.Candidate,
				Generation: ml.Generation,
				Via:        ml.Via,
				Trail:      parameterTrail(p.Candidate, ml.Trail),
				hop:        ml.hop,
			})
		}
	}

	o := &Outcome{
		Generations: st.gens,
		Hops:        st.hops,
		Classes:     newLineage(newest.Classes, st.classLinks),
		Methods:     newLineage(newest.Methods(), st.methodLinks),
		Fields:      newLineage(newest.Fields(), st.fieldLinks),
		Parameters:  newLineage(newest.Parameters(), paramLinks),
		Histories:   st.histories,
		Stats:       st.stats,
		histories:   make(map[symbol.Handle]*History, len(st.histories)),
	}

	for _, h := range st.histories {
		o.histories[h.Class.Handle()] = h
	}

	o.Stats.Classes = KindStats{Mapped: len(o.Classes.Links), Unmapped: len(o.Classes.Unmapped)}
	o.Stats.Methods = KindStats{Mapped: len(o.Methods.Links), Unmapped: len(o.Methods.Unmapped)}
	o.Stats.Fields = KindStats{Mapped: len(o.Fields.Links), Unmapped: len(o.Fields.Unmapped)}
	o.Stats.Parameters = KindStats{Mapped: len(o.Parameters.Links), Unmapped: len(o.Parameters.Unmapped)}

	o.Diagnostics.Merge(*CheckGenerations(st.gens))

	for _, rj := range st.rejuvenated {
		o.Diagnostics.AddInfo(diagnostic.CodeRejuvenated,
			fmt.Sprintf("recovered as %s from %s", rj.older.Name, st.hops[rj.hop].Older.Name),
			newest.Name, rj.class.Name)
	}

	for _, c := range o.Classes.Unmapped {
		o.Diagnostics.AddWarning(diagnostic.CodeUnmapped, "no counterpart in any older generation", newest.Name, c.Name)
	}

	return o
}

// without returns the items whose handle is not in taken.
func without[T mapper.Symbol](items []T, taken map[symbol.Handle]bool) []T {
	var out []T

	for _, it := range items {
		if !taken[it.Handle()] {
			out = append(out, it)
		}
	}

	return out
}
