package mapper

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remapper/internal/match"
	"remapper/internal/symbol"
	"remapper/internal/symbol/symboltest"
)

// classes builds one generation holding a class per name.
func classes(t *testing.T, gen int, names ...string) []*symbol.Class {
	t.Helper()

	g := symboltest.New(t, fmt.Sprintf("g%d", gen), gen)
	for _, n := range names {
		g.Class(n)
	}

	return g.Build().Classes
}

func names[T interface{ String() string }](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}

	return out
}

func pairNames[T interface {
	Symbol
	String() string
}](pairs []Pair[T]) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		out[p.Source.String()] = p.Candidate.String()
	}

	return out
}

func requireBijection[T Symbol](t *testing.T, r Result[T], sources, candidates []T) {
	t.Helper()
	require.NoError(t, r.Check(sources, candidates), spew.Sdump(r.Mappings))
}

// panicky fails the test when invoked.
func panicky[T Symbol](t *testing.T) Mapper[T] {
	return Func[T](func(_, _ []T) Result[T] {
		t.Fatalf("inner mapper must not run")
		return Result[T]{}
	})
}

func TestResult_Check(t *testing.T) {
	src := classes(t, 1, "a", "b")
	cand := classes(t, 0, "a", "b")

	ok := Result[*symbol.Class]{
		UnmappedSources:    []*symbol.Class{src[1]},
		Mappings:           []Pair[*symbol.Class]{{Source: src[0], Candidate: cand[1]}},
		UnmappedCandidates: []*symbol.Class{cand[0]},
	}
	assert.NoError(t, ok.Check(src, cand))

	tests := []struct {
		name string
		r    Result[*symbol.Class]
	}{
		{"source dropped", Result[*symbol.Class]{
			UnmappedCandidates: cand,
			UnmappedSources:    src[:1],
		}},
		{"candidate mapped twice", Result[*symbol.Class]{
			Mappings:           []Pair[*symbol.Class]{{Source: src[0], Candidate: cand[0]}, {Source: src[1], Candidate: cand[0]}},
			UnmappedCandidates: cand[1:],
		}},
		{"source both mapped and unmapped", Result[*symbol.Class]{
			Mappings:           []Pair[*symbol.Class]{{Source: src[0], Candidate: cand[0]}},
			UnmappedSources:    src,
			UnmappedCandidates: cand[1:],
		}},
		{"foreign candidate", Result[*symbol.Class]{
			Mappings:           []Pair[*symbol.Class]{{Source: src[0], Candidate: src[1]}},
			UnmappedSources:    src[1:],
			UnmappedCandidates: cand,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Check(src, cand)
			require.Error(t, err)

			var ie *InvariantError
			assert.ErrorAs(t, err, &ie)
		})
	}
}

func TestResult_Lookup(t *testing.T) {
	src := classes(t, 1, "a", "b")
	cand := classes(t, 0, "x")

	r := Name[*symbol.Class]{Key: func(*symbol.Class) string { return "k" }}.Map(src, cand)

	got, ok := r.Lookup(src[0])
	require.True(t, ok)
	assert.Same(t, cand[0], got)

	_, ok = r.Lookup(src[1])
	assert.False(t, ok)

	assert.Same(t, cand[0], r.Index()[src[0].Handle()])
	assert.Same(t, src[0], r.Reverse()[cand[0].Handle()])
	assert.Equal(t, []*symbol.Class{src[0]}, r.Sources())
}

func TestSingleEntry_ClaimedCandidatesInvisible(t *testing.T) {
	src := classes(t, 1, "s1", "s2", "s3")
	cand := classes(t, 0, "c1", "c2")

	var seen [][]string

	m := SingleEntry[*symbol.Class]{Picker: PickFunc[*symbol.Class](func(_ *symbol.Class, pool *Pool[*symbol.Class]) (*symbol.Class, bool) {
		var visible []string
		for c := range pool.All() {
			visible = append(visible, c.Name)
		}

		seen = append(seen, visible)

		return pool.First(func(*symbol.Class) bool { return true })
	})}

	srcBefore := append([]*symbol.Class(nil), src...)
	candBefore := append([]*symbol.Class(nil), cand...)

	r := m.Map(src, cand)
	requireBijection(t, r, src, cand)

	assert.Equal(t, [][]string{{"c1", "c2"}, {"c2"}}, seen, "third source is not asked once the pool is empty")
	assert.Equal(t, map[string]string{"s1": "c1", "s2": "c2"}, pairNames(r.Mappings))
	assert.Equal(t, []string{"s3"}, names(r.UnmappedSources))
	assert.Empty(t, r.UnmappedCandidates)

	assert.Equal(t, srcBefore, src)
	assert.Equal(t, candBefore, cand)
}

func TestPool_ClaimForeignPanics(t *testing.T) {
	cand := classes(t, 0, "c1")
	other := classes(t, 1, "c1")

	pool := NewPool(cand)
	assert.Panics(t, func() { pool.Claim(other[0]) })

	pool.Claim(cand[0])
	assert.Panics(t, func() { pool.Claim(cand[0]) })
	assert.Equal(t, 0, pool.Len())
	assert.False(t, pool.Contains(cand[0]))
}

func TestUnbuiltSymbolsRejected(t *testing.T) {
	loose := []*symbol.Class{{Name: "a/Loose"}}

	assert.PanicsWithValue(t,
		&InvariantError{Reason: "candidate 0 was not built by a symbol.Builder"},
		func() { NewPool(loose) })

	err := Result[*symbol.Class]{UnmappedSources: loose}.Check(loose, nil)

	var ie *InvariantError
	require.ErrorAs(t, err, &ie)
	assert.Contains(t, ie.Reason, "source 0 was not built")
}

func TestName_Totality(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := range 200 {
		var srcNames, candNames []string

		for i := range 1 + rng.Intn(8) {
			srcNames = append(srcNames, fmt.Sprintf("s%d", i))
		}

		for range rng.Intn(10) {
			candNames = append(candNames, fmt.Sprintf("s%d", rng.Intn(12)))
		}

		// Candidates are distinct classes sharing name keys via a suffix.
		cand := make([]string, len(candNames))
		for i, n := range candNames {
			cand[i] = fmt.Sprintf("%s#%d", n, i)
		}

		src := classes(t, 1, srcNames...)
		cs := classes(t, 0, cand...)

		key := func(c *symbol.Class) string {
			k, _, _ := strings.Cut(c.Name, "#")
			return k
		}

		r := Name[*symbol.Class]{Key: key}.Map(src, cs)
		requireBijection(t, r, src, cs)

		count := make(map[string]int)
		for _, n := range candNames {
			count[n]++
		}

		mapped := r.Index()
		for _, s := range src {
			switch count[s.Name] {
			case 0:
				_, ok := mapped[s.Handle()]
				assert.False(t, ok, "round %d: %s has no candidate", round, s.Name)
			case 1:
				c, ok := mapped[s.Handle()]
				if assert.True(t, ok, "round %d: %s has a unique candidate", round, s.Name) {
					assert.Equal(t, s.Name, key(c))
				}
			}
		}
	}
}

func TestPhased_ResidualEquivalence(t *testing.T) {
	src := classes(t, 1, "a", "b", "c", "d", "e")
	cand := classes(t, 0, "a", "x", "c", "y", "z")

	byName := Mapper[*symbol.Class](Name[*symbol.Class]{Key: ClassName})
	byFirst := Mapper[*symbol.Class](SingleEntry[*symbol.Class]{Picker: PickFirst(func(s, c *symbol.Class) bool { return s.Name != "e" })})
	byAny := Mapper[*symbol.Class](SingleEntry[*symbol.Class]{Picker: PickFirst(func(_, _ *symbol.Class) bool { return true })})

	all := Phased[*symbol.Class]{byName, byFirst, byAny}.Map(src, cand)
	requireBijection(t, all, src, cand)

	first := byName.Map(src, cand)
	rest := Phased[*symbol.Class]{byFirst, byAny}.Map(first.UnmappedSources, first.UnmappedCandidates)

	assert.Equal(t, append(first.Mappings, rest.Mappings...), all.Mappings)
	assert.Equal(t, rest.UnmappedSources, all.UnmappedSources)
	assert.Equal(t, rest.UnmappedCandidates, all.UnmappedCandidates)

	assert.Equal(t, map[string]string{"a": "a", "c": "c", "b": "x", "d": "y", "e": "z"}, pairNames(all.Mappings))
}

func TestPhased_EarlierPhaseClaimsFirst(t *testing.T) {
	src := classes(t, 1, "a", "b")
	cand := classes(t, 0, "b")

	anything := SingleEntry[*symbol.Class]{Picker: PickFirst(func(_, _ *symbol.Class) bool { return true })}

	r := Phased[*symbol.Class]{Name[*symbol.Class]{Key: ClassName}, anything}.Map(src, cand)
	assert.Equal(t, map[string]string{"b": "b"}, pairNames(r.Mappings))
	assert.Equal(t, []string{"a"}, names(r.UnmappedSources))
}

func TestPhased_InnerInvariantViolationPanics(t *testing.T) {
	src := classes(t, 1, "a", "b")
	cand := classes(t, 0, "a")

	broken := Func[*symbol.Class](func(sources, candidates []*symbol.Class) Result[*symbol.Class] {
		return Result[*symbol.Class]{
			Mappings: []Pair[*symbol.Class]{
				{Source: sources[0], Candidate: candidates[0]},
				{Source: sources[1], Candidate: candidates[0]},
			},
		}
	})

	defer func() {
		rec := recover()
		require.NotNil(t, rec)

		ie, ok := rec.(*InvariantError)
		require.True(t, ok, "panic value %T", rec)
		assert.Equal(t, "phase 0", ie.Mapper)
		assert.Contains(t, ie.Error(), "phase 0: mapping invariant violated")
	}()

	Phased[*symbol.Class]{broken}.Map(src, cand)
}

func TestCombinators_EmptyCandidatesShortCircuit(t *testing.T) {
	src := classes(t, 1, "a", "b")

	mappers := map[string]Mapper[*symbol.Class]{
		"phased":  Phased[*symbol.Class]{panicky[*symbol.Class](t)},
		"grouped": GroupedBy(ClassName, panicky[*symbol.Class](t)),
		"aligned": Aligned[*symbol.Class]{Less: ByName, Picker: PickFunc[*symbol.Class](func(*symbol.Class, *Pool[*symbol.Class]) (*symbol.Class, bool) {
			t.Fatalf("picker must not run")
			return nil, false
		})},
		"name": Name[*symbol.Class]{Key: func(*symbol.Class) string {
			t.Fatalf("key must not run")
			return ""
		}},
	}

	for name, m := range mappers {
		t.Run(name, func(t *testing.T) {
			r := m.Map(src, nil)
			assert.Equal(t, src, r.UnmappedSources)
			assert.Empty(t, r.Mappings)
			assert.Empty(t, r.UnmappedCandidates)
		})
	}
}

func TestGrouped_OnlySameGroupEligible(t *testing.T) {
	src := classes(t, 1, "p/A", "p/B", "q/C", "r/D")
	cand := classes(t, 0, "q/X", "p/Y", "s/Z")

	anything := SingleEntry[*symbol.Class]{Picker: PickFirst(func(_, _ *symbol.Class) bool { return true })}

	var keys []string

	g := Grouped[*symbol.Class]{
		Key: (*symbol.Class).Enclosing,
		Inner: func(k string) Mapper[*symbol.Class] {
			keys = append(keys, k)
			return anything
		},
	}

	r := g.Map(src, cand)
	requireBijection(t, r, src, cand)

	assert.Equal(t, []string{"p/", "q/"}, keys, "groups lacking either side never reach the inner mapper")
	assert.Equal(t, map[string]string{"p/A": "p/Y", "q/C": "q/X"}, pairNames(r.Mappings))
	assert.Equal(t, []string{"p/B", "r/D"}, names(r.UnmappedSources))
	assert.Equal(t, []string{"s/Z"}, names(r.UnmappedCandidates))
	assert.Equal(t, "p/A", r.Mappings[0].Source.Name, "mappings follow source order")
}

func TestAligned_GreedyOrderDependent(t *testing.T) {
	base := symboltest.Calls("a/U", "c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9",
		"c10", "c11", "c12", "c13", "c14", "c15", "c16", "c17", "c18")
	changed := append([]symbol.Instruction(nil), base...)
	changed[3] = symbol.MemberInsn(symbol.OpInvokeStatic, "a/U", "other3", "()V")
	changed[9] = symbol.MemberInsn(symbol.OpInvokeStatic, "a/U", "other9", "()V")

	newGen := symboltest.New(t, "new", 1)
	owner := newGen.Class("N")
	a := newGen.Method(owner, "A", "()V", base...)
	b := newGen.Method(owner, "B", "()V", changed...)
	newGen.Build()

	oldGen := symboltest.New(t, "old", 0)
	oldOwner := oldGen.Class("O")
	aOld := oldGen.Method(oldOwner, "zz", "()V", base...)    // A'
	bOld := oldGen.Method(oldOwner, "aa", "()V", changed...) // B', sorts first
	oldGen.Build()

	fuzzy := match.Diff{Thresholds: match.Thresholds{{MinSize: 0, Percent: 80}}}
	m := Aligned[*symbol.Method]{
		Less: func(x, y *symbol.Method) bool { return x.Name < y.Name },
		Picker: PickFirst(func(s, c *symbol.Method) bool {
			return fuzzy.Match(s.Body(), c.Body()) == match.Match
		}),
	}

	sources := []*symbol.Method{b, a}
	candidates := []*symbol.Method{aOld, bOld}

	r := m.Map(sources, candidates)
	requireBijection(t, r, sources, candidates)

	got := r.Index()
	assert.Same(t, bOld, got[a.Handle()], "A is aligned first and takes the first acceptable candidate B'")
	assert.Same(t, aOld, got[b.Handle()], "B is left with A'")
	assert.Equal(t, b, r.Mappings[0].Source, "result lists follow input order")
}

func TestStrategies_Validate(t *testing.T) {
	assert.NoError(t, DefaultStrategies(match.NewDiff()).Validate())

	s := DefaultStrategies(match.NewDiff())
	s.Fields = nil
	assert.ErrorIs(t, s.Validate(), ErrMissingStrategy)
}

func TestDefaultStrategies_Methods(t *testing.T) {
	boolBody := func(first, second symbol.Opcode) []symbol.Instruction {
		return []symbol.Instruction{
			symbol.Insn(symbol.OpIload, 1),
			symbol.Insn(symbol.OpIfeq, 4),
			symbol.Insn(first),
			symbol.Insn(symbol.OpIreturn),
			symbol.Insn(second),
			symbol.Insn(symbol.OpIreturn),
		}
	}

	newGen := symboltest.New(t, "new", 1)
	nc := newGen.Class("a")
	ctor := newGen.Method(nc, "<init>", "()V", symbol.Insn(symbol.OpReturn))
	run := newGen.Method(nc, "b", "()V", symboltest.Calls("x/Y", "p", "q")...)
	flag := newGen.Method(nc, "c", "(Z)Z", boolBody(symbol.OpIconst0, symbol.OpIconst1)...)
	lambda := newGen.Method(nc, "lambda$d$0", "()V", symboltest.Calls("x/Y", "p", "q")...)
	newGen.Build()

	oldGen := symboltest.New(t, "old", 0)
	oc := oldGen.Class("Foo")
	oldCtor := oldGen.Method(oc, "<init>", "()V", symbol.Insn(symbol.OpReturn))
	oldRun := oldGen.Method(oc, "run", "()V", symboltest.Calls("x/Y", "p", "q")...)
	oldFlag := oldGen.Method(oc, "isOn", "(Z)Z", boolBody(symbol.OpIconst1, symbol.OpIconst0)...)
	oldLambda := oldGen.Method(oc, "lambda$run$0", "()V", symboltest.Calls("x/Y", "p", "q")...)
	oldGen.Build()

	s := DefaultStrategies(match.NewDiff())
	sources := []*symbol.Method{ctor, run, flag, lambda}
	candidates := []*symbol.Method{oldCtor, oldRun, oldFlag, oldLambda}

	r := s.Methods.Map(sources, candidates)
	requireBijection(t, r, sources, candidates)

	got := r.Index()
	assert.Same(t, oldCtor, got[ctor.Handle()])
	assert.Same(t, oldRun, got[run.Handle()], "identical body, ordinary method")
	assert.Same(t, oldFlag, got[flag.Handle()], "flipped boolean returns")
	assert.Same(t, oldLambda, got[lambda.Handle()], "lambdas only match lambdas")
}

func TestDefaultStrategies_ClassesAndFields(t *testing.T) {
	newGen := symboltest.New(t, "new", 1)
	kept := newGen.Class("api/Client")
	renamed := newGen.Class("a/b")
	newGen.Field(renamed, "c", "I")
	newGen.Field(renamed, "d", "La/q;")
	keptField := newGen.Field(kept, "timeout", "J")
	obfField := newGen.Field(kept, "e", "I")
	newGen.Build()

	oldGen := symboltest.New(t, "old", 0)
	oldKept := oldGen.Class("api/Client")
	oldRenamed := oldGen.Class("a/Config")
	oldGen.Field(oldRenamed, "size", "I")
	oldGen.Field(oldRenamed, "owner", "Lapi/Client;")
	oldTimeout := oldGen.Field(oldKept, "timeout", "J")
	oldRetries := oldGen.Field(oldKept, "retries", "I")
	oldGen.Build()

	s := DefaultStrategies(match.NewDiff())

	cr := s.Classes.Map([]*symbol.Class{kept, renamed}, []*symbol.Class{oldKept, oldRenamed})
	got := cr.Index()
	assert.Same(t, oldKept, got[kept.Handle()])
	assert.Same(t, oldRenamed, got[renamed.Handle()], "same erased shape in the same package")

	fr := s.Fields.Map(kept.Fields, oldKept.Fields)
	fields := fr.Index()
	assert.Same(t, oldTimeout, fields[keptField.Handle()])
	assert.Same(t, oldRetries, fields[obfField.Handle()])
}

func TestClassShape_ErasesClassTypes(t *testing.T) {
	assert.Equal(t, "(L;I)[L;", eraseDesc("(La/b/C;I)[Ljava/lang/String;"))
	assert.Equal(t, "L", eraseDesc("L"))
}
