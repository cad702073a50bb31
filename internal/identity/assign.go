package identity

import (
	"remapper/internal/chain"
	"remapper/internal/mapper"
	"remapper/internal/symbol"
)

// Assignment is the identity given to one newest-generation symbol.
type Assignment struct {
	Symbol   string `yaml:"symbol"`
	Identity string `yaml:"identity"`
	// Name is carried over from the counterpart; empty when unmapped.
	Name string `yaml:"name,omitempty"`
	// Inherited is false when Identity was minted.
	Inherited bool `yaml:"inherited"`
	// Generation is the generation the counterpart came from, -1 when unmapped.
	Generation int    `yaml:"generation"`
	Via        string `yaml:"via,omitempty"`

	Handle symbol.Handle `yaml:"-"`
}

// Assignments are ordered like the newest generation's symbols.
type Assignments struct {
	Classes    []Assignment `yaml:"classes"`
	Methods    []Assignment `yaml:"methods"`
	Fields     []Assignment `yaml:"fields"`
	Parameters []Assignment `yaml:"parameters"`
}

// Minted counts the assignments that did not inherit an identity.
func (a Assignments) Minted() int {
	n := 0

	for _, list := range [][]Assignment{a.Classes, a.Methods, a.Fields, a.Parameters} {
		for _, as := range list {
			if !as.Inherited {
				n++
			}
		}
	}

	return n
}

// Assign gives every symbol of the newest generation an identity.
//
// A linked symbol inherits the first identity found along its trail,
// nearest generation first, and carries the name of the symbol that
// supplied it (or of the oldest counterpart when none did). Unlinked
// symbols get a minted identity. A parameter whose counterpart sits at
// another position or has another descriptor counts as unlinked.
func Assign(o *chain.Outcome, s Supplier) Assignments {
	newest := o.Newest()

	return Assignments{
		Classes: assign(symbol.KindClass, newest.Classes, o.Classes, s, keep[*symbol.Class],
			func(c *symbol.Class) (string, string) { return c.Identity, c.Name }),
		Methods: assign(symbol.KindMethod, newest.Methods(), o.Methods, s, keep[*symbol.Method],
			func(m *symbol.Method) (string, string) { return m.Identity, m.Name }),
		Fields: assign(symbol.KindField, newest.Fields(), o.Fields, s, keep[*symbol.Field],
			func(f *symbol.Field) (string, string) { return f.Identity, f.Name }),
		Parameters: assign(symbol.KindParameter, newest.Parameters(), o.Parameters, s, samePosition,
			func(p *symbol.Parameter) (string, string) { return p.Identity, "" }),
	}
}

func keep[T mapper.Symbol](chain.Link[T]) bool { return true }

// samePosition rejects parameter links whose position or type drifted.
func samePosition(l chain.Link[*symbol.Parameter]) bool {
	return l.Source.Index == l.Candidate.Index && l.Source.Desc == l.Candidate.Desc
}

func assign[T interface {
	mapper.Symbol
	String() string
}](
	kind symbol.Kind,
	all []T,
	lineage chain.Lineage[T],
	s Supplier,
	usable func(chain.Link[T]) bool,
	info func(T) (identity, name string),
) []Assignment {
	links := make(map[symbol.Handle]chain.Link[T], len(lineage.Links))
	for _, l := range lineage.Links {
		if usable(l) {
			links[l.Source.Handle()] = l
		}
	}

	out := make([]Assignment, 0, len(all))

	for _, sym := range all {
		a := Assignment{Symbol: sym.String(), Handle: sym.Handle(), Generation: -1}

		l, ok := links[sym.Handle()]
		if ok {
			a.Generation = l.Generation
			a.Via = l.Via.String()
			a.Identity, a.Name = inherit(l, info)
			a.Inherited = a.Identity != ""
		}

		if a.Identity == "" {
			a.Identity = s.Mint(kind)
		}

		out = append(out, a)
	}

	return out
}

// inherit returns the first identity on the trail and the matching name.
func inherit[T mapper.Symbol](l chain.Link[T], info func(T) (string, string)) (identity, name string) {
	for _, t := range l.Trail {
		if id, n := info(t); id != "" {
			return id, n
		}
	}

	_, name = info(l.Origin())

	return "", name
}
