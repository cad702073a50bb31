package chain

import "remapper/internal/symbol"

// Entry is one older incarnation of a class together with the members
// that were still unclaimed at the hop it was reached through.
type Entry struct {
	Generation *symbol.Generation
	Class      *symbol.Class
	Methods    []*symbol.Method
	Fields     []*symbol.Field

	hop int
}

// History is the backward record of a newest-generation class, nearest
// incarnation first. It stops at the first hop where the class has no
// older counterpart.
type History struct {
	Class   *symbol.Class
	Via     Via
	Entries []Entry
}

// Oldest returns the last entry of the history.
func (h *History) Oldest() Entry {
	return h.Entries[len(h.Entries)-1]
}

// buildHistory starts at older, the counterpart of newest reached through
// hops[start], and follows class mappings of the hops further back.
func buildHistory(hops []*Hop, newest *symbol.Class, via Via, start int, older *symbol.Class) *History {
	h := &History{Class: newest, Via: via}

	for k, cur := start, older; ; {
		methods, fields := hops[k].freeMembers(cur)
		h.Entries = append(h.Entries, Entry{
			Generation: hops[k].Older,
			Class:      cur,
			Methods:    methods,
			Fields:     fields,
			hop:        k,
		})

		k++
		if k >= len(hops) {
			return h
		}

		next, ok := hops[k].Counterpart(cur)
		if !ok {
			return h
		}

		cur = next
	}
}
