package match

import "remapper/internal/symbol"

// BooleanFlip recognises boolean methods whose only change is that every
// return site returns the negated constant. The constant loads in front of
// each IRETURN must differ pairwise at every site; they are stripped and
// the rest of both bodies is handed to Next.
//
// Bodies that do not have this shape yield Unknown.
type BooleanFlip struct {
	Next Matcher
}

// Match implements Matcher.
func (b BooleanFlip) Match(left, right symbol.Body) Verdict {
	if !symbol.ReturnsBoolean(left.Desc) || !symbol.ReturnsBoolean(right.Desc) {
		return Unknown
	}

	ls, ok := returnConstants(left.Code)
	if !ok {
		return Unknown
	}

	rs, ok := returnConstants(right.Code)
	if !ok || len(ls) != len(rs) {
		return Unknown
	}

	for i := range ls {
		if left.Code[ls[i]].Op == right.Code[rs[i]].Op {
			return Unknown
		}
	}

	return b.Next.Match(
		symbol.Body{Desc: left.Desc, Code: without(left.Code, ls)},
		symbol.Body{Desc: right.Desc, Code: without(right.Code, rs)},
	)
}

// returnConstants returns the index of the instruction before every IRETURN.
// All of them must be ICONST_0 or ICONST_1, and there must be at least one.
func returnConstants(code []symbol.Instruction) ([]int, bool) {
	var sites []int

	for i, in := range code {
		if in.Op != symbol.OpIreturn {
			continue
		}

		if i == 0 {
			return nil, false
		}

		prev := code[i-1].Op
		if prev != symbol.OpIconst0 && prev != symbol.OpIconst1 {
			return nil, false
		}

		sites = append(sites, i-1)
	}

	return sites, len(sites) > 0
}

// without copies code minus the sorted indices in drop.
func without(code []symbol.Instruction, drop []int) []symbol.Instruction {
	out := make([]symbol.Instruction, 0, len(code)-len(drop))

	next := 0
	for i, in := range code {
		if next < len(drop) && drop[next] == i {
			next++
			continue
		}

		out = append(out, in)
	}

	return out
}
