// Package mapper provides the strategies that pair new-generation symbols
// (sources) with old-generation symbols (candidates).
//
// Every Mapper returns a Result: a bijection between the mapped sources and
// candidates plus the residual unmapped symbols on each side. The Result is
// built once per call and never mutated afterwards; mappers never touch
// their input slices.
//
// # Strategies
//
//   - SingleEntry: one Picker call per source against a shrinking Pool
//   - Name: equal name keys
//   - Bytecode: method bodies accepted by a match.Matcher
//   - ParameterType: equal parameter descriptors
//
// # Combinators
//
//   - Phased: earlier phases claim first, the residual feeds the next phase
//   - Grouped: independent mapping per key group
//   - Aligned: greedy matching in sorted order
//
// # Invariants
//
// Sources are covered exactly once by Mappings and UnmappedSources, the same
// holds for candidates, and no symbol is mapped twice. Combinators check the
// results of their inner mappers and panic with *InvariantError when the
// bijection is broken: that is a programming error, not a no-match outcome.
package mapper
