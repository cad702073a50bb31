// Package match provides pairwise equivalence tests between two method
// bodies.
//
// A Matcher returns a tri-state Verdict. Match and Fail are definitive;
// Unknown defers to the next strategy.
// Matchers never return errors; structurally unrelated bodies simply
// produce Fail or Unknown.
//
// Key matchers:
//   - Direct: instruction-by-instruction structural equality
//   - Diff: edit-script similarity against a size-bucketed threshold table
//   - Delegating: first non-Unknown verdict of an ordered list
//   - BooleanFlip: boolean methods whose return constants are all negated
package match
