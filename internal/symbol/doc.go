// Package symbol is the in-memory model of one bytecode snapshot
// (a Generation) and the classes, methods, fields and parameters it holds.
//
// Every entity carries a Handle: a stable (generation, kind, index) triple
// assigned by the Builder when the generation is loaded. Mappers key their
// working sets by Handle rather than by pointer identity, which keeps
// equality cheap and makes invariant checks straightforward.
//
// Entities are immutable once Builder.Build has returned. Methods, fields
// and parameters point back at their owner; nothing is ever shared between
// generations.
package symbol
