// Package chain reconstructs symbol lineages across a chronological chain
// of generations.
//
// A run walks the chain from the newest generation to the oldest:
//
//  1. every adjacent pair of generations is mapped into a Hop; members are
//     only mapped within matched class pairs
//  2. classes lost at the newest hop are retried against the unmapped
//     classes of older hops (class rejuvenation)
//  3. members of recovered classes are mapped against the recovered class
//  4. a backward History is built for every mapped newest class
//  5. members still unmapped are replayed against the older entries of
//     their class history
//
// The result is an Outcome: one Lineage per symbol kind that links every
// newest symbol to the nearest older counterpart found, with the trail of
// its older incarnations.
package chain
