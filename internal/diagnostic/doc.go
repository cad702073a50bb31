// Package diagnostic provides structured errors, warnings and notes for
// the remapper.
//
// Key capabilities:
//   - Configuration validation errors with stable codes
//   - Warnings for symbols left without a counterpart anywhere in the chain
//   - A combined error value for callers that only care whether a run is valid
package diagnostic
