package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"remapper/internal/common"
)

// Diagnostic codes.
const (
	CodeThresholds      = "E001" // malformed similarity threshold table
	CodeMinInstructions = "E002" // negative fuzzy-matching floor
	CodeParallelism     = "E003" // negative worker count
	CodeLogLevel        = "E004" // unknown log level
	CodeSupplier        = "E005" // unknown identity supplier
	CodeGenerations     = "E006" // malformed generation chain

	CodeUnmapped        = "W001" // symbol has no counterpart anywhere in the chain
	CodeEmptyGeneration = "W002" // generation holds no classes
	CodeRejuvenated     = "I001" // class recovered from an older generation
)

// Diagnostics holds all diagnostic information of a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Generation names the generation this relates to (if any).
	Generation string
	// Symbol identifies the class or member this relates to (if any).
	Symbol string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

func (d *Diagnostics) add(sev DiagnosticSeverity, code, message, generation, sym string) {
	diag := Diagnostic{
		Severity:   sev,
		Code:       code,
		Message:    message,
		Generation: generation,
		Symbol:     sym,
	}

	switch sev {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, generation, sym string) {
	d.add(DiagnosticError, code, message, generation, sym)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, generation, sym string) {
	d.add(DiagnosticWarning, code, message, generation, sym)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, generation, sym string) {
	d.add(DiagnosticInfo, code, message, generation, sym)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := common.Map(d.Errors, Diagnostic.String)

	return errors.New(strings.Join(parts, "; "))
}

// Count returns the number of diagnostics with the given code.
func (d *Diagnostics) Count(code string) int {
	n := 0

	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		n += len(common.Filter(list, func(x Diagnostic) bool { return x.Code == code }))
	}

	return n
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Generation != "" {
		prefix = append(prefix, "["+d.Generation+"]")
	}

	if d.Symbol != "" {
		prefix = append(prefix, d.Symbol)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
