package chain

import (
	"errors"
	"fmt"

	"remapper/internal/diagnostic"
	"remapper/internal/symbol"
)

var (
	// ErrTooFewGenerations is returned when a chain has fewer than two generations.
	ErrTooFewGenerations = errors.New("at least two generations are required")
	// ErrGenerationOrder is returned when generations are not ordered oldest first.
	ErrGenerationOrder = errors.New("generations must be ordered by strictly increasing index")
)

// CheckGenerations reports every problem of a generation chain. Errors
// (code E006) make Reconstruct refuse the chain; an empty generation is
// only a warning.
func CheckGenerations(gens []*symbol.Generation) *diagnostic.Diagnostics {
	d := &diagnostic.Diagnostics{}

	if len(gens) < 2 {
		d.AddError(diagnostic.CodeGenerations,
			fmt.Sprintf("%s: got %d", ErrTooFewGenerations, len(gens)), "", "")
	}

	for i, g := range gens {
		if g == nil {
			d.AddError(diagnostic.CodeGenerations, fmt.Sprintf("generation %d is nil", i), "", "")
			continue
		}

		if len(g.Classes) == 0 {
			d.AddWarning(diagnostic.CodeEmptyGeneration, "generation holds no classes", g.Name, "")
		}

		if i > 0 && gens[i-1] != nil && g.Index <= gens[i-1].Index {
			d.AddError(diagnostic.CodeGenerations,
				fmt.Sprintf("%s: index %d follows %s (index %d)", ErrGenerationOrder, g.Index, gens[i-1].Name, gens[i-1].Index),
				g.Name, "")
		}
	}

	return d
}

// checkGenerations rejects chains the reconstruction cannot run on.
func checkGenerations(gens []*symbol.Generation) error {
	d := CheckGenerations(gens)
	if !d.HasErrors() {
		return nil
	}

	sentinel := ErrGenerationOrder
	if len(gens) < 2 {
		sentinel = ErrTooFewGenerations
	}

	return fmt.Errorf("%w: %w", sentinel, d.Error())
}
