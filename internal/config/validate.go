package config

import (
	"fmt"
	"log/slog"

	"remapper/internal/diagnostic"
	"remapper/internal/match"
)

// Validate checks a configuration before any matching work starts.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError(diagnostic.CodeThresholds, "config is nil", "", "")
		return res
	}

	if err := match.Thresholds(cfg.Diff.Thresholds).Validate(); err != nil {
		res.AddError(diagnostic.CodeThresholds, err.Error(), "", "diff.thresholds")
	}

	if cfg.Diff.MinInstructions != nil && *cfg.Diff.MinInstructions < 0 {
		res.AddError(diagnostic.CodeMinInstructions,
			fmt.Sprintf("must not be negative, got %d", *cfg.Diff.MinInstructions), "", "diff.min_instructions")
	}

	if cfg.Parallelism < 0 {
		res.AddError(diagnostic.CodeParallelism,
			fmt.Sprintf("must not be negative, got %d", cfg.Parallelism), "", "parallelism")
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		res.AddError(diagnostic.CodeLogLevel, fmt.Sprintf("unknown level %q", cfg.LogLevel), "", "log_level")
	}

	switch cfg.Identity.Supplier {
	case SupplierCounter, SupplierUUID:
	default:
		res.AddError(diagnostic.CodeSupplier,
			fmt.Sprintf("unknown supplier %q, want %q or %q", cfg.Identity.Supplier, SupplierCounter, SupplierUUID),
			"", "identity.supplier")
	}

	return res
}
