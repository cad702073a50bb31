package config

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"remapper/internal/chain"
	"remapper/internal/identity"
	"remapper/internal/mapper"
	"remapper/internal/match"
)

// Identity suppliers.
const (
	SupplierCounter = "counter"
	SupplierUUID    = "uuid"
)

// Config is the remapper configuration file.
type Config struct {
	Version     string         `yaml:"version"`
	Diff        DiffConfig     `yaml:"diff"`
	Parallelism int            `yaml:"parallelism"`
	LogLevel    string         `yaml:"log_level"`
	Identity    IdentityConfig `yaml:"identity"`
}

// DiffConfig configures the fuzzy bytecode matcher.
type DiffConfig struct {
	Thresholds      ThresholdTable `yaml:"thresholds"`
	MinInstructions *int           `yaml:"min_instructions"`
}

// IdentityConfig selects how fresh identities are minted.
type IdentityConfig struct {
	Supplier string `yaml:"supplier"`
	Prefix   string `yaml:"prefix"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.Diff.Thresholds == nil {
		cfg.Diff.Thresholds = ThresholdTable(match.DefaultThresholds())
	}

	if cfg.Diff.MinInstructions == nil {
		n := match.DefaultMinInstructions
		cfg.Diff.MinInstructions = &n
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.Identity.Supplier == "" {
		cfg.Identity.Supplier = SupplierCounter
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Matcher returns the fuzzy matcher described by the diff section.
func (c *Config) Matcher() match.Diff {
	return match.Diff{
		Thresholds:      match.Thresholds(c.Diff.Thresholds),
		MinInstructions: *c.Diff.MinInstructions,
	}
}

// Chain returns the reconstruction configuration. Parallelism 0 uses one
// worker per CPU.
func (c *Config) Chain() chain.Config {
	workers := c.Parallelism
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	return chain.Config{
		Strategies:  mapper.DefaultStrategies(c.Matcher()),
		Parallelism: workers,
	}
}

// Level returns the configured log level; unknown names fall back to info.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}

// Supplier returns the configured identity supplier.
func (c *Config) Supplier() identity.Supplier {
	if c.Identity.Supplier == SupplierUUID {
		return identity.UUIDs{Prefix: c.Identity.Prefix}
	}

	return identity.NewCounter(c.Identity.Prefix)
}
