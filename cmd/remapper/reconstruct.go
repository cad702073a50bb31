package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"remapper/internal/chain"
	"remapper/internal/common"
	"remapper/internal/diagnostic"
	"remapper/internal/fixture"
	"remapper/internal/identity"
)

type reconstructOptions struct {
	*options

	output      string
	stats       bool
	parallelism int
}

// report is the YAML document printed by reconstruct.
type report struct {
	Newest      string               `yaml:"newest"`
	Assignments identity.Assignments `yaml:",inline"`
	Stats       *chain.Stats         `yaml:"stats,omitempty"`
	Diagnostics []string             `yaml:"diagnostics,omitempty"`
}

func newReconstructCmd(parent *options) *cobra.Command {
	opts := &reconstructOptions{options: parent}

	cmd := &cobra.Command{
		Use:   "reconstruct <fixture>",
		Short: "Assign identities to the newest generation of a chain",
		Long: `Reconstruct the lineage of the newest generation described by a YAML
fixture and print the identity assigned to every symbol.

Examples:
  remapper reconstruct chain.yaml
  remapper reconstruct --config remapper.yaml --stats chain.yaml
  remapper reconstruct -o identities.yaml --parallelism 8 chain.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconstruct(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Include run statistics in the report")
	cmd.Flags().IntVar(&opts.parallelism, "parallelism", 0, "Member mapping workers (overrides the config file)")

	return cmd
}

func runReconstruct(cmd *cobra.Command, opts *reconstructOptions, path string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("parallelism") {
		cfg.Parallelism = opts.parallelism
	}

	logger := newLogger(cmd, cfg)

	gens, err := fixture.LoadFile(path)
	if err != nil {
		return err
	}

	logger.Debug("fixture loaded", "path", path, "generations", len(gens))

	out, err := chain.NewReconstructor(cfg.Chain(), logger).Reconstruct(cmd.Context(), gens)
	if err != nil {
		return err
	}

	rep := report{
		Newest:      out.Newest().Name,
		Assignments: identity.Assign(out, cfg.Supplier()),
		Diagnostics: common.Map(out.Diagnostics.Warnings, diagnostic.Diagnostic.String),
	}

	if opts.stats {
		rep.Stats = &out.Stats
	}

	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", opts.output, err)
	}

	logger.Info("report written", "path", opts.output, "minted", rep.Assignments.Minted())

	return nil
}
