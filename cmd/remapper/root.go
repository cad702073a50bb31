package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"remapper/internal/config"
)

// options are the flags shared by every command.
type options struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "remapper",
		Short: "Reconstruct symbol identities across bytecode generations",
		Long: `remapper links every class, method, field and parameter of the newest
generation in a chain of bytecode snapshots to its counterpart in older
generations, and hands out stable identities.

Symbols that vanish for a generation are recovered from older ones.
Symbols without any counterpart get a fresh identity.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file (YAML)")

	root.AddCommand(newReconstructCmd(opts))
	root.AddCommand(newCheckCmd(opts))

	return root
}

// loadConfig reads and validates the configuration named by --config.
func (o *options) loadConfig() (*config.Config, error) {
	cfg := config.Default()

	if o.configPath != "" {
		var err error

		cfg, err = config.LoadFile(o.configPath)
		if err != nil {
			return nil, err
		}
	}

	if d := config.Validate(cfg); d.HasErrors() {
		return nil, fmt.Errorf("invalid configuration: %w", d.Error())
	}

	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
}
