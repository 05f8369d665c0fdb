// Package commands wires the rdfsync CLI surface.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/metadata-tools/rdfsync/internal/config"
)

const Version = "0.1.0"

// NewRootCmd builds the rdfsync root command
func NewRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "rdfsync",
		Short: "Reconcile tabular edits against a linked-data repository",
		Long: `Rdfsync synchronizes spreadsheet-style edits with a graph-based
repository. For each edited row it computes the minimal set of triple
additions and removals and applies them as a single SPARQL update.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "path to config file")

	cmd.AddCommand(newImportCmd(&configPath))

	return cmd
}

// setup loads configuration and builds the run logger
func setup(configPath string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, config.NewLogger(cfg.Log), nil
}
