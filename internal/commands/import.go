package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/metadata-tools/rdfsync/internal/importer"
	"github.com/metadata-tools/rdfsync/internal/itemlog"
	"github.com/metadata-tools/rdfsync/internal/repo"
	"github.com/metadata-tools/rdfsync/pkg/model"
)

func newImportCmd(configPath *string) *cobra.Command {
	var (
		modelName string
		limit     int
		resume    bool
	)

	cmd := &cobra.Command{
		Use:   "import [flags] FILE",
		Short: "Import edited rows into the repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(*configPath)
			if err != nil {
				return err
			}

			if modelName == "" {
				return fmt.Errorf("--model is required (available: %s)", strings.Join(model.Names(), ", "))
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer file.Close()

			log, err := itemlog.Open(cfg.Log.ItemLogDir)
			if err != nil {
				return err
			}
			defer log.Close()

			client := repo.NewClient(cfg.Repository.Timeout)
			im := importer.New(client, log, logger)

			result, err := im.Run(cmd.Context(), file, importer.Options{
				Model:  modelName,
				Limit:  limit,
				Resume: resume,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"%d of %d items remained unchanged\nUpdated %d of %d items\n",
				result.Unchanged, result.Total, result.Updated, result.Total)
			if result.Failed > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d items failed\n", result.Failed)
			}
			if result.Skipped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Skipped %d previously completed items\n", result.Skipped)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&modelName, "model", "m", "", "data model to use")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "limit the number of rows to read from the import file")
	cmd.Flags().BoolVar(&resume, "resume", false, "skip items completed in earlier runs")

	return cmd
}
