package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/catalog/internal/entrypoint"
)

func newSeedCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a small demo catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(opts)

			db, err := entrypoint.OpenDatabase(cfg)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			defer db.Close()

			result, err := entrypoint.Seed(cmd.Context(), entrypoint.NewCatalog(db))
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "authors created: %d, books created: %d, skipped: %d\n",
				result.AuthorsCreated, result.BooksCreated, result.Skipped)
			return nil
		},
	}
}
