package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/nearby/internal/app"
	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/usecase"
)

// newMigrateCommand creates the migrate command.
func newMigrateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		To    string
		Force bool
	}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy the task list to another store backend",
		Long: `Copy the task list from the active store backend to another one.

The destination lives in the same data directory (or the configured git
repository). After migrating, set [store] backend in config.toml to switch.

Examples:
  nearby migrate --to sqlite
  nearby migrate --to git --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := c.MigrateStoreUseCase(opts.To)
			if err != nil {
				return err
			}

			out, err := uc.Execute(cmd.Context(), usecase.MigrateStoreInput{Force: opts.Force})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Skipped {
				_, _ = fmt.Fprintf(w, "%s store already up to date (%d tasks)\n", opts.To, out.Total)
				return nil
			}
			_, _ = fmt.Fprintf(w, "Migrated %d tasks to %s store\n", out.Migrated, opts.To)
			_, _ = fmt.Fprintf(w, "Set [store] backend = %q in config.toml to use it\n", opts.To)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", fmt.Sprintf("Destination backend: %s, %s or %s", domain.BackendJSON, domain.BackendGit, domain.BackendSQLite))
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite a destination holding a different list")

	return cmd
}
