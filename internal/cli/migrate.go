package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/rational-breaks/internal/app"
	"github.com/runoshun/rational-breaks/internal/domain"
	"github.com/runoshun/rational-breaks/internal/usecase"
	"github.com/spf13/cobra"
)

// newMigrateCommand creates the migrate command.
func newMigrateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		From  string
		To    string
		Force bool
	}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy timer state to another store",
		Long: `Copy the timer state and history from one store to another.

The source defaults to the store in use. The destination is opened where
the config would put it, so switching [store] type afterwards picks up
the copied state.

Examples:
  # Move from the JSON file into the current git repository
  breaks migrate --to git

  # Replace whatever the JSON file holds with the git copy
  breaks migrate --from git --to json --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from := strings.ToLower(strings.TrimSpace(opts.From))
			if from == "" {
				from = c.ActiveStoreType()
			}
			to := strings.ToLower(strings.TrimSpace(opts.To))
			if to == "" {
				return errors.New("--to is required")
			}
			if from == to {
				return fmt.Errorf("%w: %s", domain.ErrSameStore, to)
			}

			source, err := c.StoreFor(from)
			if err != nil {
				return fmt.Errorf("open %s store: %w", from, err)
			}
			dest, err := c.StoreFor(to)
			if err != nil {
				return fmt.Errorf("open %s store: %w", to, err)
			}

			out, err := c.MigrateStoreUseCase(source, dest).Execute(cmd.Context(), usecase.MigrateStoreInput{Force: opts.Force})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Skipped {
				_, _ = fmt.Fprintf(w, "%s store already up to date\n", to)
				return nil
			}
			_, _ = fmt.Fprintf(w, "Migrated %d sessions from %s store to %s store\n", out.Sessions, from, to)
			if to != c.ActiveStoreType() {
				_, _ = fmt.Fprintf(w, "Set [store] type = %q to use it\n", to)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "Source store type: json, git (default: store in use)")
	cmd.Flags().StringVar(&opts.To, "to", "", "Destination store type: json, git")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite a destination holding different state")

	return cmd
}
