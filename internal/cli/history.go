package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/runoshun/rational-breaks/internal/app"
	"github.com/runoshun/rational-breaks/internal/domain"
	"github.com/runoshun/rational-breaks/internal/usecase"
	"github.com/spf13/cobra"
)

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var last int
	var all bool
	var format string

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"log"},
		Short:   "List recorded sessions",
		Long: `List recorded work and break sessions, oldest first.

By default the most recent [history] limit sessions are shown.`,
		Example: `  # Show the last 5 sessions
  breaks history --last 5

  # Export everything as YAML
  breaks history --all --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("last") {
				last = c.AppConfig.History.Limit
			}
			if all {
				last = 0
			}

			if format != usecase.FormatText {
				out, err := c.ExportHistoryUseCase().Execute(cmd.Context(), usecase.ExportHistoryInput{
					Format: format,
					Last:   last,
				})
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out.Data)
				return err
			}

			out, err := c.ListHistoryUseCase().Execute(cmd.Context(), usecase.ListHistoryInput{Last: last})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Sessions) == 0 {
				_, _ = fmt.Fprintln(w, "No sessions recorded.")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
			_, _ = fmt.Fprintln(tw, "WORK\tBREAK\tBACK\tWORKED\tBREAK TIME\tMAX\t")
			for _, s := range out.Sessions {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					domain.FormatClock(s.WorkStart),
					domain.FormatClock(s.BreakStart),
					domain.FormatClock(s.BreakEnd),
					domain.FormatDuration(s.WorkDuration()),
					domain.FormatDuration(s.BreakDuration()),
					domain.FormatDuration(s.Budget()),
					overrunMark(s.Overran()))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if len(out.Sessions) < out.Total {
				_, _ = fmt.Fprintf(w, "(%d of %d sessions)\n", len(out.Sessions), out.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&last, "last", "n", domain.DefaultHistoryLimit, "Show only the most recent N sessions")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show all sessions")
	cmd.Flags().StringVarP(&format, "format", "f", usecase.FormatText, "Output format: text, json, yaml or toml")

	return cmd
}

// newClearCommand creates the clear command.
func newClearCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded sessions",
		Long: `Delete all recorded sessions. The current mode is kept.

Requires --yes. The clear can be reverted with "breaks undo".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ClearHistoryUseCase().Execute(cmd.Context(), usecase.ClearHistoryInput{Confirmed: yes})
			if errors.Is(err, domain.ErrConfirmationNeeded) {
				return fmt.Errorf("refusing to clear history: %w", err)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d sessions\n", out.Cleared)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")

	return cmd
}

func overrunMark(overran bool) string {
	if overran {
		return "overrun"
	}
	return ""
}
