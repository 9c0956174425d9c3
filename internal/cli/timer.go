package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/runoshun/rational-breaks/internal/app"
	"github.com/runoshun/rational-breaks/internal/domain"
	"github.com/runoshun/rational-breaks/internal/usecase"
	"github.com/spf13/cobra"
)

// newWorkCommand creates the work command.
func newWorkCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "work",
		Aliases: []string{"w"},
		Short:   "Start working",
		Long: `Start a work interval now.

Starting work while on a break ends the break and records the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.StartWorkUseCase().Execute(cmd.Context(), usecase.StartWorkInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if s := out.Session; s != nil {
				_, _ = fmt.Fprintf(w, "Recorded: worked %s, break %s (max %s)%s\n",
					domain.FormatDuration(s.WorkDuration()),
					domain.FormatDuration(s.BreakDuration()),
					domain.FormatDuration(s.Budget()),
					overrunSuffix(s.Overran()))
			}
			_, _ = fmt.Fprintf(w, "Started work at %s\n", domain.FormatClock(out.State.Mode.WorkStart))
			return nil
		},
	}
}

// newBreakCommand creates the break command.
func newBreakCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "break",
		Aliases: []string{"b"},
		Short:   "Start a break",
		Long:    `End the current work interval and start a break of up to a third of its length.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.StartBreakUseCase().Execute(cmd.Context(), usecase.StartBreakInput{})
			if err != nil {
				return err
			}
			until := out.State.Mode.BreakStart.Add(out.Budget)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (back by %s)\n", out.Summary.Title(), domain.FormatClock(until))
			return nil
		},
	}
}

// newPauseCommand creates the pause command.
func newPauseCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Stop tracking",
		Long: `Stop tracking without recording a session.

The interrupted work or break is discarded. Use "breaks undo" to resume it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.PauseUseCase().Execute(cmd.Context(), usecase.PauseInput{}); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Paused")
			return nil
		},
	}
}

// newUndoCommand creates the undo command.
func newUndoCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Undo the last command",
		Long:  `Revert the last work, break, pause or clear command.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.UndoUseCase().Execute(cmd.Context(), usecase.UndoInput{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Undone. %s\n", out.Summary.Title())
			_, _ = fmt.Fprintln(w, out.Summary.Description())
			return nil
		},
	}
}

// newStatusCommand creates the status command.
func newStatusCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show the current mode",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowStatusUseCase().Execute(cmd.Context(), usecase.ShowStatusInput{})
			if err != nil {
				return err
			}
			if asJSON {
				return writeStatusJSON(cmd.OutOrStdout(), out.Summary)
			}
			writeStatusText(cmd.OutOrStdout(), out.Summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

func writeStatusText(w io.Writer, sum domain.Summary) {
	_, _ = fmt.Fprintln(w, sum.Title())
	_, _ = fmt.Fprintln(w, sum.Description())

	switch sum.Kind {
	case domain.ModeWorking:
		_, _ = fmt.Fprintf(w, "Break earned: %s\n", domain.FormatDuration(sum.BreakBudget))
	case domain.ModeOnBreak:
		if sum.Overrun {
			_, _ = fmt.Fprintf(w, "Overrun by %s\n", domain.FormatDuration(-sum.BreakRemaining))
		} else {
			_, _ = fmt.Fprintf(w, "Remaining: %s\n", domain.FormatDuration(sum.BreakRemaining))
		}
	case domain.ModePaused:
	}
}

// jsonStatus is the machine-readable status.
// Fields are ordered to minimize memory padding.
type jsonStatus struct {
	WorkStart        *time.Time      `json:"workStartTime,omitempty"`
	BreakStart       *time.Time      `json:"breakStartTime,omitempty"`
	Now              time.Time       `json:"now"`
	Mode             domain.ModeKind `json:"mode"`
	WorkSeconds      int64           `json:"workSeconds"`
	BreakSeconds     int64           `json:"breakSeconds"`
	BudgetSeconds    int64           `json:"budgetSeconds"`
	RemainingSeconds int64           `json:"remainingSeconds"`
	Sessions         int             `json:"sessions"`
	Overrun          bool            `json:"overrun"`
}

func writeStatusJSON(w io.Writer, sum domain.Summary) error {
	st := jsonStatus{
		Now:              sum.Now,
		Mode:             sum.Kind,
		WorkSeconds:      int64(sum.WorkElapsed / time.Second),
		BreakSeconds:     int64(sum.BreakElapsed / time.Second),
		BudgetSeconds:    int64(sum.BreakBudget / time.Second),
		RemainingSeconds: int64(sum.BreakRemaining / time.Second),
		Sessions:         sum.Sessions,
		Overrun:          sum.Overrun,
	}
	if !sum.WorkStart.IsZero() {
		st.WorkStart = &sum.WorkStart
	}
	if !sum.BreakStart.IsZero() {
		st.BreakStart = &sum.BreakStart
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

func overrunSuffix(overran bool) string {
	if overran {
		return ", overrun"
	}
	return ""
}
