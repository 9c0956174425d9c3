// Package cli provides the command-line interface for rational-breaks.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/rational-breaks/internal/app"
	"github.com/runoshun/rational-breaks/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTimer   = "timer"
	groupHistory = "history"
	groupSetup   = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for breaks.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "breaks",
		Short: "Work timer that earns you proportional breaks",
		Long: `breaks tracks alternating work and break intervals.

Every stretch of work earns a break of one third of its length.
A break that runs past its budget is shown as overrun.

Run without arguments to open the interactive timer.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTimer, Title: "Timer Commands:"},
		&cobra.Group{ID: groupHistory, Title: "History Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Timer commands
	workCmd := newWorkCommand(c)
	workCmd.GroupID = groupTimer

	breakCmd := newBreakCommand(c)
	breakCmd.GroupID = groupTimer

	pauseCmd := newPauseCommand(c)
	pauseCmd.GroupID = groupTimer

	undoCmd := newUndoCommand(c)
	undoCmd.GroupID = groupTimer

	statusCmd := newStatusCommand(c)
	statusCmd.GroupID = groupTimer

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTimer

	// History commands
	historyCmd := newHistoryCommand(c)
	historyCmd.GroupID = groupHistory

	clearCmd := newClearCommand(c)
	clearCmd.GroupID = groupHistory

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	migrateCmd := newMigrateCommand(c)
	migrateCmd.GroupID = groupSetup

	root.AddCommand(
		workCmd,
		breakCmd,
		pauseCmd,
		undoCmd,
		statusCmd,
		tuiCmd,
		historyCmd,
		clearCmd,
		configCmd,
		migrateCmd,
	)

	return root
}

// launchTUI runs the interactive timer until the user quits.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
