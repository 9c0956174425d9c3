package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/rational-breaks/internal/app"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `breaks` without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive timer",
		Long:  `Launch the interactive terminal timer.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
	return cmd
}
