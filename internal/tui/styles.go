package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/rational-breaks/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color

	// Mode colors
	Paused  lipgloss.Color
	Work    lipgloss.Color
	Break   lipgloss.Color
	Overrun lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Background: lipgloss.Color("#2D3436"), // Dark gray
	Text:       lipgloss.Color("#DFE6E9"), // Light gray

	Paused:  lipgloss.Color("#B2BEC3"), // Silver
	Work:    lipgloss.Color("#0984E3"), // Blue
	Break:   lipgloss.Color("#00B894"), // Green
	Overrun: lipgloss.Color("#E17055"), // Orange
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Mode title
	TitlePaused  lipgloss.Style
	TitleWork    lipgloss.Style
	TitleBreak   lipgloss.Style
	TitleOverrun lipgloss.Style

	// Body
	Description lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style

	// Dialogs
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Footer
	Footer      lipgloss.Style
	Notice      lipgloss.Style
	ErrorMsg    lipgloss.Style
	HistoryHint lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	title := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 2).
		Foreground(lipgloss.Color("#FFFFFF"))

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TitlePaused:  title.Background(Colors.Paused).Foreground(Colors.Background),
		TitleWork:    title.Background(Colors.Work),
		TitleBreak:   title.Background(Colors.Break),
		TitleOverrun: title.Background(Colors.Overrun),

		Description: lipgloss.NewStyle().Foreground(Colors.Text).MarginTop(1),
		Label:       lipgloss.NewStyle().Foreground(Colors.Muted).Width(16),
		Value:       lipgloss.NewStyle().Foreground(Colors.Text),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),

		Footer:      lipgloss.NewStyle().MarginTop(1),
		Notice:      lipgloss.NewStyle().Foreground(Colors.Muted).Italic(true),
		ErrorMsg:    lipgloss.NewStyle().Foreground(Colors.Error),
		HistoryHint: lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}

// TitleStyle returns the title style for a mode. Overrun breaks get their own colour.
func (s Styles) TitleStyle(kind domain.ModeKind, overrun bool) lipgloss.Style {
	switch kind {
	case domain.ModeWorking:
		return s.TitleWork
	case domain.ModeOnBreak:
		if overrun {
			return s.TitleOverrun
		}
		return s.TitleBreak
	case domain.ModePaused:
		return s.TitlePaused
	}
	return s.TitlePaused
}
