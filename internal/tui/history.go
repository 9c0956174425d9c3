package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/rational-breaks/internal/domain"
)

const (
	historyHeight = 10
	historyWidth  = 80
)

func newHistoryTable() table.Model {
	columns := []table.Column{
		{Title: "Work", Width: 9},
		{Title: "Break", Width: 9},
		{Title: "Back", Width: 9},
		{Title: "Worked", Width: 9},
		{Title: "Rested", Width: 9},
		{Title: "Max", Width: 9},
		{Title: "", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(historyHeight),
		table.WithWidth(historyWidth),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Colors.Muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(Colors.Text).
		Background(Colors.Primary)
	t.SetStyles(s)

	return t
}

// historyRows renders sessions newest first.
func historyRows(sessions []domain.Session) []table.Row {
	rows := make([]table.Row, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		over := ""
		if s.Overran() {
			over = "overrun"
		}
		rows = append(rows, table.Row{
			domain.FormatClock(s.WorkStart),
			domain.FormatClock(s.BreakStart),
			domain.FormatClock(s.BreakEnd),
			domain.FormatDuration(s.WorkDuration()),
			domain.FormatDuration(s.BreakDuration()),
			domain.FormatDuration(s.Budget()),
			over,
		})
	}
	return rows
}
