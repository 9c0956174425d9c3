package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/rational-breaks/internal/domain"
)

// View renders the model.
func (m *Model) View() string {
	var body string
	switch m.mode {
	case ModeConfirm:
		body = m.viewConfirmDialog()
	case ModeHelp:
		body = m.viewHelp()
	case ModeHistory:
		body = m.viewHistory()
	case ModeNormal:
		body = m.viewMain()
	}
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.viewFooter()))
}

func (m *Model) viewMain() string {
	sum := m.state.Summarize()
	lines := []string{
		m.viewTitle(sum),
		m.styles.Description.Render(sum.Description()),
	}

	if detail := m.viewDetail(sum); detail != "" {
		lines = append(lines, detail)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// viewTitle renders the mode title in the mode colour.
func (m *Model) viewTitle(sum domain.Summary) string {
	return m.styles.TitleStyle(sum.Kind, sum.Overrun).Render(sum.Title())
}

func (m *Model) viewDetail(sum domain.Summary) string {
	var rows []string
	row := func(label, value string) {
		rows = append(rows, m.styles.Label.Render(label)+m.styles.Value.Render(value))
	}

	switch sum.Kind {
	case domain.ModeWorking:
		row("Break earned", domain.FormatDuration(sum.BreakBudget))
	case domain.ModeOnBreak:
		if sum.Overrun {
			row("Over by", domain.FormatDuration(-sum.BreakRemaining))
		} else {
			row("Remaining", domain.FormatDuration(sum.BreakRemaining))
		}
	case domain.ModePaused:
	}
	if sum.Sessions > 0 {
		row("Sessions", fmt.Sprintf("%d", sum.Sessions))
	}

	if len(rows) == 0 {
		return ""
	}
	return "\n" + strings.Join(rows, "\n")
}

func (m *Model) viewConfirmDialog() string {
	var question string
	switch m.confirmAction {
	case ConfirmClear:
		question = fmt.Sprintf("Clear %d recorded sessions?", len(m.state.History))
	case ConfirmNone:
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DialogTitle.Render("Confirm"),
		"",
		question,
		"",
		m.styles.Notice.Render("y: yes   any other key: cancel"),
	)
	return m.styles.Dialog.Render(content)
}

func (m *Model) viewHelp() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DialogTitle.Render("Keys"),
		"",
		m.help.View(m.keys),
		"",
		m.styles.Notice.Render("Breaks may last a third of the work before them."),
	)
}

func (m *Model) viewHistory() string {
	if len(m.state.History) == 0 {
		return m.styles.HistoryHint.Render("No sessions recorded yet.")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DialogTitle.Render(fmt.Sprintf("History (%d)", len(m.state.History))),
		m.history.View(),
	)
}

func (m *Model) viewFooter() string {
	var lines []string
	if m.err != nil {
		lines = append(lines, m.styles.ErrorMsg.Render("Error: "+m.err.Error()))
	} else if m.notice != "" {
		lines = append(lines, m.styles.Notice.Render(m.notice))
	}
	if m.mode == ModeNormal {
		lines = append(lines, m.help.View(m.keys))
	}
	return m.styles.Footer.Render(strings.Join(lines, "\n"))
}
