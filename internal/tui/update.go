package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/rational-breaks/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgTick:
		m.state = m.state.Tick(msg.Now)
		return m, tea.Batch(m.refreshState(), m.tick())

	case MsgStateRefreshed:
		m.setState(msg.State)
		return m, nil

	case MsgStateLoaded:
		m.setState(msg.State)
		m.notice = msg.Notice
		m.err = nil
		return m, nil

	case MsgConfigLoaded:
		m.config = msg.Config
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.notice = ""
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		// The store changed under us; show what it holds now.
		if errors.Is(msg.Err, domain.ErrInvalidTransition) {
			return m, m.refreshState()
		}
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches key presses by UI mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeHistory:
		return m.handleHistoryMode(msg)
	case ModeNormal:
	}
	return m.handleNormalMode(msg)
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.StartWork):
		return m, m.startWork()

	case key.Matches(msg, m.keys.StartBreak):
		return m, m.startBreak()

	case key.Matches(msg, m.keys.Pause):
		return m, m.pause()

	case key.Matches(msg, m.keys.Undo):
		return m, m.undo()

	case key.Matches(msg, m.keys.Clear):
		m.mode = ModeConfirm
		m.confirmAction = ConfirmClear
		return m, nil

	case key.Matches(msg, m.keys.History):
		m.mode = ModeHistory
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		m.help.ShowAll = true
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.err = nil
		m.notice = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.confirmAction
	m.mode = ModeNormal
	m.confirmAction = ConfirmNone

	if !key.Matches(msg, m.keys.Confirm) {
		m.notice = "Cancelled"
		return m, nil
	}

	switch action {
	case ConfirmClear:
		return m, m.clearHistory()
	case ConfirmNone:
	}
	return m, nil
}

// handleHelpMode closes the help overlay on any key.
func (m *Model) handleHelpMode(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	m.help.ShowAll = false
	return m, nil
}

func (m *Model) handleHistoryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.History), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}
