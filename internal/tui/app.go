package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/rational-breaks/internal/app"
	"github.com/runoshun/rational-breaks/internal/domain"
	"github.com/runoshun/rational-breaks/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	config    *domain.Config
	err       error

	// State
	state  domain.TrackerState
	notice string

	// Components (structs with pointers)
	keys    KeyMap
	styles  Styles
	help    help.Model
	history table.Model

	// Numeric state (smaller types last)
	mode          Mode
	confirmAction ConfirmAction
	width         int
	height        int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	keys := DefaultKeyMap()
	state := domain.NewTrackerState(c.Clock.Now())
	keys.updateFor(state)

	return &Model{
		container: c,
		config:    c.AppConfig,
		state:     state,
		keys:      keys,
		styles:    DefaultStyles(),
		help:      help.New(),
		history:   newHistoryTable(),
		mode:      ModeNormal,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadState(),
		m.loadConfig(),
		m.tick(),
	)
}

// State returns the tracker state being displayed.
func (m *Model) State() domain.TrackerState {
	return m.state
}

// tickInterval returns the configured refresh interval.
func (m *Model) tickInterval() time.Duration {
	return m.config.TickDuration()
}

// tick schedules the next MsgTick.
func (m *Model) tick() tea.Cmd {
	clock := m.container.Clock
	return tea.Tick(m.tickInterval(), func(time.Time) tea.Msg {
		return MsgTick{Now: clock.Now()}
	})
}

// loadState returns a command that loads the stored tracker state.
func (m *Model) loadState() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ShowStatusUseCase().Execute(context.Background(), usecase.ShowStatusInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateLoaded{State: out.State}
	}
}

// refreshState returns a command that re-reads the store, picking up
// commands run from another process.
func (m *Model) refreshState() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ShowStatusUseCase().Execute(context.Background(), usecase.ShowStatusInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateRefreshed{State: out.State}
	}
}

// loadConfig returns a command that loads the configuration.
func (m *Model) loadConfig() tea.Cmd {
	loader := m.container.ConfigLoader
	return func() tea.Msg {
		if loader == nil {
			return MsgConfigLoaded{Config: domain.NewDefaultConfig()}
		}
		cfg, err := loader.Load()
		if err != nil {
			// Config loading failure is not fatal; use defaults
			cfg = domain.NewDefaultConfig()
		}
		return MsgConfigLoaded{Config: cfg}
	}
}

// startWork returns a command that runs the StartWork use case.
func (m *Model) startWork() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.StartWorkUseCase().Execute(context.Background(), usecase.StartWorkInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		notice := ""
		if out.Session != nil {
			notice = fmt.Sprintf("Break of %s recorded", domain.FormatDuration(out.Session.BreakDuration()))
		}
		return MsgStateLoaded{State: out.State, Notice: notice}
	}
}

// startBreak returns a command that runs the StartBreak use case.
func (m *Model) startBreak() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.StartBreakUseCase().Execute(context.Background(), usecase.StartBreakInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateLoaded{State: out.State}
	}
}

// pause returns a command that runs the Pause use case.
func (m *Model) pause() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.PauseUseCase().Execute(context.Background(), usecase.PauseInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateLoaded{State: out.State, Notice: "Paused"}
	}
}

// undo returns a command that runs the Undo use case.
func (m *Model) undo() tea.Cmd {
	current := m.state
	return func() tea.Msg {
		out, err := m.container.UndoUseCase().Execute(context.Background(), usecase.UndoInput{})
		if errors.Is(err, domain.ErrNothingToUndo) {
			return MsgStateLoaded{State: current, Notice: "Nothing to undo"}
		}
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateLoaded{State: out.State, Notice: "Undone"}
	}
}

// clearHistory returns a command that runs the ClearHistory use case.
func (m *Model) clearHistory() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ClearHistoryUseCase().Execute(context.Background(), usecase.ClearHistoryInput{Confirmed: true})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateLoaded{State: out.State, Notice: fmt.Sprintf("Cleared %d sessions", out.Cleared)}
	}
}

// setState replaces the displayed state and refreshes dependent components.
func (m *Model) setState(s domain.TrackerState) {
	m.state = s
	m.keys.updateFor(s)
	m.history.SetRows(historyRows(s.History))
}
