package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/runoshun/rational-breaks/internal/domain"
)

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Timer
	StartWork  key.Binding
	StartBreak key.Binding
	Pause      key.Binding
	Undo       key.Binding
	Clear      key.Binding

	// View
	History key.Binding
	Help    key.Binding

	// General
	Quit    key.Binding
	Escape  key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		StartWork: key.NewBinding(
			key.WithKeys("w", "enter"),
			key.WithHelp("w", "start work"),
		),
		StartBreak: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "start break"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear history"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartWork, k.StartBreak, k.Pause, k.Undo, k.History, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartWork, k.StartBreak, k.Pause},
		{k.Undo, k.Clear},
		{k.History, k.Help, k.Quit},
	}
}

// updateFor enables only the commands that are valid for the tracker state.
func (k *KeyMap) updateFor(s domain.TrackerState) {
	k.StartWork.SetEnabled(s.Mode.Kind.CanStartWork())
	k.StartBreak.SetEnabled(s.Mode.Kind.CanStartBreak())
	k.Pause.SetEnabled(s.Mode.Kind.CanPause())
	k.Clear.SetEnabled(len(s.History) > 0)
}
