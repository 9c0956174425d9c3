// Package tui provides the interactive break timer.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Timer view
	ModeConfirm             // Confirmation dialog mode
	ModeHelp                // Help overlay mode
	ModeHistory             // Session history table
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	case ModeHistory:
		return "history"
	default:
		return "unknown"
	}
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone  ConfirmAction = iota
	ConfirmClear               // Clear session history
)
