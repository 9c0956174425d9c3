package domain

import (
	"fmt"
	"time"
)

// ModeKind is the discriminant of Mode.
type ModeKind string

const (
	ModePaused  ModeKind = "paused"   // No active work or break
	ModeWorking ModeKind = "working"  // Work started at WorkStart
	ModeOnBreak ModeKind = "on_break" // Break started at BreakStart after work from WorkStart
)

// IsValid returns true if the kind is a known value.
func (k ModeKind) IsValid() bool {
	switch k {
	case ModePaused, ModeWorking, ModeOnBreak:
		return true
	}
	return false
}

// Display returns a human-readable representation of the kind.
func (k ModeKind) Display() string {
	switch k {
	case ModePaused:
		return "Paused"
	case ModeWorking:
		return "Working"
	case ModeOnBreak:
		return "On a break"
	default:
		return string(k)
	}
}

// CanStartWork returns true if StartWork is a valid command in this mode.
func (k ModeKind) CanStartWork() bool {
	return k == ModePaused || k == ModeOnBreak
}

// CanStartBreak returns true if StartBreak is a valid command in this mode.
func (k ModeKind) CanStartBreak() bool {
	return k == ModeWorking
}

// CanPause returns true if Pause is a valid command in this mode.
func (k ModeKind) CanPause() bool {
	return k == ModeWorking || k == ModeOnBreak
}

// Mode is the current phase of the tracker.
// Only the timestamps that belong to Kind are set; the others are zero.
type Mode struct {
	WorkStart  time.Time `json:"workStartTime,omitzero" yaml:"workStartTime,omitempty"`
	BreakStart time.Time `json:"breakStartTime,omitzero" yaml:"breakStartTime,omitempty"`
	Kind       ModeKind  `json:"kind" yaml:"kind"`
}

// Paused returns the paused mode.
func Paused() Mode {
	return Mode{Kind: ModePaused}
}

// Working returns a working mode that began at workStart.
func Working(workStart time.Time) Mode {
	return Mode{Kind: ModeWorking, WorkStart: workStart}
}

// OnBreak returns a break mode for the work session [workStart, breakStart).
func OnBreak(workStart, breakStart time.Time) Mode {
	return Mode{Kind: ModeOnBreak, WorkStart: workStart, BreakStart: breakStart}
}

// Equal reports whether m and o have the same kind and instants.
// Locations and monotonic readings are ignored.
func (m Mode) Equal(o Mode) bool {
	return m.Kind == o.Kind && m.WorkStart.Equal(o.WorkStart) && m.BreakStart.Equal(o.BreakStart)
}

// Validate checks that the mode is well formed.
func (m Mode) Validate() error {
	switch m.Kind {
	case ModePaused:
		return nil
	case ModeWorking:
		if m.WorkStart.IsZero() {
			return fmt.Errorf("%w: working mode without work start", ErrCorruptState)
		}
		return nil
	case ModeOnBreak:
		if m.WorkStart.IsZero() || m.BreakStart.IsZero() {
			return fmt.Errorf("%w: break mode without timestamps", ErrCorruptState)
		}
		if m.BreakStart.Before(m.WorkStart) {
			return fmt.Errorf("%w: break starts before work", ErrCorruptState)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrCorruptState, m.Kind)
	}
}
