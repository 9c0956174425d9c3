package domain

import (
	"fmt"
	"time"
)

// Session is one completed work and break cycle.
type Session struct {
	WorkStart  time.Time `json:"workStartTime" yaml:"workStartTime"`
	BreakStart time.Time `json:"breakStartTime" yaml:"breakStartTime"`
	BreakEnd   time.Time `json:"breakEndTime" yaml:"breakEndTime"`
}

// WorkDuration returns how long the work part lasted.
func (s Session) WorkDuration() time.Duration {
	return s.BreakStart.Sub(s.WorkStart)
}

// BreakDuration returns how long the break part lasted.
func (s Session) BreakDuration() time.Duration {
	return s.BreakEnd.Sub(s.BreakStart)
}

// Budget returns the break budget earned by the work part.
func (s Session) Budget() time.Duration {
	return MaxBreakDuration(s.WorkStart, s.BreakStart)
}

// Overran returns true if the break exceeded its budget.
func (s Session) Overran() bool {
	return s.BreakDuration() > s.Budget()
}

// Equal reports whether s and o cover the same instants.
func (s Session) Equal(o Session) bool {
	return s.WorkStart.Equal(o.WorkStart) && s.BreakStart.Equal(o.BreakStart) && s.BreakEnd.Equal(o.BreakEnd)
}

// Validate checks that the timestamps are in order.
func (s Session) Validate() error {
	if s.BreakStart.Before(s.WorkStart) || s.BreakEnd.Before(s.BreakStart) {
		return fmt.Errorf("%w: session timestamps out of order", ErrCorruptState)
	}
	return nil
}
