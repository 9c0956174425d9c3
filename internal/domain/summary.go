package domain

import (
	"fmt"
	"time"
)

// Summary holds the values a renderer shows for a tracker state.
// Durations are clamped at zero when the clock is behind a recorded start.
type Summary struct {
	Now        time.Time
	WorkStart  time.Time
	BreakStart time.Time
	Kind       ModeKind

	// WorkElapsed is the running work time while working, or the finished
	// work time while on a break.
	WorkElapsed time.Duration
	// BreakElapsed is the running break time.
	BreakElapsed time.Duration
	// BreakBudget is the maximum allowed break time.
	BreakBudget time.Duration
	// BreakRemaining is the budget left; negative once overrun.
	BreakRemaining time.Duration

	Sessions int
	Overrun  bool
}

// Summarize derives the display values for the state at s.Now.
func (s TrackerState) Summarize() Summary {
	sum := Summary{
		Now:        s.Now,
		Kind:       s.Mode.Kind,
		WorkStart:  s.Mode.WorkStart,
		BreakStart: s.Mode.BreakStart,
		Sessions:   len(s.History),
	}

	switch s.Mode.Kind {
	case ModeWorking:
		sum.WorkElapsed = elapsed(s.Mode.WorkStart, s.Now)
		// Budget earned so far if a break started now.
		sum.BreakBudget = MaxBreakDuration(s.Mode.WorkStart, s.Now)
	case ModeOnBreak:
		sum.WorkElapsed = elapsed(s.Mode.WorkStart, s.Mode.BreakStart)
		sum.BreakElapsed = elapsed(s.Mode.BreakStart, s.Now)
		sum.BreakBudget = MaxBreakDuration(s.Mode.WorkStart, s.Mode.BreakStart)
		sum.BreakRemaining = sum.BreakBudget - sum.BreakElapsed
		sum.Overrun = IsOverrun(s.Mode, s.Now)
	case ModePaused:
	}

	return sum
}

func elapsed(from, to time.Time) time.Duration {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return d
}

// Title is the headline for the mode, e.g. "On a break, max 10 mins".
func (s Summary) Title() string {
	if s.Kind == ModeOnBreak {
		return "On a break, max " + FormatDuration(s.BreakBudget)
	}
	return s.Kind.Display()
}

// Description is a one-line account of the current mode.
func (s Summary) Description() string {
	switch s.Kind {
	case ModeWorking:
		return fmt.Sprintf("Started %s, working for %s",
			FormatClock(s.WorkStart),
			FormatDuration(s.WorkElapsed))
	case ModeOnBreak:
		return fmt.Sprintf("Worked for %s (%s to %s), on a break for %s",
			FormatDuration(s.WorkElapsed),
			FormatClock(s.WorkStart),
			FormatClock(s.BreakStart),
			FormatDuration(s.BreakElapsed))
	case ModePaused:
	}
	return `Press "start work" to begin`
}
