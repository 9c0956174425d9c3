package domain

import (
	"fmt"
	"slices"
	"time"
)

// TrackerState is the whole state of the break tracker.
//
// TrackerState is a value. Every transition returns a new state and never
// writes through the History slice of the receiver, so earlier snapshots stay
// valid after later transitions.
type TrackerState struct {
	Now     time.Time
	History []Session
	Mode    Mode
}

// NewTrackerState returns a paused tracker with an empty history.
func NewTrackerState(now time.Time) TrackerState {
	return TrackerState{
		Now:  now,
		Mode: Paused(),
	}
}

// Tick replaces the current time. Mode and history are unchanged.
func (s TrackerState) Tick(now time.Time) TrackerState {
	s.Now = now
	return s
}

// LatestRecorded returns the newest timestamp held by mode and history.
// It is the zero time for a paused tracker with no history.
func (s TrackerState) LatestRecorded() time.Time {
	var latest time.Time
	for _, t := range []time.Time{s.Mode.WorkStart, s.Mode.BreakStart} {
		if t.After(latest) {
			latest = t
		}
	}
	if n := len(s.History); n > 0 && s.History[n-1].BreakEnd.After(latest) {
		latest = s.History[n-1].BreakEnd
	}
	return latest
}

// TickForward is Tick, except that now is raised to LatestRecorded when the
// clock is behind it. The second result reports whether now was raised.
func (s TrackerState) TickForward(now time.Time) (TrackerState, bool) {
	if latest := s.LatestRecorded(); now.Before(latest) {
		return s.Tick(latest), true
	}
	return s.Tick(now), false
}

// StartWork begins a work interval at Now.
// Ending a break records the finished work and break cycle in History.
// On error the receiver is returned unchanged.
func (s TrackerState) StartWork() (TrackerState, error) {
	switch s.Mode.Kind {
	case ModePaused:
	case ModeOnBreak:
		s.History = appendSession(s.History, Session{
			WorkStart:  s.Mode.WorkStart,
			BreakStart: s.Mode.BreakStart,
			BreakEnd:   s.Now,
		})
	case ModeWorking:
		return s, ErrStartWorkWhileWorking
	default:
		return s, fmt.Errorf("%w: unknown mode %q", ErrInvalidTransition, s.Mode.Kind)
	}
	s.Mode = Working(s.Now)
	return s, nil
}

// StartBreak ends the current work interval and begins a break at Now.
// On error the receiver is returned unchanged.
func (s TrackerState) StartBreak() (TrackerState, error) {
	if s.Mode.Kind != ModeWorking {
		return s, ErrStartBreakWhileNotWorking
	}
	s.Mode = OnBreak(s.Mode.WorkStart, s.Now)
	return s, nil
}

// Pause stops tracking. The interrupted work or break is discarded; only
// StartWork from a break records a session.
func (s TrackerState) Pause() (TrackerState, error) {
	if !s.Mode.Kind.CanPause() {
		return s, ErrAlreadyPaused
	}
	s.Mode = Paused()
	return s, nil
}

// ClearHistory drops all recorded sessions.
func (s TrackerState) ClearHistory() TrackerState {
	s.History = nil
	return s
}

// appendSession appends without sharing the backing array of history.
func appendSession(history []Session, session Session) []Session {
	return append(slices.Clip(history), session)
}

// MaxBreakDuration returns the break budget for a work interval: one third of
// its length. A negative interval yields a zero budget.
func MaxBreakDuration(workStart, workEnd time.Time) time.Duration {
	worked := workEnd.Sub(workStart)
	if worked <= 0 {
		return 0
	}
	return worked / 3
}

// IsOverrun reports whether the break in mode has exceeded its budget at now.
// It is always false outside a break. A break exactly at its budget is not an
// overrun.
func IsOverrun(mode Mode, now time.Time) bool {
	if mode.Kind != ModeOnBreak {
		return false
	}
	return now.Sub(mode.BreakStart) > MaxBreakDuration(mode.WorkStart, mode.BreakStart)
}
