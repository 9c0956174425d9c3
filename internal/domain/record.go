package domain

import (
	"fmt"
	"slices"
	"time"
)

// RecordVersion is the current schema version of Record.
const RecordVersion = 1

// Record is the persisted form of the tracker.
// Now is not stored; it is supplied by the clock when the record is loaded.
type Record struct {
	Mode    Mode      `json:"mode" yaml:"mode"`
	History []Session `json:"history" yaml:"history"`
	Undo    UndoStack `json:"undo,omitempty" yaml:"undo,omitempty"`
	Version int       `json:"version" yaml:"version"`
}

// NewRecord returns the record of a fresh, paused tracker.
func NewRecord() *Record {
	return &Record{
		Mode:    Paused(),
		History: []Session{},
		Version: RecordVersion,
	}
}

// State returns the tracker state held by the record at now.
func (r *Record) State(now time.Time) TrackerState {
	return TrackerState{
		Now:     now,
		Mode:    r.Mode,
		History: slices.Clone(r.History),
	}
}

// Apply stores s into the record. Undo is left untouched.
func (r *Record) Apply(s TrackerState) {
	r.Mode = s.Mode
	r.History = slices.Clone(s.History)
	if r.History == nil {
		r.History = []Session{}
	}
	r.Version = RecordVersion
}

// IsEmpty reports whether the record is indistinguishable from NewRecord.
func (r *Record) IsEmpty() bool {
	return r.Mode.Kind == ModePaused && len(r.History) == 0 && len(r.Undo) == 0
}

// SameState reports whether r and o hold the same mode and history.
// The undo stack is not compared.
func (r *Record) SameState(o *Record) bool {
	return r.Mode.Equal(o.Mode) && slices.EqualFunc(r.History, o.History, Session.Equal)
}

// Validate checks mode and history for consistency.
func (r *Record) Validate() error {
	if r.Version > RecordVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorruptState, r.Version)
	}
	if err := r.Mode.Validate(); err != nil {
		return err
	}
	for i, s := range r.History {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("history[%d]: %w", i, err)
		}
		if i > 0 && s.BreakEnd.Before(r.History[i-1].BreakEnd) {
			return fmt.Errorf("%w: history[%d] out of order", ErrCorruptState, i)
		}
	}
	return nil
}
