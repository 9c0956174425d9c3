package domain

import (
	"slices"
	"time"
)

// Checkpoint is a copy of mode and history taken before a command runs.
type Checkpoint struct {
	Mode    Mode      `json:"mode" yaml:"mode"`
	History []Session `json:"history" yaml:"history"`
}

// CheckpointOf captures the undoable part of s.
func CheckpointOf(s TrackerState) Checkpoint {
	return Checkpoint{
		Mode:    s.Mode,
		History: slices.Clone(s.History),
	}
}

// Restore returns the checkpointed state at now.
func (c Checkpoint) Restore(now time.Time) TrackerState {
	return TrackerState{
		Now:     now,
		Mode:    c.Mode,
		History: slices.Clone(c.History),
	}
}

// UndoStack holds checkpoints, oldest first.
type UndoStack []Checkpoint

// Push returns a new stack with c on top, keeping at most depth entries.
// A depth of zero or less disables undo and yields an empty stack.
func (u UndoStack) Push(c Checkpoint, depth int) UndoStack {
	if depth <= 0 {
		return nil
	}
	next := append(slices.Clip(u), c)
	if len(next) > depth {
		next = slices.Clone(next[len(next)-depth:])
	}
	return next
}

// Pop returns the top checkpoint and the remaining stack.
// ok is false when the stack is empty.
func (u UndoStack) Pop() (c Checkpoint, rest UndoStack, ok bool) {
	if len(u) == 0 {
		return Checkpoint{}, u, false
	}
	return u[len(u)-1], slices.Clip(u[:len(u)-1]), true
}
