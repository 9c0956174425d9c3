package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrNothingToUndo      = errors.New("nothing to undo")
	ErrCorruptState       = errors.New("corrupt tracker state")
	ErrConfigExists       = errors.New("config file already exists")
	ErrNotGitRepository   = errors.New("not a git repository")
	ErrUnknownStore       = errors.New("unknown store type")
	ErrUnknownFormat      = errors.New("unknown output format")
	ErrConfirmationNeeded = errors.New("confirmation required (pass --yes)")
	ErrMigrationConflict  = errors.New("destination store already holds a different record (pass --force)")
	ErrSameStore          = errors.New("source and destination store are the same")
)

// Transition errors. All of them wrap ErrInvalidTransition.
var (
	ErrStartWorkWhileWorking     = fmt.Errorf("%w: tried to start work when already working", ErrInvalidTransition)
	ErrStartBreakWhileNotWorking = fmt.Errorf("%w: tried to start break when not working", ErrInvalidTransition)
	ErrAlreadyPaused             = fmt.Errorf("%w: already paused", ErrInvalidTransition)
)
