package usecase

import (
	"context"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// ClearHistoryInput contains the parameters for clearing history.
type ClearHistoryInput struct {
	Confirmed bool // Must be true; clearing is refused otherwise
}

// ClearHistoryOutput contains the result of clearing history.
type ClearHistoryOutput struct {
	TransitionOutput
	Cleared int // Number of sessions removed
}

// ClearHistory is the use case for dropping all recorded sessions.
// The current mode is kept, and the clear can be undone.
type ClearHistory struct {
	tx transitioner
}

// NewClearHistory creates a new ClearHistory use case.
func NewClearHistory(state domain.StateRepository, clock domain.Clock, logger domain.Logger, undoDepth int) *ClearHistory {
	return &ClearHistory{tx: newTransitioner(state, clock, logger, undoDepth)}
}

// Execute clears the history.
func (uc *ClearHistory) Execute(ctx context.Context, in ClearHistoryInput) (*ClearHistoryOutput, error) {
	if !in.Confirmed {
		return nil, domain.ErrConfirmationNeeded
	}

	out, err := uc.tx.run(ctx, "clear history", func(s domain.TrackerState) (domain.TrackerState, error) {
		return s.ClearHistory(), nil
	})
	if err != nil {
		return nil, err
	}
	return &ClearHistoryOutput{
		TransitionOutput: *out,
		Cleared:          len(out.Before.History),
	}, nil
}
