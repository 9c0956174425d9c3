package usecase

import (
	"context"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// PauseInput contains the parameters for pausing.
type PauseInput struct{}

// PauseOutput contains the result of pausing.
type PauseOutput struct {
	TransitionOutput
}

// Pause is the use case for stopping the tracker without recording a session.
type Pause struct {
	tx transitioner
}

// NewPause creates a new Pause use case.
func NewPause(state domain.StateRepository, clock domain.Clock, logger domain.Logger, undoDepth int) *Pause {
	return &Pause{tx: newTransitioner(state, clock, logger, undoDepth)}
}

// Execute pauses the tracker. The interrupted work or break is discarded.
func (uc *Pause) Execute(ctx context.Context, _ PauseInput) (*PauseOutput, error) {
	out, err := uc.tx.run(ctx, "pause", domain.TrackerState.Pause)
	if err != nil {
		return nil, err
	}
	return &PauseOutput{TransitionOutput: *out}, nil
}
