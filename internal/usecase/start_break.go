package usecase

import (
	"context"
	"time"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// StartBreakInput contains the parameters for starting a break.
type StartBreakInput struct{}

// StartBreakOutput contains the result of starting a break.
type StartBreakOutput struct {
	TransitionOutput
	Budget time.Duration // Maximum break time earned by the finished work
}

// StartBreak is the use case for ending work and starting a break.
type StartBreak struct {
	tx transitioner
}

// NewStartBreak creates a new StartBreak use case.
func NewStartBreak(state domain.StateRepository, clock domain.Clock, logger domain.Logger, undoDepth int) *StartBreak {
	return &StartBreak{tx: newTransitioner(state, clock, logger, undoDepth)}
}

// Execute starts a break now.
func (uc *StartBreak) Execute(ctx context.Context, _ StartBreakInput) (*StartBreakOutput, error) {
	out, err := uc.tx.run(ctx, "start break", domain.TrackerState.StartBreak)
	if err != nil {
		return nil, err
	}
	return &StartBreakOutput{
		TransitionOutput: *out,
		Budget:           out.Summary.BreakBudget,
	}, nil
}
