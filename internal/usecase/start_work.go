package usecase

import (
	"context"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// StartWorkInput contains the parameters for starting work.
type StartWorkInput struct{}

// StartWorkOutput contains the result of starting work.
type StartWorkOutput struct {
	TransitionOutput
	Session *domain.Session // Session recorded by ending a break, if any
}

// StartWork is the use case for starting a work interval.
type StartWork struct {
	tx transitioner
}

// NewStartWork creates a new StartWork use case.
func NewStartWork(state domain.StateRepository, clock domain.Clock, logger domain.Logger, undoDepth int) *StartWork {
	return &StartWork{tx: newTransitioner(state, clock, logger, undoDepth)}
}

// Execute starts work now. Starting work from a break records the finished session.
func (uc *StartWork) Execute(ctx context.Context, _ StartWorkInput) (*StartWorkOutput, error) {
	out, err := uc.tx.run(ctx, "start work", domain.TrackerState.StartWork)
	if err != nil {
		return nil, err
	}

	res := &StartWorkOutput{TransitionOutput: *out}
	if n := len(out.State.History); n > len(out.Before.History) {
		s := out.State.History[n-1]
		res.Session = &s
	}
	return res, nil
}
