package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// ShowStatusInput contains the parameters for showing status.
type ShowStatusInput struct{}

// ShowStatusOutput contains the current tracker status.
type ShowStatusOutput struct {
	State     domain.TrackerState
	Summary   domain.Summary
	UndoDepth int // Commands that can be undone
}

// ShowStatus is the use case for reading the current state.
type ShowStatus struct {
	state domain.StateRepository
	clock domain.Clock
}

// NewShowStatus creates a new ShowStatus use case.
func NewShowStatus(state domain.StateRepository, clock domain.Clock) *ShowStatus {
	return &ShowStatus{
		state: state,
		clock: clock,
	}
}

// Execute loads the stored state and ticks it to now.
func (uc *ShowStatus) Execute(ctx context.Context, _ ShowStatusInput) (*ShowStatusOutput, error) {
	rec, err := uc.state.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	s := rec.State(uc.clock.Now())
	return &ShowStatusOutput{
		State:     s,
		Summary:   s.Summarize(),
		UndoDepth: len(rec.Undo),
	}, nil
}
