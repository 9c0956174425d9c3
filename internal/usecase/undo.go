package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// UndoInput contains the parameters for undoing a command.
type UndoInput struct{}

// UndoOutput contains the result of an undo.
type UndoOutput struct {
	State     domain.TrackerState // Restored state
	Summary   domain.Summary      // Summary of the restored state
	Remaining int                 // Commands that can still be undone
}

// Undo is the use case for reverting the last state-changing command.
type Undo struct {
	state  domain.StateRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewUndo creates a new Undo use case.
func NewUndo(state domain.StateRepository, clock domain.Clock, logger domain.Logger) *Undo {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Undo{
		state:  state,
		clock:  clock,
		logger: logger,
	}
}

// Execute restores mode and history from the most recent checkpoint.
func (uc *Undo) Execute(ctx context.Context, _ UndoInput) (*UndoOutput, error) {
	now := uc.clock.Now()
	var out UndoOutput

	err := uc.state.Update(ctx, func(rec *domain.Record) error {
		cp, rest, ok := rec.Undo.Pop()
		if !ok {
			return domain.ErrNothingToUndo
		}
		restored := cp.Restore(now)
		rec.Apply(restored)
		rec.Undo = rest
		if err := rec.Validate(); err != nil {
			return err
		}
		out = UndoOutput{
			State:     restored,
			Summary:   restored.Summarize(),
			Remaining: len(rest),
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("tracker", fmt.Sprintf("undo failed: %v", err))
		return nil, fmt.Errorf("undo: %w", err)
	}

	uc.logger.Info("tracker", fmt.Sprintf("undo: restored %s", out.State.Mode.Kind))
	return &out, nil
}
