// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// TransitionFunc is a tracker command such as domain.TrackerState.StartWork.
type TransitionFunc func(domain.TrackerState) (domain.TrackerState, error)

// TransitionOutput is the result shared by the state-changing use cases.
type TransitionOutput struct {
	Before  domain.TrackerState // State before the command, ticked to now
	State   domain.TrackerState // State after the command
	Summary domain.Summary      // Summary of State
}

// transitioner runs tracker commands against the stored record.
// Fields are ordered to minimize memory padding.
type transitioner struct {
	state     domain.StateRepository
	clock     domain.Clock
	logger    domain.Logger
	undoDepth int
}

func newTransitioner(state domain.StateRepository, clock domain.Clock, logger domain.Logger, undoDepth int) transitioner {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return transitioner{
		state:     state,
		clock:     clock,
		logger:    logger,
		undoDepth: undoDepth,
	}
}

// run ticks the stored state to now, applies fn and saves the result with a
// checkpoint of the previous state. A clock behind the newest recorded
// timestamp is held at that timestamp. Nothing is saved when fn fails or the
// resulting record does not validate.
func (t transitioner) run(ctx context.Context, name string, fn TransitionFunc) (*TransitionOutput, error) {
	now := t.clock.Now()
	var out TransitionOutput

	err := t.state.Update(ctx, func(rec *domain.Record) error {
		before, raised := rec.State(now).TickForward(now)
		if raised {
			t.logger.Warn("tracker", fmt.Sprintf("%s: clock %s is behind recorded time %s",
				name, now.Format(time.RFC3339), before.Now.Format(time.RFC3339)))
		}
		next, err := fn(before)
		if err != nil {
			return err
		}
		rec.Undo = rec.Undo.Push(domain.CheckpointOf(before), t.undoDepth)
		rec.Apply(next)
		if err := rec.Validate(); err != nil {
			return err
		}
		out = TransitionOutput{Before: before, State: next, Summary: next.Summarize()}
		return nil
	})
	if err != nil {
		t.logger.Warn("tracker", fmt.Sprintf("%s failed: %v", name, err))
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	t.logger.Info("tracker", fmt.Sprintf("%s: %s -> %s", name, out.Before.Mode.Kind, out.State.Mode.Kind))
	return &out, nil
}
