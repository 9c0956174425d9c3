package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// MigrateStoreInput contains parameters for MigrateStore.
type MigrateStoreInput struct {
	// Force overwrites a destination that already holds a different record.
	Force bool
}

// MigrateStoreOutput contains migration results.
type MigrateStoreOutput struct {
	Sessions int  // Sessions in the migrated record
	Skipped  bool // Destination already held the same state
}

// MigrateStore copies the tracker record from one store to another.
type MigrateStore struct {
	source domain.StateRepository
	dest   domain.StateRepository
	logger domain.Logger
}

// NewMigrateStore creates a new MigrateStore use case.
func NewMigrateStore(source, dest domain.StateRepository, logger domain.Logger) *MigrateStore {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &MigrateStore{source: source, dest: dest, logger: logger}
}

// Execute copies the source record, including its undo stack, into the
// destination. A destination holding the same state is left alone; one
// holding a different non-empty record is only replaced with Force.
func (uc *MigrateStore) Execute(ctx context.Context, in MigrateStoreInput) (*MigrateStoreOutput, error) {
	if uc.source == nil || uc.dest == nil {
		return nil, errors.New("source or destination store is nil")
	}

	rec, err := uc.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}
	existing, err := uc.dest.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load destination: %w", err)
	}

	out := &MigrateStoreOutput{Sessions: len(rec.History)}
	if existing.SameState(rec) {
		out.Skipped = true
		return out, nil
	}
	if !existing.IsEmpty() && !in.Force {
		return nil, domain.ErrMigrationConflict
	}

	if err := uc.dest.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save destination: %w", err)
	}
	uc.logger.Info("store", fmt.Sprintf("migrated %d sessions", out.Sessions))
	return out, nil
}
