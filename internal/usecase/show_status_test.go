package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/runoshun/rational-breaks/internal/domain"
	"github.com/runoshun/rational-breaks/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowStatus_Execute(t *testing.T) {
	f := newFixture(at(9, 0))
	f.startWork(t)
	f.clock.NowTime = at(9, 30)
	f.startBreak(t)
	f.clock.NowTime = at(9, 41)

	out, err := usecase.NewShowStatus(f.repo, f.clock).Execute(context.Background(), usecase.ShowStatusInput{})

	require.NoError(t, err)
	assert.Equal(t, at(9, 41), out.State.Now)
	assert.Equal(t, domain.ModeOnBreak, out.Summary.Kind)
	assert.Equal(t, 10*time.Minute, out.Summary.BreakBudget)
	assert.True(t, out.Summary.Overrun)
	assert.Equal(t, 2, out.UndoDepth)
}

func TestShowStatus_LoadError(t *testing.T) {
	f := newFixture(at(9, 0))
	f.repo.LoadErr = errors.New("unreadable")

	_, err := usecase.NewShowStatus(f.repo, f.clock).Execute(context.Background(), usecase.ShowStatusInput{})

	assert.ErrorIs(t, err, f.repo.LoadErr)
}
