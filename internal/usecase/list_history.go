package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// ListHistoryInput contains the parameters for listing sessions.
type ListHistoryInput struct {
	Last int // Return only the most recent N sessions; 0 or less returns all
}

// ListHistoryOutput contains the listed sessions, oldest first.
type ListHistoryOutput struct {
	Sessions []domain.Session
	Total    int // Number of stored sessions
}

// ListHistory is the use case for listing recorded sessions.
type ListHistory struct {
	state domain.StateRepository
}

// NewListHistory creates a new ListHistory use case.
func NewListHistory(state domain.StateRepository) *ListHistory {
	return &ListHistory{state: state}
}

// Execute returns the recorded sessions.
func (uc *ListHistory) Execute(ctx context.Context, in ListHistoryInput) (*ListHistoryOutput, error) {
	rec, err := uc.state.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	sessions := rec.History
	if in.Last > 0 && len(sessions) > in.Last {
		sessions = sessions[len(sessions)-in.Last:]
	}

	return &ListHistoryOutput{
		Sessions: sessions,
		Total:    len(rec.History),
	}, nil
}
