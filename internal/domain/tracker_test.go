package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at returns 2024-01-15 hh:mm:ss UTC.
func at(hh, mm, ss int) time.Time {
	return time.Date(2024, 1, 15, hh, mm, ss, 0, time.UTC)
}

func TestNewTrackerState(t *testing.T) {
	s := NewTrackerState(at(9, 0, 0))

	assert.Equal(t, ModePaused, s.Mode.Kind)
	assert.Empty(t, s.History)
	assert.Equal(t, at(9, 0, 0), s.Now)
}

func TestTick_ReplacesNowOnly(t *testing.T) {
	s := NewTrackerState(at(9, 0, 0))
	s, err := s.StartWork()
	require.NoError(t, err)

	ticked := s.Tick(at(9, 5, 0))

	assert.Equal(t, at(9, 5, 0), ticked.Now)
	assert.Equal(t, s.Mode, ticked.Mode)
	assert.Equal(t, s.History, ticked.History)
}

func TestTick_Idempotent(t *testing.T) {
	states := []TrackerState{
		NewTrackerState(at(9, 0, 0)),
		{Now: at(9, 0, 0), Mode: Working(at(8, 0, 0))},
		{Now: at(9, 0, 0), Mode: OnBreak(at(8, 0, 0), at(8, 30, 0)), History: []Session{
			{WorkStart: at(7, 0, 0), BreakStart: at(7, 30, 0), BreakEnd: at(7, 40, 0)},
		}},
	}

	for _, s := range states {
		t.Run(string(s.Mode.Kind), func(t *testing.T) {
			once := s.Tick(at(10, 0, 0))
			twice := once.Tick(at(10, 0, 0))
			assert.Equal(t, once, twice)
		})
	}
}

func TestStartWork_FromPaused(t *testing.T) {
	s := NewTrackerState(at(9, 0, 0))

	next, err := s.StartWork()

	require.NoError(t, err)
	assert.Equal(t, Working(at(9, 0, 0)), next.Mode)
	assert.Len(t, next.History, len(s.History))
}

func TestStartWork_FromBreakAppendsSession(t *testing.T) {
	s := TrackerState{
		Now:  at(9, 40, 0),
		Mode: OnBreak(at(9, 0, 0), at(9, 30, 0)),
		History: []Session{
			{WorkStart: at(8, 0, 0), BreakStart: at(8, 30, 0), BreakEnd: at(8, 40, 0)},
		},
	}

	next, err := s.StartWork()

	require.NoError(t, err)
	require.Len(t, next.History, len(s.History)+1)
	assert.Equal(t, Session{WorkStart: at(9, 0, 0), BreakStart: at(9, 30, 0), BreakEnd: at(9, 40, 0)}, next.History[1])
	assert.Equal(t, Working(at(9, 40, 0)), next.Mode)
}

func TestStartWork_WhileWorking(t *testing.T) {
	s := TrackerState{Now: at(9, 10, 0), Mode: Working(at(9, 0, 0))}

	next, err := s.StartWork()

	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, err, ErrStartWorkWhileWorking)
	assert.Equal(t, s, next)
}

func TestStartBreak(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		want    Mode
		wantErr bool
	}{
		{
			name: "working starts break",
			mode: Working(at(9, 0, 0)),
			want: OnBreak(at(9, 0, 0), at(9, 30, 0)),
		},
		{
			name:    "paused is rejected",
			mode:    Paused(),
			wantErr: true,
		},
		{
			name:    "on break is rejected",
			mode:    OnBreak(at(9, 0, 0), at(9, 20, 0)),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := TrackerState{Now: at(9, 30, 0), Mode: tt.mode}

			next, err := s.StartBreak()

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTransition)
				assert.ErrorIs(t, err, ErrStartBreakWhileNotWorking)
				assert.Equal(t, tt.mode, next.Mode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, next.Mode)
		})
	}
}

func TestRoundTripSessionAccounting(t *testing.T) {
	s := NewTrackerState(at(9, 0, 0))

	s, err := s.Tick(at(9, 0, 0)).StartWork()
	require.NoError(t, err)
	s, err = s.Tick(at(9, 30, 0)).StartBreak()
	require.NoError(t, err)
	s, err = s.Tick(at(9, 40, 0)).StartWork()
	require.NoError(t, err)

	assert.Equal(t, []Session{
		{WorkStart: at(9, 0, 0), BreakStart: at(9, 30, 0), BreakEnd: at(9, 40, 0)},
	}, s.History)
}

func TestStartWork_DoesNotMutatePriorSnapshot(t *testing.T) {
	history := make([]Session, 1, 4) // spare capacity would be shared by a naive append
	history[0] = Session{WorkStart: at(7, 0, 0), BreakStart: at(7, 30, 0), BreakEnd: at(7, 40, 0)}
	base := TrackerState{Now: at(9, 40, 0), Mode: OnBreak(at(9, 0, 0), at(9, 30, 0)), History: history}

	first, err := base.StartWork()
	require.NoError(t, err)
	other := base.Tick(at(9, 50, 0))
	second, err := other.StartWork()
	require.NoError(t, err)

	assert.Len(t, base.History, 1)
	assert.Equal(t, at(9, 40, 0), first.History[1].BreakEnd)
	assert.Equal(t, at(9, 50, 0), second.History[1].BreakEnd)
}

func TestPause(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		wantErr error
	}{
		{name: "from working", mode: Working(at(9, 0, 0))},
		{name: "from break", mode: OnBreak(at(9, 0, 0), at(9, 30, 0))},
		{name: "from paused", mode: Paused(), wantErr: ErrAlreadyPaused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := TrackerState{Now: at(9, 45, 0), Mode: tt.mode}

			next, err := s.Pause()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errors.Is(err, ErrInvalidTransition))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Paused(), next.Mode)
			assert.Empty(t, next.History, "pause never records a session")
		})
	}
}

func TestClearHistory(t *testing.T) {
	s := TrackerState{
		Now:     at(10, 0, 0),
		Mode:    Working(at(9, 50, 0)),
		History: []Session{{WorkStart: at(9, 0, 0), BreakStart: at(9, 30, 0), BreakEnd: at(9, 50, 0)}},
	}

	cleared := s.ClearHistory()

	assert.Empty(t, cleared.History)
	assert.Equal(t, s.Mode, cleared.Mode)
	assert.Len(t, s.History, 1)
}

func TestMaxBreakDuration(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  time.Duration
	}{
		{"thirty minutes of work", at(9, 0, 0), at(9, 30, 0), 10 * time.Minute},
		{"ninety minutes of work", at(9, 0, 0), at(10, 30, 0), 30 * time.Minute},
		{"no work", at(9, 0, 0), at(9, 0, 0), 0},
		{"end before start clamps to zero", at(9, 30, 0), at(9, 0, 0), 0},
		{"uneven split truncates", at(9, 0, 0), at(9, 0, 0).Add(10 * time.Nanosecond), 3 * time.Nanosecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxBreakDuration(tt.start, tt.end))
		})
	}
}

func TestIsOverrun_Boundary(t *testing.T) {
	mode := OnBreak(at(9, 0, 0), at(9, 30, 0))
	budget := MaxBreakDuration(mode.WorkStart, mode.BreakStart)

	assert.False(t, IsOverrun(mode, mode.BreakStart.Add(budget)))
	assert.True(t, IsOverrun(mode, mode.BreakStart.Add(budget+time.Nanosecond)))
}

func TestIsOverrun_OnlyOnBreak(t *testing.T) {
	assert.False(t, IsOverrun(Paused(), at(12, 0, 0)))
	assert.False(t, IsOverrun(Working(at(9, 0, 0)), at(12, 0, 0)))
}

func TestScenario_ThirtyMinutesOfWork(t *testing.T) {
	s := NewTrackerState(at(9, 0, 0))
	s, err := s.StartWork()
	require.NoError(t, err)
	s, err = s.Tick(at(9, 30, 0)).StartBreak()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, MaxBreakDuration(s.Mode.WorkStart, s.Mode.BreakStart))
	assert.False(t, IsOverrun(s.Mode, at(9, 38, 0)))
	assert.True(t, IsOverrun(s.Mode, at(9, 41, 0)))
}

func TestLatestRecorded(t *testing.T) {
	tests := []struct {
		name  string
		state TrackerState
		want  time.Time
	}{
		{"paused without history", NewTrackerState(at(9, 0, 0)), time.Time{}},
		{"working", TrackerState{Mode: Working(at(9, 0, 0))}, at(9, 0, 0)},
		{"on break", TrackerState{Mode: OnBreak(at(9, 0, 0), at(9, 30, 0))}, at(9, 30, 0)},
		{
			name: "paused after a session",
			state: TrackerState{Mode: Paused(), History: []Session{
				{WorkStart: at(8, 0, 0), BreakStart: at(8, 30, 0), BreakEnd: at(8, 40, 0)},
			}},
			want: at(8, 40, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.LatestRecorded())
		})
	}
}

func TestTickForward_ClockBehindRecordedTime(t *testing.T) {
	s := TrackerState{Now: at(9, 0, 0), Mode: Working(at(9, 0, 0))}

	ticked, raised := s.TickForward(at(8, 59, 0))
	require.True(t, raised)
	assert.Equal(t, at(9, 0, 0), ticked.Now)

	next, err := ticked.StartBreak()
	require.NoError(t, err)
	require.NoError(t, next.Mode.Validate())
	assert.Equal(t, OnBreak(at(9, 0, 0), at(9, 0, 0)), next.Mode)

	ticked, raised = s.TickForward(at(9, 10, 0))
	assert.False(t, raised)
	assert.Equal(t, at(9, 10, 0), ticked.Now)
}
