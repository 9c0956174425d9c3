package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		state TrackerState
		want  Summary
	}{
		{
			name:  "paused",
			state: NewTrackerState(at(9, 0, 0)),
			want:  Summary{Now: at(9, 0, 0), Kind: ModePaused},
		},
		{
			name:  "working",
			state: TrackerState{Now: at(9, 30, 0), Mode: Working(at(9, 0, 0))},
			want: Summary{
				Now:         at(9, 30, 0),
				Kind:        ModeWorking,
				WorkStart:   at(9, 0, 0),
				WorkElapsed: 30 * time.Minute,
				BreakBudget: 10 * time.Minute,
			},
		},
		{
			name:  "break within budget",
			state: TrackerState{Now: at(9, 38, 0), Mode: OnBreak(at(9, 0, 0), at(9, 30, 0))},
			want: Summary{
				Now:            at(9, 38, 0),
				Kind:           ModeOnBreak,
				WorkStart:      at(9, 0, 0),
				BreakStart:     at(9, 30, 0),
				WorkElapsed:    30 * time.Minute,
				BreakElapsed:   8 * time.Minute,
				BreakBudget:    10 * time.Minute,
				BreakRemaining: 2 * time.Minute,
			},
		},
		{
			name: "break overrun",
			state: TrackerState{
				Now:     at(9, 41, 0),
				Mode:    OnBreak(at(9, 0, 0), at(9, 30, 0)),
				History: []Session{{WorkStart: at(8, 0, 0), BreakStart: at(8, 30, 0), BreakEnd: at(8, 40, 0)}},
			},
			want: Summary{
				Now:            at(9, 41, 0),
				Kind:           ModeOnBreak,
				WorkStart:      at(9, 0, 0),
				BreakStart:     at(9, 30, 0),
				WorkElapsed:    30 * time.Minute,
				BreakElapsed:   11 * time.Minute,
				BreakBudget:    10 * time.Minute,
				BreakRemaining: -time.Minute,
				Sessions:       1,
				Overrun:        true,
			},
		},
		{
			name:  "clock behind work start",
			state: TrackerState{Now: at(8, 59, 0), Mode: Working(at(9, 0, 0))},
			want: Summary{
				Now:       at(8, 59, 0),
				Kind:      ModeWorking,
				WorkStart: at(9, 0, 0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Summarize())
		})
	}
}

func TestSummary_Text(t *testing.T) {
	tests := []struct {
		name      string
		state     TrackerState
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "paused",
			state:     NewTrackerState(at(9, 0, 0)),
			wantTitle: "Paused",
			wantDesc:  `Press "start work" to begin`,
		},
		{
			name:      "working",
			state:     TrackerState{Now: at(9, 30, 0), Mode: Working(at(9, 0, 0))},
			wantTitle: "Working",
			wantDesc:  "Started 9:00 AM, working for 30 mins",
		},
		{
			name:      "on break",
			state:     TrackerState{Now: at(9, 38, 0), Mode: OnBreak(at(9, 0, 0), at(9, 30, 0))},
			wantTitle: "On a break, max 10 mins",
			wantDesc:  "Worked for 30 mins (9:00 AM to 9:30 AM), on a break for 8 mins",
		},
		{
			name:      "afternoon clock",
			state:     TrackerState{Now: at(14, 5, 0), Mode: Working(at(13, 45, 0))},
			wantTitle: "Working",
			wantDesc:  "Started 1:45 PM, working for 20 mins",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := tt.state.Summarize()
			assert.Equal(t, tt.wantTitle, sum.Title())
			assert.Equal(t, tt.wantDesc, sum.Description())
		})
	}
}
