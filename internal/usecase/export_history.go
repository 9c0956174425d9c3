package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/rational-breaks/internal/domain"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// ExportFormats lists the formats accepted by ExportHistory.
func ExportFormats() []string {
	return []string{FormatJSON, FormatYAML, FormatTOML}
}

// HistoryDocument is the exported form of the history.
type HistoryDocument struct {
	ExportedAt time.Time         `json:"exportedAt" yaml:"exportedAt" toml:"exported_at"`
	Sessions   []ExportedSession `json:"sessions" yaml:"sessions" toml:"sessions"`
}

// ExportedSession is a session with its derived durations in whole minutes.
// Fields are ordered to minimize memory padding.
type ExportedSession struct {
	WorkStart     time.Time `json:"workStartTime" yaml:"workStartTime" toml:"work_start"`
	BreakStart    time.Time `json:"breakStartTime" yaml:"breakStartTime" toml:"break_start"`
	BreakEnd      time.Time `json:"breakEndTime" yaml:"breakEndTime" toml:"break_end"`
	WorkMinutes   int64     `json:"workMinutes" yaml:"workMinutes" toml:"work_minutes"`
	BreakMinutes  int64     `json:"breakMinutes" yaml:"breakMinutes" toml:"break_minutes"`
	BudgetMinutes int64     `json:"budgetMinutes" yaml:"budgetMinutes" toml:"budget_minutes"`
	Overran       bool      `json:"overran" yaml:"overran" toml:"overran"`
}

// ExportHistoryInput contains the parameters for exporting history.
type ExportHistoryInput struct {
	Format string // json, yaml or toml
	Last   int    // Export only the most recent N sessions; 0 or less exports all
}

// ExportHistoryOutput contains the rendered document.
type ExportHistoryOutput struct {
	Data     []byte
	Sessions int
}

// ExportHistory is the use case for rendering the history in a data format.
type ExportHistory struct {
	state domain.StateRepository
	clock domain.Clock
}

// NewExportHistory creates a new ExportHistory use case.
func NewExportHistory(state domain.StateRepository, clock domain.Clock) *ExportHistory {
	return &ExportHistory{
		state: state,
		clock: clock,
	}
}

// Execute renders the history.
func (uc *ExportHistory) Execute(ctx context.Context, in ExportHistoryInput) (*ExportHistoryOutput, error) {
	marshal, err := marshalerFor(in.Format)
	if err != nil {
		return nil, err
	}

	list, err := NewListHistory(uc.state).Execute(ctx, ListHistoryInput{Last: in.Last})
	if err != nil {
		return nil, err
	}

	doc := HistoryDocument{
		ExportedAt: uc.clock.Now().Truncate(time.Second),
		Sessions:   make([]ExportedSession, 0, len(list.Sessions)),
	}
	for _, s := range list.Sessions {
		doc.Sessions = append(doc.Sessions, exportSession(s))
	}

	data, err := marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", in.Format, err)
	}
	return &ExportHistoryOutput{Data: data, Sessions: len(doc.Sessions)}, nil
}

func exportSession(s domain.Session) ExportedSession {
	return ExportedSession{
		WorkStart:     s.WorkStart,
		BreakStart:    s.BreakStart,
		BreakEnd:      s.BreakEnd,
		WorkMinutes:   wholeMinutes(s.WorkDuration()),
		BreakMinutes:  wholeMinutes(s.BreakDuration()),
		BudgetMinutes: wholeMinutes(s.Budget()),
		Overran:       s.Overran(),
	}
}

func wholeMinutes(d time.Duration) int64 {
	return int64(d.Round(time.Minute) / time.Minute)
}

func marshalerFor(format string) (func(any) ([]byte, error), error) {
	switch format {
	case FormatJSON:
		return func(v any) ([]byte, error) {
			var buf bytes.Buffer
			enc := json.NewEncoder(&buf)
			enc.SetIndent("", "  ")
			if err := enc.Encode(v); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		}, nil
	case FormatYAML:
		return yaml.Marshal, nil
	case FormatTOML:
		return toml.Marshal, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}
