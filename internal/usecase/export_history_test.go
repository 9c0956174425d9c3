package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/rational-breaks/internal/domain"
	"github.com/runoshun/rational-breaks/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExportHistory_Formats(t *testing.T) {
	decoders := map[string]func([]byte, any) error{
		usecase.FormatJSON: json.Unmarshal,
		usecase.FormatYAML: yaml.Unmarshal,
		usecase.FormatTOML: toml.Unmarshal,
	}

	for _, format := range usecase.ExportFormats() {
		t.Run(format, func(t *testing.T) {
			f := newFixture(at(12, 0))
			f.repo.Record.History = threeSessions()

			out, err := usecase.NewExportHistory(f.repo, f.clock).
				Execute(context.Background(), usecase.ExportHistoryInput{Format: format, Last: 2})
			require.NoError(t, err)
			assert.Equal(t, 2, out.Sessions)

			var doc usecase.HistoryDocument
			require.NoError(t, decoders[format](out.Data, &doc))

			require.Len(t, doc.Sessions, 2)
			assert.True(t, doc.ExportedAt.Equal(at(12, 0)))
			first := doc.Sessions[0]
			assert.True(t, first.WorkStart.Equal(at(9, 0)))
			assert.Equal(t, int64(30), first.WorkMinutes)
			assert.Equal(t, int64(15), first.BreakMinutes)
			assert.Equal(t, int64(10), first.BudgetMinutes)
			assert.True(t, first.Overran)
			assert.False(t, doc.Sessions[1].Overran)
			assert.Equal(t, int64(30), doc.Sessions[1].BudgetMinutes)
		})
	}
}

func TestExportHistory_EmptyHistory(t *testing.T) {
	f := newFixture(at(12, 0))

	out, err := usecase.NewExportHistory(f.repo, f.clock).
		Execute(context.Background(), usecase.ExportHistoryInput{Format: usecase.FormatJSON})

	require.NoError(t, err)
	assert.Contains(t, string(out.Data), `"sessions": []`)
}

func TestExportHistory_UnknownFormat(t *testing.T) {
	f := newFixture(at(12, 0))

	_, err := usecase.NewExportHistory(f.repo, f.clock).
		Execute(context.Background(), usecase.ExportHistoryInput{Format: "csv"})

	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}
