package domain

import (
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, StoreJSON, cfg.Store.Type)
	assert.Equal(t, DefaultNamespace, cfg.Store.Namespace)
	assert.Equal(t, DefaultTickInterval, cfg.TickDuration())
	assert.Equal(t, DefaultUndoDepth, cfg.UndoDepth())
	assert.Equal(t, DefaultHistoryLimit, cfg.History.Limit)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestConfig_TickDuration(t *testing.T) {
	tests := []struct {
		interval string
		want     time.Duration
	}{
		{"", DefaultTickInterval},
		{"500ms", 500 * time.Millisecond},
		{"2s", 2 * time.Second},
		{"soon", DefaultTickInterval},
		{"-1s", DefaultTickInterval},
	}

	for _, tt := range tests {
		t.Run(tt.interval, func(t *testing.T) {
			cfg := &Config{Timer: TimerConfig{TickInterval: tt.interval}}
			assert.Equal(t, tt.want, cfg.TickDuration())
		})
	}
}

func TestConfig_NilReceiverDefaults(t *testing.T) {
	var cfg *Config

	assert.Equal(t, DefaultTickInterval, cfg.TickDuration())
	assert.Equal(t, DefaultUndoDepth, cfg.UndoDepth())
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	cfg := NewDefaultConfig()

	content := RenderConfigTemplate(cfg)

	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Equal(t, cfg.Store.Type, parsed.Store.Type)
	assert.Equal(t, cfg.Store.Namespace, parsed.Store.Namespace)
	assert.Equal(t, cfg.Timer.TickInterval, parsed.Timer.TickInterval)
	assert.Equal(t, cfg.Undo.Depth, parsed.Undo.Depth)
	assert.Equal(t, cfg.History.Limit, parsed.History.Limit)
	assert.Equal(t, cfg.Log.Level, parsed.Log.Level)
}
