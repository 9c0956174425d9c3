package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Store backends.
const (
	StoreJSON = "json"
	StoreGit  = "git"
)

// Default configuration values.
const (
	DefaultTickInterval = time.Second
	DefaultUndoDepth    = 20
	DefaultHistoryLimit = 10
	DefaultLogLevel     = "info"
	DefaultNamespace    = "breaks"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Store    StoreConfig   `toml:"store"`
	Timer    TimerConfig   `toml:"timer"`
	Log      LogConfig     `toml:"log"`
	Undo     UndoConfig    `toml:"undo"`
	History  HistoryConfig `toml:"history"`
}

// StoreConfig holds settings for state storage from [store] section.
type StoreConfig struct {
	Type      string `toml:"type,omitempty"`      // Storage backend: "json" (default) or "git"
	Path      string `toml:"path,omitempty"`      // JSON file path (default: data dir)
	Repo      string `toml:"repo,omitempty"`      // Git repository path for the git backend
	Namespace string `toml:"namespace,omitempty"` // Git ref namespace (default: "breaks")
}

// TimerConfig holds settings from [timer] section.
type TimerConfig struct {
	TickInterval string `toml:"tick_interval,omitempty"` // Display refresh interval, e.g. "1s"
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// UndoConfig holds settings from [undo] section.
type UndoConfig struct {
	Depth int `toml:"depth,omitempty"` // Number of commands that can be undone; 0 uses the default
}

// HistoryConfig holds settings from [history] section.
type HistoryConfig struct {
	Limit int `toml:"limit,omitempty"` // Sessions shown by default
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Type:      StoreJSON,
			Namespace: DefaultNamespace,
		},
		Timer: TimerConfig{
			TickInterval: DefaultTickInterval.String(),
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Undo: UndoConfig{
			Depth: DefaultUndoDepth,
		},
		History: HistoryConfig{
			Limit: DefaultHistoryLimit,
		},
	}
}

// TickDuration returns the parsed tick interval, falling back to the default
// when it is unset or invalid.
func (c *Config) TickDuration() time.Duration {
	if c == nil || c.Timer.TickInterval == "" {
		return DefaultTickInterval
	}
	d, err := time.ParseDuration(c.Timer.TickInterval)
	if err != nil || d <= 0 {
		return DefaultTickInterval
	}
	return d
}

// UndoDepth returns the configured undo depth.
func (c *Config) UndoDepth() int {
	if c == nil || c.Undo.Depth == 0 {
		return DefaultUndoDepth
	}
	return c.Undo.Depth
}

// templateData holds data for rendering the config template.
type templateData struct {
	StoreType    string
	Namespace    string
	TickInterval string
	LogLevel     string
	UndoDepth    int
	HistoryLimit int
}

// RenderConfigTemplate renders the commented default config file for cfg.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		StoreType:    cfg.Store.Type,
		Namespace:    cfg.Store.Namespace,
		TickInterval: cfg.Timer.TickInterval,
		LogLevel:     cfg.Log.Level,
		UndoDepth:    cfg.Undo.Depth,
		HistoryLimit: cfg.History.Limit,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
