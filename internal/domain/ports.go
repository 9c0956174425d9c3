package domain

import (
	"context"
	"time"
)

// StateRepository persists the tracker record.
type StateRepository interface {
	// Load returns the stored record, or a fresh record if nothing is stored yet.
	Load(ctx context.Context) (*Record, error)

	// Save replaces the stored record.
	Save(ctx context.Context, record *Record) error

	// Update loads the record, applies fn and saves the result as one
	// exclusive step. Nothing is saved when fn returns an error.
	Update(ctx context.Context, fn func(*Record) error) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetLocalConfigInfo returns information about the local config file.
	GetLocalConfigInfo() ConfigInfo

	// InitGlobalConfig creates the global config file with the default template.
	InitGlobalConfig(cfg *Config) error

	// InitLocalConfig creates the local config file with the default template.
	InitLocalConfig(cfg *Config) error
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger writes application log entries.
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all log entries.
type NopLogger struct{}

// Info implements Logger.
func (NopLogger) Info(_, _ string) {}

// Debug implements Logger.
func (NopLogger) Debug(_, _ string) {}

// Warn implements Logger.
func (NopLogger) Warn(_, _ string) {}

// Error implements Logger.
func (NopLogger) Error(_, _ string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
