// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Ensure MockClock implements domain.Clock interface.
var _ domain.Clock = (*MockClock)(nil)

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockStateRepository is an in-memory domain.StateRepository.
// Fields are ordered to minimize memory padding.
type MockStateRepository struct {
	Record      *domain.Record
	LoadErr     error
	SaveErr     error
	mu          sync.Mutex
	SaveCount   int
	UpdateCount int
}

// Ensure MockStateRepository implements domain.StateRepository interface.
var _ domain.StateRepository = (*MockStateRepository)(nil)

// NewMockStateRepository creates a repository holding a fresh record.
func NewMockStateRepository() *MockStateRepository {
	return &MockStateRepository{Record: domain.NewRecord()}
}

// Load returns a copy of the stored record.
func (m *MockStateRepository) Load(_ context.Context) (*domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneRecord(m.Record), nil
}

// Save stores a copy of rec.
func (m *MockStateRepository) Save(_ context.Context, rec *domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Record = cloneRecord(rec)
	m.SaveCount++
	return nil
}

// Update applies fn to a copy of the stored record and keeps the result on success.
func (m *MockStateRepository) Update(_ context.Context, fn func(*domain.Record) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCount++
	if m.LoadErr != nil {
		return m.LoadErr
	}
	rec := cloneRecord(m.Record)
	if err := fn(rec); err != nil {
		return err
	}
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Record = rec
	m.SaveCount++
	return nil
}

func cloneRecord(rec *domain.Record) *domain.Record {
	if rec == nil {
		return domain.NewRecord()
	}
	c := *rec
	c.History = slices.Clone(rec.History)
	c.Undo = slices.Clone(rec.Undo)
	return &c
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	LoadErr      error
	GlobalErr    error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	if m.GlobalConfig != nil {
		return m.GlobalConfig, nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitLocalErr     error
	InitGlobalErr    error
	LocalConfigInfo  domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		LocalConfigInfo: domain.ConfigInfo{
			Path:   "/work/.breaks.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/rational-breaks/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// GetLocalConfigInfo returns the configured local config info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfigInfo
}

// InitGlobalConfig records the call and returns the configured error.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// InitLocalConfig records the call and returns the configured error.
func (m *MockConfigManager) InitLocalConfig(_ *domain.Config) error {
	m.InitLocalCalled = true
	return m.InitLocalErr
}

// LogEntry is a message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// String formats the entry like the file logger does.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Level, e.Category, e.Msg)
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Info records an INFO entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Debug records a DEBUG entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Warn records a WARN entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an ERROR entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

// Messages returns the recorded entries as strings.
func (m *MockLogger) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		out[i] = e.String()
	}
	return out
}
