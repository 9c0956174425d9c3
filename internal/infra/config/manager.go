// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/runoshun/rational-breaks/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// configFile is one place a config file may live.
// An empty path means the scope is unavailable.
type configFile struct {
	name    string // "local" or "global", used in errors
	path    string
	makeDir bool // Create the parent directory on init
}

// Manager reports on and creates the local and global config files.
type Manager struct {
	local  configFile
	global configFile
}

// NewManager creates a Manager for .breaks.toml in localDir and the
// global config under XDG_CONFIG_HOME.
func NewManager(localDir string) *Manager {
	return NewManagerWithGlobalDir(localDir, defaultGlobalConfigDir())
}

// NewManagerWithGlobalDir creates a Manager with a custom global config directory.
// Either directory may be empty to disable that scope.
func NewManagerWithGlobalDir(localDir, globalConfDir string) *Manager {
	m := &Manager{
		local:  configFile{name: "local"},
		global: configFile{name: "global", makeDir: true},
	}
	if localDir != "" {
		m.local.path = domain.LocalConfigPath(localDir)
	}
	if globalConfDir != "" {
		m.global.path = filepath.Join(globalConfDir, domain.ConfigFileName)
	}
	return m
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.global.info()
}

// GetLocalConfigInfo returns information about the local config file.
func (m *Manager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.local.info()
}

// InitLocalConfig writes the rendered template to .breaks.toml.
func (m *Manager) InitLocalConfig(cfg *domain.Config) error {
	return m.local.create(domain.RenderConfigTemplate(cfg))
}

// InitGlobalConfig writes the rendered template to the global config file.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	return m.global.create(domain.RenderConfigTemplate(cfg))
}

func (f configFile) info() domain.ConfigInfo {
	if f.path == "" {
		return domain.ConfigInfo{}
	}
	content, err := os.ReadFile(f.path)
	if err != nil {
		return domain.ConfigInfo{Path: f.path}
	}
	return domain.ConfigInfo{Path: f.path, Content: string(content), Exists: true}
}

// create writes content to a new file. An existing file is never touched.
func (f configFile) create(content string) error {
	if f.path == "" {
		return fmt.Errorf("%s config directory not available", f.name)
	}
	if f.makeDir {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
			return fmt.Errorf("create %s config directory: %w", f.name, err)
		}
	}

	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", domain.ErrConfigExists, f.path)
	}
	if err != nil {
		return fmt.Errorf("create %s config: %w", f.name, err)
	}

	_, err = file.WriteString(content)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(f.path)
		return fmt.Errorf("write %s config: %w", f.name, err)
	}
	return nil
}
