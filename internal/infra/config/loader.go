// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/rational-breaks/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // Directory holding .breaks.toml (usually the working directory)
	globalConfDir string // Path to global config directory (e.g., ~/.config/rational-breaks)
}

// NewLoader creates a new Loader.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (local + global).
// Local config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.LoadLocal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- local (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadLocal returns only the local configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	if l.localDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.LocalConfigPath(l.localDir))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	section := func(name string, value any, fn func(k string, v any) bool) {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[%s] must be a table", name))
			return
		}
		for k, v := range m {
			if !fn(k, v) {
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", name, k))
			}
		}
	}

	for name, value := range raw {
		switch name {
		case "timer":
			section(name, value, func(k string, v any) bool {
				switch k {
				case "tick_interval":
					if s, ok := v.(string); ok {
						if d, err := time.ParseDuration(s); err != nil || d <= 0 {
							warnings = append(warnings, fmt.Sprintf("invalid [timer].tick_interval %q, using %s", s, domain.DefaultTickInterval))
						} else {
							res.Timer.TickInterval = s
						}
					}
					return true
				}
				return false
			})
		case "store":
			section(name, value, func(k string, v any) bool {
				s, _ := v.(string)
				switch k {
				case "type":
					if s != domain.StoreJSON && s != domain.StoreGit {
						warnings = append(warnings, fmt.Sprintf("unknown [store].type %q, using %q", s, domain.StoreJSON))
					} else {
						res.Store.Type = s
					}
				case "path":
					res.Store.Path = s
				case "repo":
					res.Store.Repo = s
				case "namespace":
					res.Store.Namespace = s
				default:
					return false
				}
				return true
			})
		case "undo":
			section(name, value, func(k string, v any) bool {
				switch k {
				case "depth":
					if n, ok := v.(int64); ok {
						res.Undo.Depth = int(n)
					}
					return true
				}
				return false
			})
		case "history":
			section(name, value, func(k string, v any) bool {
				switch k {
				case "limit":
					if n, ok := v.(int64); ok && n > 0 {
						res.History.Limit = int(n)
					}
					return true
				}
				return false
			})
		case "log":
			section(name, value, func(k string, v any) bool {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
					return true
				}
				return false
			})
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", name))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Store:   base.Store,
		Timer:   base.Timer,
		Log:     base.Log,
		Undo:    base.Undo,
		History: base.History,
	}

	result.Warnings = append(result.Warnings, base.Warnings...)
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Store.Type != "" {
		result.Store.Type = override.Store.Type
	}
	if override.Store.Path != "" {
		result.Store.Path = override.Store.Path
	}
	if override.Store.Repo != "" {
		result.Store.Repo = override.Store.Repo
	}
	if override.Store.Namespace != "" {
		result.Store.Namespace = override.Store.Namespace
	}
	if override.Timer.TickInterval != "" {
		result.Timer.TickInterval = override.Timer.TickInterval
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Undo.Depth != 0 {
		result.Undo.Depth = override.Undo.Depth
	}
	if override.History.Limit != 0 {
		result.History.Limit = override.History.Limit
	}

	return result
}
