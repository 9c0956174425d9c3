// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/runoshun/rational-breaks/internal/domain"
	"github.com/runoshun/rational-breaks/internal/infra/config"
	"github.com/runoshun/rational-breaks/internal/infra/gitstore"
	"github.com/runoshun/rational-breaks/internal/infra/jsonstore"
	"github.com/runoshun/rational-breaks/internal/infra/logging"
	"github.com/runoshun/rational-breaks/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir   string // Directory the command runs in; holds .breaks.toml
	DataDir   string // Path to ~/.local/share/rational-breaks
	StorePath string // JSON store file or git repository, depending on the store type
	StoreType string // "json" or "git"
}

// newConfig resolves paths for workDir from the environment and app config.
func newConfig(workDir string, appConfig *domain.Config) Config {
	cfg := Config{
		WorkDir:   workDir,
		DataDir:   domain.DataDir(dataHome()),
		StoreType: appConfig.Store.Type,
	}
	cfg.StorePath = cfg.storePath(cfg.StoreType, appConfig)
	return cfg
}

// storePath returns where a store of storeType keeps its state.
func (cfg Config) storePath(storeType string, appConfig *domain.Config) string {
	if storeType == domain.StoreGit {
		if appConfig.Store.Repo != "" {
			return expandHome(appConfig.Store.Repo)
		}
		return cfg.WorkDir
	}
	if appConfig.Store.Path != "" {
		return expandHome(appConfig.Store.Path)
	}
	return domain.JSONStorePath(cfg.DataDir)
}

// openStore opens the state store of storeType at path.
func openStore(storeType, path, namespace string) (domain.StateRepository, error) {
	switch storeType {
	case domain.StoreJSON, "":
		return jsonstore.New(path), nil
	case domain.StoreGit:
		store, err := gitstore.New(path, namespace)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStore, storeType)
	}
}

// dataHome returns $XDG_DATA_HOME or ~/.local/share.
func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(home, ".local", "share")
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	State         domain.StateRepository
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := newConfig(dir, appConfig)

	state, err := openStore(cfg.StoreType, cfg.StorePath, appConfig.Store.Namespace)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		State:         state,
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		Logger:        logger,
		AppConfig:     appConfig,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, state domain.StateRepository, clock domain.Clock, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		State:     state,
		Clock:     clock,
		Logger:    logger,
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.Logger.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// ActiveStoreType returns the configured store type, defaulting to JSON.
func (c *Container) ActiveStoreType() string {
	if c.Config.StoreType == "" {
		return domain.StoreJSON
	}
	return c.Config.StoreType
}

// StoreFor returns the store of storeType. The active store is returned as is;
// any other is opened at the location the config would give it.
func (c *Container) StoreFor(storeType string) (domain.StateRepository, error) {
	if storeType == c.ActiveStoreType() {
		return c.State, nil
	}
	return openStore(storeType, c.Config.storePath(storeType, c.AppConfig), c.AppConfig.Store.Namespace)
}

// UseCase factory methods

// StartWorkUseCase returns a new StartWork use case.
func (c *Container) StartWorkUseCase() *usecase.StartWork {
	return usecase.NewStartWork(c.State, c.Clock, c.Logger, c.AppConfig.UndoDepth())
}

// StartBreakUseCase returns a new StartBreak use case.
func (c *Container) StartBreakUseCase() *usecase.StartBreak {
	return usecase.NewStartBreak(c.State, c.Clock, c.Logger, c.AppConfig.UndoDepth())
}

// PauseUseCase returns a new Pause use case.
func (c *Container) PauseUseCase() *usecase.Pause {
	return usecase.NewPause(c.State, c.Clock, c.Logger, c.AppConfig.UndoDepth())
}

// UndoUseCase returns a new Undo use case.
func (c *Container) UndoUseCase() *usecase.Undo {
	return usecase.NewUndo(c.State, c.Clock, c.Logger)
}

// ClearHistoryUseCase returns a new ClearHistory use case.
func (c *Container) ClearHistoryUseCase() *usecase.ClearHistory {
	return usecase.NewClearHistory(c.State, c.Clock, c.Logger, c.AppConfig.UndoDepth())
}

// ShowStatusUseCase returns a new ShowStatus use case.
func (c *Container) ShowStatusUseCase() *usecase.ShowStatus {
	return usecase.NewShowStatus(c.State, c.Clock)
}

// ListHistoryUseCase returns a new ListHistory use case.
func (c *Container) ListHistoryUseCase() *usecase.ListHistory {
	return usecase.NewListHistory(c.State)
}

// ExportHistoryUseCase returns a new ExportHistory use case.
func (c *Container) ExportHistoryUseCase() *usecase.ExportHistory {
	return usecase.NewExportHistory(c.State, c.Clock)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// MigrateStoreUseCase returns a new MigrateStore use case.
func (c *Container) MigrateStoreUseCase(source, dest domain.StateRepository) *usecase.MigrateStore {
	return usecase.NewMigrateStore(source, dest, c.Logger)
}
