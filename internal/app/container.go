// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/infra/config"
	"github.com/runoshun/nearby/internal/infra/geo"
	"github.com/runoshun/nearby/internal/infra/gitstore"
	"github.com/runoshun/nearby/internal/infra/jsonstore"
	"github.com/runoshun/nearby/internal/infra/logging"
	"github.com/runoshun/nearby/internal/infra/sqlitestore"
	"github.com/runoshun/nearby/internal/infra/transfer"
	"github.com/runoshun/nearby/internal/recommend"
	"github.com/runoshun/nearby/internal/taskstore"
	"github.com/runoshun/nearby/internal/usecase"
)

// EnvDataDir overrides the default data directory.
const EnvDataDir = "NEARBY_DATA_DIR"

// Config holds the application paths.
type Config struct {
	DataDir string // Directory holding config.toml, the store and logs
}

// ResolveDataDir returns the data directory. An explicit flag value wins,
// then NEARBY_DATA_DIR, then $XDG_DATA_HOME/nearby, then ~/.local/share/nearby.
func ResolveDataDir(flagValue string) (string, error) {
	if flagValue != "" {
		return filepath.Abs(flagValue)
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return filepath.Abs(dir)
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, domain.AppDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", domain.AppDirName), nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
// Tasks and Engine are created once per process and shared by every caller.
type Container struct {
	// Ports (interfaces bound to implementations)
	Blobs         domain.BlobStore
	Locator       domain.Locator
	Codec         domain.TaskCodec
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Log           domain.Logger

	// Pointer fields
	Tasks  *taskstore.Store
	Engine *recommend.Engine
	Logger *slog.Logger

	// Loaded configuration
	AppConfig *domain.Config
	closers   []io.Closer
	Config    Config
}

// New creates a new Container for the given data directory.
func New(dataDir string) (*Container, error) {
	cfg := Config{DataDir: dataDir}

	configLoader := config.NewLoader(dataDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	fileLogger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level))
	closers := []io.Closer{fileLogger}

	blobs, closer, err := newBlobStore(dataDir, appConfig.Store)
	if err != nil {
		_ = fileLogger.Close()
		return nil, err
	}
	if closer != nil {
		closers = append(closers, closer)
	}
	fileLogger.Info("app", fmt.Sprintf("using %s store in %s", appConfig.Store.Backend, dataDir))

	// Configured position first; the environment fills in when none is set.
	locator := geo.Chain{geo.NewStatic(appConfig.Location), geo.NewEnv()}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	c := NewWithDeps(cfg, blobs, locator, domain.RealClock{}, fileLogger, logger)
	c.ConfigLoader = configLoader
	c.ConfigManager = config.NewManager(dataDir)
	c.AppConfig = appConfig
	c.closers = closers
	return c, nil
}

// newBlobStore opens the backend selected by the [store] section.
func newBlobStore(dataDir string, sc domain.StoreConfig) (domain.BlobStore, io.Closer, error) {
	switch sc.Backend {
	case "", domain.BackendJSON:
		return jsonstore.New(domain.JSONStorePath(dataDir)), nil, nil
	case domain.BackendGit:
		repo := sc.Repo
		if repo == "" {
			repo = dataDir
		}
		s, err := gitstore.New(repo, sc.Namespace)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case domain.BackendSQLite:
		s, err := sqlitestore.New(domain.SQLiteStorePath(dataDir))
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, sc.Backend)
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// It builds the single TaskStore over blobs and attaches the Engine to it.
func NewWithDeps(cfg Config, blobs domain.BlobStore, locator domain.Locator, clock domain.Clock, log domain.Logger, logger *slog.Logger) *Container {
	if log == nil {
		log = domain.NopLogger{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	tasks := taskstore.New(blobs, log)
	engine := recommend.NewEngine(log)
	engine.Attach(tasks)

	return &Container{
		Blobs:     blobs,
		Locator:   locator,
		Codec:     transfer.Codec{},
		Clock:     clock,
		Log:       log,
		Tasks:     tasks,
		Engine:    engine,
		Logger:    logger,
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

// Close detaches the engine and releases open stores and log files.
func (c *Container) Close() error {
	c.Engine.Close()
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks)
}

// MoveTaskUseCase returns a new MoveTask use case.
func (c *Container) MoveTaskUseCase() *usecase.MoveTask {
	return usecase.NewMoveTask(c.Tasks)
}

// RecommendTaskUseCase returns a new RecommendTask use case.
func (c *Container) RecommendTaskUseCase() *usecase.RecommendTask {
	return usecase.NewRecommendTask(c.Tasks, c.Engine, c.Locator, c.Log)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.Codec)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks, c.Codec, c.Clock)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader, c.ConfigManager)
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Config.DataDir)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// MigrateStoreUseCase returns a MigrateStore use case that copies the active
// task list into the given backend. The destination store is closed with
// the container.
func (c *Container) MigrateStoreUseCase(backend string) (*usecase.MigrateStore, error) {
	active := c.AppConfig.Store
	if active.Backend == "" {
		active.Backend = domain.BackendJSON
	}
	if backend == active.Backend {
		return nil, fmt.Errorf("%w: %s", domain.ErrSameBackend, backend)
	}

	sc := active
	sc.Backend = backend
	blobs, closer, err := newBlobStore(c.Config.DataDir, sc)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		c.closers = append(c.closers, closer)
	}

	dest := taskstore.New(blobs, c.Log)
	return usecase.NewMigrateStore(c.Tasks, dest), nil
}
