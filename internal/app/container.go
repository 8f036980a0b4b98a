// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/runoshun/oss-curator/internal/domain"
	"github.com/runoshun/oss-curator/internal/explorer"
	"github.com/runoshun/oss-curator/internal/infra/badgerstore"
	"github.com/runoshun/oss-curator/internal/infra/catalog"
	"github.com/runoshun/oss-curator/internal/infra/config"
	"github.com/runoshun/oss-curator/internal/infra/executor"
	"github.com/runoshun/oss-curator/internal/infra/jsonstore"
	"github.com/runoshun/oss-curator/internal/infra/logging"
	"github.com/runoshun/oss-curator/internal/infra/rules"
	"github.com/runoshun/oss-curator/internal/infra/sqlitestore"
	"github.com/runoshun/oss-curator/internal/usecase"
)

// Options adjusts container construction. Zero values use the configuration.
type Options struct {
	LogMirror  io.Writer // Also write log entries here (e.g. stderr for --verbose)
	ConfigPath string    // Config file; empty resolves CURATOR_CONFIG or the XDG path
	Catalog    string    // Catalog file overriding [catalog].path
	Backend    string    // Storage backend overriding [storage].backend
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.StateStore
	Clock         domain.Clock
	Logger        domain.Logger
	Links         domain.LinkOpener
	Rules         domain.CollectionMatcher
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Catalog *domain.Catalog
	Config  *domain.Config

	closers []io.Closer
}

// New loads configuration and the catalog and opens the state store.
func New(opts Options) (*Container, error) {
	loader := config.NewLoader()
	if opts.ConfigPath != "" {
		loader.WithPath(opts.ConfigPath)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if opts.Catalog != "" {
		cfg.Catalog.Path = opts.Catalog
	}
	if opts.Backend != "" {
		cfg.Storage.Backend = opts.Backend
	}

	fileLogger := logging.New(logPath(cfg), logging.ParseLevel(cfg.Log.Level))
	if opts.LogMirror != nil {
		fileLogger.WithMirror(opts.LogMirror)
	}
	for _, w := range cfg.Warnings {
		fileLogger.Warn("config", w)
	}

	cat, err := catalog.NewProvider(cfg.Catalog.Path).Load()
	if err != nil {
		_ = fileLogger.Close()
		return nil, err
	}

	store, closer, err := openStore(cfg, fileLogger)
	if err != nil {
		_ = fileLogger.Close()
		return nil, err
	}

	c := &Container{
		Store:         store,
		Clock:         domain.RealClock{},
		Logger:        fileLogger,
		Links:         executor.NewClient(),
		Rules:         rules.New(),
		ConfigLoader:  loader,
		ConfigManager: config.NewManager(loader.Path()),
		Catalog:       cat,
		Config:        cfg,
		closers:       []io.Closer{fileLogger},
	}
	if closer != nil {
		c.closers = append(c.closers, closer)
	}
	fileLogger.Debug("app", fmt.Sprintf("catalog: %d issues, storage: %s", cat.Len(), cfg.Storage.Backend))
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, cat *domain.Catalog, store domain.StateStore, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Store:   store,
		Clock:   clock,
		Logger:  logger,
		Links:   executor.NewClient(),
		Rules:   rules.New(),
		Catalog: cat,
		Config:  cfg,
	}
}

func logPath(cfg *domain.Config) string {
	if cfg.Storage.Dir == "" {
		return ""
	}
	return domain.LogPath(cfg.Storage.Dir)
}

// openStore opens the configured state backend. The closer is nil for
// backends without resources.
func openStore(cfg *domain.Config, logger domain.Logger) (domain.StateStore, io.Closer, error) {
	dir := cfg.Storage.Dir
	if dir == "" && cfg.Storage.Backend != domain.BackendMemory {
		return nil, nil, errors.New("state directory not available; set [storage].dir or CURATOR_STATE_DIR")
	}

	switch cfg.Storage.Backend {
	case domain.BackendJSON:
		return jsonstore.New(filepath.Join(dir, domain.StateFileName)), nil, nil
	case domain.BackendBadger:
		c := badgerstore.DefaultConfig(filepath.Join(dir, domain.BadgerDirName))
		c.Logger = logger
		s, err := badgerstore.Open(c)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case domain.BackendSQLite:
		s, err := sqlitestore.Open(filepath.Join(dir, domain.SQLiteFileName))
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case domain.BackendMemory:
		s, err := badgerstore.Open(badgerstore.InMemoryConfig())
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, cfg.Storage.Backend)
	}
}

// Close releases the store and the log file.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i].Close())
	}
	c.closers = nil
	return errors.Join(errs...)
}

// NewExplorer creates an explorer wired to the container's store, logger
// and settings. The host sets the overlay and event sources in opts.
func (c *Container) NewExplorer(opts explorer.Options) *explorer.Explorer {
	opts.Store = c.Store
	opts.Logger = c.Logger
	opts.Key = c.Config.Storage.Key
	opts.FeaturedLanguage = c.Config.Catalog.FeaturedLanguage
	opts.Paging = c.Config.PageSizing()
	return explorer.New(c.Catalog, opts)
}

// Session returns a headless explorer restored from the store.
func (c *Container) Session(ctx context.Context) *explorer.Explorer {
	ex := c.NewExplorer(explorer.Options{})
	ex.Hydrate(ctx)
	return ex
}

// UseCase factory methods

// ListIssuesUseCase returns a new ListIssues use case.
func (c *Container) ListIssuesUseCase(ex *explorer.Explorer) *usecase.ListIssues {
	return usecase.NewListIssues(ex)
}

// ShowIssueUseCase returns a new ShowIssue use case.
func (c *Container) ShowIssueUseCase(ex *explorer.Explorer) *usecase.ShowIssue {
	return usecase.NewShowIssue(ex, c.Rules, c.Clock)
}

// SaveIssueUseCase returns a new SaveIssue use case.
func (c *Container) SaveIssueUseCase(ex *explorer.Explorer) *usecase.SaveIssue {
	return usecase.NewSaveIssue(ex)
}

// ListSavedUseCase returns a new ListSaved use case.
func (c *Container) ListSavedUseCase(ex *explorer.Explorer) *usecase.ListSaved {
	return usecase.NewListSaved(ex)
}

// ResetFiltersUseCase returns a new ResetFilters use case.
func (c *Container) ResetFiltersUseCase(ex *explorer.Explorer) *usecase.ResetFilters {
	return usecase.NewResetFilters(ex)
}

// ShowStatsUseCase returns a new ShowStats use case.
func (c *Container) ShowStatsUseCase(ex *explorer.Explorer) *usecase.ShowStats {
	return usecase.NewShowStats(ex)
}

// ListCollectionsUseCase returns a new ListCollections use case.
func (c *Container) ListCollectionsUseCase() *usecase.ListCollections {
	return usecase.NewListCollections(c.Catalog, c.Rules)
}

// OpenIssueUseCase returns a new OpenIssue use case.
func (c *Container) OpenIssueUseCase() *usecase.OpenIssue {
	return usecase.NewOpenIssue(c.Catalog, c.Links, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
