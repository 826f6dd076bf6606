package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/database"
	"github.com/thenoetrevino/phonebook/internal/repository"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
	"github.com/thenoetrevino/phonebook/internal/storage"
)

// FormatSQLite selects the SQLite backend instead of a flat file codec
const FormatSQLite = "sqlite"

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Persistence layer
	store storage.Store
	repo  *repository.ContactRepository

	// Service layer (business logic)
	ContactService contactservice.Service

	// Where contacts are kept, for display
	Location string
	Format   string

	closer io.Closer
	logger *slog.Logger
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(ctx context.Context, storageCfg config.StorageConfig, opts ...Option) (*App, error) {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	a := &App{
		Location: storageCfg.Path,
		Format:   storageCfg.Format,
		logger:   cfg.logger,
	}

	if cfg.store != nil {
		a.store = cfg.store
	} else if err := a.openStore(ctx, storageCfg); err != nil {
		return nil, err
	}

	repo, err := repository.New(ctx, a.store)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.repo = repo
	a.ContactService = contactservice.NewService(repo)

	a.logger.Debug("phone book opened", "path", a.Location, "format", a.Format, "count", repo.Count())
	return a, nil
}

func (a *App) openStore(ctx context.Context, storageCfg config.StorageConfig) error {
	if storageCfg.Format == FormatSQLite {
		db, err := database.InitDB(ctx, storageCfg.Path)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		sqliteStore := database.NewSQLiteStore(db, storageCfg.Path)
		a.store = sqliteStore
		a.closer = sqliteStore
		return nil
	}

	codec, err := storage.CodecByName(storageCfg.Format)
	if err != nil {
		return err
	}
	a.store = storage.NewFlatFileStore(storageCfg.Path, codec)
	return nil
}

// Repo returns the contact repository for direct cache access
func (a *App) Repo() *repository.ContactRepository {
	return a.repo
}

// Close releases the backing store
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
