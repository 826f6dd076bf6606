package app

import (
	"log/slog"

	"github.com/thenoetrevino/phonebook/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	store  storage.Store
	logger *slog.Logger
}

// WithStore uses store instead of opening one from the storage config
func WithStore(store storage.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
