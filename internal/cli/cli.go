package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/phonebook/internal/app"
	"github.com/thenoetrevino/phonebook/internal/config"
)

// ErrNoCLI is returned when a command runs without an initialized CLI in its context
var ErrNoCLI = errors.New("cli not initialized")

type contextKey string

const cliKey contextKey = "phonebook.cli"

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
}

// NewCLI opens the phone book described by cfg
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.New(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open phone book: %w", err)
	}

	return &CLI{
		App:    application,
		Config: cfg,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

// WithCLI returns a context carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(cliKey).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
