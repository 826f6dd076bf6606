package cli

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/phonebook/internal/config"
)

func TestGetCLIFromContext(t *testing.T) {
	t.Parallel()

	if _, err := GetCLIFromContext(context.Background()); !errors.Is(err, ErrNoCLI) {
		t.Errorf("empty context: got %v, want ErrNoCLI", err)
	}

	c := &CLI{}
	got, err := GetCLIFromContext(WithCLI(context.Background(), c))
	if err != nil {
		t.Fatalf("GetCLIFromContext() error = %v", err)
	}
	if got != c {
		t.Error("GetCLIFromContext() returned a different CLI")
	}
}

func TestNewCLI(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "book.txt")

	c, err := NewCLI(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewCLI() error = %v", err)
	}
	defer func() { _ = c.Close() }()

	if c.App.ContactService.Count() != 0 {
		t.Errorf("new phone book should be empty, got %d", c.App.ContactService.Count())
	}
}

func TestNewCLI_UnknownFormat(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "book.txt")
	cfg.Storage.Format = "xml"

	if _, err := NewCLI(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
