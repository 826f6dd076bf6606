package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and XDG_CONFIG_HOME at temp dirs and clears overrides
func isolate(t *testing.T) (home, configHome string) {
	t.Helper()
	home = t.TempDir()
	configHome = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv(EnvFile, "")
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvThemeFile, "")
	return home, configHome
}

func writeConfig(t *testing.T, configHome, content string) {
	t.Helper()
	dir := filepath.Join(configHome, "phonebook")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	home, _ := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	wantPath := filepath.Join(home, ".phonebook", "phonebook.txt")
	if cfg.Storage.Path != wantPath {
		t.Errorf("Storage.Path = %s, want %s", cfg.Storage.Path, wantPath)
	}
	if cfg.Storage.Format != "block" {
		t.Errorf("Storage.Format = %s, want block", cfg.Storage.Format)
	}
	if cfg.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", cfg.PageSize)
	}
	if cfg.ColorScheme.Accent != "#874BFD" {
		t.Errorf("Accent = %s, want default #874BFD", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	home, configHome := isolate(t)
	writeConfig(t, configHome, `storage:
  path: ~/books/contacts.yaml
  format: YAML
page_size: 4
theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Storage.Path != filepath.Join(home, "books", "contacts.yaml") {
		t.Errorf("Storage.Path = %s, want ~ expanded", cfg.Storage.Path)
	}
	if cfg.Storage.Format != "yaml" {
		t.Errorf("Storage.Format = %s, want yaml", cfg.Storage.Format)
	}
	if cfg.PageSize != 4 {
		t.Errorf("PageSize = %d, want 4", cfg.PageSize)
	}
	if cfg.ColorScheme.Accent != "#123456" {
		t.Errorf("Accent = %s, want #123456", cfg.ColorScheme.Accent)
	}
	// Unspecified colors come from the chosen preset
	if cfg.ColorScheme.Title != "#FFFFFF" {
		t.Errorf("Title = %s, want monochrome #FFFFFF", cfg.ColorScheme.Title)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info (default)", cfg.LogLevel)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	home, configHome := isolate(t)
	writeConfig(t, configHome, "storage:\n  format: block\n")
	t.Setenv(EnvFormat, "sqlite")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Storage.Format != "sqlite" {
		t.Errorf("Storage.Format = %s, want sqlite from env", cfg.Storage.Format)
	}
	if cfg.Storage.Path != filepath.Join(home, ".phonebook", "phonebook.db") {
		t.Errorf("Storage.Path = %s, want default sqlite path", cfg.Storage.Path)
	}

	t.Setenv(EnvFile, "/tmp/explicit.txt")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Storage.Path != "/tmp/explicit.txt" {
		t.Errorf("Storage.Path = %s, want env override", cfg.Storage.Path)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	_, configHome := isolate(t)
	writeConfig(t, configHome, "storage: [unclosed\n")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := []byte("theme:\n  accent: \"#FF0000\"\n  create: \"#00FF00\"\n")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.Delete == "" {
		t.Error("Expected delete to keep its default")
	}
}

func TestSaveConfig(t *testing.T) {
	_, configHome := isolate(t)

	cfg := Default()
	cfg.PageSize = 25
	cfg.Storage.Format = "jsonl"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(configHome, "phonebook", "config.yaml")); err != nil {
		t.Fatalf("Config file not written: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if loaded.PageSize != 25 {
		t.Errorf("PageSize = %d, want 25", loaded.PageSize)
	}
	if loaded.Storage.Format != "jsonl" {
		t.Errorf("Storage.Format = %s, want jsonl", loaded.Storage.Format)
	}
}

func TestOverride(t *testing.T) {
	home, _ := isolate(t)

	t.Run("format moves default path", func(t *testing.T) {
		cfg := Default()
		cfg.Override("", "SQLite", "")

		if cfg.Storage.Format != "sqlite" {
			t.Errorf("Format = %q, want sqlite", cfg.Storage.Format)
		}
		if want := filepath.Join(home, ".phonebook", "phonebook.db"); cfg.Storage.Path != want {
			t.Errorf("Path = %q, want %q", cfg.Storage.Path, want)
		}
	})

	t.Run("custom path is kept", func(t *testing.T) {
		cfg := Default()
		cfg.Storage.Path = "/tmp/custom.txt"
		cfg.Override("", "jsonl", "debug")

		if cfg.Storage.Path != "/tmp/custom.txt" {
			t.Errorf("Path = %q, want /tmp/custom.txt", cfg.Storage.Path)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
		}
	})

	t.Run("path flag expands home", func(t *testing.T) {
		cfg := Default()
		cfg.Override("~/book.txt", "", "")

		if want := filepath.Join(home, "book.txt"); cfg.Storage.Path != want {
			t.Errorf("Path = %q, want %q", cfg.Storage.Path, want)
		}
	})
}
