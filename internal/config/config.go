package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/phonebook/internal/config/colors"
)

// Environment variables that override the config file
const (
	EnvFile      = "PHONEBOOK_FILE"
	EnvFormat    = "PHONEBOOK_FORMAT"
	EnvThemeFile = "PHONEBOOK_THEME_FILE"
)

const (
	defaultPageSize = 10
	defaultLogLevel = "info"
	defaultFormat   = "block"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage"`
	PageSize    int                `yaml:"page_size"`
	LogLevel    string             `yaml:"log_level"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects where and how contacts are kept
type StorageConfig struct {
	// Path of the phone book file; "~/" is expanded
	Path string `yaml:"path"`
	// Format is one of block, jsonl, yaml or sqlite
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from PHONEBOOK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, err
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	loadThemeFile(&config)
	config.applyEnv()
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// DataDir returns ~/.phonebook, where the book and logs live by default
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".phonebook"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "phonebook", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "phonebook", "config.yaml"), nil
}

func (c *Config) applyEnv() {
	if path := os.Getenv(EnvFile); path != "" {
		c.Storage.Path = path
	}
	if format := os.Getenv(EnvFormat); format != "" {
		c.Storage.Format = format
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Format == "" {
		c.Storage.Format = defaultFormat
	}
	c.Storage.Format = strings.ToLower(c.Storage.Format)

	if c.Storage.Path == "" {
		c.Storage.Path = defaultStoragePath(c.Storage.Format)
	}
	c.Storage.Path = expandHome(c.Storage.Path)

	if c.PageSize <= 0 {
		c.PageSize = defaultPageSize
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	c.ColorScheme.ApplyDefaults()
}

func defaultStoragePath(format string) string {
	name := "phonebook.txt"
	switch format {
	case "jsonl":
		name = "phonebook.jsonl"
	case "yaml":
		name = "phonebook.yaml"
	case "sqlite":
		name = "phonebook.db"
	}

	dir, err := DataDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, name)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

// Override applies command line values on top of the loaded config.
// Changing only the format also moves a default path to that format's file.
func (c *Config) Override(path, format, logLevel string) {
	if format != "" {
		if path == "" && c.Storage.Path == defaultStoragePath(c.Storage.Format) {
			c.Storage.Path = ""
		}
		c.Storage.Format = format
	}
	if path != "" {
		c.Storage.Path = path
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	c.applyDefaults()
}
