package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v8"
	"gopkg.in/yaml.v3"
)

const appName = "porquinho"

// Config represents config.yaml, overlaid with PORQUINHO_* environment variables.
type Config struct {
	DataDir  string    `yaml:"data_dir,omitempty" env:"PORQUINHO_DATA_DIR"`
	Currency string    `yaml:"currency,omitempty" env:"PORQUINHO_CURRENCY"` // ISO 4217, empty prints plain numbers
	LogLevel string    `yaml:"log_level" env:"PORQUINHO_LOG_LEVEL"`
	Git      GitConfig `yaml:"git" envPrefix:"PORQUINHO_GIT_"`
}

// GitConfig controls committing the data directory after each change.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit" env:"AUTO_COMMIT"`
	AuthorName  string `yaml:"author_name" env:"AUTHOR_NAME"`
	AuthorEmail string `yaml:"author_email" env:"AUTHOR_EMAIL"`
}

// Load reads a config.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "porquinho",
			AuthorEmail: "porquinho@localhost",
		},
	}
}

// Resolve loads the file at path if it exists and applies environment
// overrides. A nil environ reads the process environment.
func Resolve(path string, environ map[string]string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns <user config dir>/porquinho/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding config dir: %w", err)
	}
	return filepath.Join(dir, appName, "config.yaml"), nil
}

// ResolveDataDir returns the configured data directory, or the platform's
// per-application data directory when none is set.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	return DefaultDataDir()
}

// DefaultDataDir follows the platform convention: $XDG_DATA_HOME (or
// ~/.local/share) on unix, the user config dir on darwin and windows.
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "darwin", "windows":
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("no valid home dir found: %w", err)
		}
		return filepath.Join(dir, appName), nil
	}

	if dir := os.Getenv("XDG_DATA_HOME"); filepath.IsAbs(dir) {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("no valid home dir found: %w", err)
	}
	return filepath.Join(home, ".local", "share", appName), nil
}
