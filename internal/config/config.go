// Package config handles loading the taskdeck config.toml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvDataDir overrides the data directory when set. It takes precedence
// over both the config file and the default location.
const EnvDataDir = "TASKDECK_DATA_DIR"

// Config represents the taskdeck config.toml file.
type Config struct {
	// DataDir is the directory holding the persisted task collections.
	// Defaults to ~/.local/share/taskdeck.
	DataDir string `toml:"data-dir"`

	// NoColor disables ANSI styling in command output.
	NoColor bool `toml:"no-color"`
}

// Load loads configuration from the global config file.
// Returns a config with defaults applied if no config file exists.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}

	if dir := strings.TrimSpace(os.Getenv(EnvDataDir)); dir != "" {
		cfg.DataDir = dir
	}
	if cfg.DataDir == "" {
		dataDir, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = dataDir
	}

	return cfg, nil
}

// Path returns the location of the global config file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "taskdeck", "config.toml"), nil
}

func defaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "taskdeck"), nil
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.DataDir = strings.TrimSpace(cfg.DataDir)
	return &cfg, nil
}
