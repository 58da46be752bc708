// Package config handles configuration loading and validation for tubenotes.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/tubenotes/internal/core/api"
	"github.com/hay-kot/tubenotes/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	API           APIConfig           `yaml:"api"`
	TUI           TUIConfig           `yaml:"tui"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Debug         DebugConfig         `yaml:"debug"`
	DataDir       string              `yaml:"-"` // set by caller, not from config file
}

// APIConfig describes how to reach the comment and note backend.
type APIConfig struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
}

type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// NotificationsConfig controls the notification history. When History is
// false notifications only live for the duration of the TUI session.
type NotificationsConfig struct {
	History *bool `yaml:"history"`
}

// DebugConfig enables the pprof and metrics listener when Addr is set.
type DebugConfig struct {
	Addr string `yaml:"addr"`
}

// PersistHistory reports whether notifications are written to disk.
func (n NotificationsConfig) PersistHistory() bool {
	return n.History == nil || *n.History
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   api.DefaultBaseURL,
			UserAgent: "tubenotes",
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path, sets the data directory and
// validates the result. If configPath is empty or doesn't exist, returns
// defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg, err := Read(configPath, dataDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read is Load without validation, for callers that apply overrides first or
// want to report validation errors themselves.
func Read(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = defaults.API.UserAgent
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// DatabaseFile returns the path of the notification history database.
func (c *Config) DatabaseFile() string {
	return filepath.Join(c.DataDir, "tubenotes.db")
}

// LogFile returns the default log file path.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "tubenotes.log")
}
