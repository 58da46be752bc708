package commands

import (
	"os"
	"path/filepath"

	"github.com/hay-kot/tubenotes/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	APIURL     string
	DebugAddr  string

	// Config is read in the Before hook with flag overrides applied. It is
	// not validated until App.Open.
	Config *config.Config
}

// ApplyOverrides copies flag values that take precedence over the config file.
func (f *Flags) ApplyOverrides(cfg *config.Config) {
	if f.APIURL != "" {
		cfg.API.BaseURL = f.APIURL
	}
	if f.DebugAddr != "" {
		cfg.Debug.Addr = f.DebugAddr
	}
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tubenotes", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tubenotes")
}
