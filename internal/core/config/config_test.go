package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/tubenotes/internal/core/api"
	"github.com/hay-kot/tubenotes/internal/core/styles"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, api.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, "tubenotes", cfg.API.UserAgent)
	assert.Equal(t, styles.DefaultTheme, cfg.TUI.Theme)
	assert.True(t, cfg.Notifications.PersistHistory())
	assert.Empty(t, cfg.Debug.Addr)
	assert.Equal(t, dataDir, cfg.DataDir)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, api.DefaultBaseURL, cfg.API.BaseURL)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: https://notes.example.com/api
tui:
  theme: gruvbox
notifications:
  history: false
debug:
  addr: 127.0.0.1:6060
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://notes.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, "tubenotes", cfg.API.UserAgent, "unset keys keep defaults")
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.False(t, cfg.Notifications.PersistHistory())
	assert.Equal(t, "127.0.0.1:6060", cfg.Debug.Addr)
}

func TestLoad_EmptyValuesFallBackToDefaults(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: ""
tui:
  theme: ""
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, api.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, styles.DefaultTheme, cfg.TUI.Theme)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "api: [not, a, map")

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
tui:
  theme: neon
`)

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "tui.theme")
}

func TestRead_SkipsValidation(t *testing.T) {
	path := writeConfig(t, `
tui:
  theme: neon
`)

	cfg, err := Read(path, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.TUI.Theme)
	assert.Equal(t, api.DefaultBaseURL, cfg.API.BaseURL)
	require.Error(t, cfg.Validate())
}

func TestConfigPaths(t *testing.T) {
	cfg := Config{DataDir: "/data"}
	assert.Equal(t, filepath.Join("/data", "tubenotes.db"), cfg.DatabaseFile())
	assert.Equal(t, filepath.Join("/data", "tubenotes.log"), cfg.LogFile())
}
