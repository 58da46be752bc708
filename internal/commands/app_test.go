package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/tubenotes/internal/core/config"
	"github.com/hay-kot/tubenotes/internal/core/notify"
	"github.com/hay-kot/tubenotes/internal/data/db"
	"github.com/hay-kot/tubenotes/internal/data/stores"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Read("", t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestApp_OpenPersistsHistory(t *testing.T) {
	cfg := testConfig(t)

	app := &App{}
	require.NoError(t, app.Open(context.Background(), cfg))
	t.Cleanup(func() { _ = app.Close() })

	require.NotNil(t, app.Remote)
	require.NotNil(t, app.Bus)
	assert.IsType(t, &stores.NotifyStore{}, app.Bus.Store())
	assert.FileExists(t, filepath.Join(cfg.DataDir, db.FileName))
}

func TestApp_OpenHistoryDisabled(t *testing.T) {
	cfg := testConfig(t)
	off := false
	cfg.Notifications.History = &off

	app := &App{}
	require.NoError(t, app.Open(context.Background(), cfg))
	t.Cleanup(func() { _ = app.Close() })

	assert.IsType(t, &notify.MemoryStore{}, app.Bus.Store())
	assert.NoFileExists(t, filepath.Join(cfg.DataDir, db.FileName))
}

func TestApp_OpenRecoversCorruptDatabase(t *testing.T) {
	cfg := testConfig(t)
	dbPath := filepath.Join(cfg.DataDir, db.FileName)
	require.NoError(t, os.WriteFile(dbPath, bytes.Repeat([]byte("not a database "), 512), 0o644))

	app := &App{}
	require.NoError(t, app.Open(context.Background(), cfg))
	t.Cleanup(func() { _ = app.Close() })

	matches, err := filepath.Glob(dbPath + ".corrupt.*")
	require.NoError(t, err)
	assert.NotEmpty(t, matches)

	app.Bus.Infof(context.Background(), "works")
	history, err := app.Bus.History(context.Background())
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestApp_OpenInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.API.BaseURL = "not a url"

	app := &App{}
	err := app.Open(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestApp_OpenDebugServer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Debug.Addr = "127.0.0.1:0"

	app := &App{}
	require.NoError(t, app.Open(context.Background(), cfg))
	require.NotNil(t, app.profiler)
	assert.NotEmpty(t, app.profiler.Addr())

	require.NoError(t, app.Close())
	assert.Nil(t, app.profiler)
}

func TestApp_CloseUnopened(t *testing.T) {
	app := &App{}
	require.NoError(t, app.Close())
}

func TestFlags_ApplyOverrides(t *testing.T) {
	cfg := testConfig(t)
	f := &Flags{APIURL: "http://example.com/api", DebugAddr: "127.0.0.1:6060"}
	f.ApplyOverrides(cfg)

	assert.Equal(t, "http://example.com/api", cfg.API.BaseURL)
	assert.Equal(t, "127.0.0.1:6060", cfg.Debug.Addr)

	cfg2 := testConfig(t)
	(&Flags{}).ApplyOverrides(cfg2)
	assert.Equal(t, config.DefaultConfig().API.BaseURL, cfg2.API.BaseURL)
}
