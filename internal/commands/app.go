package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/tubenotes/internal/core/api"
	"github.com/hay-kot/tubenotes/internal/core/config"
	"github.com/hay-kot/tubenotes/internal/core/logging"
	"github.com/hay-kot/tubenotes/internal/core/notify"
	"github.com/hay-kot/tubenotes/internal/core/styles"
	"github.com/hay-kot/tubenotes/internal/data/db"
	"github.com/hay-kot/tubenotes/internal/data/stores"
	"github.com/hay-kot/tubenotes/internal/metrics"
	"github.com/hay-kot/tubenotes/internal/profiler"
	"github.com/hay-kot/tubenotes/internal/tube"
	tuinotify "github.com/hay-kot/tubenotes/internal/tui/notify"
)

// App holds the services shared by the commands that talk to the backend.
// It is populated by Open; commands that never call Open (config, devserver)
// leave it empty.
type App struct {
	Config *config.Config
	Remote *tube.Remote
	Bus    *tuinotify.Bus

	db       *db.DB
	profiler *profiler.Server
}

// Open validates the configuration and wires the HTTP client, notification
// history and optional debug server.
func (a *App) Open(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		return errors.New("config not loaded")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.Config = cfg

	// Validation ensures the theme name is known.
	palette, _ := styles.GetPalette(cfg.TUI.Theme)
	styles.SetTheme(palette)

	reg := prometheus.NewRegistry()
	client, err := api.NewHTTPClient(
		cfg.API.BaseURL,
		api.WithUserAgent(cfg.API.UserAgent),
		api.WithObserver(metrics.NewAPIMetrics(reg)),
		api.WithLogger(logging.Component("api")),
	)
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}
	a.Remote = tube.NewRemote(client)

	if cfg.Debug.Addr != "" {
		srv := profiler.New(cfg.Debug.Addr, reg)
		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("failed to start debug server: %w", err)
		}
		a.profiler = srv
		log.Info().
			Str("pprof", fmt.Sprintf("http://%s/debug/pprof/", srv.Addr())).
			Str("metrics", fmt.Sprintf("http://%s/metrics", srv.Addr())).
			Msg("debug endpoints available")
	}

	var store notify.Store = notify.NewMemoryStore()
	if cfg.Notifications.PersistHistory() {
		database, err := openDatabase(cfg.DataDir)
		if err != nil {
			return err
		}
		a.db = database
		store = stores.NewNotifyStore(database)
	}
	a.Bus = tuinotify.NewBus(store)

	return nil
}

// Synchronizer opens the app and returns a synchronizer for a single command.
func (a *App) Synchronizer(ctx context.Context, cfg *config.Config) (*tube.Synchronizer, error) {
	if err := a.Open(ctx, cfg); err != nil {
		return nil, err
	}
	return tube.NewSynchronizer(a.Remote, logging.Component("sync")), nil
}

// openDatabase opens the history database, moving a corrupted file aside and
// starting over once.
func openDatabase(dataDir string) (*db.DB, error) {
	database, err := db.Open(dataDir, db.DefaultOpenOptions())
	if err == nil {
		return database, nil
	}
	if !stores.IsCorruptionError(err) {
		return nil, fmt.Errorf("open database: %w", err)
	}

	backup, recoverErr := stores.RecoverFromCorruption(dataDir)
	if recoverErr != nil {
		return nil, fmt.Errorf("open database: %w (recovery failed: %w)", err, recoverErr)
	}
	log.Warn().Err(err).Str("backup", backup).Msg("notification history was corrupted, starting fresh")

	database, err = db.Open(dataDir, db.DefaultOpenOptions())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return database, nil
}

// Close releases everything Open acquired. It is safe to call on an App that
// was never opened.
func (a *App) Close() error {
	var errs []error

	if a.profiler != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.profiler.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown debug server: %w", err))
		}
		a.profiler = nil
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
		a.db = nil
	}

	return errors.Join(errs...)
}
