package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tubenotes/internal/core/config"
	"github.com/hay-kot/tubenotes/pkg/logutils"
)

// NewRootCmd assembles the tubenotes command tree. Running it with no
// subcommand opens the TUI.
func NewRootCmd(version string) *cli.Command {
	var (
		flags     = &Flags{}
		app       = &App{}
		logCloser func()
	)

	root := &cli.Command{
		Name:      "tubenotes",
		Usage:     "Browse a video's comments and keep notes from the terminal",
		UsageText: "tubenotes [global options] command [command options]",
		Description: `tubenotes shows a video's details and comments, lets you post comments
and replies, and keeps tagged notes, all against a comment and note backend.

Run 'tubenotes' with no arguments to open the interactive page.
Run 'tubenotes devserver' for a local in-memory backend.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TUBENOTES_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/tubenotes.log)",
				Sources:     cli.EnvVars("TUBENOTES_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TUBENOTES_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TUBENOTES_DATA_DIR"),
				Value:       DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "api-url",
				Usage:       "backend base URL (overrides api.base_url)",
				Sources:     cli.EnvVars("TUBENOTES_API_URL"),
				Destination: &flags.APIURL,
			},
			&cli.StringFlag{
				Name:        "debug-addr",
				Usage:       "serve pprof and /metrics on this address (overrides debug.addr)",
				Sources:     cli.EnvVars("TUBENOTES_DEBUG_ADDR"),
				Destination: &flags.DebugAddr,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; the TUI owns the terminal.
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "tubenotes.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Read(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.ApplyOverrides(cfg)
			flags.Config = cfg

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			err := app.Close()
			if err != nil {
				log.Error().Err(err).Msg("failed to close app")
			}

			if logCloser != nil {
				logCloser()
			}
			return err
		},
	}

	tuiCmd := NewTuiCmd(flags, app)

	root = NewVideoCmd(flags, app).Register(root)
	root = NewCommentCmd(flags, app).Register(root)
	root = NewNoteCmd(flags, app).Register(root)
	root = NewDevServerCmd(flags).Register(root)
	root = NewConfigValidateCmd(flags).Register(root)

	// Register TUI flags on root command
	root.Flags = append(root.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'tubenotes --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return root
}
