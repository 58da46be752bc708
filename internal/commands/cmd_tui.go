package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tubenotes/internal/core/logging"
	"github.com/hay-kot/tubenotes/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *App

	videoRef string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "video",
			Usage:       "video reference to load on start",
			Sources:     cli.EnvVars("TUBENOTES_VIDEO"),
			Destination: &cmd.videoRef,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if err := cmd.app.Open(ctx, cmd.flags.Config); err != nil {
		return err
	}

	logger := logging.Component("tui")
	m := tui.New(tui.Options{
		Context:    ctx,
		Remote:     cmd.app.Remote,
		Bus:        cmd.app.Bus,
		Logger:     &logger,
		InitialRef: cmd.videoRef,
	})

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
