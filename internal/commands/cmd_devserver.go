package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tubenotes/internal/devserver"
)

type DevServerCmd struct {
	flags *Flags

	addr   string
	prefix string
}

func NewDevServerCmd(flags *Flags) *DevServerCmd {
	return &DevServerCmd{flags: flags}
}

// Register adds the devserver command to the application.
func (cmd *DevServerCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "devserver",
		Usage:     "Run an in-memory backend for local development",
		UsageText: "tubenotes devserver [options]",
		Description: fmt.Sprintf(`Serves the video, comment and note endpoints from memory. Nothing is
persisted; restarting the server resets it to a single demo video (%q).

Point the client at it with:
  tubenotes --api-url http://127.0.0.1:5000/api --video %s`, devserver.DemoVideoID, devserver.DemoVideoID),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Sources:     cli.EnvVars("TUBENOTES_DEVSERVER_ADDR"),
				Value:       "127.0.0.1:5000",
				Destination: &cmd.addr,
			},
			&cli.StringFlag{
				Name:        "prefix",
				Usage:       "route prefix",
				Value:       devserver.DefaultPrefix,
				Destination: &cmd.prefix,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *DevServerCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.flags.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := devserver.NewServer(cmd.addr, cmd.prefix, devserver.NewStore())
	return srv.Run(ctx, func(addr string) {
		prefix := "/" + strings.Trim(cmd.prefix, "/")
		_, _ = fmt.Fprintf(c.Root().Writer, "dev server listening on http://%s%s\n", addr, prefix)
	})
}
