package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tubenotes/internal/core/logging"
	"github.com/hay-kot/tubenotes/internal/core/viewstate"
	"github.com/hay-kot/tubenotes/internal/tube"
)

type VideoCmd struct {
	flags *Flags
	app   *App
}

func NewVideoCmd(flags *Flags, app *App) *VideoCmd {
	return &VideoCmd{flags: flags, app: app}
}

// Register adds the video command to the application.
func (cmd *VideoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "video",
		Usage: "Inspect videos",
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Load a video and its comments",
				UsageText: "tubenotes video show <video-ref>",
				Description: `Fetches the video, then its comments, and prints both as JSON.

If the comments request fails after the video loaded, the error output names
the "comments" stage.

Examples:
  tubenotes video show abc123
  tubenotes --api-url http://127.0.0.1:5000/api video show abc123`,
				Action: cmd.runShow,
			},
		},
	})

	return app
}

type videoOutput struct {
	Ref      string              `json:"ref"`
	Video    *viewstate.Video    `json:"video"`
	Comments []viewstate.Comment `json:"comments"`
}

func (cmd *VideoCmd) runShow(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one video reference, got %d arguments", c.Args().Len())
	}
	ref := c.Args().Get(0)

	sync, err := cmd.app.Synchronizer(ctx, cmd.flags.Config)
	if err != nil {
		return err
	}
	sync.SetVideoRef(ref)

	if err := sync.LoadVideo(ctx); err != nil {
		var loadErr *tube.LoadError
		if errors.As(err, &loadErr) {
			cmd.app.Bus.Errorf(logging.WithVideoRef(ctx, ref), "Failed to load video or comments: %v", loadErr.Err)
		}
		return fail(c, "failed to load video or comments", err, map[string]any{"video_ref": ref})
	}

	st := sync.State()
	comments := st.Comments
	if comments == nil {
		comments = []viewstate.Comment{}
	}
	return writeResult(c, videoOutput{Ref: ref, Video: st.Video, Comments: comments})
}
