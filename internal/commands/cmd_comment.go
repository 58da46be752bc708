package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tubenotes/internal/core/logging"
	"github.com/hay-kot/tubenotes/internal/tube"
)

type CommentCmd struct {
	flags *Flags
	app   *App
}

func NewCommentCmd(flags *Flags, app *App) *CommentCmd {
	return &CommentCmd{flags: flags, app: app}
}

// Register adds the comment and reply commands to the application.
func (cmd *CommentCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:  "comment",
			Usage: "Post comments on a video",
			Commands: []*cli.Command{
				{
					Name:      "add",
					Usage:     "Post a top-level comment",
					UsageText: "tubenotes comment add <video-ref> <text>",
					Action:    cmd.runAddComment,
				},
			},
		},
		&cli.Command{
			Name:  "reply",
			Usage: "Reply to comments",
			Commands: []*cli.Command{
				{
					Name:      "add",
					Usage:     "Reply to a comment",
					UsageText: "tubenotes reply add <video-ref> <comment-id> <text>",
					Description: `Posts a reply to the given comment. The comment does not need to have
been listed first; the backend decides whether it exists.`,
					Action: cmd.runAddReply,
				},
			},
		},
	)

	return app
}

type replyOutput struct {
	CommentID string `json:"comment_id"`
	Text      string `json:"text"`
}

func (cmd *CommentCmd) runAddComment(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected <video-ref> <text>, got %d arguments", c.Args().Len())
	}
	ref, text := c.Args().Get(0), c.Args().Get(1)

	sync, err := cmd.app.Synchronizer(ctx, cmd.flags.Config)
	if err != nil {
		return err
	}
	sync.SetVideoRef(ref)
	sync.SetCommentDraft(text)

	if err := sync.PostComment(ctx); err != nil {
		if errors.Is(err, tube.ErrEmptyDraft) {
			return errors.New("comment text is empty")
		}
		return fail(c, "failed to post comment", err, map[string]any{"video_ref": ref})
	}

	posted := sync.State().Comments[0]
	cmd.app.Bus.Infof(logging.WithVideoRef(ctx, ref), "Comment %s posted", posted.ID)
	return writeResult(c, posted)
}

func (cmd *CommentCmd) runAddReply(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 3 {
		return fmt.Errorf("expected <video-ref> <comment-id> <text>, got %d arguments", c.Args().Len())
	}
	ref, commentID, text := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	sync, err := cmd.app.Synchronizer(ctx, cmd.flags.Config)
	if err != nil {
		return err
	}
	sync.SetVideoRef(ref)
	sync.SetReplyDraft(text)

	reply, err := sync.PostReply(ctx, commentID)
	if err != nil {
		if errors.Is(err, tube.ErrEmptyDraft) {
			return errors.New("reply text is empty")
		}
		return fail(c, "failed to post reply", err, map[string]any{"video_ref": ref, "comment_id": commentID})
	}

	cmd.app.Bus.Infof(logging.WithVideoRef(ctx, ref), "Reply to %s posted", commentID)
	return writeResult(c, replyOutput{CommentID: commentID, Text: reply.Text})
}
