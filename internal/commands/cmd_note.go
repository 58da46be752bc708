package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tubenotes/internal/core/viewstate"
	"github.com/hay-kot/tubenotes/internal/tube"
	"github.com/hay-kot/tubenotes/pkg/iojson"
)

// NoteInput is the JSON accepted by `note add --file`.
type NoteInput struct {
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type NoteCmd struct {
	flags *Flags
	app   *App
	fr    *iojson.FileReader[NoteInput]

	tags []string
}

func NewNoteCmd(flags *Flags, app *App) *NoteCmd {
	return &NoteCmd{
		flags: flags,
		app:   app,
		fr:    &iojson.FileReader[NoteInput]{},
	}
}

// Register adds the note command to the application.
func (cmd *NoteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "note",
		Usage: "Create and search notes",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Create a note",
				UsageText: `tubenotes note add [options] <content>

Read from stdin:
  echo '{"content":"Pure reducers","tags":["go"]}' | tubenotes note add

Read from file:
  tubenotes note add -f note.json`,
				Description: `Creates a note from the content argument, or from JSON input when no
argument is given. Tags from --tag are appended to any tags in the input.

Input JSON schema:
  {"content": "note text", "tags": ["optional", "tags"]}`,
				Flags: []cli.Flag{
					cmd.fr.Flag(),
					&cli.StringSliceFlag{
						Name:        "tag",
						Aliases:     []string{"t"},
						Usage:       "tag to attach (repeatable)",
						Destination: &cmd.tags,
					},
				},
				Action: cmd.runAdd,
			},
			{
				Name:      "search",
				Usage:     "Search notes by content or tag",
				UsageText: "tubenotes note search [term]",
				Description: `Prints the notes matching term as a JSON array. An empty or missing term
is sent as is; the backend decides what it matches.`,
				Action: cmd.runSearch,
			},
		},
	})

	return app
}

func (cmd *NoteCmd) runAdd(ctx context.Context, c *cli.Command) error {
	input, err := cmd.readInput(c)
	if err != nil {
		return err
	}

	sync, err := cmd.app.Synchronizer(ctx, cmd.flags.Config)
	if err != nil {
		return err
	}
	sync.SetNoteDraft(input.Content, append(input.Tags, cmd.tags...))

	if err := sync.CreateNote(ctx); err != nil {
		if errors.Is(err, tube.ErrEmptyDraft) {
			return errors.New("note content is empty")
		}
		return fail(c, "failed to create note", err, nil)
	}

	notes := sync.State().Notes
	created := notes[len(notes)-1]
	cmd.app.Bus.Infof(ctx, "Note %s saved", created.ID)
	return writeResult(c, created)
}

func (cmd *NoteCmd) readInput(c *cli.Command) (NoteInput, error) {
	switch c.Args().Len() {
	case 0:
		input, err := cmd.fr.Read()
		if err != nil {
			return NoteInput{}, fmt.Errorf("read input: %w", err)
		}
		return input, nil
	case 1:
		return NoteInput{Content: c.Args().Get(0)}, nil
	default:
		return NoteInput{}, fmt.Errorf("expected at most one content argument, got %d", c.Args().Len())
	}
}

func (cmd *NoteCmd) runSearch(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() > 1 {
		return fmt.Errorf("expected at most one search term, got %d arguments", c.Args().Len())
	}
	term := c.Args().Get(0)

	sync, err := cmd.app.Synchronizer(ctx, cmd.flags.Config)
	if err != nil {
		return err
	}

	if err := sync.SearchNotes(ctx, term); err != nil {
		return fail(c, "failed to search notes", err, map[string]any{"term": term})
	}

	notes := sync.State().Notes
	if notes == nil {
		notes = []viewstate.Note{}
	}
	return writeResult(c, notes)
}
