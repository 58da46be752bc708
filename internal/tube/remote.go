package tube

import (
	"context"

	"github.com/hay-kot/tubenotes/internal/core/api"
	"github.com/hay-kot/tubenotes/internal/core/logging"
	"github.com/hay-kot/tubenotes/internal/core/viewstate"
)

// Remote wraps an api.Client and translates wire payloads into view-state
// values. It holds no state of its own and is safe for concurrent use if the
// client is.
type Remote struct {
	client api.Client
}

func NewRemote(client api.Client) *Remote {
	return &Remote{client: client}
}

func (r *Remote) FetchVideo(ctx context.Context, ref string) (viewstate.Video, error) {
	ctx = logging.WithVideoRef(ctx, ref)
	v, err := r.client.FetchVideo(ctx, ref)
	if err != nil {
		return viewstate.Video{}, err
	}
	return toVideo(v), nil
}

func (r *Remote) FetchComments(ctx context.Context, ref string) ([]viewstate.Comment, error) {
	ctx = logging.WithVideoRef(ctx, ref)
	cs, err := r.client.FetchComments(ctx, ref)
	if err != nil {
		return nil, err
	}

	out := make([]viewstate.Comment, len(cs))
	for i, c := range cs {
		out[i] = toComment(c)
	}
	return out, nil
}

func (r *Remote) CreateComment(ctx context.Context, ref, text string) (viewstate.Comment, error) {
	ctx = logging.WithVideoRef(ctx, ref)
	c, err := r.client.CreateComment(ctx, ref, text)
	if err != nil {
		return viewstate.Comment{}, err
	}
	return viewstate.Comment{
		ID:      c.ID,
		Text:    c.Snippet.TextDisplay,
		Replies: []viewstate.Reply{},
	}, nil
}

func (r *Remote) CreateReply(ctx context.Context, ref, commentID, text string) (viewstate.Reply, error) {
	ctx = logging.WithCommentID(logging.WithVideoRef(ctx, ref), commentID)
	s, err := r.client.CreateReply(ctx, ref, commentID, text)
	if err != nil {
		return viewstate.Reply{}, err
	}
	return viewstate.Reply{Text: s.TextDisplay}, nil
}

func (r *Remote) CreateNote(ctx context.Context, content string, tags []string) (viewstate.Note, error) {
	n, err := r.client.CreateNote(ctx, content, tags)
	if err != nil {
		return viewstate.Note{}, err
	}
	return toNote(n), nil
}

func (r *Remote) SearchNotes(ctx context.Context, term string) ([]viewstate.Note, error) {
	ns, err := r.client.SearchNotes(ctx, term)
	if err != nil {
		return nil, err
	}

	out := make([]viewstate.Note, len(ns))
	for i, n := range ns {
		out[i] = toNote(n)
	}
	return out, nil
}

func toVideo(v api.Video) viewstate.Video {
	return viewstate.Video{
		Title:        v.Title,
		Description:  v.Description,
		ThumbnailURL: v.ThumbnailURL,
		ViewCount:    int64(v.Views),
	}
}

func toComment(c api.Comment) viewstate.Comment {
	replies := make([]viewstate.Reply, len(c.Replies))
	for i, s := range c.Replies {
		replies[i] = viewstate.Reply{Text: s.TextDisplay}
	}
	return viewstate.Comment{
		ID:      c.ID,
		Text:    c.Snippet.TextDisplay,
		Replies: replies,
	}
}

func toNote(n api.Note) viewstate.Note {
	return viewstate.Note{
		ID:      n.ID,
		Content: n.Content,
		Tags:    n.Tags,
	}
}
