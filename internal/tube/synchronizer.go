// Package tube runs the page's operations against the backend and folds the
// responses into a view state.
package tube

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/hay-kot/tubenotes/internal/core/logging"
	"github.com/hay-kot/tubenotes/internal/core/viewstate"
)

// ErrEmptyDraft is returned when an operation is invoked with nothing to
// submit. No request is sent and the state is untouched.
var ErrEmptyDraft = errors.New("nothing to submit")

// LoadError reports a failed LoadVideo. Stage names the request that failed;
// if it is StageComments the video was already replaced.
type LoadError struct {
	Ref   string
	Stage string
	Err   error
}

const (
	StageVideo    = "video"
	StageComments = "comments"
)

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s for %q: %v", e.Stage, e.Ref, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Synchronizer owns one view state and runs operations against it one at a
// time. Each method blocks until the backend has answered and the response
// has been applied. It is not safe for concurrent use.
type Synchronizer struct {
	remote *Remote
	state  viewstate.State
	log    zerolog.Logger
}

func NewSynchronizer(remote *Remote, logger zerolog.Logger) *Synchronizer {
	return &Synchronizer{
		remote: remote,
		log:    logger,
	}
}

// State returns a copy of the current state.
func (s *Synchronizer) State() viewstate.State {
	st := s.state
	st.Comments = slices.Clone(st.Comments)
	st.Notes = slices.Clone(st.Notes)
	return st
}

func (s *Synchronizer) SetVideoRef(ref string) {
	s.state = viewstate.SetVideoRef(s.state, ref)
}

func (s *Synchronizer) SetCommentDraft(text string) {
	s.state = viewstate.SetCommentDraft(s.state, text)
}

func (s *Synchronizer) SetReplyDraft(text string) {
	s.state = viewstate.SetReplyDraft(s.state, text)
}

func (s *Synchronizer) SetNoteDraft(content string, tags []string) {
	s.state = viewstate.SetNoteContentDraft(s.state, content)
	s.state = viewstate.SetNoteTagsDraft(s.state, tags)
}

// LoadVideo fetches the video for the current reference, then its comments.
// A failure of either request is returned as a *LoadError; whatever was
// applied before the failure stays applied.
func (s *Synchronizer) LoadVideo(ctx context.Context) error {
	ref := s.state.Drafts.VideoRef
	ctx = logging.WithVideoRef(ctx, ref)
	s.log.Info().Ctx(ctx).Msgf("Loading video with ID: %s", ref)

	s.state = viewstate.BeginLoad(s.state)
	defer func() { s.state = viewstate.EndLoad(s.state) }()

	video, err := s.remote.FetchVideo(ctx, ref)
	if err != nil {
		return s.loadFailed(ctx, ref, StageVideo, err)
	}
	s.state = viewstate.VideoLoaded(s.state, video)

	comments, err := s.remote.FetchComments(ctx, ref)
	if err != nil {
		return s.loadFailed(ctx, ref, StageComments, err)
	}
	s.state = viewstate.CommentsLoaded(s.state, comments)

	return nil
}

func (s *Synchronizer) loadFailed(ctx context.Context, ref, stage string, err error) error {
	s.log.Error().Ctx(ctx).Err(err).Str("stage", stage).Msg("failed to load video or comments")
	return &LoadError{Ref: ref, Stage: stage, Err: err}
}

// PostComment submits the comment draft for the current video.
func (s *Synchronizer) PostComment(ctx context.Context) error {
	ref, text := s.state.Drafts.VideoRef, s.state.Drafts.Comment
	if !viewstate.Submittable(text) {
		return ErrEmptyDraft
	}
	ctx = logging.WithVideoRef(ctx, ref)

	c, err := s.remote.CreateComment(ctx, ref, text)
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Msg("failed to post comment")
		return fmt.Errorf("post comment: %w", err)
	}

	s.state = viewstate.CommentPosted(s.state, c)
	return nil
}

// PostReply submits the shared reply draft as a reply to commentID. The
// request is sent even if commentID is not in the current comment list; the
// response then changes nothing but the draft. The reply returned is the one
// the backend sent back.
func (s *Synchronizer) PostReply(ctx context.Context, commentID string) (viewstate.Reply, error) {
	ref, text := s.state.Drafts.VideoRef, s.state.Drafts.Reply
	if !viewstate.Submittable(text) {
		return viewstate.Reply{}, ErrEmptyDraft
	}
	ctx = logging.WithCommentID(logging.WithVideoRef(ctx, ref), commentID)

	r, err := s.remote.CreateReply(ctx, ref, commentID, text)
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Msg("failed to post reply")
		return viewstate.Reply{}, fmt.Errorf("post reply: %w", err)
	}

	s.state = viewstate.ReplyPosted(s.state, commentID, r)
	return r, nil
}

// CreateNote submits the note drafts.
func (s *Synchronizer) CreateNote(ctx context.Context) error {
	content, tags := s.state.Drafts.NoteContent, s.state.Drafts.NoteTags
	if !viewstate.Submittable(content) {
		return ErrEmptyDraft
	}

	n, err := s.remote.CreateNote(ctx, content, tags)
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Msg("failed to create note")
		return fmt.Errorf("create note: %w", err)
	}

	s.state = viewstate.NoteCreated(s.state, n)
	return nil
}

// SearchNotes replaces the note list with the notes matching term. An empty
// term is forwarded as is.
func (s *Synchronizer) SearchNotes(ctx context.Context, term string) error {
	notes, err := s.remote.SearchNotes(ctx, term)
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Str("term", term).Msg("failed to search notes")
		return fmt.Errorf("search notes: %w", err)
	}

	s.state = viewstate.NotesSearched(s.state, notes)
	return nil
}
