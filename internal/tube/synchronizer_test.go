package tube

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/tubenotes/internal/core/api"
	"github.com/hay-kot/tubenotes/internal/core/viewstate"
)

type call struct {
	op   string
	args []string
}

// fakeClient returns canned responses and records every call.
type fakeClient struct {
	calls []call

	video       api.Video
	videoErr    error
	comments    []api.Comment
	commentsErr error
	comment     api.Comment
	commentErr  error
	reply       api.Snippet
	replyErr    error
	note        api.Note
	noteErr     error
	notes       []api.Note
	notesErr    error

	// observed from inside FetchVideo
	onFetchVideo func()
}

func (f *fakeClient) record(op string, args ...string) {
	f.calls = append(f.calls, call{op: op, args: args})
}

func (f *fakeClient) FetchVideo(_ context.Context, id string) (api.Video, error) {
	f.record(api.OpFetchVideo, id)
	if f.onFetchVideo != nil {
		f.onFetchVideo()
	}
	return f.video, f.videoErr
}

func (f *fakeClient) FetchComments(_ context.Context, id string) ([]api.Comment, error) {
	f.record(api.OpFetchComments, id)
	return f.comments, f.commentsErr
}

func (f *fakeClient) CreateComment(_ context.Context, id, text string) (api.Comment, error) {
	f.record(api.OpCreateComment, id, text)
	return f.comment, f.commentErr
}

func (f *fakeClient) CreateReply(_ context.Context, id, commentID, text string) (api.Snippet, error) {
	f.record(api.OpCreateReply, id, commentID, text)
	return f.reply, f.replyErr
}

func (f *fakeClient) CreateNote(_ context.Context, content string, tags []string) (api.Note, error) {
	f.record(api.OpCreateNote, append([]string{content}, tags...)...)
	return f.note, f.noteErr
}

func (f *fakeClient) SearchNotes(_ context.Context, term string) ([]api.Note, error) {
	f.record(api.OpSearchNotes, term)
	return f.notes, f.notesErr
}

func newSync(fc *fakeClient) *Synchronizer {
	return NewSynchronizer(NewRemote(fc), zerolog.Nop())
}

func TestLoadVideo(t *testing.T) {
	fc := &fakeClient{
		video: api.Video{Title: "T", Views: 10},
		comments: []api.Comment{
			{ID: "c1", Snippet: api.Snippet{TextDisplay: "hi"}, Replies: []api.Snippet{}},
		},
	}
	s := newSync(fc)
	s.SetVideoRef("abc123")

	var loadingDuring bool
	fc.onFetchVideo = func() { loadingDuring = s.state.Loading }

	require.NoError(t, s.LoadVideo(context.Background()))

	st := s.State()
	assert.True(t, loadingDuring)
	assert.False(t, st.Loading)
	require.NotNil(t, st.Video)
	assert.Equal(t, "T", st.Video.Title)
	assert.Equal(t, int64(10), st.Video.ViewCount)
	assert.Equal(t, []viewstate.Comment{{ID: "c1", Text: "hi", Replies: []viewstate.Reply{}}}, st.Comments)
	assert.Equal(t, []call{
		{op: api.OpFetchVideo, args: []string{"abc123"}},
		{op: api.OpFetchComments, args: []string{"abc123"}},
	}, fc.calls)
}

func TestLoadVideo_EmptyRefStillRequests(t *testing.T) {
	fc := &fakeClient{}
	s := newSync(fc)

	require.NoError(t, s.LoadVideo(context.Background()))
	require.Len(t, fc.calls, 2)
	assert.Equal(t, []string{""}, fc.calls[0].args)
}

func TestLoadVideo_VideoFailure(t *testing.T) {
	boom := errors.New("boom")
	fc := &fakeClient{videoErr: boom}
	s := newSync(fc)
	s.SetVideoRef("missing")

	err := s.LoadVideo(context.Background())
	require.ErrorIs(t, err, boom)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, StageVideo, le.Stage)
	assert.Equal(t, "missing", le.Ref)

	st := s.State()
	assert.False(t, st.Loading)
	assert.Nil(t, st.Video)
	// comments are not requested once the video fails
	assert.Len(t, fc.calls, 1)
}

func TestLoadVideo_CommentsFailureKeepsVideoAndOldComments(t *testing.T) {
	fc := &fakeClient{
		video:    api.Video{Title: "first"},
		comments: []api.Comment{{ID: "old", Snippet: api.Snippet{TextDisplay: "old"}}},
	}
	s := newSync(fc)
	s.SetVideoRef("a")
	require.NoError(t, s.LoadVideo(context.Background()))

	fc.video = api.Video{Title: "second"}
	fc.commentsErr = errors.New("down")
	s.SetVideoRef("b")

	err := s.LoadVideo(context.Background())
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, StageComments, le.Stage)

	st := s.State()
	assert.False(t, st.Loading)
	assert.Equal(t, "second", st.Video.Title)
	require.Len(t, st.Comments, 1)
	assert.Equal(t, "old", st.Comments[0].ID)
}

func TestPostComment(t *testing.T) {
	fc := &fakeClient{
		video:    api.Video{Title: "T"},
		comments: []api.Comment{{ID: "c1", Snippet: api.Snippet{TextDisplay: "first"}}},
		comment:  api.Comment{ID: "c2", Snippet: api.Snippet{TextDisplay: "new"}},
	}
	s := newSync(fc)
	s.SetVideoRef("abc123")
	require.NoError(t, s.LoadVideo(context.Background()))

	s.SetCommentDraft("new")
	require.NoError(t, s.PostComment(context.Background()))

	st := s.State()
	require.Len(t, st.Comments, 2)
	assert.Equal(t, viewstate.Comment{ID: "c2", Text: "new", Replies: []viewstate.Reply{}}, st.Comments[0])
	assert.Equal(t, "c1", st.Comments[1].ID)
	assert.Empty(t, st.Drafts.Comment)
	assert.Equal(t, call{op: api.OpCreateComment, args: []string{"abc123", "new"}}, fc.calls[len(fc.calls)-1])
}

func TestPostComment_EmptyDraftIsNoop(t *testing.T) {
	fc := &fakeClient{}
	s := newSync(fc)
	s.SetVideoRef("abc123")
	before := s.State()

	err := s.PostComment(context.Background())
	require.ErrorIs(t, err, ErrEmptyDraft)
	assert.Empty(t, fc.calls)
	assert.Equal(t, before, s.State())
}

func TestPostComment_WhitespaceIsSent(t *testing.T) {
	fc := &fakeClient{comment: api.Comment{ID: "c1", Snippet: api.Snippet{TextDisplay: "  "}}}
	s := newSync(fc)
	s.SetCommentDraft("  ")

	require.NoError(t, s.PostComment(context.Background()))
	assert.Len(t, fc.calls, 1)
}

func TestPostComment_FailureKeepsDraft(t *testing.T) {
	fc := &fakeClient{commentErr: &api.StatusError{StatusCode: 500}}
	s := newSync(fc)
	s.SetCommentDraft("keep me")

	err := s.PostComment(context.Background())
	require.Error(t, err)
	assert.Equal(t, 500, api.StatusCode(err))

	st := s.State()
	assert.Equal(t, "keep me", st.Drafts.Comment)
	assert.Empty(t, st.Comments)
}

func TestPostReply(t *testing.T) {
	fc := &fakeClient{
		comments: []api.Comment{
			{ID: "c1", Snippet: api.Snippet{TextDisplay: "one"}, Replies: []api.Snippet{{TextDisplay: "r0"}}},
			{ID: "c2", Snippet: api.Snippet{TextDisplay: "two"}},
		},
		reply: api.Snippet{TextDisplay: "r1"},
	}
	s := newSync(fc)
	s.SetVideoRef("abc123")
	require.NoError(t, s.LoadVideo(context.Background()))

	s.SetReplyDraft("r1")
	reply, err := s.PostReply(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, viewstate.Reply{Text: "r1"}, reply)

	st := s.State()
	assert.Equal(t, []viewstate.Reply{{Text: "r0"}, {Text: "r1"}}, st.Comments[0].Replies)
	assert.Empty(t, st.Comments[1].Replies)
	assert.Empty(t, st.Drafts.Reply)
	assert.Equal(t, call{op: api.OpCreateReply, args: []string{"abc123", "c1", "r1"}}, fc.calls[len(fc.calls)-1])
}

func TestPostReply_ReturnsServerText(t *testing.T) {
	fc := &fakeClient{
		comments: []api.Comment{{ID: "c1", Snippet: api.Snippet{TextDisplay: "one"}}},
		reply:    api.Snippet{TextDisplay: "thanks &amp; bye"},
	}
	s := newSync(fc)
	require.NoError(t, s.LoadVideo(context.Background()))

	s.SetReplyDraft("thanks & bye")
	reply, err := s.PostReply(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, "thanks &amp; bye", reply.Text)
	assert.Equal(t, []viewstate.Reply{reply}, s.State().Comments[0].Replies)
}

func TestPostReply_UnknownCommentOnlyClearsDraft(t *testing.T) {
	fc := &fakeClient{
		comments: []api.Comment{{ID: "c1", Snippet: api.Snippet{TextDisplay: "one"}}},
		reply:    api.Snippet{TextDisplay: "r"},
	}
	s := newSync(fc)
	require.NoError(t, s.LoadVideo(context.Background()))

	s.SetReplyDraft("r")
	reply, err := s.PostReply(context.Background(), "gone")
	require.NoError(t, err)
	assert.Equal(t, "r", reply.Text)

	st := s.State()
	assert.Empty(t, st.Drafts.Reply)
	assert.Empty(t, st.Comments[0].Replies)
	assert.Equal(t, api.OpCreateReply, fc.calls[len(fc.calls)-1].op)
}

func TestPostReply_EmptyDraftIsNoop(t *testing.T) {
	fc := &fakeClient{}
	s := newSync(fc)

	_, err := s.PostReply(context.Background(), "c1")
	require.ErrorIs(t, err, ErrEmptyDraft)
	assert.Empty(t, fc.calls)
}

func TestCreateNote(t *testing.T) {
	fc := &fakeClient{note: api.Note{ID: "n1", Content: "remember", Tags: []string{"a", "b"}}}
	s := newSync(fc)
	s.SetNoteDraft("remember", []string{"a", "b"})

	require.NoError(t, s.CreateNote(context.Background()))

	st := s.State()
	assert.Equal(t, []viewstate.Note{{ID: "n1", Content: "remember", Tags: []string{"a", "b"}}}, st.Notes)
	assert.Empty(t, st.Drafts.NoteContent)
	assert.Empty(t, st.Drafts.NoteTags)
	assert.Equal(t, call{op: api.OpCreateNote, args: []string{"remember", "a", "b"}}, fc.calls[0])

	// drafts are now empty, so a second call sends nothing
	require.ErrorIs(t, s.CreateNote(context.Background()), ErrEmptyDraft)
	assert.Len(t, fc.calls, 1)
}

func TestCreateNote_FailureKeepsDrafts(t *testing.T) {
	fc := &fakeClient{noteErr: errors.New("nope")}
	s := newSync(fc)
	s.SetNoteDraft("x", []string{"t"})

	require.Error(t, s.CreateNote(context.Background()))

	st := s.State()
	assert.Equal(t, "x", st.Drafts.NoteContent)
	assert.Equal(t, []string{"t"}, st.Drafts.NoteTags)
	assert.Empty(t, st.Notes)
}

func TestSearchNotes(t *testing.T) {
	fc := &fakeClient{note: api.Note{ID: "n1", Content: "first"}}
	s := newSync(fc)
	s.SetNoteDraft("first", nil)
	require.NoError(t, s.CreateNote(context.Background()))

	fc.notes = []api.Note{{ID: "n2", Content: "go"}, {ID: "n3", Content: "golang"}}
	require.NoError(t, s.SearchNotes(context.Background(), "go"))

	st := s.State()
	require.Len(t, st.Notes, 2)
	assert.Equal(t, "n2", st.Notes[0].ID)
	assert.Equal(t, "n3", st.Notes[1].ID)
}

func TestSearchNotes_EmptyResultClearsList(t *testing.T) {
	fc := &fakeClient{notes: []api.Note{{ID: "n1"}}}
	s := newSync(fc)
	require.NoError(t, s.SearchNotes(context.Background(), ""))
	require.Len(t, s.State().Notes, 1)

	fc.notes = nil
	require.NoError(t, s.SearchNotes(context.Background(), "zzz"))
	assert.NotNil(t, s.State().Notes)
	assert.Empty(t, s.State().Notes)
	assert.Equal(t, []string{""}, fc.calls[0].args)
}

func TestSearchNotes_FailureKeepsList(t *testing.T) {
	fc := &fakeClient{notes: []api.Note{{ID: "n1"}}}
	s := newSync(fc)
	require.NoError(t, s.SearchNotes(context.Background(), ""))

	fc.notesErr = errors.New("down")
	require.Error(t, s.SearchNotes(context.Background(), "x"))
	assert.Len(t, s.State().Notes, 1)
}
