package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/hay-kot/tubenotes/internal/core/api"
	"github.com/hay-kot/tubenotes/internal/core/viewstate"
)

// Result messages. Each carries the inputs of its request so the handler can
// log and notify against them.

type videoLoadedMsg struct {
	ref   string
	video viewstate.Video
}

type commentsLoadedMsg struct {
	ref      string
	comments []viewstate.Comment
}

type commentPostedMsg struct {
	ref     string
	comment viewstate.Comment
}

type replyPostedMsg struct {
	ref       string
	commentID string
	reply     viewstate.Reply
}

type noteCreatedMsg struct {
	note viewstate.Note
}

type notesSearchedMsg struct {
	term  string
	notes []viewstate.Note
}

// opFailedMsg reports a failed remote call. op is one of the api.Op* names.
type opFailedMsg struct {
	op        string
	ref       string
	commentID string
	err       error
}

func (msg opFailedMsg) isLoad() bool {
	return msg.op == api.OpFetchVideo || msg.op == api.OpFetchComments
}

func (m Model) fetchVideo(ref string) tea.Cmd {
	ctx, remote := m.context(), m.remote
	return func() tea.Msg {
		v, err := remote.FetchVideo(ctx, ref)
		if err != nil {
			return opFailedMsg{op: api.OpFetchVideo, ref: ref, err: err}
		}
		return videoLoadedMsg{ref: ref, video: v}
	}
}

func (m Model) fetchComments(ref string) tea.Cmd {
	ctx, remote := m.context(), m.remote
	return func() tea.Msg {
		cs, err := remote.FetchComments(ctx, ref)
		if err != nil {
			return opFailedMsg{op: api.OpFetchComments, ref: ref, err: err}
		}
		return commentsLoadedMsg{ref: ref, comments: cs}
	}
}

func (m Model) postComment(ref, text string) tea.Cmd {
	ctx, remote := m.context(), m.remote
	return func() tea.Msg {
		c, err := remote.CreateComment(ctx, ref, text)
		if err != nil {
			return opFailedMsg{op: api.OpCreateComment, ref: ref, err: err}
		}
		return commentPostedMsg{ref: ref, comment: c}
	}
}

func (m Model) postReply(ref, commentID, text string) tea.Cmd {
	ctx, remote := m.context(), m.remote
	return func() tea.Msg {
		r, err := remote.CreateReply(ctx, ref, commentID, text)
		if err != nil {
			return opFailedMsg{op: api.OpCreateReply, ref: ref, commentID: commentID, err: err}
		}
		return replyPostedMsg{ref: ref, commentID: commentID, reply: r}
	}
}

func (m Model) createNote(content string, tags []string) tea.Cmd {
	ctx, remote := m.context(), m.remote
	return func() tea.Msg {
		n, err := remote.CreateNote(ctx, content, tags)
		if err != nil {
			return opFailedMsg{op: api.OpCreateNote, err: err}
		}
		return noteCreatedMsg{note: n}
	}
}

func (m Model) searchNotes(term string) tea.Cmd {
	ctx, remote := m.context(), m.remote
	return func() tea.Msg {
		ns, err := remote.SearchNotes(ctx, term)
		if err != nil {
			return opFailedMsg{op: api.OpSearchNotes, err: err}
		}
		return notesSearchedMsg{term: term, notes: ns}
	}
}
