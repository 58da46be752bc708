package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/hay-kot/tubenotes/internal/core/logging"
	"github.com/hay-kot/tubenotes/internal/core/viewstate"
	"github.com/hay-kot/tubenotes/internal/tui/components"
)

// --- Input ---

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateShowingHelp:
		return m.handleHelpKey(msg)
	case stateShowingNotifications:
		return m.handleNotificationsKey(msg)
	case statePreviewingNote:
		return m.handleNotePreviewKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.setFocus(m.focus.next())
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.setFocus(m.focus.prev())
	case key.Matches(msg, m.keys.Notifications):
		w, h := m.dims()
		m.notificationModal = NewNotificationModal(m.notifyBus, w, h)
		m.state = stateShowingNotifications
		return m, nil
	case key.Matches(msg, m.keys.DismissToast):
		m.toastController.Dismiss()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	if m.focus.isList() {
		return m.handleListKey(msg)
	}
	return m.updateInput(msg)
}

func (m Model) handleListKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.QuitList):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.helpDialog = components.NewHelpDialog("Keyboard Shortcuts", m.keys.HelpSections())
		m.state = stateShowingHelp
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Reply):
		if m.focus == focusComments {
			return m, m.setFocus(focusReply)
		}
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	switch m.focus {
	case focusComments:
		m.selectedComment = clampIndex(m.selectedComment+delta, len(m.view.Comments))
	case focusNotes:
		m.selectedNote = clampIndex(m.selectedNote+delta, len(m.view.Notes))
	}
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return max(0, min(i, n-1))
}

// updateInput forwards msg to the focused field and mirrors a changed value
// into the matching draft. The search field queries on every change.
func (m Model) updateInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	field := m.input(m.focus)
	if field == nil {
		return m, nil
	}

	cmd, changed := field.Update(msg)
	if !changed {
		return m, cmd
	}

	value := field.Value()
	switch m.focus {
	case focusVideoRef:
		m.view = viewstate.SetVideoRef(m.view, value)
	case focusComment:
		m.view = viewstate.SetCommentDraft(m.view, value)
	case focusReply:
		m.view = viewstate.SetReplyDraft(m.view, value)
	case focusNoteContent:
		m.view = viewstate.SetNoteContentDraft(m.view, value)
	case focusNoteTags:
		m.view = viewstate.SetNoteTagsDraft(m.view, parseTags(value))
	case focusSearch:
		return m, tea.Batch(cmd, m.searchNotes(value))
	}
	return m, cmd
}

// submit runs the operation bound to enter on the focused element. Empty
// drafts are ignored without a request.
func (m Model) submit() (tea.Model, tea.Cmd) {
	d := m.view.Drafts

	switch m.focus {
	case focusVideoRef:
		return m.startLoad()
	case focusComment:
		if !viewstate.Submittable(d.Comment) {
			return m, nil
		}
		return m, m.postComment(d.VideoRef, d.Comment)
	case focusComments:
		return m, m.setFocus(focusReply)
	case focusReply:
		if !viewstate.Submittable(d.Reply) {
			return m, nil
		}
		c, ok := m.selectedCommentValue()
		if !ok {
			return m, m.notifyWarning("Select a comment to reply to")
		}
		return m, m.postReply(d.VideoRef, c.ID, d.Reply)
	case focusNoteContent, focusNoteTags:
		if !viewstate.Submittable(d.NoteContent) {
			return m, nil
		}
		return m, m.createNote(d.NoteContent, d.NoteTags)
	case focusSearch:
		return m, m.searchNotes(m.searchInput.Value())
	case focusNotes:
		if m.selectedNote < len(m.view.Notes) {
			w, h := m.dims()
			m.notePreview = NewNotePreview(m.view.Notes[m.selectedNote], w, h)
			m.state = statePreviewingNote
		}
		return m, nil
	}
	return m, nil
}

func (m Model) selectedCommentValue() (viewstate.Comment, bool) {
	if m.selectedComment < 0 || m.selectedComment >= len(m.view.Comments) {
		return viewstate.Comment{}, false
	}
	return m.view.Comments[m.selectedComment], true
}

// startLoad begins the video and comments fetch for the current reference.
// An empty reference is sent as is.
func (m Model) startLoad() (tea.Model, tea.Cmd) {
	ref := m.view.Drafts.VideoRef
	m.log.Info().Ctx(logging.WithVideoRef(m.context(), ref)).Msgf("Loading video with ID: %s", ref)

	m.view = viewstate.BeginLoad(m.view)
	return m, tea.Batch(m.fetchVideo(ref), m.spinner.Tick)
}

// --- Overlays ---

func (m Model) handleHelpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?", "enter":
		m.state = stateNormal
		m.helpDialog = nil
	}
	return m, nil
}

func (m Model) handleNotificationsKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.notificationModal.ScrollUp()
	case key.Matches(msg, m.keys.Down):
		m.notificationModal.ScrollDown()
	case msg.String() == "D":
		if err := m.notificationModal.Clear(); err != nil {
			m.log.Error().Err(err).Msg("failed to clear notifications")
			return m, m.notifyError("", "Failed to clear notifications: %v", err)
		}
	case msg.String() == "esc", msg.String() == "q", key.Matches(msg, m.keys.Notifications):
		m.state = stateNormal
		m.notificationModal = nil
	}
	return m, nil
}

func (m Model) handleNotePreviewKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.notePreview.ScrollUp()
	case key.Matches(msg, m.keys.Down):
		m.notePreview.ScrollDown()
	case msg.String() == "esc", msg.String() == "q", key.Matches(msg, m.keys.Submit):
		m.state = stateNormal
		m.notePreview = nil
	}
	return m, nil
}

// --- Remote results ---

func (m Model) handleVideoLoaded(msg videoLoadedMsg) (tea.Model, tea.Cmd) {
	m.view = viewstate.VideoLoaded(m.view, msg.video)
	return m, m.fetchComments(msg.ref)
}

func (m Model) handleCommentsLoaded(msg commentsLoadedMsg) (tea.Model, tea.Cmd) {
	m.view = viewstate.CommentsLoaded(m.view, msg.comments)
	m.view = viewstate.EndLoad(m.view)
	m.selectedComment = clampIndex(m.selectedComment, len(m.view.Comments))
	return m, nil
}

func (m Model) handleCommentPosted(msg commentPostedMsg) (tea.Model, tea.Cmd) {
	hadComments := len(m.view.Comments) > 0
	m.view = viewstate.CommentPosted(m.view, msg.comment)
	m.commentInput.SetValue(m.view.Drafts.Comment)

	// Keep the selection on the same comment after the prepend.
	if hadComments {
		m.selectedComment++
	}
	return m, nil
}

func (m Model) handleReplyPosted(msg replyPostedMsg) (tea.Model, tea.Cmd) {
	if m.view.CommentIndex(msg.commentID) < 0 {
		m.log.Debug().
			Ctx(logging.WithCommentID(logging.WithVideoRef(m.context(), msg.ref), msg.commentID)).
			Msg("reply target is not in the comment list")
	}
	m.view = viewstate.ReplyPosted(m.view, msg.commentID, msg.reply)
	m.replyInput.SetValue(m.view.Drafts.Reply)
	return m, nil
}

func (m Model) handleNoteCreated(msg noteCreatedMsg) (tea.Model, tea.Cmd) {
	m.view = viewstate.NoteCreated(m.view, msg.note)
	m.noteInput.SetValue(m.view.Drafts.NoteContent)
	m.tagsInput.SetValue("")
	return m, nil
}

func (m Model) handleNotesSearched(msg notesSearchedMsg) (tea.Model, tea.Cmd) {
	m.view = viewstate.NotesSearched(m.view, msg.notes)
	m.selectedNote = clampIndex(m.selectedNote, len(m.view.Notes))
	return m, nil
}

// handleOpFailed logs every failure. Only load failures reach the user, as an
// error toast; other failures leave state and drafts untouched.
func (m Model) handleOpFailed(msg opFailedMsg) (tea.Model, tea.Cmd) {
	ctx := m.context()
	if msg.ref != "" {
		ctx = logging.WithVideoRef(ctx, msg.ref)
	}
	if msg.commentID != "" {
		ctx = logging.WithCommentID(ctx, msg.commentID)
	}
	m.log.Error().Ctx(ctx).Err(msg.err).Str("op", msg.op).Msg("remote call failed")

	if !msg.isLoad() {
		return m, nil
	}

	m.view = viewstate.EndLoad(m.view)
	return m, m.notifyError(msg.ref, "Failed to load video or comments: %v", msg.err)
}

// --- Toasts ---

func (m Model) handleToastTick(_ toastTickMsg) (tea.Model, tea.Cmd) {
	m.toastController.Tick()
	if m.toastController.HasToasts() {
		return m, scheduleToastTick()
	}
	return m, nil
}

func (m Model) handleNotification(msg notificationMsg) (tea.Model, tea.Cmd) {
	m.notifyBus.Publish(m.context(), msg.notification)
	return m, m.ensureToastTick()
}
