// Package tui is the interactive video page: a video header, the comment tree
// and the note list, each backed by the shared view state.
package tui

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/hay-kot/tubenotes/internal/core/logging"
	"github.com/hay-kot/tubenotes/internal/core/notify"
	"github.com/hay-kot/tubenotes/internal/core/styles"
	"github.com/hay-kot/tubenotes/internal/core/viewstate"
	"github.com/hay-kot/tubenotes/internal/tube"
	"github.com/hay-kot/tubenotes/internal/tui/components"
	"github.com/hay-kot/tubenotes/internal/tui/components/form"
	tuinotify "github.com/hay-kot/tubenotes/internal/tui/notify"
)

// UIState represents which overlay, if any, owns the keyboard.
type UIState int

const (
	stateNormal UIState = iota
	stateShowingHelp
	stateShowingNotifications
	statePreviewingNote
)

// focus identifies the element that receives key presses in stateNormal.
type focus int

const (
	focusVideoRef focus = iota
	focusComment
	focusComments
	focusReply
	focusNoteContent
	focusNoteTags
	focusSearch
	focusNotes
	focusCount
)

func (f focus) next() focus { return (f + 1) % focusCount }
func (f focus) prev() focus { return (f + focusCount - 1) % focusCount }

func (f focus) isList() bool {
	return f == focusComments || f == focusNotes
}

// Options configures the TUI.
type Options struct {
	Context    context.Context // parent context for remote calls; defaults to Background
	Remote     *tube.Remote
	Bus        *tuinotify.Bus // notification bus; a history-less bus is created when nil
	Logger     *zerolog.Logger
	InitialRef string // loaded on start when set
}

// Model is the Bubble Tea model for the video page.
type Model struct {
	ctx    context.Context
	remote *tube.Remote
	log    zerolog.Logger
	keys   KeyMap
	state  UIState
	view   viewstate.State
	focus  focus

	refInput     *form.TextField
	commentInput *form.TextField
	replyInput   *form.TextField
	noteInput    *form.TextField
	tagsInput    *form.TextField
	searchInput  *form.TextField

	selectedComment int
	selectedNote    int

	spinner         spinner.Model
	notifyBus       *tuinotify.Bus
	toastController *ToastController
	toastView       *ToastView

	helpDialog        *components.HelpDialog
	notificationModal *NotificationModal
	notePreview       *NotePreview

	initialRef string
	width      int
	height     int
	quitting   bool
}

// loadRequestedMsg starts a load of the current video reference.
type loadRequestedMsg struct{}

// notificationMsg carries a notification from an async tea.Cmd into the Update loop.
type notificationMsg struct {
	notification notify.Notification
}

// New creates the page model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.Component("tui")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	bus := opts.Bus
	if bus == nil {
		bus = tuinotify.NewBus(nil)
	}
	toastCtrl := NewToastController()
	bus.Subscribe(func(n notify.Notification) {
		toastCtrl.Push(n)
	})

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.LoadingStyle

	m := Model{
		ctx:             ctx,
		remote:          opts.Remote,
		log:             logger,
		keys:            DefaultKeyMap(),
		refInput:        form.NewTextField("Video ID", "e.g. dQw4w9WgXcQ"),
		commentInput:    form.NewTextField("Add a comment", "write a comment and press enter"),
		replyInput:      form.NewTextField("Reply", "reply to the selected comment"),
		noteInput:       form.NewTextField("Note", "markdown welcome"),
		tagsInput:       form.NewTextField("Tags", "comma separated"),
		searchInput:     form.NewTextField("Search notes", "type to filter"),
		spinner:         s,
		notifyBus:       bus,
		toastController: toastCtrl,
		toastView:       NewToastView(toastCtrl),
		initialRef:      opts.InitialRef,
	}

	if opts.InitialRef != "" {
		m.view = viewstate.SetVideoRef(m.view, opts.InitialRef)
		m.refInput.SetValue(opts.InitialRef)
	}
	m.refInput.Focus()

	return m
}

// Init starts the initial load when a video reference was given.
func (m Model) Init() tea.Cmd {
	if m.initialRef == "" {
		return nil
	}
	return func() tea.Msg { return loadRequestedMsg{} }
}

// State returns the current view state.
func (m Model) State() viewstate.State {
	return m.view
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		if !m.view.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case toastTickMsg:
		return m.handleToastTick(msg)
	case notificationMsg:
		return m.handleNotification(msg)

	// Remote results
	case loadRequestedMsg:
		return m.startLoad()
	case videoLoadedMsg:
		return m.handleVideoLoaded(msg)
	case commentsLoadedMsg:
		return m.handleCommentsLoaded(msg)
	case commentPostedMsg:
		return m.handleCommentPosted(msg)
	case replyPostedMsg:
		return m.handleReplyPosted(msg)
	case noteCreatedMsg:
		return m.handleNoteCreated(msg)
	case notesSearchedMsg:
		return m.handleNotesSearched(msg)
	case opFailedMsg:
		return m.handleOpFailed(msg)
	}

	return m, nil
}

// input returns the text field for f, or nil for the lists.
func (m Model) input(f focus) *form.TextField {
	switch f {
	case focusVideoRef:
		return m.refInput
	case focusComment:
		return m.commentInput
	case focusReply:
		return m.replyInput
	case focusNoteContent:
		return m.noteInput
	case focusNoteTags:
		return m.tagsInput
	case focusSearch:
		return m.searchInput
	}
	return nil
}

func (m *Model) setFocus(f focus) tea.Cmd {
	if field := m.input(m.focus); field != nil {
		field.Blur()
	}
	m.focus = f
	if field := m.input(f); field != nil {
		return field.Focus()
	}
	return nil
}

func (m *Model) resizeInputs() {
	full, half := m.columnWidths()
	m.refInput.SetWidth(full - 6)
	for _, f := range []*form.TextField{m.commentInput, m.replyInput, m.noteInput, m.tagsInput, m.searchInput} {
		f.SetWidth(half - 6)
	}
}

// context returns the model's context, tolerating a zero Model.
func (m Model) context() context.Context {
	if m.ctx == nil {
		return context.Background()
	}
	return m.ctx
}

// ensureToastTick returns a tick command when there are active toasts.
// Tick() uses absolute time, so overlapping tick chains are harmless.
func (m *Model) ensureToastTick() tea.Cmd {
	if m.toastController.HasToasts() {
		return scheduleToastTick()
	}
	return nil
}

// notifyError publishes an error-level notification scoped to ref and
// returns a command to start the toast tick timer if needed.
func (m *Model) notifyError(ref string, format string, args ...any) tea.Cmd {
	m.notifyBus.Errorf(logging.WithVideoRef(m.context(), ref), format, args...)
	return m.ensureToastTick()
}

func (m *Model) notifyWarning(format string, args ...any) tea.Cmd {
	m.notifyBus.Warnf(m.context(), format, args...)
	return m.ensureToastTick()
}
