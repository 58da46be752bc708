package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/tubenotes/internal/core/styles"
	"github.com/hay-kot/tubenotes/internal/core/viewstate"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minListLines  = 3
	descLines     = 3
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render builds the full screen, overlays included, as a string.
func (m Model) render() string {
	mainView := m.renderPage()
	w, h := m.dims()

	var content string
	switch {
	case m.state == stateShowingHelp && m.helpDialog != nil:
		content = m.helpDialog.Overlay(mainView, w, h)
	case m.state == stateShowingNotifications && m.notificationModal != nil:
		content = m.notificationModal.Overlay(mainView, w, h)
	case m.state == statePreviewingNote && m.notePreview != nil:
		content = m.notePreview.Overlay(mainView, w, h)
	default:
		content = mainView
	}

	// Apply toast overlay on top of everything
	if m.toastController != nil && m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}
	return content
}

func (m Model) dims() (int, int) {
	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}
	return w, h
}

// columnWidths returns the width of the full-width header pane and of each
// of the two columns below it.
func (m Model) columnWidths() (full, half int) {
	w, _ := m.dims()
	return w, w / 2
}

func (m Model) renderPage() string {
	w, h := m.dims()
	full, half := m.columnWidths()

	header := m.renderHeader()
	video := m.paneStyle(m.focus == focusVideoRef).Width(full).Render(m.renderVideo(full - 4))
	footer := m.renderFooter()

	bodyHeight := max(h-lipgloss.Height(header)-lipgloss.Height(video)-lipgloss.Height(footer), minListLines+2)

	comments := m.paneStyle(m.focus == focusComment || m.focus == focusComments || m.focus == focusReply).
		Width(half).
		Height(bodyHeight).
		Render(m.renderComments(half-4, bodyHeight-2))
	notes := m.paneStyle(m.focus == focusNoteContent || m.focus == focusNoteTags || m.focus == focusSearch || m.focus == focusNotes).
		Width(w - half).
		Height(bodyHeight).
		Render(m.renderNotes(w-half-4, bodyHeight-2))

	body := lipgloss.JoinHorizontal(lipgloss.Top, comments, notes)
	return lipgloss.JoinVertical(lipgloss.Left, header, video, body, footer)
}

func (m Model) paneStyle(focused bool) lipgloss.Style {
	if focused {
		return styles.PaneFocusedStyle
	}
	return styles.PaneStyle
}

func (m Model) renderHeader() string {
	title := styles.CommandHeaderStyle.Render(styles.IconVideo + " tubenotes")
	if ref := m.view.Drafts.VideoRef; ref != "" {
		title += styles.TextMutedStyle.Render("  " + ref)
	}
	return title
}

func (m Model) renderFooter() string {
	hints := []string{
		styles.HelpKeyStyle.Render("tab") + " " + styles.HelpDescStyle.Render("next"),
		styles.HelpKeyStyle.Render("enter") + " " + styles.HelpDescStyle.Render("submit"),
		styles.HelpKeyStyle.Render("?") + " " + styles.HelpDescStyle.Render("help"),
		styles.HelpKeyStyle.Render("ctrl+n") + " " + styles.HelpDescStyle.Render("notifications"),
		styles.HelpKeyStyle.Render("ctrl+c") + " " + styles.HelpDescStyle.Render("quit"),
	}
	return strings.Join(hints, styles.DividerStyle.Render(" • "))
}

func (m Model) renderVideo(width int) string {
	parts := []string{m.refInput.View()}

	if m.view.Loading {
		parts = append(parts, m.spinner.View()+" "+styles.LoadingStyle.Render("Loading..."))
	}

	v := m.view.Video
	if v == nil {
		if !m.view.Loading {
			parts = append(parts, styles.EmptyStyle.Render("No video loaded"))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	desc := lipgloss.NewStyle().Width(max(width, 1)).Render(v.Description)
	parts = append(parts,
		styles.VideoTitleStyle.Render(ansi.Truncate(v.Title, width, "…")),
		clampLines(desc, descLines, 0),
		styles.VideoMetaStyle.Render(fmt.Sprintf("%s %s", styles.IconEye, formatViews(v.ViewCount))),
		styles.VideoMetaStyle.Render("Thumbnail: "+ansi.Truncate(v.ThumbnailURL, width-11, "…")),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderComments(width, height int) string {
	title := styles.PaneTitleStyle.Render(fmt.Sprintf("%s Comments (%d)", styles.IconComment, len(m.view.Comments)))
	input := m.commentInput.View()
	reply := m.replyInput.View()

	listHeight := max(height-lipgloss.Height(title)-lipgloss.Height(input)-lipgloss.Height(reply), minListLines)
	list, focusLine := m.renderCommentList(width)
	list = clampLines(list, listHeight, focusLine)

	return lipgloss.JoinVertical(lipgloss.Left, title, input, list, reply)
}

// renderCommentList returns the rendered comments and the line index of the
// selected comment.
func (m Model) renderCommentList(width int) (string, int) {
	if len(m.view.Comments) == 0 {
		return styles.EmptyStyle.Render("No comments yet"), 0
	}

	var (
		lines     []string
		focusLine int
	)
	for i, c := range m.view.Comments {
		text := ansi.Truncate(c.Text, width-3, "…")
		if m.focus == focusComments && i == m.selectedComment {
			focusLine = len(lines)
			lines = append(lines, styles.CommentSelectedStyle.Render(text))
		} else {
			lines = append(lines, styles.CommentStyle.Render(text))
		}
		lines = append(lines, renderReplies(c.Replies, width)...)
	}
	return strings.Join(lines, "\n"), focusLine
}

func renderReplies(replies []viewstate.Reply, width int) []string {
	out := make([]string, 0, len(replies))
	for _, r := range replies {
		text := ansi.Truncate(r.Text, width-9, "…")
		out = append(out, styles.ReplyStyle.Render(styles.IconReply+" "+text))
	}
	return out
}

func (m Model) renderNotes(width, height int) string {
	title := styles.PaneTitleStyle.Render(fmt.Sprintf("%s Notes (%d)", styles.IconNote, len(m.view.Notes)))
	inputs := lipgloss.JoinVertical(lipgloss.Left,
		m.noteInput.View(),
		m.tagsInput.View(),
		m.searchInput.View(),
	)

	listHeight := max(height-lipgloss.Height(title)-lipgloss.Height(inputs), minListLines)
	list, focusLine := m.renderNoteList(width)
	list = clampLines(list, listHeight, focusLine)

	return lipgloss.JoinVertical(lipgloss.Left, title, inputs, list)
}

func (m Model) renderNoteList(width int) (string, int) {
	if len(m.view.Notes) == 0 {
		return styles.EmptyStyle.Render("No notes"), 0
	}

	var (
		lines     []string
		focusLine int
	)
	for i, n := range m.view.Notes {
		content, _, _ := strings.Cut(n.Content, "\n")
		content = ansi.Truncate(content, width-3, "…")
		if m.focus == focusNotes && i == m.selectedNote {
			focusLine = len(lines)
			lines = append(lines, styles.CommentSelectedStyle.Render(content))
		} else {
			lines = append(lines, styles.CommentStyle.Render(content))
		}
		tags := styles.IconTag + " " + formatTags(n.Tags)
		lines = append(lines, styles.TagStyle.PaddingLeft(4).Render(ansi.Truncate(tags, width-4, "…")))
	}
	return strings.Join(lines, "\n"), focusLine
}
