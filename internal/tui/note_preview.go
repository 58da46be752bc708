package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/hay-kot/tubenotes/internal/core/logging"
	"github.com/hay-kot/tubenotes/internal/core/styles"
	"github.com/hay-kot/tubenotes/internal/core/viewstate"
	"github.com/hay-kot/tubenotes/internal/tui/components"
)

const (
	previewModalMaxWidth  = 100
	previewModalMaxHeight = 30
	previewModalMargin    = 4
	previewModalChrome    = 7 // title + tags + divider + help + spacing
	previewModalPadding   = 4
)

// NotePreview shows a single note with its content rendered as markdown.
type NotePreview struct {
	note     viewstate.Note
	viewport viewport.Model
}

// NewNotePreview creates a preview sized for a width x height screen.
func NewNotePreview(note viewstate.Note, width, height int) *NotePreview {
	modalWidth := max(min(width-previewModalMargin, previewModalMaxWidth), previewModalPadding+1)
	modalHeight := min(height-previewModalMargin, previewModalMaxHeight)
	contentHeight := max(modalHeight-previewModalChrome, 1)

	vp := viewport.New(
		viewport.WithWidth(modalWidth-previewModalPadding),
		viewport.WithHeight(contentHeight),
	)

	p := &NotePreview{note: note, viewport: vp}
	p.viewport.SetContent(renderMarkdown(note.Content, modalWidth-previewModalPadding))
	return p
}

// renderMarkdown renders content with the active theme, falling back to the
// raw text when glamour fails.
func renderMarkdown(content string, width int) string {
	log := logging.Component("tui")

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return content
	}
	return strings.TrimSpace(rendered)
}

func (p *NotePreview) ScrollUp() {
	p.viewport.ScrollUp(1)
}

func (p *NotePreview) ScrollDown() {
	p.viewport.ScrollDown(1)
}

// Overlay renders the preview centered over the background.
func (p *NotePreview) Overlay(background string, width, height int) string {
	modalWidth := max(min(width-previewModalMargin, previewModalMaxWidth), previewModalPadding+1)

	scrollInfo := ""
	if p.viewport.TotalLineCount() > p.viewport.VisibleLineCount() {
		scrollInfo = styles.TextMutedStyle.Render(fmt.Sprintf(" (%.0f%%)", p.viewport.ScrollPercent()*100))
	}

	title := styles.IconNote + " Note"
	if p.note.ID != "" {
		title += " " + p.note.ID
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(title)+scrollInfo,
		styles.TagStyle.Render(styles.IconTag+" "+formatTags(p.note.Tags)),
		styles.TextSurfaceStyle.Render(strings.Repeat("─", max(modalWidth-6, 1))),
		p.viewport.View(),
		styles.ModalHelpStyle.Render("[j/k] scroll  [enter/esc] close"),
	)

	modal := styles.ModalStyle.Width(modalWidth).Render(content)
	return components.Center(background, modal, width, height)
}
