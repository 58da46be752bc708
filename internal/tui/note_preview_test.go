package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/tubenotes/internal/core/viewstate"
	"github.com/hay-kot/tubenotes/pkg/tuitest"
)

func TestNotePreview_renders_markdown_and_tags(t *testing.T) {
	p := NewNotePreview(viewstate.Note{
		ID:      "n7",
		Content: "## Timestamps\n\n- 01:20 intro\n- **04:10** demo",
		Tags:    []string{"talk", "go"},
	}, 120, 40)

	out := tuitest.StripANSI(p.Overlay("", 120, 40))
	assert.Contains(t, out, "Note n7")
	assert.Contains(t, out, "talk, go")
	assert.Contains(t, out, "Timestamps")
	assert.Contains(t, out, "04:10")
	assert.NotContains(t, out, "**", "markdown emphasis is rendered, not shown raw")
}

func TestNotePreview_without_tags(t *testing.T) {
	p := NewNotePreview(viewstate.Note{Content: "plain"}, 80, 24)
	out := tuitest.StripANSI(p.Overlay("", 80, 24))
	assert.Contains(t, out, "No tags")
	assert.Contains(t, out, "plain")
}

func TestNotePreview_empty_tag_list(t *testing.T) {
	p := NewNotePreview(viewstate.Note{Content: "plain", Tags: []string{}}, 80, 24)
	out := tuitest.StripANSI(p.Overlay("", 80, 24))
	assert.NotContains(t, out, "No tags")
	assert.Contains(t, out, "plain")
}

func TestNotePreview_scrolls_long_content(t *testing.T) {
	p := NewNotePreview(viewstate.Note{Content: strings.Repeat("line\n\n", 80)}, 80, 24)
	assert.Greater(t, p.viewport.TotalLineCount(), p.viewport.VisibleLineCount())

	p.ScrollDown()
	assert.Equal(t, 1, p.viewport.YOffset())
	p.ScrollUp()
	assert.Equal(t, 0, p.viewport.YOffset())
}
