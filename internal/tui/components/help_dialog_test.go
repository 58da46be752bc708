package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestHelpDialog_View(t *testing.T) {
	d := NewHelpDialog("Keyboard Shortcuts", []HelpDialogSection{
		{Title: "Global", Entries: []HelpEntry{{Key: "tab", Desc: "next field"}}},
		{Title: "Lists", Entries: []HelpEntry{{Key: "r", Desc: "reply"}}},
	})

	out := ansi.Strip(d.View())
	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "Global")
	assert.Contains(t, out, "Lists")
	assert.Contains(t, out, "next field")
	assert.Contains(t, out, "esc/? close")
	assert.Less(t, strings.Index(out, "Global"), strings.Index(out, "Lists"))
}

func TestFormatKeyDesc_AlignsDescriptions(t *testing.T) {
	a := ansi.Strip(formatKeyDesc("r", "reply"))
	b := ansi.Strip(formatKeyDesc("shift+tab", "back"))

	assert.Equal(t, strings.Index(a, "reply"), strings.Index(b, "back"))
}

func TestCenter(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 20)+"\n", 10), "\n")

	out := ansi.Strip(Center(bg, "XX", 20, 10))
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 10)
	assert.Equal(t, 9, strings.Index(lines[4], "XX"))
}
