// Package form holds the labelled input fields used by the page.
package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/tubenotes/internal/core/styles"
)

// TextField is a single-line labelled text input.
type TextField struct {
	input   textinput.Model
	label   string
	focused bool
}

// NewTextField creates a new single-line text input field.
func NewTextField(label, placeholder string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(40)
	ti.SetStyles(inputStyles())

	return &TextField{
		input: ti,
		label: label,
	}
}

func inputStyles() textinput.Styles {
	s := textinput.DefaultStyles(true)
	s.Cursor.Color = styles.ColorPrimary
	s.Cursor.Blink = false
	s.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	s.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	return s
}

// Update forwards msg to the input while focused. changed reports whether
// the value differs afterwards.
func (f *TextField) Update(msg tea.Msg) (cmd tea.Cmd, changed bool) {
	if !f.focused {
		return nil, false
	}

	before := f.input.Value()
	f.input, cmd = f.input.Update(msg)
	return cmd, f.input.Value() != before
}

func (f *TextField) View() string {
	labelStyle := styles.FormLabelStyle
	borderStyle := styles.FormFieldStyle
	if f.focused {
		labelStyle = styles.FormLabelFocusedStyle
		borderStyle = styles.FormFieldFocusedStyle
	}

	content := lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(f.label), f.input.View())
	return borderStyle.Render(content)
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

// SetWidth sets the visible width of the input, excluding the border.
func (f *TextField) SetWidth(w int) {
	f.input.SetWidth(max(w, 1))
}

// SetValue replaces the input text and moves the cursor to the end.
func (f *TextField) SetValue(v string) {
	f.input.SetValue(v)
	f.input.CursorEnd()
}

// Value returns the current input text.
func (f *TextField) Value() string { return f.input.Value() }
