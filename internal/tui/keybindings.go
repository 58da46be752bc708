package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/hay-kot/tubenotes/internal/tui/components"
)

const keyCtrlC = "ctrl+c"

// KeyMap holds every binding the page reacts to. Bindings that are also
// printable characters only apply while a list has focus, so they can still
// be typed into inputs.
type KeyMap struct {
	Quit          key.Binding
	QuitList      key.Binding
	NextFocus     key.Binding
	PrevFocus     key.Binding
	Submit        key.Binding
	Up            key.Binding
	Down          key.Binding
	Reply         key.Binding
	Help          key.Binding
	Notifications key.Binding
	DismissToast  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys(keyCtrlC),
			key.WithHelp("ctrl+c", "quit"),
		),
		QuitList: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit (lists)"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load / post / save"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Reply: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reply to selected comment"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "notification history"),
		),
		DismissToast: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "dismiss newest toast"),
		),
	}
}

func helpEntries(bindings ...key.Binding) []components.HelpEntry {
	entries := make([]components.HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		entries = append(entries, components.HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return entries
}

// HelpSections groups the bindings for the help dialog.
func (k KeyMap) HelpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		{
			Title:   "Global",
			Entries: helpEntries(k.NextFocus, k.PrevFocus, k.Submit, k.Notifications, k.DismissToast, k.Quit),
		},
		{
			Title:   "Lists",
			Entries: helpEntries(k.Up, k.Down, k.Reply, k.Help, k.QuitList),
		},
		{
			Title: "Notes",
			Entries: []components.HelpEntry{
				{Key: "tags", Desc: "comma separated, e.g. go, tui"},
				{Key: "search", Desc: "filters as you type"},
				{Key: "enter", Desc: "preview selected note"},
			},
		},
	}
}
