package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Toggle   key.Binding
	Reload   key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("c", "enter", " ", "space"),
			key.WithHelp("c", "teacher cards"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("[", "left", "h"),
			key.WithHelp("[", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("]", "right", "l"),
			key.WithHelp("]", "next week"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.PrevWeek, k.NextWeek, k.Reload, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle},
		{k.PrevWeek, k.NextWeek, k.Reload},
		{k.Quit},
	}
}

// withoutStore disables bindings that need a backing store.
func (k keyMap) withoutStore() keyMap {
	k.Reload.SetEnabled(false)
	k.PrevWeek.SetEnabled(false)
	k.NextWeek.SetEnabled(false)
	return k
}

// newHelp returns a help bubble styled to match the footer.
func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = hintKeyStyle
	h.Styles.ShortDesc = hintDescStyle
	h.Styles.ShortSeparator = hintDescStyle
	return h
}
