package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Quit      key.Binding
	Back      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Prev      key.Binding
	Next      key.Binding
	Swap      key.Binding
	Help      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Prev:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev unit")),
		Next:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next unit")),
		Swap:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "swap units")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// homeHelp adapts the key map for the category list.
type homeHelp struct{ k keyMap }

func (h homeHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Open, h.k.Quit}
}

func (h homeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{h.k.Up, h.k.Down}, {h.k.Open, h.k.Help, h.k.Quit}}
}

// converterHelp adapts the key map for the converter screen.
type converterHelp struct{ k keyMap }

func (h converterHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.NextField, h.k.Prev, h.k.Next, h.k.Swap, h.k.Back}
}

func (h converterHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.NextField, h.k.PrevField},
		{h.k.Prev, h.k.Next, h.k.Swap},
		{h.k.Back, h.k.Help},
	}
}
