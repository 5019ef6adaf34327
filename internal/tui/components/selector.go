package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Selector renders a labelled choice that is cycled with left/right keys.
type Selector struct {
	label   string
	options []string
	index   int
	focused bool
	accent  lipgloss.TerminalColor
	width   int
}

// NewSelector creates a selector over options with index selected.
func NewSelector(label string, options []string, index int) Selector {
	return Selector{label: label, options: options, index: index, width: 30}
}

// Focused marks the selector as the active control.
func (s Selector) Focused(focused bool) Selector {
	s.focused = focused
	return s
}

// Accent sets the color used for the focused border.
func (s Selector) Accent(color lipgloss.TerminalColor) Selector {
	s.accent = color
	return s
}

// Width sets the inner width of the selector box.
func (s Selector) Width(width int) Selector {
	s.width = width
	return s
}

// Selected returns the label of the current option, or "" if none.
func (s Selector) Selected() string {
	if s.index < 0 || s.index >= len(s.options) {
		return ""
	}
	return s.options[s.index]
}

// View renders the selector.
func (s Selector) View() string {
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		Padding(0, 1).
		Width(s.width)

	value := s.Selected()
	if s.focused {
		box = box.BorderStyle(lipgloss.ThickBorder())
		if s.accent != nil {
			box = box.BorderForeground(s.accent)
		}
		value = "‹ " + value + " ›"
	} else {
		box = box.BorderForeground(lipgloss.Color("240"))
	}

	label := lipgloss.NewStyle().Faint(!s.focused).Bold(s.focused).Render(s.label)
	return lipgloss.JoinVertical(lipgloss.Left, label, box.Render(value))
}
