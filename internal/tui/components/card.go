package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardStyle defines the visual appearance of a ResultCard.
type CardStyle struct {
	// BorderStyle applies to the card's outer border
	BorderStyle lipgloss.Style
	// LabelStyle applies to the small heading above the value
	LabelStyle lipgloss.Style
	// ValueStyle applies to the converted value
	ValueStyle lipgloss.Style
	// UnitStyle applies to the target unit symbol
	UnitStyle lipgloss.Style
	// ErrorStyle applies to the error message
	ErrorStyle lipgloss.Style
	// HintStyle applies to the footnote
	HintStyle lipgloss.Style
	Width     int
}

// DefaultCardStyle returns a card style accented with the given color.
func DefaultCardStyle(accent lipgloss.TerminalColor) CardStyle {
	return CardStyle{
		BorderStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		LabelStyle: lipgloss.NewStyle().Faint(true),
		ValueStyle: lipgloss.NewStyle().Bold(true),
		UnitStyle:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		ErrorStyle: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"}).Bold(true),
		HintStyle:  lipgloss.NewStyle().Faint(true).Italic(true),
		Width:      40,
	}
}

// CardData is the content of a ResultCard. Error takes precedence over Value.
type CardData struct {
	Label string
	Value string
	Unit  string
	Error string
	Hint  string
}

// ResultCard renders the outcome of a conversion.
type ResultCard struct {
	data  CardData
	style CardStyle
}

// NewResultCard creates a card with the given data and style.
func NewResultCard(data CardData, style CardStyle) *ResultCard {
	return &ResultCard{data: data, style: style}
}

// WithWidth sets the card width.
func (c *ResultCard) WithWidth(width int) *ResultCard {
	c.style.Width = width
	return c
}

// View renders the card.
func (c *ResultCard) View() string {
	var lines []string
	if c.data.Label != "" {
		lines = append(lines, c.style.LabelStyle.Render(c.data.Label))
	}

	if strings.TrimSpace(c.data.Error) != "" {
		lines = append(lines, c.style.ErrorStyle.Render(c.data.Error))
	} else {
		value := c.data.Value
		if value == "" {
			value = "0"
		}
		line := c.style.ValueStyle.Render(value)
		if c.data.Unit != "" {
			line += " " + c.style.UnitStyle.Render(c.data.Unit)
		}
		lines = append(lines, line)
	}

	if c.data.Hint != "" {
		lines = append(lines, c.style.HintStyle.Render(c.data.Hint))
	}

	border := c.style.BorderStyle
	if c.style.Width > 0 {
		border = border.Width(c.style.Width)
	}
	return border.Render(strings.Join(lines, "\n"))
}
