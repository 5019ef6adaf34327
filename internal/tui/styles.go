package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/unitconv/internal/units"
)

var (
	// Colors
	primaryColor = lipgloss.AdaptiveColor{Light: "#6366F1", Dark: "#818CF8"}
	warningColor = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#CBD5E1"}

	categoryColors = map[units.Category]lipgloss.AdaptiveColor{
		units.Length:      {Light: "#8B5CF6", Dark: "#A78BFA"},
		units.Weight:      {Light: "#06B6D4", Dark: "#22D3EE"},
		units.Temperature: {Light: "#F59E0B", Dark: "#FBBF24"},
		units.Area:        {Light: "#10B981", Dark: "#34D399"},
		units.Volume:      {Light: "#EC4899", Dark: "#F472B6"},
	}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1)

	inputLabelStyle = lipgloss.NewStyle().
			Bold(true)

	validationStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Italic(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	appStyle = lipgloss.NewStyle().Padding(1, 2)
)

// CategoryColor returns the accent color of a category, or the primary color
// for unknown categories.
func CategoryColor(c units.Category) lipgloss.AdaptiveColor {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return primaryColor
}

func headerStyle(c units.Category) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(CategoryColor(c)).
		Padding(0, 2)
}
