package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/unitconv/internal/config"
	"github.com/alexisbeaulieu97/unitconv/internal/units"
)

func TestViewRendersHome(t *testing.T) {
	view := NewModel(Options{}).View()

	require.Contains(t, view, "Unit Converter")
	require.Contains(t, view, "Length")
	require.Contains(t, view, "Temperature")
}

func TestViewRendersConverter(t *testing.T) {
	m := typeText(t, temperatureModel(t), "100")

	view := m.View()
	require.Contains(t, view, "Temperature Converter")
	require.Contains(t, view, "Enter Value")
	require.Contains(t, view, "Celsius (°C)")
	require.Contains(t, view, "Fahrenheit (°F)")
	require.Contains(t, view, "212")
	require.Contains(t, view, "100 °C = 212 °F")
	require.NotContains(t, view, precisionHint)
}

func TestViewShowsValidationMessage(t *testing.T) {
	m := typeText(t, temperatureModel(t), "1x")

	assert.Contains(t, m.View(), "Please enter a valid number")
}

func TestViewOmitsSummaryWithoutResult(t *testing.T) {
	view := temperatureModel(t).View()

	assert.NotContains(t, view, " = ")
}

func TestViewShowsTooSmallBanner(t *testing.T) {
	m := send(t, NewModel(Options{}), tea.WindowSizeMsg{Width: 20, Height: 5})

	assert.Contains(t, m.View(), "Terminal too small")
}

func TestViewHonoursDisplayPreferences(t *testing.T) {
	cfg := config.Default()
	unicode := false
	cfg.Display.Unicode = &unicode
	cfg.Display.PrecisionHint = true

	m := NewModel(Options{Config: cfg, Category: units.Temperature})
	m = typeText(t, m, "1")

	view := m.View()
	assert.Contains(t, view, "[T] Temperature Converter")
	assert.Contains(t, view, "<->")
	assert.Contains(t, view, precisionHint)
}

func TestCategoryColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, categoryColors[units.Area], CategoryColor(units.Area))
	assert.Equal(t, primaryColor, CategoryColor(units.Category("speed")))
}
