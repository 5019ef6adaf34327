package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the color scheme of an alert.
type AlertVariant int

const (
	AlertVariantError AlertVariant = iota
	AlertVariantWarning
)

var (
	alertErrorColor   = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"}
	alertWarningColor = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"}
)

// AlertOptions defines the configuration options for an alert
type AlertOptions struct {
	Variant AlertVariant
	Title   string
}

// Alert represents a message alert component
type Alert struct {
	message string
	options AlertOptions
}

// NewAlert creates a new alert with the given message and options
func NewAlert(message string, opts AlertOptions) *Alert {
	return &Alert{message: message, options: opts}
}

// ErrorAlert creates an error alert
func ErrorAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantError, Title: "Error"})
}

// WarningAlert creates a warning alert
func WarningAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantWarning, Title: "Warning"})
}

// View renders the alert
func (a *Alert) View() string {
	color := alertErrorColor
	if a.options.Variant == AlertVariantWarning {
		color = alertWarningColor
	}

	var content []string
	if a.options.Title != "" {
		content = append(content, lipgloss.NewStyle().Bold(true).Foreground(color).Render(a.options.Title))
	}
	if a.message != "" {
		content = append(content, a.message)
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Render(strings.Join(content, "\n"))
}
