package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/unitconv/internal/tui/components"
)

const precisionHint = "Rounded to 6 significant digits"

// View renders the active screen.
func (m Model) View() string {
	var b strings.Builder

	if m.showError && m.errorMsg != "" {
		alert := components.ErrorAlert(m.errorMsg)
		if strings.HasPrefix(m.errorMsg, "Terminal too small") {
			alert = components.WarningAlert(m.errorMsg)
		}
		b.WriteString(alert.View())
		b.WriteString("\n")
	}

	switch m.screen {
	case ScreenConverter:
		b.WriteString(m.renderConverter())
	default:
		b.WriteString(m.renderHome())
	}

	return appStyle.Render(b.String())
}

func (m Model) renderHome() string {
	sections := []string{
		m.home.View(),
		footerStyle.Render(m.help.View(homeHelp{m.keys})),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderConverter() string {
	s := m.conv
	accent := CategoryColor(s.info.ID)

	header := headerStyle(s.info.ID).Render(s.info.Icon(m.unicode) + " " + s.info.Name + " Converter")
	description := subtitleStyle.Render(s.info.Description)

	input := lipgloss.JoinVertical(lipgloss.Left,
		inputLabelStyle.Render("Enter Value"),
		s.input.View(),
	)
	if s.validation != "" {
		input = lipgloss.JoinVertical(lipgloss.Left, input, validationStyle.Render(s.validation))
	}

	swapGlyph := "<->"
	if m.unicode {
		swapGlyph = "⇄"
	}
	from := components.NewSelector("From", unitLabels(s), s.from).
		Focused(s.focus == focusFrom).
		Accent(accent)
	to := components.NewSelector("To", unitLabels(s), s.to).
		Focused(s.focus == focusTo).
		Accent(accent)
	selectors := lipgloss.JoinHorizontal(lipgloss.Center,
		from.View(),
		lipgloss.NewStyle().Padding(1, 2).Render(swapGlyph),
		to.View(),
	)

	data := components.CardData{Label: "Result", Unit: s.toUnit().Symbol}
	switch {
	case s.err != "":
		data.Error = s.err
	case s.hasResult:
		data.Value = s.result.Formatted
	}
	if m.precisionHint && s.hasResult {
		data.Hint = precisionHint
	}
	card := components.NewResultCard(data, components.DefaultCardStyle(accent))

	sections := []string{
		header,
		description,
		sectionStyle.Render(input),
		sectionStyle.Render(selectors),
		sectionStyle.Render(card.View()),
	}

	if s.hasResult {
		summary := components.NewSummary(components.SummaryData{
			Input:      s.input.Value(),
			FromSymbol: s.fromUnit().Symbol,
			Result:     s.result.Formatted,
			ToSymbol:   s.toUnit().Symbol,
		}).View()
		if summary != "" {
			sections = append(sections, summaryStyle.Render(summary))
		}
	}

	sections = append(sections, footerStyle.Render(m.help.View(converterHelp{m.keys})))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func unitLabels(s converterScreen) []string {
	labels := make([]string, len(s.info.Units))
	for i, u := range s.info.Units {
		labels[i] = u.Label()
	}
	return labels
}
