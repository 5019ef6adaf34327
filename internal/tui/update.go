package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minWidth  = 40
	minHeight = 12
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.home.SetSize(max(msg.Width-4, 0), max(msg.Height-6, 0))
		m.help.Width = msg.Width

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case CategorySelectedMsg:
		cmd := m.openConverter(msg.Category)
		return m, cmd

	case BackToHomeMsg:
		m.backToHome()
		return m, nil
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	switch m.screen {
	case ScreenConverter:
		m.conv.input, cmd = m.conv.input.Update(msg)
	default:
		m.home, cmd = m.home.Update(msg)
	}
	return m, cmd
}

// handleKeyPress dispatches keyboard input based on the current screen
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenConverter:
		return m.handleConverterKeys(msg)
	default:
		return m.handleHomeKeys(msg)
	}
}

func (m Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While filtering every key belongs to the list.
	if m.home.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.home, cmd = m.home.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Open):
		item, ok := m.home.SelectedItem().(categoryItem)
		if !ok {
			return m, nil
		}
		cmd := m.openConverter(item.info.ID)
		return m, cmd
	}

	var cmd tea.Cmd
	m.home, cmd = m.home.Update(msg)
	return m, cmd
}

func (m Model) handleConverterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	onInput := m.conv.focus == focusValue

	switch {
	case key.Matches(msg, m.keys.Back):
		m.backToHome()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		return m, m.conv.moveFocus(1)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.conv.moveFocus(-1)

	case key.Matches(msg, m.keys.Swap), !onInput && msg.String() == "s":
		m.conv.swap()
		m.conv.recompute(m.log)
		return m, nil

	case !onInput && key.Matches(msg, m.keys.Prev):
		if m.conv.cycleUnit(-1) {
			m.conv.recompute(m.log)
		}
		return m, nil

	case !onInput && key.Matches(msg, m.keys.Next):
		if m.conv.cycleUnit(1) {
			m.conv.recompute(m.log)
		}
		return m, nil

	case !onInput && key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case !onInput && key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	if !onInput {
		return m, nil
	}

	cmd := m.conv.applyKey(msg)
	m.conv.recompute(m.log)
	return m, cmd
}
