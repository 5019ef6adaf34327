package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/unitconv/internal/converter"
	"github.com/alexisbeaulieu97/unitconv/internal/logger"
	"github.com/alexisbeaulieu97/unitconv/internal/units"
)

// focusField identifies the control that receives keystrokes.
type focusField int

const (
	focusValue focusField = iota
	focusFrom
	focusTo
	focusCount
)

// converterScreen holds the state of one category's converter.
type converterScreen struct {
	info  units.CategoryInfo
	input textinput.Model
	from  int
	to    int
	focus focusField

	result     converter.Result
	hasResult  bool
	err        string
	validation string
}

func newConverterScreen(info units.CategoryInfo, fromID, toID string) converterScreen {
	ti := textinput.New()
	ti.Placeholder = "Enter a number"
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Width = 30
	ti.Focus()

	secondary := 0
	if len(info.Units) > 1 {
		secondary = 1
	}

	return converterScreen{
		info:  info,
		input: ti,
		from:  unitIndex(info.Units, fromID, 0),
		to:    unitIndex(info.Units, toID, secondary),
	}
}

func unitIndex(list []units.Unit, id string, fallback int) int {
	for i, u := range list {
		if u.ID == id {
			return i
		}
	}
	return fallback
}

func (s *converterScreen) fromUnit() units.Unit {
	return s.info.Units[s.from]
}

func (s *converterScreen) toUnit() units.Unit {
	return s.info.Units[s.to]
}

// applyKey feeds a keystroke to the value field. The edit is kept only if
// the resulting text is acceptable numeric input.
func (s *converterScreen) applyKey(msg tea.Msg) tea.Cmd {
	candidate, cmd := s.input.Update(msg)
	if candidate.Value() == s.input.Value() {
		s.input = candidate
		return cmd
	}

	check := converter.ValidateNumericInput(candidate.Value())
	if !check.Valid {
		s.validation = check.Message
		return nil
	}

	s.input = candidate
	s.validation = ""
	return cmd
}

// moveFocus cycles focus forward or backward through the three controls.
func (s *converterScreen) moveFocus(delta int) tea.Cmd {
	s.focus = focusField((int(s.focus) + delta + int(focusCount)) % int(focusCount))
	if s.focus == focusValue {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

// cycleUnit moves the focused selector by delta, wrapping around.
func (s *converterScreen) cycleUnit(delta int) bool {
	n := len(s.info.Units)
	if n == 0 {
		return false
	}
	switch s.focus {
	case focusFrom:
		s.from = (s.from + delta + n) % n
	case focusTo:
		s.to = (s.to + delta + n) % n
	default:
		return false
	}
	return true
}

func (s *converterScreen) swap() {
	s.from, s.to = s.to, s.from
}

// recompute converts the current input. In-progress text such as "-" or "."
// leaves the result empty.
func (s *converterScreen) recompute(log *logger.Logger) {
	s.hasResult = false
	s.err = ""

	value, ok := converter.ParseInput(s.input.Value())
	if !ok {
		return
	}

	from, to := s.fromUnit(), s.toUnit()
	res, err := converter.Run(converter.Request{
		Value:    value,
		From:     from.ID,
		To:       to.ID,
		Category: s.info.ID,
	})
	if err != nil {
		s.err = err.Error()
		log.WithFields(map[string]any{
			"category": s.info.ID.String(),
			"from":     from.ID,
			"to":       to.ID,
		}).Warn("conversion failed")
		return
	}

	s.result = res
	s.hasResult = true
}
