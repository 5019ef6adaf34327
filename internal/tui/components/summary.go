package components

import (
	"fmt"
	"strings"
)

// SummaryData holds both sides of a finished conversion.
type SummaryData struct {
	Input      string
	FromSymbol string
	Result     string
	ToSymbol   string
}

// Summary renders the one-line "<input> <from> = <result> <to>" recap.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary, or nothing when either side is missing.
func (s Summary) View() string {
	if strings.TrimSpace(s.data.Input) == "" || strings.TrimSpace(s.data.Result) == "" {
		return ""
	}
	return fmt.Sprintf("%s = %s", join(s.data.Input, s.data.FromSymbol), join(s.data.Result, s.data.ToSymbol))
}

func join(value, symbol string) string {
	if symbol == "" {
		return value
	}
	return value + " " + symbol
}
