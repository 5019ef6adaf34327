package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSummary(t *testing.T) {
	t.Parallel()

	data := SummaryData{Input: "1", FromSymbol: "km", Result: "1000", ToSymbol: "m"}
	summary := NewSummary(data)
	require.Equal(t, data, summary.data)
}

func TestSummaryView(t *testing.T) {
	t.Parallel()

	t.Run("renders both sides", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{Input: "100", FromSymbol: "°C", Result: "212", ToSymbol: "°F"}).View()
		require.Equal(t, "100 °C = 212 °F", view)
	})

	t.Run("omits missing symbols", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{Input: "2", Result: "2000"}).View()
		require.Equal(t, "2 = 2000", view)
	})

	t.Run("renders nothing without a result", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, NewSummary(SummaryData{Input: "2", FromSymbol: "kg"}).View())
		require.Empty(t, NewSummary(SummaryData{Result: "2", ToSymbol: "g"}).View())
	})
}
