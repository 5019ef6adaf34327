package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	unitconverrors "github.com/alexisbeaulieu97/unitconv/pkg/errors"
)

func TestConvertCommand_TextOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "length default category", args: []string{"convert", "1", "km", "m"}, want: "1 km = 1000 m\n"},
		{name: "temperature", args: []string{"convert", "-c", "temperature", "100", "C", "F"}, want: "100 °C = 212 °F\n"},
		{name: "negative value", args: []string{"convert", "-c", "temperature", "--", "-40", "C", "F"}, want: "-40 °C = -40 °F\n"},
		{name: "category case insensitive", args: []string{"convert", "--category", "Weight", "1500", "g", "kg"}, want: "1500 g = 1.5 kg\n"},
		{name: "area", args: []string{"convert", "-c", "area", "1", "km²", "m²"}, want: "1 km² = 1000000 m²\n"},
		{name: "tiny result", args: []string{"convert", "1", "mm", "km"}, want: "1 mm = 1.0000e-6 km\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, stdout)
		})
	}
}

func TestConvertCommand_JSONOutput(t *testing.T) {
	stdout, err := executeCommand(t, "convert", "--json", "-c", "volume", "2.5", "l", "ml")
	require.NoError(t, err)

	var payload convertJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "volume", payload.Category)
	require.Equal(t, "l", payload.From)
	require.Equal(t, "ml", payload.To)
	require.Equal(t, "2.5", payload.Input)
	require.NotNil(t, payload.Value)
	require.InDelta(t, 2500, *payload.Value, 1e-9)
	require.Equal(t, "2500", payload.Formatted)
}

func TestConvertCommand_JSONOverflow(t *testing.T) {
	huge := "1" + strings.Repeat("0", 308)

	stdout, err := executeCommand(t, "convert", huge, "km", "mm")
	require.NoError(t, err)
	require.Equal(t, huge+" km = Invalid mm\n", stdout)

	stdout, err = executeCommand(t, "convert", "--json", huge, "km", "mm")
	require.NoError(t, err)

	var payload convertJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "Invalid", payload.Formatted)
	require.Nil(t, payload.Value)
	require.Equal(t, huge, payload.Input)
	require.NotContains(t, stdout, `"value"`)
}

func TestConvertCommand_UsesConfiguredCategory(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
defaults:
  category: temperature
  from: C
  to: K
`)

	stdout, err := executeCommand(t, "--config", path, "convert", "0", "C", "K")
	require.NoError(t, err)
	require.Equal(t, "0 °C = 273.15 K\n", stdout)
}

func TestConvertCommand_UnsupportedUnit(t *testing.T) {
	_, err := executeCommand(t, "convert", "1", "km", "miles")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported length unit: miles")
	require.Contains(t, err.Error(), "unitconv categories length")
	require.True(t, errors.Is(err, unitconverrors.ErrUnsupportedUnit))
}

func TestConvertCommand_UnsupportedCategory(t *testing.T) {
	_, err := executeCommand(t, "convert", "-c", "speed", "1", "kmh", "mph")
	require.Error(t, err)
	require.True(t, errors.Is(err, unitconverrors.ErrUnsupportedCategory))
	require.Contains(t, err.Error(), "unsupported category: speed")
}

func TestConvertCommand_InvalidValue(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{value: "1.2.3", want: "Invalid decimal format"},
		{value: "abc", want: "Please enter a valid number"},
		{value: ".", want: "Please enter a valid number"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			_, err := executeCommand(t, "convert", tt.value, "km", "m")
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConvertCommand_RequiresThreeArguments(t *testing.T) {
	_, err := executeCommand(t, "convert", "1", "km")
	require.Error(t, err)
}
