package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoriesCommand_TableOutput(t *testing.T) {
	stdout, err := executeCommand(t, "categories")
	require.NoError(t, err)
	require.Contains(t, stdout, "ID")
	require.Contains(t, stdout, "UNITS")
	// Buffers are not terminals, so ASCII fallbacks are used
	require.Contains(t, stdout, "[L] Length")
	require.Contains(t, stdout, "[T] Temperature")
	require.Contains(t, stdout, "mm, cm, m, km")
	require.NotContains(t, stdout, "📏")
}

func TestCategoriesCommand_JSONOutput(t *testing.T) {
	stdout, err := executeCommand(t, "categories", "--json")
	require.NoError(t, err)

	var payload struct {
		Version    string `json:"version"`
		Count      int    `json:"count"`
		Categories []struct {
			ID    string `json:"id"`
			Units []struct {
				ID string `json:"id"`
			} `json:"units"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "1.0", payload.Version)
	require.Equal(t, 5, payload.Count)
	require.Len(t, payload.Categories, 5)
	require.Equal(t, "length", payload.Categories[0].ID)
	require.Len(t, payload.Categories[0].Units, 4)
}

func TestCategoriesCommand_SingleCategory(t *testing.T) {
	stdout, err := executeCommand(t, "categories", "temperature")
	require.NoError(t, err)
	require.Contains(t, stdout, "SYMBOL")
	require.Contains(t, stdout, "Fahrenheit")
	require.Contains(t, stdout, "°F")

	stdout, err = executeCommand(t, "categories", "--json", "area")
	require.NoError(t, err)

	var payload unitsJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "area", payload.Category)
	require.Equal(t, 2, payload.Count)
}

func TestCategoriesCommand_UnknownCategory(t *testing.T) {
	_, err := executeCommand(t, "categories", "speed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported category: speed")
}
