package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	unitconverrors "github.com/alexisbeaulieu97/unitconv/pkg/errors"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
		wantMsg   string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:      "missing version",
			mutate:    func(c *Config) { c.Version = "" },
			wantField: "version",
			wantMsg:   "is required",
		},
		{
			name:      "malformed version",
			mutate:    func(c *Config) { c.Version = "one" },
			wantField: "version",
			wantMsg:   "major.minor",
		},
		{
			name:      "unknown category",
			mutate:    func(c *Config) { c.Defaults.Category = "speed" },
			wantField: "defaults.category",
			wantMsg:   `unknown category "speed"`,
		},
		{
			name:      "unit outside category",
			mutate:    func(c *Config) { c.Defaults.From = "kg" },
			wantField: "defaults.from",
			wantMsg:   `unit "kg" does not belong to category "length"`,
		},
		{
			name:      "missing target unit",
			mutate:    func(c *Config) { c.Defaults.To = "" },
			wantField: "defaults.to",
			wantMsg:   "is required",
		},
		{
			name:      "bad theme",
			mutate:    func(c *Config) { c.Display.Theme = "neon" },
			wantField: "display.theme",
			wantMsg:   "must be one of [auto light dark]",
		},
		{
			name:      "bad log format",
			mutate:    func(c *Config) { c.Log.Format = "xml" },
			wantField: "log.format",
			wantMsg:   `"xml" must be one of`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *unitconverrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.wantField, validationErr.Field)
			require.Contains(t, validationErr.Message, tt.wantMsg)
		})
	}
}
