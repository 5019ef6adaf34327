package config

import (
	"github.com/alexisbeaulieu97/unitconv/internal/units"
)

// SchemaVersion is written by Default and accepted by the parser.
const SchemaVersion = "1.0"

// Config represents the unitconv preferences document.
type Config struct {
	Version  string   `yaml:"version" validate:"required,schema_version"`
	Defaults Defaults `yaml:"defaults"`
	Display  Display  `yaml:"display"`
	Log      Log      `yaml:"log"`
}

// Defaults selects what the converter starts with.
type Defaults struct {
	Category string `yaml:"category" validate:"required,category"`
	From     string `yaml:"from" validate:"required"`
	To       string `yaml:"to" validate:"required"`
}

// Display holds presentation preferences for the CLI and TUI.
type Display struct {
	Theme         string `yaml:"theme" validate:"omitempty,oneof=auto light dark"`
	Unicode       *bool  `yaml:"unicode,omitempty"`
	PrecisionHint bool   `yaml:"precision_hint,omitempty"`
}

// Log configures the application logger.
type Log struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
}

// Default returns a configuration that is valid without any file on disk.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Category returns the default category as a typed value.
func (c *Config) Category() units.Category {
	return units.Category(c.Defaults.Category)
}

// UseUnicode reports whether glyphs may be used; it defaults to true.
func (d Display) UseUnicode() bool {
	return d.Unicode == nil || *d.Unicode
}

// applyDefaults fills every field the document left empty.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = SchemaVersion
	}

	if cfg.Defaults.Category == "" {
		cfg.Defaults.Category = units.Length.String()
	}
	if cfg.Defaults.From == "" && cfg.Defaults.To == "" {
		cfg.Defaults.From, cfg.Defaults.To = units.DefaultPair(units.Category(cfg.Defaults.Category))
	}

	if cfg.Display.Theme == "" {
		cfg.Display.Theme = "auto"
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}
