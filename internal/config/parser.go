package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	unitconverrors "github.com/alexisbeaulieu97/unitconv/pkg/errors"
)

// EnvConfigPath overrides the default preferences location.
const EnvConfigPath = "UNITCONV_CONFIG"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, fills defaults, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, unitconverrors.NewParseError(path, 0, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, unitconverrors.NewParseError(path, extractLine(err), err)
	}

	applyDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load resolves the preferences file and parses it. An explicit path must
// exist. With no explicit path, $UNITCONV_CONFIG and then DefaultPath are
// tried, and a missing file yields Default.
func Load(path string) (*Config, string, error) {
	if path != "" {
		cfg, err := ParseConfig(path)
		return cfg, path, err
	}

	candidate := os.Getenv(EnvConfigPath)
	if candidate == "" {
		def, err := DefaultPath()
		if err != nil {
			return Default(), "", nil
		}
		candidate = def
	}

	if _, err := os.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	}

	cfg, err := ParseConfig(candidate)
	return cfg, candidate, err
}

// DefaultPath returns the conventional preferences location under the user
// config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "unitconv", "config.yaml"), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
