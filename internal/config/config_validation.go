package config

import (
	unitconverrors "github.com/alexisbeaulieu97/unitconv/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire
// configuration. Only the first violation is reported.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return unitconverrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}
