package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/unitconv/internal/units"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	schemaVersionPattern = regexp.MustCompile(`^\d+\.\d+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("schema_version", func(fl validator.FieldLevel) bool {
			return schemaVersionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return units.Category(fl.Field().String()).Valid()
		})

		v.RegisterStructValidation(validateDefaultUnits, Defaults{})

		validateInst = v
	})

	return validateInst
}

// validateDefaultUnits checks that the default units belong to the default category.
func validateDefaultUnits(sl validator.StructLevel) {
	d, ok := sl.Current().Interface().(Defaults)
	if !ok || !units.Category(d.Category).Valid() {
		return
	}

	if d.From != "" {
		if _, found := units.UnitByID(d.From, d.Category); !found {
			sl.ReportError(d.From, "From", "From", "category_unit", d.Category)
		}
	}
	if d.To != "" {
		if _, found := units.UnitByID(d.To, d.Category); !found {
			sl.ReportError(d.To, "To", "To", "category_unit", d.Category)
		}
	}
}
