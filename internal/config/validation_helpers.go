package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	unitconverrors "github.com/alexisbeaulieu97/unitconv/pkg/errors"
)

// convertValidationError normalizes validator errors into unitconv validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return unitconverrors.NewValidationError(field, describe(ve), err)
	}

	return unitconverrors.NewValidationError("config", err.Error(), err)
}

func describe(fe validator.FieldError) string {
	value := fmt.Sprint(fe.Value())
	switch fe.Tag() {
	case "required":
		return "is required"
	case "category":
		return fmt.Sprintf("unknown category %q", value)
	case "category_unit":
		return fmt.Sprintf("unit %q does not belong to category %q", value, fe.Param())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", value, fe.Param())
	case "schema_version":
		return fmt.Sprintf("version %q must follow major.minor", value)
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

// yamlishFieldName turns "Config.Defaults.From" into "defaults.from".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
