package converter

import (
	"math"

	"github.com/alexisbeaulieu97/unitconv/internal/units"
	unitconverrors "github.com/alexisbeaulieu97/unitconv/pkg/errors"
)

// Request is a single conversion to perform.
type Request struct {
	Value    float64
	From     string
	To       string
	Category units.Category
}

// Result is a converted value with its display form.
type Result struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Formatted string  `json:"formatted"`
}

// Convert converts value from one unit to another within category.
//
// Identical units return value unchanged without consulting the category,
// so this never fails when from == to. Otherwise NaN and infinities are
// rejected with an InvalidValueError and unknown categories with an
// UnsupportedCategoryError.
func Convert(value float64, from, to string, category units.Category) (float64, error) {
	if from == to {
		return value, nil
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, unitconverrors.NewInvalidValueError(value)
	}

	switch category {
	case units.Length:
		return ConvertLength(value, from, to)
	case units.Weight:
		return ConvertWeight(value, from, to)
	case units.Temperature:
		return ConvertTemperature(value, from, to)
	case units.Area:
		return ConvertArea(value, from, to)
	case units.Volume:
		return ConvertVolume(value, from, to)
	default:
		return 0, unitconverrors.NewUnsupportedCategoryError(category.String())
	}
}

// Run converts req and formats the outcome.
func Run(req Request) (Result, error) {
	value, err := Convert(req.Value, req.From, req.To, req.Category)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: value, Unit: req.To, Formatted: FormatResult(value)}, nil
}
