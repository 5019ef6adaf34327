package converter

import (
	"github.com/alexisbeaulieu97/unitconv/internal/units"
	unitconverrors "github.com/alexisbeaulieu97/unitconv/pkg/errors"
)

// linear relates a unit to its category's base unit: base = v*mul/div.
type linear struct {
	mul float64
	div float64
}

func (l linear) toBase(v float64) float64   { return v * l.mul / l.div }
func (l linear) fromBase(v float64) float64 { return v * l.div / l.mul }

// Base units: meter, gram, square meter, liter.
var (
	lengthScale = map[string]linear{
		"mm": {mul: 1, div: 1000},
		"cm": {mul: 1, div: 100},
		"m":  {mul: 1, div: 1},
		"km": {mul: 1000, div: 1},
	}
	weightScale = map[string]linear{
		"mg": {mul: 1, div: 1000},
		"g":  {mul: 1, div: 1},
		"kg": {mul: 1000, div: 1},
	}
	areaScale = map[string]linear{
		"m²":  {mul: 1, div: 1},
		"km²": {mul: 1000000, div: 1},
	}
	volumeScale = map[string]linear{
		"ml": {mul: 1, div: 1000},
		"l":  {mul: 1, div: 1},
	}
)

// thermal maps a temperature scale to and from Celsius.
type thermal struct {
	toCelsius   func(float64) float64
	fromCelsius func(float64) float64
}

var temperatureScale = map[string]thermal{
	"C": {
		toCelsius:   func(v float64) float64 { return v },
		fromCelsius: func(c float64) float64 { return c },
	},
	"F": {
		toCelsius:   func(v float64) float64 { return (v - 32) * 5 / 9 },
		fromCelsius: func(c float64) float64 { return c*9/5 + 32 },
	},
	"K": {
		toCelsius:   func(v float64) float64 { return v - 273.15 },
		fromCelsius: func(c float64) float64 { return c + 273.15 },
	},
}

// ConvertLength converts between mm, cm, m and km.
func ConvertLength(value float64, from, to string) (float64, error) {
	return convertLinear(units.Length, lengthScale, value, from, to)
}

// ConvertWeight converts between mg, g and kg.
func ConvertWeight(value float64, from, to string) (float64, error) {
	return convertLinear(units.Weight, weightScale, value, from, to)
}

// ConvertArea converts between m² and km².
func ConvertArea(value float64, from, to string) (float64, error) {
	return convertLinear(units.Area, areaScale, value, from, to)
}

// ConvertVolume converts between ml and l.
func ConvertVolume(value float64, from, to string) (float64, error) {
	return convertLinear(units.Volume, volumeScale, value, from, to)
}

// ConvertTemperature converts between C, F and K through Celsius. Identical
// units return value untouched since the round trip through Celsius is not
// exact in floating point.
func ConvertTemperature(value float64, from, to string) (float64, error) {
	if from == to {
		return value, nil
	}

	src, ok := temperatureScale[from]
	if !ok {
		return 0, unitconverrors.NewUnsupportedUnitError(from, units.Temperature.String())
	}
	celsius := src.toCelsius(value)

	dst, ok := temperatureScale[to]
	if !ok {
		return 0, unitconverrors.NewUnsupportedUnitError(to, units.Temperature.String())
	}
	return dst.fromCelsius(celsius), nil
}

func convertLinear(category units.Category, scale map[string]linear, value float64, from, to string) (float64, error) {
	src, ok := scale[from]
	if !ok {
		return 0, unitconverrors.NewUnsupportedUnitError(from, category.String())
	}
	base := src.toBase(value)

	dst, ok := scale[to]
	if !ok {
		return 0, unitconverrors.NewUnsupportedUnitError(to, category.String())
	}
	return dst.fromBase(base), nil
}
