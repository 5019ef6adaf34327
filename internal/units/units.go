// Package units holds the static catalog of conversion categories and the
// units each one supports.
package units

import (
	"strings"

	unitconverrors "github.com/alexisbeaulieu97/unitconv/pkg/errors"
)

// Category identifies a closed group of mutually convertible units.
type Category string

const (
	Length      Category = "length"
	Weight      Category = "weight"
	Temperature Category = "temperature"
	Area        Category = "area"
	Volume      Category = "volume"
)

// String returns the category tag.
func (c Category) String() string {
	return string(c)
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case Length, Weight, Temperature, Area, Volume:
		return true
	default:
		return false
	}
}

// Unit describes a single unit within a category.
type Unit struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Symbol   string   `json:"symbol"`
	Category Category `json:"category"`
}

// Label renders the unit the way selectors display it, e.g. "Kilometer (km)".
func (u Unit) Label() string {
	return u.Name + " (" + u.Symbol + ")"
}

// CategoryInfo is the catalog entry for a category.
type CategoryInfo struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Glyph       string   `json:"glyph"`
	Fallback    string   `json:"-"`
	Units       []Unit   `json:"units"`
}

// Icon returns the glyph, or its ASCII fallback when unicode is false.
func (c CategoryInfo) Icon(unicode bool) string {
	if unicode {
		return c.Glyph
	}
	return c.Fallback
}

var catalog = []CategoryInfo{
	{
		ID:          Length,
		Name:        "Length",
		Description: "Convert between different units of length and distance",
		Glyph:       "📏",
		Fallback:    "[L]",
		Units: []Unit{
			{ID: "mm", Name: "Millimeter", Symbol: "mm", Category: Length},
			{ID: "cm", Name: "Centimeter", Symbol: "cm", Category: Length},
			{ID: "m", Name: "Meter", Symbol: "m", Category: Length},
			{ID: "km", Name: "Kilometer", Symbol: "km", Category: Length},
		},
	},
	{
		ID:          Weight,
		Name:        "Weight",
		Description: "Convert between different units of mass and weight",
		Glyph:       "⚖",
		Fallback:    "[W]",
		Units: []Unit{
			{ID: "mg", Name: "Milligram", Symbol: "mg", Category: Weight},
			{ID: "g", Name: "Gram", Symbol: "g", Category: Weight},
			{ID: "kg", Name: "Kilogram", Symbol: "kg", Category: Weight},
		},
	},
	{
		ID:          Temperature,
		Name:        "Temperature",
		Description: "Convert between different temperature scales",
		Glyph:       "🌡",
		Fallback:    "[T]",
		Units: []Unit{
			{ID: "C", Name: "Celsius", Symbol: "°C", Category: Temperature},
			{ID: "F", Name: "Fahrenheit", Symbol: "°F", Category: Temperature},
			{ID: "K", Name: "Kelvin", Symbol: "K", Category: Temperature},
		},
	},
	{
		ID:          Area,
		Name:        "Area",
		Description: "Convert between different units of area and surface",
		Glyph:       "▦",
		Fallback:    "[A]",
		Units: []Unit{
			{ID: "m²", Name: "Square Meter", Symbol: "m²", Category: Area},
			{ID: "km²", Name: "Square Kilometer", Symbol: "km²", Category: Area},
		},
	},
	{
		ID:          Volume,
		Name:        "Volume",
		Description: "Convert between different units of volume and capacity",
		Glyph:       "🧊",
		Fallback:    "[V]",
		Units: []Unit{
			{ID: "ml", Name: "Milliliter", Symbol: "ml", Category: Volume},
			{ID: "l", Name: "Liter", Symbol: "l", Category: Volume},
		},
	},
}

// Categories returns the catalog in display order. The returned slice is a
// copy and may be modified by the caller.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(catalog))
	for i, c := range catalog {
		out[i] = c.clone()
	}
	return out
}

// CategoryByID looks up a category by its tag.
func CategoryByID(id string) (CategoryInfo, bool) {
	for _, c := range catalog {
		if string(c.ID) == id {
			return c.clone(), true
		}
	}
	return CategoryInfo{}, false
}

// UnitByID looks up a unit within the given category. Unit identifiers are
// only meaningful relative to their category.
func UnitByID(unitID, categoryID string) (Unit, bool) {
	category, ok := CategoryByID(categoryID)
	if !ok {
		return Unit{}, false
	}
	for _, u := range category.Units {
		if u.ID == unitID {
			return u, true
		}
	}
	return Unit{}, false
}

// DefaultPair returns the initial from/to selection for a category: the first
// and second unit, or the first unit twice if only one exists.
func DefaultPair(c Category) (from, to string) {
	info, ok := CategoryByID(string(c))
	if !ok || len(info.Units) == 0 {
		return "", ""
	}
	from = info.Units[0].ID
	to = from
	if len(info.Units) > 1 {
		to = info.Units[1].ID
	}
	return from, to
}

// ParseCategory converts free-form text into a Category, ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", unitconverrors.NewUnsupportedCategoryError(s)
	}
	return c, nil
}

func (c CategoryInfo) clone() CategoryInfo {
	c.Units = append([]Unit(nil), c.Units...)
	return c
}
