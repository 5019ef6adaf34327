package converter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/unitconv/internal/units"
	unitconverrors "github.com/alexisbeaulieu97/unitconv/pkg/errors"
)

func TestConvertKnownValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		category units.Category
		value    float64
		from     string
		to       string
		want     float64
	}{
		{name: "km to m", category: units.Length, value: 1, from: "km", to: "m", want: 1000},
		{name: "mm to cm", category: units.Length, value: 25, from: "mm", to: "cm", want: 2.5},
		{name: "cm to km", category: units.Length, value: 150000, from: "cm", to: "km", want: 1.5},
		{name: "kg to g", category: units.Weight, value: 2.5, from: "kg", to: "g", want: 2500},
		{name: "mg to kg", category: units.Weight, value: 1000000, from: "mg", to: "kg", want: 1},
		{name: "F to C", category: units.Temperature, value: 32, from: "F", to: "C", want: 0},
		{name: "C to F", category: units.Temperature, value: 100, from: "C", to: "F", want: 212},
		{name: "C to K", category: units.Temperature, value: 0, from: "C", to: "K", want: 273.15},
		{name: "K to C", category: units.Temperature, value: 273.15, from: "K", to: "C", want: 0},
		{name: "km² to m²", category: units.Area, value: 2, from: "km²", to: "m²", want: 2000000},
		{name: "ml to l", category: units.Volume, value: 750, from: "ml", to: "l", want: 0.75},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Convert(tc.value, tc.from, tc.to, tc.category)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestConvertRoundTripsEveryPair(t *testing.T) {
	t.Parallel()

	samples := []float64{-40, 0.5, 1, 37.5, 12345.678}

	for _, cat := range units.Categories() {
		for _, a := range cat.Units {
			for _, b := range cat.Units {
				for _, v := range samples {
					there, err := Convert(v, a.ID, b.ID, cat.ID)
					require.NoError(t, err)
					back, err := Convert(there, b.ID, a.ID, cat.ID)
					require.NoError(t, err)
					assert.InDelta(t, v, back, 1e-9*math.Max(1, math.Abs(v)), "%s: %v %s -> %s -> %s", cat.ID, v, a.ID, b.ID, a.ID)
				}
			}
		}
	}
}

func TestConvertSameUnitIsIdentity(t *testing.T) {
	t.Parallel()

	values := []float64{0, -1.5, 1e300, math.Inf(1), math.Inf(-1)}
	for _, v := range values {
		got, err := Convert(v, "F", "F", units.Temperature)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := Convert(7, "miles", "miles", units.Length)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)

	got, err = Convert(3, "x", "x", units.Category("speed"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	got, err = Convert(math.NaN(), "m", "m", units.Length)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestConvertRejectsNonFiniteValues(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Convert(v, "m", "km", units.Length)
		require.ErrorIs(t, err, unitconverrors.ErrInvalidValue)
		assert.Equal(t, "invalid input value", err.Error())
	}
}

func TestConvertUnsupportedCategory(t *testing.T) {
	t.Parallel()

	_, err := Convert(1, "m", "km", units.Category("speed"))
	require.ErrorIs(t, err, unitconverrors.ErrUnsupportedCategory)

	var catErr *unitconverrors.UnsupportedCategoryError
	require.ErrorAs(t, err, &catErr)
	assert.Equal(t, "speed", catErr.Category)
}

func TestConvertUnsupportedUnit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		category units.Category
		from     string
		to       string
		bad      string
	}{
		{name: "length source", category: units.Length, from: "miles", to: "m", bad: "miles"},
		{name: "length target", category: units.Length, from: "m", to: "miles", bad: "miles"},
		{name: "weight target", category: units.Weight, from: "kg", to: "lb", bad: "lb"},
		{name: "temperature source", category: units.Temperature, from: "R", to: "C", bad: "R"},
		{name: "temperature target", category: units.Temperature, from: "C", to: "R", bad: "R"},
		{name: "area cross category", category: units.Area, from: "m", to: "m²", bad: "m"},
		{name: "volume target", category: units.Volume, from: "l", to: "gal", bad: "gal"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Convert(1, tc.from, tc.to, tc.category)
			require.ErrorIs(t, err, unitconverrors.ErrUnsupportedUnit)

			var unitErr *unitconverrors.UnsupportedUnitError
			require.ErrorAs(t, err, &unitErr)
			assert.Equal(t, tc.bad, unitErr.Unit)
			assert.Equal(t, tc.category.String(), unitErr.Category)
		})
	}
}

func TestConvertMilesNamesUnitAndCategory(t *testing.T) {
	t.Parallel()

	_, err := Convert(1, "miles", "m", units.Length)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "miles")
	assert.Contains(t, err.Error(), "length")
}

func TestRunEndToEnd(t *testing.T) {
	t.Parallel()

	cases := []struct {
		req  Request
		want string
	}{
		{req: Request{Value: 1, From: "km", To: "m", Category: units.Length}, want: "1000"},
		{req: Request{Value: 32, From: "F", To: "C", Category: units.Temperature}, want: "0"},
		{req: Request{Value: 100, From: "C", To: "F", Category: units.Temperature}, want: "212"},
		{req: Request{Value: 2.5, From: "kg", To: "g", Category: units.Weight}, want: "2500"},
	}

	for _, tc := range cases {
		res, err := Run(tc.req)
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Formatted)
		assert.Equal(t, tc.req.To, res.Unit)
	}

	_, err := Run(Request{Value: 1, From: "miles", To: "m", Category: units.Length})
	require.ErrorIs(t, err, unitconverrors.ErrUnsupportedUnit)
}
