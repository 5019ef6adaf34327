package converter

import (
	"math"
	"strconv"
	"strings"
)

const (
	minPlain = 0.0001
	maxPlain = 9999999

	plainDigits       = 6
	exponentialDigits = 5

	// Enough digits to print any float64 exactly.
	exactPrecision = 800
)

// FormatResult renders a converted value for display. It never fails:
// non-finite values render as "Invalid", magnitudes below 0.0001 or above
// 9999999 use exponential notation with four fractional digits, and all
// other values are rounded to six significant digits without trailing zeros.
// Exact ties round away from zero.
func FormatResult(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "Invalid"
	}
	if value == 0 {
		return "0"
	}

	sign := ""
	if value < 0 {
		sign = "-"
	}

	abs := math.Abs(value)
	if abs < minPlain || abs > maxPlain {
		digits, exp := roundSignificant(abs, exponentialDigits)
		return sign + digits[:1] + "." + digits[1:] + "e" + exponent(exp)
	}

	digits, exp := roundSignificant(abs, plainDigits)
	rounded, err := strconv.ParseFloat(digits[:1]+"."+digits[1:]+"e"+strconv.Itoa(exp), 64)
	if err != nil {
		rounded = abs
	}
	return sign + strconv.FormatFloat(rounded, 'f', -1, 64)
}

// roundSignificant rounds v > 0 to n significant digits, half away from
// zero, using its exact decimal expansion. It returns the n digits and the
// decimal exponent of the first one.
func roundSignificant(v float64, n int) (string, int) {
	mantissa, expText, _ := strings.Cut(strconv.FormatFloat(v, 'e', exactPrecision, 64), "e")
	exp, _ := strconv.Atoi(expText)
	all := strings.Replace(mantissa, ".", "", 1)

	kept := []byte(all[:n])
	if all[n] >= '5' {
		i := n - 1
		for ; i >= 0 && kept[i] == '9'; i-- {
			kept[i] = '0'
		}
		if i < 0 {
			kept[0] = '1'
			exp++
		} else {
			kept[i]++
		}
	}
	return string(kept), exp
}

// exponent formats exp as a sign and digits with no zero padding.
func exponent(exp int) string {
	if exp < 0 {
		return "-" + strconv.Itoa(-exp)
	}
	return "+" + strconv.Itoa(exp)
}
