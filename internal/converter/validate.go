package converter

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Messages reported by ValidateNumericInput.
const (
	MsgInvalidNumber   = "Please enter a valid number"
	MsgInvalidDecimal  = "Invalid decimal format"
	MsgInvalidNegative = "Invalid negative number format"
	MsgTooLarge        = "Number is too large"
)

var numericPattern = regexp.MustCompile(`^-?\d*\.?\d*$`)

// Validation is the outcome of checking in-progress numeric text.
type Validation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"error,omitempty"`
}

// ValidateNumericInput reports whether input is acceptable text for a value
// field, including partial entries such as "-", "." or "3.". The empty string
// is valid. The most specific message wins: decimal and sign placement are
// checked before the general character check.
func ValidateNumericInput(input string) Validation {
	if input == "" {
		return Validation{Valid: true}
	}

	if strings.Count(input, ".") > 1 {
		return Validation{Message: MsgInvalidDecimal}
	}

	if strings.Contains(input, "-") && (strings.Index(input, "-") != 0 || strings.Count(input, "-") > 1) {
		return Validation{Message: MsgInvalidNegative}
	}

	if !numericPattern.MatchString(input) {
		return Validation{Message: MsgInvalidNumber}
	}

	// ParseFloat returns ±Inf together with ErrRange on overflow.
	if v, err := strconv.ParseFloat(input, 64); (err == nil || errors.Is(err, strconv.ErrRange)) && math.IsInf(v, 0) {
		return Validation{Message: MsgTooLarge}
	}

	return Validation{Valid: true}
}

// ParseInput returns the numeric value of input when it is valid, complete
// text. In-progress entries such as "-" or "." report false.
func ParseInput(input string) (float64, bool) {
	if input == "" || !ValidateNumericInput(input).Valid {
		return 0, false
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
