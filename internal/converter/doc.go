// Package converter is the conversion engine: pure functions that convert
// values between units of one category, validate in-progress numeric text,
// and format results for display.
//
// Every function is stateless and safe for concurrent use.
//
//	v, err := converter.Convert(1, "km", "m", units.Length) // 1000
//	converter.FormatResult(v)                                // "1000"
//	converter.ValidateNumericInput("12.3.4")                 // invalid: "Invalid decimal format"
package converter
