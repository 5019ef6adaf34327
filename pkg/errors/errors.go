package errors

import (
	stdErrors "errors"
	"fmt"
)

// Sentinels matched by the typed conversion errors through errors.Is.
var (
	ErrUnsupportedUnit     = stdErrors.New("unsupported unit")
	ErrUnsupportedCategory = stdErrors.New("unsupported category")
	ErrInvalidValue        = stdErrors.New("invalid input value")
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnsupportedUnitError reports a unit identifier outside its category's set.
type UnsupportedUnitError struct {
	Unit     string
	Category string
}

// NewUnsupportedUnitError constructs an UnsupportedUnitError.
func NewUnsupportedUnitError(unit, category string) error {
	return &UnsupportedUnitError{Unit: unit, Category: category}
}

func (e *UnsupportedUnitError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unsupported %s unit: %s", e.Category, e.Unit)
}

// Is matches ErrUnsupportedUnit.
func (e *UnsupportedUnitError) Is(target error) bool {
	return target == ErrUnsupportedUnit
}

// UnsupportedCategoryError reports a category tag outside the known set.
type UnsupportedCategoryError struct {
	Category string
}

// NewUnsupportedCategoryError constructs an UnsupportedCategoryError.
func NewUnsupportedCategoryError(category string) error {
	return &UnsupportedCategoryError{Category: category}
}

func (e *UnsupportedCategoryError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unsupported category: %s", e.Category)
}

// Is matches ErrUnsupportedCategory.
func (e *UnsupportedCategoryError) Is(target error) bool {
	return target == ErrUnsupportedCategory
}

// InvalidValueError is returned when a conversion receives NaN or an infinity.
type InvalidValueError struct {
	Value float64
}

// NewInvalidValueError constructs an InvalidValueError.
func NewInvalidValueError(value float64) error {
	return &InvalidValueError{Value: value}
}

func (e *InvalidValueError) Error() string {
	return "invalid input value"
}

// Is matches ErrInvalidValue.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
