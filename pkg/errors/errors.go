package errors

import (
	"fmt"
	"strings"
)

// InvalidVariantError reports a variant selection outside an axis's declared
// value set, or a reference to an axis the scheme never declared.
type InvalidVariantError struct {
	Axis  string
	Value string
	Known []string
}

// NewInvalidVariantError constructs an InvalidVariantError. Known lists the
// declared values so callers can surface the enumeration in messages.
func NewInvalidVariantError(axis, value string, known []string) error {
	return &InvalidVariantError{Axis: axis, Value: value, Known: known}
}

func (e *InvalidVariantError) Error() string {
	if e == nil {
		return ""
	}
	if e.Value == "" {
		return fmt.Sprintf("invalid variant: unknown axis %q", e.Axis)
	}
	if len(e.Known) > 0 {
		return fmt.Sprintf("invalid variant: axis %q has no value %q (declared: %s)", e.Axis, e.Value, strings.Join(e.Known, ", "))
	}
	return fmt.Sprintf("invalid variant: axis %q has no value %q", e.Axis, e.Value)
}

// ParseError represents a theme file parsing failure with optional line metadata.
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

// ValidationError captures theme configuration validation issues.
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
