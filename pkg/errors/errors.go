package errors

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedColor is matched by every ColorError via errors.Is.
var ErrUnrecognizedColor = errors.New("unrecognized color")

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

// ColorError reports text that matches none of the color grammars.
type ColorError struct {
	Input string
	// Origin names where the text came from, e.g. a flag or config field.
	Origin string
}

// NewColorError constructs a ColorError.
func NewColorError(origin, input string) error {
	return &ColorError{Input: input, Origin: origin}
}

func (e *ColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Origin != "" {
		return fmt.Sprintf("%s: %s %q: expected #rgb, #rrggbb, rgb(), rgba(), hsl() or hsla()", e.Origin, ErrUnrecognizedColor, e.Input)
	}
	return fmt.Sprintf("%s %q: expected #rgb, #rrggbb, rgb(), rgba(), hsl() or hsla()", ErrUnrecognizedColor, e.Input)
}

// Is lets errors.Is match ErrUnrecognizedColor.
func (e *ColorError) Is(target error) bool {
	return target == ErrUnrecognizedColor
}
