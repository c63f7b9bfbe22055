package main

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/huepick/internal/color"
	huerrors "github.com/alexisbeaulieu97/huepick/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// parseColorArg parses a color given on the command line.
func parseColorArg(operation, arg string) (color.Value, error) {
	v, ok := color.Parse(arg)
	if !ok {
		return color.Value{}, newCommandError(operation, "reading color argument", huerrors.NewColorError("argument", arg), "Quote the color, e.g. 'rgb(10, 20, 30)' or '#336699'.")
	}
	return v, nil
}

// formatFlag adapts color.Format to a cobra flag value.
type formatFlag struct {
	target *color.Format
}

func (f formatFlag) String() string {
	if f.target == nil {
		return color.FormatHex.String()
	}
	return f.target.String()
}

func (f formatFlag) Set(value string) error {
	parsed, err := color.ParseFormat(value)
	if err != nil {
		return err
	}
	*f.target = parsed
	return nil
}

func (f formatFlag) Type() string {
	return "format"
}

func formatUsage(prefix string) string {
	var names []string
	for _, f := range color.Formats() {
		names = append(names, f.String())
	}
	return fmt.Sprintf("%s (%s)", prefix, strings.Join(names, "|"))
}
