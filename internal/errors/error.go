package errors

import (
	"bufio"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryReconcile Category = "reconcile"
	CategoryConfig    Category = "config"
	CategoryCLI       Category = "cli"
)

// Location represents a source code location.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// CoatError is a structured error with an optional source location.
type CoatError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	Location *Location

	// Context contains source lines around Location.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *CoatError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Location != nil {
		msg += " (" + e.Location.String() + ")"
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *CoatError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a source location and reads the surrounding lines when
// the file is available.
func (e *CoatError) WithLocation(file string, line, column int) *CoatError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *CoatError) WithSuggestion(s string) *CoatError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the template's detail text.
func (e *CoatError) WithDetail(d string) *CoatError {
	e.Detail = d
	return e
}

// WithDetailf formats the detail text.
func (e *CoatError) WithDetailf(format string, args ...any) *CoatError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *CoatError) Wrap(err error) *CoatError {
	e.Wrapped = err
	return e
}

// readContextLines reads up to contextSize lines centered on targetLine.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a CoatError from a registered error code.
func New(code string) *CoatError {
	template, ok := registry[code]
	if !ok {
		return &CoatError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &CoatError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates an uncoded error with a formatted message.
func Newf(category Category, format string, args ...any) *CoatError {
	return &CoatError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err in a CoatError with the given code. A CoatError is
// returned unchanged.
func FromError(err error, code string) *CoatError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*CoatError); ok {
		return ce
	}
	return New(code).Wrap(err)
}
