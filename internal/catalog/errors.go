package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when the catalog path does not exist.
	ErrFileNotFound = errors.New("catalog file not found")

	// ErrParse is returned when the catalog content is not well-formed.
	// Load returns a *ParseError that unwraps to it.
	ErrParse = errors.New("catalog parse error")
)

// ParseError describes malformed catalog content.
type ParseError struct {
	// Path is the catalog file.
	Path string

	// Format is the decoder that failed ("json", "yaml" or "sqlite").
	Format string

	// Line and Column locate the problem, 1-based. Zero when unknown.
	Line   int
	Column int

	// Err is the decoder error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: invalid %s: %v", e.Path, e.Line, e.Column, e.Format, e.Err)
	}
	return fmt.Sprintf("%s: invalid %s: %v", e.Path, e.Format, e.Err)
}

// Unwrap returns both ErrParse and the decoder error so that callers can
// match either with errors.Is.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
