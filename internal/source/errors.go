package source

import (
	"errors"
	"fmt"
	"strings"
)

// Schema violations carried by SchemaError.Err.
var (
	// ErrMissingHeader is returned when a delimited file has no header row.
	ErrMissingHeader = errors.New("missing header row")

	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("missing required column")

	// ErrInvalidValue is returned when a field cannot be parsed as its column's type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrMissingTable is returned when a SQLite database lacks the purchase table.
	ErrMissingTable = errors.New("missing table")
)

// ErrNoInput is returned by Load when no input path is given.
var ErrNoInput = errors.New("no input path given")

// LoadError reports an input that could not be opened or read.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load error: %v", e.Err)
	}
	return fmt.Sprintf("load error: %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// SchemaError reports a missing column or a malformed value.
// Row is the 1-based data row (header excluded), or 0 when the error
// concerns the table as a whole.
type SchemaError struct {
	Path   string
	Row    int
	Column string
	Err    error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	parts := []string{"schema error"}
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	if e.Row > 0 {
		parts = append(parts, fmt.Sprintf("row %d", e.Row))
	}
	if e.Column != "" {
		parts = append(parts, fmt.Sprintf("column %q", e.Column))
	}
	parts = append(parts, e.Err.Error())
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// withPath fills in the input path on errors produced without one.
func withPath(err error, path string) error {
	var se *SchemaError
	if errors.As(err, &se) {
		se.Path = path
		return se
	}
	var le *LoadError
	if errors.As(err, &le) {
		le.Path = path
		return le
	}
	return &LoadError{Path: path, Err: err}
}
