package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and File.Apply().
var (
	// ErrNoInput is returned when no input file is configured.
	ErrNoInput = errors.New("no input specified: provide a purchase data file")

	// ErrInvalidTop is returned when the ranked row limit is negative.
	// Zero is valid and means every row.
	ErrInvalidTop = errors.New("invalid top: must be non-negative")

	// ErrInvalidConcurrency is returned when the load concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrIncompleteColumns is returned when a record field has no column name
	// or two fields share one.
	ErrIncompleteColumns = errors.New("incomplete column mapping: every field needs its own column name")

	// ErrUnknownFormat is returned when the config file names an output
	// format other than text, json or markdown.
	ErrUnknownFormat = errors.New("unknown report format")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
