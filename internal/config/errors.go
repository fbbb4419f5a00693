package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and File.Validate().
var (
	// ErrNoInput is returned when the catalog path is empty.
	ErrNoInput = errors.New("no input specified: provide a catalog path with --input")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownFormat is returned when the config file names a format
	// other than text, json, or markdown.
	ErrUnknownFormat = errors.New("unknown report format")

	// ErrUnknownLogFormat is returned when the log format is neither text
	// nor json.
	ErrUnknownLogFormat = errors.New("unknown log format: use text or json")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
