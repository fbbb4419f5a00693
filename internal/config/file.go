package config

import "fmt"

// Report format names accepted in the config file.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// File represents the structure of the .deckcount configuration file.
// Every field is optional; nil means "not set in the file".
type File struct {
	// Input is the catalog path.
	Input *string `yaml:"input,omitempty"`

	// Output is the report file path.
	Output *string `yaml:"output,omitempty"`

	// Format is one of text, json, or markdown.
	Format *string `yaml:"format,omitempty"`

	// MissingFirst places missing years and sets first.
	MissingFirst *bool `yaml:"missingFirst,omitempty"`

	// MissingLabel replaces the default "(none)" label.
	MissingLabel *string `yaml:"missingLabel,omitempty"`

	// LogFormat is text or json.
	LogFormat *string `yaml:"logFormat,omitempty"`
}

// Validate checks the values present in the file.
func (f *File) Validate() error {
	if f.Format != nil {
		switch *f.Format {
		case FormatText, FormatJSON, FormatMarkdown:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownFormat, *f.Format)
		}
	}
	if f.LogFormat != nil && *f.LogFormat != LogFormatText && *f.LogFormat != LogFormatJSON {
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, *f.LogFormat)
	}
	if f.Input != nil && *f.Input == "" {
		return ErrNoInput
	}
	return nil
}
