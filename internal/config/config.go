package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/nao1215/deckcount/internal/catalog"
	"github.com/nao1215/deckcount/internal/model"
	"github.com/nao1215/deckcount/internal/report"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "deckcount"

	// DefaultInputPath is the catalog read when nothing else is configured.
	DefaultInputPath = catalog.DefaultPath

	// DefaultMissingLabel is printed for a missing year, set, or name.
	DefaultMissingLabel = model.DefaultMissingLabel

	// LogFormatText writes diagnostics as logfmt-style text.
	LogFormatText = "text"

	// LogFormatJSON writes diagnostics as one JSON object per line.
	LogFormatJSON = "json"
)

// Config holds all configuration options for deckcount.
// It is populated from defaults, the config file and CLI flags, and then
// passed down explicitly rather than kept in global state.
type Config struct {
	// InputPath is the catalog file to report on.
	InputPath string

	// JSONReport selects the JSON report.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects the Markdown report.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// MissingFirst places records without a year or set before the others.
	MissingFirst bool

	// MissingLabel is printed in place of a missing year, set, or name.
	MissingLabel string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// LogFormat is LogFormatText or LogFormatJSON.
	LogFormat string

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		InputPath:    DefaultInputPath,
		MissingLabel: DefaultMissingLabel,
		LogFormat:    LogFormatText,
	}
}

// XDGConfigDir returns the XDG config directory for deckcount.
// On Linux: ~/.config/deckcount
// On macOS: ~/Library/Application Support/deckcount
// On Windows: %APPDATA%\deckcount
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrNoInput
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, c.LogFormat)
	}

	return nil
}

// ReportFormat returns the selected report format.
func (c *Config) ReportFormat() report.Format {
	switch {
	case c.JSONReport:
		return report.FormatJSON
	case c.MarkdownReport:
		return report.FormatMarkdown
	default:
		return report.FormatText
	}
}

// Ordering returns the key ordering for the report.
func (c *Config) Ordering() model.Ordering {
	return model.Ordering{MissingFirst: c.MissingFirst}
}

// Apply overlays the values set in the config file.
// Fields the file leaves out keep their current value.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.Input != nil {
		c.InputPath = *f.Input
	}
	if f.Output != nil {
		c.ReportFile = *f.Output
	}
	if f.Format != nil {
		c.JSONReport = *f.Format == FormatJSON
		c.MarkdownReport = *f.Format == FormatMarkdown
	}
	if f.MissingFirst != nil {
		c.MissingFirst = *f.MissingFirst
	}
	if f.MissingLabel != nil {
		c.MissingLabel = *f.MissingLabel
	}
	if f.LogFormat != nil {
		c.LogFormat = *f.LogFormat
	}
}
