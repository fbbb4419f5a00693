package report

import (
	"io"

	"github.com/nao1215/deckcount/internal/model"
)

// Writer defines the interface for report output.
// Implementations write a catalog summary in various formats.
type Writer interface {
	// Write outputs the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(summary *model.Summary) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// Format selects a report writer.
type Format int

const (
	// FormatText is the plain-text report.
	FormatText Format = iota
	// FormatJSON is the JSON report.
	FormatJSON
	// FormatMarkdown is the Markdown report.
	FormatMarkdown
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "markdown"
	default:
		return "text"
	}
}

// NewWriter returns the writer for format.
// version is only used by the JSON writer.
func NewWriter(format Format, output io.Writer, version string) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint(), WithVersion(version))
	case FormatMarkdown:
		return NewMarkdownWriter(output)
	default:
		return NewSimpleWriter(output)
	}
}
