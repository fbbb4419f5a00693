package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/deckcount/internal/model"
)

// JSONWriter renders the summary as one JSON document: the years in report
// order, each with its sets, counts and sorted deck names.
type JSONWriter struct {
	baseWriter

	// indent is the per-level indentation; empty means compact output.
	indent string

	// version, when set, wraps the summary in a JSONReport.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint indents nested years, sets and names by two spaces.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = "  "
	}
}

// WithVersion records the deckcount version next to the report.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter writing compact JSON to output
// unless options say otherwise.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// JSONReport is the envelope used when a version is attached.
type JSONReport struct {
	// Version is the deckcount build that produced the report.
	Version string `json:"version"`

	// Report is the grouped catalog.
	Report *model.Summary `json:"report"`
}

// Write encodes the summary, followed by a newline.
func (w *JSONWriter) Write(summary *model.Summary) (int, error) {
	var v any = summary
	if w.version != "" {
		v = &JSONReport{Version: w.version, Report: summary}
	}

	var data []byte
	var err error
	if w.indent == "" {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", w.indent)
	}
	if err != nil {
		return 0, err
	}
	return w.output.Write(append(data, '\n'))
}
