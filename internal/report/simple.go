package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/deckcount/internal/model"
)

// SeparatorWidth is the width of the line printed before the total.
const SeparatorWidth = 50

// SimpleWriter outputs the plain-text report:
//
//	<year>:
//	  <set> (<count> decks)
//	    - <name>
//
//	==================================================
//	TOTAL: <total> decks
//
// Each year block and the separator are preceded by an empty line.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary in human-readable format.
// The total is accumulated from the buckets as they are printed.
func (w *SimpleWriter) Write(summary *model.Summary) (int, error) {
	var sb strings.Builder

	total := 0
	for _, year := range summary.Years {
		sb.WriteString(fmt.Sprintf("\n%s:\n", year.Year))
		for _, set := range year.Sets {
			count := len(set.Names)
			total += count
			sb.WriteString(fmt.Sprintf("  %s (%d decks)\n", set.Set, count))
			for _, name := range set.Names {
				sb.WriteString(fmt.Sprintf("    - %s\n", name))
			}
		}
	}

	w.writeFooter(&sb, total)

	return w.output.Write([]byte(sb.String()))
}

// writeFooter writes the separator and the grand total.
func (w *SimpleWriter) writeFooter(sb *strings.Builder, total int) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", SeparatorWidth))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("TOTAL: %d decks\n", total))
}
