package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/deckcount/internal/model"
)

// MarkdownWriter outputs reports in GitHub-flavored Markdown.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *model.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeYears(md, summary)
	w.writeFooter(md, summary)

	return len(md.String()), md.Build()
}

// writeHeader writes the title, the overview table and the chart.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, summary *model.Summary) {
	md.H1("Deck Catalog Report")
	md.PlainText("")

	rows := [][]string{}
	if summary.Source != "" {
		rows = append(rows, []string{"Source", "`" + summary.Source + "`"})
	}
	rows = append(rows,
		[]string{"Years", strconv.Itoa(summary.YearCount())},
		[]string{"Sets", strconv.Itoa(summary.SetCount())},
		[]string{"Decks", strconv.Itoa(summary.Total)},
	)
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	if summary.IsEmpty() {
		md.Note("No decks found in the catalog.")
		md.PlainText("")
		return
	}

	w.writePieChart(md, summary)
}

// writePieChart writes a mermaid pie chart of decks per year.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary *model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Decks per Year"),
		piechart.WithShowData(true),
	)

	for _, year := range summary.Years {
		if year.Count > 0 {
			chart.LabelAndIntValue(chartLabel(year.Year), uint64(year.Count))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeYears writes one section per year with its sets and deck names.
func (w *MarkdownWriter) writeYears(md *markdown.Markdown, summary *model.Summary) {
	for _, year := range summary.Years {
		md.H2(year.Year)
		md.PlainText("")

		rows := make([][]string, len(year.Sets))
		for i, set := range year.Sets {
			rows[i] = []string{escapeCell(set.Set), strconv.Itoa(set.Count)}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Set", "Decks"},
			Rows:   rows,
		})
		md.PlainText("")

		for _, set := range year.Sets {
			md.PlainText("### " + set.Set + " (" + strconv.Itoa(set.Count) + " decks)")
			md.PlainText("")
			md.BulletList(set.Names...)
			md.PlainText("")
		}
	}
}

// writeFooter writes the grand total.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, summary *model.Summary) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("**TOTAL: %d decks**", summary.Total)
}

// chartLabel makes s safe inside a quoted mermaid label, which has no
// escape for a double quote.
func chartLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}

// escapeCell keeps pipes inside a table cell from splitting it.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
