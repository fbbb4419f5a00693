// Package report renders catalog summaries.
//
// This package contains writers for different output formats:
//   - SimpleWriter: the plain-text report for terminal display
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: GitHub-flavored Markdown for documentation
//
// Writers take a *model.Summary, which already holds the display order,
// so every format lists years, sets and names identically.
package report
