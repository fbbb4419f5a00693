// Package pipeline runs the deck report as a sequence of steps.
//
// A report is produced by four steps sharing one State: load the catalog,
// group the records by year and set, sort the grouping into a summary,
// and render the summary. Run wires the standard steps together and is
// the single entry point used by the CLI and by tests.
package pipeline
