// Package main provides the entry point for the deckcount CLI.
//
// deckcount reads a catalog of preconstructed decks and prints them grouped
// by release year and set, with per-set counts and a grand total.
//
// Usage:
//
//	deckcount
//	deckcount --input decks.yaml --markdown -o report.md
//
// See --help for all available options.
package main

// main is the entry point for deckcount.
func main() {
	Execute()
}
