// Package database reads deck catalogs stored in SQLite files.
//
// A catalog database holds one table (decks by default) with name, year
// and set columns. The file is opened read-only; deckcount never writes
// to it. modernc.org/sqlite is used so the binary stays CGO-free.
package database
