// Package model defines the core data structures used throughout deckcount.
//
// This package contains the following main types:
//   - Key: An optional field value, either Present or Missing
//   - Record: One cataloged deck with optional name, year and set
//   - Grouping: The year -> set -> bucket structure built from records
//   - Summary: The sorted, display-ready view of a Grouping
//
// Models live in their own package so that the catalog loader, the
// pipeline and the report writers can share them without import cycles.
package model
