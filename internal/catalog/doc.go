// Package catalog loads deck records from catalog files.
//
// Three encodings are supported, chosen by file extension:
//   - .json (and any unknown extension): an array of record objects
//   - .yaml / .yml: a sequence of record mappings
//   - .db / .sqlite / .sqlite3: a SQLite database with a decks table
//
// Every record object may carry name, year and set; any of them may be
// absent or null. Other fields are ignored.
//
// Load fails with ErrFileNotFound when the path does not exist and with a
// *ParseError (matching ErrParse) when the content is malformed.
package catalog
