package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/deckcount/internal/model"
)

// DefaultTable is the table read when Options.Table is empty.
const DefaultTable = "decks"

var (
	// ErrDatabaseNotFound is returned when the database file does not exist.
	ErrDatabaseNotFound = errors.New("database not found")

	// ErrTableNotFound is returned when the catalog table does not exist.
	ErrTableNotFound = errors.New("catalog table not found")
)

// recordColumns are the columns mapped onto model.Record, in Scan order.
var recordColumns = []string{"name", "year", "set"}

// CatalogDB provides read-only access to a SQLite deck catalog.
type CatalogDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// table is the catalog table name.
	table string
}

// Options configures CatalogDB behavior.
type Options struct {
	// Table is the name of the table holding the records.
	Table string
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		Table: DefaultTable,
	}
}

// Open opens an existing catalog database read-only.
// It never creates the file.
func Open(dbPath string, opts Options) (*CatalogDB, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, dbPath)
	} else if err != nil {
		return nil, fmt.Errorf("failed to check database path: %w", err)
	}

	if opts.Table == "" {
		opts.Table = DefaultTable
	}

	dsn, err := readOnlyDSN(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	return &CatalogDB{
		db:     db,
		table:  opts.Table,
	}, nil
}

// Close closes the database connection.
func (cdb *CatalogDB) Close() error {
	return cdb.db.Close()
}

// readOnlyDSN builds a file: URI opening dbPath read-only.
// The path is made absolute and percent-escaped, so '?', '#' and '%' in
// file names are not read as URI syntax.
func readOnlyDSN(dbPath string) (string, error) {
	abs, err := filepath.Abs(dbPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve database path: %w", err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String(), nil
}

// Records returns every row of the catalog table in rowid order.
// Columns the table does not have, and SQL NULLs, become Missing keys.
func (cdb *CatalogDB) Records(ctx context.Context) ([]model.Record, error) {
	cols, err := cdb.columns(ctx)
	if err != nil {
		return nil, err
	}

	exprs := make([]string, len(recordColumns))
	for i, c := range recordColumns {
		if cols[c] {
			exprs[i] = quoteIdent(c)
		} else {
			exprs[i] = "NULL"
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", strings.Join(exprs, ", "), quoteIdent(cdb.table))

	rows, err := cdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := []model.Record{}
	for rows.Next() {
		var name, year, set any
		if err := rows.Scan(&name, &year, &set); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		var r model.Record
		if r.Name, err = model.KeyOf(name); err != nil {
			return nil, fmt.Errorf("record %d: name: %w", len(records)+1, err)
		}
		if r.Year, err = model.KeyOf(year); err != nil {
			return nil, fmt.Errorf("record %d: year: %w", len(records)+1, err)
		}
		if r.Set, err = model.KeyOf(set); err != nil {
			return nil, fmt.Errorf("record %d: set: %w", len(records)+1, err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// columns returns the lower-cased column names of the catalog table.
func (cdb *CatalogDB) columns(ctx context.Context) (map[string]bool, error) {
	rows, err := cdb.db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", cdb.table)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect table %q: %w", cdb.table, err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column name: %w", err)
		}
		cols[strings.ToLower(name)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to inspect table %q: %w", cdb.table, err)
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, cdb.table)
	}
	return cols, nil
}

// quoteIdent quotes an SQL identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
