package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/deckcount/internal/database"
	"github.com/nao1215/deckcount/internal/model"
)

// DefaultPath is where the catalog is read from when no path is given.
const DefaultPath = "src/data/precons-data.json"

// Format identifies how a catalog file is encoded.
type Format int

const (
	// FormatJSON is a JSON array of record objects.
	FormatJSON Format = iota

	// FormatYAML is a YAML sequence of record mappings.
	FormatYAML

	// FormatSQLite is a SQLite database with a decks table.
	FormatSQLite
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// DetectFormat picks a format from the file extension.
// Anything unrecognized is treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatJSON
	}
}

// Load reads all records from the catalog at path, in source order.
//
// It returns an error wrapping ErrFileNotFound when path does not exist,
// and a *ParseError when the content is malformed. The file is read to
// completion and closed before Load returns.
func Load(ctx context.Context, path string) ([]model.Record, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to access catalog: %w", err)
	}

	format := DetectFormat(path)
	if format == FormatSQLite {
		return loadSQLite(ctx, path)
	}

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(path, data, format)
}

// Decode parses catalog bytes in the given format.
// path is only used in error messages.
func Decode(path string, data []byte, format Format) ([]model.Record, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(path, data)
	case FormatYAML:
		return decodeYAML(path, data)
	default:
		return nil, fmt.Errorf("cannot decode %s catalog from bytes", format)
	}
}

// readFile reads the whole file and releases the handle on every path.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided catalog path is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return data, nil
}

// utf8BOM is stripped from the start of text catalogs.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func decodeJSON(path string, data []byte) ([]model.Record, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		pe := &ParseError{Path: path, Format: FormatJSON.String(), Err: err}

		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syntaxErr):
			pe.Line, pe.Column = position(data, syntaxErr.Offset)
		case errors.As(err, &typeErr):
			pe.Line, pe.Column = position(data, typeErr.Offset)
		}
		return nil, pe
	}

	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}

// yamlLine extracts the line number yaml.v3 puts in its messages.
var yamlLine = regexp.MustCompile(`line (\d+)`)

func decodeYAML(path string, data []byte) ([]model.Record, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var records []model.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		pe := &ParseError{Path: path, Format: FormatYAML.String(), Err: err}
		if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
			pe.Line, _ = strconv.Atoi(m[1])
		}
		return nil, pe
	}

	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}

func loadSQLite(ctx context.Context, path string) ([]model.Record, error) {
	db, err := database.Open(path, database.DefaultOptions())
	if err != nil {
		if errors.Is(err, database.ErrDatabaseNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer db.Close()

	records, err := db.Records(ctx)
	if err != nil {
		return nil, &ParseError{Path: path, Format: FormatSQLite.String(), Err: err}
	}
	return records, nil
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (int, int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line := bytes.Count(before, []byte("\n")) + 1
	col := int(offset) - bytes.LastIndexByte(before, '\n')
	return line, col
}
