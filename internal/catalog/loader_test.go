package catalog

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/deckcount/internal/model"
)

// writeFile creates a file with the given content in a temp directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// TestDetectFormat tests extension based format selection.
func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Format
	}{
		{"src/data/precons-data.json", FormatJSON},
		{"decks.YAML", FormatYAML},
		{"decks.yml", FormatYAML},
		{"decks.db", FormatSQLite},
		{"decks.sqlite3", FormatSQLite},
		{"decks.txt", FormatJSON},
		{"decks", FormatJSON},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if got := DetectFormat(tt.path); got != tt.want {
				t.Errorf("got %v, expected %v", got, tt.want)
			}
		})
	}
}

// TestLoadJSON tests loading JSON catalogs.
func TestLoadJSON(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("keeps source order", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "decks.json", `[
			{"name":"B","year":2020,"set":"X"},
			{"name":"A","year":2020,"set":"X"},
			{"name":"C","year":2019,"set":"Y","id":"c-1"}
		]`)

		got, err := Load(ctx, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []model.Record{
			model.NewRecord("B", "2020", "X"),
			model.NewRecord("A", "2020", "X"),
			model.NewRecord("C", "2019", "Y"),
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(model.Key{})); diff != "" {
			t.Errorf("records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty array", func(t *testing.T) {
		t.Parallel()
		got, err := Load(ctx, writeFile(t, "decks.json", "[]"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", got)
		}
	})

	t.Run("null is an empty catalog", func(t *testing.T) {
		t.Parallel()
		got, err := Load(ctx, writeFile(t, "decks.json", "null"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d records, expected 0", len(got))
		}
	})

	t.Run("byte order mark is ignored", func(t *testing.T) {
		t.Parallel()
		got, err := Load(ctx, writeFile(t, "decks.json", "\ufeff[{\"name\":\"A\"}]"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("got %d records, expected 1", len(got))
		}
	})

	t.Run("missing year is not an error", func(t *testing.T) {
		t.Parallel()
		got, err := Load(ctx, writeFile(t, "decks.json", `[{"name":"A","set":"S"}]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got[0].Year.IsMissing() {
			t.Error("expected year to be missing")
		}
	})

	t.Run("fields are matched by exact name", func(t *testing.T) {
		t.Parallel()
		data := `[{"name":"A","Year":1999,"SET":"Z"},{"name":"B","year":2020,"Year":1999}]`

		got, err := Decode("decks.json", []byte(data), FormatJSON)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []model.Record{
			{Name: model.Present("A")},
			{Name: model.Present("B"), Year: model.Number(2020)},
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(model.Key{})); diff != "" {
			t.Errorf("records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("malformed JSON returns ParseError with position", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "decks.json", "[\n  {\"name\": \"A\",}\n]")

		_, err := Load(ctx, path)
		if !errors.Is(err, ErrParse) {
			t.Fatalf("expected ErrParse, got %v", err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("expected *ParseError, got %T", err)
		}
		if pe.Line != 2 {
			t.Errorf("got line %d, expected 2", pe.Line)
		}
		if pe.Format != "json" {
			t.Errorf("got format %q, expected json", pe.Format)
		}
		if !strings.Contains(err.Error(), path) {
			t.Errorf("expected error to mention path, got %q", err.Error())
		}
	})

	t.Run("object at top level returns ParseError", func(t *testing.T) {
		t.Parallel()
		_, err := Load(ctx, writeFile(t, "decks.json", `{"name":"A"}`))
		if !errors.Is(err, ErrParse) {
			t.Errorf("expected ErrParse, got %v", err)
		}
	})

	t.Run("non-scalar field returns ParseError", func(t *testing.T) {
		t.Parallel()
		_, err := Load(ctx, writeFile(t, "decks.json", `[{"name":["A"]}]`))
		if !errors.Is(err, ErrParse) {
			t.Errorf("expected ErrParse, got %v", err)
		}
		if !errors.Is(err, model.ErrUnsupportedValue) {
			t.Errorf("expected ErrUnsupportedValue in chain, got %v", err)
		}
	})

	t.Run("empty file returns ParseError", func(t *testing.T) {
		t.Parallel()
		_, err := Load(ctx, writeFile(t, "decks.json", ""))
		if !errors.Is(err, ErrParse) {
			t.Errorf("expected ErrParse, got %v", err)
		}
	})
}

// TestLoadYAML tests loading YAML catalogs.
func TestLoadYAML(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("reads sequence of mappings", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "decks.yaml", `
- name: Rebellious Rebels
  year: 2021
  set: Kaldheim
- name: Phantom Premonition
  year: 2021
  set: Innistrad Midnight Hunt
`)
		got, err := Load(ctx, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []model.Record{
			model.NewRecord("Rebellious Rebels", "2021", "Kaldheim"),
			model.NewRecord("Phantom Premonition", "2021", "Innistrad Midnight Hunt"),
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(model.Key{})); diff != "" {
			t.Errorf("records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		got, err := Load(ctx, writeFile(t, "decks.yml", ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d records, expected 0", len(got))
		}
	})

	t.Run("malformed YAML returns ParseError with line", func(t *testing.T) {
		t.Parallel()
		_, err := Load(ctx, writeFile(t, "decks.yaml", "- name: A\n  year: [2020\n"))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("expected *ParseError, got %v", err)
		}
		if pe.Line == 0 {
			t.Error("expected a line number")
		}
	})

	t.Run("mapping at top level returns ParseError", func(t *testing.T) {
		t.Parallel()
		_, err := Load(ctx, writeFile(t, "decks.yaml", "name: A\n"))
		if !errors.Is(err, ErrParse) {
			t.Errorf("expected ErrParse, got %v", err)
		}
	})
}

// TestLoadSQLite tests loading SQLite catalogs.
func TestLoadSQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("reads decks table", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "decks.db")
		db, err := sql.Open("sqlite", path)
		if err != nil {
			t.Fatal(err)
		}
		for _, stmt := range []string{
			`CREATE TABLE decks (name TEXT, year INTEGER, "set" TEXT)`,
			`INSERT INTO decks VALUES ('Necron Dynasties', 2022, 'Warhammer 40,000')`,
		} {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				t.Fatal(err)
			}
		}
		_ = db.Close()

		got, err := Load(ctx, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0] != model.NewRecord("Necron Dynasties", "2022", "Warhammer 40,000") {
			t.Errorf("unexpected records: %+v", got)
		}
	})

	t.Run("file that is not a database returns ParseError", func(t *testing.T) {
		t.Parallel()
		_, err := Load(ctx, writeFile(t, "decks.db", "definitely not sqlite, just some text here"))
		if !errors.Is(err, ErrParse) {
			t.Errorf("expected ErrParse, got %v", err)
		}
	})
}

// TestLoadNotFound tests the File-Not-Found error.
func TestLoadNotFound(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"missing.json", "missing.yaml", "missing.db"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), name)
			_, err := Load(context.Background(), path)
			if !errors.Is(err, ErrFileNotFound) {
				t.Errorf("expected ErrFileNotFound, got %v", err)
			}
			if errors.Is(err, ErrParse) {
				t.Error("did not expect ErrParse")
			}
		})
	}
}

// TestDecodeUnsupportedFormat tests that SQLite cannot be decoded from bytes.
func TestDecodeUnsupportedFormat(t *testing.T) {
	t.Parallel()

	if _, err := Decode("x.db", []byte("x"), FormatSQLite); err == nil {
		t.Error("expected error")
	}
}

// TestParseErrorMessage tests ParseError formatting.
func TestParseErrorMessage(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")

	withPos := &ParseError{Path: "a.json", Format: "json", Line: 3, Column: 7, Err: base}
	if got := withPos.Error(); got != "a.json:3:7: invalid json: boom" {
		t.Errorf("got %q", got)
	}

	noPos := &ParseError{Path: "a.db", Format: "sqlite", Err: base}
	if got := noPos.Error(); got != "a.db: invalid sqlite: boom" {
		t.Errorf("got %q", got)
	}

	if !errors.Is(withPos, base) || !errors.Is(withPos, ErrParse) {
		t.Error("expected ParseError to unwrap to both ErrParse and the cause")
	}
}
