package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one cataloged deck.
// Any field may be Missing; a record is never rejected for lacking one.
type Record struct {
	// Name is the deck name.
	Name Key `json:"name" yaml:"name"`

	// Year is the release year, the first grouping level.
	Year Key `json:"year" yaml:"year"`

	// Set is the product set or category label, the second grouping level.
	Set Key `json:"set" yaml:"set"`
}

// NewRecord returns a Record with all three fields present.
func NewRecord(name, year, set string) Record {
	return Record{
		Name: Present(name),
		Year: Present(year),
		Set:  Present(set),
	}
}

// UnmarshalJSON decodes a record object.
// Only the exact keys name, year and set are read; keys differing in case
// such as "Year" are extra fields and ignored. A null record is a no-op.
func (r *Record) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var rec Record
	for _, f := range []struct {
		name string
		dst  *Key
	}{
		{"name", &rec.Name},
		{"year", &rec.Year},
		{"set", &rec.Set},
	} {
		raw, ok := fields[f.name]
		if !ok {
			continue
		}
		if err := f.dst.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}

	*r = rec
	return nil
}
