package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// DefaultMissingLabel is how a missing key is displayed in reports.
const DefaultMissingLabel = "(none)"

// ErrUnsupportedValue is returned when a record field holds an object or an
// array instead of a scalar.
var ErrUnsupportedValue = errors.New("unsupported value: expected a string, number, boolean or null")

// Key is an optional record field value: either Present with a canonical
// text form, or Missing. The zero value is Missing.
//
// Key is comparable and is used directly as a map key by Grouping, so two
// Keys built from the same value always compare equal with ==.
type Key struct {
	// text is the canonical text of a present value.
	text string

	// present is false for an absent or null field.
	present bool

	// numeric is true when text is a finite decimal number.
	numeric bool

	// num is the parsed value of text when numeric is true.
	num float64
}

// Missing returns the Missing key.
func Missing() Key {
	return Key{}
}

// Present returns a present key holding text.
// The text is normalized to Unicode NFC so that visually identical
// labels land in the same bucket.
func Present(text string) Key {
	k := Key{text: norm.NFC.String(text), present: true}
	if f, err := strconv.ParseFloat(k.text, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		k.numeric = true
		k.num = f
	}
	return k
}

// Number returns a present key for a numeric value.
// The text is the shortest decimal representation, so 2020 and 2020.0
// produce the same key.
func Number(f float64) Key {
	return Present(strconv.FormatFloat(f, 'f', -1, 64))
}

// IsMissing reports whether the key is Missing.
func (k Key) IsMissing() bool {
	return !k.present
}

// IsNumeric reports whether the key is a present, finite number.
func (k Key) IsNumeric() bool {
	return k.present && k.numeric
}

// Text returns the canonical text of the key, or "" when it is Missing.
func (k Key) Text() string {
	return k.text
}

// Label returns the text of the key, or missingLabel when it is Missing.
func (k Key) Label(missingLabel string) string {
	if !k.present {
		return missingLabel
	}
	return k.text
}

// String implements fmt.Stringer using DefaultMissingLabel.
func (k Key) String() string {
	return k.Label(DefaultMissingLabel)
}

// KeyOf converts a decoded scalar into a Key.
// nil becomes Missing; objects and arrays are rejected.
func KeyOf(v any) (Key, error) {
	switch x := v.(type) {
	case nil:
		return Missing(), nil
	case string:
		return Present(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Present(x.String()), nil //nolint:nilerr // keep literal for out-of-range numbers
		}
		return Number(f), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Present(strconv.Itoa(x)), nil
	case int64:
		return Present(strconv.FormatInt(x, 10)), nil
	case uint64:
		return Present(strconv.FormatUint(x, 10)), nil
	case bool:
		return Present(strconv.FormatBool(x)), nil
	case []byte:
		return Present(string(x)), nil
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return Present(x.Format(time.DateOnly)), nil
		}
		return Present(x.Format(time.RFC3339)), nil
	default:
		return Missing(), fmt.Errorf("%w: got %T", ErrUnsupportedValue, v)
	}
}

// UnmarshalJSON decodes a JSON scalar into the key.
// The key is only touched when the field is present in the object, so an
// absent field keeps the zero (Missing) value.
func (k *Key) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	key, err := KeyOf(v)
	if err != nil {
		return err
	}
	*k = key
	return nil
}

// UnmarshalYAML decodes a YAML scalar node into the key.
func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", node.Line, ErrUnsupportedValue)
	}

	switch node.ShortTag() {
	case "!!null":
		*k = Missing()
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			// YAML spellings like 0o17 or 1_000 that ParseFloat rejects.
			var n int64
			if decErr := node.Decode(&n); decErr != nil {
				*k = Present(node.Value)
				return nil //nolint:nilerr // keep literal when neither form parses
			}
			*k = Present(strconv.FormatInt(n, 10))
			return nil
		}
		*k = Number(f)
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*k = Present(strconv.FormatBool(b))
	default:
		*k = Present(node.Value)
	}
	return nil
}
