package model

import (
	"cmp"
	"strings"
)

// Ordering decides where keys sort relative to each other.
//
// Missing keys are placed last unless MissingFirst is set. Among present
// keys, Compare orders numbers numerically ahead of any text, while
// CompareLexical orders everything by byte-wise text comparison.
type Ordering struct {
	// MissingFirst places Missing keys before every present key.
	MissingFirst bool
}

// Compare orders years: numbers by value, then text lexically.
func (o Ordering) Compare(a, b Key) int {
	if c, done := o.compareMissing(a, b); done {
		return c
	}

	switch {
	case a.numeric && b.numeric:
		if c := cmp.Compare(a.num, b.num); c != 0 {
			return c
		}
		// 2020 and "2020.0" are equal in value but distinct keys.
		return strings.Compare(a.text, b.text)
	case a.numeric:
		return -1
	case b.numeric:
		return 1
	default:
		return strings.Compare(a.text, b.text)
	}
}

// CompareLexical orders sets and names by their text.
func (o Ordering) CompareLexical(a, b Key) int {
	if c, done := o.compareMissing(a, b); done {
		return c
	}
	return strings.Compare(a.text, b.text)
}

// compareMissing handles the cases where at least one key is Missing.
// done is false when both keys are present.
func (o Ordering) compareMissing(a, b Key) (int, bool) {
	switch {
	case !a.present && !b.present:
		return 0, true
	case !a.present:
		if o.MissingFirst {
			return -1, true
		}
		return 1, true
	case !b.present:
		if o.MissingFirst {
			return 1, true
		}
		return -1, true
	default:
		return 0, false
	}
}
