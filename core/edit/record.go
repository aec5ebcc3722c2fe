// core/edit/record.go
package edit

import (
	"errors"
	"fmt"
)

// ErrInvalidVariant is returned for any variant other than edited/unedited.
var ErrInvalidVariant = errors.New("invalid edit variant: choose 'unedited' or 'edited'")

// Variant selects which replacement base a run writes at a resolved site.
type Variant string

const (
	Unedited Variant = "unedited"
	Edited   Variant = "edited"
)

// Variants is the canonical run order.
var Variants = []Variant{Unedited, Edited}

// ParseVariant maps a selector name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case Unedited, Edited:
		return v, nil
	}
	return "", fmt.Errorf("%w (got %q)", ErrInvalidVariant, s)
}

func (v Variant) Valid() bool { return v == Unedited || v == Edited }

func (v Variant) String() string { return string(v) }

// Record is one manifest row. Base fields are single uppercase bytes.
type Record struct {
	Row        int // 1-based data row in the manifest (reporting only)
	TargetID   string
	Position   int // used as a 0-based index, exactly as given
	Reference  byte
	Upstream   byte
	Downstream byte
	Unedited   byte
	Edited     byte
}

// Replacement returns the base written for v.
func (r Record) Replacement(v Variant) (byte, error) {
	switch v {
	case Unedited:
		return upper(r.Unedited), nil
	case Edited:
		return upper(r.Edited), nil
	}
	return 0, fmt.Errorf("%w (got %q)", ErrInvalidVariant, string(v))
}

func upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
