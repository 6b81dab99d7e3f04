// SPDX-License-Identifier: MIT
// Package: poolcheck/pool
//
// item.go: items as immutable code sets.
//
// Representation:
//   • An Item is a 4-bit mask, bit i set ⇔ Code(i) present.
//   • The zero Item is empty and therefore invalid; only NewItem/ParseItem
//     (or MustItem in fixtures) should produce Items.
//   • Mask values 1..15 index the catalog table directly.

package pool

import (
	"fmt"
	"math/bits"
	"strings"
)

// Item is a non-empty set of codes. Items are values; nothing mutates them.
type Item uint8

// NumItemMasks is the number of distinct masks (including the empty one).
const NumItemMasks = 1 << NumCodes

// NewItem builds an item from its codes. Duplicates collapse. An empty list
// or an out-of-alphabet code yields ErrInvalidItem.
func NewItem(codes ...Code) (Item, error) {
	var it Item
	for _, c := range codes {
		if !c.Valid() {
			return 0, fmt.Errorf("code %d out of alphabet: %w", c, ErrInvalidItem)
		}
		it |= 1 << c
	}
	if it == 0 {
		return 0, fmt.Errorf("empty code set: %w", ErrInvalidItem)
	}

	return it, nil
}

// MustItem is NewItem for fixtures and examples; it panics on invalid input.
func MustItem(codes ...Code) Item {
	it, err := NewItem(codes...)
	if err != nil {
		panic(err)
	}

	return it
}

// ParseItem parses a comma or space separated list of codes, optionally
// wrapped in braces: "AC,BD", "{AC, BD}", "0 3".
func ParseItem(s string) (Item, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	codes := make([]Code, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCode(f)
		if err != nil {
			return 0, err
		}
		codes = append(codes, c)
	}

	return NewItem(codes...)
}

// Valid reports whether the item is a non-empty subset of the alphabet.
func (it Item) Valid() bool { return it != 0 && it < NumItemMasks }

// Has reports whether c is in the item.
func (it Item) Has(c Code) bool { return c.Valid() && it&(1<<c) != 0 }

// Len returns the number of codes in the item.
func (it Item) Len() int { return bits.OnesCount8(uint8(it)) }

// Codes returns the codes in ascending order.
func (it Item) Codes() []Code {
	out := make([]Code, 0, it.Len())
	for c := Code(0); c < NumCodes; c++ {
		if it.Has(c) {
			out = append(out, c)
		}
	}

	return out
}

// String renders the item as "{AC,BD}".
func (it Item) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range it.Codes() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.String())
	}
	b.WriteByte('}')

	return b.String()
}

// CheckItems returns ErrInvalidItem (wrapped with the offending index) for
// the first invalid item in items, or nil.
func CheckItems(items []Item) error {
	for i, it := range items {
		if !it.Valid() {
			return fmt.Errorf("item %d (mask %#x): %w", i, uint8(it), ErrInvalidItem)
		}
	}

	return nil
}
