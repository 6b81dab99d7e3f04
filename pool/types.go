// SPDX-License-Identifier: MIT
// Package: poolcheck/pool
//
// types.go: pools, codes and capacities.

package pool

import (
	"fmt"
	"strconv"
	"strings"
)

// Pool identifies one of the four capacity-bounded resources.
type Pool uint8

const (
	// RowA is the first row pool.
	RowA Pool = iota
	// RowB is the second row pool.
	RowB
	// ColC is the first column pool.
	ColC
	// ColD is the second column pool.
	ColD
)

// NumPools is the number of pools; Increment, CountState and Capacities are
// indexed by Pool.
const NumPools = 4

var poolNames = [NumPools]string{"RowA", "RowB", "ColC", "ColD"}

// String returns the pool name ("RowA", ...).
func (p Pool) String() string {
	if int(p) < NumPools {
		return poolNames[p]
	}

	return "Pool(" + strconv.Itoa(int(p)) + ")"
}

// Code names one (row, column) pairing. The numeric values match the corpus
// encoding: AC=0, AD=1, BC=2, BD=3.
type Code uint8

// The four codes, in corpus order.
const (
	AC Code = iota
	AD
	BC
	BD
)

// NumCodes is the size of the code alphabet.
const NumCodes = 4

var codeNames = [NumCodes]string{"AC", "AD", "BC", "BD"}

// Valid reports whether c belongs to the alphabet.
func (c Code) Valid() bool { return c < NumCodes }

// Row returns the row pool carried by c (RowA for AC/AD, RowB for BC/BD).
func (c Code) Row() Pool { return Pool(c >> 1) }

// Col returns the column pool carried by c (ColC for AC/BC, ColD for AD/BD).
func (c Code) Col() Pool { return ColC + Pool(c&1) }

// String returns the code name ("AC", ...).
func (c Code) String() string {
	if c.Valid() {
		return codeNames[c]
	}

	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// ParseCode accepts a code name (case-insensitive, e.g. "ac") or its numeric
// corpus value ("0".."3").
func ParseCode(s string) (Code, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range codeNames {
		if t == name {
			return Code(i), nil
		}
	}
	if n, err := strconv.Atoi(t); err == nil && n >= 0 && n < NumCodes {
		return Code(n), nil
	}

	return 0, fmt.Errorf("unknown code %q: %w", s, ErrInvalidItem)
}

// Capacities holds the ceiling of every pool, indexed by Pool.
type Capacities [NumPools]int

// Default pool ceilings.
const (
	DefaultRowA = 11
	DefaultRowB = 12
	DefaultColC = 13
	DefaultColD = 10
)

// DefaultCapacities returns RowA=11, RowB=12, ColC=13, ColD=10.
func DefaultCapacities() Capacities {
	return Capacities{DefaultRowA, DefaultRowB, DefaultColC, DefaultColD}
}

// Validate rejects negative ceilings.
func (c Capacities) Validate() error {
	for p, v := range c {
		if v < 0 {
			return fmt.Errorf("%s=%d: %w", Pool(p), v, ErrBadCapacity)
		}
	}

	return nil
}

// Total returns the sum of all ceilings.
func (c Capacities) Total() int {
	return c[RowA] + c[RowB] + c[ColC] + c[ColD]
}

// String renders the capacities as "RowA=11 RowB=12 ColC=13 ColD=10".
func (c Capacities) String() string {
	var b strings.Builder
	for p, v := range c {
		if p > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Pool(p).String())
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}
