// SPDX-License-Identifier: MIT
// Package: poolcheck/catalog
//
// catalog.go: the fixed menu of admissible increments per item.
//
// Contract:
//   • The table is the single source of truth for legal moves; neither the
//     solver nor the estimator may consume pools outside it.
//   • Entries are fixed data, indexed by item mask (1..15). Nothing is
//     derived at query time.
//   • Every option covers every code of its item: for each code the option
//     consumes the code's row or the code's column. Options are the minimal
//     such covers.
//   • All deltas are 0 or 1.
//
// Complexity:
//   • Menu, ShapeOf: O(1), no allocations.

package catalog

import "github.com/katalvlaran/poolcheck/pool"

// MaxMenu is the largest number of options any item offers.
const MaxMenu = 4

// Pool shorthands for the table below.
var (
	a = pool.Increment{pool.RowA: 1}
	b = pool.Increment{pool.RowB: 1}
	c = pool.Increment{pool.ColC: 1}
	d = pool.Increment{pool.ColD: 1}

	ab = pool.Increment{pool.RowA: 1, pool.RowB: 1}
	ac = pool.Increment{pool.RowA: 1, pool.ColC: 1}
	ad = pool.Increment{pool.RowA: 1, pool.ColD: 1}
	bc = pool.Increment{pool.RowB: 1, pool.ColC: 1}
	bd = pool.Increment{pool.RowB: 1, pool.ColD: 1}
	cd = pool.Increment{pool.ColC: 1, pool.ColD: 1}
)

// Mask bits: AC=1, AD=2, BC=4, BD=8.
var table = [pool.NumItemMasks][]pool.Increment{
	0x1: {a, c},           // {AC}
	0x2: {a, d},           // {AD}
	0x3: {a, cd},          // {AC,AD}
	0x4: {b, c},           // {BC}
	0x5: {c, ab},          // {AC,BC}
	0x6: {ab, ac, bd, cd}, // {AD,BC}
	0x7: {ab, ac, cd},     // {AC,AD,BC}
	0x8: {b, d},           // {BD}
	0x9: {ab, ad, bc, cd}, // {AC,BD}
	0xA: {d, ab},          // {AD,BD}
	0xB: {ab, ad, cd},     // {AC,AD,BD}
	0xC: {b, cd},          // {BC,BD}
	0xD: {ab, bc, cd},     // {AC,BC,BD}
	0xE: {ab, bd, cd},     // {AD,BC,BD}
	0xF: {ab, cd},         // {AC,AD,BC,BD}
}

// Menu returns the admissible increments for it, in the order the solver
// tries them. The returned slice is shared; callers must not modify it.
// An invalid item has an empty menu.
func Menu(it pool.Item) []pool.Increment {
	if !it.Valid() {
		return nil
	}

	return table[it]
}
