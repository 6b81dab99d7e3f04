// Package catalog is the transition catalog: a static table mapping each of
// the 15 possible items to its menu of admissible pool increments.
//
// Rules, keyed by which codes are present:
//
//	one code             row  | column
//	two codes, same row  row  | both columns
//	two codes, same col  col  | both rows
//	two codes, diagonal  row+row | row+col | row+col | col+col
//	three codes          three two-unit covers
//	four codes           both rows | both columns
//
// The table is fixed data and is never recomputed per query. ShapeOf exposes
// the same classification to the estimator.
package catalog
