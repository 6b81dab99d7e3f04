// Package pool defines the data model shared by every poolcheck algorithm:
// the four capacity-bounded pools, the four codes that pair a row with a
// column, items (non-empty code sets), per-pool increments and the running
// count state.
//
// Layout:
//
//	        ColC  ColD
//	RowA     AC    AD
//	RowB     BC    BD
//
// Every code names one (row, column) cell. An item lists the cells it is
// compatible with; resolving the item consumes pool units as described by
// the catalog package.
//
// Items are validated on construction (NewItem, ParseItem): an empty code set
// or a code outside the alphabet yields ErrInvalidItem, so the solver and the
// estimator only ever see well-formed input.
package pool
