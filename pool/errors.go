// SPDX-License-Identifier: MIT
// Package: poolcheck/pool
//
// errors.go: sentinel errors for the data model.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Context (offending code, item position) is attached with %w wrapping
//     at the call site, never baked into the sentinel text.

package pool

import "errors"

// ErrInvalidItem indicates an item with an empty code set or a code outside
// the {AC, AD, BC, BD} alphabet.
var ErrInvalidItem = errors.New("pool: invalid item")

// ErrBadCapacity indicates a negative pool capacity.
var ErrBadCapacity = errors.New("pool: invalid capacity")
