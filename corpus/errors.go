// SPDX-License-Identifier: MIT
// Package: poolcheck/corpus
//
// errors.go: sentinel errors for corpus I/O and generation.

package corpus

import "errors"

// ErrMalformed indicates input that is not a list of lists of code lists.
// Invalid codes and empty items wrap pool.ErrInvalidItem instead.
var ErrMalformed = errors.New("corpus: malformed input")

// ErrBadGenConfig indicates a GenConfig with a negative case count or an
// empty or inverted length range.
var ErrBadGenConfig = errors.New("corpus: invalid generator config")
