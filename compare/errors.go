// SPDX-License-Identifier: MIT
// Package: poolcheck/compare
//
// errors.go: sentinel errors for harness runs.
//
// Error policy:
//   • Per-case failures do not stop the run; they are collected and returned
//     together with the Summary as a multierror.
//   • Context cancellation stops the run and is returned unwrapped.

package compare

import "errors"

// ErrCase wraps a per-case solver failure (budget exhausted, invalid item).
var ErrCase = errors.New("compare: case failed")

// ErrCrossCheck indicates the exact solver and the SAT oracle disagree.
var ErrCrossCheck = errors.New("compare: exact solver and SAT oracle disagree")
