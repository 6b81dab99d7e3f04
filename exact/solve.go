// Package exact - public entry points and option validation.
package exact

import (
	"fmt"

	"github.com/katalvlaran/poolcheck/pool"
)

// Solve decides whether items admit a choice of one catalog increment per
// item, in order, such that no prefix over-subscribes any pool.
//
// Contracts:
//   - items must be valid (see pool.NewItem); an invalid item yields
//     pool.ErrInvalidItem before any search.
//   - An empty sequence is feasible.
//   - Each call owns its memo set; nothing is shared across calls.
//
// Errors:
//   - ErrBadOptions, pool.ErrBadCapacity for malformed options.
//   - ErrMemoExhausted, ErrNodeLimit, ErrTimeLimit when a budget runs out.
//     Stats are still filled in up to that point.
func Solve(items []pool.Item, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := pool.CheckItems(items); err != nil {
		return Result{}, fmt.Errorf("exact: %w", err)
	}

	e := newEngine(items, opts)
	ok, err := e.run()
	res := Result{Feasible: ok, Stats: e.stats}
	if err != nil {
		return res, err
	}
	if ok && opts.RecordWitness {
		res.Witness = e.witness()
	}

	return res, nil
}

// Feasible is the plain boolean form of Solve with memoization and no
// budgets. It never fails: a sequence holding an invalid item has no
// resolution and is reported infeasible, as is any sequence under a negative
// capacity.
func Feasible(items []pool.Item, caps pool.Capacities) bool {
	ok, _ := newEngine(items, Options{Capacities: caps, Memo: Memoize}).run()

	return ok
}

// validateOptions checks budgets, policy and capacities.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if err := opts.Capacities.Validate(); err != nil {
		return err
	}
	switch opts.Memo {
	case Memoize, NoMemo:
		// ok
	default:
		return fmt.Errorf("memo policy %d: %w", opts.Memo, ErrBadOptions)
	}
	if opts.MaxMemoEntries < 0 {
		return fmt.Errorf("MaxMemoEntries=%d: %w", opts.MaxMemoEntries, ErrBadOptions)
	}
	if opts.NodeLimit < 0 {
		return fmt.Errorf("NodeLimit=%d: %w", opts.NodeLimit, ErrBadOptions)
	}
	if opts.TimeLimit < 0 {
		return fmt.Errorf("TimeLimit=%s: %w", opts.TimeLimit, ErrBadOptions)
	}

	return nil
}
