// Package exact implements the exact feasibility solver: a depth-first
// search over the item sequence that tries every catalog option of every
// item and memoizes (count state, remaining items) pairs proven to have no
// feasible continuation.
//
// ✨ Key features:
//   - exhaustive: the verdict never depends on option order or on the memo
//   - explicit work stack: no recursion, long sequences are fine
//   - diagnostics returned as Stats, never kept in globals
//   - optional budgets (memo entries, nodes, wall clock) that surface as
//     errors instead of wrong answers
//   - optional witness (the chosen increment per item) for instrumentation
//
// ⚙️ Usage:
//
//	opts := exact.DefaultOptions()
//	opts.Capacities = pool.Capacities{2, 2, 2, 2}
//	res, err := exact.Solve(items, opts)
//	if err != nil {
//	  // budget exhausted or invalid input
//	}
//	fmt.Println(res.Feasible, res.Stats.Nodes)
//
// Performance:
//
//   - Time:   O(S · n · MaxMenu) where S = Π(cap_p + 1) reachable states
//   - Memory: O(n) frames + O(S · n) memo entries in the worst case
package exact
