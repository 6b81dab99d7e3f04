package exact

import (
	"errors"
	"time"

	"github.com/katalvlaran/poolcheck/pool"
)

// Sentinel errors. Resource exhaustion is reported as an error rather than
// folded into an "infeasible" verdict.
var (
	// ErrBadOptions indicates a negative budget or an unknown memo policy.
	ErrBadOptions = errors.New("exact: invalid options")

	// ErrMemoExhausted indicates the memo set reached Options.MaxMemoEntries.
	ErrMemoExhausted = errors.New("exact: memo entry limit reached")

	// ErrNodeLimit indicates the search visited more than Options.NodeLimit nodes.
	ErrNodeLimit = errors.New("exact: node limit reached")

	// ErrTimeLimit indicates the search ran past Options.TimeLimit.
	ErrTimeLimit = errors.New("exact: time limit reached")
)

// MemoPolicy selects whether proven-infeasible (state, remaining) pairs are
// cached during one search.
type MemoPolicy int

const (
	// Memoize prunes revisits of known dead states (default).
	Memoize MemoPolicy = iota

	// NoMemo disables the cache. The verdict is identical; only the running
	// time changes. Intended for tests and benchmarks.
	NoMemo
)

// Options configures one solver invocation.
//
// Fields:
//   - Capacities: per-pool ceilings.
//   - Memo: memo policy (Memoize or NoMemo).
//   - MaxMemoEntries: cap on memo size; 0 means unlimited.
//   - NodeLimit: cap on visited nodes; 0 means unlimited.
//   - TimeLimit: soft wall-clock budget; 0 means unlimited.
//   - RecordWitness: when true, a feasible Result carries the chosen
//     increment for every item.
type Options struct {
	Capacities     pool.Capacities
	Memo           MemoPolicy
	MaxMemoEntries int
	NodeLimit      int
	TimeLimit      time.Duration
	RecordWitness  bool
}

// DefaultOptions returns default capacities, memoization on, no budgets and
// no witness.
func DefaultOptions() Options {
	return Options{
		Capacities: pool.DefaultCapacities(),
		Memo:       Memoize,
	}
}

// Stats are the search diagnostics of one invocation.
type Stats struct {
	// Nodes counts visited (state, remaining) nodes, the root included.
	Nodes int
	// Fails counts nodes rejected by the capacity check or the memo.
	Fails int
	// MemoHits counts nodes rejected by the memo alone.
	MemoHits int
	// MemoEntries is the final size of the memo set.
	MemoEntries int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.Fails += o.Fails
	s.MemoHits += o.MemoHits
	s.MemoEntries += o.MemoEntries
}

// Result is the outcome of Solve.
type Result struct {
	// Feasible is the verdict.
	Feasible bool

	// Stats describes the search effort.
	Stats Stats

	// Witness holds one increment per item when Feasible and
	// Options.RecordWitness are both true; nil otherwise.
	Witness []pool.Increment
}
