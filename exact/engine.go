// Package exact - depth-first search engine.
//
// The engine walks the item sequence with an explicit frame stack instead of
// recursion, so sequence length is bounded by memory rather than by the
// goroutine stack.
//
// Node visit order (per candidate successor state):
//  1. Any pool above capacity → fail the branch.
//  2. (state, remaining) already proven dead → fail the branch.
//  3. No items remain → success.
//  4. Otherwise push a frame holding the next item's catalog menu.
//
// When a frame has tried every option it is popped and its (state,
// remaining) pair is recorded as dead. Memoization is sound because the
// outcome of a fixed-length suffix depends only on the counts and on how
// many items remain, never on how the counts were reached.
//
// Complexity:
//   - Nodes: at most Π(cap_p+1) · (n+1) distinct memoized pairs, each
//     expanded once, times MaxMenu successors.
//   - Memory: O(n) frames + O(#dead pairs) memo entries.
package exact

import (
	"time"

	"github.com/hashicorp/go-set/v3"

	"github.com/katalvlaran/poolcheck/catalog"
	"github.com/katalvlaran/poolcheck/pool"
)

// memoKey identifies a node independently of the path that reached it.
type memoKey struct {
	state     pool.CountState
	remaining int
}

// frame is one pending item: the state before resolving it, its menu, and
// the index of the next option to try.
type frame struct {
	state pool.CountState
	menu  []pool.Increment
	next  int
}

// visit is the classification of a freshly generated node.
type visit uint8

const (
	visitPrune visit = iota
	visitGoal
	visitExpand
)

// searchEngine holds configuration, scratch state and counters for one
// search. It is never shared between invocations.
type searchEngine struct {
	items []pool.Item
	caps  pool.Capacities

	useMemo bool
	maxMemo int
	memo    *set.Set[memoKey]

	nodeLimit   int
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline checks counter

	stack []frame
	stats Stats
}

func newEngine(items []pool.Item, opts Options) *searchEngine {
	e := &searchEngine{
		items:     items,
		caps:      opts.Capacities,
		useMemo:   opts.Memo == Memoize,
		maxMemo:   opts.MaxMemoEntries,
		nodeLimit: opts.NodeLimit,
		stack:     make([]frame, 0, len(items)),
	}
	if e.useMemo {
		e.memo = set.New[memoKey](0)
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	return e
}

// deadlineCheck performs a rare deadline test (every 4096 expansions).
func (e *searchEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

func (e *searchEngine) visit(s pool.CountState, remaining int) visit {
	e.stats.Nodes++
	if !s.Within(e.caps) {
		e.stats.Fails++
		return visitPrune
	}
	if e.useMemo && e.memo.Contains(memoKey{state: s, remaining: remaining}) {
		e.stats.Fails++
		e.stats.MemoHits++
		return visitPrune
	}
	if remaining == 0 {
		return visitGoal
	}

	return visitExpand
}

// remember records a dead (state, remaining) pair.
func (e *searchEngine) remember(s pool.CountState, remaining int) error {
	if !e.useMemo {
		return nil
	}
	if e.maxMemo > 0 && e.memo.Size() >= e.maxMemo {
		return ErrMemoExhausted
	}
	e.memo.Insert(memoKey{state: s, remaining: remaining})
	e.stats.MemoEntries = e.memo.Size()

	return nil
}

func (e *searchEngine) push(s pool.CountState, idx int) {
	e.stack = append(e.stack, frame{state: s, menu: catalog.Menu(e.items[idx])})
}

// run executes the search. The bool is the verdict; an error means a budget
// ran out before a verdict was reached.
func (e *searchEngine) run() (bool, error) {
	n := len(e.items)
	switch e.visit(pool.CountState{}, n) {
	case visitPrune:
		return false, nil
	case visitGoal:
		return true, nil
	}
	e.push(pool.CountState{}, 0)

	for len(e.stack) > 0 {
		if e.nodeLimit > 0 && e.stats.Nodes > e.nodeLimit {
			return false, ErrNodeLimit
		}
		if e.deadlineCheck() {
			return false, ErrTimeLimit
		}

		depth := len(e.stack) - 1 // index of the item this frame resolves
		top := &e.stack[depth]
		if top.next == len(top.menu) {
			if err := e.remember(top.state, n-depth); err != nil {
				return false, err
			}
			e.stack = e.stack[:depth]
			continue
		}

		child := top.state.Add(top.menu[top.next])
		top.next++
		switch e.visit(child, n-depth-1) {
		case visitGoal:
			return true, nil
		case visitExpand:
			e.push(child, depth+1)
		}
	}

	return false, nil
}

// witness reads the chosen option of every frame. Valid only right after
// run returned true.
func (e *searchEngine) witness() []pool.Increment {
	out := make([]pool.Increment, len(e.stack))
	for i, f := range e.stack {
		out[i] = f.menu[f.next-1]
	}

	return out
}
