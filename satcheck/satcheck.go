// Package satcheck decides feasibility with a SAT solver instead of search.
//
// Encoding: one selector literal per (item, menu option); every item must
// select at least one option; per pool, the selectors whose option consumes
// that pool feed a sorting-network cardinality constraint bounded by the
// pool capacity. Because increments are non-negative the final totals bound
// every prefix, so no per-prefix constraints are needed. Each item also
// selects at most one option, which removes symmetric models the
// cardinality networks would otherwise have to refute one by one.
//
// The solver runs in the background and is polled, so a canceled or
// expired context stops it and Solve returns ErrSolverCanceled.
//
// The package exists to cross-check the exact solver: the two share only
// the catalog.
package satcheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/poolcheck/catalog"
	"github.com/katalvlaran/poolcheck/pool"
)

var (
	// ErrUnsupportedIncrement means a catalog option consumes more than one
	// unit of a pool, which the 0/1 selector encoding cannot express.
	ErrUnsupportedIncrement = errors.New("satcheck: increment delta above 1")

	// ErrSolverCanceled means the context ended before the SAT solver
	// reached a verdict.
	ErrSolverCanceled = errors.New("satcheck: solver canceled")
)

// pollInterval is how often a running solve checks its context.
const pollInterval = 5 * time.Millisecond

// Result is the verdict plus, when feasible, one chosen increment per item.
type Result struct {
	Feasible bool
	Witness  []pool.Increment
}

type selector struct {
	lit z.Lit
	inc pool.Increment
}

// Solve encodes and solves one instance. It returns ErrSolverCanceled,
// wrapping ctx.Err(), if ctx ends first.
func Solve(ctx context.Context, items []pool.Item, caps pool.Capacities) (Result, error) {
	if err := caps.Validate(); err != nil {
		return Result{}, err
	}
	if err := pool.CheckItems(items); err != nil {
		return Result{}, fmt.Errorf("satcheck: %w", err)
	}

	c := logic.NewC()
	sels := make([][]selector, len(items))
	var usage [pool.NumPools][]z.Lit
	roots := make([]z.Lit, 0, len(items)+pool.NumPools)

	for i, it := range items {
		menu := catalog.Menu(it)
		opts := make([]z.Lit, len(menu))
		for j, inc := range menu {
			m := c.Lit()
			opts[j] = m
			sels[i] = append(sels[i], selector{lit: m, inc: inc})
			for p, d := range inc {
				switch {
				case d == 1:
					usage[p] = append(usage[p], m)
				case d > 1:
					return Result{}, fmt.Errorf("item %d option %s: %w", i, inc, ErrUnsupportedIncrement)
				}
			}
		}
		roots = append(roots, c.Ors(opts...))
		for j := range opts {
			for k := j + 1; k < len(opts); k++ {
				roots = append(roots, c.Or(opts[j].Not(), opts[k].Not()))
			}
		}
	}
	for p, ms := range usage {
		if len(ms) == 0 {
			continue
		}
		roots = append(roots, c.CardSort(ms).Leq(caps[p]))
	}

	root := c.Ands(roots...)
	g := gini.New()
	c.ToCnf(g)
	g.Assume(root)

	switch run(ctx, g) {
	case 1:
		return Result{Feasible: true, Witness: witness(g, sels)}, nil
	case -1:
		return Result{}, nil
	default:
		return Result{}, fmt.Errorf("%w: %w", ErrSolverCanceled, ctx.Err())
	}
}

// run solves g in the background until it answers or ctx ends. It returns
// 1 for sat, -1 for unsat and 0 when stopped without a verdict.
func run(ctx context.Context, g *gini.Gini) int {
	if ctx.Err() != nil {
		return 0
	}
	s := g.GoSolve()
	tick := time.NewTicker(pollInterval)
	defer tick.Stop()
	for {
		if res, done := s.Test(); done {
			return res
		}
		select {
		case <-ctx.Done():
			return s.Stop()
		case <-tick.C:
		}
	}
}

// Feasible is the boolean form of Solve.
func Feasible(ctx context.Context, items []pool.Item, caps pool.Capacities) (bool, error) {
	res, err := Solve(ctx, items, caps)

	return res.Feasible, err
}

// witness picks the first selected option of every item from the model.
func witness(g *gini.Gini, sels [][]selector) []pool.Increment {
	out := make([]pool.Increment, len(sels))
	for i, opts := range sels {
		for _, s := range opts {
			if g.Value(s.lit) {
				out[i] = s.inc
				break
			}
		}
	}

	return out
}
