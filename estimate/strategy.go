package estimate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/poolcheck/pool"
)

// DefaultCodeBudget is the Budget threshold used when none is configured:
// the sum of the default pool capacities.
const DefaultCodeBudget = pool.DefaultRowA + pool.DefaultRowB + pool.DefaultColC + pool.DefaultColD

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("estimate: unknown strategy")

// Strategy selects an estimator.
type Strategy uint8

const (
	// Bounds is the pigeonhole battery. Sound: infeasible here implies
	// infeasible exactly.
	Bounds Strategy = iota
	// Budget compares the total number of codes against a fixed budget.
	Budget
)

func (s Strategy) String() string {
	switch s {
	case Bounds:
		return "bounds"
	case Budget:
		return "budget"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps "bounds" or "budget" (any case) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounds", "":
		return Bounds, nil
	case "budget":
		return Budget, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
}

// Func is a bound estimator: true means "probably feasible".
type Func func(items []pool.Item) bool

// Estimator binds s to capacities and a code budget. The budget is ignored
// by Bounds; a non-positive budget means DefaultCodeBudget.
func (s Strategy) Estimator(caps pool.Capacities, budget int) Func {
	if s == Budget {
		if budget <= 0 {
			budget = DefaultCodeBudget
		}
		return func(items []pool.Item) bool { return CodeBudget(items, budget) }
	}

	return func(items []pool.Item) bool { return Estimate(items, caps) }
}

// CodeBudget reports whether the items carry at most budget codes in total.
func CodeBudget(items []pool.Item, budget int) bool {
	total := 0
	for _, it := range items {
		total += it.Len()
	}

	return total <= budget
}
