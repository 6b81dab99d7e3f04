// SPDX-License-Identifier: MIT
// Package: poolcheck/compare
//
// options.go: functional options for Run.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Run itself never panics.
//   • Options apply in order; later ones override earlier ones.

package compare

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/poolcheck/estimate"
	"github.com/katalvlaran/poolcheck/exact"
	"github.com/katalvlaran/poolcheck/pool"
)

// Option customizes a Run.
type Option func(*runConfig)

// Reporter observes case completion. Implementations must be safe for
// concurrent use; CaseDone is called from worker goroutines.
type Reporter interface {
	CaseDone(index int, outcome Outcome, err error)
}

// WithCapacities sets the pool ceilings for both sides.
func WithCapacities(caps pool.Capacities) Option {
	if err := caps.Validate(); err != nil {
		panic(fmt.Sprintf("compare: WithCapacities: %v", err))
	}
	return func(c *runConfig) {
		c.caps = caps
	}
}

// WithEstimator selects the estimator strategy. budget is used by
// estimate.Budget only; 0 means estimate.DefaultCodeBudget.
func WithEstimator(s estimate.Strategy, budget int) Option {
	if s != estimate.Bounds && s != estimate.Budget {
		panic(fmt.Sprintf("compare: WithEstimator(%s)", s))
	}
	if budget < 0 {
		panic(fmt.Sprintf("compare: WithEstimator budget %d", budget))
	}
	return func(c *runConfig) {
		c.strategy = s
		c.budget = budget
	}
}

// WithSentinels toggles appending Sentinels to every case (default on).
func WithSentinels(on bool) Option {
	return func(c *runConfig) {
		c.sentinels = on
	}
}

// WithWorkers bounds the number of cases evaluated concurrently.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("compare: WithWorkers(%d)", n))
	}
	return func(c *runConfig) {
		c.workers = n
	}
}

// WithSolver sets memo policy and budgets of the exact solver. Its
// Capacities and RecordWitness fields are ignored.
func WithSolver(opts exact.Options) Option {
	if opts.MaxMemoEntries < 0 || opts.NodeLimit < 0 || opts.TimeLimit < 0 {
		panic("compare: WithSolver: negative budget")
	}
	return func(c *runConfig) {
		c.solver = opts
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l hclog.Logger) Option {
	if l == nil {
		panic("compare: WithLogger(nil)")
	}
	return func(c *runConfig) {
		c.logger = l
	}
}

// WithReporter attaches a progress observer. Panics on nil.
func WithReporter(r Reporter) Option {
	if r == nil {
		panic("compare: WithReporter(nil)")
	}
	return func(c *runConfig) {
		c.reporter = r
	}
}

// WithRegisterer registers the run metrics with reg. Panics on nil.
func WithRegisterer(reg prometheus.Registerer) Option {
	if reg == nil {
		panic("compare: WithRegisterer(nil)")
	}
	return func(c *runConfig) {
		c.registerer = reg
	}
}

// WithCrossCheck toggles re-deciding every case with the SAT oracle.
func WithCrossCheck(on bool) Option {
	return func(c *runConfig) {
		c.crossCheck = on
	}
}

// WithCrossCheckTimeout bounds each SAT cross-check. A case whose check runs
// out of time fails with satcheck.ErrSolverCanceled. Zero means no bound;
// panics on negative d.
func WithCrossCheckTimeout(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("compare: WithCrossCheckTimeout(%s)", d))
	}
	return func(c *runConfig) {
		c.crossCheckTimeout = d
	}
}
