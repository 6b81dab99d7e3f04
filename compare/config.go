package compare

import (
	"runtime"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/poolcheck/estimate"
	"github.com/katalvlaran/poolcheck/exact"
	"github.com/katalvlaran/poolcheck/pool"
)

// runConfig is the single source of truth for one Run.
//
// Defaults:
//   - caps       = pool.DefaultCapacities()
//   - strategy   = estimate.Bounds
//   - sentinels  = true
//   - workers    = GOMAXPROCS
//   - solver     = exact.DefaultOptions()
//   - logger     = null logger
//   - reporter   = none
//   - registerer = none (no metrics)
//   - crossCheckTimeout = 0 (bounded only by the run context)
type runConfig struct {
	caps       pool.Capacities
	strategy   estimate.Strategy
	budget     int
	sentinels  bool
	workers    int
	solver     exact.Options
	logger     hclog.Logger
	reporter   Reporter
	registerer prometheus.Registerer
	crossCheck bool

	crossCheckTimeout time.Duration
}

func newRunConfig(opts ...Option) runConfig {
	c := runConfig{
		caps:      pool.DefaultCapacities(),
		strategy:  estimate.Bounds,
		sentinels: true,
		workers:   runtime.GOMAXPROCS(0),
		solver:    exact.DefaultOptions(),
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// exactOptions merges capacities into the solver knobs.
func (c runConfig) exactOptions() exact.Options {
	o := c.solver
	o.Capacities = c.caps
	o.RecordWitness = false

	return o
}
