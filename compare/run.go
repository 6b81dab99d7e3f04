package compare

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/poolcheck/corpus"
	"github.com/katalvlaran/poolcheck/estimate"
	"github.com/katalvlaran/poolcheck/exact"
	"github.com/katalvlaran/poolcheck/pool"
	"github.com/katalvlaran/poolcheck/satcheck"
)

// caseResult is what one worker produces for one case.
type caseResult struct {
	index   int
	items   []pool.Item
	decided bool
	outcome Outcome
	report  *estimate.Report
	stats   exact.Stats
	elapsed time.Duration
	err     error
}

// Run evaluates every case and returns the tally.
//
// A case whose exact solve fails (budget exhausted, invalid item) or whose
// cross-check disagrees is counted in Summary.Failed or kept in the tally
// respectively, and its error is returned, together with all others, as a
// *multierror.Error next to a complete Summary. Cancelling ctx stops the run
// and returns ctx.Err() with an empty Summary.
func Run(ctx context.Context, cases []corpus.Case, opts ...Option) (Summary, error) {
	cfg := newRunConfig(opts...)
	m, err := newMetrics(cfg.registerer)
	if err != nil {
		return Summary{}, fmt.Errorf("compare: metrics: %w", err)
	}
	log := cfg.logger.Named("compare")
	log.Debug("starting run", "cases", len(cases), "workers", cfg.workers,
		"estimator", cfg.strategy, "capacities", cfg.caps, "sentinels", cfg.sentinels,
		"cross_check", cfg.crossCheck)

	start := time.Now()
	results := make([]caseResult, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for i := range cases {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := evaluate(gctx, cfg, i, cases[i])
			results[i] = r
			m.observe(r)
			if cfg.reporter != nil {
				cfg.reporter.CaseDone(i, r.outcome, r.err)
			}
			switch {
			case r.err != nil:
				log.Error("case failed", "case", i, "error", r.err)
			case !r.outcome.Agrees():
				log.Warn("disagreement", "case", i, "outcome", r.outcome)
			default:
				log.Trace("case evaluated", "case", i, "outcome", r.outcome, "nodes", r.stats.Nodes)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	sum, merr := summarize(results)
	sum.Elapsed = time.Since(start)
	log.Info("run complete", "cases", len(cases), "agreements", sum.Agreed(),
		"disagreements", sum.Disagreed(), "failed", sum.Failed, "elapsed", sum.Elapsed)

	return sum, merr.ErrorOrNil()
}

// evaluate runs both sides on one case. ctx bounds only the SAT cross-check;
// the exact solver has its own budgets.
func evaluate(ctx context.Context, cfg runConfig, index int, c corpus.Case) caseResult {
	items := []pool.Item(c)
	if cfg.sentinels {
		items = withSentinels(items)
	}
	r := caseResult{index: index, items: items}
	start := time.Now()

	var estimated bool
	if cfg.strategy == estimate.Bounds {
		rep := estimate.Explain(items, cfg.caps)
		r.report = &rep
		estimated = rep.Feasible
	} else {
		estimated = cfg.strategy.Estimator(cfg.caps, cfg.budget)(items)
	}

	res, err := exact.Solve(items, cfg.exactOptions())
	r.stats = res.Stats
	if err != nil {
		r.err = fmt.Errorf("case %d: %w: %w", index, ErrCase, err)
		r.elapsed = time.Since(start)
		return r
	}
	r.decided = true
	r.outcome = Classify(estimated, res.Feasible)

	if cfg.crossCheck {
		sat, err := crossCheck(ctx, cfg, items)
		switch {
		case err != nil:
			r.err = fmt.Errorf("case %d: %w: %w", index, ErrCase, err)
		case sat != res.Feasible:
			r.err = fmt.Errorf("case %d: exact=%t sat=%t: %w", index, res.Feasible, sat, ErrCrossCheck)
		}
	}
	r.elapsed = time.Since(start)

	return r
}

func crossCheck(ctx context.Context, cfg runConfig, items []pool.Item) (bool, error) {
	if cfg.crossCheckTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.crossCheckTimeout)
		defer cancel()
	}

	return satcheck.Feasible(ctx, items, cfg.caps)
}

// summarize folds results in case order.
func summarize(results []caseResult) (Summary, *multierror.Error) {
	var (
		sum  Summary
		merr *multierror.Error
	)
	for _, r := range results {
		sum.Solver.Add(r.stats)
		if r.err != nil {
			merr = multierror.Append(merr, r.err)
		}
		if !r.decided {
			sum.Failed++
			continue
		}
		sum.add(r.outcome)
		if !r.outcome.Agrees() {
			sum.Disagreements = append(sum.Disagreements, Disagreement{
				Index:   r.index,
				Outcome: r.outcome,
				Items:   r.items,
				Report:  r.report,
			})
		}
	}

	return sum, merr
}
