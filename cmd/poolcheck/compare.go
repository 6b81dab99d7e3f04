package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"github.com/kr/pretty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/poolcheck/compare"
	"github.com/katalvlaran/poolcheck/corpus"
	"github.com/katalvlaran/poolcheck/estimate"
)

type compareFlags struct {
	caps        capsFlag
	estimator   string
	codeBudget  int
	workers     int
	noSentinels bool
	crossCheck  bool
	satTimeout  time.Duration
	progress    bool
	dump        bool
	metricsFile string
}

func newCompareCmd(a *app) *cobra.Command {
	f := &compareFlags{}
	cmd := &cobra.Command{
		Use:   "compare CORPUS",
		Short: "Run the exact solver and the estimator over a corpus and tally agreement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, a, f, args[0])
		},
	}

	fl := cmd.Flags()
	fl.Var(&f.caps, "caps", "pool capacities, overrides the config file")
	fl.StringVar(&f.estimator, "estimator", "", "estimator strategy: bounds or budget")
	fl.IntVar(&f.codeBudget, "code-budget", 0, "code budget for the budget estimator")
	fl.IntVarP(&f.workers, "workers", "w", 0, "cases evaluated concurrently")
	fl.BoolVar(&f.noSentinels, "no-sentinels", false, "do not append {AC},{AD},{BC},{BD} to every case")
	fl.BoolVar(&f.crossCheck, "cross-check", false, "re-decide every case with the SAT oracle")
	fl.DurationVar(&f.satTimeout, "cross-check-timeout", 0, "time limit per SAT cross-check, 0 for none")
	fl.BoolVar(&f.progress, "progress", true, "show a progress bar on stderr")
	fl.BoolVar(&f.dump, "dump", false, "print every disagreeing case in full")
	fl.StringVar(&f.metricsFile, "metrics-textfile", "", "write run metrics to this node-exporter textfile")

	return cmd
}

func runCompare(cmd *cobra.Command, a *app, f *compareFlags, path string) error {
	cfg := a.cfg
	if f.estimator != "" {
		cfg.Estimator = f.estimator
	}
	if cmd.Flags().Changed("code-budget") {
		cfg.CodeBudget = f.codeBudget
	}
	if f.workers > 0 {
		cfg.Workers = f.workers
	}
	if f.noSentinels {
		cfg.AppendSentinels = false
	}
	if f.crossCheck {
		cfg.CrossCheck = true
	}
	if cmd.Flags().Changed("cross-check-timeout") {
		cfg.CrossCheckTimeout = f.satTimeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	caps := f.caps.resolve(cfg.Capacities.Pool())

	cases, err := corpus.Load(path)
	if err != nil {
		return err
	}
	a.logger.Info("corpus loaded", "path", path, "cases", len(cases))

	reg := prometheus.NewRegistry()
	opts := []compare.Option{
		compare.WithCapacities(caps),
		compare.WithEstimator(cfg.Strategy(), cfg.CodeBudget),
		compare.WithSentinels(cfg.AppendSentinels),
		compare.WithWorkers(cfg.Workers),
		compare.WithSolver(cfg.ExactOptions()),
		compare.WithCrossCheck(cfg.CrossCheck),
		compare.WithCrossCheckTimeout(cfg.CrossCheckTimeout),
		compare.WithLogger(a.logger),
		compare.WithRegisterer(reg),
	}

	var bar *progressReporter
	if f.progress {
		bar = newProgressReporter(len(cases), cmd.ErrOrStderr())
		opts = append(opts, compare.WithReporter(bar))
	}
	sum, runErr := compare.Run(cmd.Context(), cases, opts...)
	if bar != nil {
		bar.finish()
	}
	// Per-case failures still come with a complete summary.
	var merr *multierror.Error
	if runErr != nil && !errors.As(runErr, &merr) {
		return runErr
	}

	out := cmd.OutOrStdout()
	printSummary(out, sum, cfg.Strategy())
	if f.dump {
		for _, d := range sum.Disagreements {
			fmt.Fprintf(out, "case %d: %s\n%s\n", d.Index, d.Outcome, pretty.Sprint(d))
		}
	}

	if f.metricsFile != "" {
		if err := prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.logger.Debug("metrics written", "path", f.metricsFile)
	}

	return runErr
}

func printSummary(w io.Writer, sum compare.Summary, s estimate.Strategy) {
	rows := []string{
		"outcome | cases",
		fmt.Sprintf("%s | %s", compare.AgreeFail, humanize.Comma(int64(sum.AgreeFail))),
		fmt.Sprintf("%s | %s", compare.AgreeSucceed, humanize.Comma(int64(sum.AgreeSucceed))),
		fmt.Sprintf("%s | %s", compare.ShouldHaveFailed, humanize.Comma(int64(sum.ShouldHaveFailed))),
		fmt.Sprintf("%s | %s", compare.ShouldHaveSucceeded, humanize.Comma(int64(sum.ShouldHaveSucceeded))),
	}
	if sum.Failed > 0 {
		rows = append(rows, fmt.Sprintf("failed | %s", humanize.Comma(int64(sum.Failed))))
	}
	fmt.Fprintln(w, columnize.SimpleFormat(rows))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "estimator: %s, solver nodes: %s, memo hits: %s, elapsed: %s\n",
		s, humanize.Comma(int64(sum.Solver.Nodes)), humanize.Comma(int64(sum.Solver.MemoHits)), sum.Elapsed.Round(time.Millisecond))
	fmt.Fprintln(w, sum)
}

// progressReporter drives a progress bar and prints disagreements above it.
type progressReporter struct {
	mu  sync.Mutex
	bar *pb.ProgressBar
	out io.Writer
	// pending holds disagreement lines until the bar is finished so they do
	// not interleave with its redraws.
	pending map[int]string
}

func newProgressReporter(total int, out io.Writer) *progressReporter {
	bar := pb.New(total)
	bar.SetWriter(out)
	bar.SetTemplateString(`[{{etime . }}] {{bar . }} {{counters . }}`)
	bar.Start()

	return &progressReporter{bar: bar, out: out, pending: map[int]string{}}
}

func (p *progressReporter) CaseDone(index int, o compare.Outcome, err error) {
	p.bar.Increment()
	var line string
	switch {
	case err != nil:
		line = fmt.Sprintf("case %d: %v", index, err)
	case o == compare.ShouldHaveFailed:
		line = fmt.Sprintf("disagreement on case %d, exact solver says it should have failed", index)
	case o == compare.ShouldHaveSucceeded:
		line = fmt.Sprintf("disagreement on case %d, exact solver says it should have worked", index)
	default:
		return
	}
	p.mu.Lock()
	p.pending[index] = line
	p.mu.Unlock()
}

func (p *progressReporter) finish() {
	p.bar.Finish()
	p.mu.Lock()
	defer p.mu.Unlock()
	idx := make([]int, 0, len(p.pending))
	for i := range p.pending {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	for _, i := range idx {
		fmt.Fprintln(p.out, p.pending[i])
	}
}
