package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/poolcheck/compare"
	"github.com/katalvlaran/poolcheck/estimate"
	"github.com/katalvlaran/poolcheck/exact"
	"github.com/katalvlaran/poolcheck/pool"
	"github.com/katalvlaran/poolcheck/satcheck"
)

type solveFlags struct {
	caps      capsFlag
	witness   bool
	sentinels bool
	sat       bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve ITEM...",
		Short: "Decide one item sequence exactly and with the estimator",
		Example: `  poolcheck solve AC BD
  poolcheck solve --caps 1,0,1,0 "AC,AD,BC,BD"
  poolcheck solve --witness "{AC,BD}" "{AD,BC}" 0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, a, f, args)
		},
	}

	fl := cmd.Flags()
	fl.Var(&f.caps, "caps", "pool capacities, overrides the config file")
	fl.BoolVar(&f.witness, "witness", false, "print the chosen pools for every item")
	fl.BoolVar(&f.sentinels, "sentinels", false, "append {AC},{AD},{BC},{BD} before solving")
	fl.BoolVar(&f.sat, "sat", false, "also decide with the SAT oracle")

	return cmd
}

func runSolve(cmd *cobra.Command, a *app, f *solveFlags, args []string) error {
	items := make([]pool.Item, 0, len(args)+pool.NumCodes)
	for i, arg := range args {
		it, err := pool.ParseItem(arg)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		items = append(items, it)
	}
	if f.sentinels {
		items = append(items, compare.Sentinels()...)
	}

	opts := a.cfg.ExactOptions()
	opts.Capacities = f.caps.resolve(opts.Capacities)
	opts.RecordWitness = f.witness

	res, err := exact.Solve(items, opts)
	if err != nil {
		return err
	}
	rep := estimate.Explain(items, opts.Capacities)
	a.logger.Debug("solved", "items", len(items), "nodes", res.Stats.Nodes, "memo_entries", res.Stats.MemoEntries)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "capacities: %s\n", opts.Capacities)
	fmt.Fprintf(out, "exact:      %s (%s nodes, %s memo hits)\n",
		verdict(res.Feasible), humanize.Comma(int64(res.Stats.Nodes)), humanize.Comma(int64(res.Stats.MemoHits)))
	if rep.Feasible {
		fmt.Fprintf(out, "estimator:  %s\n", verdict(true))
	} else {
		fmt.Fprintf(out, "estimator:  %s (%s bound %s after item %d)\n", verdict(false), rep.Bound, rep.Detail, rep.FailedAt)
	}
	if f.sat {
		ok, err := satcheck.Feasible(cmd.Context(), items, opts.Capacities)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "sat:        %s\n", verdict(ok))
	}

	if f.witness && res.Feasible {
		rows := []string{"# | item | pools | state"}
		var s pool.CountState
		for i, inc := range res.Witness {
			s = s.Add(inc)
			rows = append(rows, fmt.Sprintf("%d | %s | %s | %s", i, items[i], inc, s))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, columnize.SimpleFormat(rows))
	}

	return nil
}

func verdict(ok bool) string {
	if ok {
		return "feasible"
	}

	return "infeasible"
}
