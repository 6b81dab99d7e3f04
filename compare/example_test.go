package compare_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/poolcheck/compare"
	"github.com/katalvlaran/poolcheck/corpus"
	"github.com/katalvlaran/poolcheck/estimate"
	"github.com/katalvlaran/poolcheck/pool"
)

// ExampleRun tallies two cases with the code-budget estimator: the second
// case stays under the budget but does not fit the A and C pools.
func ExampleRun() {
	ac := pool.MustItem(pool.AC)
	cases := []corpus.Case{
		{ac, pool.MustItem(pool.BD)},
		{ac, ac, ac, ac, ac},
	}

	sum, err := compare.Run(context.Background(), cases,
		compare.WithCapacities(pool.Capacities{2, 2, 2, 2}),
		compare.WithEstimator(estimate.Budget, 8),
		compare.WithSentinels(false),
		compare.WithWorkers(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum)
	for _, d := range sum.Disagreements {
		fmt.Println(d.Index, d.Outcome)
	}
	// Output:
	// agreements: 1 (0 fail, 1 succeed), disagreements: 1 (1 should have failed, 0 should have succeeded)
	// 1 should_have_failed
}
