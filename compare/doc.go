// Package compare runs the exact solver and a bound estimator side by side
// over a corpus and tallies where they agree.
//
// Each case is classified into one of four outcomes:
//
//	estimator  exact   outcome
//	no         no      agree-fail
//	yes        yes     agree-succeed
//	yes        no      should-have-failed
//	no         yes     should-have-succeeded
//
// By default the four sentinel items {AC},{AD},{BC},{BD} are appended to
// every case before either side sees it. Cases fan out over a bounded worker
// group; every solver call still owns its memo. An optional cross-check
// re-decides each case with the SAT oracle and reports any mismatch.
//
// ⚙️ Usage:
//
//	sum, err := compare.Run(ctx, cases,
//	    compare.WithCapacities(pool.DefaultCapacities()),
//	    compare.WithWorkers(8),
//	    compare.WithLogger(logger),
//	)
//	fmt.Println(sum)
package compare
