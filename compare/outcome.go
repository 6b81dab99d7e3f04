package compare

import (
	"fmt"
	"time"

	"github.com/katalvlaran/poolcheck/estimate"
	"github.com/katalvlaran/poolcheck/exact"
	"github.com/katalvlaran/poolcheck/pool"
)

// Outcome classifies one case.
type Outcome uint8

const (
	// AgreeFail: both sides rejected.
	AgreeFail Outcome = iota
	// AgreeSucceed: both sides accepted.
	AgreeSucceed
	// ShouldHaveFailed: the estimator accepted, the exact solver did not.
	ShouldHaveFailed
	// ShouldHaveSucceeded: the estimator rejected a feasible case.
	ShouldHaveSucceeded

	numOutcomes
)

var outcomeNames = [numOutcomes]string{
	"agree_fail", "agree_succeed", "should_have_failed", "should_have_succeeded",
}

func (o Outcome) String() string {
	if o < numOutcomes {
		return outcomeNames[o]
	}

	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// Agrees reports whether both sides returned the same verdict.
func (o Outcome) Agrees() bool { return o == AgreeFail || o == AgreeSucceed }

// Classify maps a pair of verdicts to an Outcome.
func Classify(estimated, feasible bool) Outcome {
	switch {
	case estimated == feasible && feasible:
		return AgreeSucceed
	case estimated == feasible:
		return AgreeFail
	case feasible:
		return ShouldHaveSucceeded
	default:
		return ShouldHaveFailed
	}
}

// Tally counts outcomes.
type Tally struct {
	AgreeFail           int
	AgreeSucceed        int
	ShouldHaveFailed    int
	ShouldHaveSucceeded int
}

func (t *Tally) add(o Outcome) {
	switch o {
	case AgreeFail:
		t.AgreeFail++
	case AgreeSucceed:
		t.AgreeSucceed++
	case ShouldHaveFailed:
		t.ShouldHaveFailed++
	case ShouldHaveSucceeded:
		t.ShouldHaveSucceeded++
	}
}

// Agreed is AgreeFail + AgreeSucceed.
func (t Tally) Agreed() int { return t.AgreeFail + t.AgreeSucceed }

// Disagreed is ShouldHaveFailed + ShouldHaveSucceeded.
func (t Tally) Disagreed() int { return t.ShouldHaveFailed + t.ShouldHaveSucceeded }

// Total is the number of classified cases.
func (t Tally) Total() int { return t.Agreed() + t.Disagreed() }

// Disagreement records one case where the two sides differ.
type Disagreement struct {
	Index   int
	Outcome Outcome
	// Items is the case as evaluated, sentinels included.
	Items []pool.Item
	// Report is set when the estimator strategy is Bounds.
	Report *estimate.Report
}

// Summary is the result of Run.
type Summary struct {
	Tally
	// Disagreements in case order.
	Disagreements []Disagreement
	// Failed counts cases that produced no verdict.
	Failed int
	// Solver accumulates exact solver statistics over all cases.
	Solver  exact.Stats
	Elapsed time.Duration
}

// String renders the one-line tally.
func (s Summary) String() string {
	return fmt.Sprintf("agreements: %d (%d fail, %d succeed), disagreements: %d (%d should have failed, %d should have succeeded)",
		s.Agreed(), s.AgreeFail, s.AgreeSucceed,
		s.Disagreed(), s.ShouldHaveFailed, s.ShouldHaveSucceeded)
}

// Sentinels returns the four single-code items, in code order.
func Sentinels() []pool.Item {
	return []pool.Item{
		pool.MustItem(pool.AC),
		pool.MustItem(pool.AD),
		pool.MustItem(pool.BC),
		pool.MustItem(pool.BD),
	}
}

// withSentinels returns a fresh slice; items is never modified.
func withSentinels(items []pool.Item) []pool.Item {
	out := make([]pool.Item, 0, len(items)+pool.NumCodes)
	out = append(out, items...)

	return append(out, Sentinels()...)
}
