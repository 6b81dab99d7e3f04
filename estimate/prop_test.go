package estimate_test

import (
	"testing"

	"github.com/shoenig/test/must"
	"pgregory.net/rapid"

	"github.com/katalvlaran/poolcheck/estimate"
	"github.com/katalvlaran/poolcheck/exact"
	"github.com/katalvlaran/poolcheck/pool"
)

func drawInstance(t *rapid.T, maxLen, maxCap int) ([]pool.Item, pool.Capacities) {
	n := rapid.IntRange(0, maxLen).Draw(t, "n")
	items := make([]pool.Item, n)
	for i := range items {
		items[i] = pool.Item(rapid.IntRange(1, pool.NumItemMasks-1).Draw(t, "mask"))
	}
	var caps pool.Capacities
	for p := range caps {
		caps[p] = rapid.IntRange(0, maxCap).Draw(t, pool.Pool(p).String())
	}

	return items, caps
}

// An estimator rejection is always a true rejection.
func TestProp_RejectionIsSound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items, caps := drawInstance(t, 30, 7)
		if !estimate.Estimate(items, caps) {
			must.False(t, exact.Feasible(items, caps))
		}
	})
}

// Skewed towards multi-code items, where the usage rule matters most.
func TestProp_RejectionIsSound_WideItems(t *testing.T) {
	wide := []pool.Item{0x6, 0x7, 0x9, 0xB, 0xD, 0xE, 0xF, 0x3, 0x5, 0xA, 0xC}
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOfN(rapid.SampledFrom(wide), 0, 30).Draw(t, "items")
		_, caps := drawInstance(t, 0, 9)
		if !estimate.Estimate(items, caps) {
			must.False(t, exact.Feasible(items, caps))
		}
	})
}

func TestProp_FailedAtIsFirstViolation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items, caps := drawInstance(t, 30, 5)
		rep := estimate.Explain(items, caps)
		if rep.Feasible {
			must.Eq(t, -1, rep.FailedAt)
			return
		}
		must.True(t, estimate.Estimate(items[:rep.FailedAt], caps))
		must.False(t, estimate.Estimate(items[:rep.FailedAt+1], caps))
	})
}
