package satcheck_test

import (
	"context"
	"testing"
	"time"

	"github.com/shoenig/test/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/poolcheck/catalog"
	"github.com/katalvlaran/poolcheck/exact"
	"github.com/katalvlaran/poolcheck/pool"
	"github.com/katalvlaran/poolcheck/satcheck"
)

func TestSolve_Scenarios(t *testing.T) {
	ac := pool.MustItem(pool.AC)
	full := pool.MustItem(pool.AC, pool.AD, pool.BC, pool.BD)
	small := pool.Capacities{2, 2, 2, 2}

	cases := []struct {
		name  string
		items []pool.Item
		caps  pool.Capacities
		want  bool
	}{
		{"empty", nil, small, true},
		{"four AC", []pool.Item{ac, ac, ac, ac}, small, true},
		{"five AC", []pool.Item{ac, ac, ac, ac, ac}, small, false},
		{"full, rows open", []pool.Item{full}, pool.Capacities{1, 1, 0, 0}, true},
		{"full, one row one column", []pool.Item{full}, pool.Capacities{1, 0, 1, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := satcheck.Feasible(context.Background(), tc.items, tc.caps)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	_, err := satcheck.Solve(context.Background(), []pool.Item{0}, pool.DefaultCapacities())
	assert.ErrorIs(t, err, pool.ErrInvalidItem)

	_, err = satcheck.Solve(context.Background(), nil, pool.Capacities{-1, 0, 0, 0})
	assert.ErrorIs(t, err, pool.ErrBadCapacity)
}

func TestSolve_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := satcheck.Solve(ctx, []pool.Item{pool.MustItem(pool.AC)}, pool.DefaultCapacities())
	assert.ErrorIs(t, err, satcheck.ErrSolverCanceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_DeadlineStopsSearch(t *testing.T) {
	// Many wide items at default capacities: infeasible, and a pigeonhole
	// argument the solver has to refute through the cardinality networks.
	wide := []pool.Item{
		pool.MustItem(pool.AC, pool.AD, pool.BC, pool.BD),
		pool.MustItem(pool.AC, pool.BD),
		pool.MustItem(pool.AD, pool.BC),
		pool.MustItem(pool.AC, pool.AD, pool.BC),
	}
	items := make([]pool.Item, 60)
	for i := range items {
		items[i] = wide[i%len(wide)]
	}
	require.False(t, exact.Feasible(items, pool.DefaultCapacities()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	start := time.Now()
	res, err := satcheck.Solve(ctx, items, pool.DefaultCapacities())
	assert.Less(t, time.Since(start), 2*time.Second)
	if err != nil {
		assert.ErrorIs(t, err, satcheck.ErrSolverCanceled)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		return
	}
	assert.False(t, res.Feasible)
}

func TestProp_AgreesWithExact(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 25).Draw(t, "n")
		items := make([]pool.Item, n)
		for i := range items {
			items[i] = pool.Item(rapid.IntRange(1, 15).Draw(t, "mask"))
		}
		var caps pool.Capacities
		for p := range caps {
			caps[p] = rapid.IntRange(0, 8).Draw(t, "cap")
		}

		res, err := satcheck.Solve(context.Background(), items, caps)
		must.NoError(t, err)
		must.Eq(t, exact.Feasible(items, caps), res.Feasible)

		if res.Feasible {
			var s pool.CountState
			for i, inc := range res.Witness {
				must.SliceContains(t, catalog.Menu(items[i]), inc)
				s = s.Add(inc)
			}
			must.True(t, s.Within(caps))
		}
	})
}
