package estimate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poolcheck/estimate"
	"github.com/katalvlaran/poolcheck/pool"
)

func times(it pool.Item, n int) []pool.Item {
	out := make([]pool.Item, n)
	for i := range out {
		out[i] = it
	}

	return out
}

func TestExplain(t *testing.T) {
	ac := pool.MustItem(pool.AC)
	bd := pool.MustItem(pool.BD)
	full := pool.MustItem(pool.AC, pool.AD, pool.BC, pool.BD)
	colC := pool.MustItem(pool.AC, pool.BC)
	colD := pool.MustItem(pool.AD, pool.BD)

	cases := []struct {
		name     string
		items    []pool.Item
		caps     pool.Capacities
		feasible bool
		failedAt int
		bound    estimate.Bound
		detail   string
	}{
		{
			name: "empty", caps: pool.Capacities{},
			feasible: true, failedAt: -1, bound: estimate.BoundNone,
		},
		{
			name: "disjoint singles", items: []pool.Item{ac, bd}, caps: pool.Capacities{2, 2, 2, 2},
			feasible: true, failedAt: -1, bound: estimate.BoundNone,
		},
		{
			name: "five AC over A+C", items: times(ac, 5), caps: pool.Capacities{2, 2, 2, 2},
			failedAt: 4, bound: estimate.BoundCode, detail: "AC",
		},
		{
			name: "full item without B or D", items: []pool.Item{full}, caps: pool.Capacities{1, 0, 1, 0},
			failedAt: 0, bound: estimate.BoundCode, detail: "BD",
		},
		{
			name: "22 full items at defaults", items: times(full, 22), caps: pool.DefaultCapacities(),
			failedAt: 21, bound: estimate.BoundCode, detail: "AD",
		},
		{
			name:     "row A star over its three pools",
			items:    []pool.Item{colC, colD, colC, colD, colC, colD, colC, colD},
			caps:     pool.Capacities{2, 10, 2, 2},
			failedAt: 6, bound: estimate.BoundStar, detail: "AC+AD",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep := estimate.Explain(tc.items, tc.caps)
			assert.Equal(t, tc.feasible, rep.Feasible)
			assert.Equal(t, tc.failedAt, rep.FailedAt)
			assert.Equal(t, tc.bound, rep.Bound, "bound %s", rep.Bound)
			if tc.detail != "" {
				assert.Equal(t, tc.detail, rep.Detail)
			}
			assert.Equal(t, tc.feasible, estimate.Estimate(tc.items, tc.caps))
		})
	}
}

func TestExplain_NegativeCapacity(t *testing.T) {
	rep := estimate.Explain(nil, pool.Capacities{0, -1, 0, 0})
	assert.False(t, rep.Feasible)
	assert.Equal(t, -1, rep.FailedAt)
	assert.Equal(t, estimate.BoundCapacity, rep.Bound)
	assert.Equal(t, "capacity", rep.Bound.String())
	assert.Contains(t, rep.Detail, "capacity")

	rep = estimate.Explain([]pool.Item{pool.MustItem(pool.AC)}, pool.Capacities{0, 0, 0, 0})
	assert.Equal(t, 0, rep.FailedAt)
	assert.NotEqual(t, estimate.BoundCapacity, rep.Bound, "zero capacities are valid")
}

func TestCodeBudget(t *testing.T) {
	pair := pool.MustItem(pool.AC, pool.BD)
	assert.Equal(t, 46, estimate.DefaultCodeBudget)
	assert.True(t, estimate.CodeBudget(nil, 0))
	assert.True(t, estimate.CodeBudget(times(pair, 23), estimate.DefaultCodeBudget))
	assert.False(t, estimate.CodeBudget(append(times(pair, 23), pool.MustItem(pool.AD)), estimate.DefaultCodeBudget))
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]estimate.Strategy{
		"bounds":  estimate.Bounds,
		"BOUNDS":  estimate.Bounds,
		"":        estimate.Bounds,
		" budget": estimate.Budget,
	}
	for in, want := range cases {
		got, err := estimate.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, got, mustRoundTrip(t, got))
	}

	_, err := estimate.ParseStrategy("oracle")
	assert.ErrorIs(t, err, estimate.ErrUnknownStrategy)
}

func mustRoundTrip(t *testing.T, s estimate.Strategy) estimate.Strategy {
	t.Helper()
	back, err := estimate.ParseStrategy(s.String())
	require.NoError(t, err)

	return back
}

func TestStrategy_Estimator(t *testing.T) {
	ac := pool.MustItem(pool.AC)
	caps := pool.Capacities{1, 1, 1, 1}

	bounds := estimate.Bounds.Estimator(caps, 0)
	assert.True(t, bounds(times(ac, 2)))
	assert.False(t, bounds(times(ac, 3)))

	// Budget ignores capacities entirely.
	budget := estimate.Budget.Estimator(caps, 3)
	assert.True(t, budget(times(ac, 3)))
	assert.False(t, budget(times(ac, 4)))

	defaulted := estimate.Budget.Estimator(caps, 0)
	assert.True(t, defaulted(times(ac, estimate.DefaultCodeBudget)))
	assert.False(t, defaulted(times(ac, estimate.DefaultCodeBudget+1)))
}
