package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poolcheck/config"
	"github.com/katalvlaran/poolcheck/estimate"
	"github.com/katalvlaran/poolcheck/exact"
	"github.com/katalvlaran/poolcheck/pool"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, pool.DefaultCapacities(), cfg.Capacities.Pool())
	assert.Equal(t, estimate.Bounds, cfg.Strategy())
	assert.Equal(t, 46, cfg.CodeBudget)
	assert.True(t, cfg.AppendSentinels)
	assert.GreaterOrEqual(t, cfg.Workers, 1)

	opts := cfg.ExactOptions()
	assert.Equal(t, exact.Memoize, opts.Memo)
	assert.Equal(t, pool.DefaultCapacities(), opts.Capacities)
	assert.False(t, opts.RecordWitness)
}

func TestDecode_PartialOverride(t *testing.T) {
	in := `
capacities: {row_a: 2, row_b: 2}
estimator: budget
workers: 3
solver:
  memo: false
  node_limit: 1000
  time_limit: 1500ms
`
	cfg, err := config.Decode(strings.NewReader(in))
	require.NoError(t, err)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, pool.Capacities{2, 2, pool.DefaultColC, pool.DefaultColD}, cfg.Capacities.Pool())
	assert.Equal(t, estimate.Budget, cfg.Strategy())
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.AppendSentinels)

	opts := cfg.ExactOptions()
	assert.Equal(t, exact.NoMemo, opts.Memo)
	assert.Equal(t, 1000, opts.NodeLimit)
	assert.Equal(t, 1500*time.Millisecond, opts.TimeLimit)
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := config.Decode(strings.NewReader("workerz: 4\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate_ReportsEverything(t *testing.T) {
	cfg := config.Default()
	cfg.Capacities.ColD = -1
	cfg.Estimator = "psychic"
	cfg.Workers = 0
	cfg.LogLevel = "loud"
	cfg.CrossCheckTimeout = -time.Second

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, pool.ErrBadCapacity)
	assert.ErrorIs(t, err, estimate.ErrUnknownStrategy)
	for _, want := range []string{"capacities", "estimator", "workers=0", `log_level="loud"`, "cross_check_timeout=-1s"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "poolcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cross_check: true\ncross_check_timeout: 2s\nlog_level: debug\n"), 0o600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.CrossCheck)
	assert.Equal(t, 2*time.Second, cfg.CrossCheckTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
