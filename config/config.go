// Package config loads poolcheck run configuration from YAML.
//
// Every field has a deterministic default (see Default). A file only needs
// the keys it changes; unknown keys are rejected so typos do not silently
// fall back to defaults.
//
//	capacities: {row_a: 11, row_b: 12, col_c: 13, col_d: 10}
//	estimator: bounds        # or "budget"
//	code_budget: 46
//	append_sentinels: true
//	workers: 8
//	cross_check: false
//	log_level: info
//	solver:
//	  memo: true
//	  max_memo_entries: 0    # 0 = unlimited
//	  node_limit: 0
//	  time_limit: 30s
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/poolcheck/estimate"
	"github.com/katalvlaran/poolcheck/exact"
	"github.com/katalvlaran/poolcheck/pool"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Capacities mirrors pool.Capacities with named keys.
type Capacities struct {
	RowA int `yaml:"row_a"`
	RowB int `yaml:"row_b"`
	ColC int `yaml:"col_c"`
	ColD int `yaml:"col_d"`
}

// Pool converts to the solver representation.
func (c Capacities) Pool() pool.Capacities {
	return pool.Capacities{c.RowA, c.RowB, c.ColC, c.ColD}
}

// Solver holds the exact solver knobs.
type Solver struct {
	Memo           bool          `yaml:"memo"`
	MaxMemoEntries int           `yaml:"max_memo_entries"`
	NodeLimit      int           `yaml:"node_limit"`
	TimeLimit      time.Duration `yaml:"time_limit"`
}

// Config is one poolcheck run.
type Config struct {
	Capacities        Capacities    `yaml:"capacities"`
	Estimator         string        `yaml:"estimator"`
	CodeBudget        int           `yaml:"code_budget"`
	AppendSentinels   bool          `yaml:"append_sentinels"`
	Workers           int           `yaml:"workers"`
	CrossCheck        bool          `yaml:"cross_check"`
	CrossCheckTimeout time.Duration `yaml:"cross_check_timeout"` // zero means no bound
	LogLevel          string        `yaml:"log_level"`
	Solver            Solver        `yaml:"solver"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Capacities: Capacities{
			RowA: pool.DefaultRowA,
			RowB: pool.DefaultRowB,
			ColC: pool.DefaultColC,
			ColD: pool.DefaultColD,
		},
		Estimator:       estimate.Bounds.String(),
		CodeBudget:      estimate.DefaultCodeBudget,
		AppendSentinels: true,
		Workers:         runtime.GOMAXPROCS(0),
		LogLevel:        "info",
		Solver:          Solver{Memo: true},
	}
}

// Decode reads YAML from r on top of Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("config: read: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return cfg, cfg.Validate()
}

// Load reads the file at path. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var merr *multierror.Error
	if err := c.Capacities.Pool().Validate(); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("%w: capacities: %w", ErrInvalid, err))
	}
	if _, err := estimate.ParseStrategy(c.Estimator); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("%w: estimator: %w", ErrInvalid, err))
	}
	if c.CodeBudget < 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: code_budget=%d", ErrInvalid, c.CodeBudget))
	}
	if c.Workers < 1 {
		merr = multierror.Append(merr, fmt.Errorf("%w: workers=%d", ErrInvalid, c.Workers))
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		merr = multierror.Append(merr, fmt.Errorf("%w: log_level=%q", ErrInvalid, c.LogLevel))
	}
	if c.CrossCheckTimeout < 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: cross_check_timeout=%s", ErrInvalid, c.CrossCheckTimeout))
	}
	if c.Solver.MaxMemoEntries < 0 || c.Solver.NodeLimit < 0 || c.Solver.TimeLimit < 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: solver limits must be non-negative", ErrInvalid))
	}

	return merr.ErrorOrNil()
}

// Strategy returns the parsed estimator strategy.
func (c Config) Strategy() estimate.Strategy {
	s, _ := estimate.ParseStrategy(c.Estimator)

	return s
}

// ExactOptions builds solver options; RecordWitness stays off.
func (c Config) ExactOptions() exact.Options {
	opts := exact.DefaultOptions()
	opts.Capacities = c.Capacities.Pool()
	if !c.Solver.Memo {
		opts.Memo = exact.NoMemo
	}
	opts.MaxMemoEntries = c.Solver.MaxMemoEntries
	opts.NodeLimit = c.Solver.NodeLimit
	opts.TimeLimit = c.Solver.TimeLimit

	return opts
}
