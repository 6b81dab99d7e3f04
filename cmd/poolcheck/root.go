package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/poolcheck/config"
	"github.com/katalvlaran/poolcheck/pool"
)

// app is the state shared by all subcommands after flag parsing.
type app struct {
	configPath string
	logLevel   string
	logJSON    bool

	cfg    config.Config
	logger hclog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "poolcheck",
		Short: "Check item sequences against pool capacities",
		Long: `poolcheck decides whether a sequence of items can be resolved, in order,
without any of the four pools (RowA, RowB, ColC, ColD) exceeding its
capacity, and measures how often a fast estimator agrees with the exact
answer.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, off")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")

	root.AddCommand(newCompareCmd(a), newSolveCmd(a), newGenerateCmd(a))

	return root
}

// init loads configuration and builds the logger. Command-line flags win
// over the file.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:       "poolcheck",
		Level:      hclog.LevelFromString(cfg.LogLevel),
		Output:     cmd.ErrOrStderr(),
		JSONFormat: a.logJSON,
	})
	a.logger.Debug("configuration loaded", "path", a.configPath, "capacities", cfg.Capacities.Pool())

	return nil
}

// capsFlag is a pool.Capacities settable as "RowA,RowB,ColC,ColD".
type capsFlag struct {
	caps pool.Capacities
	set  bool
}

func (f *capsFlag) String() string {
	if !f.set {
		return ""
	}
	parts := make([]string, pool.NumPools)
	for i, v := range f.caps {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

func (f *capsFlag) Set(s string) error {
	fields := strings.Split(s, ",")
	if len(fields) != pool.NumPools {
		return fmt.Errorf("want %d comma separated capacities, got %q", pool.NumPools, s)
	}
	var caps pool.Capacities
	for i, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return fmt.Errorf("capacity %q: %w", field, err)
		}
		caps[i] = v
	}
	if err := caps.Validate(); err != nil {
		return err
	}
	f.caps, f.set = caps, true

	return nil
}

func (f *capsFlag) Type() string { return "a,b,c,d" }

// resolve returns the flag value if given, else fallback.
func (f *capsFlag) resolve(fallback pool.Capacities) pool.Capacities {
	if f.set {
		return f.caps
	}

	return fallback
}
