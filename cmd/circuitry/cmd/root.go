// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuitry/internal/logging"
	"github.com/katalvlaran/circuitry/internal/scenario"
)

var (
	// Global flags
	logLevel  string
	logFormat string
	varPairs  []string
	epsilon   float64
)

var rootCmd = &cobra.Command{
	Use:   "circuitry",
	Short: "Grid circuit topology and linear equation solver",
	Long: `Place components on a grid board, derive which terminals share a net,
and solve simultaneous linear equations, all from HCL scenario files.

Examples:
  circuitry derive --grid board.hcl                  # Print nets and the board sketch
  circuitry solve -e "3x - 2y = 9" -e "x + y = -7"   # Solve equations from flags
  circuitry check --var rhs=-7 scenario.hcl          # Validate every board and system`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "text", "log format: text or json")
	pf.StringArrayVar(&varPairs, "var", nil, "scenario variable name=value (repeatable)")
	pf.Float64Var(&epsilon, "epsilon", 0, "zero tolerance for elimination (default: settings block, else 1e-9)")
}

// session is the logger and options shared by one command run.
type session struct {
	level  *slog.LevelVar
	logger *slog.Logger
}

func newSession(cmd *cobra.Command) *session {
	lv := new(slog.LevelVar)
	lv.Set(logging.ParseLevel(logLevel))
	return &session{level: lv, logger: logging.NewLeveled(lv, logFormat, cmd.ErrOrStderr())}
}

// epsilonOption returns the --epsilon override, if given.
func epsilonOption(cmd *cobra.Command) (float64, bool, error) {
	if !cmd.Flags().Changed("epsilon") {
		return 0, false, nil
	}
	if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon < 0 {
		return 0, false, fmt.Errorf("--epsilon must be finite and non-negative, got %v", epsilon)
	}
	return epsilon, true, nil
}

// load reads a scenario with the global flags applied. The settings block's
// log_level takes effect unless --log-level was given.
func (s *session) load(cmd *cobra.Command, path string) (*scenario.Scenario, error) {
	vars, err := scenario.ParseVars(varPairs)
	if err != nil {
		return nil, err
	}
	opts := []scenario.Option{scenario.WithVars(vars), scenario.WithLogger(s.logger)}
	eps, ok, err := epsilonOption(cmd)
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, scenario.WithEpsilon(eps))
	}

	sc, err := scenario.Load(path, opts...)
	if err != nil {
		return nil, err
	}
	if lvl := sc.Settings.LogLevel; lvl != "" && !cmd.Flags().Changed("log-level") {
		s.level.Set(logging.ParseLevel(lvl))
	}
	return sc, nil
}
