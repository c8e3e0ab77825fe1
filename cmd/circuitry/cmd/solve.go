// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuitry/equation"
	"github.com/katalvlaran/circuitry/internal/scenario"
)

var (
	equationFlags []string
	knownFlags    []string
)

var solveCmd = &cobra.Command{
	Use:   "solve [scenario.hcl]",
	Short: "Solve equation systems from a scenario or from flags",
	Long: `Solve every system of a scenario file, or a single system given with -e.
Known values fix unknowns before solving.

Examples:
  circuitry solve --var rhs=-7 scenario.hcl
  circuitry solve -e "3x - 2y = 9" -e "x + y = -7"
  circuitry solve -e "x + y + z = 6" -e "x - y + 2z = 5" --known z=2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringArrayVarP(&equationFlags, "equation", "e", nil,
		"equation such as \"3x - 2y = 9\" (repeatable)")
	solveCmd.Flags().StringArrayVarP(&knownFlags, "known", "k", nil,
		"known value name=number (repeatable, with -e)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	out := cmd.OutOrStdout()

	switch {
	case len(args) == 1 && len(equationFlags) > 0:
		return errors.New("give either a scenario file or -e equations, not both")
	case len(args) == 0 && len(equationFlags) == 0:
		return errors.New("nothing to solve: give a scenario file or -e equations")
	case len(args) == 0:
		return solveFlags(cmd, s, out)
	}

	sc, err := s.load(cmd, args[0])
	if err != nil {
		return err
	}
	var errs []error
	for _, sys := range sc.Systems {
		if err := printSolution(out, sys); err != nil {
			errs = append(errs, fmt.Errorf("system %q: %w", sys.Name, err))
		}
	}
	return errors.Join(errs...)
}

func solveFlags(cmd *cobra.Command, s *session, out io.Writer) error {
	known, err := parseKnown(knownFlags)
	if err != nil {
		return err
	}
	eqs := make([]*equation.Equation, 0, len(equationFlags))
	for _, text := range equationFlags {
		eq, err := equation.Parse(text)
		if err != nil {
			return err
		}
		eqs = append(eqs, eq)
	}
	opts := []equation.Option{equation.WithLogger(s.logger)}
	if eps, ok, err := epsilonOption(cmd); err != nil {
		return err
	} else if ok {
		opts = append(opts, equation.WithEpsilon(eps))
	}
	se, err := equation.NewSimultaneous(eqs, opts...)
	if err != nil {
		return err
	}
	return printSolution(out, &scenario.System{Name: "equations", Equations: se, Known: known})
}

func printSolution(out io.Writer, sys *scenario.System) error {
	if sys.Err != nil {
		return sys.Err
	}
	got, err := sys.Equations.Solve(sys.Known)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "system %q\n", sys.Name)
	for _, name := range sys.Equations.Unknowns() {
		fmt.Fprintf(out, "  %s = %s\n", name, formatValue(got[name]))
	}
	return nil
}

func parseKnown(pairs []string) (map[string]float64, error) {
	raw, err := scenario.ParseVars(pairs)
	if err != nil {
		return nil, err
	}
	known := make(map[string]float64, len(raw))
	for name, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("--known %s: %w", name, err)
		}
		known[name] = f
	}
	return known, nil
}

// formatValue prints ten significant digits, enough to hide elimination noise.
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'g', 10, 64)
	if s == "-0" {
		return "0"
	}
	return s
}
