// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check <scenario.hcl>",
	Short: "Validate every board and system of a scenario",
	Long: `Load a scenario and report, per board, placement and wiring problems and
dangling pins; per system, membership problems, linear dependency and
whether it solves.

Examples:
  circuitry check scenario.hcl
  circuitry check --var rhs=-7 scenario.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	sc, err := s.load(cmd, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	failed := false

	for _, b := range sc.Boards {
		if b.Err != nil {
			failed = true
			fmt.Fprintf(out, "board %q: FAIL\n", b.Name)
			for _, line := range strings.Split(b.Err.Error(), "\n") {
				fmt.Fprintf(out, "  %s\n", line)
			}
			continue
		}
		g := b.Circuit.DeriveGraph()
		dangling := 0
		for _, e := range g.Edges() {
			if e.Dangling() {
				dangling++
			}
		}
		fmt.Fprintf(out, "board %q: ok (%d components, %d nets, %d dangling)\n",
			b.Name, len(g.Nodes()), len(g.Edges()), dangling)
	}

	for _, sys := range sc.Systems {
		if sys.Err != nil {
			failed = true
			fmt.Fprintf(out, "system %q: FAIL\n  %v\n", sys.Name, sys.Err)
			continue
		}
		se := sys.Equations
		dependent := "no"
		if se.HasLinearlyDependentEquations() {
			dependent = "yes"
		}
		status := "ok"
		if _, err := se.Solve(sys.Known); err != nil {
			failed = true
			status = err.Error()
		}
		fmt.Fprintf(out, "system %q: %d equations over [%s], dependent: %s, solve: %s\n",
			sys.Name, se.Len(), strings.Join(se.Unknowns(), " "), dependent, status)
	}

	if failed {
		return errCheckFailed
	}
	return nil
}
