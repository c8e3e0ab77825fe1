// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var showGrid bool

var deriveCmd = &cobra.Command{
	Use:   "derive <scenario.hcl>",
	Short: "Print the nets of every board in a scenario",
	Long: `Build every board of a scenario file and print the nets derived from its
grid: one line per net listing the terminals it joins.

Examples:
  circuitry derive board.hcl
  circuitry derive --grid board.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runDerive,
}

func init() {
	rootCmd.AddCommand(deriveCmd)

	deriveCmd.Flags().BoolVarP(&showGrid, "grid", "g", false, "also print the board sketch")
}

func runDerive(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	sc, err := s.load(cmd, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var errs []error
	for _, b := range sc.Boards {
		if b.Err != nil {
			errs = append(errs, fmt.Errorf("board %q: %w", b.Name, b.Err))
			continue
		}
		c := b.Circuit
		g := c.DeriveGraph()
		fmt.Fprintf(out, "board %q (%dx%d, %d components, %d nets)\n",
			b.Name, c.Width(), c.Height(), len(g.Nodes()), len(g.Edges()))
		if showGrid {
			fmt.Fprint(out, c.Sketch())
		}
		fmt.Fprint(out, g)
		for _, e := range g.Edges() {
			if e.Dangling() {
				s.logger.Warn("dangling pin", "board", b.Name, "terminal", e.Terminals()[0].String())
			}
		}
	}
	return errors.Join(errs...)
}
