// SPDX-License-Identifier: MIT

package equation_test

import (
	"fmt"

	"github.com/katalvlaran/circuitry/equation"
)

// ExampleSimultaneousEquations_Solve solves 3x − 2y = 9, x + y = −7.
func ExampleSimultaneousEquations_Solve() {
	se, err := equation.NewSimultaneous([]*equation.Equation{
		equation.New().Unknown("x", 3).Unknown("y", -2).Constant(9),
		equation.MustParse("x + y = -7"),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	got, err := se.Solve(nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, name := range se.Unknowns() {
		fmt.Printf("%s = %.3g\n", name, got[name])
	}

	// Output:
	// x = -1
	// y = -6
}
