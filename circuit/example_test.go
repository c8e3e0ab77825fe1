// SPDX-License-Identifier: MIT

package circuit_test

import (
	"fmt"

	"github.com/katalvlaran/circuitry/circuit"
	"github.com/katalvlaran/circuitry/electronic"
)

////////////////////////////////////////////////////////////////////////////////
// Example: DeriveGraph
////////////////////////////////////////////////////////////////////////////////

// ExampleCircuit_DeriveGraph places a resistor across a source, wires the
// return path through ground, and prints the two resulting nets.
//
//	[ . . . . . ]
//	[ . n o n . ]     R at (2,1)
//	[ . o . w . ]     S at (1,2)
//	[ . n n w . ]
//	[ . . o . . ]     G at (2,4)
func ExampleCircuit_DeriveGraph() {
	c, _ := circuit.New(5)
	for _, e := range []*electronic.Electronic{
		electronic.MustNew(electronic.Resistor, electronic.WithID("R"), electronic.WithCoordinate(electronic.Pt(2, 1))),
		electronic.MustNew(electronic.Source, electronic.WithID("S"), electronic.WithCoordinate(electronic.Pt(1, 2))),
		electronic.MustNew(electronic.Ground, electronic.WithID("G"), electronic.WithCoordinate(electronic.Pt(2, 4))),
	} {
		if err := c.AppendElectronics(e); err != nil {
			fmt.Println(err)
			return
		}
	}
	_ = c.AddWire(electronic.Pt(3, 1), electronic.Pt(3, 2), electronic.Pt(3, 3), electronic.Pt(2, 3), electronic.Pt(1, 3))

	fmt.Print(c.DeriveGraph())

	// Output:
	// net 1: R.1, S.POSITIVE
	// net 2: G, R.2, S.NEGATIVE
}
