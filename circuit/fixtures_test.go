// SPDX-License-Identifier: MIT

package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitry/circuit"
	"github.com/katalvlaran/circuitry/electronic"
)

func place(t testing.TB, c *circuit.Circuit, kind electronic.Kind, id string, x, y, turns int) *electronic.Electronic {
	t.Helper()
	e := electronic.MustNew(kind,
		electronic.WithID(id),
		electronic.WithCoordinate(electronic.Pt(x, y)),
		electronic.WithOrientation(electronic.Orientation(turns)))
	require.NoError(t, c.AppendElectronics(e))
	return e
}

func joints(t testing.TB, c *circuit.Circuit, pts ...[4]int) {
	t.Helper()
	for _, p := range pts {
		require.NoError(t, c.AddJoint(electronic.Pt(p[0], p[1]), electronic.Pt(p[2], p[3])))
	}
}

// simpleCircuit: one resistor across a source, ground on the return.
//
//	[ . . . . . ]
//	[ . n o n . ]
//	[ . o . w . ]
//	[ . n n w . ]
//	[ . . o . . ]
func simpleCircuit(t testing.TB) *circuit.Circuit {
	c, err := circuit.New(5)
	require.NoError(t, err)
	place(t, c, electronic.Resistor, "R", 2, 1, 0)
	place(t, c, electronic.Source, "S", 1, 2, 0)
	place(t, c, electronic.Ground, "G", 2, 4, 0)
	joints(t, c,
		[4]int{3, 1, 3, 2},
		[4]int{3, 2, 3, 3},
		[4]int{3, 3, 2, 3},
		[4]int{2, 3, 1, 3},
	)
	return c
}

// seriesCircuit: two resistors in series with the source.
func seriesCircuit(t testing.TB) *circuit.Circuit {
	c, err := circuit.New(5)
	require.NoError(t, err)
	place(t, c, electronic.Resistor, "R1", 2, 0, 0)
	place(t, c, electronic.Resistor, "R2", 3, 1, 1)
	place(t, c, electronic.Source, "S", 1, 1, 0)
	place(t, c, electronic.Ground, "G", 2, 3, 0)
	joints(t, c,
		[4]int{1, 2, 2, 2},
		[4]int{2, 2, 3, 2},
	)
	return c
}

// parallelCircuit: two resistors in parallel across the source.
func parallelCircuit(t testing.TB) *circuit.Circuit {
	c, err := circuit.New(5)
	require.NoError(t, err)
	place(t, c, electronic.Resistor, "R1", 2, 1, 0)
	place(t, c, electronic.Resistor, "R2", 2, 3, 0)
	place(t, c, electronic.Source, "S", 0, 2, 0)
	place(t, c, electronic.Ground, "G", 4, 4, 0)
	joints(t, c,
		[4]int{0, 1, 1, 1},
		[4]int{1, 1, 1, 2},
		[4]int{1, 2, 1, 3},
		[4]int{3, 1, 4, 1},
		[4]int{4, 1, 4, 2},
		[4]int{4, 2, 4, 3},
		[4]int{4, 3, 3, 3},
		[4]int{3, 3, 3, 4},
		[4]int{3, 4, 2, 4},
		[4]int{2, 4, 1, 4},
		[4]int{1, 4, 0, 4},
		[4]int{0, 4, 0, 3},
	)
	return c
}

// expectGraph builds a graph by hand: nets lists, per edge, "id" or "id.pin"
// terminals.
func expectGraph(t testing.TB, c *circuit.Circuit, nets ...[]string) *circuit.Graph {
	t.Helper()
	g := circuit.NewGraph()
	for _, e := range c.Electronics() {
		g.CreateNode(e)
	}
	for _, net := range nets {
		edge := g.CreateEdge()
		for _, term := range net {
			id, pin := splitTerminal(term)
			n, ok := g.Node(id)
			require.True(t, ok, "unknown node %s", id)
			require.NoError(t, n.Connect(edge, pin))
		}
	}
	return g
}

func splitTerminal(s string) (id, pin string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}
