// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"github.com/katalvlaran/circuitry/electronic"
)

// DeriveGraph builds the topology of the current board.
//
// Every attached component becomes a Node, in attachment order. For each pin
// not yet on an edge a new Edge is created and flooded outward from the pin
// cell across wire links; every pin link met on the way adds its terminal.
// Flooding never enters a body cell, so a component does not short its own
// pins. A pin with nothing attached yields a single-terminal edge.
//
// DeriveGraph panics if the layout breaks the link invariants, which only
// code inside this package could cause.
func (c *Circuit) DeriveGraph() *Graph {
	c.mu.RLock()
	defer c.mu.RUnlock()

	g := NewGraph()
	for _, id := range c.order {
		g.CreateNode(c.electronics[id].e)
	}

	// A cell belongs to exactly one net, so one visited set serves all floods.
	seen := make([]bool, c.width*c.height)
	for _, n := range g.nodes {
		for _, pin := range c.electronics[n.ID()].pins {
			if _, done := n.edges[pin.Name]; done {
				continue
			}
			c.flood(g, g.CreateEdge(), pin.Cell, seen)
		}
	}
	c.logger.Debug("graph derived", "nodes", len(g.nodes), "edges", len(g.edges))
	return g
}

func (c *Circuit) flood(g *Graph, edge *Edge, start electronic.Coordinate, seen []bool) {
	seen[c.index(start)] = true
	queue := []electronic.Coordinate{start}
	for head := 0; head < len(queue); head++ {
		u := c.cell(queue[head])
		for _, l := range u.connections {
			switch l.Kind {
			case LinkPin:
				n, ok := g.byID[l.Electronic]
				if !ok {
					panic(fmt.Sprintf("circuit: pin link of unattached component %s at %v", l.Electronic, u.at))
				}
				// The pin was never on another edge: its cell was unseen.
				if err := n.Connect(edge, l.Pin); err != nil {
					panic(fmt.Sprintf("circuit: corrupt layout at %v: %v", u.at, err))
				}
			case LinkWire:
				if i := c.index(l.To); !seen[i] {
					seen[i] = true
					queue = append(queue, l.To)
				}
			}
		}
	}
}
