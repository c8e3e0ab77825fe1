// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/circuitry/electronic"
)

// Graph is the topology of a board: one Node per component and one Edge per
// net. Nodes and edges keep creation order.
type Graph struct {
	nodes []*Node
	byID  map[string]*Node
	edges []*Edge
}

// Node wraps one component and maps each of its connected pins to an edge.
type Node struct {
	electronic *electronic.Electronic
	edges      map[string]*Edge
}

// Edge is a net: the set of terminals that are electrically joined.
type Edge struct {
	id        int
	terminals []Terminal
}

// Terminal is one (node, pin) membership of an edge.
type Terminal struct {
	Node *Node
	Pin  string
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{byID: make(map[string]*Node)}
}

// CreateNode adds a node for e, or returns the existing node with e's identity.
func (g *Graph) CreateNode(e *electronic.Electronic) *Node {
	if n, ok := g.byID[e.ID()]; ok {
		return n
	}
	n := &Node{electronic: e, edges: make(map[string]*Edge, e.PinCount())}
	g.nodes = append(g.nodes, n)
	g.byID[e.ID()] = n
	return n
}

// CreateEdge adds an empty edge.
func (g *Graph) CreateEdge() *Edge {
	e := &Edge{id: len(g.edges) + 1}
	g.edges = append(g.edges, e)
	return e
}

// Nodes returns the nodes in creation order.
func (g *Graph) Nodes() []*Node { return slices.Clone(g.nodes) }

// Edges returns the edges in creation order.
func (g *Graph) Edges() []*Edge { return slices.Clone(g.edges) }

// Node looks up a node by component identity.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Electronic returns the wrapped component.
func (n *Node) Electronic() *electronic.Electronic { return n.electronic }

// ID returns the wrapped component's identity.
func (n *Node) ID() string { return n.electronic.ID() }

// Connect records that pin of n belongs to edge and adds the terminal to the
// edge. The pin name defaults to "" for single-pin components. Connecting the
// same pin to the same edge twice is a no-op.
//
// Errors:
//   - ErrUnknownPin if the component does not declare the pin.
//   - ErrPinConnected if the pin already belongs to another edge.
func (n *Node) Connect(edge *Edge, pin ...string) error {
	name := ""
	if len(pin) > 0 {
		name = pin[0]
	}
	if !n.electronic.HasPin(name) {
		return fmt.Errorf("%w: %s has no pin %q", ErrUnknownPin, n.ID(), name)
	}
	if cur, ok := n.edges[name]; ok {
		if cur == edge {
			return nil
		}
		return fmt.Errorf("%w: %s.%s on edge %d", ErrPinConnected, n.ID(), name, cur.id)
	}
	n.edges[name] = edge
	edge.terminals = append(edge.terminals, Terminal{Node: n, Pin: name})
	return nil
}

// Edge returns the edge pin belongs to.
func (n *Node) Edge(pin string) (*Edge, bool) {
	e, ok := n.edges[pin]
	return e, ok
}

// ID returns the 1-based creation index.
func (e *Edge) ID() int { return e.id }

// Terminals returns the member terminals in discovery order.
func (e *Edge) Terminals() []Terminal { return slices.Clone(e.terminals) }

// Len returns the number of terminals.
func (e *Edge) Len() int { return len(e.terminals) }

// Dangling reports a net that reaches no other terminal.
func (e *Edge) Dangling() bool { return len(e.terminals) < 2 }

// String renders "id.pin", or just "id" for the unnamed pin.
func (t Terminal) String() string {
	if t.Pin == "" {
		return t.Node.ID()
	}
	return t.Node.ID() + "." + t.Pin
}

func (e *Edge) key() string {
	names := make([]string, len(e.terminals))
	for i, t := range e.terminals {
		names[i] = t.String()
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// Equivalent reports whether g and o have the same node identities and the
// same partition of terminals into edges, ignoring creation order.
func (g *Graph) Equivalent(o *Graph) bool {
	if o == nil || len(g.nodes) != len(o.nodes) || len(g.edges) != len(o.edges) {
		return false
	}
	for id := range g.byID {
		if _, ok := o.byID[id]; !ok {
			return false
		}
	}
	return slices.Equal(g.netKeys(), o.netKeys())
}

func (g *Graph) netKeys() []string {
	keys := make([]string, len(g.edges))
	for i, e := range g.edges {
		keys[i] = e.key()
	}
	slices.Sort(keys)
	return keys
}

// String lists one net per line as "net N: a.1, b.2".
func (g *Graph) String() string {
	var b strings.Builder
	for _, e := range g.edges {
		fmt.Fprintf(&b, "net %d: %s\n", e.id, e.key())
	}
	return b.String()
}
