// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/circuitry/electronic"
)

// Circuit is a bounded grid board holding attached components and wires.
type Circuit struct {
	mu          sync.RWMutex
	width       int
	height      int
	layout      [][]Unit
	electronics map[string]*placement
	order       []string
	logger      *slog.Logger
}

// placement snapshots where a component was attached, so detaching never
// depends on state the caller may have changed since.
type placement struct {
	e           *electronic.Electronic
	at          electronic.Coordinate
	orientation electronic.Orientation
	pins        []electronic.Pin
}

// Option configures a Circuit at construction.
type Option func(*Circuit)

// WithHeight sets the board height; by default it equals the width.
// Panics on a non-positive value.
func WithHeight(h int) Option {
	if h <= 0 {
		panic(fmt.Sprintf("circuit: WithHeight(%d): height must be > 0", h))
	}
	return func(c *Circuit) { c.height = h }
}

// WithLogger routes placement and derivation debug logs to l.
// A nil logger keeps the default discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Circuit) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an empty board width cells wide. Height defaults to width.
//
// Errors:
//   - ErrBadDimensions if width ≤ 0.
func New(width int, opts ...Option) (*Circuit, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width=%d", ErrBadDimensions, width)
	}
	c := &Circuit{
		width:       width,
		height:      width,
		electronics: make(map[string]*placement),
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.layout = make([][]Unit, c.height)
	for y := range c.layout {
		row := make([]Unit, c.width)
		for x := range row {
			row[x].at = electronic.Pt(x, y)
		}
		c.layout[y] = row
	}
	return c, nil
}

// Width returns the number of columns.
func (c *Circuit) Width() int { return c.width }

// Height returns the number of rows.
func (c *Circuit) Height() int { return c.height }

// InBounds reports whether p lies on the board.
func (c *Circuit) InBounds(p electronic.Coordinate) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// Layout returns a deep copy of the grid, indexed [row][col].
func (c *Circuit) Layout() [][]Unit {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([][]Unit, c.height)
	for y, row := range c.layout {
		out[y] = append([]Unit(nil), row...)
	}
	return out
}

// Unit returns a copy of the cell at p.
func (c *Circuit) Unit(p electronic.Coordinate) (Unit, error) {
	if !c.InBounds(p) {
		return Unit{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.layout[p.Y][p.X], nil
}

// Electronics returns the attached components in attachment order.
func (c *Circuit) Electronics() []*electronic.Electronic {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*electronic.Electronic, len(c.order))
	for i, id := range c.order {
		out[i] = c.electronics[id].e
	}
	return out
}

// Electronic looks up an attached component by identity.
func (c *Circuit) Electronic(id string) (*electronic.Electronic, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.electronics[id]
	if !ok {
		return nil, false
	}
	return p.e, true
}

func (c *Circuit) cell(p electronic.Coordinate) *Unit { return &c.layout[p.Y][p.X] }

func (c *Circuit) index(p electronic.Coordinate) int { return p.Y*c.width + p.X }

// link writes l into slot d of cell a and its mirror into the opposite slot
// of the neighbour. It is the only place links are created.
func (c *Circuit) link(a electronic.Coordinate, d electronic.Direction, kind LinkKind, id, pin string) {
	b := a.Step(d)
	c.cell(a).connections[d] = Link{Kind: kind, To: b, Electronic: id, Pin: pin}
	c.cell(b).connections[d.Opposite()] = Link{Kind: kind, To: a, Electronic: id, Pin: pin}
}

// unlink clears slot d of cell a and its mirror.
func (c *Circuit) unlink(a electronic.Coordinate, d electronic.Direction) {
	c.cell(a).connections[d] = Link{}
	c.cell(a.Step(d)).connections[d.Opposite()] = Link{}
}
