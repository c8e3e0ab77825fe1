// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"github.com/katalvlaran/circuitry/electronic"
)

// AddJoint lays a wire segment between two orthogonally adjacent cells.
// Re-adding an existing wire is a no-op.
//
// Errors:
//   - ErrOutOfBounds if either cell is off the board.
//   - ErrNotAdjacent if the cells are not orthogonal neighbours.
//   - ErrBodyCell if either cell holds a component body.
func (c *Circuit) AddJoint(a, b electronic.Coordinate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, exists, err := c.checkJoint(a, b)
	if err != nil {
		return err
	}
	if !exists {
		c.link(a, d, LinkWire, "", "")
		c.logger.Debug("joint added", "from", a.String(), "to", b.String())
	}
	return nil
}

// AddWire lays a polyline of joints through consecutive points. Every segment
// is validated before any is written, so a rejected wire leaves the board
// unchanged.
func (c *Circuit) AddWire(points ...electronic.Coordinate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	dirs := make([]electronic.Direction, 0, len(points))
	for i := 1; i < len(points); i++ {
		d, _, err := c.checkJoint(points[i-1], points[i])
		if err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
		dirs = append(dirs, d)
	}
	for i, d := range dirs {
		c.link(points[i], d, LinkWire, "", "")
	}
	c.logger.Debug("wire added", "points", len(points))
	return nil
}

// RemoveJoint deletes the wire segment between a and b.
//
// Errors: ErrOutOfBounds, ErrNotAdjacent, ErrJointNotFound.
func (c *Circuit) RemoveJoint(a, b electronic.Coordinate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, err := c.adjacent(a, b)
	if err != nil {
		return err
	}
	if c.cell(a).connections[d].Kind != LinkWire {
		return fmt.Errorf("%w: %v-%v", ErrJointNotFound, a, b)
	}
	c.unlink(a, d)
	c.logger.Debug("joint removed", "from", a.String(), "to", b.String())
	return nil
}

func (c *Circuit) adjacent(a, b electronic.Coordinate) (electronic.Direction, error) {
	if !c.InBounds(a) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, a)
	}
	if !c.InBounds(b) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, b)
	}
	d, ok := a.DirectionTo(b)
	if !ok {
		return 0, fmt.Errorf("%w: %v-%v", ErrNotAdjacent, a, b)
	}
	return d, nil
}

// checkJoint validates a segment; exists reports a wire already in place.
func (c *Circuit) checkJoint(a, b electronic.Coordinate) (d electronic.Direction, exists bool, err error) {
	if d, err = c.adjacent(a, b); err != nil {
		return 0, false, err
	}
	for _, p := range [...]electronic.Coordinate{a, b} {
		if id, ok := c.cell(p).OccupiedBy(); ok {
			return 0, false, fmt.Errorf("%w: %v holds %s", ErrBodyCell, p, id)
		}
	}
	// Neither end is a body, so the slot is empty or already this wire: a pin
	// link always has a body cell on one side.
	return d, c.cell(a).connections[d].Kind == LinkWire, nil
}
