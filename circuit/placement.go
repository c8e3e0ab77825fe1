// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"github.com/katalvlaran/circuitry/electronic"
)

// CheckAttach validates placing e at its current coordinate and orientation
// without mutating the board.
//
// Errors, in check order: ErrNilElectronic, ErrOutOfBounds, ErrOverlap,
// ErrPinBlocked, ErrSlotTaken.
func (c *Circuit) CheckAttach(e *electronic.Electronic) error {
	if e == nil {
		return ErrNilElectronic
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.checkPlacement(e.Coordinate(), e.Pins())
}

// CanAttachComponent reports whether CheckAttach would succeed.
func (c *Circuit) CanAttachComponent(e *electronic.Electronic) bool {
	return c.CheckAttach(e) == nil
}

func (c *Circuit) checkPlacement(at electronic.Coordinate, pins []electronic.Pin) error {
	if !c.InBounds(at) {
		return fmt.Errorf("%w: body at %v", ErrOutOfBounds, at)
	}
	for _, p := range pins {
		if !c.InBounds(p.Cell) {
			return fmt.Errorf("%w: pin %q at %v", ErrOutOfBounds, p.Name, p.Cell)
		}
	}

	body := c.cell(at)
	if id, ok := body.OccupiedBy(); ok {
		return fmt.Errorf("%w: %v holds %s", ErrOverlap, at, id)
	}
	if body.LinkCount() > 0 {
		return fmt.Errorf("%w: %v carries links", ErrOverlap, at)
	}

	for _, p := range pins {
		if id, ok := c.cell(p.Cell).OccupiedBy(); ok {
			return fmt.Errorf("%w: pin %q at %v lands on %s", ErrPinBlocked, p.Name, p.Cell, id)
		}
	}

	// With a link-free body cell, reciprocity leaves only the pin side to check.
	for _, p := range pins {
		if l := c.cell(p.Cell).connections[p.Direction.Opposite()]; !l.IsZero() {
			return fmt.Errorf("%w: pin %q at %v holds a %s link", ErrSlotTaken, p.Name, p.Cell, l.Kind)
		}
	}
	return nil
}

// AppendElectronics validates and attaches e at its current coordinate and
// orientation: the body cell is marked occupied and each pin is linked
// between the body cell and its pin cell.
//
// Errors: ErrDuplicateElectronic, plus any CheckAttach error. A failed call
// leaves the board untouched.
func (c *Circuit) AppendElectronics(e *electronic.Electronic) error {
	if e == nil {
		return ErrNilElectronic
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, dup := c.electronics[e.ID()]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateElectronic, e.ID())
	}
	at, pins := e.Coordinate(), e.Pins()
	if err := c.checkPlacement(at, pins); err != nil {
		return fmt.Errorf("attach %s: %w", e, err)
	}
	c.attach(e, at, pins)
	c.order = append(c.order, e.ID())
	c.logger.Debug("component attached",
		"id", e.ID(), "kind", e.Kind().String(), "at", at.String(), "degrees", e.Orientation().Degrees())
	return nil
}

// RemoveElectronics detaches the component with the given identity, clearing
// its body cell and pin links. Wires that led to its pin cells stay.
func (c *Circuit) RemoveElectronics(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.electronics[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrElectronicNotFound, id)
	}
	c.detach(p)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.logger.Debug("component removed", "id", id)
	return nil
}

// RotateElectronics turns an attached component one quarter clockwise around
// its body cell. If the new footprint does not fit, the component and board
// are restored and the placement error is returned.
func (c *Circuit) RotateElectronics(id string) error {
	return c.relocate(id, func(e *electronic.Electronic) { e.Rotate() })
}

// MoveElectronics moves an attached component's body to cell to, keeping its
// orientation. On failure nothing changes.
func (c *Circuit) MoveElectronics(id string, to electronic.Coordinate) error {
	return c.relocate(id, func(e *electronic.Electronic) { e.MoveTo(to) })
}

// relocate detaches a component, resets it to its attached coordinate and
// orientation, applies change, and re-attaches it. A rejected placement puts
// the component back exactly as it was attached.
func (c *Circuit) relocate(id string, change func(*electronic.Electronic)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.electronics[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrElectronicNotFound, id)
	}
	c.detach(p)
	p.reset()
	change(p.e)

	at, pins := p.e.Coordinate(), p.e.Pins()
	if err := c.checkPlacement(at, pins); err != nil {
		p.reset()
		c.attach(p.e, p.at, p.pins)
		return fmt.Errorf("relocate %s: %w", id, err)
	}
	c.attach(p.e, at, pins)
	c.logger.Debug("component relocated", "id", id, "at", at.String(), "degrees", p.e.Orientation().Degrees())
	return nil
}

// reset returns the component to the coordinate and orientation it was
// attached with, undoing any direct mutation since.
func (p *placement) reset() {
	p.e.MoveTo(p.at)
	for p.e.Orientation() != p.orientation {
		p.e.Rotate()
	}
}

func (c *Circuit) attach(e *electronic.Electronic, at electronic.Coordinate, pins []electronic.Pin) {
	c.cell(at).occupiedBy = e.ID()
	for _, p := range pins {
		c.link(at, p.Direction, LinkPin, e.ID(), p.Name)
	}
	c.electronics[e.ID()] = &placement{e: e, at: at, orientation: e.Orientation(), pins: pins}
}

func (c *Circuit) detach(p *placement) {
	c.cell(p.at).occupiedBy = ""
	for _, pin := range p.pins {
		c.unlink(p.at, pin.Direction)
	}
	delete(c.electronics, p.e.ID())
}
