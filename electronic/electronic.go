// SPDX-License-Identifier: MIT

package electronic

import (
	"fmt"

	"github.com/google/uuid"
)

// Electronic is a component that can be placed on a board.
//
// id, kind and the pin table are fixed at creation; coordinate and orientation
// are the only mutable state. An Electronic is not safe for concurrent
// mutation; once attached to a board, change it through the board.
type Electronic struct {
	id          string
	kind        Kind
	pins        []PinSpec
	coordinate  Coordinate
	orientation Orientation
}

// Pin is a pin resolved against the current coordinate and orientation:
// Direction points from the origin cell to Cell.
type Pin struct {
	Name      string
	Direction Direction
	Cell      Coordinate
}

// Option configures an Electronic at creation.
type Option func(*Electronic)

// WithCoordinate sets the origin cell.
func WithCoordinate(c Coordinate) Option {
	return func(e *Electronic) { e.coordinate = c }
}

// WithOrientation sets the initial orientation.
func WithOrientation(o Orientation) Option {
	return func(e *Electronic) { e.orientation = o % NumDirections }
}

// WithID replaces the generated identity. Panics on an empty id.
func WithID(id string) Option {
	if id == "" {
		panic("electronic: WithID: id must be non-empty")
	}
	return func(e *Electronic) { e.id = id }
}

// New creates an unattached component of the given kind. Unless WithID is
// supplied the identity is a random UUID.
//
// Errors:
//   - ErrUnknownKind if kind is not in the catalog.
func New(kind Kind, opts ...Option) (*Electronic, error) {
	spec, ok := kind.spec()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint16(kind))
	}
	e := &Electronic{
		kind: kind,
		pins: append([]PinSpec(nil), spec.pins...),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.id == "" {
		e.id = uuid.NewString()
	}

	return e, nil
}

// MustNew is New for static fixtures; it panics on error.
func MustNew(kind Kind, opts ...Option) *Electronic {
	e, err := New(kind, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// ID returns the stable identity.
func (e *Electronic) ID() string { return e.id }

// Kind returns the kind tag.
func (e *Electronic) Kind() Kind { return e.kind }

// Coordinate returns the origin cell.
func (e *Electronic) Coordinate() Coordinate { return e.coordinate }

// Orientation returns the current rotation state.
func (e *Electronic) Orientation() Orientation { return e.orientation }

// Rotate advances the orientation by one clockwise quarter turn and returns it.
func (e *Electronic) Rotate() Orientation {
	e.orientation = e.orientation.Next()
	return e.orientation
}

// MoveTo sets the origin cell.
func (e *Electronic) MoveTo(c Coordinate) { e.coordinate = c }

// PinCount returns the number of pins; constant for the component's lifetime.
func (e *Electronic) PinCount() int { return len(e.pins) }

// PinNames returns the pin names in declaration order.
func (e *Electronic) PinNames() []string {
	names := make([]string, len(e.pins))
	for i, p := range e.pins {
		names[i] = p.Name
	}
	return names
}

// HasPin reports whether the kind declares a pin called name.
func (e *Electronic) HasPin(name string) bool {
	for _, p := range e.pins {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Pins resolves every pin against the current coordinate and orientation,
// in declaration order.
func (e *Electronic) Pins() []Pin {
	out := make([]Pin, len(e.pins))
	for i, p := range e.pins {
		out[i] = e.resolve(p)
	}
	return out
}

// Pin resolves a single pin by name.
func (e *Electronic) Pin(name string) (Pin, error) {
	for _, p := range e.pins {
		if p.Name == name {
			return e.resolve(p), nil
		}
	}
	return Pin{}, fmt.Errorf("%w: %s has no pin %q", ErrUnknownPin, e.kind, name)
}

// Footprint returns the origin cell followed by every pin cell.
func (e *Electronic) Footprint() []Coordinate {
	cells := make([]Coordinate, 0, len(e.pins)+1)
	cells = append(cells, e.coordinate)
	for _, p := range e.pins {
		cells = append(cells, e.resolve(p).Cell)
	}
	return cells
}

// String renders the component as "kind(id)@[x, y]/deg".
func (e *Electronic) String() string {
	return fmt.Sprintf("%s(%s)@%v/%d", e.kind, e.id, e.coordinate, e.orientation.Degrees())
}

func (e *Electronic) resolve(p PinSpec) Pin {
	d := e.orientation.Apply(p.Base)
	return Pin{Name: p.Name, Direction: d, Cell: e.coordinate.Step(d)}
}
