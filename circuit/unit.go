// SPDX-License-Identifier: MIT

package circuit

import "github.com/katalvlaran/circuitry/electronic"

// LinkKind tags the variant held by a Link.
type LinkKind uint8

const (
	// LinkNone marks an empty slot.
	LinkNone LinkKind = iota
	// LinkWire is a plain wire segment to the neighbouring cell.
	LinkWire
	// LinkPin is a component pin spanning the body cell and the pin cell.
	LinkPin
)

// String returns "none", "wire" or "pin".
func (k LinkKind) String() string {
	switch k {
	case LinkWire:
		return "wire"
	case LinkPin:
		return "pin"
	default:
		return "none"
	}
}

// Link is one directional slot of a Unit.
//
// To is the neighbouring cell the link leads to. Electronic and Pin are set
// only for LinkPin and are identical on both sides of the link.
type Link struct {
	Kind       LinkKind
	To         electronic.Coordinate
	Electronic string
	Pin        string
}

// WireLink builds a wire link leading to cell to.
func WireLink(to electronic.Coordinate) Link {
	return Link{Kind: LinkWire, To: to}
}

// PinLink builds a pin link of component id leading to cell to.
func PinLink(to electronic.Coordinate, id, pin string) Link {
	return Link{Kind: LinkPin, To: to, Electronic: id, Pin: pin}
}

// IsZero reports an empty slot.
func (l Link) IsZero() bool { return l.Kind == LinkNone }

// Unit is one grid cell: the body occupying it and four link slots indexed
// by electronic.Direction.
type Unit struct {
	at          electronic.Coordinate
	occupiedBy  string
	connections [electronic.NumDirections]Link
}

// Coordinate returns the cell address.
func (u Unit) Coordinate() electronic.Coordinate { return u.at }

// OccupiedBy returns the identity of the component whose body sits here.
func (u Unit) OccupiedBy() (id string, ok bool) { return u.occupiedBy, u.occupiedBy != "" }

// Connection returns the link in slot d; ok is false for an empty slot.
func (u Unit) Connection(d electronic.Direction) (Link, bool) {
	if d >= electronic.NumDirections {
		return Link{}, false
	}
	l := u.connections[d]
	return l, !l.IsZero()
}

// LinkCount returns the number of used slots.
func (u Unit) LinkCount() int {
	n := 0
	for _, l := range u.connections {
		if !l.IsZero() {
			n++
		}
	}
	return n
}

// IsEmpty reports a cell with no body and no links.
func (u Unit) IsEmpty() bool { return u.occupiedBy == "" && u.LinkCount() == 0 }
