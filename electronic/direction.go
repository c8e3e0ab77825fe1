// SPDX-License-Identifier: MIT

package electronic

import "fmt"

// Direction names one of the four orthogonal neighbours of a cell.
// Values are ordered clockwise so that a quarter turn is d+1 (mod 4).
type Direction uint8

const (
	// Top points to the cell above (y-1).
	Top Direction = iota
	// Right points to the cell on the right (x+1).
	Right
	// Bottom points to the cell below (y+1).
	Bottom
	// Left points to the cell on the left (x-1).
	Left
)

// NumDirections is the number of orthogonal directions.
const NumDirections = 4

// Directions lists all directions in clockwise order starting at Top.
var Directions = [NumDirections]Direction{Top, Right, Bottom, Left}

var directionNames = [NumDirections]string{"top", "right", "bottom", "left"}

// offsets[d] is the (dx, dy) step for direction d.
var offsets = [NumDirections][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// String returns the lower-case name of d.
func (d Direction) String() string {
	if d >= NumDirections {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Opposite returns the direction pointing back at the origin cell.
func (d Direction) Opposite() Direction { return (d + 2) % NumDirections }

// Clockwise returns d turned n quarter turns clockwise. Negative n turns
// counter-clockwise.
func (d Direction) Clockwise(n int) Direction {
	k := (int(d) + n) % NumDirections
	if k < 0 {
		k += NumDirections
	}
	return Direction(k)
}

// Offset returns the (dx, dy) step of d.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d%NumDirections]
	return o[0], o[1]
}

// Coordinate addresses one grid cell: X is the column, Y the row.
type Coordinate struct {
	X, Y int
}

// Pt is shorthand for Coordinate{X: x, Y: y}.
func Pt(x, y int) Coordinate { return Coordinate{X: x, Y: y} }

// Step returns the neighbouring coordinate in direction d. The result may lie
// outside any particular board; bounds are the board's concern.
func (c Coordinate) Step(d Direction) Coordinate {
	dx, dy := d.Offset()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// DirectionTo reports the direction leading from c to an orthogonally
// adjacent coordinate o. ok is false when o is not exactly one step away.
func (c Coordinate) DirectionTo(o Coordinate) (d Direction, ok bool) {
	for _, d = range Directions {
		if c.Step(d) == o {
			return d, true
		}
	}
	return 0, false
}

// String renders c as "[x, y]".
func (c Coordinate) String() string { return fmt.Sprintf("[%d, %d]", c.X, c.Y) }
