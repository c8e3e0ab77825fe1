// SPDX-License-Identifier: MIT

package electronic

// Orientation is one of four quarter-turn rotation states.
type Orientation uint8

const (
	Deg0 Orientation = iota
	Deg90
	Deg180
	Deg270
)

// Next returns the orientation one clockwise quarter turn further; Deg270 wraps to Deg0.
func (o Orientation) Next() Orientation { return (o + 1) % NumDirections }

// Degrees returns the rotation angle in degrees.
func (o Orientation) Degrees() int { return int(o%NumDirections) * 90 }

// Apply maps a base pin direction to its direction under o.
func (o Orientation) Apply(base Direction) Direction { return base.Clockwise(int(o % NumDirections)) }
