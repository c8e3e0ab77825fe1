// SPDX-License-Identifier: MIT

package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitry/circuit"
	"github.com/katalvlaran/circuitry/electronic"
)

func probe(x, y, turns int) *electronic.Electronic {
	return electronic.MustNew(electronic.Resistor,
		electronic.WithCoordinate(electronic.Pt(x, y)),
		electronic.WithOrientation(electronic.Orientation(turns)))
}

func TestNew_BadDimensions(t *testing.T) {
	_, err := circuit.New(0)
	require.ErrorIs(t, err, circuit.ErrBadDimensions)
	_, err = circuit.New(-3)
	require.ErrorIs(t, err, circuit.ErrBadDimensions)
	require.Panics(t, func() { circuit.WithHeight(0) })
}

func TestCanAttach_OutOfBounds(t *testing.T) {
	c, _ := circuit.New(5)
	cases := []struct {
		x, y int
		want bool
	}{
		{2, 1, true},
		{4, 1, false},
		{1, 1, true},
		{0, 1, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.CanAttachComponent(probe(tc.x, tc.y, 0)), "[%d, %d]", tc.x, tc.y)
	}
	require.ErrorIs(t, c.CheckAttach(probe(0, 1, 0)), circuit.ErrOutOfBounds)
	require.ErrorIs(t, c.CheckAttach(probe(2, 0, 1)), circuit.ErrOutOfBounds)
}

func TestCanAttach_Overlap(t *testing.T) {
	// [ n o n . . ]
	c, _ := circuit.New(5)
	place(t, c, electronic.Resistor, "R1", 2, 0, 0)

	for _, x := range []int{1, 3, 4} {
		assert.False(t, c.CanAttachComponent(probe(x, 0, 0)), "x=%d", x)
	}
	require.ErrorIs(t, c.CheckAttach(probe(2, 0, 0)), circuit.ErrOverlap)
	require.ErrorIs(t, c.CheckAttach(probe(1, 0, 0)), circuit.ErrOverlap)
	require.ErrorIs(t, c.CheckAttach(probe(4, 0, 0)), circuit.ErrOutOfBounds)
}

func TestCanAttach_PartialConflict(t *testing.T) {
	// [ n o n . . . ]
	// [ . . . n o n ]
	c, _ := circuit.New(6, circuit.WithHeight(2))
	place(t, c, electronic.Resistor, "R1", 1, 0, 0)
	place(t, c, electronic.Resistor, "R2", 4, 1, 0)

	cases := []struct {
		x, y int
		want bool
	}{
		{2, 0, false},
		{3, 0, true},
		{3, 1, false},
		{2, 1, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.CanAttachComponent(probe(tc.x, tc.y, 0)), "[%d, %d]", tc.x, tc.y)
	}
}

func TestCanAttach_PinBlocked(t *testing.T) {
	// [ . . n . . ]
	// [ . . o . . ]
	// [ . n E n . ]
	c, _ := circuit.New(5)
	place(t, c, electronic.Resistor, "R1", 2, 2, 0)

	e := probe(2, 1, 0)
	e.Rotate()
	require.False(t, c.CanAttachComponent(e))
	require.ErrorIs(t, c.CheckAttach(e), circuit.ErrPinBlocked)
}

func TestCanAttach_BodyOnWire(t *testing.T) {
	c, _ := circuit.New(5)
	require.NoError(t, c.AddJoint(electronic.Pt(2, 2), electronic.Pt(2, 3)))
	require.ErrorIs(t, c.CheckAttach(probe(2, 2, 0)), circuit.ErrOverlap)
	require.True(t, c.CanAttachComponent(probe(2, 1, 0)))
}

func TestAppend_Errors(t *testing.T) {
	c, _ := circuit.New(5)
	require.ErrorIs(t, c.AppendElectronics(nil), circuit.ErrNilElectronic)

	e := place(t, c, electronic.Resistor, "R1", 2, 2, 0)
	require.ErrorIs(t, c.AppendElectronics(e), circuit.ErrDuplicateElectronic)

	before := c.Layout()
	require.ErrorIs(t, c.AppendElectronics(probe(4, 4, 0)), circuit.ErrOutOfBounds)
	require.Equal(t, before, c.Layout())
	require.Len(t, c.Electronics(), 1)
}

func TestAddJoint_Errors(t *testing.T) {
	c, _ := circuit.New(5)
	place(t, c, electronic.Resistor, "R1", 2, 2, 0)

	require.ErrorIs(t, c.AddJoint(electronic.Pt(4, 4), electronic.Pt(5, 4)), circuit.ErrOutOfBounds)
	require.ErrorIs(t, c.AddJoint(electronic.Pt(0, 0), electronic.Pt(1, 1)), circuit.ErrNotAdjacent)
	require.ErrorIs(t, c.AddJoint(electronic.Pt(0, 0), electronic.Pt(0, 0)), circuit.ErrNotAdjacent)
	require.ErrorIs(t, c.AddJoint(electronic.Pt(3, 2), electronic.Pt(2, 2)), circuit.ErrBodyCell)
	require.ErrorIs(t, c.AddJoint(electronic.Pt(2, 1), electronic.Pt(2, 2)), circuit.ErrBodyCell)
	require.NoError(t, c.AddJoint(electronic.Pt(3, 2), electronic.Pt(3, 3)))
}

func TestAddWire_AllOrNothing(t *testing.T) {
	c, _ := circuit.New(5)
	place(t, c, electronic.Resistor, "R1", 2, 2, 0)
	before := c.Layout()

	err := c.AddWire(electronic.Pt(0, 0), electronic.Pt(1, 0), electronic.Pt(2, 0), electronic.Pt(2, 1), electronic.Pt(2, 2))
	require.ErrorIs(t, err, circuit.ErrBodyCell)
	require.Equal(t, before, c.Layout())

	require.NoError(t, c.AddWire(electronic.Pt(0, 0), electronic.Pt(1, 0), electronic.Pt(1, 1), electronic.Pt(1, 2)))
	u, _ := c.Unit(electronic.Pt(1, 1))
	require.Equal(t, 2, u.LinkCount())

	require.NoError(t, c.AddWire(electronic.Pt(4, 4)))
	require.NoError(t, c.AddWire())
}

func TestRemoveJoint(t *testing.T) {
	c, _ := circuit.New(3)
	require.NoError(t, c.AddJoint(electronic.Pt(0, 0), electronic.Pt(1, 0)))
	require.NoError(t, c.RemoveJoint(electronic.Pt(1, 0), electronic.Pt(0, 0)))
	a, _ := c.Unit(electronic.Pt(0, 0))
	b, _ := c.Unit(electronic.Pt(1, 0))
	require.True(t, a.IsEmpty())
	require.True(t, b.IsEmpty())
	require.ErrorIs(t, c.RemoveJoint(electronic.Pt(0, 0), electronic.Pt(1, 0)), circuit.ErrJointNotFound)

	place(t, c, electronic.Resistor, "R1", 1, 1, 0)
	require.ErrorIs(t, c.RemoveJoint(electronic.Pt(0, 1), electronic.Pt(1, 1)), circuit.ErrJointNotFound)
}

func TestRemoveElectronics(t *testing.T) {
	c := simpleCircuit(t)
	require.NoError(t, c.RemoveElectronics("R"))
	require.ErrorIs(t, c.RemoveElectronics("R"), circuit.ErrElectronicNotFound)

	body, _ := c.Unit(electronic.Pt(2, 1))
	require.True(t, body.IsEmpty())
	// The wire leaving R's right pin cell survives.
	right, _ := c.Unit(electronic.Pt(3, 1))
	l, ok := right.Connection(electronic.Bottom)
	require.True(t, ok)
	require.Equal(t, circuit.LinkWire, l.Kind)
	_, ok = right.Connection(electronic.Left)
	require.False(t, ok)

	ids := []string{}
	for _, e := range c.Electronics() {
		ids = append(ids, e.ID())
	}
	require.Equal(t, []string{"S", "G"}, ids)
	require.True(t, c.CanAttachComponent(probe(2, 1, 0)))
}

func TestRotateAndMoveElectronics(t *testing.T) {
	c, _ := circuit.New(5)
	e := place(t, c, electronic.Resistor, "R1", 2, 2, 0)

	require.NoError(t, c.RotateElectronics("R1"))
	require.Equal(t, electronic.Deg90, e.Orientation())
	top, _ := c.Unit(electronic.Pt(2, 1))
	l, ok := top.Connection(electronic.Bottom)
	require.True(t, ok)
	require.Equal(t, "1", l.Pin)
	left, _ := c.Unit(electronic.Pt(1, 2))
	require.True(t, left.IsEmpty())

	require.NoError(t, c.MoveElectronics("R1", electronic.Pt(3, 2)))
	old, _ := c.Unit(electronic.Pt(2, 2))
	require.True(t, old.IsEmpty())
	require.ErrorIs(t, c.RotateElectronics("nope"), circuit.ErrElectronicNotFound)
}

func TestUnit_OutOfBounds(t *testing.T) {
	c, _ := circuit.New(2)
	_, err := c.Unit(electronic.Pt(2, 0))
	require.ErrorIs(t, err, circuit.ErrOutOfBounds)
	require.False(t, c.InBounds(electronic.Pt(-1, 0)))
}
