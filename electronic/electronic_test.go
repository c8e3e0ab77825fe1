// SPDX-License-Identifier: MIT

package electronic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitry/electronic"
)

// TestDirection_OppositeAndClockwise checks the direction ring arithmetic.
func TestDirection_OppositeAndClockwise(t *testing.T) {
	cases := []struct {
		d        electronic.Direction
		opposite electronic.Direction
		next     electronic.Direction
	}{
		{electronic.Top, electronic.Bottom, electronic.Right},
		{electronic.Right, electronic.Left, electronic.Bottom},
		{electronic.Bottom, electronic.Top, electronic.Left},
		{electronic.Left, electronic.Right, electronic.Top},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			assert.Equal(t, tc.opposite, tc.d.Opposite())
			assert.Equal(t, tc.next, tc.d.Clockwise(1))
			assert.Equal(t, tc.d, tc.d.Clockwise(4))
			assert.Equal(t, tc.d, tc.d.Clockwise(1).Clockwise(-1))
		})
	}
}

// TestCoordinate_DirectionTo checks adjacency detection.
func TestCoordinate_DirectionTo(t *testing.T) {
	c := electronic.Pt(2, 2)

	d, ok := c.DirectionTo(electronic.Pt(2, 1))
	require.True(t, ok)
	require.Equal(t, electronic.Top, d)

	d, ok = c.DirectionTo(electronic.Pt(1, 2))
	require.True(t, ok)
	require.Equal(t, electronic.Left, d)

	for _, far := range []electronic.Coordinate{{X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 2}} {
		_, ok = c.DirectionTo(far)
		require.False(t, ok, "%v should not be adjacent to %v", far, c)
	}
}

// TestResistor_RotatedPins walks a resistor through all four orientations.
//
//	Deg0: 1 R 2    Deg90: 1 above, 2 below    Deg180: 2 R 1    Deg270: 2 above, 1 below
func TestResistor_RotatedPins(t *testing.T) {
	r := electronic.MustNew(electronic.Resistor, electronic.WithCoordinate(electronic.Pt(1, 1)))

	want := []map[string]electronic.Coordinate{
		{"1": electronic.Pt(0, 1), "2": electronic.Pt(2, 1)},
		{"1": electronic.Pt(1, 0), "2": electronic.Pt(1, 2)},
		{"1": electronic.Pt(2, 1), "2": electronic.Pt(0, 1)},
		{"1": electronic.Pt(1, 2), "2": electronic.Pt(1, 0)},
	}
	for step, cells := range want {
		for _, p := range r.Pins() {
			require.Equal(t, cells[p.Name], p.Cell, "step %d pin %q", step, p.Name)
			require.Equal(t, r.Coordinate(), p.Cell.Step(p.Direction.Opposite()))
		}
		r.Rotate()
	}
	require.Equal(t, electronic.Deg0, r.Orientation(), "rotation must have period 4")
}

// TestTwoPinKinds_PinsStayOpposite verifies that two-pin kinds keep their pins
// on opposite sides under every orientation.
func TestTwoPinKinds_PinsStayOpposite(t *testing.T) {
	for _, k := range []electronic.Kind{electronic.Resistor, electronic.Source} {
		e := electronic.MustNew(k)
		for i := 0; i < 4; i++ {
			pins := e.Pins()
			require.Len(t, pins, 2)
			require.Equal(t, pins[0].Direction.Opposite(), pins[1].Direction, "%s at %d°", k, e.Orientation().Degrees())
			e.Rotate()
		}
	}
}

// TestNew_Defaults checks identity generation and the fixed pin table.
func TestNew_Defaults(t *testing.T) {
	a := electronic.MustNew(electronic.Source)
	b := electronic.MustNew(electronic.Source)
	require.NotEmpty(t, a.ID())
	require.NotEqual(t, a.ID(), b.ID(), "generated identities must be unique")
	require.Equal(t, []string{"POSITIVE", "NEGATIVE"}, a.PinNames())

	g := electronic.MustNew(electronic.Ground, electronic.WithID("gnd"))
	require.Equal(t, "gnd", g.ID())
	require.Equal(t, 1, g.PinCount())
	require.True(t, g.HasPin(electronic.PinGround))

	_, err := g.Pin("missing")
	require.ErrorIs(t, err, electronic.ErrUnknownPin)

	_, err = electronic.New(electronic.Kind(999))
	require.ErrorIs(t, err, electronic.ErrUnknownKind)
}

// TestFootprint lists the body followed by pin cells.
func TestFootprint(t *testing.T) {
	s := electronic.MustNew(electronic.Source, electronic.WithCoordinate(electronic.Pt(1, 2)))
	require.Equal(t, []electronic.Coordinate{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 3}}, s.Footprint())

	s.MoveTo(electronic.Pt(3, 3))
	require.Equal(t, electronic.Pt(3, 2), s.Footprint()[1])
}

// TestParseKind resolves built-in names case-insensitively.
func TestParseKind(t *testing.T) {
	k, err := electronic.ParseKind("Resistor")
	require.NoError(t, err)
	require.Equal(t, electronic.Resistor, k)

	k, err = electronic.ParseKind(" ground ")
	require.NoError(t, err)
	require.Equal(t, electronic.Ground, k)

	_, err = electronic.ParseKind("capacitor-x")
	require.ErrorIs(t, err, electronic.ErrUnknownKind)
}

// TestDefineKind registers a three-pin kind and rejects malformed ones.
func TestDefineKind(t *testing.T) {
	tee, err := electronic.DefineKind("tee-junction-test",
		electronic.PinSpec{Name: "A", Base: electronic.Left},
		electronic.PinSpec{Name: "B", Base: electronic.Top},
		electronic.PinSpec{Name: "C", Base: electronic.Right},
	)
	require.NoError(t, err)
	require.Equal(t, "tee-junction-test", tee.String())

	e := electronic.MustNew(tee, electronic.WithCoordinate(electronic.Pt(1, 1)), electronic.WithOrientation(electronic.Deg90))
	b, err := e.Pin("B")
	require.NoError(t, err)
	require.Equal(t, electronic.Right, b.Direction)
	require.Equal(t, electronic.Pt(2, 1), b.Cell)

	bad := []struct {
		name string
		pins []electronic.PinSpec
	}{
		{"", []electronic.PinSpec{{Name: "x", Base: electronic.Top}}},
		{"no-pins-test", nil},
		{"dup-dir-test", []electronic.PinSpec{{Name: "a", Base: electronic.Top}, {Name: "b", Base: electronic.Top}}},
		{"dup-name-test", []electronic.PinSpec{{Name: "a", Base: electronic.Top}, {Name: "a", Base: electronic.Left}}},
		{"RESISTOR", []electronic.PinSpec{{Name: "a", Base: electronic.Top}}},
	}
	for _, tc := range bad {
		_, err := electronic.DefineKind(tc.name, tc.pins...)
		require.ErrorIs(t, err, electronic.ErrBadKind, "definition %q", tc.name)
	}
}
