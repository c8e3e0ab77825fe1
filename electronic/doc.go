// SPDX-License-Identifier: MIT

// Package electronic describes the components that can be placed on a circuit
// board: their kind, origin cell, orientation and pin geometry.
//
// What:
//
//   - Coordinate is an integer cell address {X: column, Y: row}, zero-based.
//   - Direction enumerates the four orthogonal neighbours: Top, Right, Bottom, Left.
//   - Kind is a closed tagged variant (Resistor, Source, Ground) backed by a
//     pin table; DefineKind registers further kinds without touching the grid
//     or graph algorithms.
//   - Electronic is one placed (or placeable) component. Its identity and pin
//     set are fixed at creation; only Coordinate and Orientation change.
//
// Geometry:
//
// Every pin sits one cell away from the origin, in the direction obtained by
// rotating the pin's base direction clockwise once per quarter turn:
//
//	      Deg0               Deg90
//	    . . . .            . 1 . .
//	    1 R 2 .            . R . .
//	    . . . .            . 2 . .
//
// Rotation is cyclic with period 4.
//
// Errors:
//
//   - ErrUnknownKind: ParseKind/Kind lookups on an unregistered kind.
//   - ErrBadKind: DefineKind with an empty name, no pins, duplicate pin names,
//     or two pins sharing a base direction.
//   - ErrUnknownPin: Pin lookups with a name the kind does not declare.
package electronic
