// SPDX-License-Identifier: MIT

// Package circuit places electronic components on a bounded integer grid and
// derives the electrical topology (which terminals share a net) from it.
//
// What:
//
//   - Circuit owns a width×height matrix of Unit cells, indexed [row][col],
//     and the collection of attached Electronics.
//   - A Unit records the component body occupying it (if any) and up to four
//     directional links. A link is a tagged union: a plain wire to the
//     neighbouring cell, or a pin link carrying {electronic id, pin name}.
//   - Every link is reciprocal: linking A to B in direction D also links B to
//     A in the opposite direction. One primitive performs both writes, for
//     component pins and wire joints alike.
//   - DeriveGraph collapses grid links into a Graph of one Node per component
//     and one Edge per net.
//
// Placement rules (CheckAttach / CanAttachComponent):
//
//  1. The body cell and every pin cell must lie inside [0,width)×[0,height).
//  2. The body cell must be free: no other body, and no wire or pin link.
//  3. No pin cell may hold another component's body.
//  4. The link slots a pin needs must be unused.
//
// Pin cells may already hold wires or other pins; that is how pin-to-pin
// junctions and wired nets form.
//
//	[ . . n . . ]     n: pin cell
//	[ . . o . . ]     o: body cell
//	[ n o n o n ]     four resistors meeting in one pin cell
//	[ . . o . . ]
//	[ . . n . . ]
//
// Concurrency:
//
// Reads take a read lock and mutations a write lock, so concurrent readers
// are safe while no mutation is in flight. Attached Electronics must be
// rotated or moved through the Circuit, not directly.
//
// Complexity:
//
//   - CheckAttach, AppendElectronics, AddJoint: O(P) for P pins.
//   - DeriveGraph: O(W·H + N·P), every cell is flooded at most once.
//   - Layout: O(W·H) copy.
package circuit
