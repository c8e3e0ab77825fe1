// SPDX-License-Identifier: MIT

// Package circuitry is a grid-based circuit editor core and a linear
// equation solver.
//
// Layout of the module:
//
//	electronic/        component kinds, pin tables, orientation, grid geometry
//	circuit/           the placement grid, wire joints, net (graph) derivation
//	matrix/            dense Gauss–Jordan elimination and incremental row basis
//	equation/          Equation, SimultaneousEquations, textual equation parser
//	internal/scenario/ HCL scenario files describing boards and systems
//	internal/logging/  slog construction shared by the command line tool
//	cmd/circuitry/     the `circuitry` CLI (derive, solve, check)
//
// A typical session places a few components on a circuit.Circuit, wires the
// pins together with joints, calls DeriveGraph to obtain the nets, writes one
// equation per net and per component by hand (or from a scenario file), and
// hands them to equation.NewSimultaneous(...).Solve().
package circuitry
