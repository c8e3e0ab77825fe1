// SPDX-License-Identifier: MIT

// Package scenario loads HCL scenario files describing boards and equation
// systems, and builds the corresponding circuit.Circuit and
// equation.SimultaneousEquations values.
//
//	settings { epsilon = 1e-9  log_level = "debug" }
//
//	board "divider" {
//	  width = 5
//	  component "R1" { kind = "resistor"  at = [2, 1]  rotations = 0 }
//	  wire { points = [[3, 1], [3, 2], [3, 3]] }
//	}
//
//	system "loop" {
//	  equations = ["3x - 2y = 9", "x + y = ${var.rhs}"]
//	  known     = { x = var.x }
//	}
//
// Expressions are evaluated with a single variable, var, an object built from
// the values passed through WithVars. Values that parse as numbers become cty
// numbers, everything else strings.
//
// Syntax and decode problems fail Load. Placement and equation problems are
// recorded on the affected Board or System so that a caller can report all
// of them at once.
package scenario
