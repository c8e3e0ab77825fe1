// SPDX-License-Identifier: MIT

// Package equation models linear equations over named unknowns and solves
// sets of them simultaneously.
//
// An Equation is built by chaining Unknown and Constant, or read from text
// with Parse:
//
//	eq1 := equation.New().Unknown("x", 3).Unknown("y", -2).Constant(9)
//	eq2 := equation.MustParse("x + y = -7")
//
// A SimultaneousEquations set requires every member to have at least two
// terms and the same unknown names as the first member. Solve substitutes
// known values, then reduces the augmented matrix with Gauss–Jordan
// elimination (package matrix). HasLinearlyDependentEquations and Simplify
// detect rank deficiency; Simplify keeps the earliest member of each
// dependent group.
//
// Errors:
//
//   - ErrInsufficientUnknowns, ErrQuantityMismatch, ErrNameMismatch from
//     AddEquation.
//   - ErrUnknownNameMismatch, ErrInconsistent, ErrInsufficientEquations from
//     Solve, in that priority.
//   - ErrSyntax from Parse.
//
// Numerical tolerance defaults to matrix.DefaultEpsilon; see WithEpsilon.
package equation
