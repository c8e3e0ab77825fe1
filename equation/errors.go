// SPDX-License-Identifier: MIT

package equation

import "errors"

// Sentinel errors. Set-invariant violations are caller errors and are always
// returned, never folded into a boolean.
var (
	// ErrInsufficientUnknowns indicates an equation with fewer than two terms.
	ErrInsufficientUnknowns = errors.New("equation: equation to be included into simultaneous equations should contain at least two unknowns")
	// ErrQuantityMismatch indicates a term count different from the set's.
	ErrQuantityMismatch = errors.New("equation: the quantity of unknown is unmatched among the equations set")
	// ErrNameMismatch indicates same-size but different unknown names.
	ErrNameMismatch = errors.New("equation: name of the unknown is unmatched among the equations set")
	// ErrUnknownNameMismatch indicates a value keyed by a name outside the set.
	ErrUnknownNameMismatch = errors.New("equation: known value does not name an unknown of the set")
	// ErrInsufficientEquations indicates fewer independent equations than unknowns.
	ErrInsufficientEquations = errors.New("equation: not enough independent equations to solve")
	// ErrInconsistent indicates a dependent equation whose constant contradicts the rest.
	ErrInconsistent = errors.New("equation: equations are inconsistent")
	// ErrNilEquation indicates a nil *Equation argument.
	ErrNilEquation = errors.New("equation: equation is nil")
	// ErrSyntax indicates text Parse could not read.
	ErrSyntax = errors.New("equation: syntax error")
)
