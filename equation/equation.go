// SPDX-License-Identifier: MIT

package equation

import (
	"strconv"
	"strings"
)

// Equation is Σ coefficient·unknown = constant.
//
// Terms keep insertion order for reproducible output. No validation happens
// here; a SimultaneousEquations set checks its members when they join.
type Equation struct {
	terms    map[string]float64
	names    []string
	constant float64
}

// New returns an empty equation (0 = 0).
func New() *Equation {
	return &Equation{terms: make(map[string]float64)}
}

// Unknown adds the term coefficient·name, overwriting an existing coefficient
// for the same name. It returns e for chaining.
func (e *Equation) Unknown(name string, coefficient float64) *Equation {
	if _, ok := e.terms[name]; !ok {
		e.names = append(e.names, name)
	}
	e.terms[name] = coefficient
	return e
}

// Constant sets the right-hand side. It returns e for chaining.
func (e *Equation) Constant(value float64) *Equation {
	e.constant = value
	return e
}

// Coefficient returns the coefficient of name.
func (e *Equation) Coefficient(name string) (float64, bool) {
	c, ok := e.terms[name]
	return c, ok
}

// Names returns the unknown names in insertion order.
func (e *Equation) Names() []string { return append([]string(nil), e.names...) }

// RHS returns the constant.
func (e *Equation) RHS() float64 { return e.constant }

// Len returns the number of terms.
func (e *Equation) Len() int { return len(e.names) }

// String renders the equation as "3x - 2y = 9".
func (e *Equation) String() string {
	var b strings.Builder
	if len(e.names) == 0 {
		b.WriteString("0")
	}
	for i, name := range e.names {
		c := e.terms[name]
		switch {
		case i == 0 && c < 0:
			b.WriteString("-")
		case i > 0 && c < 0:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		if c < 0 {
			c = -c
		}
		if c != 1 {
			b.WriteString(formatNumber(c))
			if needsStar(name) {
				b.WriteString("*")
			}
		}
		b.WriteString(name)
	}
	b.WriteString(" = ")
	b.WriteString(formatNumber(e.constant))
	return b.String()
}

func formatNumber(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// needsStar reports names that would read as an exponent after a number.
func needsStar(name string) bool {
	return len(name) > 1 && (name[0] == 'e' || name[0] == 'E') && name[1] >= '0' && name[1] <= '9'
}
