// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// equationLexer tokenises "3x - 2*y = 9 + z".
var equationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "Minus", Pattern: `-`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Equals", Pattern: `=`},
})

type equationNode struct {
	Left  *sideNode `@@ Equals`
	Right *sideNode `@@`
}

type sideNode struct {
	Lead *leadTerm   `@@`
	Rest []*restTerm `@@*`
}

type leadTerm struct {
	Sign string    `@( Plus | Minus )?`
	Term *termNode `@@`
}

type restTerm struct {
	Sign string    `@( Plus | Minus )`
	Term *termNode `@@`
}

// termNode is "3", "3x", "3*x" or "x".
type termNode struct {
	Scaled *scaledNode `  @@`
	Bare   string      `| @Ident`
}

type scaledNode struct {
	Coefficient float64 `@Number`
	Unknown     string  `( Star? @Ident )?`
}

var equationParser = participle.MustBuild[equationNode](
	participle.Lexer(equationLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse reads a linear equation such as "3x - 2y = 9" or "2*a + 1 = b - 4".
//
// Unknowns may appear on either side and are gathered on the left; constants
// are gathered on the right. Repeated names accumulate, and a name whose
// coefficients cancel exactly is dropped. A term written with a zero
// coefficient, such as 0*z, is kept so an equation can name every unknown of
// its set.
//
// Errors:
//   - ErrSyntax wrapping the parser's positioned message.
func Parse(text string) (*Equation, error) {
	ast, err := equationParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, text, err)
	}

	acc := New()
	rhs := 0.0
	cancels := make(map[string]bool)
	collect := func(side *sideNode, sign float64) {
		add := func(neg bool, t *termNode) {
			s := sign
			if neg {
				s = -s
			}
			switch {
			case t.Scaled == nil:
				acc.accumulate(t.Bare, s)
				cancels[t.Bare] = true
			case t.Scaled.Unknown == "":
				rhs -= s * t.Scaled.Coefficient
			default:
				c := s * t.Scaled.Coefficient
				acc.accumulate(t.Scaled.Unknown, c)
				cancels[t.Scaled.Unknown] = cancels[t.Scaled.Unknown] || c != 0
			}
		}
		add(side.Lead.Sign == "-", side.Lead.Term)
		for _, r := range side.Rest {
			add(r.Sign == "-", r.Term)
		}
	}
	collect(ast.Left, 1)
	collect(ast.Right, -1)

	return acc.compact(cancels).Constant(rhs), nil
}

// MustParse is Parse that panics on error, for fixtures and examples.
func MustParse(text string) *Equation {
	eq, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return eq
}

func (e *Equation) accumulate(name string, c float64) {
	prev := e.terms[name]
	e.Unknown(name, prev+c)
}

// compact removes terms that summed to zero from nonzero parts, keeping order.
func (e *Equation) compact(cancels map[string]bool) *Equation {
	names := e.names[:0]
	for _, n := range e.names {
		if e.terms[n] == 0 && cancels[n] {
			delete(e.terms, n)
			continue
		}
		names = append(names, n)
	}
	e.names = names
	return e
}
