// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/circuitry/matrix"
)

// SimultaneousEquations is a set of equations over one shared unknown set.
//
// Membership is by identity: adding the same *Equation twice is a no-op.
// Coefficients are copied when an equation joins, so later edits to the
// *Equation do not reach the set. The zero value is an empty set with
// default options. Not safe for concurrent mutation.
type SimultaneousEquations struct {
	unknowns []string
	index    map[string]int
	entries  []entry
	members  map[*Equation]struct{}
	cfg      config
}

// entry is a member equation frozen into the set's unknown order.
type entry struct {
	src      *Equation
	coef     []float64
	constant float64
}

// NewSimultaneous builds a set and adds eqs in order.
//
// Errors: the first AddEquation error; the set is discarded.
func NewSimultaneous(eqs []*Equation, opts ...Option) (*SimultaneousEquations, error) {
	s := &SimultaneousEquations{cfg: gather(opts...)}
	s.ensure()
	for i, eq := range eqs {
		if err := s.AddEquation(eq); err != nil {
			return nil, fmt.Errorf("equation %d: %w", i, err)
		}
	}
	return s, nil
}

// ensure fills in what the zero value lacks.
func (s *SimultaneousEquations) ensure() {
	if s.index == nil {
		s.index = make(map[string]int)
		s.members = make(map[*Equation]struct{})
	}
	if s.cfg.logger == nil {
		s.cfg = gather()
	}
}

// Unknowns returns the shared unknown names, in the order the first member
// declared them.
func (s *SimultaneousEquations) Unknowns() []string { return slices.Clone(s.unknowns) }

// Equations returns the members in insertion order.
func (s *SimultaneousEquations) Equations() []*Equation {
	out := make([]*Equation, len(s.entries))
	for i, en := range s.entries {
		out[i] = en.src
	}
	return out
}

// Len returns the number of member equations.
func (s *SimultaneousEquations) Len() int { return len(s.entries) }

// AddEquation validates eq against the set and adds it.
//
// Errors, in check order:
//   - ErrNilEquation.
//   - ErrInsufficientUnknowns if eq has fewer than two terms.
//   - ErrQuantityMismatch if its term count differs from the set's.
//   - ErrNameMismatch if its names differ from the set's.
//
// On error the set is unchanged.
func (s *SimultaneousEquations) AddEquation(eq *Equation) error {
	if eq == nil {
		return ErrNilEquation
	}
	s.ensure()
	if eq.Len() < 2 {
		return fmt.Errorf("%w: %q", ErrInsufficientUnknowns, eq)
	}
	if len(s.unknowns) > 0 {
		if eq.Len() != len(s.unknowns) {
			return fmt.Errorf("%w: %q has %d, set has %d", ErrQuantityMismatch, eq, eq.Len(), len(s.unknowns))
		}
		for _, name := range eq.names {
			if _, ok := s.index[name]; !ok {
				return fmt.Errorf("%w: %q", ErrNameMismatch, name)
			}
		}
	}
	if _, dup := s.members[eq]; dup {
		return nil
	}

	if len(s.unknowns) == 0 {
		s.unknowns = eq.Names()
		for i, name := range s.unknowns {
			s.index[name] = i
		}
	}
	coef := make([]float64, len(s.unknowns))
	for name, c := range eq.terms {
		coef[s.index[name]] = c
	}
	s.entries = append(s.entries, entry{src: eq, coef: coef, constant: eq.constant})
	s.members[eq] = struct{}{}
	return nil
}

// Solve substitutes known values and solves for every remaining unknown,
// returning all values, known ones included.
//
// Errors, in priority order:
//   - ErrUnknownNameMismatch if known names a value outside the set.
//   - ErrInconsistent if the reduced system contradicts itself.
//   - ErrInsufficientEquations if fewer independent equations remain than
//     unknowns.
//
// Complexity: O(m·n·min(m,n)) for m equations and n remaining unknowns.
func (s *SimultaneousEquations) Solve(known map[string]float64) (map[string]float64, error) {
	s.ensure()
	for _, name := range sortedKeys(known) {
		if _, ok := s.index[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNameMismatch, name)
		}
	}

	free := make([]int, 0, len(s.unknowns))
	for i, name := range s.unknowns {
		if _, ok := known[name]; !ok {
			free = append(free, i)
		}
	}
	out := make(map[string]float64, len(s.unknowns))
	for name, v := range known {
		out[name] = v
	}
	if len(s.entries) == 0 {
		if len(free) > 0 {
			return nil, fmt.Errorf("%w: 0 equations for %d unknowns", ErrInsufficientEquations, len(free))
		}
		return out, nil
	}

	aug, err := s.reduced(known, free)
	if err != nil {
		return nil, err
	}
	red, err := matrix.Reduce(aug, matrix.WithEpsilon(s.cfg.eps))
	if err != nil {
		return nil, err
	}
	if red.IsPivot(len(free)) {
		return nil, ErrInconsistent
	}
	if red.Rank() < len(free) {
		return nil, fmt.Errorf("%w: rank %d for %d unknowns", ErrInsufficientEquations, red.Rank(), len(free))
	}
	for row, col := range red.Pivots {
		v, err := red.Echelon.At(row, len(free))
		if err != nil {
			return nil, err
		}
		out[s.unknowns[free[col]]] = v
	}
	s.cfg.logger.Debug("system solved", "equations", len(s.entries), "unknowns", len(s.unknowns), "known", len(known))
	return out, nil
}

// reduced builds the augmented matrix over the free unknowns with every known
// value moved to the right-hand side.
func (s *SimultaneousEquations) reduced(known map[string]float64, free []int) (*matrix.Dense, error) {
	rows := make([][]float64, len(s.entries))
	for i, en := range s.entries {
		row := make([]float64, len(free)+1)
		for j, k := range free {
			row[j] = en.coef[k]
		}
		rhs := en.constant
		for name, v := range known {
			rhs -= en.coef[s.index[name]] * v
		}
		row[len(free)] = rhs
		rows[i] = row
	}
	return matrix.NewFromRows(rows)
}

// HasLinearlyDependentEquations reports whether the coefficient matrix has
// rank below the number of equations. An empty set is independent.
func (s *SimultaneousEquations) HasLinearlyDependentEquations() bool {
	s.ensure()
	if len(s.entries) == 0 {
		return false
	}
	rows := make([][]float64, len(s.entries))
	for i, en := range s.entries {
		rows[i] = en.coef
	}
	a, err := matrix.NewFromRows(rows)
	if err != nil {
		return false
	}
	rank, err := matrix.Rank(a, matrix.WithEpsilon(s.cfg.eps))
	if err != nil {
		return false
	}
	return rank < len(s.entries)
}

// Simplify drops every equation that is a combination of earlier members,
// keeping the earliest equation of each dependent group.
//
// Errors:
//   - ErrInconsistent if a dependent equation contradicts the others; the
//     set is left unchanged.
func (s *SimultaneousEquations) Simplify() error {
	s.ensure()
	if len(s.entries) == 0 {
		return nil
	}
	n := len(s.unknowns)
	basis, err := matrix.NewRowBasis(n+1, n, matrix.WithEpsilon(s.cfg.eps))
	if err != nil {
		return err
	}

	keep := make([]entry, 0, len(s.entries))
	var dropped []*Equation
	for _, en := range s.entries {
		row := append(slices.Clone(en.coef), en.constant)
		added, residual, err := basis.Add(row)
		if err != nil {
			return err
		}
		if added {
			keep = append(keep, en)
			continue
		}
		if residual[n] != 0 {
			return fmt.Errorf("%w: %q", ErrInconsistent, en.src)
		}
		dropped = append(dropped, en.src)
	}

	for _, eq := range dropped {
		delete(s.members, eq)
	}
	s.entries = keep
	s.cfg.logger.Debug("system simplified", "kept", len(keep), "dropped", len(dropped))
	return nil
}

// Residuals returns A·x − b per member equation for the given values, which
// must name every unknown and nothing else.
func (s *SimultaneousEquations) Residuals(values map[string]float64) ([]float64, error) {
	x := make([]float64, len(s.unknowns))
	for i, name := range s.unknowns {
		v, ok := values[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrUnknownNameMismatch, name)
		}
		x[i] = v
	}
	if len(values) != len(s.unknowns) {
		for _, name := range sortedKeys(values) {
			if _, ok := s.index[name]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownNameMismatch, name)
			}
		}
	}
	if len(s.entries) == 0 {
		return []float64{}, nil
	}

	rows := make([][]float64, len(s.entries))
	for i, en := range s.entries {
		rows[i] = en.coef
	}
	a, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, err
	}
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, err
	}
	for i, en := range s.entries {
		ax[i] -= en.constant
	}
	return ax, nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
