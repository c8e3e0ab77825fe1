// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Operation tags for error wrapping.
const (
	opReduce    = "Reduce"
	opMatVec    = "MatVec"
	opRowBasis  = "RowBasis"
	opBasisAdd  = "RowBasis.Add"
	opBasisRedu = "RowBasis.Reduce"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Reduction is the outcome of Gauss–Jordan elimination.
type Reduction struct {
	// Echelon is the reduced row echelon form of the input. Rows at index
	// >= Rank() are zero within epsilon.
	Echelon *Dense
	// Pivots[i] is the pivot column of echelon row i, ascending.
	Pivots []int
	// Order[i] is the input row that ended up at echelon row i after pivoting.
	Order []int
}

// Rank returns the number of pivots.
func (r *Reduction) Rank() int { return len(r.Pivots) }

// IsPivot reports whether col holds a pivot.
func (r *Reduction) IsPivot(col int) bool {
	for _, p := range r.Pivots {
		if p == col {
			return true
		}
	}
	return false
}

// Reduce computes the reduced row echelon form of m by Gauss–Jordan
// elimination with partial pivoting. m is not modified.
//
// Implementation:
//   - Stage 1: copy m; Order starts as the identity permutation.
//   - Stage 2: for each column pick the row (at or below the current pivot
//     row) with the largest magnitude; if it does not exceed eps the column is
//     flushed to zero and skipped, otherwise the row is swapped up, scaled to
//     a unit pivot and the column is cleared in every other row.
//   - Stage 3: flush all |v| <= eps to exact zero.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//
// Complexity: O(r·c·min(r,c)) time, O(r·c) memory.
func Reduce(m Matrix, opts ...Option) (*Reduction, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	o := gatherOptions(opts...)
	a := src.Clone()

	order := make([]int, a.r)
	for i := range order {
		order[i] = i
	}
	pivots := make([]int, 0, min(a.r, a.c))

	row := 0
	for col := 0; col < a.c && row < a.r; col++ {
		p, best := -1, o.eps
		for i := row; i < a.r; i++ {
			if v := math.Abs(a.data[i*a.c+col]); v > best {
				p, best = i, v
			}
		}
		if p < 0 {
			for i := row; i < a.r; i++ {
				a.data[i*a.c+col] = 0
			}
			continue
		}
		a.swapRows(row, p)
		order[row], order[p] = order[p], order[row]

		pr := a.rowSlice(row)
		inv := 1 / pr[col]
		for k := col; k < a.c; k++ {
			pr[k] *= inv
		}
		pr[col] = 1

		for i := 0; i < a.r; i++ {
			if i == row {
				continue
			}
			ri := a.rowSlice(i)
			f := ri[col]
			if f == 0 {
				continue
			}
			for k := col; k < a.c; k++ {
				ri[k] -= f * pr[k]
			}
			ri[col] = 0
		}
		pivots = append(pivots, col)
		row++
	}
	flush(a.data, o.eps)

	return &Reduction{Echelon: a, Pivots: pivots, Order: order}, nil
}

// Rank returns the numerical rank of m.
func Rank(m Matrix, opts ...Option) (int, error) {
	red, err := Reduce(m, opts...)
	if err != nil {
		return 0, err
	}
	return red.Rank(), nil
}

// flush zeroes every entry whose magnitude is at most eps.
func flush(v []float64, eps float64) {
	for i := range v {
		if math.Abs(v[i]) <= eps {
			v[i] = 0
		}
	}
}
