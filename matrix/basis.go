// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// RowBasis accumulates linearly independent rows one at a time.
//
// Rows are width wide; only the first pivotCols columns may hold pivots.
// With pivotCols < width the trailing columns ride along (an augmented
// right-hand side): a row whose leading part reduces to zero is dependent,
// and its trailing residual tells whether it is consistent with the basis.
//
// The accepted rows are kept in reduced form (unit pivot, zero in every other
// pivot column), so reducing a candidate is a single pass over the basis.
type RowBasis struct {
	width     int
	pivotCols int
	eps       float64
	rows      [][]float64
	pivots    []int
}

// NewRowBasis creates an empty basis.
//
// Errors:
//   - ErrInvalidDimensions unless 0 < pivotCols <= width.
func NewRowBasis(width, pivotCols int, opts ...Option) (*RowBasis, error) {
	if width <= 0 || pivotCols <= 0 || pivotCols > width {
		return nil, matrixErrorf(opRowBasis, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	return &RowBasis{width: width, pivotCols: pivotCols, eps: o.eps}, nil
}

// Rank returns the number of accepted rows.
func (b *RowBasis) Rank() int { return len(b.rows) }

// Reduce returns the residual of row after eliminating every basis pivot.
// row is not modified.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch for a nil or wrong-length row.
//   - ErrNaNInf for non-finite entries.
//
// Complexity: O(k·width) for k accepted rows.
func (b *RowBasis) Reduce(row []float64) ([]float64, error) {
	if err := ValidateVecLen(row, b.width); err != nil {
		return nil, matrixErrorf(opBasisRedu, err)
	}
	res := make([]float64, b.width)
	for j, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opBasisRedu, fmt.Errorf("column %d: %w", j, ErrNaNInf))
		}
		res[j] = v
	}
	for i, p := range b.pivots {
		f := res[p]
		if f == 0 {
			continue
		}
		for k, v := range b.rows[i] {
			res[k] -= f * v
		}
		res[p] = 0
	}
	flush(res, b.eps)

	return res, nil
}

// Independent reports whether a residual from Reduce has a nonzero entry in
// the pivot columns.
func (b *RowBasis) Independent(residual []float64) bool {
	for k := 0; k < b.pivotCols && k < len(residual); k++ {
		if residual[k] != 0 {
			return true
		}
	}
	return false
}

// Add reduces row against the basis and accepts it when independent.
// The residual is returned either way; for a rejected row its entries past
// pivotCols are what remains of the right-hand side.
func (b *RowBasis) Add(row []float64) (added bool, residual []float64, err error) {
	residual, err = b.Reduce(row)
	if err != nil {
		return false, nil, matrixErrorf(opBasisAdd, err)
	}

	p, best := -1, 0.0
	for k := 0; k < b.pivotCols; k++ {
		if v := math.Abs(residual[k]); v > best {
			p, best = k, v
		}
	}
	if p < 0 {
		return false, residual, nil
	}

	next := append([]float64(nil), residual...)
	inv := 1 / next[p]
	for k := range next {
		next[k] *= inv
	}
	next[p] = 1
	for _, r := range b.rows {
		f := r[p]
		if f == 0 {
			continue
		}
		for k, v := range next {
			r[k] -= f * v
		}
		r[p] = 0
		flush(r, b.eps)
	}
	flush(next, b.eps)
	b.rows = append(b.rows, next)
	b.pivots = append(b.pivots, p)

	return true, residual, nil
}
