// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernel behind the
// simultaneous-equation solver.
//
// What:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set.
//   - Reduce: Gauss–Jordan elimination with partial pivoting to reduced row
//     echelon form, reporting pivot columns (rank) and the row permutation.
//   - RowBasis: incremental elimination that decides, row by row, whether a
//     new row is a linear combination of the rows accepted so far.
//   - MatVec: y = A·x, used to compute equation residuals.
//
// Numeric policy:
//
// A pivot candidate whose magnitude is below the epsilon (DefaultEpsilon,
// overridable through WithEpsilon) is treated as zero; it is never divided by.
// Entries that fall under epsilon after elimination are flushed to 0 so that
// rank and consistency decisions are deterministic.
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a non-positive side.
//   - ErrOutOfRange: row/column index outside the matrix.
//   - ErrDimensionMismatch: operand lengths do not agree (ragged rows, vector length).
//   - ErrNilMatrix: nil matrix or vector argument.
//   - ErrNaNInf: a NaN or ±Inf value was written or ingested.
//
// Complexity:
//
//   - Reduce: O(r·c·min(r,c)) time, O(r·c) memory.
//   - RowBasis.Add: O(k·c) per row for k accepted rows.
//   - MatVec: O(r·c).
package matrix
