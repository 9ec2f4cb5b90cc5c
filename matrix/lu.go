// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// zeroPivot fills the multipliers of a skipped column.
const zeroPivot = 0.0

// opLU tags errors produced by LU.
const opLU = "LU"

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LUFactors holds the factorization P·A = L·U of an m×n matrix A, with
// k = min(m, n).
//
//   - L is m×k, unit lower trapezoidal.
//   - U is k×n, upper trapezoidal.
//   - Perm maps factored rows to input rows: row i of P·A is row Perm[i] of A.
//
// Only rows are permuted, so column j of U always corresponds to column j
// of A. Callers selecting columns by the diagonal of U rely on this.
type LUFactors struct {
	L    *Dense
	U    *Dense
	Perm []int
}

// Diagonal returns U[i,i] for i in [0, k).
func (f *LUFactors) Diagonal() []float64 {
	k := f.U.r
	out := make([]float64, k)
	for i := 0; i < k; i++ {
		out[i] = f.U.data[i*f.U.c+i]
	}

	return out
}

// LU computes P·A = L·U by Gaussian elimination with partial (row) pivoting
// on a rectangular matrix.
// Implementation:
//   - Stage 1: Validate m (not nil) and tol (finite, ≥ 0); work on a copy.
//   - Stage 2: For j=0..k-1, pick the row with the largest |a[i,j]| (i ≥ j).
//     If that magnitude is ≤ tol the column is rank-deficient at this step:
//     its multipliers are zeroed and elimination moves on without a swap.
//     Otherwise swap rows, scale the multipliers and update the trailing block.
//   - Stage 3: Split the working copy into L and U.
//
// Behavior highlights:
//   - A zero (or sub-tolerance) pivot is not an error. It leaves a ≈0 entry on
//     the diagonal of U, which is exactly what rank detection looks for.
//   - Row j is consumed by step j even when its pivot is skipped, so later
//     pivot searches never look at it. A column whose remaining support lies
//     only in such a row gets a ≈0 diagonal too (same as LAPACK getf2).
//   - tol=0 reproduces the textbook (LAPACK getf2) skip-on-exact-zero rule.
//
// Errors:
//   - ErrNilMatrix, ErrBadTolerance.
//
// Determinism:
//   - Ties in pivot magnitude keep the lowest row index.
//
// Complexity:
//   - Time O(m·n·k), Space O(m·n).
func LU(a *Dense, tol float64) (*LUFactors, error) {
	if a == nil {
		return nil, matrixErrorf(opLU, ErrNilMatrix)
	}
	if isNonFinite(tol) || tol < 0 {
		return nil, matrixErrorf(opLU, ErrBadTolerance)
	}

	m, n := a.r, a.c
	k := m
	if n < k {
		k = n
	}
	w := a.Clone()
	perm := make([]int, m)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, c int
		p       int     // pivot row
		best    float64 // |pivot| candidate
		piv, l  float64
		rowJ    int // base offset of row j
		rowI    int // base offset of row i
	)
	for j = 0; j < k; j++ {
		// Partial pivot search down column j
		p, best = j, math.Abs(w.data[j*n+j])
		for i = j + 1; i < m; i++ {
			if v := math.Abs(w.data[i*n+j]); v > best {
				p, best = i, v
			}
		}
		if best <= tol {
			// Dependent column at this step: no multipliers, no update
			for i = j + 1; i < m; i++ {
				w.data[i*n+j] = zeroPivot
			}
			continue
		}
		if p != j {
			swapRows(w, p, j)
			perm[p], perm[j] = perm[j], perm[p]
		}

		rowJ = j * n
		piv = w.data[rowJ+j]
		for i = j + 1; i < m; i++ {
			rowI = i * n
			l = w.data[rowI+j] / piv
			w.data[rowI+j] = l
			if l == 0 {
				continue
			}
			for c = j + 1; c < n; c++ {
				w.data[rowI+c] -= l * w.data[rowJ+c]
			}
		}
	}

	// Split into L (m×k) and U (k×n)
	L, err := NewDense(m, k)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(k, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			v := w.data[i*n+j]
			switch {
			case j < i && j < k:
				L.data[i*k+j] = v
			case i < k && j >= i:
				U.data[i*n+j] = v
			}
		}
		if i < k {
			L.data[i*k+i] = 1
		}
	}

	return &LUFactors{L: L, U: U, Perm: perm}, nil
}

// swapRows exchanges rows a and b of m in place.
func swapRows(m *Dense, a, b int) {
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
