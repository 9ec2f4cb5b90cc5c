// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// opLeastSquares tags errors produced by LeastSquares.
const opLeastSquares = "LeastSquares"

// LeastSquares returns X (r×n) minimizing ‖A·X − B‖₂ column by column, for
// A of shape m×r and B of shape m×n.
// Implementation:
//   - Stage 1: Validate operands and copy them into gonum matrices.
//   - Stage 2: If m ≥ r, factorize A by Householder QR and solve.
//   - Stage 3: If QR is not applicable or reports a mat.Condition (singular
//     or near-singular A), fall back to the minimum-norm SVD solution with
//     rcond = ε·max(m, r).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A.Rows != B.Rows),
//     ErrLeastSquares (SVD did not converge).
//
// Complexity:
//   - QR: O(m·r² + m·r·n). SVD: O(m²·r + m·r·n) with full U.
func LeastSquares(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opLeastSquares, ErrNilMatrix)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opLeastSquares, ErrDimensionMismatch)
	}

	ga := mat.NewDense(a.r, a.c, a.RawData())
	gb := mat.NewDense(b.r, b.c, b.RawData())

	if a.r >= a.c {
		var qr mat.QR
		qr.Factorize(ga)
		var x mat.Dense
		err := qr.SolveTo(&x, false, gb)
		if err == nil {
			return fromGonum(&x)
		}
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, matrixErrorf(opLeastSquares, err)
		}
	}

	return solveSVD(ga, gb, a.r, a.c, b.c)
}

// solveSVD computes the minimum-norm least-squares solution, tolerating a
// rank-deficient A.
func solveSVD(ga, gb *mat.Dense, m, r, n int) (*Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(ga, mat.SVDFull); !ok {
		return nil, matrixErrorf(opLeastSquares, ErrLeastSquares)
	}
	rcond := epsilon * float64(max(m, r))
	rank := svd.Rank(rcond)
	if rank == 0 {
		// A is numerically zero: the minimum-norm solution is zero.
		return NewDense(r, n)
	}
	var x mat.Dense
	svd.SolveTo(&x, gb, rank)

	return fromGonum(&x)
}

// fromGonum copies a gonum matrix into a Dense.
func fromGonum(x mat.Matrix) (*Dense, error) {
	r, c := x.Dims()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = d.Set(i, j, x.At(i, j)); err != nil {
				return nil, matrixErrorf(opLeastSquares, err)
			}
		}
	}

	return d, nil
}

// epsilon is the float64 machine epsilon (2⁻⁵²).
var epsilon = math.Nextafter(1, 2) - 1

// Epsilon returns the float64 machine epsilon.
func Epsilon() float64 { return epsilon }
