// Package matrix provides the numeric containers and kernels used by
// design-of-experiments analysis.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Table, an ordered set of equal-length named columns. A Table holds
//     either a design matrix (one column per factor) or an expanded model
//     matrix (one column per model term).
//   - LU, Gaussian elimination with partial (row) pivoting on rectangular
//     matrices. Column j of U always corresponds to column j of the input.
//   - LeastSquares, a QR solve backed by gonum with a minimum-norm SVD
//     fallback for ill-conditioned systems.
//
// All routines are pure: inputs are never mutated and no state is shared
// between calls.
//
//	t, _ := matrix.NewTable([]string{"A", "B"}, [][]float64{{-1, 1}, {1, 1}})
//	u := t.Dense()
//	f, _ := matrix.LU(u, 0)
//	fmt.Println(f.Diagonal())
package matrix
