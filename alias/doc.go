// Package alias detects aliasing among the columns of a model matrix.
//
// Two model effects are aliased when their columns are linearly dependent, so
// no experiment run on that design can tell them apart. Analyze finds a
// full-rank basis of the model matrix, regresses every column on that basis
// and reports each basis column together with the dependent columns that
// carry a non-zero share of it:
//
//	C = AB
//	A = BC + 0.5*D
//
// An equation "X = c*Y" reads "column Y contains c times column X". Basis
// columns with no aliases are left out of Equations; Report.Aliases and
// Report.Coefficients carry the complete picture.
//
// Algorithm:
//
//  1. LU-factorize the model matrix with partial pivoting (matrix.LU).
//  2. Keep the columns whose U diagonal exceeds the pivot tolerance.
//  3. Solve basis·X ≈ all columns in the least-squares sense (matrix.LeastSquares).
//  4. Render every coefficient whose magnitude clears the zero tolerance.
//
// Known limitations:
//
// The tolerance is absolute machine epsilon by default, inherited from the
// historical behavior. Least-squares round-off is of the same order, so even
// ±1 two-level designs pick up noise terms under the default: a 2^(3-1)
// fraction reports "A = 1.0*BC" and terms like "2.22044604925e-16*A", and a
// saturated 2³ factorial reports equations where there are none. Callers
// almost always want WithTolerance (1e-9 suits coded designs), plus
// WithRelativeTolerance when entries are very large or very small.
//
// Rank detection follows plain partial-pivoting LU. When a column's pivot is
// skipped, its row is not revisited, so a later column whose only remaining
// support lies in that row is also classified as dependent. With P=[1,1,0,0],
// Q=2P and R=[1,0,0,0] the basis is [P] and R is reported as "P = 2.0*Q +
// 0.5*R" although R is independent of P.
//
// Diagnostics go to an injected *slog.Logger at debug level.
package alias
