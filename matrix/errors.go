// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All routines return these sentinels (optionally wrapped with an operation
// tag via matrixErrorf) and tests check them with errors.Is. No routine panics
// on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested or supplied shape is invalid
	// (e.g., r<=0 or c<=0 for Dense, or a Table with columns but no rows where
	// rows are required).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., ragged Table columns, or a data slice whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense or *Table was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEmptyName indicates a Table column with an empty name.
	ErrEmptyName = errors.New("matrix: empty column name")

	// ErrDuplicateColumn indicates two Table columns sharing a name.
	ErrDuplicateColumn = errors.New("matrix: duplicate column name")

	// ErrUnknownColumn indicates a lookup by a name the Table does not carry.
	ErrUnknownColumn = errors.New("matrix: unknown column")

	// ErrBadTolerance indicates a negative or non-finite tolerance.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite and non-negative")

	// ErrLeastSquares indicates that neither QR nor SVD could solve a
	// least-squares system.
	ErrLeastSquares = errors.New("matrix: least-squares solve failed")
)
