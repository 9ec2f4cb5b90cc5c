// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for ingestion checks used by Table.
//   - Return plain sentinel errors wrapped with a validator tag so call sites
//     can still match them with errors.Is.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// validateNames checks that every name is non-empty and unique.
// Complexity: O(n) with a map of seen names.
func validateNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for j, name := range names {
		if name == "" {
			return validatorErrorf(fmt.Sprintf("validateNames: column %d", j), ErrEmptyName)
		}
		if _, dup := seen[name]; dup {
			return validatorErrorf(fmt.Sprintf("validateNames: %q", name), ErrDuplicateColumn)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// validateColumns checks that columns match names one-to-one and that every
// column has the same length. It returns that common length.
func validateColumns(names []string, columns [][]float64) (int, error) {
	if len(names) != len(columns) {
		return 0, validatorErrorf(
			fmt.Sprintf("validateColumns: %d names for %d columns", len(names), len(columns)),
			ErrDimensionMismatch)
	}
	if len(columns) == 0 {
		return 0, nil
	}
	rows := len(columns[0])
	for j := 1; j < len(columns); j++ {
		if len(columns[j]) != rows {
			return 0, validatorErrorf(
				fmt.Sprintf("validateColumns: %q has %d rows, want %d", names[j], len(columns[j]), rows),
				ErrDimensionMismatch)
		}
	}

	return rows, nil
}

// validateFinite rejects NaN and ±Inf anywhere in columns.
func validateFinite(names []string, columns [][]float64) error {
	for j, col := range columns {
		for i, v := range col {
			if isNonFinite(v) {
				return validatorErrorf(fmt.Sprintf("validateFinite: %q row %d", names[j], i), ErrNaNInf)
			}
		}
	}

	return nil
}
