// Package dexpy is a toolkit for analyzing polynomial models over designed
// experiments.
//
// It turns model formulas such as "1 + A + B + A*B + A^2" into terms, expands
// them over a design into a model matrix, and reports which model effects are
// aliased (confounded) by the design.
//
// Under the hood, everything is organized under four subpackages:
//
//	model/    terms, models, the variable alphabet and the formula parser
//	matrix/   named-column tables, dense matrices, LU and least squares
//	expand/   model-matrix expansion of a model over a design table
//	alias/    basis detection and alias equations for a model matrix
//
// Quick start:
//
//	design, _ := matrix.NewTable([]string{"A", "B", "C"}, columns)
//	rep, err := alias.List("1 + A + B + C + A*B + A*C + B*C", design,
//		alias.WithTolerance(1e-9))
//	for _, eq := range rep.Equations {
//		fmt.Println(eq) // e.g. "C = AB"
//	}
package dexpy
