package alias

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/Ni2M/dexpy/matrix"
	"github.com/Ni2M/dexpy/model"
)

// Report is the outcome of an alias analysis.
type Report struct {
	// Equations holds one "basis = term + term" line per basis column with
	// at least one alias, in basis order.
	Equations []string

	// Coefficients is len(Basis)×len(Columns). Entry (r, c) is how much of
	// basis column r appears in column c. nil when the basis is empty.
	Coefficients *matrix.Dense

	// Columns lists every model-matrix column, in input order.
	Columns []string

	// Basis lists the full-rank basis columns, in input order.
	Basis []string

	// Dependent lists the columns left out of the basis, in input order.
	Dependent []string

	// Aliases holds the structured form of Equations.
	Aliases []Alias
}

// Alias relates one basis column to the columns it is aliased with.
type Alias struct {
	Column   string
	Terms    []Term
	Equation string
}

// Term is one non-trivial coefficient in an alias.
type Term struct {
	Column      string
	Coefficient float64
}

// Lookup returns the alias entry for a basis column, if it has one.
func (r *Report) Lookup(column string) (Alias, bool) {
	for _, a := range r.Aliases {
		if a.Column == column {
			return a, true
		}
	}

	return Alias{}, false
}

// Analyzer runs alias analysis under a fixed configuration. It holds no
// mutable state and is safe for concurrent use.
type Analyzer struct {
	opts Options
}

// NewAnalyzer returns an Analyzer configured by opts.
func NewAnalyzer(opts ...Option) *Analyzer {
	return &Analyzer{opts: gatherOptions(opts...)}
}

// Analyze reports the aliasing structure of the model matrix mm (rows are
// runs, columns are named model terms). Rank deficiency is the expected input,
// not an error.
//
// Errors:
//   - ErrNilMatrix when mm is nil.
//   - matrix.ErrBadShape when mm has columns but no rows.
//   - matrix.ErrLeastSquares when the regression cannot be solved.
func (a *Analyzer) Analyze(mm *matrix.Table) (*Report, error) {
	if mm == nil {
		return nil, ErrNilMatrix
	}
	log := a.opts.logger
	names := mm.Names()
	rep := &Report{Columns: names}
	if len(names) == 0 {
		return rep, nil
	}

	dense, err := mm.Dense()
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	log.Debug("alias: model matrix", "rows", mm.Rows(), "cols", mm.Cols(), "columns", names)

	// Stage 1: rank detection on the diagonal of U
	pivotTol := a.opts.tol.pivot(mm.MaxAbs())
	lu, err := matrix.LU(dense, pivotTol)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	diag := lu.Diagonal()
	log.Debug("alias: upper diagonal", "diag", diag, "tolerance", pivotTol)

	// Stage 2: basis selection. Only rows were permuted, so U column j is
	// model-matrix column j; columns past min(rows, cols) have no pivot.
	var basisIdx []int
	for j, name := range names {
		if j < len(diag) && math.Abs(diag[j]) > pivotTol {
			basisIdx = append(basisIdx, j)
			rep.Basis = append(rep.Basis, name)
		} else {
			rep.Dependent = append(rep.Dependent, name)
		}
	}
	log.Debug("alias: basis", "basis", rep.Basis, "dependent", rep.Dependent)
	if len(basisIdx) == 0 {
		return rep, nil
	}

	// Stage 3: regress every column on the basis
	basis, err := mm.Select(basisIdx)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	lhs, err := basis.Dense()
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	coefs, err := matrix.LeastSquares(lhs, dense)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	rep.Coefficients = coefs
	log.Debug("alias: coefficients", "matrix", coefs.String())

	// Stage 4: render
	if err = a.render(rep, basisIdx, names); err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	log.Debug("alias: equations", "count", len(rep.Equations), "equations", rep.Equations)

	return rep, nil
}

// render fills Aliases and Equations from the coefficient matrix.
func (a *Analyzer) render(rep *Report, basisIdx []int, names []string) error {
	tol := a.opts.tol.coefficient()
	for r, b := range basisIdx {
		row, err := rep.Coefficients.Row(r)
		if err != nil {
			return err
		}

		var terms []Term
		var parts []string
		for c, v := range row {
			if c == b || math.Abs(v) < tol {
				continue
			}
			terms = append(terms, Term{Column: names[c], Coefficient: v})
			if math.Abs(v-1) > tol {
				parts = append(parts, model.FormatCoefficient(v, a.opts.digits)+"*"+names[c])
			} else {
				parts = append(parts, names[c])
			}
		}
		if len(parts) == 0 {
			continue
		}
		eq := names[b] + " = " + strings.Join(parts, " + ")
		rep.Aliases = append(rep.Aliases, Alias{Column: names[b], Terms: terms, Equation: eq})
		rep.Equations = append(rep.Equations, eq)
	}

	return nil
}

// Analyze runs a one-off Analyzer built from opts.
func Analyze(mm *matrix.Table, opts ...Option) (*Report, error) {
	return NewAnalyzer(opts...).Analyze(mm)
}

// Logger returns the analyzer's logger.
func (a *Analyzer) Logger() *slog.Logger { return a.opts.logger }

// Tolerance returns the analyzer's numeric policy.
func (a *Analyzer) Tolerance() Tolerance { return a.opts.tol }
