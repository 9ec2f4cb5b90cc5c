package expand

import (
	"fmt"

	"github.com/Ni2M/dexpy/matrix"
	"github.com/Ni2M/dexpy/model"
)

// ModelMatrix expands m over design into a model-matrix Table with one
// column per term, in term order. Design values are not modified.
//
// Errors:
//   - ErrNilModel, ErrNilDesign.
//   - ErrUnknownFactor when a variable has no design column.
//   - matrix.ErrDuplicateColumn when two terms render to the same name.
//
// Complexity: O(runs · Σ term degree).
func ModelMatrix(m *model.Model, design *matrix.Table, opts ...Option) (*matrix.Table, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if design == nil {
		return nil, ErrNilDesign
	}
	o := gatherOptions(opts...)

	runs := design.Rows()
	terms := m.Terms()
	names := make([]string, len(terms))
	columns := make([][]float64, len(terms))
	factors := make(map[int][]float64) // id -> design column, resolved once

	for j, t := range terms {
		names[j] = columnName(t, o)

		col := make([]float64, runs)
		c := t.Coefficient()
		for i := range col {
			col[i] = c
		}
		for _, id := range t.Variables() { // ascending ids keep rounding deterministic
			f, ok := factors[id]
			if !ok {
				var err error
				if f, err = factorColumn(design, id, o); err != nil {
					return nil, fmt.Errorf("ModelMatrix: term %q: %w", names[j], err)
				}
				factors[id] = f
			}
			for i := range col {
				col[i] *= intPow(f[i], t.Power(id))
			}
		}
		columns[j] = col
	}

	out, err := matrix.NewTable(names, columns)
	if err != nil {
		return nil, fmt.Errorf("ModelMatrix: %w", err)
	}

	return out, nil
}

// columnName is the intercept name for a bare 1, the canonical term otherwise.
func columnName(t model.Term, o Options) string {
	if t.IsIntercept() && t.Coefficient() == 1 {
		return o.interceptName
	}

	return t.Format(o.alphabet)
}

// factorColumn resolves variable id to a design column.
func factorColumn(design *matrix.Table, id int, o Options) ([]float64, error) {
	if o.positional {
		col, err := design.Column(id)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", id, ErrUnknownFactor)
		}

		return col, nil
	}
	name, err := o.alphabet.Name(id)
	if err != nil {
		return nil, err
	}
	col, err := design.ColumnByName(name)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownFactor)
	}

	return col, nil
}

// intPow computes x^p for p >= 1 by repeated squaring.
func intPow(x float64, p int) float64 {
	r := 1.0
	for p > 0 {
		if p&1 == 1 {
			r *= x
		}
		x *= x
		p >>= 1
	}

	return r
}
