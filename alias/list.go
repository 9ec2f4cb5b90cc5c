package alias

import (
	"fmt"

	"github.com/Ni2M/dexpy/expand"
	"github.com/Ni2M/dexpy/matrix"
	"github.com/Ni2M/dexpy/model"
)

// List parses formula, expands it over design and analyzes the resulting
// model matrix. Parsing and expansion take the options forwarded through
// WithParserOptions and WithExpandOptions.
//
//	rep, err := alias.List("1 + A + B + C + A*B", design)
func List(formula string, design *matrix.Table, opts ...Option) (*Report, error) {
	a := NewAnalyzer(opts...)
	m, err := model.NewParser(a.opts.parserOpts...).ParseModel(formula)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}

	return a.list(m, design)
}

// ListModel is List for an already parsed model.
func ListModel(m *model.Model, design *matrix.Table, opts ...Option) (*Report, error) {
	return NewAnalyzer(opts...).list(m, design)
}

func (a *Analyzer) list(m *model.Model, design *matrix.Table) (*Report, error) {
	mm, err := expand.ModelMatrix(m, design, a.opts.expandOpts...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}

	return a.Analyze(mm)
}
