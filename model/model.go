package model

import (
	"fmt"
	"sort"
	"strings"
)

// Model is an ordered sum of Terms. Order follows declaration and only
// matters for display.
type Model struct {
	terms []Term
}

// NewModel builds a Model from terms, in order.
func NewModel(terms ...Term) *Model {
	return &Model{terms: append([]Term(nil), terms...)}
}

// Terms returns the terms in order.
func (m *Model) Terms() []Term { return append([]Term(nil), m.terms...) }

// Len returns the number of terms.
func (m *Model) Len() int { return len(m.terms) }

// Term returns term i.
func (m *Model) Term(i int) (Term, error) {
	if i < 0 || i >= len(m.terms) {
		return Term{}, fmt.Errorf("Model.Term(%d): %w", i, ErrOutOfRange)
	}

	return m.terms[i], nil
}

// Columns returns the number of model-matrix columns the model needs.
// Every factor is assumed to carry one degree of freedom, so this is the
// number of terms; categorical factors with more levels are not modeled.
func (m *Model) Columns() int { return len(m.terms) }

// Variables returns every variable id used by any term, ascending.
func (m *Model) Variables() []int {
	seen := make(map[int]struct{})
	for _, t := range m.terms {
		for id := range t.powers {
			seen[id] = struct{}{}
		}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Filter returns a Model with the terms that satisfy keep, in order.
func (m *Model) Filter(keep func(Term) bool) *Model {
	out := &Model{}
	for _, t := range m.terms {
		if keep(t) {
			out.terms = append(out.terms, t)
		}
	}

	return out
}

// MainEffects returns the single-variable, first-power terms.
func (m *Model) MainEffects() *Model { return m.Filter(Term.IsMainEffect) }

// Interactions returns the terms involving two or more variables.
func (m *Model) Interactions() *Model { return m.Filter(Term.IsInteraction) }

// Equal reports whether both models hold equal terms in the same order.
func (m *Model) Equal(o *Model) bool {
	if len(m.terms) != len(o.terms) {
		return false
	}
	for i := range m.terms {
		if !m.terms[i].Equal(o.terms[i]) {
			return false
		}
	}

	return true
}

// String renders the model with the default alphabet.
func (m *Model) String() string { return m.Format(defaultAlphabet) }

// Format joins each term's canonical form with " + ".
func (m *Model) Format(a Alphabet) string {
	parts := make([]string, len(m.terms))
	for i, t := range m.terms {
		parts[i] = t.Format(a)
	}

	return strings.Join(parts, " + ")
}
