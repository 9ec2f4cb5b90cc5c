package model

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Term is one additive component of a polynomial model: a coefficient times
// a product of variables raised to positive integer powers. A Term with no
// powers is the intercept.
//
// Terms are immutable; accessors return copies.
type Term struct {
	coefficient float64
	powers      map[int]int // variable id -> power, power >= 1 only
}

// NewTerm builds a Term. Zero powers are dropped.
//
// Errors:
//   - ErrInvalidCoefficient if coefficient is NaN or ±Inf.
//   - ErrInvalidVariableID for a negative id.
//   - ErrInvalidPower for a negative power.
func NewTerm(coefficient float64, powers map[int]int) (Term, error) {
	if math.IsNaN(coefficient) || math.IsInf(coefficient, 0) {
		return Term{}, fmt.Errorf("NewTerm(%v): %w", coefficient, ErrInvalidCoefficient)
	}
	t := Term{coefficient: coefficient, powers: make(map[int]int, len(powers))}
	for id, p := range powers {
		if id < 0 {
			return Term{}, fmt.Errorf("NewTerm: id %d: %w", id, ErrInvalidVariableID)
		}
		if p < 0 {
			return Term{}, fmt.Errorf("NewTerm: id %d power %d: %w", id, p, ErrInvalidPower)
		}
		if p > 0 {
			t.powers[id] = p
		}
	}

	return t, nil
}

// Intercept returns the constant term 1.
func Intercept() Term {
	return Term{coefficient: 1, powers: map[int]int{}}
}

// Coefficient returns the term's coefficient (1 unless given).
func (t Term) Coefficient() float64 {
	if t.powers == nil && t.coefficient == 0 {
		// zero Term behaves as the intercept
		return 1
	}

	return t.coefficient
}

// Power returns the power of variable id, 0 when absent.
func (t Term) Power(id int) int { return t.powers[id] }

// Powers returns a copy of the id -> power map.
func (t Term) Powers() map[int]int {
	out := make(map[int]int, len(t.powers))
	for id, p := range t.powers {
		out[id] = p
	}

	return out
}

// Variables returns the ids present in the term, ascending.
func (t Term) Variables() []int {
	ids := make([]int, 0, len(t.powers))
	for id := range t.powers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Degree returns the sum of powers (0 for the intercept).
func (t Term) Degree() int {
	var d int
	for _, p := range t.powers {
		d += p
	}

	return d
}

// IsIntercept reports whether the term has no variables.
func (t Term) IsIntercept() bool { return len(t.powers) == 0 }

// IsMainEffect reports whether the term is a single variable to the first power.
func (t Term) IsMainEffect() bool { return len(t.powers) == 1 && t.Degree() == 1 }

// IsInteraction reports whether the term involves two or more variables.
func (t Term) IsInteraction() bool { return len(t.powers) >= 2 }

// AlwaysPositive reports whether every power is even, i.e. the term cannot
// change sign with the sign of its factors. The intercept qualifies.
func (t Term) AlwaysPositive() bool {
	for _, p := range t.powers {
		if p%2 != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether both terms carry the same coefficient and powers.
func (t Term) Equal(o Term) bool {
	if t.Coefficient() != o.Coefficient() || len(t.powers) != len(o.powers) {
		return false
	}
	for id, p := range t.powers {
		if o.powers[id] != p {
			return false
		}
	}

	return true
}

// String renders the term with the default alphabet.
func (t Term) String() string { return t.Format(defaultAlphabet) }

// Format renders the term in canonical form with alphabet a: the coefficient
// when it is not 1, then each variable in ascending id order with "^p" when
// p != 1. The intercept renders as "1".
func (t Term) Format(a Alphabet) string {
	var sb strings.Builder
	if c := t.Coefficient(); c != 1 {
		sb.WriteString(FormatCoefficient(c, -1))
	}
	for _, id := range t.Variables() {
		name, _ := a.Name(id) // ids are validated non-negative on construction
		sb.WriteString(name)
		if p := t.powers[id]; p != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(p))
		}
	}
	if sb.Len() == 0 {
		return "1" // intercept
	}

	return sb.String()
}
