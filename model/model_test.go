package model_test

import (
	"errors"
	"testing"

	"github.com/Ni2M/dexpy/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_QuadraticModel covers ordering, rendering and filters.
func TestParse_QuadraticModel(t *testing.T) {
	m, err := model.Parse("A + B + A*B + A^2")
	require.NoError(t, err)

	require.Equal(t, 4, m.Len())
	require.Equal(t, 4, m.Columns())
	assert.Equal(t, "A + B + AB + A^2", m.String())
	assert.Equal(t, []int{idA, idB}, m.Variables())
	assert.Equal(t, "A + B", m.MainEffects().String())
	assert.Equal(t, "AB", m.Interactions().String())

	quad := m.Filter(func(t model.Term) bool { return t.AlwaysPositive() })
	assert.Equal(t, "A^2", quad.String())

	third, err := m.Term(2)
	require.NoError(t, err)
	assert.True(t, third.IsInteraction())
	_, err = m.Term(4)
	assert.ErrorIs(t, err, model.ErrOutOfRange)
}

// TestParse_Intercept covers the intercept segment forms.
func TestParse_Intercept(t *testing.T) {
	m, err := model.Parse("1 + A + -2B")
	require.NoError(t, err)
	assert.Equal(t, "1 + A + -2.0B", m.String())

	first, _ := m.Term(0)
	assert.True(t, first.IsIntercept())

	// a trailing '+' yields a blank segment, which is the intercept
	m, err = model.Parse("A +", model.WithStrict())
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())
	last, _ := m.Term(1)
	assert.True(t, last.IsIntercept())
}

// TestParse_Errors propagates parser failures.
func TestParse_Errors(t *testing.T) {
	_, err := model.Parse("A + I")
	require.ErrorIs(t, err, model.ErrInvalidVariable)

	_, err = model.Parse("A + ** + B", model.WithStrict())
	var pe *model.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "**", pe.Segment)

	m, err := model.Parse("A + ** + B")
	require.NoError(t, err)
	assert.Equal(t, "A + 1 + B", m.String())
}

// TestParse_RoundTrip checks the semantic round trip over several models.
func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"A + B + A*B + A^2",
		"1 + A' + B\" + A'*B\"",
		"-0.5*A*B + 3 + C^4",
		"1e20A + 1e-7B",
		"A*B*C*D*E*F*G*H*J",
	}
	for _, in := range inputs {
		first, err := model.Parse(in)
		require.NoError(t, err, in)
		second, err := model.Parse(first.String())
		require.NoError(t, err, first.String())
		assert.True(t, first.Equal(second), "%q -> %q", in, first.String())
	}
}

// TestParse_LargeCoefficientRoundTrip renders exponents without '+' so the
// model still splits into its terms.
func TestParse_LargeCoefficientRoundTrip(t *testing.T) {
	big, err := model.NewTerm(1e16, map[int]int{idA: 1})
	require.NoError(t, err)
	b, err := model.NewTerm(1, map[int]int{idB: 1})
	require.NoError(t, err)

	m := model.NewModel(big, b)
	require.Equal(t, "1e16A + B", m.String())

	back, err := model.Parse(m.String())
	require.NoError(t, err)
	require.Equal(t, 2, back.Len())
	assert.True(t, m.Equal(back))
}

// TestParse_EveryPlusSplits treats each '+' as a term separator, even after
// an exponent marker.
func TestParse_EveryPlusSplits(t *testing.T) {
	m, err := model.Parse("2E+3A")
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())

	first, err := m.Term(0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, first.Coefficient())
	assert.Equal(t, map[int]int{idE: 1}, first.Powers())

	second, err := m.Term(1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, second.Coefficient())
	assert.Equal(t, map[int]int{idA: 1}, second.Powers())

	m, err = model.Parse("2e3A")
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
	assert.Equal(t, "2000.0A", m.String())
}

// TestParse_CustomAlphabet injects an alternate letter set.
func TestParse_CustomAlphabet(t *testing.T) {
	a, err := model.NewAlphabet("XYZ")
	require.NoError(t, err)

	p := model.NewParser(model.WithAlphabet(a))
	require.Equal(t, "XYZ", p.Alphabet().Letters())

	m, err := p.ParseModel("X + Y*Z + X'")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, m.Variables())
	assert.Equal(t, "X + YZ + X'", m.Format(a))
	assert.Equal(t, "A + BC + D", m.String(), "String uses the default alphabet")

	_, err = p.ParseModel("X + A")
	assert.ErrorIs(t, err, model.ErrInvalidVariable)
}

// TestModel_Equal compares term lists.
func TestModel_Equal(t *testing.T) {
	a, _ := model.Parse("A + B")
	b, _ := model.Parse("A+B")
	c, _ := model.Parse("B + A")
	d, _ := model.Parse("A")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "order is part of a model")
	assert.False(t, a.Equal(d))
}
