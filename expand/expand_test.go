package expand_test

import (
	"testing"

	"github.com/Ni2M/dexpy/expand"
	"github.com/Ni2M/dexpy/matrix"
	"github.com/Ni2M/dexpy/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// factorial2 is the 2² full factorial in standard order.
func factorial2(t *testing.T) *matrix.Table {
	t.Helper()
	d, err := matrix.NewTable(
		[]string{"A", "B"},
		[][]float64{{-1, 1, -1, 1}, {-1, -1, 1, 1}},
	)
	require.NoError(t, err)

	return d
}

// TestModelMatrix_Columns expands intercept, main effects, interaction and quadratic.
func TestModelMatrix_Columns(t *testing.T) {
	m, err := model.Parse("1 + A + B + A*B + A^2 + -2B^3")
	require.NoError(t, err)

	mm, err := expand.ModelMatrix(m, factorial2(t))
	require.NoError(t, err)
	require.Equal(t, []string{"Intercept", "A", "B", "AB", "A^2", "-2.0B^3"}, mm.Names())
	require.Equal(t, 4, mm.Rows())

	want := map[string][]float64{
		"Intercept": {1, 1, 1, 1},
		"A":         {-1, 1, -1, 1},
		"B":         {-1, -1, 1, 1},
		"AB":        {1, -1, -1, 1},
		"A^2":       {1, 1, 1, 1},
		"-2.0B^3":   {2, 2, -2, -2},
	}
	for name, col := range want {
		got, err := mm.ColumnByName(name)
		require.NoError(t, err)
		assert.Equal(t, col, got, name)
	}
}

// TestModelMatrix_UnknownFactor reports variables missing from the design.
func TestModelMatrix_UnknownFactor(t *testing.T) {
	m, err := model.Parse("A + C")
	require.NoError(t, err)

	_, err = expand.ModelMatrix(m, factorial2(t))
	require.ErrorIs(t, err, expand.ErrUnknownFactor)

	_, err = expand.ModelMatrix(m, factorial2(t), expand.WithPositionalFactors())
	require.ErrorIs(t, err, expand.ErrUnknownFactor, "id 2 has no third column")
}

// TestModelMatrix_Positional binds ids to column positions.
func TestModelMatrix_Positional(t *testing.T) {
	d, err := matrix.NewTable(
		[]string{"amount", "grind"},
		[][]float64{{-1, 1}, {2, 3}},
	)
	require.NoError(t, err)
	m, err := model.Parse("A*B")
	require.NoError(t, err)

	_, err = expand.ModelMatrix(m, d)
	require.ErrorIs(t, err, expand.ErrUnknownFactor)

	mm, err := expand.ModelMatrix(m, d, expand.WithNamedFactors(), expand.WithPositionalFactors())
	require.NoError(t, err)
	col, err := mm.ColumnByName("AB")
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 3}, col)
}

// TestModelMatrix_Options covers intercept naming and alphabet injection.
func TestModelMatrix_Options(t *testing.T) {
	a, err := model.NewAlphabet("XY")
	require.NoError(t, err)
	d, err := matrix.NewTable([]string{"X", "Y"}, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	m, err := model.Parse("1 + X*Y", model.WithAlphabet(a))
	require.NoError(t, err)

	mm, err := expand.ModelMatrix(m, d, expand.WithAlphabet(a), expand.WithInterceptName("const"))
	require.NoError(t, err)
	assert.Equal(t, []string{"const", "XY"}, mm.Names())
	col, _ := mm.ColumnByName("XY")
	assert.Equal(t, []float64{3, 8}, col)

	assert.Panics(t, func() { expand.WithInterceptName("") })
}

// TestModelMatrix_Errors covers nil inputs and duplicate terms.
func TestModelMatrix_Errors(t *testing.T) {
	m, err := model.Parse("A + A")
	require.NoError(t, err)

	_, err = expand.ModelMatrix(nil, factorial2(t))
	require.ErrorIs(t, err, expand.ErrNilModel)
	_, err = expand.ModelMatrix(m, nil)
	require.ErrorIs(t, err, expand.ErrNilDesign)
	_, err = expand.ModelMatrix(m, factorial2(t))
	require.ErrorIs(t, err, matrix.ErrDuplicateColumn)
}
