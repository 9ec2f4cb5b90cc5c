package matrix

import (
	"fmt"
	"strings"
)

// Table is an immutable, ordered collection of equal-length named columns.
// Rows are experimental runs; columns are factors (design matrix) or model
// terms (model matrix). Column order is the order given at construction.
type Table struct {
	names   []string
	index   map[string]int
	columns [][]float64 // column-major copies, len(columns[j]) == rows
	rows    int
}

// NewTable builds a Table from parallel names and columns. Both slices are
// copied. A Table with zero columns is valid and has zero rows.
//
// Errors:
//   - ErrDimensionMismatch if len(names) != len(columns) or columns are ragged.
//   - ErrEmptyName / ErrDuplicateColumn on bad names.
//   - ErrNaNInf when a value is non-finite and validation is enabled.
//
// Complexity: O(rows*cols).
func NewTable(names []string, columns [][]float64, opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)

	rows, err := validateColumns(names, columns)
	if err != nil {
		return nil, fmt.Errorf("NewTable: %w", err)
	}
	if err = validateNames(names); err != nil {
		return nil, fmt.Errorf("NewTable: %w", err)
	}
	if o.validateNaNInf {
		if err = validateFinite(names, columns); err != nil {
			return nil, fmt.Errorf("NewTable: %w", err)
		}
	}

	t := &Table{
		names:   make([]string, len(names)),
		index:   make(map[string]int, len(names)),
		columns: make([][]float64, len(columns)),
		rows:    rows,
	}
	copy(t.names, names)
	for j, col := range columns {
		t.columns[j] = append([]float64(nil), col...)
		t.index[names[j]] = j
	}

	return t, nil
}

// Rows returns the number of runs.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of named columns.
func (t *Table) Cols() int { return len(t.names) }

// Names returns a copy of the column names in order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Name returns the name of column j.
func (t *Table) Name(j int) (string, error) {
	if j < 0 || j >= len(t.names) {
		return "", fmt.Errorf("Table.Name(%d): %w", j, ErrOutOfRange)
	}

	return t.names[j], nil
}

// Index returns the position of the named column.
func (t *Table) Index(name string) (int, bool) {
	j, ok := t.index[name]
	return j, ok
}

// Column returns a copy of column j.
func (t *Table) Column(j int) ([]float64, error) {
	if j < 0 || j >= len(t.columns) {
		return nil, fmt.Errorf("Table.Column(%d): %w", j, ErrOutOfRange)
	}

	return append([]float64(nil), t.columns[j]...), nil
}

// ColumnByName returns a copy of the named column.
func (t *Table) ColumnByName(name string) ([]float64, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("Table.ColumnByName(%q): %w", name, ErrUnknownColumn)
	}

	return append([]float64(nil), t.columns[j]...), nil
}

// Select returns a new Table holding the given columns in the given order.
func (t *Table) Select(cols []int) (*Table, error) {
	names := make([]string, len(cols))
	columns := make([][]float64, len(cols))
	for k, j := range cols {
		if j < 0 || j >= len(t.columns) {
			return nil, fmt.Errorf("Table.Select(%d): %w", j, ErrOutOfRange)
		}
		names[k] = t.names[j]
		columns[k] = t.columns[j]
	}

	// Values were validated on ingestion; skip the finite check.
	return NewTable(names, columns, WithNoValidateNaNInf())
}

// Dense returns the table as a rows×cols row-major Dense.
// Returns ErrBadShape when the table has no rows or no columns.
// Complexity: O(rows*cols).
func (t *Table) Dense() (*Dense, error) {
	d, err := NewDense(t.rows, len(t.columns))
	if err != nil {
		return nil, fmt.Errorf("Table.Dense: %w", err)
	}
	for j, col := range t.columns {
		for i, v := range col {
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}

// MaxAbs returns the largest absolute entry, or 0 for an empty table.
func (t *Table) MaxAbs() float64 {
	var m float64
	for _, col := range t.columns {
		for _, v := range col {
			if v < 0 {
				v = -v
			}
			if v > m {
				m = v
			}
		}
	}

	return m
}

// String renders a header of names followed by one line per run.
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.names, "\t"))
	sb.WriteByte('\n')
	for i := 0; i < t.rows; i++ {
		for j, col := range t.columns {
			if j > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprintf(&sb, "%g", col[i])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
