package schema

import (
	"github.com/leengari/edakit/internal/domain/data"
	"github.com/leengari/edakit/internal/domain/errors"
)

// Table is an ordered set of typed columns with rows aligned by position.
// The position of a row is its index; derived tables keep it.
type Table struct {
	Name   string
	Schema *TableSchema
	Rows   []data.Row
}

// NewTable creates an empty table with the given columns
func NewTable(name string, columns ...Column) *Table {
	cols := make([]Column, len(columns))
	copy(cols, columns)
	return &Table{
		Name:   name,
		Schema: &TableSchema{TableName: name, Columns: cols},
		Rows:   []data.Row{},
	}
}

// Shape returns the row and column counts
func (t *Table) Shape() (rows, cols int) {
	return len(t.Rows), len(t.Schema.Columns)
}

// Column returns the declared column or a ColumnNotFoundError
func (t *Table) Column(name string) (*Column, error) {
	col := t.Schema.GetColumn(name)
	if col == nil {
		return nil, &errors.ColumnNotFoundError{TableName: t.Name, ColumnName: name}
	}
	return col, nil
}

// Values returns the cells of one column in row order; missing cells are nil
func (t *Table) Values(name string) ([]interface{}, error) {
	if _, err := t.Column(name); err != nil {
		return nil, err
	}
	values := make([]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row.Data[name]
	}
	return values, nil
}

// Append adds a row, copying it to prevent mutation of caller's data
func (t *Table) Append(row data.Row) {
	t.Rows = append(t.Rows, row.Copy())
}

// Copy returns a table that shares no schema slice or row map with t
func (t *Table) Copy() *Table {
	rows := make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = row.Copy()
	}
	return &Table{
		Name:   t.Name,
		Schema: t.Schema.Copy(),
		Rows:   rows,
	}
}

// Head returns a copy of the first n rows; n < 0 is treated as 0
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	out := &Table{Name: t.Name, Schema: t.Schema.Copy(), Rows: make([]data.Row, n)}
	for i := 0; i < n; i++ {
		out.Rows[i] = t.Rows[i].Copy()
	}
	return out
}

// Select returns a copy restricted to the given columns, in the given order
func (t *Table) Select(columns ...string) (*Table, error) {
	out := NewTable(t.Name)
	for _, name := range columns {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		out.Schema.Columns = append(out.Schema.Columns, *col)
	}
	out.Rows = make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		projected := make(map[string]interface{}, len(columns))
		for _, name := range columns {
			if val, exists := row.Data[name]; exists {
				projected[name] = val
			}
		}
		out.Rows[i] = data.NewRow(projected)
	}
	return out, nil
}

// Drop returns a copy without the given column
func (t *Table) Drop(name string) (*Table, error) {
	if _, err := t.Column(name); err != nil {
		return nil, err
	}
	out := t.Copy()
	cols := out.Schema.Columns[:0]
	for _, col := range out.Schema.Columns {
		if col.Name != name {
			cols = append(cols, col)
		}
	}
	out.Schema.Columns = cols
	for _, row := range out.Rows {
		delete(row.Data, name)
	}
	return out, nil
}
