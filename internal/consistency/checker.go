// Package consistency reports, cell by cell, whether a table's values agree
// with the types declared for their columns.
//
// Numeric columns are checked by reinterpreting every value as a number: a cell
// is consistent when reinterpretation succeeds and does not yield a missing
// value. Cells that were already missing are therefore inconsistent too.
//
// Non-numeric columns are not validated by default: every cell is reported as
// consistent, since the only thing checked is that the value is stored in a
// generic column. WithStrictText enables a real check for those columns.
package consistency

import (
	"time"

	"github.com/leengari/edakit/internal/convert"
	"github.com/leengari/edakit/internal/domain/data"
	"github.com/leengari/edakit/internal/domain/schema"
)

type options struct {
	strictText bool
	dateLayout string
}

// Option configures CheckRows
type Option func(*options)

// WithStrictText makes non-numeric columns validate their values:
// TEXT and CATEGORY cells must hold a string, DATE cells a time.Time or a
// string in the date layout. Missing cells are inconsistent.
func WithStrictText() Option {
	return func(o *options) { o.strictText = true }
}

// WithDateLayout sets the layout accepted for DATE strings in strict mode
func WithDateLayout(layout string) Option {
	return func(o *options) { o.dateLayout = layout }
}

// CheckRows returns a table with the same name, columns and row order as t
// where every cell is a bool: true when the source cell is consistent with
// its column's declared type. The source table is not modified.
func CheckRows(t *schema.Table, opts ...Option) *schema.Table {
	o := options{dateLayout: convert.DefaultDateLayout}
	for _, opt := range opts {
		opt(&o)
	}

	result := &schema.Table{
		Name:   t.Name,
		Schema: &schema.TableSchema{TableName: t.Name, Columns: make([]schema.Column, len(t.Schema.Columns))},
		Rows:   make([]data.Row, len(t.Rows)),
	}
	for i := range result.Rows {
		result.Rows[i] = data.NewRow(make(map[string]interface{}, len(t.Schema.Columns)))
	}

	for c, col := range t.Schema.Columns {
		result.Schema.Columns[c] = schema.Column{Name: col.Name, Type: schema.ColumnTypeBool}

		check := cellCheck(col.Type, o)
		for i, row := range t.Rows {
			result.Rows[i].Data[col.Name] = check(row.Data[col.Name])
		}
	}

	return result
}

func cellCheck(colType schema.ColumnType, o options) func(interface{}) bool {
	if colType.IsNumeric() {
		return func(v interface{}) bool {
			_, ok := convert.ToNumeric(v)
			return ok
		}
	}
	if !o.strictText {
		return func(interface{}) bool { return true }
	}
	if colType == schema.ColumnTypeDate {
		return func(v interface{}) bool {
			switch v.(type) {
			case time.Time:
				return true
			case string:
				_, ok := convert.ParseDate(v, o.dateLayout)
				return ok
			}
			return false
		}
	}
	return func(v interface{}) bool {
		_, ok := v.(string)
		return ok
	}
}
