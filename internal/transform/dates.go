package transform

import (
	"github.com/leengari/edakit/internal/convert"
	"github.com/leengari/edakit/internal/domain/schema"
)

// ColumnsToDate parses each named column with layout (convert.DefaultDateLayout
// when empty) and declares it DATE. Cells that do not parse become missing.
// The source table is not modified.
func ColumnsToDate(t *schema.Table, columns []string, layout string) (*schema.Table, error) {
	if layout == "" {
		layout = convert.DefaultDateLayout
	}
	if err := requireColumns(t, columns); err != nil {
		return nil, err
	}

	out := t.Copy()
	for _, name := range columns {
		out.Schema.GetColumn(name).Type = schema.ColumnTypeDate
		for _, row := range out.Rows {
			if d, ok := convert.ParseDate(row.Data[name], layout); ok {
				row.Set(name, d)
			} else {
				row.Set(name, nil)
			}
		}
	}
	return out, nil
}
