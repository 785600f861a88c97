package testutil

import (
	"github.com/leengari/edakit/internal/domain/data"
	"github.com/leengari/edakit/internal/domain/schema"
)

// CreateSurveyTable creates a small survey table mixing numeric, flag and date columns.
// The "income" column holds a non-numeric string in row 1 and a missing value in row 3.
func CreateSurveyTable() *schema.Table {
	table := schema.NewTable("survey",
		schema.Column{Name: "id", Type: schema.ColumnTypeInt},
		schema.Column{Name: "income", Type: schema.ColumnTypeFloat},
		schema.Column{Name: "smoker", Type: schema.ColumnTypeText},
		schema.Column{Name: "region", Type: schema.ColumnTypeCategory},
		schema.Column{Name: "visit", Type: schema.ColumnTypeText},
	)
	rows := []map[string]interface{}{
		{"id": int64(1), "income": 1200.5, "smoker": "SI", "region": "norte", "visit": "20240105"},
		{"id": int64(2), "income": "abc", "smoker": "NO", "region": "sur", "visit": "20240231"},
		{"id": int64(3), "income": "980", "smoker": "SI", "region": "norte", "visit": "20231120"},
		{"id": int64(4), "smoker": "NO", "region": "centro", "visit": int64(20220714)},
		{"id": int64(5), "income": 3100.0, "smoker": "SI", "region": "norte", "visit": "not a date"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, data.NewRow(r))
	}
	return table
}

// CreateEmptyTable creates a table with columns but no rows
func CreateEmptyTable() *schema.Table {
	return schema.NewTable("empty",
		schema.Column{Name: "n", Type: schema.ColumnTypeInt},
		schema.Column{Name: "label", Type: schema.ColumnTypeText},
	)
}

// CreateColumnTable creates a single-column table from the given values
func CreateColumnTable(name string, colType schema.ColumnType, values ...interface{}) *schema.Table {
	table := schema.NewTable("single", schema.Column{Name: name, Type: colType})
	for _, v := range values {
		row := data.NewRow(nil)
		if v != nil {
			row.Set(name, v)
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
