package consistency

import (
	"github.com/leengari/edakit/internal/domain/errors"
	"github.com/leengari/edakit/internal/domain/schema"
)

// Cell addresses one cell of a table
type Cell struct {
	Row    int
	Column string
}

// ColumnSummary counts consistent and inconsistent cells of one column
type ColumnSummary struct {
	Column       string
	Type         schema.ColumnType
	Consistent   int
	Inconsistent int
}

// Report is the outcome of checking a table
type Report struct {
	Table      string
	Rows       int
	Columns    []ColumnSummary
	Mismatches []*errors.ConstraintError
}

// Inconsistencies lists the false cells of a consistency table, column by column
func Inconsistencies(check *schema.Table) []Cell {
	var cells []Cell
	for _, col := range check.Schema.Columns {
		for i, row := range check.Rows {
			if ok, _ := row.Data[col.Name].(bool); !ok {
				cells = append(cells, Cell{Row: i, Column: col.Name})
			}
		}
	}
	return cells
}

// Summarize pairs a source table with its consistency table and describes every
// inconsistent cell as a type_mismatch ConstraintError carrying the source value
func Summarize(source, check *schema.Table) *Report {
	report := &Report{
		Table: source.Name,
		Rows:  len(source.Rows),
	}

	for _, col := range source.Schema.Columns {
		summary := ColumnSummary{Column: col.Name, Type: col.Type}
		for i, row := range check.Rows {
			if ok, _ := row.Data[col.Name].(bool); ok {
				summary.Consistent++
				continue
			}
			summary.Inconsistent++
			report.Mismatches = append(report.Mismatches,
				errors.NewTypeMismatch(source.Name, col.Name, source.Rows[i].Data[col.Name], string(col.Type), i))
		}
		report.Columns = append(report.Columns, summary)
	}

	return report
}

// Consistent reports whether no inconsistent cell was found
func (r *Report) Consistent() bool {
	return len(r.Mismatches) == 0
}
