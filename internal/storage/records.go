package storage

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/leengari/edakit/internal/convert"
	"github.com/leengari/edakit/internal/domain/data"
	"github.com/leengari/edakit/internal/domain/errors"
	"github.com/leengari/edakit/internal/domain/schema"
)

// missingMarkers are the cell texts read as missing values
var missingMarkers = []string{"", "NA", "N/A", "NaN", "nan", "NULL", "null"}

// rawOptions loads every column as text so no cell is coerced on the way in
func rawOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingMarkers),
	}
}

// InferSchema declares each column of a raw text dataframe with the type gota
// detects for it: int → INT, float → FLOAT, bool → BOOL, anything else → TEXT
func InferSchema(name string, raw dataframe.DataFrame) (*schema.TableSchema, error) {
	typed := dataframe.LoadRecords(raw.Records(),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues([]string{"NaN"}),
	)
	if typed.Err != nil {
		return nil, fmt.Errorf("failed to detect column types: %w", typed.Err)
	}

	sch := &schema.TableSchema{TableName: name}
	types := typed.Types()
	for i, colName := range typed.Names() {
		sch.Columns = append(sch.Columns, schema.Column{Name: colName, Type: fromSeriesType(types[i])})
	}
	return sch, nil
}

func fromSeriesType(t series.Type) schema.ColumnType {
	switch t {
	case series.Int:
		return schema.ColumnTypeInt
	case series.Float:
		return schema.ColumnTypeFloat
	case series.Bool:
		return schema.ColumnTypeBool
	default:
		return schema.ColumnTypeText
	}
}

// FromDataFrame builds a table from a dataframe of raw text cells.
// With a nil declared schema the column types are inferred; otherwise every
// declared column must be present and undeclared columns are read as TEXT.
// Cells are converted to their column type when possible and kept as text
// otherwise; NA cells become missing.
func FromDataFrame(name string, raw dataframe.DataFrame, declared *schema.TableSchema, dateLayout string) (*schema.Table, error) {
	if raw.Err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, raw.Err)
	}

	var sch *schema.TableSchema
	if declared == nil {
		inferred, err := InferSchema(name, raw)
		if err != nil {
			return nil, err
		}
		sch = inferred
	} else {
		var err error
		if sch, err = declaredSchema(name, raw.Names(), declared); err != nil {
			return nil, err
		}
	}

	table := &schema.Table{
		Name:   name,
		Schema: sch,
		Rows:   make([]data.Row, raw.Nrow()),
	}
	for i := range table.Rows {
		table.Rows[i] = data.NewRow(make(map[string]interface{}, len(sch.Columns)))
	}

	for _, col := range sch.Columns {
		s := raw.Col(col.Name)
		for i := 0; i < s.Len(); i++ {
			elem := s.Elem(i)
			if elem.IsNA() {
				table.Rows[i].Set(col.Name, nil)
				continue
			}
			table.Rows[i].Set(col.Name, convert.FromText(elem.String(), col.Type, dateLayout))
		}
	}

	return table, nil
}

// declaredSchema types the header columns from declared; undeclared columns
// are TEXT and every declared column must appear in the header
func declaredSchema(name string, header []string, declared *schema.TableSchema) (*schema.TableSchema, error) {
	sch := &schema.TableSchema{TableName: name}
	present := make(map[string]bool)
	for _, colName := range header {
		present[colName] = true
		colType := schema.ColumnTypeText
		if col := declared.GetColumn(colName); col != nil {
			colType = col.Type
		}
		sch.Columns = append(sch.Columns, schema.Column{Name: colName, Type: colType})
	}
	for _, col := range declared.Columns {
		if !present[col.Name] {
			return nil, &errors.ColumnNotFoundError{TableName: name, ColumnName: col.Name}
		}
	}
	return sch, nil
}

// EmptyTable builds a zero-row table from a header. Columns take their declared
// types when declared is given and are TEXT otherwise, since there are no
// cells to infer from.
func EmptyTable(name string, header []string, declared *schema.TableSchema) (*schema.Table, error) {
	if declared != nil {
		sch, err := declaredSchema(name, header, declared)
		if err != nil {
			return nil, err
		}
		return &schema.Table{Name: name, Schema: sch, Rows: []data.Row{}}, nil
	}

	cols := make([]schema.Column, len(header))
	for i, colName := range header {
		cols[i] = schema.Column{Name: colName, Type: schema.ColumnTypeText}
	}
	return schema.NewTable(name, cols...), nil
}
