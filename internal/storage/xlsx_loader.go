package storage

import (
	"fmt"
	"log/slog"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"

	"github.com/leengari/edakit/internal/domain/schema"
)

// LoadXLSX reads one sheet of a workbook (the first one when sheet is empty).
// The first row holds the column names; short rows are padded with empty cells.
func LoadXLSX(path, sheet string, declared *schema.TableSchema, dateLayout string) (*schema.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	width := len(rows[0])
	records := make([][]string, len(rows))
	for i, row := range rows {
		record := make([]string, width)
		copy(record, row)
		for j, cell := range record {
			// boolean cells are rendered upper case
			switch cell {
			case "TRUE":
				record[j] = "true"
			case "FALSE":
				record[j] = "false"
			}
		}
		records[i] = record
	}

	name := sheet
	if declared != nil && declared.TableName != "" {
		name = declared.TableName
	}
	var table *schema.Table
	if len(records) == 1 {
		table, err = EmptyTable(name, records[0], declared)
	} else {
		table, err = FromDataFrame(name, dataframe.LoadRecords(records, rawOptions()...), declared, dateLayout)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("sheet loaded",
		slog.String("table", table.Name),
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("rows", len(table.Rows)),
	)
	return table, nil
}
