package writer

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/leengari/edakit/internal/domain/schema"
)

const maxSheetName = 31

var sheetNameReplacer = strings.NewReplacer(
	"[", "_", "]", "_", ":", "_", "*", "_", "?", "_", "/", "_", "\\", "_",
)

// ExportXLSX writes each table to its own sheet of a new workbook at path.
// Row 1 holds the column names; missing cells are left empty.
func ExportXLSX(path string, tables ...*schema.Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("nothing to export to %s", path)
	}

	f := excelize.NewFile()
	defer f.Close()

	used := make(map[string]bool)
	for i, t := range tables {
		sheet := sheetName(t.Name, used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
		}

		if err := writeSheet(f, sheet, t); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	slog.Info("workbook exported", slog.String("path", path), slog.Int("sheets", len(tables)))
	return nil
}

func writeSheet(f *excelize.File, sheet string, t *schema.Table) error {
	header := make([]interface{}, len(t.Schema.Columns))
	for i, col := range t.Schema.Columns {
		header[i] = col.Name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %q: %w", sheet, err)
	}

	for r, row := range t.Rows {
		cells := make([]interface{}, len(t.Schema.Columns))
		for c, col := range t.Schema.Columns {
			cells[c] = row.Data[col.Name]
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d of %q: %w", r, sheet, err)
		}
	}
	return nil
}

// sheetName makes a valid, unused sheet name out of a table name
func sheetName(name string, used map[string]bool) string {
	base := []rune(sheetNameReplacer.Replace(name))
	if len(base) == 0 {
		base = []rune("Sheet")
	}
	if len(base) > maxSheetName {
		base = base[:maxSheetName]
	}
	candidate := string(base)
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := "_" + strconv.Itoa(n)
		trimmed := base
		if len(trimmed)+len(suffix) > maxSheetName {
			trimmed = trimmed[:maxSheetName-len(suffix)]
		}
		candidate = string(trimmed) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}
