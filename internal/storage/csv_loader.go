package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/leengari/edakit/internal/domain/schema"
)

// LoadCSV reads a CSV file with a header row. Column types come from declared
// when given, otherwise they are inferred; see FromDataFrame.
func LoadCSV(path string, declared *schema.TableSchema, dateLayout string) (*schema.Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	name := tableName(path, declared)
	raw := dataframe.ReadCSV(bytes.NewReader(content), rawOptions()...)
	var table *schema.Table
	if header, ok := headerOnly(content); ok && raw.Err != nil {
		table, err = EmptyTable(name, header, declared)
	} else {
		table, err = FromDataFrame(name, raw, declared, dateLayout)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("csv loaded",
		slog.String("table", table.Name),
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.Schema.Columns)),
	)
	return table, nil
}

// tableName prefers the declared schema's name, then the file name without extension
func tableName(path string, declared *schema.TableSchema) string {
	if declared != nil && declared.TableName != "" {
		return declared.TableName
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// headerOnly returns the header of CSV content that has no data rows
func headerOnly(content []byte) ([]string, bool) {
	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	if err != nil || len(records) != 1 {
		return nil, false
	}
	return records[0], true
}
