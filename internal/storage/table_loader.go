package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leengari/edakit/internal/convert"
	"github.com/leengari/edakit/internal/domain/data"
	"github.com/leengari/edakit/internal/domain/schema"
)

// LoadTable loads a table directory: meta.json (name and typed columns) and an
// optional data.json (array of row objects).
// Numbers are normalised to the declared column type where they fit; any other
// value is kept as decoded so the consistency checker can report it.
func LoadTable(path string, dateLayout string) (*schema.Table, error) {
	sch, err := LoadSchema(filepath.Join(path, "meta.json"))
	if err != nil {
		return nil, err
	}

	table := &schema.Table{
		Name:   sch.TableName,
		Schema: sch,
		Rows:   []data.Row{},
	}

	dataPath := filepath.Join(path, "data.json")
	if _, err := os.Stat(dataPath); err == nil {
		dataBytes, err := os.ReadFile(dataPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", dataPath, err)
		}

		var raw []map[string]interface{}
		dec := json.NewDecoder(bytes.NewReader(dataBytes))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", dataPath, err)
		}

		for _, values := range raw {
			row := data.NewRow(make(map[string]interface{}, len(values)))
			for name, val := range values {
				colType := schema.ColumnTypeText
				if col := sch.GetColumn(name); col != nil {
					colType = col.Type
				}
				row.Set(name, convert.Normalize(val, colType, dateLayout))
			}
			table.Rows = append(table.Rows, row)
		}
	}

	slog.Info("table loaded",
		slog.String("table", table.Name),
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)),
	)

	return table, nil
}

// LoadSchema reads a meta.json file into a TableSchema
func LoadSchema(metaPath string) (*schema.TableSchema, error) {
	metaBytes, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read table meta: %w", err)
	}

	var meta TableMeta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse table meta %s: %w", metaPath, err)
	}

	sch := &schema.TableSchema{
		TableName: meta.Name,
		Columns:   make([]schema.Column, 0, len(meta.Columns)),
	}
	for _, c := range meta.Columns {
		colType := schema.ColumnType(c.Type)
		if !colType.Valid() {
			return nil, fmt.Errorf("column %s: unknown column type %q", c.Name, c.Type)
		}
		sch.Columns = append(sch.Columns, schema.Column{Name: c.Name, Type: colType})
	}
	return sch, nil
}
