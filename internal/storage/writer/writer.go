package writer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leengari/edakit/internal/domain/schema"
	"github.com/leengari/edakit/internal/storage"
)

// SaveTable writes a table directory (meta.json and data.json) so LoadTable can read it back.
// Both files are written to a temp file first and renamed into place.
func SaveTable(t *schema.Table, dir string) error {
	if t == nil || dir == "" {
		return fmt.Errorf("cannot save table: nil or missing path")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create table directory %s: %w", dir, err)
	}

	// 1. Prepare meta
	meta := storage.TableMeta{
		Name:     t.Name,
		RowCount: int64(len(t.Rows)),
		Columns:  make([]storage.ColumnMeta, len(t.Schema.Columns)),
	}
	for i, col := range t.Schema.Columns {
		meta.Columns[i] = storage.ColumnMeta{Name: col.Name, Type: string(col.Type)}
	}

	// 2. Marshal meta
	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal table meta for %s: %w", t.Name, err)
	}

	// 3. Marshal data (rows)
	dataBytes, err := json.MarshalIndent(t.Rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rows for %s: %w", t.Name, err)
	}

	// 4. Write both files using temp + atomic rename
	files := []struct {
		path string
		data []byte
		name string
	}{
		{filepath.Join(dir, "meta.json"), metaBytes, "meta.json"},
		{filepath.Join(dir, "data.json"), dataBytes, "data.json"},
	}

	for _, f := range files {
		tmpPath := f.path + ".tmp"

		if err := os.WriteFile(tmpPath, f.data, 0644); err != nil {
			return fmt.Errorf("failed to write temp file %s for table %s: %w", f.name, t.Name, err)
		}

		if err := os.Rename(tmpPath, f.path); err != nil {
			return fmt.Errorf("failed to rename temp → %s for table %s: %w", f.name, t.Name, err)
		}
	}

	slog.Info("table saved",
		slog.String("table", t.Name),
		slog.String("path", dir),
		slog.Int("rows", len(t.Rows)),
	)
	return nil
}
