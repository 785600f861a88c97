package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leengari/edakit/internal/domain/schema"
)

// InputOptions selects how an input path is read
type InputOptions struct {
	Sheet      string              // XLSX sheet; first sheet when empty
	Schema     *schema.TableSchema // declared types for CSV/XLSX; inferred when nil
	DateLayout string
}

// LoadInput loads a table from a table directory, a .csv file or a .xlsx file
func LoadInput(path string, opts InputOptions) (*schema.Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if info.IsDir() {
		return LoadTable(path, opts.DateLayout)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path, opts.Schema, opts.DateLayout)
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, opts.Sheet, opts.Schema, opts.DateLayout)
	default:
		return nil, fmt.Errorf("unsupported input %s: expected a table directory, .csv or .xlsx", path)
	}
}
