package schema

// TableSchema represents table metadata (from meta.json or inferred on load)
type TableSchema struct {
	TableName string
	Columns   []Column
}

// GetColumn returns the column with the given name, or nil
func (s *TableSchema) GetColumn(name string) *Column {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return &s.Columns[i]
		}
	}
	return nil
}

// ColumnNames returns column names in schema order
func (s *TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}

// Copy returns a schema that shares nothing with s
func (s *TableSchema) Copy() *TableSchema {
	cols := make([]Column, len(s.Columns))
	copy(cols, s.Columns)
	return &TableSchema{TableName: s.TableName, Columns: cols}
}
