package storage

// TableMeta is the content of a table directory's meta.json
type TableMeta struct {
	Name     string       `json:"name"`
	Columns  []ColumnMeta `json:"columns"`
	RowCount int64        `json:"row_count,omitempty"`
}

// ColumnMeta declares one column of a table
type ColumnMeta struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
