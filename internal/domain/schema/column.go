package schema

// ColumnType is the declared element type of a column
type ColumnType string

const (
	ColumnTypeInt      ColumnType = "INT"
	ColumnTypeFloat    ColumnType = "FLOAT"
	ColumnTypeBool     ColumnType = "BOOL"
	ColumnTypeText     ColumnType = "TEXT"
	ColumnTypeCategory ColumnType = "CATEGORY"
	ColumnTypeDate     ColumnType = "DATE"
)

// IsNumeric reports whether values of this type are expected to be numbers.
// BOOL counts as numeric, like the boolean dtype of most dataframe libraries.
func (ct ColumnType) IsNumeric() bool {
	switch ct {
	case ColumnTypeInt, ColumnTypeFloat, ColumnTypeBool:
		return true
	default:
		return false
	}
}

// Valid reports whether ct is one of the known column types
func (ct ColumnType) Valid() bool {
	switch ct {
	case ColumnTypeInt, ColumnTypeFloat, ColumnTypeBool,
		ColumnTypeText, ColumnTypeCategory, ColumnTypeDate:
		return true
	default:
		return false
	}
}

type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}
