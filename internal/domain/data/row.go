package data

import (
	"encoding/json"
)

// Row represents a single table row
// Key = column name, Value = cell value (nil or absent means missing)
type Row struct {
	Data map[string]interface{}
}

// NewRow creates a new Row with the given data
func NewRow(data map[string]interface{}) Row {
	if data == nil {
		data = make(map[string]interface{})
	}
	return Row{Data: data}
}

// Get returns the cell value for a column and whether it is present and non-nil
func (r Row) Get(column string) (interface{}, bool) {
	val, exists := r.Data[column]
	if !exists || val == nil {
		return nil, false
	}
	return val, true
}

// Set adds or updates a cell value
func (r Row) Set(column string, value interface{}) {
	r.Data[column] = value
}

// Copy creates a copy of the row so callers never share a map
func (r Row) Copy() Row {
	copy := make(map[string]interface{}, len(r.Data))
	for k, v := range r.Data {
		copy[k] = v
	}
	return Row{Data: copy}
}

// UnmarshalJSON implements json.Unmarshaler interface
// This allows Row to be unmarshaled from JSON as a map
func (r *Row) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	r.Data = m
	return nil
}

// MarshalJSON implements json.Marshaler interface
// This allows Row to be marshaled to JSON as a map
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Data)
}
