package errors

import (
	"fmt"
	"strings"
)

// ColumnNotFoundError is returned when a helper is asked for a column the table does not have
type ColumnNotFoundError struct {
	TableName  string
	ColumnName string
}

func (e *ColumnNotFoundError) Error() string {
	if e.TableName == "" {
		return fmt.Sprintf("column %q not found", e.ColumnName)
	}
	return fmt.Sprintf("column %q not found in table %q", e.ColumnName, e.TableName)
}

// ConstraintError represents a cell or column that breaks a rule of its table
// ("type_mismatch", "duplicate_column", ...)
type ConstraintError struct {
	Table      string      // table name
	Column     string      // column name (empty if table-level constraint)
	Value      interface{} // offending value (may be nil)
	Constraint string      // "type_mismatch", "duplicate_column", etc.
	Reason     string      // human-readable explanation (optional)
	RowIndex   int         // row number (0-based) where violation occurred (-1 if unknown)
}

func (e *ConstraintError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("constraint violation in %s.%s", e.Table, e.Column))

	if e.Constraint != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Constraint))
	}

	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.RowIndex >= 0 {
		parts = append(parts, fmt.Sprintf("at row %d", e.RowIndex))
	}

	return strings.Join(parts, " - ")
}

// NewTypeMismatch builds the error reported for a cell whose value does not
// match its column's declared type
func NewTypeMismatch(table, column string, value interface{}, expectedType string, rowIndex int) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Value:      value,
		Constraint: "type_mismatch",
		Reason:     fmt.Sprintf("expected %s, got %T", expectedType, value),
		RowIndex:   rowIndex,
	}
}

// NewDuplicateColumn builds the error reported when a derived column would
// shadow an existing one
func NewDuplicateColumn(table, column string) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Constraint: "duplicate_column",
		Reason:     "column already exists",
		RowIndex:   -1,
	}
}
