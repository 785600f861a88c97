package errors

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestConstraintError_Message(t *testing.T) {
	err := NewTypeMismatch("sales", "amount", "abc", "FLOAT", 1)
	assert.Equal(t, err.Error(), "constraint violation in sales.amount - (type_mismatch) - value=abc - expected FLOAT, got string - at row 1")
}

func TestConstraintError_UnknownRow(t *testing.T) {
	err := NewDuplicateColumn("sales", "SI")
	assert.Equal(t, err.Error(), "constraint violation in sales.SI - (duplicate_column) - column already exists")
}

func TestColumnNotFoundError_Message(t *testing.T) {
	err := &ColumnNotFoundError{TableName: "sales", ColumnName: "missing"}
	assert.Equal(t, err.Error(), `column "missing" not found in table "sales"`)

	err = &ColumnNotFoundError{ColumnName: "missing"}
	assert.Equal(t, err.Error(), `column "missing" not found`)
}
