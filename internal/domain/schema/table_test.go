package schema_test

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/edakit/internal/domain/data"
	domainerrors "github.com/leengari/edakit/internal/domain/errors"
	"github.com/leengari/edakit/internal/domain/schema"
)

func newPeopleTable() *schema.Table {
	table := schema.NewTable("people",
		schema.Column{Name: "name", Type: schema.ColumnTypeText},
		schema.Column{Name: "age", Type: schema.ColumnTypeInt},
	)
	table.Append(data.NewRow(map[string]interface{}{"name": "ana", "age": int64(31)}))
	table.Append(data.NewRow(map[string]interface{}{"name": "luis", "age": int64(42)}))
	table.Append(data.NewRow(map[string]interface{}{"name": "eva"}))
	return table
}

func TestColumnType_IsNumeric(t *testing.T) {
	assert.Assert(t, schema.ColumnTypeInt.IsNumeric())
	assert.Assert(t, schema.ColumnTypeFloat.IsNumeric())
	assert.Assert(t, schema.ColumnTypeBool.IsNumeric())
	assert.Assert(t, !schema.ColumnTypeText.IsNumeric())
	assert.Assert(t, !schema.ColumnTypeCategory.IsNumeric())
	assert.Assert(t, !schema.ColumnTypeDate.IsNumeric())
	assert.Assert(t, !schema.ColumnType("BLOB").Valid())
}

func TestTable_Values(t *testing.T) {
	table := newPeopleTable()

	values, err := table.Values("age")
	assert.NilError(t, err)
	assert.DeepEqual(t, values, []interface{}{int64(31), int64(42), nil})

	_, err = table.Values("missing")
	var notFound *domainerrors.ColumnNotFoundError
	assert.Assert(t, errors.As(err, &notFound))
	assert.Equal(t, notFound.ColumnName, "missing")
}

func TestTable_CopyIsIndependent(t *testing.T) {
	table := newPeopleTable()
	clone := table.Copy()

	clone.Rows[0].Set("name", "changed")
	clone.Schema.Columns[0].Type = schema.ColumnTypeCategory

	assert.Equal(t, table.Rows[0].Data["name"], "ana")
	assert.Equal(t, table.Schema.Columns[0].Type, schema.ColumnTypeText)
}

func TestTable_Head(t *testing.T) {
	table := newPeopleTable()

	rows, cols := table.Head(2).Shape()
	assert.Equal(t, rows, 2)
	assert.Equal(t, cols, 2)

	rows, _ = table.Head(10).Shape()
	assert.Equal(t, rows, 3)

	rows, _ = table.Head(-1).Shape()
	assert.Equal(t, rows, 0)
}

func TestTable_SelectAndDrop(t *testing.T) {
	table := newPeopleTable()

	selected, err := table.Select("age")
	assert.NilError(t, err)
	assert.DeepEqual(t, selected.Schema.ColumnNames(), []string{"age"})
	_, hasName := selected.Rows[0].Data["name"]
	assert.Assert(t, !hasName)

	dropped, err := table.Drop("age")
	assert.NilError(t, err)
	assert.DeepEqual(t, dropped.Schema.ColumnNames(), []string{"name"})
	_, hasAge := dropped.Rows[0].Data["age"]
	assert.Assert(t, !hasAge)

	// source untouched
	assert.DeepEqual(t, table.Schema.ColumnNames(), []string{"name", "age"})
}
