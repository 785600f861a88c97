package consistency_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/leengari/edakit/internal/consistency"
	"github.com/leengari/edakit/internal/domain/schema"
	"github.com/leengari/edakit/internal/testutil"
)

func TestCheckRows_PreservesShape(t *testing.T) {
	source := testutil.CreateSurveyTable()

	result := consistency.CheckRows(source)

	testutil.AssertSameShape(t, result, source, "survey check")
	assert.Equal(t, result.Name, source.Name)
	for _, col := range result.Schema.Columns {
		assert.Equal(t, col.Type, schema.ColumnTypeBool)
		for i, row := range result.Rows {
			_, isBool := row.Data[col.Name].(bool)
			assert.Assert(t, isBool, "row %d column %s is not a bool", i, col.Name)
		}
	}
}

func TestCheckRows_NumericColumnAllValid(t *testing.T) {
	source := testutil.CreateColumnTable("n", schema.ColumnTypeInt, int64(1), int64(2), int64(3))

	result := consistency.CheckRows(source)

	testutil.AssertColumn(t, result, "n", []interface{}{true, true, true}, "numeric column")
}

func TestCheckRows_NumericColumnWithText(t *testing.T) {
	source := testutil.CreateColumnTable("n", schema.ColumnTypeFloat, int64(1), "abc", int64(3))

	result := consistency.CheckRows(source)

	testutil.AssertColumn(t, result, "n", []interface{}{true, false, true}, "numeric column with text")
}

func TestCheckRows_MissingNumericCellIsInconsistent(t *testing.T) {
	source := testutil.CreateColumnTable("n", schema.ColumnTypeFloat, 1.5, nil, "2")

	result := consistency.CheckRows(source)

	testutil.AssertColumn(t, result, "n", []interface{}{true, false, true}, "missing numeric cell")
}

func TestCheckRows_TextColumnIsAlwaysConsistent(t *testing.T) {
	source := testutil.CreateColumnTable("flag", schema.ColumnTypeText, "SI", "NO", "SI")

	result := consistency.CheckRows(source)

	testutil.AssertColumn(t, result, "flag", []interface{}{true, true, true}, "text column")

	// the default check does not look at the stored kind
	mixed := testutil.CreateColumnTable("flag", schema.ColumnTypeText, "SI", int64(4), nil)
	testutil.AssertColumn(t, consistency.CheckRows(mixed), "flag", []interface{}{true, true, true}, "mixed text column")
}

func TestCheckRows_StrictText(t *testing.T) {
	text := testutil.CreateColumnTable("flag", schema.ColumnTypeCategory, "SI", int64(4), nil)
	testutil.AssertColumn(t, consistency.CheckRows(text, consistency.WithStrictText()),
		"flag", []interface{}{true, false, false}, "strict text column")

	dates := testutil.CreateColumnTable("day", schema.ColumnTypeDate,
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "20240105", "05/01/2024", int64(20240105))
	testutil.AssertColumn(t, consistency.CheckRows(dates, consistency.WithStrictText()),
		"day", []interface{}{true, true, false, false}, "strict date column")

	testutil.AssertColumn(t, consistency.CheckRows(dates, consistency.WithStrictText(), consistency.WithDateLayout("02/01/2006")),
		"day", []interface{}{true, false, true, false}, "strict date column with layout")
}

func TestCheckRows_EmptyTables(t *testing.T) {
	noRows := testutil.CreateEmptyTable()
	result := consistency.CheckRows(noRows)
	testutil.AssertSameShape(t, result, noRows, "zero rows")

	noColumns := schema.NewTable("bare")
	noColumns.Rows = append(noColumns.Rows, testutil.CreateEmptyTable().Rows...)
	result = consistency.CheckRows(noColumns)
	rows, cols := result.Shape()
	assert.Equal(t, rows, 0)
	assert.Equal(t, cols, 0)
}

func TestCheckRows_ZeroColumnsKeepsRowCount(t *testing.T) {
	source := testutil.CreateSurveyTable()
	bare, err := source.Select()
	assert.NilError(t, err)

	result := consistency.CheckRows(bare)

	rows, cols := result.Shape()
	assert.Equal(t, rows, len(source.Rows))
	assert.Equal(t, cols, 0)
}

func TestCheckRows_Deterministic(t *testing.T) {
	source := testutil.CreateSurveyTable()
	before := source.Copy()

	first := consistency.CheckRows(source)
	second := consistency.CheckRows(source)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated checks differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(before, source); diff != "" {
		t.Errorf("source table was modified (-before +after):\n%s", diff)
	}
}

func TestCheckRows_SurveyTable(t *testing.T) {
	result := consistency.CheckRows(testutil.CreateSurveyTable())

	testutil.AssertColumn(t, result, "id", []interface{}{true, true, true, true, true}, "id")
	testutil.AssertColumn(t, result, "income", []interface{}{true, false, true, false, true}, "income")
	testutil.AssertColumn(t, result, "smoker", []interface{}{true, true, true, true, true}, "smoker")
}
