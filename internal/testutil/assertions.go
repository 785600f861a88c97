package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leengari/edakit/internal/domain/schema"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnCount checks if a table has the expected number of columns
func AssertColumnCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, actual)
	}
}

// AssertSameShape checks that two tables have the same columns, in order, and the same row count
func AssertSameShape(t *testing.T, got, want *schema.Table, context string) {
	t.Helper()
	if diff := cmp.Diff(want.Schema.ColumnNames(), got.Schema.ColumnNames()); diff != "" {
		t.Errorf("%s: column mismatch (-want +got):\n%s", context, diff)
	}
	AssertRowCount(t, len(got.Rows), len(want.Rows), context)
}

// AssertColumn checks every cell of one column against the expected values
func AssertColumn(t *testing.T, table *schema.Table, column string, want []interface{}, context string) {
	t.Helper()
	got, err := table.Values(column)
	if err != nil {
		t.Fatalf("%s: %v", context, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s: column %q mismatch (-want +got):\n%s", context, column, diff)
	}
}

// AssertNoError stops the test when err is not nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}
