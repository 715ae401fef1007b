package testutil

import (
	"reflect"
	"testing"

	"github.com/leengari/mini-colstore/internal/domain/schema"
)

// AssertRowCount checks if the table has the expected number of rows
func AssertRowCount(t *testing.T, tbl *schema.Table, expected int, context string) {
	t.Helper()
	if tbl.RowCount != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, tbl.RowCount)
	}
}

// AssertColumnNames checks the table's projection order
func AssertColumnNames(t *testing.T, tbl *schema.Table, expected []string, context string) {
	t.Helper()
	got := tbl.ColumnNames()
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("%s: expected columns %v, got %v", context, expected, got)
	}
}

// AssertColumnValues checks a single column's materialized values
func AssertColumnValues(t *testing.T, tbl *schema.Table, name string, expected []any, context string) {
	t.Helper()
	col, err := tbl.Column(name)
	if err != nil {
		t.Errorf("%s: %v", context, err)
		return
	}
	got := col.Values()
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("%s: column '%s': expected %v, got %v", context, name, expected, got)
	}
}

// AssertShapeInvariant checks that every column's length equals RowCount
func AssertShapeInvariant(t *testing.T, tbl *schema.Table, context string) {
	t.Helper()
	for _, col := range tbl.Columns() {
		if col.Len() != tbl.RowCount {
			t.Errorf("%s: column '%s' has %d values but table has %d rows",
				context, col.Name, col.Len(), tbl.RowCount)
		}
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}
