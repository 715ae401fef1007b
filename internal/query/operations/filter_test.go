package operations_test

import (
	goerrors "errors"
	"reflect"
	"testing"

	"github.com/leengari/mini-colstore/internal/domain/column"
	"github.com/leengari/mini-colstore/internal/domain/errors"
	"github.com/leengari/mini-colstore/internal/query/operations"
	"github.com/leengari/mini-colstore/internal/query/operations/testutil"
)

func TestFilter_GreaterThan(t *testing.T) {
	tbl := testutil.MustTable(t, "T",
		column.NewInt64("id", []int64{1, 2, 3}),
		column.NewInt64("val", []int64{10, 20, 30}),
	)

	result, err := operations.Filter(tbl, "val", operations.OpGt, int64(15))
	testutil.AssertNoError(t, err, "filter val > 15")
	testutil.AssertRowCount(t, result, 2, "filter val > 15")
	testutil.AssertColumnValues(t, result, "id", []any{int64(2), int64(3)}, "filter val > 15")
	testutil.AssertColumnValues(t, result, "val", []any{int64(20), int64(30)}, "filter val > 15")
	testutil.AssertShapeInvariant(t, result, "filter val > 15")
}

func TestFilter_AllOperators(t *testing.T) {
	tbl := testutil.MustTable(t, "T", column.NewInt64("v", []int64{1, 2, 3}))

	cases := []struct {
		op   operations.Operator
		want []any
	}{
		{operations.OpEq, []any{int64(2)}},
		{operations.OpNe, []any{int64(1), int64(3)}},
		{operations.OpLt, []any{int64(1)}},
		{operations.OpLe, []any{int64(1), int64(2)}},
		{operations.OpGt, []any{int64(3)}},
		{operations.OpGe, []any{int64(2), int64(3)}},
	}
	for _, tc := range cases {
		result, err := operations.Filter(tbl, "v", tc.op, int64(2))
		testutil.AssertNoError(t, err, tc.op.String())
		testutil.AssertColumnValues(t, result, "v", tc.want, tc.op.String())
	}
}

func TestFilter_Idempotent(t *testing.T) {
	tbl := testutil.UsersTable(t)

	once, err := operations.Filter(tbl, "age", operations.OpGe, int64(30))
	testutil.AssertNoError(t, err, "first filter")
	twice, err := operations.Filter(once, "age", operations.OpGe, int64(30))
	testutil.AssertNoError(t, err, "second filter")

	testutil.AssertRowCount(t, twice, once.RowCount, "idempotence")
	for _, name := range once.ColumnNames() {
		a, _ := once.Column(name)
		b, _ := twice.Column(name)
		if !reflect.DeepEqual(a.Values(), b.Values()) {
			t.Errorf("column '%s' changed on second filter", name)
		}
	}
}

func TestFilter_Utf8AndBool(t *testing.T) {
	tbl := testutil.UsersTable(t)

	byName, err := operations.Filter(tbl, "username", operations.OpEq, "bob")
	testutil.AssertNoError(t, err, "filter by username")
	testutil.AssertColumnValues(t, byName, "id", []any{int64(2)}, "filter by username")

	premium, err := operations.Filter(tbl, "premium", operations.OpEq, true)
	testutil.AssertNoError(t, err, "filter premium")
	testutil.AssertColumnValues(t, premium, "id", []any{int64(1), int64(3)}, "filter premium")
}

func TestFilter_NumericCrossCompare(t *testing.T) {
	tbl := testutil.MustTable(t, "T", column.NewInt64("v", []int64{1, 2, 3}))

	// float probe against an Int64 column compares in float64
	result, err := operations.Filter(tbl, "v", operations.OpGt, 1.5)
	testutil.AssertNoError(t, err, "float probe on int column")
	testutil.AssertColumnValues(t, result, "v", []any{int64(2), int64(3)}, "float probe on int column")

	floats := testutil.MustTable(t, "F", column.NewFloat64("v", []float64{0.5, 1.5}))
	result, err = operations.Filter(floats, "v", operations.OpLt, int64(1))
	testutil.AssertNoError(t, err, "int probe on float column")
	testutil.AssertColumnValues(t, result, "v", []any{0.5}, "int probe on float column")
}

func TestFilter_TypeMismatchBeforeScan(t *testing.T) {
	tbl := testutil.UsersTable(t)

	_, err := operations.Filter(tbl, "age", operations.OpEq, "thirty")
	var mismatch *errors.TypeMismatchError
	if !goerrors.As(err, &mismatch) {
		t.Errorf("expected TypeMismatchError, got %v", err)
	}

	_, err = operations.Filter(tbl, "premium", operations.OpEq, int64(1))
	if !goerrors.As(err, &mismatch) {
		t.Errorf("bool column with int probe: expected TypeMismatchError, got %v", err)
	}
}

func TestFilter_ColumnNotFound(t *testing.T) {
	tbl := testutil.UsersTable(t)
	_, err := operations.Filter(tbl, "salary", operations.OpGt, int64(0))
	var notFound *errors.ColumnNotFoundError
	if !goerrors.As(err, &notFound) {
		t.Errorf("expected ColumnNotFoundError, got %v", err)
	}
}

func TestFilter_EmptyResult(t *testing.T) {
	tbl := testutil.UsersTable(t)
	result, err := operations.Filter(tbl, "age", operations.OpGt, int64(100))
	testutil.AssertNoError(t, err, "empty filter")
	testutil.AssertRowCount(t, result, 0, "empty filter")
	testutil.AssertShapeInvariant(t, result, "empty filter")
}

func TestParseOperator(t *testing.T) {
	for _, s := range []string{"==", "!=", "<", "<=", ">", ">="} {
		op, err := operations.ParseOperator(s)
		testutil.AssertNoError(t, err, s)
		if op.String() != s {
			t.Errorf("round trip for %s gave %s", s, op.String())
		}
	}
	_, err := operations.ParseOperator("=")
	var unsupported *errors.UnsupportedOperatorError
	if !goerrors.As(err, &unsupported) {
		t.Errorf("expected UnsupportedOperatorError, got %v", err)
	}
}

// TestFilter_LargeTableMatchesSerialSemantics exercises the chunked
// concurrent mask path above the parallel threshold.
func TestFilter_LargeTableMatchesSerialSemantics(t *testing.T) {
	const n = 10_000
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = int64(i % 97)
	}
	tbl := testutil.MustTable(t, "big", column.NewInt64("v", vals))

	result, err := operations.Filter(tbl, "v", operations.OpLt, int64(10))
	testutil.AssertNoError(t, err, "large filter")

	col, _ := result.Column("v")
	for i, v := range col.Ints {
		if v >= 10 {
			t.Fatalf("row %d: value %d violates predicate", i, v)
		}
	}

	want := 0
	for _, v := range vals {
		if v < 10 {
			want++
		}
	}
	testutil.AssertRowCount(t, result, want, "large filter")
}
