package join_test

import (
	goerrors "errors"
	"testing"

	"github.com/leengari/mini-colstore/internal/domain/column"
	"github.com/leengari/mini-colstore/internal/domain/errors"
	"github.com/leengari/mini-colstore/internal/query/operations/join"
	"github.com/leengari/mini-colstore/internal/query/operations/testutil"
)

func TestInnerJoin_Basic(t *testing.T) {
	users := testutil.UsersTable(t)
	orders := testutil.OrdersTable(t)

	result, err := join.ExecuteJoin(users, orders, []string{"id"}, []string{"user_id"}, join.JoinTypeInner)
	if err != nil {
		t.Fatalf("inner join failed: %v", err)
	}

	// alice has 2 orders, bob has 1; charlie/diana have none, order 103 has no user
	testutil.AssertRowCount(t, result, 3, "inner join")
	testutil.AssertColumnValues(t, result, "id", []any{int64(1), int64(1), int64(2)}, "inner join probe order")
	testutil.AssertColumnValues(t, result, "product", []any{"Laptop", "Mouse", "Keyboard"}, "inner join build order")
	testutil.AssertShapeInvariant(t, result, "inner join")
}

func TestInnerJoin_OutputSchema(t *testing.T) {
	users := testutil.UsersTable(t)
	orders := testutil.OrdersTable(t)

	result, err := join.ExecuteJoin(users, orders, []string{"id"}, []string{"user_id"}, join.JoinTypeInner)
	if err != nil {
		t.Fatalf("inner join failed: %v", err)
	}

	// left columns in original order, then right columns in original order
	testutil.AssertColumnNames(t, result,
		[]string{"id", "username", "age", "score", "premium", "order_id", "user_id", "product", "amount"},
		"join output schema")
}

func TestLeftJoin_SentinelFill(t *testing.T) {
	users := testutil.UsersTable(t)
	orders := testutil.OrdersTable(t)

	result, err := join.ExecuteJoin(users, orders, []string{"id"}, []string{"user_id"}, join.JoinTypeLeft)
	if err != nil {
		t.Fatalf("left join failed: %v", err)
	}

	// 3 matches plus unmatched charlie and diana
	testutil.AssertRowCount(t, result, 5, "left join")
	testutil.AssertColumnValues(t, result, "id",
		[]any{int64(1), int64(1), int64(2), int64(3), int64(4)}, "left join ids")
	// unmatched right columns carry dtype sentinels
	testutil.AssertColumnValues(t, result, "product",
		[]any{"Laptop", "Mouse", "Keyboard", "", ""}, "left join sentinel text")
	testutil.AssertColumnValues(t, result, "amount",
		[]any{999.99, 25.50, 75.00, 0.0, 0.0}, "left join sentinel float")
}

func TestRightJoin_UnmatchedBuildRows(t *testing.T) {
	users := testutil.UsersTable(t)
	orders := testutil.OrdersTable(t)

	result, err := join.ExecuteJoin(users, orders, []string{"id"}, []string{"user_id"}, join.JoinTypeRight)
	if err != nil {
		t.Fatalf("right join failed: %v", err)
	}

	// 3 matches plus order 103 (user 5 does not exist), appended last
	testutil.AssertRowCount(t, result, 4, "right join")
	testutil.AssertColumnValues(t, result, "order_id",
		[]any{int64(100), int64(101), int64(102), int64(103)}, "right join orders")
	// left side of the unmatched row is sentinel-filled
	testutil.AssertColumnValues(t, result, "username",
		[]any{"alice", "alice", "bob", ""}, "right join sentinel text")
}

func TestFullOuterJoin_Scenario(t *testing.T) {
	left := testutil.MustTable(t, "left",
		column.NewInt64("id", []int64{1, 2, 3}),
		column.NewInt64("v", []int64{10, 20, 30}),
	)
	right := testutil.MustTable(t, "right",
		column.NewInt64("id", []int64{2, 3, 4}),
		column.NewInt64("v", []int64{200, 300, 400}),
	)

	result, err := join.ExecuteJoin(left, right, []string{"id"}, []string{"id"}, join.JoinTypeFull)
	if err != nil {
		t.Fatalf("full outer join failed: %v", err)
	}

	// probe output in left row order, then unmatched right rows
	testutil.AssertRowCount(t, result, 4, "full outer join")
	testutil.AssertColumnNames(t, result, []string{"id", "v", "id_right", "v_right"}, "collision renaming")
	testutil.AssertColumnValues(t, result, "id", []any{int64(1), int64(2), int64(3), int64(0)}, "left ids")
	testutil.AssertColumnValues(t, result, "v", []any{int64(10), int64(20), int64(30), int64(0)}, "left values")
	testutil.AssertColumnValues(t, result, "id_right", []any{int64(0), int64(2), int64(3), int64(4)}, "right ids")
	testutil.AssertColumnValues(t, result, "v_right", []any{int64(0), int64(200), int64(300), int64(400)}, "right values")
}

func TestFullOuterJoin_RowCountIdentity(t *testing.T) {
	users := testutil.UsersTable(t)
	orders := testutil.OrdersTable(t)

	inner, err := join.ExecuteJoin(users, orders, []string{"id"}, []string{"user_id"}, join.JoinTypeInner)
	if err != nil {
		t.Fatalf("inner join failed: %v", err)
	}
	full, err := join.ExecuteJoin(users, orders, []string{"id"}, []string{"user_id"}, join.JoinTypeFull)
	if err != nil {
		t.Fatalf("full outer join failed: %v", err)
	}

	unmatchedLeft := 2  // charlie, diana
	unmatchedRight := 1 // order 103
	if full.RowCount != inner.RowCount+unmatchedLeft+unmatchedRight {
		t.Errorf("|full_outer| = %d, want |inner| %d + %d + %d",
			full.RowCount, inner.RowCount, unmatchedLeft, unmatchedRight)
	}
}

func TestJoin_ManyToMany(t *testing.T) {
	left := testutil.MustTable(t, "l",
		column.NewUtf8("k", []string{"a", "a", "b"}),
		column.NewInt64("ln", []int64{1, 2, 3}),
	)
	right := testutil.MustTable(t, "r",
		column.NewUtf8("k", []string{"a", "a"}),
		column.NewInt64("rn", []int64{10, 20}),
	)

	result, err := join.ExecuteJoin(left, right, []string{"k"}, []string{"k"}, join.JoinTypeInner)
	if err != nil {
		t.Fatalf("many-to-many join failed: %v", err)
	}

	// each "a" left row matches both "a" right rows, in build-side order
	testutil.AssertRowCount(t, result, 4, "many-to-many")
	testutil.AssertColumnValues(t, result, "ln", []any{int64(1), int64(1), int64(2), int64(2)}, "probe order")
	testutil.AssertColumnValues(t, result, "rn", []any{int64(10), int64(20), int64(10), int64(20)}, "build order")
}

func TestJoin_CompositeKey(t *testing.T) {
	left := testutil.MustTable(t, "l",
		column.NewUtf8("region", []string{"eu", "eu", "us"}),
		column.NewInt64("year", []int64{2023, 2024, 2024}),
		column.NewInt64("sales", []int64{5, 6, 7}),
	)
	right := testutil.MustTable(t, "r",
		column.NewUtf8("region", []string{"eu", "us", "us"}),
		column.NewInt64("year", []int64{2024, 2024, 2025}),
		column.NewInt64("target", []int64{60, 70, 80}),
	)

	result, err := join.ExecuteJoin(left, right,
		[]string{"region", "year"}, []string{"region", "year"}, join.JoinTypeInner)
	if err != nil {
		t.Fatalf("composite key join failed: %v", err)
	}

	// only (eu,2024) and (us,2024) match on both parts
	testutil.AssertRowCount(t, result, 2, "composite key join")
	testutil.AssertColumnValues(t, result, "sales", []any{int64(6), int64(7)}, "composite sales")
	testutil.AssertColumnValues(t, result, "target", []any{int64(60), int64(70)}, "composite targets")
}

func TestJoin_NumericKeyPairing(t *testing.T) {
	left := testutil.MustTable(t, "l", column.NewInt64("k", []int64{1, 2}))
	right := testutil.MustTable(t, "r",
		column.NewFloat64("k", []float64{2.0, 3.0}),
		column.NewUtf8("tag", []string{"two", "three"}),
	)

	result, err := join.ExecuteJoin(left, right, []string{"k"}, []string{"k"}, join.JoinTypeInner)
	if err != nil {
		t.Fatalf("numeric pairing join failed: %v", err)
	}
	testutil.AssertRowCount(t, result, 1, "int64/float64 key pairing")
	testutil.AssertColumnValues(t, result, "tag", []any{"two"}, "int64/float64 key pairing")
}

func TestJoin_SelfJoinIdentity(t *testing.T) {
	tbl := testutil.UsersTable(t)

	result, err := join.ExecuteJoin(tbl, tbl, []string{"id"}, []string{"id"}, join.JoinTypeInner)
	if err != nil {
		t.Fatalf("self join failed: %v", err)
	}

	// unique key: every row matches exactly itself
	testutil.AssertRowCount(t, result, tbl.RowCount, "self join row count")
	testutil.AssertColumnValues(t, result, "id", []any{int64(1), int64(2), int64(3), int64(4)}, "self join keys")
	testutil.AssertColumnValues(t, result, "id_users", []any{int64(1), int64(2), int64(3), int64(4)}, "self join renamed keys")
}

func TestJoin_KeyArityMismatch(t *testing.T) {
	users := testutil.UsersTable(t)
	orders := testutil.OrdersTable(t)

	_, err := join.ExecuteJoin(users, orders, []string{"id"}, []string{"user_id", "order_id"}, join.JoinTypeInner)
	var arity *errors.KeyArityMismatchError
	if !goerrors.As(err, &arity) {
		t.Errorf("expected KeyArityMismatchError, got %v", err)
	}
}

func TestJoin_IncompatibleKeyDtypes(t *testing.T) {
	users := testutil.UsersTable(t)
	orders := testutil.OrdersTable(t)

	_, err := join.ExecuteJoin(users, orders, []string{"username"}, []string{"user_id"}, join.JoinTypeInner)
	var mismatch *errors.TypeMismatchError
	if !goerrors.As(err, &mismatch) {
		t.Errorf("expected TypeMismatchError, got %v", err)
	}
}

func TestJoin_MissingKeyColumn(t *testing.T) {
	users := testutil.UsersTable(t)
	orders := testutil.OrdersTable(t)

	_, err := join.ExecuteJoin(users, orders, []string{"nope"}, []string{"user_id"}, join.JoinTypeInner)
	var notFound *errors.ColumnNotFoundError
	if !goerrors.As(err, &notFound) {
		t.Errorf("expected ColumnNotFoundError, got %v", err)
	}
}

func TestParseJoinType(t *testing.T) {
	cases := map[string]join.JoinType{
		"inner":      join.JoinTypeInner,
		"left":       join.JoinTypeLeft,
		"right":      join.JoinTypeRight,
		"full_outer": join.JoinTypeFull,
		"full":       join.JoinTypeFull,
	}
	for s, want := range cases {
		jt, err := join.ParseJoinType(s)
		if err != nil {
			t.Errorf("ParseJoinType(%s): %v", s, err)
			continue
		}
		if jt != want {
			t.Errorf("ParseJoinType(%s) = %v, want %v", s, jt, want)
		}
	}

	_, err := join.ParseJoinType("cross")
	var unsupported *errors.UnsupportedJoinTypeError
	if !goerrors.As(err, &unsupported) {
		t.Errorf("expected UnsupportedJoinTypeError, got %v", err)
	}
}
