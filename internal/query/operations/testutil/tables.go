package testutil

import (
	"testing"

	"github.com/leengari/mini-colstore/internal/domain/column"
	"github.com/leengari/mini-colstore/internal/domain/schema"
)

// MustTable builds a table from ordered columns, failing the test on error.
func MustTable(t *testing.T, name string, cols ...column.Column) *schema.Table {
	t.Helper()
	tbl, err := schema.NewTable(name, cols)
	if err != nil {
		t.Fatalf("failed to build fixture table '%s': %v", name, err)
	}
	return tbl
}

// UsersTable is a small mixed-dtype fixture shared across operator tests.
func UsersTable(t *testing.T) *schema.Table {
	t.Helper()
	return MustTable(t, "users",
		column.NewInt64("id", []int64{1, 2, 3, 4}),
		column.NewUtf8("username", []string{"alice", "bob", "charlie", "diana"}),
		column.NewInt64("age", []int64{25, 30, 35, 40}),
		column.NewFloat64("score", []float64{81.5, 64.2, 92.3, 77.0}),
		column.NewBool("premium", []bool{true, false, true, false}),
	)
}

// OrdersTable joins against UsersTable on id = user_id.
// user_id 3 and 4 have no orders; user_id 5 has no user.
func OrdersTable(t *testing.T) *schema.Table {
	t.Helper()
	return MustTable(t, "orders",
		column.NewInt64("order_id", []int64{100, 101, 102, 103}),
		column.NewInt64("user_id", []int64{1, 1, 2, 5}),
		column.NewUtf8("product", []string{"Laptop", "Mouse", "Keyboard", "Monitor"}),
		column.NewFloat64("amount", []float64{999.99, 25.50, 75.00, 12.00}),
	)
}

// EmptyTable has the users schema with zero rows.
func EmptyTable(t *testing.T) *schema.Table {
	t.Helper()
	return MustTable(t, "empty",
		column.NewInt64("id", []int64{}),
		column.NewUtf8("username", []string{}),
	)
}
