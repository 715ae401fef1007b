package schema

import (
	"fmt"
	"sort"

	"github.com/leengari/mini-colstore/internal/domain/column"
	"github.com/leengari/mini-colstore/internal/domain/errors"
)

// Table is a named, immutable snapshot of columns. Construction validates
// the shape invariant (every column length == RowCount, unique non-empty
// column names) before the table exists, so a partially built table is
// never observable. Operators read tables and return new ones; nothing
// mutates a table after NewTable returns.
type Table struct {
	Name     string
	RowCount int

	cols   []column.Column
	byName map[string]int
}

// NewTable builds a table from an ordered column list. The column order
// given here defines the table's projection order.
func NewTable(name string, cols []column.Column) (*Table, error) {
	if name == "" {
		return nil, &errors.InvalidArgumentError{Reason: "table name must not be empty"}
	}
	if len(cols) == 0 {
		return nil, &errors.InvalidArgumentError{Reason: fmt.Sprintf("table '%s' has no columns", name)}
	}

	byName := make(map[string]int, len(cols))
	rowCount := cols[0].Len()
	for i, col := range cols {
		if col.Name == "" {
			return nil, &errors.InvalidArgumentError{
				Reason: fmt.Sprintf("table '%s': column %d has an empty name", name, i),
			}
		}
		if _, dup := byName[col.Name]; dup {
			return nil, &errors.InvalidArgumentError{
				Reason: fmt.Sprintf("table '%s': duplicate column name '%s'", name, col.Name),
			}
		}
		if col.Len() != rowCount {
			return nil, &errors.InvalidArgumentError{
				Reason: fmt.Sprintf("table '%s': column '%s' has %d values, expected %d",
					name, col.Name, col.Len(), rowCount),
			}
		}
		byName[col.Name] = i
	}

	return &Table{
		Name:     name,
		RowCount: rowCount,
		cols:     cols,
		byName:   byName,
	}, nil
}

// FromMap builds a table from a mapping of column name to untyped values,
// the shape the external surface speaks. Go maps carry no insertion order,
// so columns are laid out in sorted-name order; callers that need a
// specific projection order use NewTable directly.
func FromMap(name string, data map[string][]any) (*Table, error) {
	if len(data) == 0 {
		return nil, &errors.InvalidArgumentError{
			Reason: fmt.Sprintf("table '%s' has no columns", name),
		}
	}

	names := make([]string, 0, len(data))
	for colName := range data {
		names = append(names, colName)
	}
	sort.Strings(names)

	cols := make([]column.Column, 0, len(names))
	for _, colName := range names {
		col, err := column.FromValues(colName, data[colName])
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return NewTable(name, cols)
}

// Columns returns the table's columns in projection order.
// The returned slice is a copy; the columns themselves share value storage
// and must not be modified.
func (t *Table) Columns() []column.Column {
	out := make([]column.Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// ColumnNames returns the column names in projection order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column by name.
func (t *Table) Column(name string) (column.Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return column.Column{}, &errors.ColumnNotFoundError{Table: t.Name, Column: name}
	}
	return t.cols[i], nil
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.cols)
}

// Take materializes a new table holding the rows at the given indices, in
// index order. Every operator that selects or reorders rows funnels
// through here so the shape invariant is re-established in one place.
func (t *Table) Take(name string, indices []int) (*Table, error) {
	cols := make([]column.Column, len(t.cols))
	for i, col := range t.cols {
		cols[i] = col.Take(indices)
	}
	return NewTable(name, cols)
}
