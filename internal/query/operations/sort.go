package operations

import (
	"log/slog"
	"sort"

	"github.com/leengari/mini-colstore/internal/domain/column"
	"github.com/leengari/mini-colstore/internal/domain/schema"
)

// Sort materializes the table reordered by the key column. The sort is
// stable: rows with equal keys keep their original relative order, in both
// directions. All four dtypes carry a total order (booleans false < true).
func Sort(t *schema.Table, columnName string, ascending bool) (*schema.Table, error) {
	col, err := t.Column(columnName)
	if err != nil {
		return nil, err
	}

	perm := make([]int, t.RowCount)
	for i := range perm {
		perm[i] = i
	}

	var less func(a, b int) bool
	switch col.DType {
	case column.Int64:
		less = func(a, b int) bool { return col.Ints[a] < col.Ints[b] }
	case column.Float64:
		less = func(a, b int) bool { return col.Floats[a] < col.Floats[b] }
	case column.Utf8:
		less = func(a, b int) bool { return col.Strs[a] < col.Strs[b] }
	case column.Bool:
		less = func(a, b int) bool { return !col.Bools[a] && col.Bools[b] }
	}

	if ascending {
		sort.SliceStable(perm, func(i, j int) bool { return less(perm[i], perm[j]) })
	} else {
		// Stable descending means comparing the other way round, not
		// reversing the ascending result.
		sort.SliceStable(perm, func(i, j int) bool { return less(perm[j], perm[i]) })
	}

	result, err := t.Take(t.Name, perm)
	if err != nil {
		return nil, err
	}

	slog.Debug("Sort completed",
		slog.String("table", t.Name),
		slog.String("column", columnName),
		slog.Bool("ascending", ascending),
		slog.Int("rows", result.RowCount),
	)
	return result, nil
}
