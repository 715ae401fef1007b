package operations

import (
	"fmt"
	"log/slog"

	"github.com/leengari/mini-colstore/internal/domain/column"
	"github.com/leengari/mini-colstore/internal/domain/errors"
	"github.com/leengari/mini-colstore/internal/domain/schema"
	"github.com/leengari/mini-colstore/internal/query/ops"
	"golang.org/x/exp/constraints"
)

// Aggregate reduces a column to a scalar. sum and mean are gated to
// numeric columns; min, max and count accept any dtype. count returns the
// row count regardless of values. Over zero rows sum is the typed zero and
// count is 0, while mean/min/max fail with EmptyAggregation - those have
// no identity value.
func Aggregate(t *schema.Table, columnName string, fn AggFunc) (any, error) {
	col, err := t.Column(columnName)
	if err != nil {
		return nil, err
	}
	if !fn.valid() {
		return nil, &errors.UnsupportedFunctionError{Function: fmt.Sprintf("%d", int(fn))}
	}
	if fn.NumericOnly() && !col.DType.Numeric() {
		return nil, &errors.TypeMismatchError{
			Table:    t.Name,
			Column:   columnName,
			Expected: "numeric column",
			Got:      col.DType.String(),
			Reason:   fmt.Sprintf("%s requires INT64 or FLOAT64", fn),
		}
	}

	result, err := aggregateColumn(col, fn, nil)
	if err != nil {
		return nil, err
	}

	slog.Debug("Aggregate completed",
		slog.String("table", t.Name),
		slog.String("column", columnName),
		slog.String("func", fn.String()),
	)
	return result, nil
}

// aggregateColumn reduces a column, optionally restricted to a row subset.
// Dtype gating has already happened at the operator boundary. The full-
// column path scans in chunks and merges partials in ascending chunk order
// so the result matches the serial scan exactly.
func aggregateColumn(col column.Column, fn AggFunc, indices []int) (any, error) {
	if indices != nil {
		// Group partitions are typically small; gather once, reduce serially.
		col = col.Take(indices)
	}
	n := col.Len()

	if fn == AggCount {
		return int64(n), nil
	}

	if n == 0 {
		switch fn {
		case AggSum:
			if col.DType == column.Float64 {
				return float64(0), nil
			}
			return int64(0), nil
		default:
			return nil, &errors.EmptyAggregationError{Function: fn.String(), Column: col.Name}
		}
	}

	switch fn {
	case AggSum:
		if col.DType == column.Float64 {
			return mergeSums(mapChunks(n, func(lo, hi int) float64 {
				return ops.Sum(col.Floats[lo:hi])
			})), nil
		}
		return mergeSums(mapChunks(n, func(lo, hi int) int64 {
			return ops.Sum(col.Ints[lo:hi])
		})), nil

	case AggMean:
		// Always floating point, even over an integer column.
		var total float64
		if col.DType == column.Float64 {
			total = mergeSums(mapChunks(n, func(lo, hi int) float64 {
				return ops.Sum(col.Floats[lo:hi])
			}))
		} else {
			total = float64(mergeSums(mapChunks(n, func(lo, hi int) int64 {
				return ops.Sum(col.Ints[lo:hi])
			})))
		}
		return total / float64(n), nil

	case AggMin, AggMax:
		return minMaxColumn(col, fn), nil
	}

	return nil, &errors.UnsupportedFunctionError{Function: fn.String()}
}

func mergeSums[T ops.Number](partials []T) T {
	var total T
	for _, p := range partials {
		total += p
	}
	return total
}

func minMaxColumn(col column.Column, fn AggFunc) any {
	switch col.DType {
	case column.Int64:
		b := mergeBounds(mapChunks(len(col.Ints), func(lo, hi int) ops.Bounds[int64] {
			return ops.MinMax(col.Ints[lo:hi])
		}))
		if fn == AggMin {
			return b.Min
		}
		return b.Max
	case column.Float64:
		b := mergeBounds(mapChunks(len(col.Floats), func(lo, hi int) ops.Bounds[float64] {
			return ops.MinMax(col.Floats[lo:hi])
		}))
		if fn == AggMin {
			return b.Min
		}
		return b.Max
	case column.Utf8:
		b := mergeBounds(mapChunks(len(col.Strs), func(lo, hi int) ops.Bounds[string] {
			return ops.MinMax(col.Strs[lo:hi])
		}))
		if fn == AggMin {
			return b.Min
		}
		return b.Max
	case column.Bool:
		// false < true: min is false unless every value is true.
		anyTrue, anyFalse := false, false
		for _, v := range col.Bools {
			if v {
				anyTrue = true
			} else {
				anyFalse = true
			}
			if anyTrue && anyFalse {
				break
			}
		}
		if fn == AggMin {
			return !anyFalse
		}
		return anyTrue
	}
	return nil
}

func mergeBounds[T constraints.Ordered](partials []ops.Bounds[T]) ops.Bounds[T] {
	b := partials[0]
	for _, p := range partials[1:] {
		b.Merge(p)
	}
	return b
}
