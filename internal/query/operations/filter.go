package operations

import (
	"fmt"
	"log/slog"

	"github.com/leengari/mini-colstore/internal/domain/column"
	"github.com/leengari/mini-colstore/internal/domain/errors"
	"github.com/leengari/mini-colstore/internal/domain/schema"
	"github.com/leengari/mini-colstore/internal/query/ops"
)

// probeValue is a filter comparison value normalized against the column's
// dtype before any scanning starts.
type probeValue struct {
	i64     int64
	f64     float64
	str     string
	boolean bool
	// asFloat marks a numeric probe that must be compared in float64
	// (float literal against an Int64 column).
	asFloat bool
}

// Filter evaluates column <op> value element-wise into a selection mask and
// materializes the rows where the mask is true, preserving row order.
// Mask evaluation runs chunked and, for large tables, concurrently; every
// column is then gathered in a single pass.
func Filter(t *schema.Table, columnName string, op Operator, value any) (*schema.Table, error) {
	col, err := t.Column(columnName)
	if err != nil {
		return nil, err
	}
	if !op.valid() {
		return nil, &errors.UnsupportedOperatorError{Operator: fmt.Sprintf("%d", int(op))}
	}
	probe, err := normalizeProbe(t.Name, col, value)
	if err != nil {
		return nil, err
	}

	slog.Debug("Starting filter",
		slog.String("table", t.Name),
		slog.String("column", columnName),
		slog.String("operator", op.String()),
	)

	c := op.cmp()
	mask := make([]bool, t.RowCount)
	counts := mapChunks(t.RowCount, func(lo, hi int) int {
		switch col.DType {
		case column.Int64:
			if probe.asFloat {
				return ops.Int64FloatMask(col.Ints[lo:hi], c, probe.f64, mask[lo:hi])
			}
			return ops.OrderedMask(col.Ints[lo:hi], c, probe.i64, mask[lo:hi])
		case column.Float64:
			return ops.OrderedMask(col.Floats[lo:hi], c, probe.f64, mask[lo:hi])
		case column.Utf8:
			return ops.OrderedMask(col.Strs[lo:hi], c, probe.str, mask[lo:hi])
		case column.Bool:
			return ops.BoolMask(col.Bools[lo:hi], c, probe.boolean, mask[lo:hi])
		}
		return 0
	})

	selected := 0
	for _, n := range counts {
		selected += n
	}
	indices := make([]int, 0, selected)
	for i, hit := range mask {
		if hit {
			indices = append(indices, i)
		}
	}

	result, err := t.Take(t.Name, indices)
	if err != nil {
		return nil, err
	}

	slog.Info("Filter completed",
		slog.String("table", t.Name),
		slog.Int("rows_in", t.RowCount),
		slog.Int("rows_out", result.RowCount),
	)
	return result, nil
}

// normalizeProbe checks value compatibility against the column dtype and
// converts it into the kernel representation. Numeric probes cross-compare
// against either numeric dtype; Utf8 and Bool require their exact type.
func normalizeProbe(tableName string, col column.Column, value any) (probeValue, error) {
	mismatch := func() (probeValue, error) {
		return probeValue{}, &errors.TypeMismatchError{
			Table:    tableName,
			Column:   col.Name,
			Expected: col.DType.String(),
			Got:      fmt.Sprintf("%T", value),
		}
	}

	switch col.DType {
	case column.Int64:
		switch v := value.(type) {
		case int:
			return probeValue{i64: int64(v)}, nil
		case int64:
			return probeValue{i64: v}, nil
		case float64:
			return probeValue{f64: v, asFloat: true}, nil
		}
		return mismatch()
	case column.Float64:
		switch v := value.(type) {
		case float64:
			return probeValue{f64: v}, nil
		case int:
			return probeValue{f64: float64(v)}, nil
		case int64:
			return probeValue{f64: float64(v)}, nil
		}
		return mismatch()
	case column.Utf8:
		if s, ok := value.(string); ok {
			return probeValue{str: s}, nil
		}
		return mismatch()
	case column.Bool:
		if b, ok := value.(bool); ok {
			return probeValue{boolean: b}, nil
		}
		return mismatch()
	}
	return mismatch()
}
