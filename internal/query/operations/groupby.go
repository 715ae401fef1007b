package operations

import (
	"fmt"
	"log/slog"

	"github.com/leengari/mini-colstore/internal/domain/column"
	"github.com/leengari/mini-colstore/internal/domain/errors"
	"github.com/leengari/mini-colstore/internal/domain/schema"
)

// GroupBy partitions rows by equality of the group column and reduces the
// aggregation column within each partition. The result holds two columns,
// the distinct key and the aggregated value, with one row per distinct key
// ordered by the key's first occurrence in the source table.
func GroupBy(t *schema.Table, groupColumn, aggColumn string, fn AggFunc) (*schema.Table, error) {
	keyCol, err := t.Column(groupColumn)
	if err != nil {
		return nil, err
	}
	aggCol, err := t.Column(aggColumn)
	if err != nil {
		return nil, err
	}
	if !fn.valid() {
		return nil, &errors.UnsupportedFunctionError{Function: fmt.Sprintf("%d", int(fn))}
	}
	if fn.NumericOnly() && !aggCol.DType.Numeric() {
		return nil, &errors.TypeMismatchError{
			Table:    t.Name,
			Column:   aggColumn,
			Expected: "numeric column",
			Got:      aggCol.DType.String(),
			Reason:   fmt.Sprintf("%s requires INT64 or FLOAT64", fn),
		}
	}

	slog.Debug("Starting group-by",
		slog.String("table", t.Name),
		slog.String("group_column", groupColumn),
		slog.String("agg_column", aggColumn),
		slog.String("func", fn.String()),
	)

	// Partition row indices by key value, remembering each key's first
	// occurrence so output order is deterministic.
	seen := make(map[any]int, 16)
	var firstIdx []int
	var partitions [][]int
	for i := 0; i < t.RowCount; i++ {
		key := keyCol.Value(i)
		p, ok := seen[key]
		if !ok {
			p = len(partitions)
			seen[key] = p
			partitions = append(partitions, nil)
			firstIdx = append(firstIdx, i)
		}
		partitions[p] = append(partitions[p], i)
	}

	outKey := keyCol.Take(firstIdx)

	var outAgg column.Column
	if len(partitions) == 0 {
		outAgg = column.Empty(aggColumn, aggResultDType(fn, aggCol.DType))
	} else {
		aggVals := make([]any, len(partitions))
		for p, indices := range partitions {
			// Every partition has at least one row, so EmptyAggregation
			// cannot trigger here.
			v, err := aggregateColumn(aggCol, fn, indices)
			if err != nil {
				return nil, err
			}
			aggVals[p] = v
		}
		outAgg, err = column.FromValues(aggColumn, aggVals)
		if err != nil {
			return nil, err
		}
	}

	result, err := schema.NewTable(t.Name+"_by_"+groupColumn, []column.Column{outKey, outAgg})
	if err != nil {
		return nil, err
	}

	slog.Info("Group-by completed",
		slog.String("table", t.Name),
		slog.String("group_column", groupColumn),
		slog.Int("rows_in", t.RowCount),
		slog.Int("groups", result.RowCount),
	)
	return result, nil
}

// aggResultDType is the dtype of the aggregated output column.
func aggResultDType(fn AggFunc, src column.DType) column.DType {
	switch fn {
	case AggCount:
		return column.Int64
	case AggMean:
		return column.Float64
	default:
		return src
	}
}
