package join

import (
	"fmt"
	"log/slog"

	"github.com/leengari/mini-colstore/internal/domain/column"
	"github.com/leengari/mini-colstore/internal/domain/errors"
	"github.com/leengari/mini-colstore/internal/domain/schema"
)

// ExecuteJoin performs a hash equality join over composite keys.
// This is the unified API for all JOIN types (inner, left, right, full_outer).
//
// The right table is the build side: every right row is hashed into a
// multimap by its composite key. The left table is probed in row order and
// each match emits one output row, in build-side row order for duplicate
// keys. Unmatched rows on a preserved side are emitted with the other
// side's columns filled by dtype sentinels (0, 0.0, "", false) - a
// documented stand-in, since this engine has no null representation.
// Build plus probe is O(L+R) expected; there is no nested row comparison.
//
// The output schema is the left table's columns followed by the right
// table's; a right column whose name collides with a left column is
// renamed by suffixing '_' and the right table's name.
func ExecuteJoin(left, right *schema.Table, leftKeys, rightKeys []string, joinType JoinType) (*schema.Table, error) {
	if !joinType.valid() {
		return nil, &errors.UnsupportedJoinTypeError{JoinType: fmt.Sprintf("%d", int(joinType))}
	}
	leftParts, rightParts, err := validateJoinKeys(left, right, leftKeys, rightKeys)
	if err != nil {
		return nil, err
	}

	slog.Debug("Starting join",
		slog.String("join_type", joinType.String()),
		slog.String("left_table", left.Name),
		slog.String("right_table", right.Name),
		slog.Any("left_keys", leftKeys),
		slog.Any("right_keys", rightKeys),
	)

	// Build phase: multimap of composite key -> right row indices.
	index := buildJoinIndex(rightParts, right.RowCount)

	emitUnmatchedLeft := joinType == JoinTypeLeft || joinType == JoinTypeFull
	emitUnmatchedRight := joinType == JoinTypeRight || joinType == JoinTypeFull

	var matchedRight []bool
	if emitUnmatchedRight {
		matchedRight = make([]bool, right.RowCount)
	}

	// Output rows as index pairs into the source tables; -1 selects the
	// sentinel instead of a source row. No row data is copied until the
	// final gather.
	leftIdx := make([]int, 0, left.RowCount)
	rightIdx := make([]int, 0, left.RowCount)

	// Probe phase: left rows in original order.
	buf := make([]byte, 0, 64)
	for i := 0; i < left.RowCount; i++ {
		buf = encodeKey(buf[:0], leftParts, i)
		matches, found := index[string(buf)]
		if found {
			for _, rp := range matches {
				leftIdx = append(leftIdx, i)
				rightIdx = append(rightIdx, rp)
				if emitUnmatchedRight {
					matchedRight[rp] = true
				}
			}
			continue
		}
		if emitUnmatchedLeft {
			leftIdx = append(leftIdx, i)
			rightIdx = append(rightIdx, -1)
		}
	}

	// Unmatched build-side rows, in right-table row order, after all probe
	// output.
	unmatchedRight := 0
	if emitUnmatchedRight {
		for rp := 0; rp < right.RowCount; rp++ {
			if !matchedRight[rp] {
				leftIdx = append(leftIdx, -1)
				rightIdx = append(rightIdx, rp)
				unmatchedRight++
			}
		}
	}

	leftCols := left.Columns()
	rightCols := right.Columns()
	outCols := make([]column.Column, 0, len(leftCols)+len(rightCols))
	for _, col := range leftCols {
		outCols = append(outCols, col.TakeWithSentinel(leftIdx))
	}
	for _, col := range rightCols {
		gathered := col.TakeWithSentinel(rightIdx)
		if left.HasColumn(col.Name) {
			gathered = gathered.Renamed(col.Name + "_" + right.Name)
		}
		outCols = append(outCols, gathered)
	}

	result, err := schema.NewTable(left.Name+"_join_"+right.Name, outCols)
	if err != nil {
		return nil, err
	}

	slog.Info("Join completed",
		slog.String("join_type", joinType.String()),
		slog.String("left_table", left.Name),
		slog.String("right_table", right.Name),
		slog.Int("result_rows", result.RowCount),
		slog.Int("unmatched_right", unmatchedRight),
	)
	return result, nil
}
