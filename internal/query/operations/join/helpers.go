package join

import (
	"strconv"

	"github.com/leengari/mini-colstore/internal/domain/column"
	"github.com/leengari/mini-colstore/internal/domain/errors"
	"github.com/leengari/mini-colstore/internal/domain/schema"
)

// keyPart is one column of a composite join key, resolved and paired with
// its encoding mode. asFloat marks a numeric column whose partner on the
// other side is Float64, so both sides encode through float64 and compare
// equal across the Int64/Float64 pairing.
type keyPart struct {
	col     column.Column
	asFloat bool
}

// validateJoinKeys resolves both key lists and checks arity and dtype
// compatibility, returning the per-side key parts. Corresponding key
// columns must share a dtype, except Int64 and Float64 which may pair.
func validateJoinKeys(left, right *schema.Table, leftKeys, rightKeys []string) ([]keyPart, []keyPart, error) {
	if len(leftKeys) != len(rightKeys) {
		return nil, nil, &errors.KeyArityMismatchError{
			LeftKeys:  len(leftKeys),
			RightKeys: len(rightKeys),
		}
	}
	if len(leftKeys) == 0 {
		return nil, nil, &errors.InvalidArgumentError{Reason: "join requires at least one key column"}
	}

	leftParts := make([]keyPart, len(leftKeys))
	rightParts := make([]keyPart, len(rightKeys))
	for i := range leftKeys {
		lcol, err := left.Column(leftKeys[i])
		if err != nil {
			return nil, nil, err
		}
		rcol, err := right.Column(rightKeys[i])
		if err != nil {
			return nil, nil, err
		}

		asFloat := false
		switch {
		case lcol.DType == rcol.DType:
			asFloat = lcol.DType == column.Float64
		case lcol.DType.Numeric() && rcol.DType.Numeric():
			asFloat = true
		default:
			return nil, nil, &errors.TypeMismatchError{
				Table:    left.Name,
				Column:   leftKeys[i],
				Expected: lcol.DType.String(),
				Got:      rcol.DType.String(),
				Reason:   "join key dtypes are not comparable",
			}
		}

		leftParts[i] = keyPart{col: lcol, asFloat: asFloat}
		rightParts[i] = keyPart{col: rcol, asFloat: asFloat}
	}
	return leftParts, rightParts, nil
}

// appendKeyPart encodes one key column value as a type-tagged byte string.
// Utf8 values are length-prefixed so arbitrary text cannot collide with
// the part separator.
func appendKeyPart(buf []byte, p keyPart, row int) []byte {
	switch p.col.DType {
	case column.Int64:
		if p.asFloat {
			buf = append(buf, 'f')
			return strconv.AppendFloat(buf, float64(p.col.Ints[row]), 'g', -1, 64)
		}
		buf = append(buf, 'i')
		return strconv.AppendInt(buf, p.col.Ints[row], 10)
	case column.Float64:
		buf = append(buf, 'f')
		return strconv.AppendFloat(buf, p.col.Floats[row], 'g', -1, 64)
	case column.Utf8:
		s := p.col.Strs[row]
		buf = append(buf, 's')
		buf = strconv.AppendInt(buf, int64(len(s)), 10)
		buf = append(buf, ':')
		return append(buf, s...)
	case column.Bool:
		if p.col.Bools[row] {
			return append(buf, 'b', '1')
		}
		return append(buf, 'b', '0')
	}
	return buf
}

// encodeKey builds the composite key for a row into buf and returns it.
func encodeKey(buf []byte, parts []keyPart, row int) []byte {
	for _, p := range parts {
		buf = appendKeyPart(buf, p, row)
		buf = append(buf, 0x1f)
	}
	return buf
}

// buildJoinIndex hashes every build-side row into a multimap keyed by its
// composite key. Duplicate keys accumulate their row indices in row order,
// which is the order matches are later emitted in.
func buildJoinIndex(parts []keyPart, rowCount int) map[string][]int {
	index := make(map[string][]int, rowCount)
	buf := make([]byte, 0, 64)
	for row := 0; row < rowCount; row++ {
		buf = encodeKey(buf[:0], parts, row)
		index[string(buf)] = append(index[string(buf)], row)
	}
	return index
}
