package join

import "github.com/leengari/mini-colstore/internal/domain/errors"

// JoinType represents the type of JOIN operation.
type JoinType int

const (
	JoinTypeInner JoinType = iota // only rows matching on both sides
	JoinTypeLeft                  // all left rows, sentinels for unmatched right columns
	JoinTypeRight                 // all right rows, sentinels for unmatched left columns
	JoinTypeFull                  // all rows from both sides, sentinels where no match
)

// String returns the string representation of the JOIN type.
func (jt JoinType) String() string {
	switch jt {
	case JoinTypeInner:
		return "inner"
	case JoinTypeLeft:
		return "left"
	case JoinTypeRight:
		return "right"
	case JoinTypeFull:
		return "full_outer"
	default:
		return "UNKNOWN JOIN"
	}
}

// ParseJoinType maps a wire string to a JoinType. "full" is accepted as an
// alias for "full_outer".
func ParseJoinType(s string) (JoinType, error) {
	switch s {
	case "inner":
		return JoinTypeInner, nil
	case "left":
		return JoinTypeLeft, nil
	case "right":
		return JoinTypeRight, nil
	case "full_outer", "full":
		return JoinTypeFull, nil
	default:
		return 0, &errors.UnsupportedJoinTypeError{JoinType: s}
	}
}

func (jt JoinType) valid() bool {
	return jt >= JoinTypeInner && jt <= JoinTypeFull
}
