package operations

import (
	"github.com/leengari/mini-colstore/internal/domain/errors"
	"github.com/leengari/mini-colstore/internal/query/ops"
)

// Operator represents a filter comparison operator.
type Operator int

const (
	OpEq Operator = iota // ==
	OpNe                 // !=
	OpLt                 // <
	OpLe                 // <=
	OpGt                 // >
	OpGe                 // >=
)

// String returns the operator's wire representation.
func (op Operator) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return "UNKNOWN OPERATOR"
	}
}

// ParseOperator maps a wire string to an Operator.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "==":
		return OpEq, nil
	case "!=":
		return OpNe, nil
	case "<":
		return OpLt, nil
	case "<=":
		return OpLe, nil
	case ">":
		return OpGt, nil
	case ">=":
		return OpGe, nil
	default:
		return 0, &errors.UnsupportedOperatorError{Operator: s}
	}
}

func (op Operator) valid() bool {
	return op >= OpEq && op <= OpGe
}

// cmp maps the operator onto the kernel comparison set.
func (op Operator) cmp() ops.Cmp {
	switch op {
	case OpEq:
		return ops.CmpEq
	case OpNe:
		return ops.CmpNe
	case OpLt:
		return ops.CmpLt
	case OpLe:
		return ops.CmpLe
	case OpGt:
		return ops.CmpGt
	default:
		return ops.CmpGe
	}
}

// AggFunc represents an aggregation function.
type AggFunc int

const (
	AggSum AggFunc = iota
	AggMean
	AggMin
	AggMax
	AggCount
)

// String returns the function's wire representation.
func (f AggFunc) String() string {
	switch f {
	case AggSum:
		return "sum"
	case AggMean:
		return "mean"
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	case AggCount:
		return "count"
	default:
		return "UNKNOWN FUNCTION"
	}
}

// ParseAggFunc maps a wire string to an AggFunc.
func ParseAggFunc(s string) (AggFunc, error) {
	switch s {
	case "sum":
		return AggSum, nil
	case "mean":
		return AggMean, nil
	case "min":
		return AggMin, nil
	case "max":
		return AggMax, nil
	case "count":
		return AggCount, nil
	default:
		return 0, &errors.UnsupportedFunctionError{Function: s}
	}
}

func (f AggFunc) valid() bool {
	return f >= AggSum && f <= AggCount
}

// NumericOnly reports whether the function is restricted to numeric columns.
func (f AggFunc) NumericOnly() bool {
	return f == AggSum || f == AggMean
}
