package errors

import "fmt"

// TableNotFoundError indicates a lookup for a table name that was never
// registered.
type TableNotFoundError struct {
	Table string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table '%s' does not exist", e.Table)
}

// ColumnNotFoundError indicates a reference to a column absent from a table.
type ColumnNotFoundError struct {
	Table  string
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column '%s' not found in table '%s'", e.Column, e.Table)
}

// InvalidArgumentError indicates malformed construction input
// (empty table name, empty column set, ragged column lengths).
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

// TypeMismatchError indicates a value, operator or column pairing whose
// dtypes are incompatible. Detected before any scan begins.
type TypeMismatchError struct {
	Table    string // may be empty for construction-time mismatches
	Column   string
	Expected string
	Got      string
	Reason   string // optional human-readable detail
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("type mismatch on column '%s': expected %s, got %s", e.Column, e.Expected, e.Got)
	if e.Table != "" {
		msg = fmt.Sprintf("type mismatch on %s.%s: expected %s, got %s", e.Table, e.Column, e.Expected, e.Got)
	}
	if e.Reason != "" {
		msg += " - " + e.Reason
	}
	return msg
}

// UnsupportedOperatorError indicates a comparison operator outside the
// supported set (== != < <= > >=).
type UnsupportedOperatorError struct {
	Operator string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator '%s' (use one of: == != < <= > >=)", e.Operator)
}

// UnsupportedFunctionError indicates an aggregation function outside the
// supported set (sum, mean, min, max, count).
type UnsupportedFunctionError struct {
	Function string
}

func (e *UnsupportedFunctionError) Error() string {
	return fmt.Sprintf("unsupported aggregation function '%s' (use one of: sum mean min max count)", e.Function)
}

// UnsupportedJoinTypeError indicates a join type outside the supported set.
type UnsupportedJoinTypeError struct {
	JoinType string
}

func (e *UnsupportedJoinTypeError) Error() string {
	return fmt.Sprintf("unsupported join type '%s' (use one of: inner left right full_outer)", e.JoinType)
}

// KeyArityMismatchError indicates composite join key lists of unequal length.
type KeyArityMismatchError struct {
	LeftKeys  int
	RightKeys int
}

func (e *KeyArityMismatchError) Error() string {
	return fmt.Sprintf("join key arity mismatch: %d left keys vs %d right keys", e.LeftKeys, e.RightKeys)
}

// EmptyAggregationError indicates mean/min/max over zero rows, for which no
// aggregate identity exists.
type EmptyAggregationError struct {
	Function string
	Column   string
}

func (e *EmptyAggregationError) Error() string {
	return fmt.Sprintf("cannot compute %s over empty column '%s'", e.Function, e.Column)
}
