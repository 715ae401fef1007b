package column

import (
	"fmt"

	"github.com/leengari/mini-colstore/internal/domain/errors"
)

// Column is a fixed-length, homogeneously typed sequence of values.
// Exactly one of the value slices is populated, selected by DType.
// Columns are never mutated after construction; operators gather into
// new columns instead of rewriting existing ones.
type Column struct {
	Name   string
	DType  DType
	Ints   []int64
	Floats []float64
	Strs   []string
	Bools  []bool
}

// NewInt64 creates an Int64 column over the given values.
func NewInt64(name string, values []int64) Column {
	return Column{Name: name, DType: Int64, Ints: values}
}

// NewFloat64 creates a Float64 column over the given values.
func NewFloat64(name string, values []float64) Column {
	return Column{Name: name, DType: Float64, Floats: values}
}

// NewUtf8 creates a Utf8 column over the given values.
func NewUtf8(name string, values []string) Column {
	return Column{Name: name, DType: Utf8, Strs: values}
}

// NewBool creates a Bool column over the given values.
func NewBool(name string, values []bool) Column {
	return Column{Name: name, DType: Bool, Bools: values}
}

// Empty returns a zero-length column of the given dtype.
func Empty(name string, d DType) Column {
	c := Column{Name: name, DType: d}
	switch d {
	case Int64:
		c.Ints = []int64{}
	case Float64:
		c.Floats = []float64{}
	case Utf8:
		c.Strs = []string{}
	case Bool:
		c.Bools = []bool{}
	}
	return c
}

// FromValues builds a column from untyped values, inferring the dtype from
// the first element. Integer values (int, int64) normalize to Int64; any
// other mix of element types is a type mismatch. An empty sequence carries
// no dtype to infer and is rejected.
func FromValues(name string, values []any) (Column, error) {
	if len(values) == 0 {
		return Column{}, &errors.InvalidArgumentError{
			Reason: fmt.Sprintf("column '%s' has no values to infer a dtype from", name),
		}
	}

	switch values[0].(type) {
	case int, int64:
		out := make([]int64, len(values))
		for i, v := range values {
			n, ok := normalizeToInt64(v)
			if !ok {
				return Column{}, mixError(name, Int64, v, i)
			}
			out[i] = n
		}
		return NewInt64(name, out), nil

	case float64:
		out := make([]float64, len(values))
		for i, v := range values {
			f, ok := v.(float64)
			if !ok {
				return Column{}, mixError(name, Float64, v, i)
			}
			out[i] = f
		}
		return NewFloat64(name, out), nil

	case string:
		out := make([]string, len(values))
		for i, v := range values {
			s, ok := v.(string)
			if !ok {
				return Column{}, mixError(name, Utf8, v, i)
			}
			out[i] = s
		}
		return NewUtf8(name, out), nil

	case bool:
		out := make([]bool, len(values))
		for i, v := range values {
			b, ok := v.(bool)
			if !ok {
				return Column{}, mixError(name, Bool, v, i)
			}
			out[i] = b
		}
		return NewBool(name, out), nil

	default:
		return Column{}, &errors.TypeMismatchError{
			Column:   name,
			Expected: "INT64, FLOAT64, UTF8 or BOOL element",
			Got:      fmt.Sprintf("%T", values[0]),
		}
	}
}

func mixError(name string, want DType, got any, pos int) error {
	return &errors.TypeMismatchError{
		Column:   name,
		Expected: want.String(),
		Got:      fmt.Sprintf("%T", got),
		Reason:   fmt.Sprintf("mixed element types at position %d", pos),
	}
}

// normalizeToInt64 converts supported integer representations to int64.
func normalizeToInt64(val any) (int64, bool) {
	switch v := val.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

// Len returns the number of values in the column.
func (c Column) Len() int {
	switch c.DType {
	case Int64:
		return len(c.Ints)
	case Float64:
		return len(c.Floats)
	case Utf8:
		return len(c.Strs)
	case Bool:
		return len(c.Bools)
	}
	return 0
}

// Value returns the element at position i as an untyped value.
func (c Column) Value(i int) any {
	switch c.DType {
	case Int64:
		return c.Ints[i]
	case Float64:
		return c.Floats[i]
	case Utf8:
		return c.Strs[i]
	case Bool:
		return c.Bools[i]
	}
	return nil
}

// Values materializes the column as an untyped slice, the shape the
// external row surface consumes.
func (c Column) Values() []any {
	out := make([]any, c.Len())
	for i := range out {
		out[i] = c.Value(i)
	}
	return out
}

// Take gathers the values at the given row indices into a new column,
// preserving index order. All indices must be in range.
func (c Column) Take(indices []int) Column {
	out := Column{Name: c.Name, DType: c.DType}
	switch c.DType {
	case Int64:
		out.Ints = make([]int64, len(indices))
		for i, idx := range indices {
			out.Ints[i] = c.Ints[idx]
		}
	case Float64:
		out.Floats = make([]float64, len(indices))
		for i, idx := range indices {
			out.Floats[i] = c.Floats[idx]
		}
	case Utf8:
		out.Strs = make([]string, len(indices))
		for i, idx := range indices {
			out.Strs[i] = c.Strs[idx]
		}
	case Bool:
		out.Bools = make([]bool, len(indices))
		for i, idx := range indices {
			out.Bools[i] = c.Bools[idx]
		}
	}
	return out
}

// TakeWithSentinel gathers like Take, but an index of -1 emits the dtype's
// sentinel (0, 0.0, "", false) instead of reading the source. Outer joins
// use this to fill the unmatched side without a null representation.
func (c Column) TakeWithSentinel(indices []int) Column {
	out := Column{Name: c.Name, DType: c.DType}
	switch c.DType {
	case Int64:
		out.Ints = make([]int64, len(indices))
		for i, idx := range indices {
			if idx >= 0 {
				out.Ints[i] = c.Ints[idx]
			}
		}
	case Float64:
		out.Floats = make([]float64, len(indices))
		for i, idx := range indices {
			if idx >= 0 {
				out.Floats[i] = c.Floats[idx]
			}
		}
	case Utf8:
		out.Strs = make([]string, len(indices))
		for i, idx := range indices {
			if idx >= 0 {
				out.Strs[i] = c.Strs[idx]
			}
		}
	case Bool:
		out.Bools = make([]bool, len(indices))
		for i, idx := range indices {
			if idx >= 0 {
				out.Bools[i] = c.Bools[idx]
			}
		}
	}
	return out
}

// Renamed returns a copy of the column under a different name.
// The value slices are shared; columns are never mutated in place.
func (c Column) Renamed(name string) Column {
	c.Name = name
	return c
}
