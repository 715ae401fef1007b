package ops

import "golang.org/x/exp/constraints"

// Number covers the dtypes that participate in sum/mean.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum reduces vals by addition. The zero value is the sum of no values.
func Sum[T Number](vals []T) T {
	var total T
	for _, v := range vals {
		total += v
	}
	return total
}

// Bounds tracks a running min/max pair.
type Bounds[T constraints.Ordered] struct {
	Min T
	Max T
}

// MinMax scans vals for its bounds. vals must be non-empty; the caller
// owns the empty-input decision.
func MinMax[T constraints.Ordered](vals []T) Bounds[T] {
	b := Bounds[T]{Min: vals[0], Max: vals[0]}
	for _, v := range vals[1:] {
		if v < b.Min {
			b.Min = v
		}
		if v > b.Max {
			b.Max = v
		}
	}
	return b
}

// Merge folds another bounds pair into b. Used when chunked scans combine
// partial results in fixed chunk order.
func (b *Bounds[T]) Merge(other Bounds[T]) {
	if other.Min < b.Min {
		b.Min = other.Min
	}
	if other.Max > b.Max {
		b.Max = other.Max
	}
}
