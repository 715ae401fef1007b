// Package ops holds the tight-loop kernels the operators are built from:
// mask evaluation over typed slices and scalar reductions. Kernels take
// sub-slices so callers can partition work across chunks.
package ops

import "golang.org/x/exp/constraints"

// Cmp is the closed set of comparisons the mask kernels evaluate.
type Cmp uint8

const (
	CmpEq Cmp = iota
	CmpNe
	CmpLt
	CmpLe
	CmpGt
	CmpGe
)

// OrderedMask evaluates vals[i] <cmp> ref into mask and returns the number
// of positions set true. mask must be the same length as vals and start
// false. The comparison switch sits outside the loop on purpose.
func OrderedMask[T constraints.Ordered](vals []T, c Cmp, ref T, mask []bool) int {
	n := 0
	switch c {
	case CmpEq:
		for i, v := range vals {
			if v == ref {
				mask[i] = true
				n++
			}
		}
	case CmpNe:
		for i, v := range vals {
			if v != ref {
				mask[i] = true
				n++
			}
		}
	case CmpLt:
		for i, v := range vals {
			if v < ref {
				mask[i] = true
				n++
			}
		}
	case CmpLe:
		for i, v := range vals {
			if v <= ref {
				mask[i] = true
				n++
			}
		}
	case CmpGt:
		for i, v := range vals {
			if v > ref {
				mask[i] = true
				n++
			}
		}
	case CmpGe:
		for i, v := range vals {
			if v >= ref {
				mask[i] = true
				n++
			}
		}
	}
	return n
}

// Int64FloatMask compares int64 values against a float64 reference,
// widening each element to float64. Used when a float literal probes an
// Int64 column.
func Int64FloatMask(vals []int64, c Cmp, ref float64, mask []bool) int {
	n := 0
	switch c {
	case CmpEq:
		for i, v := range vals {
			if float64(v) == ref {
				mask[i] = true
				n++
			}
		}
	case CmpNe:
		for i, v := range vals {
			if float64(v) != ref {
				mask[i] = true
				n++
			}
		}
	case CmpLt:
		for i, v := range vals {
			if float64(v) < ref {
				mask[i] = true
				n++
			}
		}
	case CmpLe:
		for i, v := range vals {
			if float64(v) <= ref {
				mask[i] = true
				n++
			}
		}
	case CmpGt:
		for i, v := range vals {
			if float64(v) > ref {
				mask[i] = true
				n++
			}
		}
	case CmpGe:
		for i, v := range vals {
			if float64(v) >= ref {
				mask[i] = true
				n++
			}
		}
	}
	return n
}

// BoolMask compares booleans under the total order false < true.
func BoolMask(vals []bool, c Cmp, ref bool, mask []bool) int {
	return OrderedMask(boolRanks(vals), c, boolRank(ref), mask)
}

func boolRank(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func boolRanks(vals []bool) []uint8 {
	out := make([]uint8, len(vals))
	for i, v := range vals {
		out[i] = boolRank(v)
	}
	return out
}
