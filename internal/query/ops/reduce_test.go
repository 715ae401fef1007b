package ops

import "testing"

func TestSum(t *testing.T) {
	if got := Sum([]int64{1, 2, 3}); got != 6 {
		t.Errorf("Sum = %d", got)
	}
	if got := Sum([]float64{0.5, 1.5}); got != 2.0 {
		t.Errorf("Sum = %f", got)
	}
	if got := Sum([]int64(nil)); got != 0 {
		t.Errorf("Sum of nothing = %d", got)
	}
}

func TestMinMaxAndMerge(t *testing.T) {
	b := MinMax([]int64{3, 1, 4, 1, 5})
	if b.Min != 1 || b.Max != 5 {
		t.Errorf("bounds %+v", b)
	}

	other := MinMax([]int64{0, 9})
	b.Merge(other)
	if b.Min != 0 || b.Max != 9 {
		t.Errorf("merged bounds %+v", b)
	}

	s := MinMax([]string{"pear", "apple"})
	if s.Min != "apple" || s.Max != "pear" {
		t.Errorf("string bounds %+v", s)
	}
}
