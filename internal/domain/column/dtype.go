package column

// DType identifies the element type of a column.
// It is fixed for the column's lifetime.
type DType string

const (
	Int64   DType = "INT64"
	Float64 DType = "FLOAT64"
	Utf8    DType = "UTF8"
	Bool    DType = "BOOL"
)

func (d DType) String() string {
	return string(d)
}

// Numeric reports whether the dtype participates in numeric aggregation
// (sum, mean).
func (d DType) Numeric() bool {
	return d == Int64 || d == Float64
}
