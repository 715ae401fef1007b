package operations

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Tables below parallelThreshold rows are scanned serially; the fan-out
// costs more than it saves on small inputs.
const (
	parallelThreshold = 4096
	chunkRows         = 2048
)

type chunk struct {
	lo, hi int
}

// chunks splits [0, n) into ranges of at most chunkRows rows.
// The split depends only on n, so chunked results are reproducible.
func chunks(n int) []chunk {
	if n == 0 {
		return nil
	}
	out := make([]chunk, 0, (n+chunkRows-1)/chunkRows)
	for lo := 0; lo < n; lo += chunkRows {
		hi := lo + chunkRows
		if hi > n {
			hi = n
		}
		out = append(out, chunk{lo: lo, hi: hi})
	}
	return out
}

// mapChunks evaluates fn over each row range and returns the per-chunk
// results in ascending chunk order, regardless of completion order, so the
// caller's merge is deterministic. Chunks touch disjoint ranges; fn must
// not write outside [lo, hi).
func mapChunks[T any](n int, fn func(lo, hi int) T) []T {
	cs := chunks(n)
	out := make([]T, len(cs))

	if n < parallelThreshold {
		for i, c := range cs {
			out[i] = fn(c.lo, c.hi)
		}
		return out
	}

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, c := range cs {
		g.Go(func() error {
			out[i] = fn(c.lo, c.hi)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // chunk workers never return an error
	return out
}
