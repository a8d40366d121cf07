// Package parallel splits read-only row work across CPU cores.
//
// Callers must only write to disjoint, index-addressed outputs from fn:
// chunks run concurrently and nothing is reduced here. Results are therefore
// independent of how the range was split.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Parallelize divides [0, items) into one contiguous chunk per CPU core and
// calls fn(start, end) for each chunk concurrently. The first error returned
// by any chunk is returned after all chunks finish.
func Parallelize(items int, fn func(start, end int) error) error {
	if items <= 0 {
		return nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}
	chunkSize := (items + numWorkers - 1) / numWorkers

	var g errgroup.Group
	g.SetLimit(numWorkers)
	for start := 0; start < items; start += chunkSize {
		s, e := start, start+chunkSize
		if e > items {
			e = items
		}
		g.Go(func() error {
			return fn(s, e)
		})
	}
	return g.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) on the calling goroutine when
// items <= threshold, and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int) error) error {
	if items <= threshold {
		if items <= 0 {
			return nil
		}
		return fn(0, items)
	}
	return Parallelize(items, fn)
}
