package imgmetrics

import (
	"runtime"
	"sync"
)

// parallelEachRow runs fn(y) for every y in [0,rows) on its own goroutine,
// mirroring the teacher's per-row worker shape (every call site writes to a
// disjoint row, so no synchronization beyond the final Wait is needed).
func parallelEachRow(rows int, fn func(y int)) {
	var wg sync.WaitGroup
	for y := 0; y < rows; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			fn(y)
		}(y)
	}
	wg.Wait()
}

// reduceRowsStats partitions [0,rows) across GOMAXPROCS workers, invoking fn
// once per partition for its [start,end) row range, then folds the partial
// sum/sumSq/count back together in partition order — the ordered-reduction
// shape the spec's concurrency model requires for bit-exact reproducibility.
func reduceRowsStats(rows int, fn func(start, end int) (sum, sumSq float64, count int)) (float64, float64, int) {
	if rows <= 0 {
		return 0, 0, 0
	}
	procs := runtime.GOMAXPROCS(0)
	if procs > rows {
		procs = rows
	}
	if procs < 1 {
		procs = 1
	}

	type partial struct {
		sum, sumSq float64
		count      int
	}
	results := make([]partial, procs)
	rowsPerProc := (rows + procs - 1) / procs

	var wg sync.WaitGroup
	for p := 0; p < procs; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			start := p * rowsPerProc
			end := start + rowsPerProc
			if end > rows {
				end = rows
			}
			if start >= end {
				return
			}
			s, sq, c := fn(start, end)
			results[p] = partial{s, sq, c}
		}(p)
	}
	wg.Wait()

	var totalSum, totalSumSq float64
	var totalCount int
	for _, r := range results {
		totalSum += r.sum
		totalSumSq += r.sumSq
		totalCount += r.count
	}
	return totalSum, totalSumSq, totalCount
}

// reduceRows is reduceRowsStats without the second moment, for callers that
// only need a mean.
func reduceRows(rows int, fn func(start, end int) (sum float64, count int)) (float64, int) {
	sum, _, count := reduceRowsStats(rows, func(start, end int) (float64, float64, int) {
		s, c := fn(start, end)
		return s, 0, c
	})
	return sum, count
}
