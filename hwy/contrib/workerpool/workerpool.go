// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for bulk
// vector transforms. A Pool is created once and reused across many slice
// operations, so large transforms pay for goroutine startup only once.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Static chunks, one per worker
//	pool.ParallelFor(numVectors, func(start, end int) {
//	    transform(start, end)
//	})
//
//	// Work stealing in batches, stopping on the first error
//	err := pool.ParallelForBatched(ctx, numSamples, 256, func(start, end int) error {
//	    return check(start, end)
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe. A closed pool keeps working but
// runs everything on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// run hands fn to count workers and waits for all of them.
func (p *Pool) run(count int, fn func(worker int)) {
	var wg sync.WaitGroup
	wg.Add(count)
	for w := range count {
		p.workC <- workItem{fn: func() { fn(w) }, barrier: &wg}
	}
	wg.Wait()
}

// ParallelFor calls fn over [0, n) split into one contiguous range per
// worker, and blocks until all ranges are done. The split depends only on
// n and the pool size.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	p.run((n+chunk-1)/chunk, func(w int) {
		start := w * chunk
		fn(start, min(start+chunk, n))
	})
}

// ParallelForBatched calls fn over [0, n) in batches of batchSize grabbed
// by the workers with an atomic counter, which balances uneven work.
// It stops handing out batches once ctx is done or fn returns an error,
// and returns the first error seen or the context's error.
func (p *Pool) ParallelForBatched(ctx context.Context, n, batchSize int, fn func(start, end int) error) error {
	if n <= 0 {
		return ctx.Err()
	}
	batchSize = max(batchSize, 1)
	numBatches := (n + batchSize - 1) / batchSize

	var (
		next     atomic.Int64
		errOnce  sync.Once
		firstErr error
		stop     atomic.Bool
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		stop.Store(true)
	}
	loop := func(int) {
		for !stop.Load() {
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}
			batch := int(next.Add(1)) - 1
			if batch >= numBatches {
				return
			}
			start := batch * batchSize
			if err := fn(start, min(start+batchSize, n)); err != nil {
				fail(err)
				return
			}
		}
	}

	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		loop(0)
	} else {
		p.run(workers, loop)
	}
	return firstErr
}
