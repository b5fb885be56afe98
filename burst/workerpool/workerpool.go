// Copyright 2026 The burstgen Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for index-parallel
// jobs that may fail.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Do(len(sizes), func(i int) error {
//	    out[i], err = generate(sizes[i])
//	    return err
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of workers spawned once and reused by every Do call.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
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

// Close shuts the pool down. Calling Close more than once is safe; Do on a
// closed pool runs sequentially.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Do calls fn for every index in [0, n), handing indices out to the
// workers with atomic work stealing, and blocks until all calls returned.
// Indices keep being processed after a failure; the returned error is the
// one of the smallest failing index, so the result does not depend on
// scheduling.
func (p *Pool) Do(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	errs := make([]error, n)
	var nextIdx atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					errs[idx] = fn(idx)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
