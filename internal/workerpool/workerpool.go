// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs index ranges on a fixed set of goroutines. The
// benchmark itself is single-threaded; the pool only renders the model
// gallery and large trace images.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of long-lived workers fed from one channel. A closed pool
// runs everything on the calling goroutine.
type Pool struct {
	workers int
	tasks   chan func()
	once    sync.Once
	closed  atomic.Bool
}

// New starts a pool of n workers, or GOMAXPROCS workers when n <= 0.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		tasks:   make(chan func(), n*2),
	}
	for range n {
		go func() {
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int { return p.workers }

// Close stops the workers. It is safe to call more than once, but not
// concurrently with a running parallel loop.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// fanOut runs body on k workers and waits for all of them.
func (p *Pool) fanOut(k int, body func()) {
	var wg sync.WaitGroup
	wg.Add(k)
	for range k {
		p.tasks <- func() {
			defer wg.Done()
			body()
		}
	}
	wg.Wait()
}

// ParallelForAtomic calls fn once for every i in [0, n). Workers claim
// indices from a shared counter, so uneven items balance out.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched is ParallelForAtomic over batches of size
// indices.
func (p *Pool) ParallelForAtomicBatched(n, size int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	size = max(size, 1)
	batches := (n + size - 1) / size
	k := min(p.workers, batches)
	if k == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	p.fanOut(k, func() {
		for {
			start := int(next.Add(1)-1) * size
			if start >= n {
				return
			}
			fn(start, min(start+size, n))
		}
	})
}
