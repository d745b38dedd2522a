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

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.NumWorkers())

	def := New(0)
	defer def.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), def.NumWorkers())
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	results := make([]int, 100)
	pool.ParallelForAtomic(len(results), func(i int) {
		results[i] = i * 2
	})
	for i, r := range results {
		assert.Equal(t, i*2, r)
	}
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var calls atomic.Int32
	hits := make([]int32, 103)
	pool.ParallelForAtomicBatched(len(hits), 10, func(start, end int) {
		calls.Add(1)
		assert.LessOrEqual(t, end-start, 10)
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	assert.Equal(t, int32(11), calls.Load())
	for i, h := range hits {
		require.Equal(t, int32(1), h, "i=%d", i)
	}

	// A zero batch size means one index per batch.
	var n atomic.Int32
	pool.ParallelForAtomicBatched(5, 0, func(start, end int) { n.Add(int32(end - start)) })
	assert.Equal(t, int32(5), n.Load())
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var calls int
	pool.ParallelForAtomicBatched(10, 2, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	})
	pool.ParallelForAtomic(3, func(int) { calls++ })
	assert.Equal(t, 4, calls)
}

func BenchmarkParallelForAtomicBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	data := make([]float32, 1<<16)
	for b.Loop() {
		pool.ParallelForAtomicBatched(len(data), 1024, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] += 1
			}
		})
	}
}
