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

package perf

import "time"

// Timer accumulates elapsed monotonic time over Start/Stop pairs. A Stop
// that would add a negative duration adds nothing.
type Timer struct {
	start time.Time
	accum time.Duration
}

// Start begins an interval.
func (t *Timer) Start() {
	t.start = time.Now()
}

// Stop ends the interval begun by Start and adds it to the total.
func (t *Timer) Stop() {
	t.add(time.Since(t.start))
}

func (t *Timer) add(d time.Duration) {
	if d > 0 {
		t.accum += d
	}
}

// Reset clears the accumulated total.
func (t *Timer) Reset() {
	t.accum = 0
}

// Elapsed returns the accumulated total.
func (t *Timer) Elapsed() time.Duration {
	return t.accum
}

// Microseconds returns the accumulated total in microseconds.
func (t *Timer) Microseconds() float64 {
	return float64(t.accum) / float64(time.Microsecond)
}
