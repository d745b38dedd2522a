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

package hwy

import (
	"math"
	"testing"
)

func TestDot4Exact(t *testing.T) {
	a := Set(1, 2, 3, 4)
	b := Set(5, 6, 7, 8)

	for _, level := range Levels() {
		t.Run(level.String(), func(t *testing.T) {
			defer SetLevel(level)()
			d := Dot4(a, b)
			if !d.IsBroadcast() {
				t.Errorf("Dot4 lanes differ: %v", d.Array())
			}
			if d.Lowest() != 70 {
				t.Errorf("Dot4 = %g, want 70", d.Lowest())
			}
		})
	}
}

func TestDot4Order(t *testing.T) {
	// 1e8 absorbs a 1 added to it, so the grouping shows in the result.
	left := Set(1e8, 1, -1e8, 1)
	rotated := Set(1e8, 1, 1, -1e8)
	ones := Set1(1)

	tests := []struct {
		level                 DispatchLevel
		wantLeft, wantRotated float32
	}{
		{DispatchScalar, 1, 0}, // strictly left to right
		{DispatchSSE2, 0, 2},   // (p0+p3)+(p2+p1)
		{DispatchSSE3, 0, 0},   // (p0+p1)+(p2+p3)
		{DispatchSSE41, 0, 0},
		{DispatchNEON, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			defer SetLevel(tt.level)()
			if got := Dot4(left, ones).Lowest(); got != tt.wantLeft {
				t.Errorf("Dot4(%v) = %g, want %g", left.Array(), got, tt.wantLeft)
			}
			if got := Dot4(rotated, ones).Lowest(); got != tt.wantRotated {
				t.Errorf("Dot4(%v) = %g, want %g", rotated.Array(), got, tt.wantRotated)
			}
		})
	}
}

func TestDot4NaN(t *testing.T) {
	a := Set(1, float32(math.NaN()), 1, 1)
	for _, level := range Levels() {
		t.Run(level.String(), func(t *testing.T) {
			defer SetLevel(level)()
			d := Dot4(a, Set1(1))
			if !d.IsBroadcast() || !math.IsNaN(float64(d.Lowest())) {
				t.Errorf("Dot4 with NaN = %v", d.Array())
			}
		})
	}
}
