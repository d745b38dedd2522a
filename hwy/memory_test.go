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

import "testing"

func TestAllocAligned(t *testing.T) {
	for _, n := range []int{1, 3, 4, 17, 1024} {
		s := AllocAligned[float32](n, RegisterAlign)
		if len(s) != n {
			t.Errorf("len = %d, want %d", len(s), n)
		}
		if !IsAligned(s, RegisterAlign) {
			t.Errorf("AllocAligned(%d) not %d-byte aligned", n, RegisterAlign)
		}
		for i := range s {
			s[i] = float32(i)
		}
		if s[n-1] != float32(n-1) {
			t.Errorf("last element = %g", s[n-1])
		}
	}
}

func TestAllocAlignedStruct(t *testing.T) {
	type quad struct{ x, y, z, w float32 }
	s := AllocAligned[quad](8, 64)
	if !IsAligned(s, 64) {
		t.Error("not 64-byte aligned")
	}
	if len(AllocAligned[quad](0, 16)) != 0 {
		t.Error("zero-length allocation not empty")
	}
}

func TestAllocAlignedBadAlign(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("alignment 12 did not panic")
		}
	}()
	AllocAligned[float32](4, 12)
}
