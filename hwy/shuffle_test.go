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

func TestShuffleImm(t *testing.T) {
	if got := ShuffleImm(3, 2, 1, 0); got != 0xe4 {
		t.Errorf("ShuffleImm(3,2,1,0) = %#x, want 0xe4", got)
	}
	if got := ShuffleImm(0, 0, 0, 0); got != 0 {
		t.Errorf("ShuffleImm(0,0,0,0) = %#x, want 0", got)
	}
}

func TestShuffle(t *testing.T) {
	a := Set(0, 1, 2, 3)
	b := Set(10, 11, 12, 13)

	tests := []struct {
		name string
		got  Float32x4
		want [4]float32
	}{
		{"identity", Shuffle(a, b, ShuffleImm(3, 2, 1, 0)), [4]float32{0, 1, 12, 13}},
		{"reverse", Swizzle(a, ShuffleImm(0, 1, 2, 3)), [4]float32{3, 2, 1, 0}},
		{"mixed", Shuffle(a, b, ShuffleImm(0, 3, 0, 2)), [4]float32{2, 0, 13, 10}},
		{"broadcast", Broadcast(b, 2), [4]float32{12, 12, 12, 12}},
		{"MoveLH", MoveLH(a, b), [4]float32{0, 1, 10, 11}},
		{"MoveHL", MoveHL(a, b), [4]float32{12, 13, 2, 3}},
		{"InterleaveLower", InterleaveLower(a, b), [4]float32{0, 10, 1, 11}},
		{"InterleaveUpper", InterleaveUpper(a, b), [4]float32{2, 12, 3, 13}},
		{"HAdd", HAdd(a, b), [4]float32{1, 5, 21, 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.Array(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsertLane(t *testing.T) {
	v := Set(1, 2, 3, 4)
	s := Set(9, 8, 7, 6)

	for i := range 4 {
		want := v.Array()
		want[i] = 9
		if got := InsertLane(v, i, s).Array(); got != want {
			t.Errorf("InsertLane(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestInsertLanePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("InsertLane(4) did not panic")
		}
	}()
	InsertLane(Zero(), 4, Zero())
}

func TestTranspose4(t *testing.T) {
	r0 := Set(0, 1, 2, 3)
	r1 := Set(4, 5, 6, 7)
	r2 := Set(8, 9, 10, 11)
	r3 := Set(12, 13, 14, 15)

	c0, c1, c2, c3 := Transpose4(r0, r1, r2, r3)
	want := [4][4]float32{
		{0, 4, 8, 12},
		{1, 5, 9, 13},
		{2, 6, 10, 14},
		{3, 7, 11, 15},
	}
	for i, c := range []Float32x4{c0, c1, c2, c3} {
		if got := c.Array(); got != want[i] {
			t.Errorf("column %d = %v, want %v", i, got, want[i])
		}
	}
}
