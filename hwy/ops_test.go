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

func TestArithmetic(t *testing.T) {
	a := Set(1, 2, 3, 4)
	b := Set(8, 6, 4, 2)

	tests := []struct {
		name string
		got  Float32x4
		want [4]float32
	}{
		{"Add", Add(a, b), [4]float32{9, 8, 7, 6}},
		{"Sub", Sub(a, b), [4]float32{-7, -4, -1, 2}},
		{"Mul", Mul(a, b), [4]float32{8, 12, 12, 8}},
		{"Div", Div(b, a), [4]float32{8, 3, 4.0 / 3.0, 0.5}},
		{"Min", Min(a, b), [4]float32{1, 2, 3, 2}},
		{"Max", Max(a, b), [4]float32{8, 6, 4, 4}},
		{"Sqrt", Sqrt(Set(1, 4, 9, 16)), [4]float32{1, 2, 3, 4}},
		{"Abs", Abs(Set(-1, 2, -3, 0)), [4]float32{1, 2, 3, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.Array(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNegFlipsSignOfZero(t *testing.T) {
	v := Neg(Set(0, 1, -2, float32(math.Inf(1))))
	if bits := math.Float32bits(v.Lane(0)); bits != 0x80000000 {
		t.Errorf("Neg(+0) bits = %#x, want 0x80000000", bits)
	}
	if v.Lane(1) != -1 || v.Lane(2) != 2 || !math.IsInf(float64(v.Lane(3)), -1) {
		t.Errorf("Neg = %v", v.Array())
	}
}

func TestRSqrtError(t *testing.T) {
	const bound = 1.5 / 4096
	for _, x := range []float32{1e-30, 0.001, 0.25, 1, 2, 3, 10, 12345.678, 1e20} {
		got := RSqrt(Set1(x)).Lane(0)
		rel := math.Abs(float64(got)*math.Sqrt(float64(x)) - 1)
		if rel > bound {
			t.Errorf("RSqrt(%g) = %g, relative error %g > %g", x, got, rel, bound)
		}
	}
}

func TestRSqrtSpecialValues(t *testing.T) {
	v := RSqrt(Set(0, float32(math.Inf(1)), -1, float32(math.NaN())))
	if !math.IsInf(float64(v.Lane(0)), 1) {
		t.Errorf("RSqrt(0) = %g, want +Inf", v.Lane(0))
	}
	if v.Lane(1) != 0 {
		t.Errorf("RSqrt(+Inf) = %g, want 0", v.Lane(1))
	}
	if !math.IsNaN(float64(v.Lane(2))) || !math.IsNaN(float64(v.Lane(3))) {
		t.Errorf("RSqrt of negative or NaN = %v, want NaN", v.Array())
	}
}

func TestMulAdd(t *testing.T) {
	a := Set1(1 + 1.0/(1<<12))
	c := Set1(-1)
	for _, level := range Levels() {
		t.Run(level.String(), func(t *testing.T) {
			defer SetLevel(level)()
			got := MulAdd(a, a, c).Lane(0)
			fused := float32(math.FMA(float64(a.Lane(0)), float64(a.Lane(0)), -1))
			split := Add(Mul(a, a), c).Lane(0)
			want := split
			if HasFMA() {
				want = fused
			}
			if got != want {
				t.Errorf("MulAdd = %g, want %g (fma=%v)", got, want, HasFMA())
			}
		})
	}
}

func TestCompare(t *testing.T) {
	a := Set(1, 2, float32(math.NaN()), 4)
	b := Set(1, 3, float32(math.NaN()), 4)

	if got := Equal(a, b).Bits(); got != 0b1001 {
		t.Errorf("Equal bits = %04b, want 1001", got)
	}
	if got := NotEqual(a, b).Bits(); got != 0b0110 {
		t.Errorf("NotEqual bits = %04b, want 0110", got)
	}
	if got := LessThan(a, b).Bits(); got != 0b0010 {
		t.Errorf("LessThan bits = %04b, want 0010", got)
	}
	if !Equal(b, b).AnyTrue() || Equal(b, b).AllTrue() {
		t.Errorf("NaN lane should keep Equal(b, b) from being all true")
	}
}

func TestIsBroadcast(t *testing.T) {
	if !Set1(3).IsBroadcast() {
		t.Error("Set1(3) is not a broadcast")
	}
	if !Set1(float32(math.NaN())).IsBroadcast() {
		t.Error("broadcast NaN is not a broadcast")
	}
	if Set(1, 1, 1, 2).IsBroadcast() {
		t.Error("{1,1,1,2} reported as broadcast")
	}
	if Set(0, 0, float32(math.Copysign(0, -1)), 0).IsBroadcast() {
		t.Error("mixed signed zeros reported as broadcast")
	}
}
