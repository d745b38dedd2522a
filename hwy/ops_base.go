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

	"github.com/chewxy/math32"
)

// This file provides the lane-wise operations. Every lane is computed in
// float32 and rounded once, matching the corresponding packed instruction.

const signMask = uint32(1) << 31

func f32bits(f float32) uint32     { return math.Float32bits(f) }
func f32frombits(b uint32) float32 { return math.Float32frombits(b) }

// Add performs lane-wise addition (ADDPS).
func Add(a, b Float32x4) Float32x4 {
	return Float32x4{lanes: [4]float32{
		a.lanes[0] + b.lanes[0],
		a.lanes[1] + b.lanes[1],
		a.lanes[2] + b.lanes[2],
		a.lanes[3] + b.lanes[3],
	}}
}

// Sub performs lane-wise subtraction (SUBPS).
func Sub(a, b Float32x4) Float32x4 {
	return Float32x4{lanes: [4]float32{
		a.lanes[0] - b.lanes[0],
		a.lanes[1] - b.lanes[1],
		a.lanes[2] - b.lanes[2],
		a.lanes[3] - b.lanes[3],
	}}
}

// Mul performs lane-wise multiplication (MULPS). The conversions keep the
// compiler from fusing an inlined product into a following Add.
func Mul(a, b Float32x4) Float32x4 {
	return Float32x4{lanes: [4]float32{
		float32(a.lanes[0] * b.lanes[0]),
		float32(a.lanes[1] * b.lanes[1]),
		float32(a.lanes[2] * b.lanes[2]),
		float32(a.lanes[3] * b.lanes[3]),
	}}
}

// Div performs lane-wise division (DIVPS).
func Div(a, b Float32x4) Float32x4 {
	return Float32x4{lanes: [4]float32{
		a.lanes[0] / b.lanes[0],
		a.lanes[1] / b.lanes[1],
		a.lanes[2] / b.lanes[2],
		a.lanes[3] / b.lanes[3],
	}}
}

// Neg flips the sign bit of every lane (XORPS with -0.0), so Neg(+0) is -0.
func Neg(v Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.lanes {
		r.lanes[i] = f32frombits(f32bits(v.lanes[i]) ^ signMask)
	}
	return r
}

// Abs clears the sign bit of every lane (ANDNPS with -0.0).
func Abs(v Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.lanes {
		r.lanes[i] = f32frombits(f32bits(v.lanes[i]) &^ signMask)
	}
	return r
}

// Min returns the lane-wise minimum. Like MINPS, the second operand is
// returned when either lane is NaN.
func Min(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.lanes {
		if a.lanes[i] < b.lanes[i] {
			r.lanes[i] = a.lanes[i]
		} else {
			r.lanes[i] = b.lanes[i]
		}
	}
	return r
}

// Max returns the lane-wise maximum with MAXPS NaN handling.
func Max(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.lanes {
		if a.lanes[i] > b.lanes[i] {
			r.lanes[i] = a.lanes[i]
		} else {
			r.lanes[i] = b.lanes[i]
		}
	}
	return r
}

// Sqrt computes the correctly rounded square root of each lane (SQRTPS).
func Sqrt(v Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.lanes {
		r.lanes[i] = math32.Sqrt(v.lanes[i])
	}
	return r
}

// RSqrt approximates 1/sqrt(x) per lane the way RSQRTPS does: the result
// keeps the top 12 mantissa bits, rounded to nearest, so the relative error
// stays within the hardware bound of 1.5*2^-12.
func RSqrt(v Float32x4) Float32x4 {
	var r Float32x4
	for i := range r.lanes {
		r.lanes[i] = rsqrtApprox(v.lanes[i])
	}
	return r
}

func rsqrtApprox(x float32) float32 {
	r := 1 / math32.Sqrt(x)
	b := f32bits(r)
	if b&0x7f800000 == 0x7f800000 || b&0x7fffffff == 0 {
		// Inf, NaN and zero pass through unchanged.
		return r
	}
	// Round the low 11 mantissa bits away; a carry into the exponent is
	// still the correctly rounded value.
	const drop = 11
	b = (b + 1<<(drop-1)) &^ (1<<drop - 1)
	return f32frombits(b)
}

// MulAdd computes a*b + c per lane. When HasFMA is true the product is not
// rounded before the add (VFMADD231PS); otherwise it is MULPS then ADDPS.
func MulAdd(a, b, c Float32x4) Float32x4 {
	if !useFMA {
		return Add(Mul(a, b), c)
	}
	var r Float32x4
	for i := range r.lanes {
		r.lanes[i] = float32(math.FMA(float64(a.lanes[i]), float64(b.lanes[i]), float64(c.lanes[i])))
	}
	return r
}

// Equal compares lanes for equality (CMPEQPS + MOVMSKPS).
func Equal(a, b Float32x4) Mask {
	var m Mask
	for i := range a.lanes {
		if a.lanes[i] == b.lanes[i] {
			m |= 1 << i
		}
	}
	return m
}

// NotEqual compares lanes for inequality (CMPNEQPS + MOVMSKPS). NaN lanes
// are reported as not equal.
func NotEqual(a, b Float32x4) Mask {
	var m Mask
	for i := range a.lanes {
		if a.lanes[i] != b.lanes[i] {
			m |= 1 << i
		}
	}
	return m
}

// LessThan compares lanes with CMPLTPS semantics.
func LessThan(a, b Float32x4) Mask {
	var m Mask
	for i := range a.lanes {
		if a.lanes[i] < b.lanes[i] {
			m |= 1 << i
		}
	}
	return m
}

// ReduceSum adds all lanes left to right.
func ReduceSum(v Float32x4) float32 {
	return ((v.lanes[0] + v.lanes[1]) + v.lanes[2]) + v.lanes[3]
}
