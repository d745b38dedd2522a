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

// Package intrinsic is the SIMD backend. Vectors are hwy.Float32x4 registers
// and every operation is written as the packed instruction sequence an SSE
// implementation would use: shuffles for element access and the cross
// product, a horizontal Dot4 whose summation order follows the dispatch
// level, and RSQRTPS for the fast variants.
//
// Results match the reference backend bit for bit except for LengthFast,
// NormalizeFast, and Dot when the summation order matters.
package intrinsic

import (
	"fmt"

	"github.com/ajroetker/vec4bench/algebra"
	"github.com/ajroetker/vec4bench/hwy"
	"github.com/ajroetker/vec4bench/internal/assert"
)

// Info describes this backend.
var Info = algebra.Info{Name: "intrinsic", Alignment: hwy.RegisterAlign}

// Vector is a register holding x, y, z, w in lanes 0 to 3.
type Vector struct {
	r hwy.Float32x4
}

var _ algebra.Vector[Vector, Scalar] = Vector{}

// New returns the vector (x, y, z, w).
func New(x, y, z, w float32) Vector {
	return Vector{hwy.Set(x, y, z, w)}
}

// Scale returns s * v.
func Scale(s Scalar, v Vector) Vector {
	return v.Mul(s)
}

func (Vector) Of(x, y, z, w float32) Vector { return New(x, y, z, w) }

func (v Vector) Array() [4]float32 { return v.r.Array() }

func checkIndex(i int) uint8 {
	if uint(i) >= 4 {
		panic(fmt.Sprintf("intrinsic: element index %d out of range", i))
	}
	return uint8(i)
}

// Elem broadcasts lane i with a single shuffle.
func (v Vector) Elem(i int) Scalar {
	l := checkIndex(i)
	return scalarOf(hwy.Swizzle(v.r, hwy.ShuffleImm(l, l, l, l)))
}

// SetElem merges lane 0 of s into lane i using move and shuffle steps only.
func (v Vector) SetElem(i int, s Scalar) Vector {
	return Vector{hwy.InsertLane(v.r, int(checkIndex(i)), s.r)}
}

func (v Vector) Eq(a Vector) bool { return hwy.Equal(v.r, a.r).AllTrue() }
func (v Vector) Ne(a Vector) bool { return hwy.NotEqual(v.r, a.r).AnyTrue() }

func (v Vector) Add(a Vector) Vector { return Vector{hwy.Add(v.r, a.r)} }
func (v Vector) Sub(a Vector) Vector { return Vector{hwy.Sub(v.r, a.r)} }
func (v Vector) Mul(s Scalar) Vector { return Vector{hwy.Mul(v.r, s.r)} }
func (v Vector) Div(s Scalar) Vector { return Vector{hwy.Div(v.r, s.r)} }
func (v Vector) Neg() Vector { return Vector{hwy.Neg(v.r)} }

func (v Vector) Length() Scalar {
	return scalarOf(hwy.Sqrt(hwy.Dot4(v.r, v.r)))
}

// LengthFast is |v|² * rsqrt(|v|²).
func (v Vector) LengthFast() Scalar {
	lsqr := hwy.Dot4(v.r, v.r)
	return scalarOf(hwy.Mul(lsqr, hwy.RSqrt(lsqr)))
}

func (v Vector) LengthSqr() Scalar {
	return scalarOf(hwy.Dot4(v.r, v.r))
}

func (v Vector) Normalize() Vector {
	return Vector{hwy.Div(v.r, hwy.Sqrt(hwy.Dot4(v.r, v.r)))}
}

func (v Vector) NormalizeFast() Vector {
	return Vector{hwy.Mul(v.r, hwy.RSqrt(hwy.Dot4(v.r, v.r)))}
}

func (v Vector) Dot(a Vector) Scalar {
	return scalarOf(hwy.Dot4(v.r, a.r))
}

// Cross rotates both operands so that each lane pairs the right factors,
// then subtracts the two product registers. The w lane is w*aw - w*aw.
func (v Vector) Cross(a Vector) Vector {
	assert.That(v.r.Lane(3) == 0 && a.r.Lane(3) == 0, "cross product of vectors with w != 0")

	zxyw := hwy.ShuffleImm(3, 1, 0, 2)
	yzxw := hwy.ShuffleImm(3, 0, 2, 1)

	// {z*ax, x*ay, y*az, w*aw}
	p1 := hwy.Mul(hwy.Swizzle(v.r, zxyw), a.r)
	// {y*ax, z*ay, x*az, w*aw}
	p2 := hwy.Mul(hwy.Swizzle(v.r, yzxw), a.r)

	return Vector{hwy.Sub(hwy.Swizzle(p1, zxyw), hwy.Swizzle(p2, yzxw))}
}

// Project scales the receiver by (v·a)/(v·v).
func (v Vector) Project(a Vector) Vector {
	lsqr := hwy.Dot4(v.r, v.r)
	dota := hwy.Dot4(v.r, a.r)
	return Vector{hwy.Mul(v.r, hwy.Div(dota, lsqr))}
}

func (v Vector) Reject(a Vector) Vector {
	return Vector{hwy.Sub(a.r, v.Project(a).r)}
}

// Reflect computes a - 2*proj, fused when the level has FMA. Doubling is
// exact, so both forms round the same way.
func (v Vector) Reflect(a Vector) Vector {
	proj := v.Project(a).r
	if hwy.HasFMA() {
		return Vector{hwy.MulAdd(proj, hwy.Set1(-2), a.r)}
	}
	return Vector{hwy.Sub(a.r, hwy.Mul(hwy.Set1(2), proj))}
}

func (v Vector) Hadamard(a Vector) Vector { return Vector{hwy.Mul(v.r, a.r)} }

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.r.Lane(0), v.r.Lane(1), v.r.Lane(2), v.r.Lane(3))
}
