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

// Package reference is the scalar baseline backend: plain float32 fields and
// straight-line arithmetic. The other backends are checked against it.
package reference

import (
	"fmt"

	"github.com/ajroetker/vec4bench/algebra"
	"github.com/ajroetker/vec4bench/internal/assert"
)

// Info describes this backend.
var Info = algebra.Info{Name: "reference"}

// Vector holds its lanes as named fields.
type Vector struct {
	x, y, z, w float32
}

var _ algebra.Vector[Vector, Scalar] = Vector{}

// New returns the vector (x, y, z, w).
func New(x, y, z, w float32) Vector {
	return Vector{x, y, z, w}
}

// Scale returns s * v.
func Scale(s Scalar, v Vector) Vector {
	return v.Mul(s)
}

func (Vector) Of(x, y, z, w float32) Vector { return Vector{x, y, z, w} }

func (v Vector) Array() [4]float32 { return [4]float32{v.x, v.y, v.z, v.w} }

func (v Vector) Elem(i int) Scalar {
	switch i {
	case 0:
		return Scalar(v.x)
	case 1:
		return Scalar(v.y)
	case 2:
		return Scalar(v.z)
	case 3:
		return Scalar(v.w)
	}
	panic(fmt.Sprintf("reference: element index %d out of range", i))
}

func (v Vector) SetElem(i int, s Scalar) Vector {
	switch i {
	case 0:
		v.x = float32(s)
	case 1:
		v.y = float32(s)
	case 2:
		v.z = float32(s)
	case 3:
		v.w = float32(s)
	default:
		panic(fmt.Sprintf("reference: element index %d out of range", i))
	}
	return v
}

func (v Vector) Eq(a Vector) bool {
	return v.x == a.x && v.y == a.y && v.z == a.z && v.w == a.w
}

func (v Vector) Ne(a Vector) bool {
	return v.x != a.x || v.y != a.y || v.z != a.z || v.w != a.w
}

func (v Vector) Add(a Vector) Vector {
	return Vector{v.x + a.x, v.y + a.y, v.z + a.z, v.w + a.w}
}

func (v Vector) Sub(a Vector) Vector {
	return Vector{v.x - a.x, v.y - a.y, v.z - a.z, v.w - a.w}
}

func (v Vector) Mul(s Scalar) Vector {
	f := float32(s)
	return Vector{float32(v.x * f), float32(v.y * f), float32(v.z * f), float32(v.w * f)}
}

func (v Vector) Div(s Scalar) Vector {
	f := float32(s)
	return Vector{v.x / f, v.y / f, v.z / f, v.w / f}
}

func (v Vector) Neg() Vector {
	return Vector{-v.x, -v.y, -v.z, -v.w}
}

func (v Vector) Length() Scalar {
	return v.LengthSqr().Sqrt()
}

// LengthFast is exact in this backend.
func (v Vector) LengthFast() Scalar {
	return v.Length()
}

func (v Vector) LengthSqr() Scalar {
	return v.Dot(v)
}

func (v Vector) Normalize() Vector {
	return v.Div(v.Length())
}

// NormalizeFast is exact in this backend.
func (v Vector) NormalizeFast() Vector {
	return v.Div(v.Length())
}

// Dot sums the lane products left to right.
func (v Vector) Dot(a Vector) Scalar {
	return Scalar(float32(v.x*a.x) + float32(v.y*a.y) + float32(v.z*a.z) + float32(v.w*a.w))
}

func (v Vector) Cross(a Vector) Vector {
	assert.That(v.w == 0 && a.w == 0, "cross product of vectors with w != 0")
	return Vector{
		float32(v.y*a.z) - float32(v.z*a.y),
		float32(v.z*a.x) - float32(v.x*a.z),
		float32(v.x*a.y) - float32(v.y*a.x),
		0,
	}
}

func (v Vector) Project(a Vector) Vector {
	return v.Mul(v.Dot(a)).Div(v.LengthSqr())
}

func (v Vector) Reject(a Vector) Vector {
	return a.Sub(v.Project(a))
}

func (v Vector) Reflect(a Vector) Vector {
	return a.Sub(Scale(2, v.Project(a)))
}

func (v Vector) Hadamard(a Vector) Vector {
	return Vector{float32(v.x * a.x), float32(v.y * a.y), float32(v.z * a.z), float32(v.w * a.w)}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.x, v.y, v.z, v.w)
}
