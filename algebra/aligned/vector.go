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

// Package aligned is the cache-aligned scalar backend. Lanes live in an
// array and are processed in loops, and benchmark buffers of its values are
// allocated on 16-byte boundaries. It shares the reference Scalar.
package aligned

import (
	"fmt"

	"github.com/ajroetker/vec4bench/algebra"
	"github.com/ajroetker/vec4bench/algebra/reference"
	"github.com/ajroetker/vec4bench/hwy"
	"github.com/ajroetker/vec4bench/internal/assert"
)

// Info describes this backend.
var Info = algebra.Info{Name: "aligned", Alignment: hwy.RegisterAlign}

// Scalar is the reference scalar.
type Scalar = reference.Scalar

// Vector is four lanes in x, y, z, w order.
type Vector struct {
	v [4]float32
}

var _ algebra.Vector[Vector, Scalar] = Vector{}

// New returns the vector (x, y, z, w).
func New(x, y, z, w float32) Vector {
	return Vector{[4]float32{x, y, z, w}}
}

// Scale returns s * v.
func Scale(s Scalar, v Vector) Vector {
	return v.Mul(s)
}

func (Vector) Of(x, y, z, w float32) Vector { return New(x, y, z, w) }

func (v Vector) Array() [4]float32 { return v.v }

func (v Vector) Elem(i int) Scalar {
	if uint(i) >= 4 {
		panic(fmt.Sprintf("aligned: element index %d out of range", i))
	}
	return Scalar(v.v[i])
}

func (v Vector) SetElem(i int, s Scalar) Vector {
	if uint(i) >= 4 {
		panic(fmt.Sprintf("aligned: element index %d out of range", i))
	}
	v.v[i] = float32(s)
	return v
}

func (v Vector) Eq(a Vector) bool {
	for i := range v.v {
		if v.v[i] != a.v[i] {
			return false
		}
	}
	return true
}

func (v Vector) Ne(a Vector) bool {
	return !v.Eq(a)
}

func (v Vector) Add(a Vector) Vector {
	for i := range v.v {
		v.v[i] += a.v[i]
	}
	return v
}

func (v Vector) Sub(a Vector) Vector {
	for i := range v.v {
		v.v[i] -= a.v[i]
	}
	return v
}

func (v Vector) Mul(s Scalar) Vector {
	f := float32(s)
	for i := range v.v {
		v.v[i] = float32(v.v[i] * f)
	}
	return v
}

func (v Vector) Div(s Scalar) Vector {
	f := float32(s)
	for i := range v.v {
		v.v[i] /= f
	}
	return v
}

func (v Vector) Neg() Vector {
	for i := range v.v {
		v.v[i] = -v.v[i]
	}
	return v
}

func (v Vector) Length() Scalar     { return v.LengthSqr().Sqrt() }
func (v Vector) LengthFast() Scalar { return v.Length() }
func (v Vector) LengthSqr() Scalar  { return v.Dot(v) }

func (v Vector) Normalize() Vector     { return v.Div(v.Length()) }
func (v Vector) NormalizeFast() Vector { return v.Div(v.Length()) }

// Dot sums the lane products left to right.
func (v Vector) Dot(a Vector) Scalar {
	sum := float32(v.v[0] * a.v[0])
	for i := 1; i < 4; i++ {
		sum += float32(v.v[i] * a.v[i])
	}
	return Scalar(sum)
}

func (v Vector) Cross(a Vector) Vector {
	assert.That(v.v[3] == 0 && a.v[3] == 0, "cross product of vectors with w != 0")
	return Vector{[4]float32{
		float32(v.v[1]*a.v[2]) - float32(v.v[2]*a.v[1]),
		float32(v.v[2]*a.v[0]) - float32(v.v[0]*a.v[2]),
		float32(v.v[0]*a.v[1]) - float32(v.v[1]*a.v[0]),
		0,
	}}
}

func (v Vector) Project(a Vector) Vector {
	return v.Mul(v.Dot(a)).Div(v.LengthSqr())
}

func (v Vector) Reject(a Vector) Vector {
	return a.Sub(v.Project(a))
}

func (v Vector) Reflect(a Vector) Vector {
	return a.Sub(v.Project(a).Mul(2))
}

func (v Vector) Hadamard(a Vector) Vector {
	for i := range v.v {
		v.v[i] = float32(v.v[i] * a.v[i])
	}
	return v
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.v[0], v.v[1], v.v[2], v.v[3])
}
