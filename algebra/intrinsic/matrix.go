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

package intrinsic

import (
	"fmt"

	"github.com/ajroetker/vec4bench/algebra"
	"github.com/ajroetker/vec4bench/hwy"
)

// Matrix holds four column registers.
type Matrix struct {
	c [4]hwy.Float32x4
}

var _ algebra.Matrix[Matrix, Vector, Scalar] = Matrix{}

func (Matrix) OfRows(r [4][4]float32) Matrix {
	rows := [4]hwy.Float32x4{hwy.Load(r[0][:]), hwy.Load(r[1][:]), hwy.Load(r[2][:]), hwy.Load(r[3][:])}
	var m Matrix
	m.c[0], m.c[1], m.c[2], m.c[3] = hwy.Transpose4(rows[0], rows[1], rows[2], rows[3])
	return m
}

func (Matrix) FromColumns(x, y, z, w Vector) Matrix {
	return Matrix{[4]hwy.Float32x4{x.r, y.r, z.r, w.r}}
}

func (m Matrix) Col(i int) Vector {
	if uint(i) >= 4 {
		panic(fmt.Sprintf("intrinsic: column index %d out of range", i))
	}
	return Vector{m.c[i]}
}

func (m Matrix) Eq(a Matrix) bool {
	mask := hwy.Equal(m.c[0], a.c[0]) & hwy.Equal(m.c[1], a.c[1]) &
		hwy.Equal(m.c[2], a.c[2]) & hwy.Equal(m.c[3], a.c[3])
	return mask.AllTrue()
}

func (m Matrix) Ne(a Matrix) bool {
	mask := hwy.NotEqual(m.c[0], a.c[0]) | hwy.NotEqual(m.c[1], a.c[1]) |
		hwy.NotEqual(m.c[2], a.c[2]) | hwy.NotEqual(m.c[3], a.c[3])
	return mask.AnyTrue()
}

func (m Matrix) apply(f func(c hwy.Float32x4) hwy.Float32x4) Matrix {
	return Matrix{[4]hwy.Float32x4{f(m.c[0]), f(m.c[1]), f(m.c[2]), f(m.c[3])}}
}

func (m Matrix) zip(a Matrix, f func(x, y hwy.Float32x4) hwy.Float32x4) Matrix {
	return Matrix{[4]hwy.Float32x4{f(m.c[0], a.c[0]), f(m.c[1], a.c[1]), f(m.c[2], a.c[2]), f(m.c[3], a.c[3])}}
}

func (m Matrix) Add(a Matrix) Matrix { return m.zip(a, hwy.Add) }
func (m Matrix) Sub(a Matrix) Matrix { return m.zip(a, hwy.Sub) }
func (m Matrix) Hadamard(a Matrix) Matrix { return m.zip(a, hwy.Mul) }

func (m Matrix) Mul(s Scalar) Matrix {
	return m.apply(func(c hwy.Float32x4) hwy.Float32x4 { return hwy.Mul(c, s.r) })
}

func (m Matrix) Div(s Scalar) Matrix {
	return m.apply(func(c hwy.Float32x4) hwy.Float32x4 { return hwy.Div(c, s.r) })
}

// MulVec broadcasts each lane of v, scales the matching column and adds the
// four products as (c0x + c1y) + (c2z + c3w).
func (m Matrix) MulVec(v Vector) Vector {
	r1 := hwy.Mul(m.c[0], hwy.Broadcast(v.r, 0))
	r2 := hwy.Mul(m.c[1], hwy.Broadcast(v.r, 1))
	r3 := hwy.Mul(m.c[2], hwy.Broadcast(v.r, 2))
	r4 := hwy.Mul(m.c[3], hwy.Broadcast(v.r, 3))
	return Vector{hwy.Add(hwy.Add(r1, r2), hwy.Add(r3, r4))}
}

func (m Matrix) MulMat(a Matrix) Matrix {
	return a.apply(func(c hwy.Float32x4) hwy.Float32x4 { return m.MulVec(Vector{c}).r })
}

// Transpose is the UNPCKLPS/UNPCKHPS/MOVLHPS/MOVHLPS sequence.
func (m Matrix) Transpose() Matrix {
	var t Matrix
	t.c[0], t.c[1], t.c[2], t.c[3] = hwy.Transpose4(m.c[0], m.c[1], m.c[2], m.c[3])
	return t
}
