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

package aligned

import (
	"fmt"

	"github.com/ajroetker/vec4bench/algebra"
)

// Matrix is a 4x4 matrix stored as an array of four columns.
type Matrix struct {
	c [4]Vector
}

var _ algebra.Matrix[Matrix, Vector, Scalar] = Matrix{}

func (Matrix) OfRows(r [4][4]float32) Matrix {
	var m Matrix
	for i := range 4 {
		for j := range 4 {
			m.c[j].v[i] = r[i][j]
		}
	}
	return m
}

func (Matrix) FromColumns(x, y, z, w Vector) Matrix {
	return Matrix{[4]Vector{x, y, z, w}}
}

func (m Matrix) Col(i int) Vector {
	if uint(i) >= 4 {
		panic(fmt.Sprintf("aligned: column index %d out of range", i))
	}
	return m.c[i]
}

func (m Matrix) Eq(a Matrix) bool {
	for j := range m.c {
		if !m.c[j].Eq(a.c[j]) {
			return false
		}
	}
	return true
}

func (m Matrix) Ne(a Matrix) bool { return !m.Eq(a) }

func (m Matrix) Add(a Matrix) Matrix {
	for j := range m.c {
		m.c[j] = m.c[j].Add(a.c[j])
	}
	return m
}

func (m Matrix) Sub(a Matrix) Matrix {
	for j := range m.c {
		m.c[j] = m.c[j].Sub(a.c[j])
	}
	return m
}

func (m Matrix) Mul(s Scalar) Matrix {
	for j := range m.c {
		m.c[j] = m.c[j].Mul(s)
	}
	return m
}

func (m Matrix) Div(s Scalar) Matrix {
	for j := range m.c {
		m.c[j] = m.c[j].Div(s)
	}
	return m
}

// MulVec returns m * v, accumulating the column products left to right.
func (m Matrix) MulVec(v Vector) Vector {
	var r Vector
	for i := range 4 {
		acc := float32(m.c[0].v[i] * v.v[0])
		for k := 1; k < 4; k++ {
			acc += float32(m.c[k].v[i] * v.v[k])
		}
		r.v[i] = acc
	}
	return r
}

func (m Matrix) MulMat(a Matrix) Matrix {
	var r Matrix
	for j := range r.c {
		r.c[j] = m.MulVec(a.c[j])
	}
	return r
}

func (m Matrix) Transpose() Matrix {
	var r Matrix
	for i := range 4 {
		for j := range 4 {
			r.c[i].v[j] = m.c[j].v[i]
		}
	}
	return r
}

func (m Matrix) Hadamard(a Matrix) Matrix {
	for j := range m.c {
		m.c[j] = m.c[j].Hadamard(a.c[j])
	}
	return m
}
