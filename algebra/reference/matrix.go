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

package reference

import (
	"fmt"

	"github.com/ajroetker/vec4bench/algebra"
)

// Matrix is a 4x4 matrix stored as four named column vectors.
type Matrix struct {
	x, y, z, w Vector
}

var _ algebra.Matrix[Matrix, Vector, Scalar] = Matrix{}

// Columns returns the matrix with the given columns.
func Columns(x, y, z, w Vector) Matrix {
	return Matrix{x, y, z, w}
}

func (Matrix) OfRows(r [4][4]float32) Matrix {
	return Matrix{
		Vector{r[0][0], r[1][0], r[2][0], r[3][0]},
		Vector{r[0][1], r[1][1], r[2][1], r[3][1]},
		Vector{r[0][2], r[1][2], r[2][2], r[3][2]},
		Vector{r[0][3], r[1][3], r[2][3], r[3][3]},
	}
}

func (Matrix) FromColumns(x, y, z, w Vector) Matrix { return Matrix{x, y, z, w} }

func (m Matrix) Col(i int) Vector {
	switch i {
	case 0:
		return m.x
	case 1:
		return m.y
	case 2:
		return m.z
	case 3:
		return m.w
	}
	panic(fmt.Sprintf("reference: column index %d out of range", i))
}

func (m Matrix) Eq(a Matrix) bool {
	return m.x.Eq(a.x) && m.y.Eq(a.y) && m.z.Eq(a.z) && m.w.Eq(a.w)
}

func (m Matrix) Ne(a Matrix) bool {
	return m.x.Ne(a.x) || m.y.Ne(a.y) || m.z.Ne(a.z) || m.w.Ne(a.w)
}

func (m Matrix) Add(a Matrix) Matrix {
	return Matrix{m.x.Add(a.x), m.y.Add(a.y), m.z.Add(a.z), m.w.Add(a.w)}
}

func (m Matrix) Sub(a Matrix) Matrix {
	return Matrix{m.x.Sub(a.x), m.y.Sub(a.y), m.z.Sub(a.z), m.w.Sub(a.w)}
}

func (m Matrix) Mul(s Scalar) Matrix {
	return Matrix{m.x.Mul(s), m.y.Mul(s), m.z.Mul(s), m.w.Mul(s)}
}

func (m Matrix) Div(s Scalar) Matrix {
	return Matrix{m.x.Div(s), m.y.Div(s), m.z.Div(s), m.w.Div(s)}
}

// MulVec returns m * v. Each lane accumulates the column products left to
// right.
func (m Matrix) MulVec(v Vector) Vector {
	row := func(c0, c1, c2, c3 float32) float32 {
		return float32(c0*v.x) + float32(c1*v.y) + float32(c2*v.z) + float32(c3*v.w)
	}
	return Vector{
		row(m.x.x, m.y.x, m.z.x, m.w.x),
		row(m.x.y, m.y.y, m.z.y, m.w.y),
		row(m.x.z, m.y.z, m.z.z, m.w.z),
		row(m.x.w, m.y.w, m.z.w, m.w.w),
	}
}

// MulMat returns m * a.
func (m Matrix) MulMat(a Matrix) Matrix {
	return Matrix{m.MulVec(a.x), m.MulVec(a.y), m.MulVec(a.z), m.MulVec(a.w)}
}

func (m Matrix) Transpose() Matrix {
	return Matrix{
		Vector{m.x.x, m.y.x, m.z.x, m.w.x},
		Vector{m.x.y, m.y.y, m.z.y, m.w.y},
		Vector{m.x.z, m.y.z, m.z.z, m.w.z},
		Vector{m.x.w, m.y.w, m.z.w, m.w.w},
	}
}

func (m Matrix) Hadamard(a Matrix) Matrix {
	return Matrix{m.x.Hadamard(a.x), m.y.Hadamard(a.y), m.z.Hadamard(a.z), m.w.Hadamard(a.w)}
}
