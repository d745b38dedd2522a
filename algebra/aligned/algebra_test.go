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
	"math"
	"testing"

	"github.com/ajroetker/vec4bench/algebra/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bits compares lanes including the sign of zero and NaN payloads.
func bits(a [4]float32) [4]uint32 {
	var b [4]uint32
	for i, f := range a {
		b[i] = math.Float32bits(f)
	}
	return b
}

var inputs = [][4]float32{
	{1, 2, 3, 4},
	{2, 3, 4, 5},
	{0.1, -7.25, 1e-3, 0},
	{3.3, 0.7, -2.5, 0},
	{0, 0, 0, 0},
	{-0, 1e30, -1e30, 1},
	{float32(math.Inf(1)), 1, 2, 3},
}

func TestMatchesReference(t *testing.T) {
	for _, ai := range inputs {
		for _, bi := range inputs {
			a, b := New(ai[0], ai[1], ai[2], ai[3]), New(bi[0], bi[1], bi[2], bi[3])
			ra, rb := reference.New(ai[0], ai[1], ai[2], ai[3]), reference.New(bi[0], bi[1], bi[2], bi[3])
			s := rb.Elem(1)

			check := func(name string, got Vector, want reference.Vector) {
				t.Helper()
				assert.Equal(t, bits(want.Array()), bits(got.Array()), "%s(%v, %v)", name, ai, bi)
			}
			check("Add", a.Add(b), ra.Add(rb))
			check("Sub", a.Sub(b), ra.Sub(rb))
			check("Mul", a.Mul(s), ra.Mul(s))
			check("Div", a.Div(s), ra.Div(s))
			check("Neg", a.Neg(), ra.Neg())
			check("Normalize", a.Normalize(), ra.Normalize())
			check("Project", a.Project(b), ra.Project(rb))
			check("Reject", a.Reject(b), ra.Reject(rb))
			check("Reflect", a.Reflect(b), ra.Reflect(rb))
			check("Hadamard", a.Hadamard(b), ra.Hadamard(rb))
			if ai[3] == 0 && bi[3] == 0 {
				check("Cross", a.Cross(b), ra.Cross(rb))
			}
			assert.Equal(t, math.Float32bits(float32(ra.Dot(rb))), math.Float32bits(float32(a.Dot(b))),
				"Dot(%v, %v)", ai, bi)
			assert.Equal(t, a.Eq(b), ra.Eq(rb))
			assert.Equal(t, a.Ne(b), ra.Ne(rb))
		}
	}
}

func TestElements(t *testing.T) {
	v := New(1, 2, 3, 4)
	assert.Equal(t, Scalar(3), v.Elem(2))
	assert.Equal(t, [4]float32{1, 2, 7, 4}, v.SetElem(2, 7).Array())
	assert.Equal(t, [4]float32{1, 2, 3, 4}, v.Array())
	assert.Panics(t, func() { v.Elem(-1) })
	assert.Panics(t, func() { v.SetElem(4, 0) })
	assert.Equal(t, v.Mul(2), Scale(2, v))
}

func TestMatrixMatchesReference(t *testing.T) {
	rows := [4][4]float32{
		{1, 2, 3, 4},
		{2, 3, 4, 3},
		{3, 4, 3, 2},
		{4, 3, 2, 1},
	}
	other := [4][4]float32{
		{0.5, 0, 0, 1},
		{0, -2, 1, 0},
		{1, 0, 0.25, 0},
		{0, 1, 0, 3},
	}
	var m Matrix
	var rm reference.Matrix
	a, b := m.OfRows(rows), m.OfRows(other)
	ra, rb := rm.OfRows(rows), rm.OfRows(other)

	for j := range 4 {
		require.Equal(t, ra.Col(j).Array(), a.Col(j).Array())
		assert.Equal(t, ra.MulMat(rb).Col(j).Array(), a.MulMat(b).Col(j).Array())
		assert.Equal(t, ra.Transpose().Col(j).Array(), a.Transpose().Col(j).Array())
		assert.Equal(t, ra.Hadamard(rb).Col(j).Array(), a.Hadamard(b).Col(j).Array())
		assert.Equal(t, ra.Add(rb).Sub(ra).Col(j).Array(), a.Add(b).Sub(a).Col(j).Array())
		assert.Equal(t, ra.Mul(3).Div(0.5).Col(j).Array(), a.Mul(3).Div(0.5).Col(j).Array())
	}

	x := New(1, 2, 3, 4)
	assert.Equal(t, rb.MulVec(reference.New(1, 2, 3, 4)).Array(), b.MulVec(x).Array())
	assert.True(t, a.Transpose().Transpose().Eq(a))
	assert.True(t, m.FromColumns(a.Col(0), a.Col(1), a.Col(2), a.Col(3)).Eq(a))
	assert.True(t, a.Ne(b))
	assert.Panics(t, func() { a.Col(4) })
}

func TestInfo(t *testing.T) {
	assert.Equal(t, "aligned", Info.Name)
	assert.Equal(t, 16, Info.Alignment)
}
