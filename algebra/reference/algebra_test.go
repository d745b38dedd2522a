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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/vec4bench/internal/assert"
	testassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(2, 3, 4, 5)

	testassert.Equal(t, New(3, 5, 7, 9), a.Add(b))
	testassert.Equal(t, New(-1, -1, -1, -1), a.Sub(b))
	testassert.Equal(t, New(0.5, 1, 1.5, 2), a.Mul(0.5))
	testassert.Equal(t, New(2, 4, 6, 8), a.Div(0.5))
	testassert.Equal(t, New(-1, -2, -3, -4), a.Neg())
	testassert.Equal(t, a.Mul(3), Scale(3, a))
	testassert.Equal(t, Scalar(40), a.Dot(b))
	testassert.Equal(t, Scalar(30), a.LengthSqr())
	testassert.Equal(t, New(2, 6, 12, 20), a.Hadamard(b))
}

func TestVectorComparison(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(1, 1, 2, 3)

	testassert.True(t, a.Eq(a))
	testassert.False(t, a.Ne(a))
	testassert.False(t, a.Eq(b))
	testassert.True(t, a.Ne(b), "one differing lane is enough for Ne")

	nan := New(float32(math.NaN()), 0, 0, 0)
	testassert.False(t, nan.Eq(nan))
	testassert.True(t, nan.Ne(nan))
}

func TestVectorElements(t *testing.T) {
	v := New(1, 2, 3, 4)
	for i := range 4 {
		testassert.Equal(t, Scalar(i+1), v.Elem(i))
		w := v.SetElem(i, 9)
		want := v.Array()
		want[i] = 9
		testassert.Equal(t, want, w.Array())
	}
	testassert.Equal(t, New(1, 2, 3, 4), v, "SetElem must not mutate the receiver")
	testassert.Panics(t, func() { v.Elem(4) })
	testassert.Panics(t, func() { v.SetElem(-1, 0) })
}

func TestVectorLength(t *testing.T) {
	a := New(1, 2, 3, 4)
	testassert.Equal(t, Scalar(float32(math.Sqrt(30))), a.Length())
	testassert.Equal(t, a.Length(), a.LengthFast())
	testassert.InDelta(t, 1, float64(a.Normalize().LengthSqr()), 1e-6)
	testassert.Equal(t, a.Normalize(), a.NormalizeFast())

	zero := Vector{}.Normalize()
	for _, f := range zero.Array() {
		testassert.True(t, math.IsNaN(float64(f)), "0/0 must be NaN")
	}
}

func TestCross(t *testing.T) {
	a := New(2, 0, 0, 0)
	b := New(0, 3, 0, 0)

	testassert.Equal(t, New(0, 0, 6, 0), a.Cross(b))
	testassert.True(t, a.Cross(b).Add(b.Cross(a)).Eq(Vector{}))
	testassert.True(t, a.Cross(b).Eq(b.Cross(a).Neg()))

	if assert.Enabled {
		testassert.Panics(t, func() { New(1, 0, 0, 1).Cross(b) })
	}
}

func TestProjection(t *testing.T) {
	axis := New(2, 0, 0, 0)
	a := New(3, 4, 5, 0)

	testassert.Equal(t, New(3, 0, 0, 0), axis.Project(a))
	testassert.Equal(t, New(0, 4, 5, 0), axis.Reject(a))
	testassert.Equal(t, New(-3, 4, 5, 0), axis.Reflect(a))
}

func TestScalar(t *testing.T) {
	var s Scalar
	s = s.Of(4)
	testassert.Equal(t, Scalar(2), s.Sqrt())
	testassert.Equal(t, Scalar(16), s.Pow(2))
	testassert.Equal(t, Scalar(4), s.Neg().Abs())
	testassert.Equal(t, Scalar(3), s.Min(3))
	testassert.Equal(t, Scalar(4), s.Max(3))
	testassert.Equal(t, Scalar(1), Scalar(0).Exp())
	testassert.True(t, Scalar(1).Less(s))
	testassert.True(t, s.LessEq(s))
	testassert.Equal(t, float32(4), s.Float32())
}

func TestMatrix(t *testing.T) {
	var m Matrix
	a := m.OfRows([4][4]float32{
		{1, 2, 3, 4},
		{2, 3, 4, 3},
		{3, 4, 3, 2},
		{4, 3, 2, 1},
	})
	perm := m.OfRows([4][4]float32{
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
	})

	require.Equal(t, New(1, 2, 3, 4), a.Col(0), "columns are read down the rows")
	testassert.Panics(t, func() { a.Col(4) })

	x := New(1, 2, 3, 4)
	testassert.Equal(t, New(4, 3, 1, 2), perm.MulVec(x))

	want := m.OfRows([4][4]float32{
		{3, 4, 2, 1},
		{4, 3, 3, 2},
		{3, 2, 4, 3},
		{2, 1, 3, 4},
	})
	testassert.True(t, a.MulMat(perm).Eq(want))
	testassert.True(t, a.Transpose().Transpose().Eq(a))
	testassert.True(t, a.Transpose().MulMat(perm.Transpose()).Eq(perm.MulMat(a).Transpose()))
	testassert.True(t, a.Mul(2).Div(2).Eq(a))
	testassert.True(t, a.Add(a).Eq(a.Mul(2)))
	testassert.True(t, a.Sub(a).Eq(Matrix{}))
	testassert.True(t, a.Hadamard(perm).Eq(m.OfRows([4][4]float32{
		{0, 0, 0, 4},
		{0, 0, 4, 0},
		{3, 0, 0, 0},
		{0, 3, 0, 0},
	})))
	testassert.True(t, Columns(a.Col(0), a.Col(1), a.Col(2), a.Col(3)).Eq(a))
	testassert.True(t, a.Ne(perm))
}

// Normalize is idempotent only up to rounding: a unit vector's length is
// itself rounded, so a second pass may move lanes by an ulp or two.
func TestNormalizeIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	for range 1000 {
		v := New(r.Float32()*16, r.Float32()*16, r.Float32()*16, r.Float32()*16)
		n := v.Normalize()
		nn := n.Normalize()
		testassert.InDelta(t, 1, float64(nn.LengthSqr()), 1e-6, "|Normalize(Normalize(%v))|²", v)
		for i, want := range n.Array() {
			testassert.InDelta(t, want, nn.Array()[i], 1e-6, "lane %d of %v", i, v)
		}
	}
}
