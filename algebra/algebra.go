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

// Package algebra defines the operation set shared by the 4-component
// algebra backends.
//
// Go has no operator overloading, so every operator is a method and the
// backends are tied together with F-bounded type constraints rather than an
// interface value. Code written against the constraints is instantiated once
// per backend and never pays for dynamic dispatch:
//
//	func Midpoint[V algebra.Vector[V, S], S algebra.Scalar[S]](a, b V) V {
//		return a.Add(b).Mul(algebra.Lit[S](0.5))
//	}
//
// The three backends live in the subpackages reference, aligned and
// intrinsic. They agree bit for bit on every exactly representable input;
// the only deliberate differences are the approximate LengthFast and
// NormalizeFast, and the summation order of Dot in the intrinsic backend.
//
// No operation guards against zero lengths or NaN. Those propagate as
// IEEE-754 infinities and NaNs in every backend.
package algebra

// Scalar is a single float32 value. S is the implementing type itself.
//
// Of ignores its receiver; it exists so generic code can build an S from a
// constant through the zero value.
type Scalar[S any] interface {
	Of(f float32) S
	Float32() float32

	Add(a S) S
	Sub(a S) S
	Mul(a S) S
	Div(a S) S
	Neg() S
	Abs() S
	Sqrt() S
	Min(a S) S
	Max(a S) S
	Pow(e S) S
	Exp() S

	Eq(a S) bool
	Less(a S) bool
	LessEq(a S) bool
}

// Vector is a 4-component (x, y, z, w) value. Points carry w = 1 and
// directions w = 0 by caller convention.
type Vector[V any, S any] interface {
	Of(x, y, z, w float32) V
	Array() [4]float32

	// Elem returns lane i. SetElem returns a copy with only lane i replaced.
	// Both panic when i is outside 0..3.
	Elem(i int) S
	SetElem(i int, s S) V

	// Eq is exact equality of all four lanes; Ne is true when any lane
	// differs.
	Eq(a V) bool
	Ne(a V) bool

	Add(a V) V
	Sub(a V) V
	Mul(s S) V
	Div(s S) V
	Neg() V

	Length() S
	LengthFast() S
	LengthSqr() S
	Normalize() V
	NormalizeFast() V

	// Dot is the 4D dot product, including w.
	Dot(a V) S
	// Cross is the 3D cross product. Both w lanes must be zero; the result
	// has w = 0.
	Cross(a V) V

	// Project returns the component of a parallel to the receiver.
	Project(a V) V
	// Reject returns the component of a perpendicular to the receiver.
	Reject(a V) V
	// Reflect mirrors a about the plane orthogonal to the receiver.
	Reflect(a V) V
	Hadamard(a V) V
}

// Matrix is a 4x4 matrix of four column vectors.
type Matrix[M any, V any, S any] interface {
	// OfRows builds a matrix from row-major values, the way the matrix is
	// written on paper.
	OfRows(rows [4][4]float32) M
	FromColumns(x, y, z, w V) M
	Col(i int) V

	Eq(a M) bool
	Ne(a M) bool

	Add(a M) M
	Sub(a M) M
	Mul(s S) M
	Div(s S) M
	MulVec(v V) V
	MulMat(a M) M
	Transpose() M
	Hadamard(a M) M
}

// Info describes a backend.
type Info struct {
	// Name is the short name used in reports and on the command line.
	Name string
	// Alignment is the byte alignment benchmark buffers of this backend's
	// values are allocated with. Zero means natural alignment.
	Alignment int
}

// Lit converts a constant to a backend scalar.
func Lit[S Scalar[S]](f float32) S {
	var zero S
	return zero.Of(f)
}

// Vec builds a backend vector.
func Vec[V Vector[V, S], S Scalar[S]](x, y, z, w float32) V {
	var zero V
	return zero.Of(x, y, z, w)
}

// Point builds a vector with w = 1.
func Point[V Vector[V, S], S Scalar[S]](x, y, z float32) V {
	return Vec[V, S](x, y, z, 1)
}

// Dir builds a vector with w = 0.
func Dir[V Vector[V, S], S Scalar[S]](x, y, z float32) V {
	return Vec[V, S](x, y, z, 0)
}

// Mat builds a backend matrix from row-major values.
func Mat[M Matrix[M, V, S], V Vector[V, S], S Scalar[S]](rows [4][4]float32) M {
	var zero M
	return zero.OfRows(rows)
}

// Scale is scalar * vector. It is defined as v.Mul(s), so it commutes with
// vector * scalar by construction.
func Scale[V Vector[V, S], S Scalar[S]](s S, v V) V {
	return v.Mul(s)
}
