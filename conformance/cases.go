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

package conformance

import (
	"errors"
	"fmt"

	"github.com/ajroetker/vec4bench/algebra"
	"github.com/ajroetker/vec4bench/intersect"
	"github.com/chewxy/math32"
)

// checker collects the failed expectations of one case.
type checker struct {
	errs []error
}

func (c *checker) expect(ok bool, format string, args ...any) {
	if !ok {
		c.errs = append(c.errs, fmt.Errorf(format, args...))
	}
}

func (c *checker) err() error { return errors.Join(c.errs...) }

func panics(f func()) (did bool) {
	defer func() {
		if recover() != nil {
			did = true
		}
	}()
	f()
	return false
}

var (
	matA = [4][4]float32{
		{1, 2, 3, 4},
		{2, 3, 4, 3},
		{3, 4, 3, 2},
		{4, 3, 2, 1},
	}
	// matP permutes (x, y, z, w) to (w, z, x, y).
	matP = [4][4]float32{
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
	}
	matI = [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
)

// Cases returns the suite for one backend, in report order.
func Cases[M algebra.Matrix[M, V, S], V algebra.Vector[V, S], S algebra.Scalar[S]]() []Case {
	return []Case{
		{"testComparison", testComparison[V, S]},
		{"testElements", testElements[V, S]},
		{"testAlgebraic", testAlgebraic[V, S]},
		{"testLength", testLength[V, S]},
		{"testDotProduct", testDotProduct[V, S]},
		{"testCrossProduct", testCrossProduct[V, S]},
		{"testProjection", testProjection[V, S]},
		{"testHadamard", testHadamard[M, V, S]},
		{"testMatrixScalarProduct", testMatrixScalarProduct[M, V, S]},
		{"testMatrixVectorProduct", testMatrixVectorProduct[M, V, S]},
		{"testMatrixMatrixProduct", testMatrixMatrixProduct[M, V, S]},
		{"testMatrixTranspose", testMatrixTranspose[M, V, S]},
		{"testHitSphere", testHitSphere[V, S]},
		{"testHitCapsule", testHitCapsule[V, S]},
	}
}

func testComparison[V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	a := algebra.Vec[V, S](1, 2, 3, 4)
	b := algebra.Vec[V, S](1, 1, 2, 3)

	c.expect(!a.Ne(a), "a != a")
	c.expect(a.Eq(a), "!(a == a)")
	c.expect(!a.Eq(b), "a == b")
	c.expect(a.Ne(b), "!(a != b)")

	// One differing lane is enough.
	c.expect(a.Ne(algebra.Vec[V, S](1, 2, 3, 5)), "w lane ignored by !=")

	lit := algebra.Lit[S]
	c.expect(lit(1).Less(lit(2)) && !lit(2).Less(lit(1)), "scalar <")
	c.expect(lit(2).LessEq(lit(2)) && lit(2).Eq(lit(2)), "scalar <=")
	return c.err()
}

func testElements[V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	a := algebra.Vec[V, S](1, 2, 3, 4)

	for i := range 4 {
		got := a.Elem(i).Float32()
		c.expect(got == float32(i+1), "a[%d] = %g, want %d", i, got, i+1)
	}

	b := a.SetElem(2, algebra.Lit[S](9))
	c.expect(b.Eq(algebra.Vec[V, S](1, 2, 9, 4)), "a[2] = 9 gave %v", b)
	c.expect(a.Eq(algebra.Vec[V, S](1, 2, 3, 4)), "SetElem modified its receiver: %v", a)

	c.expect(panics(func() { a.Elem(4) }), "a[4] did not panic")
	c.expect(panics(func() { a.SetElem(-1, algebra.Lit[S](0)) }), "a[-1] = 0 did not panic")
	return c.err()
}

func testAlgebraic[V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	vec := algebra.Vec[V, S]
	a := vec(1, 2, 3, 4)
	b := vec(2, 3, 4, 5)
	s := algebra.Lit[S](0.5)
	d := algebra.Lit[S](3)

	c.expect(a.Add(b).Eq(vec(3, 5, 7, 9)), "a + b = %v", a.Add(b))
	c.expect(a.Sub(b).Eq(vec(-1, -1, -1, -1)), "a - b = %v", a.Sub(b))
	c.expect(a.Mul(s).Eq(vec(0.5, 1, 1.5, 2)), "a * 0.5 = %v", a.Mul(s))
	c.expect(a.Div(s).Eq(vec(2, 4, 6, 8)), "a / 0.5 = %v", a.Div(s))
	c.expect(a.Neg().Eq(vec(-1, -2, -3, -4)), "-a = %v", a.Neg())

	c.expect(algebra.Scale(s, a.Add(b)).Eq(algebra.Scale(s, a).Add(algebra.Scale(s, b))), "c*(a+b) != c*a + c*b")
	c.expect(algebra.Scale(s.Add(d), a).Eq(algebra.Scale(s, a).Add(algebra.Scale(d, a))), "(c+d)*a != c*a + d*a")
	return c.err()
}

func testLength[V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	a := algebra.Vec[V, S](1, 2, 3, 4)
	b := algebra.Vec[V, S](2, 3, 4, 5)

	c.expect(a.LengthSqr().Float32() == 1+4+9+16, "|a|² = %v", a.LengthSqr())
	c.expect(a.Length().Float32() == math32.Sqrt(1+4+9+16), "|a| = %v", a.Length())

	fast := a.LengthFast().Float32()
	exact := a.Length().Float32()
	c.expect(math32.Abs(fast-exact) <= 1.5/4096*exact, "fast |a| = %g, exact %g", fast, exact)

	asqr := a.Normalize().LengthSqr().Float32()
	c.expect(1-1e-6 <= asqr && asqr <= 1+1e-6, "|normalize(a)|² = %g", asqr)

	// The approximate reciprocal square root is good to 1.5*2^-12.
	bsqr := b.NormalizeFast().LengthSqr().Float32()
	c.expect(1-3e-4 <= bsqr && bsqr <= 1+3e-4, "|normalizeFast(b)|² = %g", bsqr)
	return c.err()
}

func testDotProduct[V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	a := algebra.Vec[V, S](1, 2, 3, 4)
	b := algebra.Vec[V, S](2, 3, 4, 5)

	dot := a.Dot(b).Float32()
	c.expect(dot == 2+6+12+20, "a·b = %g", dot)
	c.expect(a.Dot(b).Eq(b.Dot(a)), "a·b != b·a")
	c.expect(a.Dot(a).Eq(a.LengthSqr()), "a·a != |a|²")
	return c.err()
}

func testCrossProduct[V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	dir := algebra.Dir[V, S]
	a := dir(2, 0, 0)
	b := dir(0, 3, 0)

	c.expect(a.Cross(b).Eq(dir(0, 0, 6)), "a × b = %v", a.Cross(b))
	c.expect(a.Cross(b).Add(b.Cross(a)).Eq(dir(0, 0, 0)), "a × b + b × a = %v", a.Cross(b).Add(b.Cross(a)))

	x, y := dir(1, 2, 3), dir(-2, 0.5, 4)
	c.expect(x.Cross(y).Eq(y.Cross(x).Neg()), "x × y != -(y × x)")
	c.expect(x.Cross(y).Dot(x).Float32() == 0, "x × y not orthogonal to x")
	return c.err()
}

func testProjection[V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	dir := algebra.Dir[V, S]
	v := dir(2, 0, 0)
	a := dir(3, 4, 0)

	c.expect(v.Project(a).Eq(dir(3, 0, 0)), "project = %v", v.Project(a))
	c.expect(v.Reject(a).Eq(dir(0, 4, 0)), "reject = %v", v.Reject(a))
	c.expect(v.Reflect(a).Eq(dir(-3, 4, 0)), "reflect = %v", v.Reflect(a))
	c.expect(v.Project(a).Add(v.Reject(a)).Eq(a), "project + reject != a")
	return c.err()
}

func testHadamard[M algebra.Matrix[M, V, S], V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	a := algebra.Vec[V, S](1, 2, 3, 4)
	b := algebra.Vec[V, S](2, 3, 4, 5)
	c.expect(a.Hadamard(b).Eq(algebra.Vec[V, S](2, 6, 12, 20)), "a ∘ b = %v", a.Hadamard(b))

	mat := algebra.Mat[M, V, S]
	got := mat(matA).Hadamard(mat(matI))
	want := mat([4][4]float32{
		{1, 0, 0, 0},
		{0, 3, 0, 0},
		{0, 0, 3, 0},
		{0, 0, 0, 1},
	})
	c.expect(got.Eq(want), "A ∘ I is not diag(A)")
	return c.err()
}

func testMatrixScalarProduct[M algebra.Matrix[M, V, S], V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	mat := algebra.Mat[M, V, S]
	a := mat(matA)
	b := mat([4][4]float32{
		{2, 4, 6, 8},
		{4, 6, 8, 6},
		{6, 8, 6, 4},
		{8, 6, 4, 2},
	})
	two := algebra.Lit[S](2)

	c.expect(a.Mul(two).Eq(b), "A * 2 != B")
	c.expect(b.Div(two).Eq(a), "B / 2 != A")
	c.expect(a.Add(a).Eq(b), "A + A != B")
	c.expect(b.Sub(a).Eq(a), "B - A != A")
	return c.err()
}

func testMatrixVectorProduct[M algebra.Matrix[M, V, S], V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	mat := algebra.Mat[M, V, S]
	vec := algebra.Vec[V, S]
	ident := mat(matI)
	perm := mat(matP)
	x := vec(1, 2, 3, 4)
	y := vec(4, 3, 1, 2)

	c.expect(ident.MulVec(x).Eq(x), "I * x = %v", ident.MulVec(x))
	c.expect(perm.MulVec(x).Eq(y), "A * x = %v", perm.MulVec(x))
	c.expect(perm.MulVec(x).Add(perm.MulVec(y)).Eq(perm.MulVec(x.Add(y))), "A*x + A*y != A*(x+y)")

	z := algebra.Lit[S](0.5)
	c.expect(perm.MulVec(x.Mul(z)).Eq(perm.MulVec(x).Mul(z)), "A*(x*z) != (A*x)*z")

	a := mat(matA)
	c.expect(a.MulVec(x).Eq(vec(30, 32, 28, 20)), "A * x = %v", a.MulVec(x))
	return c.err()
}

func testMatrixMatrixProduct[M algebra.Matrix[M, V, S], V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	mat := algebra.Mat[M, V, S]
	a := mat(matA)
	b := mat(matP)
	want := mat([4][4]float32{
		{3, 4, 2, 1},
		{4, 3, 3, 2},
		{3, 2, 4, 3},
		{2, 1, 3, 4},
	})

	c.expect(a.MulMat(b).Eq(want), "A * B != C")
	c.expect(a.MulMat(mat(matI)).Eq(a), "A * I != A")

	x := algebra.Vec[V, S](1, 2, 3, 4)
	c.expect(b.MulMat(a).MulVec(x).Eq(b.MulVec(a.MulVec(x))), "(B*A)*x != B*(A*x)")
	return c.err()
}

func testMatrixTranspose[M algebra.Matrix[M, V, S], V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	mat := algebra.Mat[M, V, S]
	a := mat(matA)
	b := mat(matP)

	c.expect(b.Transpose().Eq(mat([4][4]float32{
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{0, 1, 0, 0},
		{1, 0, 0, 0},
	})), "transpose(B) is wrong")
	c.expect(a.Transpose().Transpose().Eq(a), "transpose(transpose(A)) != A")
	c.expect(b.Transpose().Transpose().Eq(b), "transpose(transpose(B)) != B")
	c.expect(a.Transpose().MulMat(b.Transpose()).Eq(b.MulMat(a).Transpose()), "Aᵀ * Bᵀ != (B*A)ᵀ")

	// Columns of the transpose are the rows.
	for i := range 4 {
		row := algebra.Vec[V, S](matA[i][0], matA[i][1], matA[i][2], matA[i][3])
		c.expect(a.Transpose().Col(i).Eq(row), "column %d of Aᵀ = %v", i, a.Transpose().Col(i))
	}
	return c.err()
}

func testHitSphere[V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	pt := algebra.Point[V, S]
	sphere := intersect.Sphere[V, S]{Origin: pt(0, 0, 0), Radius: algebra.Lit[S](1)}

	hit, ok := intersect.HitSphere(intersect.Ray[V]{Start: pt(-2, 0, 0), End: pt(2, 0, 0)}, sphere)
	c.expect(ok, "ray through the center missed")
	if ok {
		c.expect(hit.T.Float32() == 0.25, "t = %v", hit.T)
		c.expect(hit.Point.Eq(pt(-1, 0, 0)), "point = %v", hit.Point)
		c.expect(hit.Normal.Eq(algebra.Dir[V, S](-1, 0, 0)), "normal = %v", hit.Normal)
	}

	_, ok = intersect.HitSphere(intersect.Ray[V]{Start: pt(-2, 2, 0), End: pt(2, 2, 0)}, sphere)
	c.expect(!ok, "ray beside the sphere hit")
	_, ok = intersect.HitSphere(intersect.Ray[V]{Start: pt(-3, 0, 0), End: pt(-2, 0, 0)}, sphere)
	c.expect(!ok, "segment ending before the sphere hit")
	return c.err()
}

func testHitCapsule[V algebra.Vector[V, S], S algebra.Scalar[S]]() error {
	var c checker
	pt := algebra.Point[V, S]
	capsule := intersect.Capsule[V, S]{Start: pt(0, 0, 0), End: pt(0, 0, 2), Radius: algebra.Lit[S](1)}

	hit, ok := intersect.HitCapsule(intersect.Ray[V]{Start: pt(-2, 0, 1), End: pt(2, 0, 1)}, capsule)
	c.expect(ok, "ray through the body missed")
	if ok {
		c.expect(hit.T.Float32() == 0.25, "t = %v", hit.T)
		c.expect(hit.Point.Eq(pt(-1, 0, 1)), "point = %v", hit.Point)
		c.expect(hit.Normal.Eq(algebra.Dir[V, S](-1, 0, 0)), "normal = %v", hit.Normal)
	}

	ray := intersect.Ray[V]{Start: pt(-2, 0, 3), End: pt(2, 0, 2.5)}
	hit, ok = intersect.HitCapsule(ray, capsule)
	want, wantOK := intersect.HitSphere(ray, intersect.Sphere[V, S]{Origin: capsule.End, Radius: capsule.Radius})
	c.expect(ok == wantOK && hit.T.Eq(want.T), "end cap: got (%v, %v), sphere gives (%v, %v)", hit.T, ok, want.T, wantOK)

	_, ok = intersect.HitCapsule(intersect.Ray[V]{Start: pt(-2, 3, 1), End: pt(2, 3, 1)}, capsule)
	c.expect(!ok, "ray beside the capsule hit")
	hit, ok = intersect.HitCapsule(intersect.Ray[V]{Start: pt(0, 0, 1), End: pt(2, 0, 1)}, capsule)
	c.expect(ok, "ray starting inside the body missed")
	if ok {
		c.expect(hit.T.Float32() == 0.5, "inside: t = %v", hit.T)
		c.expect(hit.Point.Eq(pt(1, 0, 1)), "inside: point = %v", hit.Point)
	}

	hit, ok = intersect.HitCapsule(intersect.Ray[V]{Start: pt(0, 0, 5), End: pt(0, 0, 1)}, capsule)
	c.expect(ok, "ray along the axis missed the end cap")
	if ok {
		c.expect(hit.T.Float32() == 0.5, "axis: t = %v", hit.T)
		c.expect(hit.Point.Eq(pt(0, 0, 3)), "axis: point = %v", hit.Point)
	}

	_, ok = intersect.HitCapsule(intersect.Ray[V]{Start: pt(0.5, 0, 5), End: pt(0.5, 0, 3)}, capsule)
	c.expect(!ok, "parallel ray stopping above the cap hit")
	return c.err()
}
