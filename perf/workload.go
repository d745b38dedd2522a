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

package perf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/vec4bench/algebra"
	"github.com/ajroetker/vec4bench/hwy"
	"github.com/ajroetker/vec4bench/intersect"
	"github.com/ajroetker/vec4bench/trace"
	"github.com/viterin/vek/vek32"
)

// ErrUnknownBenchmark is returned for a benchmark name not in Benchmarks.
var ErrUnknownBenchmark = errors.New("unknown benchmark")

// Benchmark names one operation and the number of floats each of its
// elements reads from the data pool.
type Benchmark struct {
	Name string
	Size int
}

var benchmarks = []Benchmark{
	{"vectorElemRead", 4},
	{"vectorElemWrite", 5},
	{"vectorAdd", 8},
	{"vectorSub", 8},
	{"scalarMul", 5},
	{"scalarDiv", 5},
	{"vectorLength", 4},
	{"vectorLengthFast", 4},
	{"vectorNormalize", 4},
	{"vectorNormalizeFast", 4},
	{"vectorDot", 8},
	{"vectorCross", 6},
	{"vectorProject", 8},
	{"vectorReject", 8},
	{"vectorReflect", 8},
	{"matrixScalar", 17},
	{"matrixVector", 20},
	{"matrixMatrix", 32},
	{"hitSphere", 10},
	{"hitCapsule", 13},
	// traceScene renders pixels and reads nothing from the pool.
	{"traceScene", 0},
}

// Benchmarks returns every benchmark in run order.
func Benchmarks() []Benchmark {
	return append([]Benchmark(nil), benchmarks...)
}

// Lookup finds a benchmark by name, ignoring case.
func Lookup(name string) (Benchmark, error) {
	for _, b := range benchmarks {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return Benchmark{}, fmt.Errorf("%w: %q", ErrUnknownBenchmark, name)
}

// Elements is the number of elements a workload of b processes per pass.
func (b Benchmark) Elements(dataLen, iterations, traceSize int) int {
	if b.Size == 0 {
		return min(iterations, traceSize*traceSize)
	}
	return min(iterations, dataLen/b.Size)
}

// Workload is one benchmark instantiated for one backend. It owns its input
// and output buffers.
type Workload interface {
	// Len is the number of elements processed by one Run.
	Len() int
	// Run processes every element once.
	Run()
	// Checksum sums the outputs.
	Checksum() float32
}

// reader hands out the data pool one float at a time.
type reader struct {
	data []float32
}

func (r *reader) next() float32 {
	f := r.data[0]
	r.data = r.data[1:]
	return f
}

type kernel[In, Out any] struct {
	in      []In
	out     []Out
	op      func(in []In, out []Out)
	flatten func(buf []float32, o Out) []float32
}

func (k *kernel[In, Out]) Len() int { return len(k.in) }
func (k *kernel[In, Out]) Run()     { k.op(k.in, k.out) }

func (k *kernel[In, Out]) Checksum() float32 {
	buf := make([]float32, 0, 4*len(k.out))
	for _, o := range k.out {
		buf = k.flatten(buf, o)
	}
	return vek32.Sum(buf)
}

// alloc returns n zero values, aligned when align is positive.
func alloc[T any](n, align int) []T {
	if align > 0 {
		return hwy.AllocAligned[T](n, align)
	}
	return make([]T, n)
}

func newKernel[In, Out any](n, align int, data []float32, load func(r *reader) In,
	op func(in []In, out []Out), flatten func(buf []float32, o Out) []float32) *kernel[In, Out] {
	k := &kernel[In, Out]{
		in:      alloc[In](n, align),
		out:     alloc[Out](n, align),
		op:      op,
		flatten: flatten,
	}
	r := reader{data: data}
	for i := range k.in {
		k.in[i] = load(&r)
	}
	return k
}

type pair[V any] struct{ a, b V }

type scaled[V, S any] struct {
	v V
	s S
}

type matScaled[M, S any] struct {
	m M
	s S
}

type matVec[M, V any] struct {
	m M
	v V
}

type matPair[M any] struct{ a, b M }

type sphereArgs[V, S any] struct {
	ray    intersect.Ray[V]
	sphere intersect.Sphere[V, S]
}

type capsuleArgs[V, S any] struct {
	ray     intersect.Ray[V]
	capsule intersect.Capsule[V, S]
}

// build instantiates benchmark b for one backend over the first n elements
// of data.
func build[M algebra.Matrix[M, V, S], V algebra.Vector[V, S], S algebra.Scalar[S]](b Benchmark, data []float32, n, align, traceSize int) Workload {
	vec := func(r *reader) V { return algebra.Vec[V, S](r.next(), r.next(), r.next(), r.next()) }
	dir := func(r *reader) V { return algebra.Dir[V, S](r.next(), r.next(), r.next()) }
	pt := func(r *reader) V { return algebra.Point[V, S](r.next(), r.next(), r.next()) }
	scalar := func(r *reader) S { return algebra.Lit[S](r.next()) }
	mat := func(r *reader) M {
		return algebra.Mat[M, V, S]([4][4]float32{
			{r.next(), r.next(), r.next(), r.next()},
			{r.next(), r.next(), r.next(), r.next()},
			{r.next(), r.next(), r.next(), r.next()},
			{r.next(), r.next(), r.next(), r.next()},
		})
	}
	twoVecs := func(r *reader) pair[V] { return pair[V]{vec(r), vec(r)} }
	vecScalar := func(r *reader) scaled[V, S] { return scaled[V, S]{vec(r), scalar(r)} }

	putVec := func(buf []float32, v V) []float32 {
		a := v.Array()
		return append(buf, a[:]...)
	}
	putScalar := func(buf []float32, s S) []float32 { return append(buf, s.Float32()) }
	putMat := func(buf []float32, m M) []float32 {
		for i := range 4 {
			buf = putVec(buf, m.Col(i))
		}
		return buf
	}
	putHit := func(buf []float32, h intersect.Hit[V, S]) []float32 {
		return putVec(append(buf, h.T.Float32()), h.Point)
	}

	vecOp := func(f func(a, b V) V) *kernel[pair[V], V] {
		return newKernel(n, align, data, twoVecs, func(in []pair[V], out []V) {
			for i := range in {
				out[i] = f(in[i].a, in[i].b)
			}
		}, putVec)
	}
	unaryScalar := func(f func(v V) S) *kernel[V, S] {
		return newKernel(n, align, data, vec, func(in []V, out []S) {
			for i := range in {
				out[i] = f(in[i])
			}
		}, putScalar)
	}
	unaryVec := func(f func(v V) V) *kernel[V, V] {
		return newKernel(n, align, data, vec, func(in []V, out []V) {
			for i := range in {
				out[i] = f(in[i])
			}
		}, putVec)
	}

	switch b.Name {
	case "vectorElemRead":
		return newKernel(n, align, data, vec, func(in []V, out []S) {
			for i := range in {
				out[i] = in[i].Elem(i & 3)
			}
		}, putScalar)
	case "vectorElemWrite":
		return newKernel(n, align, data, vecScalar, func(in []scaled[V, S], out []V) {
			for i := range in {
				out[i] = in[i].v.SetElem(i&3, in[i].s)
			}
		}, putVec)
	case "vectorAdd":
		return vecOp(func(a, b V) V { return a.Add(b) })
	case "vectorSub":
		return vecOp(func(a, b V) V { return a.Sub(b) })
	case "scalarMul":
		return newKernel(n, align, data, vecScalar, func(in []scaled[V, S], out []V) {
			for i := range in {
				out[i] = in[i].v.Mul(in[i].s)
			}
		}, putVec)
	case "scalarDiv":
		return newKernel(n, align, data, vecScalar, func(in []scaled[V, S], out []V) {
			for i := range in {
				out[i] = in[i].v.Div(in[i].s)
			}
		}, putVec)
	case "vectorLength":
		return unaryScalar(func(v V) S { return v.Length() })
	case "vectorLengthFast":
		return unaryScalar(func(v V) S { return v.LengthFast() })
	case "vectorNormalize":
		return unaryVec(func(v V) V { return v.Normalize() })
	case "vectorNormalizeFast":
		return unaryVec(func(v V) V { return v.NormalizeFast() })
	case "vectorDot":
		return newKernel(n, align, data, twoVecs, func(in []pair[V], out []S) {
			for i := range in {
				out[i] = in[i].a.Dot(in[i].b)
			}
		}, putScalar)
	case "vectorCross":
		// Cross requires w = 0, so only three floats per operand are read.
		return newKernel(n, align, data, func(r *reader) pair[V] { return pair[V]{dir(r), dir(r)} },
			func(in []pair[V], out []V) {
				for i := range in {
					out[i] = in[i].a.Cross(in[i].b)
				}
			}, putVec)
	case "vectorProject":
		return vecOp(func(a, b V) V { return a.Project(b) })
	case "vectorReject":
		return vecOp(func(a, b V) V { return a.Reject(b) })
	case "vectorReflect":
		return vecOp(func(a, b V) V { return a.Reflect(b) })
	case "matrixScalar":
		return newKernel(n, align, data, func(r *reader) matScaled[M, S] { return matScaled[M, S]{mat(r), scalar(r)} },
			func(in []matScaled[M, S], out []M) {
				for i := range in {
					out[i] = in[i].m.Mul(in[i].s)
				}
			}, putMat)
	case "matrixVector":
		return newKernel(n, align, data, func(r *reader) matVec[M, V] { return matVec[M, V]{mat(r), vec(r)} },
			func(in []matVec[M, V], out []V) {
				for i := range in {
					out[i] = in[i].m.MulVec(in[i].v)
				}
			}, putVec)
	case "matrixMatrix":
		return newKernel(n, align, data, func(r *reader) matPair[M] { return matPair[M]{mat(r), mat(r)} },
			func(in []matPair[M], out []M) {
				for i := range in {
					out[i] = in[i].a.MulMat(in[i].b)
				}
			}, putMat)
	case "hitSphere":
		load := func(r *reader) sphereArgs[V, S] {
			return sphereArgs[V, S]{
				ray:    intersect.Ray[V]{Start: pt(r), End: pt(r)},
				sphere: intersect.Sphere[V, S]{Origin: pt(r), Radius: scalar(r)},
			}
		}
		return newKernel(n, align, data, load, func(in []sphereArgs[V, S], out []intersect.Hit[V, S]) {
			for i := range in {
				out[i], _ = intersect.HitSphere(in[i].ray, in[i].sphere)
			}
		}, putHit)
	case "hitCapsule":
		load := func(r *reader) capsuleArgs[V, S] {
			return capsuleArgs[V, S]{
				ray:     intersect.Ray[V]{Start: pt(r), End: pt(r)},
				capsule: intersect.Capsule[V, S]{Start: pt(r), End: pt(r), Radius: scalar(r)},
			}
		}
		return newKernel(n, align, data, load, func(in []capsuleArgs[V, S], out []intersect.Hit[V, S]) {
			for i := range in {
				out[i], _ = intersect.HitCapsule(in[i].ray, in[i].capsule)
			}
		}, putHit)
	case "traceScene":
		return newTraceWorkload[V, S](n, traceSize)
	}
	panic("perf: no workload for " + b.Name)
}

// traceWorkload renders whole rows of the fixed scene, enough to cover its
// pixel count.
type traceWorkload[V algebra.Vector[V, S], S algebra.Scalar[S]] struct {
	view  trace.Frustum[V, S]
	scene *trace.Scene[V, S]
	img   *trace.Image
	rows  int
	n     int
}

func newTraceWorkload[V algebra.Vector[V, S], S algebra.Scalar[S]](n, size int) *traceWorkload[V, S] {
	w := &traceWorkload[V, S]{
		view:  trace.DefaultView[V, S](),
		scene: trace.FixedScene[V, S](trace.BlinnPhong),
		img:   trace.NewImage(size, size),
		n:     n,
	}
	if size > 0 {
		w.rows = (n + size - 1) / size
	}
	return w
}

func (w *traceWorkload[V, S]) Len() int { return w.n }

func (w *traceWorkload[V, S]) Run() {
	trace.TraceRows(&w.view, w.scene, w.img, 0, w.rows)
}

func (w *traceWorkload[V, S]) Checksum() float32 {
	buf := make([]float32, 0, 3*w.rows*w.img.Width)
	for _, c := range w.img.Pix[:w.rows*w.img.Width] {
		buf = append(buf, c.R, c.G, c.B)
	}
	return vek32.Sum(buf)
}
