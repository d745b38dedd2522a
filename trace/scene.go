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

package trace

import (
	"github.com/ajroetker/vec4bench/algebra"
	"github.com/ajroetker/vec4bench/intersect"
)

const (
	// DefaultBounces is the number of specular inter-reflections traced.
	DefaultBounces = 4

	// epsilon lifts secondary ray origins off the surface they start on.
	epsilon = 1e-5

	// indirectReach is how far a reflected ray is traced, in ray lengths.
	indirectReach = 1e3
)

// Sphere is an intersect.Sphere with a surface material.
type Sphere[V, S any] struct {
	intersect.Sphere[V, S]
	Material Material
}

type traceHit[V, S any] struct {
	intersect.Hit[V, S]
	material *Material
}

// Scene is a flat list of lights and spheres shaded with one model.
type Scene[V algebra.Vector[V, S], S algebra.Scalar[S]] struct {
	Lights  []Light[V, S]
	Spheres []Sphere[V, S]
	Model   Model
	// Bounces limits the recursion of specular reflections.
	Bounces int
}

// TraceColor returns the lit color of the nearest surface on the segment
// from start to end, or false if the segment hits nothing.
func (sc *Scene[V, S]) TraceColor(start, end V) (Color, bool) {
	hit, ok := sc.trace(start, end)
	if !ok {
		return Black, false
	}
	view := start.Sub(hit.Point).Normalize()
	point := hit.Point.Add(hit.Normal.Mul(algebra.Lit[S](epsilon)))
	return sc.shade(hit.material, point, hit.Normal, view, sc.Bounces), true
}

// trace finds the nearest intersection with t < 1.
func (sc *Scene[V, S]) trace(start, end V) (traceHit[V, S], bool) {
	var best traceHit[V, S]
	minT := algebra.Lit[S](1)
	ray := intersect.Ray[V]{Start: start, End: end}

	for i := range sc.Spheres {
		sp := &sc.Spheres[i]
		if hit, ok := intersect.HitSphere(ray, sp.Sphere); ok && hit.T.Less(minT) {
			best = traceHit[V, S]{Hit: hit, material: &sp.Material}
			minT = hit.T
		}
	}
	return best, best.material != nil
}

// shade sums the direct light from every unoccluded light and, while
// bounces remain, one specular reflection.
func (sc *Scene[V, S]) shade(mtr *Material, origin, normal, view V, bounces int) Color {
	color := Black
	for i := range sc.Lights {
		light := &sc.Lights[i]
		if _, blocked := sc.trace(origin, light.Origin); blocked {
			continue
		}
		color = color.Add(sc.shadeLight(mtr, normal, light, origin, view))
	}

	if bounces > 0 {
		color = color.Add(sc.shadeIndirect(mtr, origin, normal, view, normal.Reflect(view.Neg()), bounces))
	}
	return color
}

// shadeIndirect treats the surface seen along direction as a point light
// whose color is that surface's own shading.
func (sc *Scene[V, S]) shadeIndirect(mtr *Material, origin, normal, view, direction V, bounces int) Color {
	eps := algebra.Lit[S](epsilon)
	hit, ok := sc.trace(origin.Add(normal.Mul(eps)), origin.Add(direction.Mul(algebra.Lit[S](indirectReach))))
	if !ok {
		return Black
	}

	point := hit.Point.Add(hit.Normal.Mul(eps))
	back := origin.Sub(hit.Point).Normalize()
	light := Light[V, S]{
		Origin:    point,
		Color:     sc.shade(hit.material, point, hit.Normal, back, bounces-1),
		Intensity: algebra.Lit[S](1),
	}
	return sc.shadeLight(mtr, normal, &light, origin, view)
}

// shadeLight is the direct contribution of one light at point.
func (sc *Scene[V, S]) shadeLight(mtr *Material, normal V, light *Light[V, S], point, view V) Color {
	toLight := light.Origin.Sub(point)
	if toLight.Dot(normal).LessEq(algebra.Lit[S](0)) {
		return Black
	}

	l := toLight.Normalize()
	v := view.Normalize()
	s := surface[V, S]{mtr: mtr, n: normal, l: l, v: v, h: l.Add(v).Normalize()}

	k := l.Dot(normal).Mul(light.Intensity).Div(toLight.LengthSqr()).Float32()
	kdiff := kd(sc.Model, &s).Float32()
	kspec := ks(sc.Model, &s).Float32()

	diffuse := light.Color.Mul(mtr.Diffuse).Scale(kdiff)
	specular := light.Color.Mul(mtr.Specular).Scale(kspec)
	return diffuse.Add(specular).Scale(k)
}
