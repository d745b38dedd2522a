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

// Package intersect implements segment-sphere and segment-capsule
// intersection on top of any algebra backend.
//
// A Ray here is a segment: points are Start + (End-Start)*t for t in [0, 1],
// and a root outside that interval is a miss.
package intersect

import "github.com/ajroetker/vec4bench/algebra"

// Ray is the segment from Start to End.
type Ray[V any] struct {
	Start, End V
}

// Sphere is a ball around Origin.
type Sphere[V, S any] struct {
	Origin V
	Radius S
}

// Capsule is a sphere swept from Start to End.
type Capsule[V, S any] struct {
	Start, End V
	Radius     S
}

// Hit describes the first intersection along a ray. Normal has unit length
// and points to the side of the surface the ray comes from.
type Hit[V, S any] struct {
	T      S
	Point  V
	Normal V
}

// HitSphere intersects ray with sphere. It solves A t² + B t + C = 0 with
// A = |d|², B = 2 d·(s-o) and C = |s-o|² - r², and takes the smaller root if
// it lies in [0, 1], else the larger one.
func HitSphere[V algebra.Vector[V, S], S algebra.Scalar[S]](ray Ray[V], sphere Sphere[V, S]) (Hit[V, S], bool) {
	var hit Hit[V, S]
	zero, one := algebra.Lit[S](0), algebra.Lit[S](1)

	rayVec := ray.End.Sub(ray.Start)
	sphereVec := ray.Start.Sub(sphere.Origin)

	a := rayVec.Dot(rayVec)
	b := algebra.Lit[S](2).Mul(rayVec.Dot(sphereVec))
	c := sphereVec.Dot(sphereVec).Sub(sphere.Radius.Mul(sphere.Radius))

	dsqr := b.Mul(b).Sub(algebra.Lit[S](4).Mul(a).Mul(c))
	if dsqr.Less(zero) {
		return hit, false
	}

	d := dsqr.Sqrt()
	half := algebra.Lit[S](0.5)
	t0 := half.Mul(b.Neg().Sub(d)).Div(a)
	t1 := half.Mul(b.Neg().Add(d)).Div(a)

	switch {
	case zero.LessEq(t0) && t0.LessEq(one):
		hit.T = t0
	case zero.LessEq(t1) && t1.LessEq(one):
		hit.T = t1
	default:
		return hit, false
	}

	hit.Point = ray.Start.Add(rayVec.Mul(hit.T))
	hit.Normal = facing[V, S](hit.Point.Sub(sphere.Origin).Normalize(), rayVec)
	return hit, true
}

// HitCapsule intersects ray with capsule. The ray and its start offset are
// rejected off the capsule axis, which reduces the body to a circle in the
// plane normal to the axis; the quadratic is solved there with the same root
// choice as HitSphere. When the body hit lies past either end of the axis the
// matching end-cap sphere decides instead. A segment parallel to the axis
// never crosses the body wall and can only hit the caps.
func HitCapsule[V algebra.Vector[V, S], S algebra.Scalar[S]](ray Ray[V], capsule Capsule[V, S]) (Hit[V, S], bool) {
	var hit Hit[V, S]
	zero, one := algebra.Lit[S](0), algebra.Lit[S](1)

	rayVec := ray.End.Sub(ray.Start)
	capsuleVec := capsule.End.Sub(capsule.Start)

	projVec := capsuleVec.Reject(rayVec)
	offset := capsuleVec.Reject(ray.Start.Sub(capsule.Start))

	a := projVec.Dot(projVec)
	b := algebra.Lit[S](2).Mul(projVec.Dot(offset))
	c := offset.Dot(offset).Sub(capsule.Radius.Mul(capsule.Radius))

	if a.Eq(zero) {
		if zero.Less(c) {
			return hit, false
		}
		return nearestCap(ray, capsule)
	}

	dsqr := b.Mul(b).Sub(algebra.Lit[S](4).Mul(a).Mul(c))
	if dsqr.Less(zero) {
		return hit, false
	}

	d := dsqr.Sqrt()
	half := algebra.Lit[S](0.5)
	t0 := half.Mul(b.Neg().Sub(d)).Div(a)
	t1 := half.Mul(b.Neg().Add(d)).Div(a)

	t := t1
	if zero.LessEq(t0) {
		t = t0
	}
	hitPoint := ray.Start.Add(rayVec.Mul(t))

	switch {
	case zero.Less(capsuleVec.Dot(hitPoint.Sub(capsule.End))):
		return HitSphere(ray, Sphere[V, S]{Origin: capsule.End, Radius: capsule.Radius})
	case capsuleVec.Dot(hitPoint.Sub(capsule.Start)).Less(zero):
		return HitSphere(ray, Sphere[V, S]{Origin: capsule.Start, Radius: capsule.Radius})
	case !(zero.LessEq(t) && t.LessEq(one)):
		return hit, false
	}

	hit.T = t
	hit.Point = hitPoint
	hit.Normal = facing[V, S](capsuleVec.Reject(hitPoint.Sub(capsule.Start)).Normalize(), rayVec)
	return hit, true
}

// nearestCap returns the closer of the two end-cap hits.
func nearestCap[V algebra.Vector[V, S], S algebra.Scalar[S]](ray Ray[V], capsule Capsule[V, S]) (Hit[V, S], bool) {
	end, endOK := HitSphere(ray, Sphere[V, S]{Origin: capsule.End, Radius: capsule.Radius})
	start, startOK := HitSphere(ray, Sphere[V, S]{Origin: capsule.Start, Radius: capsule.Radius})
	switch {
	case endOK && startOK:
		if start.T.Less(end.T) {
			return start, true
		}
		return end, true
	case startOK:
		return start, true
	default:
		return end, endOK
	}
}

// facing flips the outward normal n when it points along dir, so the normal
// always faces the side the ray arrives from.
func facing[V algebra.Vector[V, S], S algebra.Scalar[S]](n, dir V) V {
	if algebra.Lit[S](0).Less(n.Dot(dir)) {
		return n.Neg()
	}
	return n
}
