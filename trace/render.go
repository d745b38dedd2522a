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

// Background is the color of pixels whose ray hits nothing.
var Background = Color{0.1, 0.1, 0.1, 1}

var white = Color{1, 1, 1, 1}

// FixedScene returns the benchmark scene: two point lights and two
// spheres, a small rough one in front of a large glossy one.
func FixedScene[V algebra.Vector[V, S], S algebra.Scalar[S]](model Model) *Scene[V, S] {
	pt := algebra.Point[V, S]
	lit := algebra.Lit[S]
	return &Scene[V, S]{
		Lights: []Light[V, S]{
			{Origin: pt(2, 0, 4), Color: white, Intensity: lit(10)},
			{Origin: pt(6, -4, -2), Color: Color{0.2, 1, 1, 1}, Intensity: lit(10)},
		},
		Spheres: []Sphere[V, S]{
			{
				Sphere: intersect.Sphere[V, S]{Origin: pt(3, 0, 0), Radius: lit(0.5)},
				Material: Material{
					Diffuse:     Color{0.2, 0.05, 0.02, 1},
					Roughness:   0.4,
					Reflectance: 0.04,
					Specular:    white,
				},
			},
			{
				Sphere: intersect.Sphere[V, S]{Origin: pt(6, 1, 1), Radius: lit(1.5)},
				Material: Material{
					Diffuse:     Color{0.05, 0.02, 0.2, 1},
					Roughness:   0.02,
					Reflectance: 0.04,
					Specular:    white,
				},
			},
		},
		Model:   model,
		Bounces: DefaultBounces,
	}
}

// DefaultView looks down +x from just in front of the scene with a
// one-radian field of view both ways.
func DefaultView[V algebra.Vector[V, S], S algebra.Scalar[S]]() Frustum[V, S] {
	dir := algebra.Dir[V, S]
	return NewFrustum[V, S](algebra.Point[V, S](0.5, 0.5, 0.4), dir(1, 0, 0), dir(0, 1, 0), dir(0, 0, 1), 0.1, 8, 1, 1)
}

// TraceView fills img with one primary ray per pixel.
func TraceView[V algebra.Vector[V, S], S algebra.Scalar[S]](view *Frustum[V, S], scene *Scene[V, S], img *Image) {
	TraceRows(view, scene, img, 0, img.Height)
}

// TraceRows renders rows [from, to) of img. Disjoint row ranges may be
// rendered concurrently.
func TraceRows[V algebra.Vector[V, S], S algebra.Scalar[S]](view *Frustum[V, S], scene *Scene[V, S], img *Image, from, to int) {
	for row := from; row < to; row++ {
		for col := range img.Width {
			start, end := view.Ray(row, col, img.Width, img.Height)
			c, ok := scene.TraceColor(start, end)
			if !ok {
				c = Background
			}
			img.Set(row, col, c)
		}
	}
}

// Render draws the fixed scene with model into a new width x height image.
func Render[V algebra.Vector[V, S], S algebra.Scalar[S]](width, height int, model Model) *Image {
	view := DefaultView[V, S]()
	img := NewImage(width, height)
	TraceView(&view, FixedScene[V, S](model), img)
	return img
}
