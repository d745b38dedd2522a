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

// Package trace is a small recursive ray tracer used as an end-to-end
// workload for the algebra backends. It renders spheres lit by point lights
// with a selectable reflectance model and writes the result as a BMP.
package trace

// Color is a linear RGBA color.
type Color struct {
	R, G, B, A float32
}

// Black is the zero color, including alpha.
var Black = Color{}

// Add returns c + o per channel.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Mul returns the per-channel product of c and o.
func (c Color) Mul(o Color) Color {
	return Color{float32(c.R * o.R), float32(c.G * o.G), float32(c.B * o.B), float32(c.A * o.A)}
}

// Scale multiplies every channel by k.
func (c Color) Scale(k float32) Color {
	return Color{float32(c.R * k), float32(c.G * k), float32(c.B * k), float32(c.A * k)}
}

// Material describes how a surface reflects light.
type Material struct {
	Diffuse Color
	// Roughness is the RMS microfacet slope.
	Roughness float32
	// Reflectance is the Fresnel factor at normal incidence,
	// ((n1-n2)/(n1+n2))². Dielectrics sit around 0.04, metals 0.7 to 1.
	Reflectance float32
	// Specular is white for dielectrics.
	Specular Color
}

// Light is a point light.
type Light[V, S any] struct {
	Origin    V
	Color     Color
	Intensity S
}
