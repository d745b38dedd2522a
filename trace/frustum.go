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
	"github.com/chewxy/math32"
)

// Frustum is a pinhole view. Forward reaches the far plane; Left and Up
// reach the far plane's half width and half height.
type Frustum[V algebra.Vector[V, S], S algebra.Scalar[S]] struct {
	Origin  V
	Forward V
	Left    V
	Up      V
	Near    S
	Far     S
}

// NewFrustum scales the unit forward, left and up directions to the far
// plane for the given horizontal and vertical fields of view, in radians.
func NewFrustum[V algebra.Vector[V, S], S algebra.Scalar[S]](origin, forward, left, up V, near, far, fovX, fovY float32) Frustum[V, S] {
	dw := far * math32.Sin(0.5*fovX)
	dh := far * math32.Sin(0.5*fovY)
	return Frustum[V, S]{
		Origin:  origin,
		Forward: forward.Mul(algebra.Lit[S](far)),
		Left:    left.Mul(algebra.Lit[S](dw)),
		Up:      up.Mul(algebra.Lit[S](dh)),
		Near:    algebra.Lit[S](near),
		Far:     algebra.Lit[S](far),
	}
}

// Ray returns the segment through pixel (row, col) of a width x height
// image. It ends on the far plane and starts where it crosses the near
// plane.
func (f *Frustum[V, S]) Ray(row, col, width, height int) (start, end V) {
	lit := algebra.Lit[S]
	dh := f.Up.Mul(lit(1 - 2*(float32(row)+0.5)/float32(height)))
	dw := f.Left.Mul(lit(1 - 2*(float32(col)+0.5)/float32(width)))
	far := f.Forward.Add(dh).Add(dw)
	return f.Origin.Add(far.Mul(f.Near.Div(f.Far))), f.Origin.Add(far)
}
