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
	"github.com/ajroetker/vec4bench/algebra"
	"github.com/chewxy/math32"
)

// Scalar is a float32 with the algebra.Scalar methods.
type Scalar float32

var _ algebra.Scalar[Scalar] = Scalar(0)

func (Scalar) Of(f float32) Scalar { return Scalar(f) }
func (s Scalar) Float32() float32 { return float32(s) }
func (s Scalar) Add(a Scalar) Scalar { return s + a }
func (s Scalar) Sub(a Scalar) Scalar { return s - a }
func (s Scalar) Mul(a Scalar) Scalar { return Scalar(float32(s * a)) }
func (s Scalar) Div(a Scalar) Scalar { return s / a }
func (s Scalar) Neg() Scalar { return -s }
func (s Scalar) Abs() Scalar { return Scalar(math32.Abs(float32(s))) }
func (s Scalar) Sqrt() Scalar { return Scalar(math32.Sqrt(float32(s))) }
func (s Scalar) Pow(e Scalar) Scalar { return Scalar(math32.Pow(float32(s), float32(e))) }
func (s Scalar) Exp() Scalar { return Scalar(math32.Exp(float32(s))) }
func (s Scalar) Eq(a Scalar) bool { return s == a }
func (s Scalar) Less(a Scalar) bool { return s < a }
func (s Scalar) LessEq(a Scalar) bool { return s <= a }

// Min returns a when a < s and s otherwise, so a NaN argument yields s.
func (s Scalar) Min(a Scalar) Scalar {
	if a < s {
		return a
	}
	return s
}

// Max returns a when s < a and s otherwise.
func (s Scalar) Max(a Scalar) Scalar {
	if s < a {
		return a
	}
	return s
}
