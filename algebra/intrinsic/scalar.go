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

package intrinsic

import (
	"fmt"

	"github.com/ajroetker/vec4bench/algebra"
	"github.com/ajroetker/vec4bench/hwy"
	"github.com/ajroetker/vec4bench/internal/assert"
	"github.com/chewxy/math32"
)

// Scalar is a float32 broadcast to all four lanes of a register, so it can
// be combined with a Vector without a broadcast at the call site.
type Scalar struct {
	r hwy.Float32x4
}

var _ algebra.Scalar[Scalar] = Scalar{}

// scalarOf wraps a register that must already be a broadcast. With the
// vec4debug tag a register whose lanes differ panics.
func scalarOf(r hwy.Float32x4) Scalar {
	assert.That(r.IsBroadcast(), "invalid scalar value")
	return Scalar{r}
}

// Lit returns f broadcast to a Scalar.
func Lit(f float32) Scalar {
	return Scalar{hwy.Set1(f)}
}

func (Scalar) Of(f float32) Scalar { return Lit(f) }

// Float32 extracts lane 0.
func (s Scalar) Float32() float32 { return s.r.Lowest() }

func (s Scalar) Add(a Scalar) Scalar { return scalarOf(hwy.Add(s.r, a.r)) }
func (s Scalar) Sub(a Scalar) Scalar { return scalarOf(hwy.Sub(s.r, a.r)) }
func (s Scalar) Mul(a Scalar) Scalar { return scalarOf(hwy.Mul(s.r, a.r)) }
func (s Scalar) Div(a Scalar) Scalar { return scalarOf(hwy.Div(s.r, a.r)) }
func (s Scalar) Neg() Scalar { return scalarOf(hwy.Neg(s.r)) }
func (s Scalar) Abs() Scalar { return scalarOf(hwy.Abs(s.r)) }
func (s Scalar) Sqrt() Scalar { return scalarOf(hwy.Sqrt(s.r)) }

// Min and Max keep the operand order of MINPS and MAXPS so that a NaN
// argument yields the receiver, like the reference backend.
func (s Scalar) Min(a Scalar) Scalar { return scalarOf(hwy.Min(a.r, s.r)) }
func (s Scalar) Max(a Scalar) Scalar { return scalarOf(hwy.Max(a.r, s.r)) }

// Pow and Exp have no packed instruction; they run on lane 0 and broadcast.
func (s Scalar) Pow(e Scalar) Scalar { return Lit(math32.Pow(s.Float32(), e.Float32())) }
func (s Scalar) Exp() Scalar { return Lit(math32.Exp(s.Float32())) }

// Comparisons look at lane 0 only, like COMISS.
func (s Scalar) Eq(a Scalar) bool { return s.r.Lowest() == a.r.Lowest() }
func (s Scalar) Less(a Scalar) bool { return s.r.Lowest() < a.r.Lowest() }
func (s Scalar) LessEq(a Scalar) bool { return s.r.Lowest() <= a.r.Lowest() }

func (s Scalar) String() string {
	return fmt.Sprint(s.Float32())
}
