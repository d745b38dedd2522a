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
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/vec4bench/algebra"
)

// ErrUnknownModel is returned by ParseModel for names it cannot decode.
var ErrUnknownModel = errors.New("unknown reflectance model")

const pi = 3.1415926535897932

// Diffuse selects the diffuse term.
type Diffuse uint8

const (
	Lambert Diffuse = iota
	Disney
)

// Distribution selects the microfacet normal distribution.
type Distribution uint8

const (
	DistBlinnPhong Distribution = iota
	DistBeckmann
	DistGGX
)

// Fresnel selects the Fresnel term.
type Fresnel uint8

const (
	FresnelNone Fresnel = iota
	FresnelSchlick
)

// Geometry selects the geometric attenuation term.
type Geometry uint8

const (
	GeomNone Geometry = iota
	GeomImplicit
	GeomNeumann
	GeomCookTorrance
	GeomKelemen
	GeomGGX
	GeomSmithCorrelated
)

var (
	diffuseNames      = []string{"lambert", "disney"}
	distributionNames = []string{"blinnphong", "beckmann", "ggx"}
	fresnelNames      = []string{"none", "schlick"}
	geometryNames     = []string{"none", "implicit", "neumann", "cook_torrance", "kelemen", "ggx", "smith_ggx_correlated"}
)

// Model is a separable reflectance model: a diffuse term plus either the
// Blinn-Phong specular lobe or a Cook-Torrance microfacet term built from a
// distribution, a Fresnel term and a geometry term.
type Model struct {
	Diffuse      Diffuse
	CookTorrance bool
	Distribution Distribution
	Fresnel      Fresnel
	Geometry     Geometry
}

// BlinnPhong is the default model, Lambert diffuse with Blinn-Phong specular.
var BlinnPhong = Model{Diffuse: Lambert}

// String returns the model name ParseModel accepts, such as
// "lambert-blinnphong" or "disney-ggx-schlick-neumann". The geometry part
// is left out when it is none.
func (m Model) String() string {
	if !m.CookTorrance {
		return diffuseNames[m.Diffuse] + "-blinnphong"
	}
	parts := []string{diffuseNames[m.Diffuse], distributionNames[m.Distribution], fresnelNames[m.Fresnel]}
	if m.Geometry != GeomNone {
		parts = append(parts, geometryNames[m.Geometry])
	}
	return strings.Join(parts, "-")
}

// ParseModel decodes a model name produced by Model.String.
func ParseModel(name string) (Model, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(name)), "-")
	var m Model

	d, ok := lookup(diffuseNames, parts[0])
	if !ok {
		return m, fmt.Errorf("%w: %q: diffuse term %q", ErrUnknownModel, name, parts[0])
	}
	m.Diffuse = Diffuse(d)

	switch len(parts) {
	case 2:
		if parts[1] != "blinnphong" {
			return m, fmt.Errorf("%w: %q: specular term %q", ErrUnknownModel, name, parts[1])
		}
		return m, nil
	case 3, 4:
	default:
		return m, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}

	m.CookTorrance = true
	if d, ok = lookup(distributionNames, parts[1]); !ok {
		return m, fmt.Errorf("%w: %q: distribution %q", ErrUnknownModel, name, parts[1])
	}
	m.Distribution = Distribution(d)
	if d, ok = lookup(fresnelNames, parts[2]); !ok {
		return m, fmt.Errorf("%w: %q: fresnel term %q", ErrUnknownModel, name, parts[2])
	}
	m.Fresnel = Fresnel(d)
	if len(parts) == 4 {
		if d, ok = lookup(geometryNames, parts[3]); !ok {
			return m, fmt.Errorf("%w: %q: geometry term %q", ErrUnknownModel, name, parts[3])
		}
		m.Geometry = Geometry(d)
	}
	return m, nil
}

func lookup(names []string, s string) (int, bool) {
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}

// Models returns the gallery: both diffuse terms with Blinn-Phong, then
// Disney diffuse with every distribution and every geometry term under
// Schlick Fresnel.
func Models() []Model {
	models := []Model{
		{Diffuse: Lambert},
		{Diffuse: Disney},
	}
	for g := GeomNone; g <= GeomSmithCorrelated; g++ {
		for d := DistBlinnPhong; d <= DistGGX; d++ {
			models = append(models, Model{
				Diffuse:      Disney,
				CookTorrance: true,
				Distribution: d,
				Fresnel:      FresnelSchlick,
				Geometry:     g,
			})
		}
	}
	return models
}

// surface holds the unit vectors a model is evaluated with: normal n,
// direction to the light l, direction to the viewer v and half vector h.
type surface[V algebra.Vector[V, S], S algebra.Scalar[S]] struct {
	mtr        *Material
	n, l, v, h V
}

func (s *surface[V, S]) lit(f float32) S { return algebra.Lit[S](f) }

func (s *surface[V, S]) msqr() S {
	r := s.lit(s.mtr.Roughness)
	return r.Mul(r)
}

// kd evaluates the diffuse coefficient.
func kd[V algebra.Vector[V, S], S algebra.Scalar[S]](m Model, s *surface[V, S]) S {
	if m.Diffuse == Lambert {
		return s.lit(1)
	}
	ndotv := s.n.Dot(s.v)
	ndotl := s.n.Dot(s.l)
	vdoth := s.v.Dot(s.h)
	fd0 := s.lit(0.5).Add(s.lit(2).Mul(vdoth).Mul(vdoth).Mul(s.lit(s.mtr.Roughness)))
	return disneySchlick(fd0, ndotl).Mul(disneySchlick(fd0, ndotv))
}

// disneySchlick is 1 + (f0-1)(1-cos)⁵.
func disneySchlick[S algebra.Scalar[S]](f0, cos S) S {
	one := algebra.Lit[S](1)
	k := one.Sub(cos)
	k2 := k.Mul(k)
	return one.Add(f0.Sub(one).Mul(k2.Mul(k2).Mul(k)))
}

// ks evaluates the specular coefficient.
func ks[V algebra.Vector[V, S], S algebra.Scalar[S]](m Model, s *surface[V, S]) S {
	if !m.CookTorrance {
		return distribution(DistBlinnPhong, s).Mul(fresnel(FresnelNone, s))
	}
	den := s.lit(4).Mul(s.n.Dot(s.l)).Mul(s.n.Dot(s.v))
	return distribution(m.Distribution, s).
		Mul(fresnel(m.Fresnel, s)).
		Mul(geometry(m.Geometry, s)).
		Div(den)
}

func distribution[V algebra.Vector[V, S], S algebra.Scalar[S]](d Distribution, s *surface[V, S]) S {
	msqr := s.msqr()
	ndoth := s.n.Dot(s.h)
	switch d {
	case DistBeckmann:
		cos2 := ndoth.Mul(ndoth)
		tan2 := s.lit(1).Sub(cos2).Div(cos2)
		return tan2.Neg().Div(msqr).Exp().Div(s.lit(pi).Mul(msqr).Mul(cos2).Mul(cos2))
	case DistGGX:
		cos2 := ndoth.Mul(ndoth)
		den := s.lit(1).Sub(cos2.Mul(s.lit(1).Sub(msqr)))
		return msqr.Div(s.lit(pi).Mul(den).Mul(den))
	default:
		exp := s.lit(2).Div(msqr).Sub(s.lit(2))
		return ndoth.Pow(exp).Div(s.lit(pi).Mul(msqr))
	}
}

func fresnel[V algebra.Vector[V, S], S algebra.Scalar[S]](f Fresnel, s *surface[V, S]) S {
	f0 := s.lit(s.mtr.Reflectance)
	if f == FresnelNone {
		return f0
	}
	one := s.lit(1)
	k := one.Sub(s.v.Dot(s.h))
	k2 := k.Mul(k)
	return f0.Add(one.Sub(f0).Mul(k2).Mul(k2).Mul(k))
}

func geometry[V algebra.Vector[V, S], S algebra.Scalar[S]](g Geometry, s *surface[V, S]) S {
	one := s.lit(1)
	ndotl := s.n.Dot(s.l)
	ndotv := s.n.Dot(s.v)

	switch g {
	case GeomImplicit:
		return ndotl.Mul(ndotv)
	case GeomNeumann:
		return ndotl.Mul(ndotv).Div(ndotl.Max(ndotv))
	case GeomCookTorrance:
		k := s.lit(2).Mul(s.n.Dot(s.h)).Div(s.v.Dot(s.h))
		return one.Min(k.Mul(ndotv).Min(k.Mul(ndotl)))
	case GeomKelemen:
		vdoth := s.v.Dot(s.h)
		return ndotl.Mul(ndotv).Div(vdoth.Mul(vdoth))
	case GeomGGX:
		msqr := s.msqr()
		rad := one.Sub(msqr).Add(msqr.Div(ndotv.Mul(ndotv)))
		return s.lit(2).Div(one.Add(rad.Sqrt()))
	case GeomSmithCorrelated:
		msqr := s.msqr()
		lambda := func(cos S) S {
			cos2 := cos.Mul(cos)
			r := msqr.Mul(one.Sub(cos2)).Div(cos2).Add(one)
			return s.lit(0.5).Mul(r.Sqrt().Sub(one))
		}
		return one.Div(one.Add(lambda(ndotl)).Add(lambda(ndotv)))
	default:
		return one
	}
}
