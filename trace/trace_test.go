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
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ajroetker/vec4bench/algebra"
	"github.com/ajroetker/vec4bench/algebra/aligned"
	"github.com/ajroetker/vec4bench/algebra/intrinsic"
	"github.com/ajroetker/vec4bench/algebra/reference"
	"github.com/ajroetker/vec4bench/intersect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModels(t *testing.T) {
	models := Models()
	require.Len(t, models, 23)
	assert.Equal(t, BlinnPhong, models[0])
	assert.Equal(t, "lambert-blinnphong", models[0].String())
	assert.Equal(t, "disney-blinnphong", models[1].String())
	assert.Equal(t, "disney-ggx-schlick-smith_ggx_correlated", models[22].String())

	seen := map[string]bool{}
	for _, m := range models {
		name := m.String()
		assert.False(t, seen[name], "duplicate %s", name)
		seen[name] = true

		got, err := ParseModel(name)
		require.NoError(t, err, name)
		assert.Equal(t, m, got, name)
	}
}

func TestParseModel(t *testing.T) {
	m, err := ParseModel("  Disney-Beckmann-None-Kelemen ")
	require.NoError(t, err)
	assert.Equal(t, Model{Diffuse: Disney, CookTorrance: true, Distribution: DistBeckmann, Fresnel: FresnelNone, Geometry: GeomKelemen}, m)

	for _, name := range []string{
		"",
		"phong",
		"lambert",
		"lambert-ggx",
		"lambert-ggx-none-none-none",
		"lambert-cauchy-schlick",
		"lambert-ggx-exact",
		"lambert-ggx-schlick-walter",
	} {
		_, err := ParseModel(name)
		assert.ErrorIs(t, err, ErrUnknownModel, "%q", name)
	}
}

func TestEncodeGamma(t *testing.T) {
	assert.Equal(t, uint8(0), EncodeGamma(-1))
	assert.Equal(t, uint8(0), EncodeGamma(0))
	assert.Equal(t, uint8(3), EncodeGamma(0.001))
	assert.Equal(t, uint8(137), EncodeGamma(0.25), "rounds to nearest")
	assert.Equal(t, uint8(188), EncodeGamma(0.5))
	assert.Equal(t, uint8(243), EncodeGamma(0.9))
	assert.Equal(t, uint8(255), EncodeGamma(0.999))
	assert.Equal(t, uint8(255), EncodeGamma(1))
	assert.Equal(t, uint8(255), EncodeGamma(7))
	assert.Equal(t, uint8(0), EncodeGamma(float32(math.NaN())))
	assert.Equal(t, uint8(0), EncodeGamma(float32(math.Inf(-1))))

	prev := uint8(0)
	for i := range 1001 {
		g := EncodeGamma(float32(i) / 1000)
		assert.GreaterOrEqual(t, g, prev, "not monotonic at %d", i)
		prev = g
	}
}

func TestWriteBMP(t *testing.T) {
	img := NewImage(3, 2)
	img.Set(0, 0, Color{R: 1, A: 1})
	img.Set(1, 2, Color{B: 1, A: 1})

	var buf bytes.Buffer
	require.NoError(t, img.WriteBMP(&buf))

	// Rows of 9 bytes pad to 12.
	data := buf.Bytes()
	require.Len(t, data, 54+12*2)
	assert.Equal(t, []byte("BM"), data[0:2])
	le := binary.LittleEndian
	assert.Equal(t, uint32(len(data)), le.Uint32(data[2:]))
	assert.Equal(t, uint32(54), le.Uint32(data[10:]))
	assert.Equal(t, uint32(40), le.Uint32(data[14:]))
	assert.Equal(t, int32(3), int32(le.Uint32(data[18:])))
	assert.Equal(t, int32(-2), int32(le.Uint32(data[22:])))
	assert.Equal(t, uint16(1), le.Uint16(data[26:]))
	assert.Equal(t, uint16(24), le.Uint16(data[28:]))
	assert.Equal(t, uint32(24), le.Uint32(data[34:]))

	pix := data[54:]
	// Top row first, BGR order.
	assert.Equal(t, []byte{0, 0, 255}, pix[0:3])
	assert.Equal(t, []byte{0, 0, 0}, pix[9:12])
	assert.Equal(t, []byte{255, 0, 0}, pix[12+6:12+9])
}

func TestImageSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "img.bmp")
	img := NewImage(4, 4)
	require.NoError(t, img.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(54+12*4), info.Size())
}

func TestFrustum(t *testing.T) {
	dir := algebra.Dir[reference.Vector, reference.Scalar]
	pt := algebra.Point[reference.Vector, reference.Scalar]
	f := NewFrustum[reference.Vector, reference.Scalar](pt(0, 0, 0), dir(1, 0, 0), dir(0, 1, 0), dir(0, 0, 1), 1, 10, 0, 0)

	// Zero field of view: every pixel looks straight down the axis.
	start, end := f.Ray(3, 5, 8, 8)
	assert.True(t, start.Eq(pt(1, 0, 0)), "start %v", start)
	assert.True(t, end.Eq(pt(10, 0, 0)), "end %v", end)
}

func TestSceneTrace(t *testing.T) {
	pt := algebra.Point[reference.Vector, reference.Scalar]
	lit := algebra.Lit[reference.Scalar]
	mtr := Material{Diffuse: white, Roughness: 0.5, Reflectance: 0.04, Specular: white}
	sc := &Scene[reference.Vector, reference.Scalar]{
		Lights: []Light[reference.Vector, reference.Scalar]{
			{Origin: pt(-4, 0, 0), Color: white, Intensity: lit(10)},
		},
		Spheres: []Sphere[reference.Vector, reference.Scalar]{
			{Sphere: intersect.Sphere[reference.Vector, reference.Scalar]{Origin: pt(0, 0, 0), Radius: lit(1)}, Material: mtr},
		},
		Model: BlinnPhong,
	}

	_, ok := sc.TraceColor(pt(-4, 3, 0), pt(4, 3, 0))
	assert.False(t, ok)

	// Segment ends before the sphere.
	_, ok = sc.TraceColor(pt(-4, 0, 0), pt(-2, 0, 0))
	assert.False(t, ok)

	lit1, ok := sc.TraceColor(pt(-3, 0, 0), pt(3, 0, 0))
	require.True(t, ok)
	assert.Greater(t, lit1.R, float32(0))

	// From behind the sphere the light is occluded.
	dark, ok := sc.TraceColor(pt(3, 0, 0), pt(-3, 0, 0))
	require.True(t, ok)
	assert.Equal(t, Black, dark)
}

func TestRender(t *testing.T) {
	const size = 16
	ref := Render[reference.Vector, reference.Scalar](size, size, BlinnPhong)
	require.Len(t, ref.Pix, size*size)
	assert.Equal(t, Background, ref.At(0, 0))
	assert.NotEqual(t, Background, ref.At(size/2, size/2))

	// Same operations in the same order.
	al := Render[aligned.Vector, aligned.Scalar](size, size, BlinnPhong)
	assert.Equal(t, ref.Pix, al.Pix)

	in := Render[intrinsic.Vector, intrinsic.Scalar](size, size, BlinnPhong)
	off := 0
	for i := range ref.Pix {
		a, b := ref.Pix[i], in.Pix[i]
		for _, d := range []int{
			int(EncodeGamma(a.R)) - int(EncodeGamma(b.R)),
			int(EncodeGamma(a.G)) - int(EncodeGamma(b.G)),
			int(EncodeGamma(a.B)) - int(EncodeGamma(b.B)),
		} {
			if d > 2 || d < -2 {
				off++
				break
			}
		}
	}
	assert.Less(t, off, len(ref.Pix)/20, "%d pixels differ", off)
}

func TestRenderAllModels(t *testing.T) {
	for _, m := range Models() {
		img := Render[reference.Vector, reference.Scalar](8, 8, m)
		assert.Equal(t, Background, img.At(0, 0), m.String())
		assert.NotEqual(t, Background, img.At(4, 4), m.String())
	}
}
