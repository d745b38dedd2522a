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

package backends

import (
	"bytes"
	"context"
	"testing"

	"github.com/ajroetker/vec4bench/conformance"
	"github.com/ajroetker/vec4bench/internal/workerpool"
	"github.com/ajroetker/vec4bench/perf"
	"github.com/ajroetker/vec4bench/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"reference", "aligned", "intrinsic"}, Names())

	b, err := Lookup("Intrinsic")
	require.NoError(t, err)
	assert.Equal(t, "intrinsic", b.Info.Name)
	assert.Equal(t, 16, b.Info.Alignment)

	_, err = Lookup("avx512")
	assert.ErrorIs(t, err, ErrUnknownBackend)
	assert.ErrorContains(t, err, "reference, aligned, intrinsic")
}

func TestConformance(t *testing.T) {
	rep := conformance.Run(ConformanceTargets(All())...)
	assert.True(t, rep.Passed(), "%v", rep.Failures())
	assert.Equal(t, Names(), rep.Backends)
}

func TestPerf(t *testing.T) {
	opts := perf.DefaultOptions()
	opts.Benchmarks = []string{"vectorAdd", "traceScene"}
	opts.Iterations = 32
	opts.WarmupPasses = 1
	opts.TimedPasses = 1
	opts.TraceSize = 4

	rep, err := perf.Run(context.Background(), opts, perf.GenerateData(3, 512), PerfTargets(All())...)
	require.NoError(t, err)
	assert.Equal(t, Names(), rep.Backends)
	assert.Len(t, rep.Results, 2)
}

func TestRenderParallelMatchesSerial(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	for _, b := range All() {
		serial := b.Render(nil, 24, 20, trace.BlinnPhong)
		parallel := b.Render(pool, 24, 20, trace.BlinnPhong)
		assert.Equal(t, serial.Pix, parallel.Pix, b.Info.Name)
	}
}

func TestRenderGallery(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	b, err := Lookup("reference")
	require.NoError(t, err)
	models := trace.Models()[:5]
	images := b.RenderGallery(pool, 8, models)
	require.Len(t, images, len(models))
	for i, img := range images {
		require.NotNil(t, img)
		assert.Equal(t, bmp(t, b.Render(nil, 8, 8, models[i])), bmp(t, img), models[i].String())
	}
}

func TestRenderGallerySerial(t *testing.T) {
	b, err := Lookup("aligned")
	require.NoError(t, err)
	models := trace.Models()[:3]

	var images []*trace.Image
	require.NotPanics(t, func() { images = b.RenderGallery(nil, 6, models) })
	require.Len(t, images, len(models))
	for i, img := range images {
		assert.Equal(t, bmp(t, b.Render(nil, 6, 6, models[i])), bmp(t, img), models[i].String())
	}
}

func bmp(t *testing.T, img *trace.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, img.WriteBMP(&buf))
	return buf.Bytes()
}
