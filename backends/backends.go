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

// Package backends binds the three algebra implementations to the generic
// harnesses, so callers can select them by name.
package backends

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/vec4bench/algebra"
	"github.com/ajroetker/vec4bench/algebra/aligned"
	"github.com/ajroetker/vec4bench/algebra/intrinsic"
	"github.com/ajroetker/vec4bench/algebra/reference"
	"github.com/ajroetker/vec4bench/conformance"
	"github.com/ajroetker/vec4bench/internal/workerpool"
	"github.com/ajroetker/vec4bench/perf"
	"github.com/ajroetker/vec4bench/trace"
	"github.com/samber/lo"
)

// ErrUnknownBackend is returned for a backend name not in All.
var ErrUnknownBackend = errors.New("unknown backend")

// rowBatch is the number of image rows a worker claims at a time.
const rowBatch = 8

// Backend is one algebra implementation bound to every harness.
type Backend struct {
	Info        algebra.Info
	Conformance conformance.Target
	Perf        perf.Target

	render func(pool *workerpool.Pool, width, height int, model trace.Model) *trace.Image
}

func bind[M algebra.Matrix[M, V, S], V algebra.Vector[V, S], S algebra.Scalar[S]](info algebra.Info) Backend {
	return Backend{
		Info:        info,
		Conformance: conformance.NewTarget[M, V, S](info),
		Perf:        perf.NewTarget[M, V, S](info),
		render:      render[V, S],
	}
}

// All returns the backends in report order. The first one is the baseline
// the others are compared against.
func All() []Backend {
	return []Backend{
		bind[reference.Matrix, reference.Vector, reference.Scalar](reference.Info),
		bind[aligned.Matrix, aligned.Vector, aligned.Scalar](aligned.Info),
		bind[intrinsic.Matrix, intrinsic.Vector, intrinsic.Scalar](intrinsic.Info),
	}
}

// Names returns the backend names in report order.
func Names() []string {
	return lo.Map(All(), func(b Backend, _ int) string { return b.Info.Name })
}

// Lookup finds a backend by name, ignoring case.
func Lookup(name string) (Backend, error) {
	b, ok := lo.Find(All(), func(b Backend) bool { return strings.EqualFold(b.Info.Name, name) })
	if !ok {
		return Backend{}, fmt.Errorf("%w: %q (have %s)", ErrUnknownBackend, name, strings.Join(Names(), ", "))
	}
	return b, nil
}

// ConformanceTargets returns the conformance binding of each backend.
func ConformanceTargets(bs []Backend) []conformance.Target {
	return lo.Map(bs, func(b Backend, _ int) conformance.Target { return b.Conformance })
}

// PerfTargets returns the perf binding of each backend.
func PerfTargets(bs []Backend) []perf.Target {
	return lo.Map(bs, func(b Backend, _ int) perf.Target { return b.Perf })
}

// Render draws the fixed scene with model. With a pool, bands of rows are
// traced concurrently; with nil it runs on the calling goroutine.
func (b Backend) Render(pool *workerpool.Pool, width, height int, model trace.Model) *trace.Image {
	return b.render(pool, width, height, model)
}

// RenderGallery renders one image per model, one model per worker. With a
// nil pool the models are rendered in order on the calling goroutine.
func (b Backend) RenderGallery(pool *workerpool.Pool, size int, models []trace.Model) []*trace.Image {
	images := make([]*trace.Image, len(models))
	render := func(i int) {
		images[i] = b.render(nil, size, size, models[i])
	}
	if pool == nil {
		for i := range models {
			render(i)
		}
		return images
	}
	pool.ParallelForAtomic(len(models), render)
	return images
}

func render[V algebra.Vector[V, S], S algebra.Scalar[S]](pool *workerpool.Pool, width, height int, model trace.Model) *trace.Image {
	if pool == nil {
		return trace.Render[V, S](width, height, model)
	}
	view := trace.DefaultView[V, S]()
	scene := trace.FixedScene[V, S](model)
	img := trace.NewImage(width, height)
	pool.ParallelForAtomicBatched(height, rowBatch, func(from, to int) {
		trace.TraceRows(&view, scene, img, from, to)
	})
	return img
}
