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

// Package perf times the algebra backends against each other. Every
// benchmark is instantiated once per backend over the same slice of a shared
// random data pool; passes are interleaved across backends and the median of
// the timed passes is reported.
package perf

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"text/tabwriter"

	"github.com/ajroetker/vec4bench/algebra"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
)

const (
	DefaultWarmupPasses = 4
	DefaultTimedPasses  = 16
	DefaultIterations   = 1 << 20
	DefaultTraceSize    = 64
)

// Options controls a Run.
type Options struct {
	// Benchmarks selects benchmarks by name. Empty means all of them.
	Benchmarks []string
	// Iterations caps the element count of every workload.
	Iterations   int
	WarmupPasses int
	TimedPasses  int
	// TraceSize is the side of the square image traceScene renders.
	TraceSize int
	Logger    *slog.Logger
}

// DefaultOptions returns the standard run: every benchmark, 4 warm-up and
// 16 timed passes.
func DefaultOptions() Options {
	return Options{
		Iterations:   DefaultIterations,
		WarmupPasses: DefaultWarmupPasses,
		TimedPasses:  DefaultTimedPasses,
		TraceSize:    DefaultTraceSize,
	}
}

// Target is one backend bound to the workload builder.
type Target struct {
	Info  algebra.Info
	build func(b Benchmark, data []float32, n, traceSize int) Workload
}

// NewTarget binds a backend.
func NewTarget[M algebra.Matrix[M, V, S], V algebra.Vector[V, S], S algebra.Scalar[S]](info algebra.Info) Target {
	return Target{
		Info: info,
		build: func(b Benchmark, data []float32, n, traceSize int) Workload {
			return build[M, V, S](b, data, n, info.Alignment, traceSize)
		},
	}
}

// Result is one benchmark across every target.
type Result struct {
	Name     string
	Elements int
	// Median is the median pass time in microseconds, per target.
	Median []float64
	// Checksum is the sum of every output after the last pass, per target.
	Checksum []float32
}

// Ratio returns 100 * Median[i] / Median[0], the time of target i as a
// percentage of the first target's.
func (r Result) Ratio(i int) float64 {
	return 100 * r.Median[i] / r.Median[0]
}

// Report is the outcome of a Run.
type Report struct {
	Backends []string
	Results  []Result
}

// Selected resolves names against Benchmarks, keeping run order. Empty
// names select every benchmark.
func Selected(names []string) ([]Benchmark, error) {
	if len(names) == 0 {
		return Benchmarks(), nil
	}
	want := make(map[string]bool, len(names))
	for _, name := range names {
		b, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		want[b.Name] = true
	}
	return lo.Filter(benchmarks, func(b Benchmark, _ int) bool { return want[b.Name] }), nil
}

// Run times every selected benchmark on every target. The context is checked
// between benchmarks only.
func Run(ctx context.Context, opts Options, data []float32, targets ...Target) (Report, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	selected, err := Selected(opts.Benchmarks)
	if err != nil {
		return Report{}, err
	}
	if opts.TimedPasses < 1 {
		return Report{}, fmt.Errorf("timed passes must be positive, got %d", opts.TimedPasses)
	}

	rep := Report{
		Backends: lo.Map(targets, func(t Target, _ int) string { return t.Info.Name }),
	}
	for _, b := range selected {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		n := b.Elements(len(data), opts.Iterations, opts.TraceSize)
		res := runOne(b, data, n, opts, targets)
		log.Debug("benchmark done",
			"name", b.Name,
			"elements", humanize.Comma(int64(n)),
			"median_us", res.Median)
		rep.Results = append(rep.Results, res)
	}
	return rep, nil
}

func runOne(b Benchmark, data []float32, n int, opts Options, targets []Target) Result {
	work := lo.Map(targets, func(t Target, _ int) Workload {
		return t.build(b, data, n, opts.TraceSize)
	})

	var timer Timer
	pass := func(w Workload) float64 {
		timer.Reset()
		timer.Start()
		w.Run()
		timer.Stop()
		return timer.Microseconds()
	}

	for range opts.WarmupPasses {
		for _, w := range work {
			pass(w)
		}
	}
	timings := make([][]float64, len(work))
	for range opts.TimedPasses {
		for i, w := range work {
			timings[i] = append(timings[i], pass(w))
		}
	}

	res := Result{Name: b.Name, Elements: n}
	for i, w := range work {
		slices.Sort(timings[i])
		res.Median = append(res.Median, timings[i][len(timings[i])/2])
		res.Checksum = append(res.Checksum, w.Checksum())
	}
	return res
}

// Print writes one row per benchmark: the median time per backend, then each
// other backend's time as a percentage of the first's.
func (rep Report) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "BENCHMARK\t")
	for _, name := range rep.Backends {
		fmt.Fprintf(tw, "%s µs\t", name)
	}
	for _, name := range lo.Drop(rep.Backends, 1) {
		fmt.Fprintf(tw, "%s/%s\t", name, rep.Backends[0])
	}
	fmt.Fprintln(tw)

	for _, r := range rep.Results {
		fmt.Fprintf(tw, "%s\t", r.Name)
		for _, m := range r.Median {
			fmt.Fprintf(tw, "%.4f\t", m)
		}
		for i := 1; i < len(r.Median); i++ {
			fmt.Fprintf(tw, "%.2f%%\t", r.Ratio(i))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
