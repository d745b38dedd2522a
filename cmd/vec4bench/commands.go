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


package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ajroetker/vec4bench/backends"
	"github.com/ajroetker/vec4bench/config"
	"github.com/ajroetker/vec4bench/conformance"
	"github.com/ajroetker/vec4bench/internal/workerpool"
	"github.com/ajroetker/vec4bench/perf"
	"github.com/ajroetker/vec4bench/platform"
	"github.com/ajroetker/vec4bench/trace"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newConformanceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conformance",
		Short: "Check every backend against the fixed test cases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConformance(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Bool("strict", false, "exit non-zero when any test fails")
	return cmd
}

func newPerfCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perf",
		Short: "Time every benchmark on every backend",
		Long: `perf runs each benchmark on each backend, interleaving the backends
within a pass. The warm-up passes are discarded and the median of the timed
passes is reported in microseconds, next to each backend's cost as a
percentage of the first backend's.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPerf(cmd.Context(), cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringSlice("bench", nil, "benchmarks to run, comma separated (default all)")
	f.Int("iterations", perf.DefaultIterations, "elements processed per pass")
	f.Int("warmup", perf.DefaultWarmupPasses, "discarded warm-up passes")
	f.Int("passes", perf.DefaultTimedPasses, "timed passes")
	f.Int("trace-size", perf.DefaultTraceSize, "image side of the traceScene benchmark")
	f.String("results", "", "write the results to this YAML file")
	f.Bool("profile", true, "pin the process to one CPU at raised priority")
	return cmd
}

func newTraceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Render the fixture scene to BMP files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return a.runTrace(cmd.OutOrStdout(), all)
		},
	}
	f := cmd.Flags()
	f.String("model", "lambert-blinnphong", "reflectance model")
	f.Bool("all", false, "render every reflectance model")
	f.Int("size", 256, "image width and height")
	f.String("out", "out", "output directory")
	f.String("backend", "reference", "backend to render with")
	f.Int("workers", 0, "render workers (default one per CPU)")
	cmd.MarkFlagsMutuallyExclusive("model", "all")
	return cmd
}

// applyFlags copies every flag set on the command line over cfg. Flags left
// at their default do not override the file or the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	str := func(name string, dst *string) {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}
	num := func(name string, dst *int) {
		if f.Changed(name) {
			*dst, _ = f.GetInt(name)
		}
	}
	flag := func(name string, dst *bool) {
		if f.Changed(name) {
			*dst, _ = f.GetBool(name)
		}
	}
	list := func(name string, dst *[]string) {
		if f.Changed(name) {
			*dst, _ = f.GetStringSlice(name)
		}
	}

	str("log-level", &cfg.Log.Level)
	str("log-format", &cfg.Log.Format)
	list("backends", &cfg.Backends)
	str("level", &cfg.DispatchLevel)
	if f.Changed("seed") {
		cfg.Data.Seed, _ = f.GetUint64("seed")
	}
	num("data-size", &cfg.Data.Size)

	flag("strict", &cfg.Conformance.Strict)

	list("bench", &cfg.Perf.Benchmarks)
	num("iterations", &cfg.Perf.Iterations)
	num("warmup", &cfg.Perf.WarmupPasses)
	num("passes", &cfg.Perf.TimedPasses)
	num("trace-size", &cfg.Perf.TraceSize)
	str("results", &cfg.Perf.Results)
	flag("profile", &cfg.Perf.Profile)

	str("model", &cfg.Trace.Model)
	num("size", &cfg.Trace.Size)
	str("out", &cfg.Trace.OutDir)
	str("backend", &cfg.Trace.Backend)
	num("workers", &cfg.Trace.Workers)
}

func (a *app) runConformance(w io.Writer) error {
	a.log.Info("running conformance", "backends", len(a.backends))
	rep := conformance.Run(backends.ConformanceTargets(a.backends)...)
	if err := writeReport(w, rep.Print); err != nil {
		return err
	}
	if rep.Passed() {
		return nil
	}
	failed := rep.Failures()
	a.log.Warn("conformance failures", "tests", len(failed))
	if a.cfg.Conformance.Strict {
		return fmt.Errorf("%w: %d of %d tests", errConformanceFailed, len(failed), len(rep.Rows))
	}
	return nil
}

func (a *app) runPerf(ctx context.Context, w io.Writer) error {
	cfg := a.cfg
	a.log.Info("generating data",
		"floats", humanize.Comma(int64(cfg.Data.Size)),
		"bytes", humanize.Bytes(uint64(cfg.Data.Size)*4),
		"seed", cfg.Data.Seed)
	data := perf.GenerateData(cfg.Data.Seed, cfg.Data.Size)

	if cfg.Perf.Profile {
		if err := platform.EnableProfiling(); err != nil {
			a.log.Warn("profiling setup incomplete", "error", err)
		}
		defer platform.DisableProfiling()
	}

	opts := perf.Options{
		Benchmarks:   cfg.Perf.Benchmarks,
		Iterations:   cfg.Perf.Iterations,
		WarmupPasses: cfg.Perf.WarmupPasses,
		TimedPasses:  cfg.Perf.TimedPasses,
		TraceSize:    cfg.Perf.TraceSize,
		Logger:       a.log,
	}
	rep, err := perf.Run(ctx, opts, data, backends.PerfTargets(a.backends)...)
	if err != nil {
		return fmt.Errorf("perf: %w", err)
	}
	if err := writeReport(w, rep.Print); err != nil {
		return err
	}

	if cfg.Perf.Results != "" {
		if err := perf.WriteResults(cfg.Perf.Results, rep); err != nil {
			return err
		}
		a.log.Info("results written", "path", cfg.Perf.Results)
	}
	return nil
}

func (a *app) runTrace(w io.Writer, all bool) error {
	cfg := a.cfg.Trace
	b, err := backends.Lookup(cfg.Backend)
	if err != nil {
		return err
	}
	models := trace.Models()
	if !all {
		m, err := trace.ParseModel(cfg.Model)
		if err != nil {
			return err
		}
		models = []trace.Model{m}
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	a.log.Info("rendering",
		"backend", b.Info.Name,
		"models", len(models),
		"size", cfg.Size,
		"workers", pool.NumWorkers())

	var images []*trace.Image
	if len(models) == 1 {
		images = []*trace.Image{b.Render(pool, cfg.Size, cfg.Size, models[0])}
	} else {
		images = b.RenderGallery(pool, cfg.Size, models)
	}

	for i, img := range images {
		path := filepath.Join(cfg.OutDir, fmt.Sprintf("%s-%s.bmp", b.Info.Name, models[i]))
		if err := img.Save(path); err != nil {
			return err
		}
		a.log.Debug("image saved", "path", path)
		fmt.Fprintln(w, path)
	}
	return nil
}
