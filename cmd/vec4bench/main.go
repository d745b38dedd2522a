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


// vec4bench checks and times three implementations of a 4-lane float32
// vector algebra against each other.
//
// Usage:
//
//	vec4bench                      conformance, then the perf comparison
//	vec4bench conformance --strict
//	vec4bench perf --bench vectorDot,hitSphere --results out/results.yaml
//	vec4bench trace --all --size 256 --out out
//	vec4bench features
//	vec4bench version
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/ajroetker/vec4bench/backends"
	"github.com/ajroetker/vec4bench/config"
	"github.com/ajroetker/vec4bench/hwy"
	"github.com/ajroetker/vec4bench/internal/logging"
	"github.com/ajroetker/vec4bench/platform"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	version   = "0.1.0"
	commit    = "dev"
	buildTime = "unknown"
)

// errConformanceFailed is returned in strict mode when any backend fails a
// conformance test.
var errConformanceFailed = errors.New("conformance failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// app carries what every subcommand needs once the persistent flags have
// been resolved.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	backends []backends.Backend
	restore  func()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "vec4bench",
		Short: "Vector algebra conformance and performance harness",
		Long: `vec4bench runs the same vector algebra workloads on three backends:

  reference  plain structs of four float32 values
  aligned    16-byte aligned lane arrays
  intrinsic  lane kernels selected by the CPU dispatch level

With no subcommand it checks the backends against each other and then
times every benchmark, reporting the median and each backend's cost
relative to the reference.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.restore != nil {
				a.restore()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runAll(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", logging.FormatText, "log format: text or json")
	pf.StringSlice("backends", nil, "backends to run, comma separated (default all)")
	pf.String("level", "", "dispatch level override: "+strings.Join(levelNames(), ", "))
	pf.Uint64("seed", 1, "seed of the random data pool")
	pf.Int("data-size", 1<<24, "number of floats in the random data pool")

	rootCmd.AddCommand(
		newConformanceCmd(a),
		newPerfCmd(a),
		newTraceCmd(a),
		&cobra.Command{
			Use:   "features",
			Short: "Show the CPU features and dispatch level",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return platform.Detect().Print(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			// version needs no configuration.
			PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "vec4bench v%s (%s) built %s %s/%s\n",
					version, commit, buildTime, runtime.GOOS, runtime.GOARCH)
			},
		},
	)
	return rootCmd
}

func levelNames() []string {
	return lo.Map(hwy.Levels(), func(l hwy.DispatchLevel, _ int) string { return l.String() })
}

// setup loads the configuration, applies the flags that were set on the
// command line, and builds the logger and backend list.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.backends = selectBackends(cfg.Backends)

	if cfg.DispatchLevel != "" {
		level, _ := hwy.ParseLevel(cfg.DispatchLevel)
		a.restore = hwy.SetLevel(level)
	}
	a.log.Debug("configuration loaded",
		"config", path,
		"level", hwy.CurrentName(),
		"backends", lo.Map(a.backends, func(b backends.Backend, _ int) string { return b.Info.Name }))
	return nil
}

// selectBackends keeps the report order of backends.All whatever order
// names come in.
func selectBackends(names []string) []backends.Backend {
	if len(names) == 0 {
		return backends.All()
	}
	return lo.Filter(backends.All(), func(b backends.Backend, _ int) bool {
		return lo.ContainsBy(names, func(n string) bool { return strings.EqualFold(n, b.Info.Name) })
	})
}

// runAll is the default command: conformance first, then perf.
func (a *app) runAll(cmd *cobra.Command) error {
	confErr := a.runConformance(cmd.OutOrStdout())
	if confErr != nil && !errors.Is(confErr, errConformanceFailed) {
		return confErr
	}
	fmt.Fprintln(cmd.OutOrStdout())
	if err := a.runPerf(cmd.Context(), cmd.OutOrStdout()); err != nil {
		return err
	}
	return confErr
}

func writeReport(w io.Writer, print func(io.Writer) error) error {
	if err := print(w); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
