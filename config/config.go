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

// Package config loads vec4bench settings. Values come, in increasing
// priority, from the built-in defaults, a YAML file, VEC4_* environment
// variables and finally command line flags, which the command applies on
// top of Load's result.
//
// Example vec4bench.yaml:
//
//	log:
//	  level: debug
//	data:
//	  seed: 7
//	perf:
//	  benchmarks: [vectorDot, hitSphere]
//	  timed_passes: 32
//	  results: out/results.yaml
//	trace:
//	  model: disney-ggx-schlick-smith_ggx_correlated
//	  size: 512
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ajroetker/vec4bench/backends"
	"github.com/ajroetker/vec4bench/hwy"
	"github.com/ajroetker/vec4bench/internal/logging"
	"github.com/ajroetker/vec4bench/perf"
	"github.com/ajroetker/vec4bench/trace"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix starts the name of every environment variable read.
const EnvPrefix = "VEC4_"

// Config is the full set of settings.
type Config struct {
	Log         LogConfig         `yaml:"log"`
	Data        DataConfig        `yaml:"data"`
	Perf        PerfConfig        `yaml:"perf"`
	Conformance ConformanceConfig `yaml:"conformance"`
	Trace       TraceConfig       `yaml:"trace"`

	// Backends restricts every harness to these backends. Empty means all.
	Backends []string `yaml:"backends"`
	// DispatchLevel overrides the detected lane dispatch level.
	DispatchLevel string `yaml:"dispatch_level"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DataConfig sizes the shared random pool.
type DataConfig struct {
	Seed uint64 `yaml:"seed"`
	Size int    `yaml:"size"`
}

type PerfConfig struct {
	Benchmarks   []string `yaml:"benchmarks"`
	Iterations   int      `yaml:"iterations"`
	WarmupPasses int      `yaml:"warmup_passes"`
	TimedPasses  int      `yaml:"timed_passes"`
	TraceSize    int      `yaml:"trace_size"`
	// Results, when set, is the path of the YAML results file.
	Results string `yaml:"results"`
	// Profile pins the process to one core at raised priority.
	Profile bool `yaml:"profile"`
}

type ConformanceConfig struct {
	// Strict makes a failed conformance run exit non-zero.
	Strict bool `yaml:"strict"`
}

type TraceConfig struct {
	Model   string `yaml:"model"`
	Size    int    `yaml:"size"`
	OutDir  string `yaml:"out_dir"`
	Backend string `yaml:"backend"`
	// Workers sizes the pool for gallery and large renders; zero means one
	// per CPU.
	Workers int `yaml:"workers"`
}

// LoadDefaults returns the built-in settings.
func LoadDefaults() *Config {
	return &Config{
		Log:  LogConfig{Level: "info", Format: logging.FormatText},
		Data: DataConfig{Seed: 1, Size: 1 << 24},
		Perf: PerfConfig{
			Iterations:   perf.DefaultIterations,
			WarmupPasses: perf.DefaultWarmupPasses,
			TimedPasses:  perf.DefaultTimedPasses,
			TraceSize:    perf.DefaultTraceSize,
			Profile:      true,
		},
		Trace: TraceConfig{
			Model:   trace.BlinnPhong.String(),
			Size:    256,
			OutDir:  "out",
			Backend: "reference",
		},
	}
}

// LoadFromFile reads path over the defaults. A missing file is not an
// error. Environment variables are not applied; see Load.
func LoadFromFile(path string) (*Config, error) {
	cfg := LoadDefaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Load reads path, when not empty, then applies the environment.
func Load(path string) (*Config, error) {
	cfg := LoadDefaults()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	applyEnvVars(cfg)
	return cfg, nil
}

func applyEnvVars(cfg *Config) {
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)

	cfg.Data.Seed = getEnvUint("SEED", cfg.Data.Seed)
	cfg.Data.Size = getEnvInt("DATA_SIZE", cfg.Data.Size)

	cfg.Perf.Benchmarks = getEnvStringSlice("BENCHMARKS", cfg.Perf.Benchmarks)
	cfg.Perf.Iterations = getEnvInt("ITERATIONS", cfg.Perf.Iterations)
	cfg.Perf.WarmupPasses = getEnvInt("WARMUP_PASSES", cfg.Perf.WarmupPasses)
	cfg.Perf.TimedPasses = getEnvInt("TIMED_PASSES", cfg.Perf.TimedPasses)
	cfg.Perf.TraceSize = getEnvInt("PERF_TRACE_SIZE", cfg.Perf.TraceSize)
	cfg.Perf.Results = getEnv("RESULTS", cfg.Perf.Results)
	cfg.Perf.Profile = getEnvBool("PROFILE", cfg.Perf.Profile)

	cfg.Conformance.Strict = getEnvBool("STRICT", cfg.Conformance.Strict)

	cfg.Trace.Model = getEnv("TRACE_MODEL", cfg.Trace.Model)
	cfg.Trace.Size = getEnvInt("TRACE_SIZE", cfg.Trace.Size)
	cfg.Trace.OutDir = getEnv("TRACE_OUT", cfg.Trace.OutDir)
	cfg.Trace.Backend = getEnv("TRACE_BACKEND", cfg.Trace.Backend)
	cfg.Trace.Workers = getEnvInt("WORKERS", cfg.Trace.Workers)

	cfg.Backends = getEnvStringSlice("BACKENDS", cfg.Backends)
	cfg.DispatchLevel = getEnv("DISPATCH_LEVEL", cfg.DispatchLevel)
}

// Validate checks every field and names the first bad one.
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return invalid("%v", err)
	}
	if f := strings.ToLower(c.Log.Format); f != logging.FormatText && f != logging.FormatJSON {
		return invalid("log format %q", c.Log.Format)
	}
	if c.Data.Size <= 0 {
		return invalid("data size %d", c.Data.Size)
	}

	if c.Perf.Iterations <= 0 {
		return invalid("iterations %d", c.Perf.Iterations)
	}
	if c.Perf.WarmupPasses < 0 {
		return invalid("warm-up passes %d", c.Perf.WarmupPasses)
	}
	if c.Perf.TimedPasses <= 0 {
		return invalid("timed passes %d", c.Perf.TimedPasses)
	}
	if c.Perf.TraceSize <= 0 {
		return invalid("perf trace size %d", c.Perf.TraceSize)
	}
	if _, err := perf.Selected(c.Perf.Benchmarks); err != nil {
		return invalid("%v", err)
	}

	if _, err := trace.ParseModel(c.Trace.Model); err != nil {
		return invalid("%v", err)
	}
	if c.Trace.Size <= 0 {
		return invalid("trace size %d", c.Trace.Size)
	}
	if c.Trace.Workers < 0 {
		return invalid("workers %d", c.Trace.Workers)
	}
	if _, err := backends.Lookup(c.Trace.Backend); err != nil {
		return invalid("%v", err)
	}
	for _, name := range c.Backends {
		if _, err := backends.Lookup(name); err != nil {
			return invalid("%v", err)
		}
	}

	if c.DispatchLevel != "" {
		if _, ok := hwy.ParseLevel(c.DispatchLevel); !ok {
			return invalid("dispatch level %q", c.DispatchLevel)
		}
	}
	return nil
}

// String renders the configuration as YAML.
func (c *Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(out)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvUint(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if u, err := strconv.ParseUint(val, 10, 64); err == nil {
			return u
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		val = strings.ToLower(val)
		return val == "true" || val == "1" || val == "yes" || val == "on"
	}
	return defaultVal
}

func getEnvStringSlice(key string, defaultVal []string) []string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		var result []string
		for _, p := range strings.Split(val, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultVal
}
