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

package perf

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ajroetker/vec4bench/hwy"
	"github.com/google/uuid"
	"github.com/klauspost/cpuid/v2"
	"gopkg.in/yaml.v3"
)

// ResultsFile is the YAML document WriteResults produces.
type ResultsFile struct {
	RunID     string         `yaml:"run_id"`
	Timestamp time.Time      `yaml:"timestamp"`
	CPU       string         `yaml:"cpu"`
	Arch      string         `yaml:"arch"`
	Level     string         `yaml:"dispatch_level"`
	FMA       bool           `yaml:"fma"`
	Backends  []string       `yaml:"backends"`
	Results   []ResultRecord `yaml:"results"`
}

// ResultRecord is one benchmark in a ResultsFile.
type ResultRecord struct {
	Name     string    `yaml:"name"`
	Elements int       `yaml:"elements"`
	MedianUS []float64 `yaml:"median_us,flow"`
	// Ratios are the percentages against the first backend, starting with
	// the second.
	Ratios   []float64 `yaml:"ratios,flow"`
	Checksum []float32 `yaml:"checksum,flow"`
}

// NewResultsFile stamps rep with a fresh run id and the host description.
func NewResultsFile(rep Report) ResultsFile {
	f := ResultsFile{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC(),
		CPU:       cpuid.CPU.BrandName,
		Arch:      runtime.GOARCH,
		Level:     hwy.CurrentName(),
		FMA:       hwy.HasFMA(),
		Backends:  rep.Backends,
	}
	for _, r := range rep.Results {
		rec := ResultRecord{
			Name:     r.Name,
			Elements: r.Elements,
			MedianUS: r.Median,
			Checksum: r.Checksum,
		}
		for i := 1; i < len(r.Median); i++ {
			rec.Ratios = append(rec.Ratios, r.Ratio(i))
		}
		f.Results = append(f.Results, rec)
	}
	return f
}

// WriteResults writes rep as a ResultsFile to path, creating parent
// directories.
func WriteResults(path string, rep Report) error {
	out, err := yaml.Marshal(NewResultsFile(rep))
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

// ReadResults loads a file written by WriteResults.
func ReadResults(path string) (ResultsFile, error) {
	var f ResultsFile
	data, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}
