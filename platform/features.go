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

// Package platform holds the OS and CPU specific pieces: pinning the
// benchmark to one core at raised priority, and describing the host CPU.
package platform

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/ajroetker/vec4bench/hwy"
	"github.com/klauspost/cpuid/v2"
	"github.com/samber/lo"
	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"
)

// Features describes the host as the benchmark sees it.
type Features struct {
	OS, Arch string
	CPU      string
	Vendor   string
	Cores    int
	Threads  int

	// Level is the active lane dispatch level and Detected the one chosen
	// from the CPU at startup.
	Level    string
	Detected string
	FMA      bool

	// SIMD lists the vector extensions relevant to 4-wide float32 code.
	SIMD []string
	// CPUID is the full cpuid feature set.
	CPUID []string

	// VekAccelerated reports whether vek32 found a SIMD path.
	VekAccelerated bool
}

// Detect collects Features.
func Detect() Features {
	info := vek32.Info()
	return Features{
		OS:             runtime.GOOS,
		Arch:           runtime.GOARCH,
		CPU:            cpuid.CPU.BrandName,
		Vendor:         cpuid.CPU.VendorString,
		Cores:          cpuid.CPU.PhysicalCores,
		Threads:        cpuid.CPU.LogicalCores,
		Level:          hwy.CurrentName(),
		Detected:       hwy.DetectedLevel().String(),
		FMA:            hwy.HasFMA(),
		SIMD:           simdFlags(),
		CPUID:          cpuid.CPU.FeatureSet(),
		VekAccelerated: info.Acceleration,
	}
}

func simdFlags() []string {
	flags := []lo.Tuple2[string, bool]{
		{A: "sse2", B: cpu.X86.HasSSE2},
		{A: "sse3", B: cpu.X86.HasSSE3},
		{A: "ssse3", B: cpu.X86.HasSSSE3},
		{A: "sse4.1", B: cpu.X86.HasSSE41},
		{A: "sse4.2", B: cpu.X86.HasSSE42},
		{A: "avx", B: cpu.X86.HasAVX},
		{A: "avx2", B: cpu.X86.HasAVX2},
		{A: "fma", B: cpu.X86.HasFMA},
		{A: "avx512f", B: cpu.X86.HasAVX512F},
		{A: "asimd", B: cpu.ARM64.HasASIMD},
		{A: "fphp", B: cpu.ARM64.HasFPHP},
		{A: "sve", B: cpu.ARM64.HasSVE},
	}
	return lo.FilterMap(flags, func(f lo.Tuple2[string, bool], _ int) (string, bool) {
		return f.A, f.B
	})
}

// Print writes the features as aligned key/value lines.
func (f Features) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(k string, v any) { fmt.Fprintf(tw, "%s:\t%v\n", k, v) }
	row("os/arch", f.OS+"/"+f.Arch)
	row("cpu", f.CPU)
	row("vendor", f.Vendor)
	row("cores", fmt.Sprintf("%d physical, %d logical", f.Cores, f.Threads))
	row("dispatch", fmt.Sprintf("%s (detected %s)", f.Level, f.Detected))
	row("fma", f.FMA)
	row("simd", strings.Join(f.SIMD, " "))
	row("vek32 accelerated", f.VekAccelerated)
	row("cpuid", strings.Join(f.CPUID, " "))
	return tw.Flush()
}
