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

package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel identifies the instruction-set level whose semantics the
// lane kernels follow.
type DispatchLevel int

const (
	// DispatchScalar sums lanes strictly left to right and never fuses.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 reduces with the SHUFPS/ADDPS rotation pattern.
	DispatchSSE2

	// DispatchSSE3 reduces with two HADDPS steps.
	DispatchSSE3

	// DispatchSSE41 reduces with DPPS (mask 0xff).
	DispatchSSE41

	// DispatchNEON reduces with pairwise adds (FADDP), which matches HADDPS.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchSSE3:
		return "sse3"
	case DispatchSSE41:
		return "sse4.1"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level name back to its DispatchLevel.
func ParseLevel(name string) (DispatchLevel, bool) {
	for _, l := range Levels() {
		if l.String() == name {
			return l, true
		}
	}
	return DispatchScalar, false
}

// Levels lists every dispatch level. All of them run on any CPU because
// the kernels are written in Go; the level only selects reduction order and
// FMA use.
func Levels() []DispatchLevel {
	return []DispatchLevel{DispatchScalar, DispatchSSE2, DispatchSSE3, DispatchSSE41, DispatchNEON}
}

// currentLevel is the active level. Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// detectedLevel is what the CPU supports, kept so SetLevel can be undone.
var detectedLevel DispatchLevel

// cpuHasFMA is set by init() in dispatch_*.go files.
var cpuHasFMA bool

// useFMA is true when MulAdd fuses.
var useFMA bool

// Kernel function pointers. The scalar versions are the default; setLevel
// swaps in the variant for the active level.
var (
	kernelDot4 = dot4Scalar
)

// CurrentLevel returns the active dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// DetectedLevel returns the level chosen from CPU features at init.
func DetectedLevel() DispatchLevel {
	return detectedLevel
}

// CurrentName returns the name of the active dispatch level.
func CurrentName() string {
	return currentLevel.String()
}

// HasFMA reports whether MulAdd currently fuses.
func HasFMA() bool {
	return useFMA
}

// SetLevel switches the active level and returns a function that restores
// the previous one. It is meant for tests and for the CLI's --level flag;
// it is not safe to call while other goroutines use the package.
func SetLevel(level DispatchLevel) (restore func()) {
	prev := currentLevel
	setLevel(level)
	return func() { setLevel(prev) }
}

func setLevel(level DispatchLevel) {
	currentLevel = level
	useFMA = cpuHasFMA && level != DispatchScalar

	switch level {
	case DispatchSSE2:
		kernelDot4 = dot4Shuffle
	case DispatchSSE3, DispatchNEON:
		kernelDot4 = dot4HAdd
	case DispatchSSE41:
		kernelDot4 = dot4DPPS
	default:
		kernelDot4 = dot4Scalar
	}
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar level is used regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
