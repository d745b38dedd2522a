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

// Package hwy is the lane layer under the intrinsic algebra backend.
//
// It models a 128-bit register of four float32 lanes and the SSE-style
// operations the backend is written against: lane-wise arithmetic, SHUFPS
// shuffles, MOVLHPS/MOVHLPS/UNPCK moves, RSQRTPS and a horizontal dot product
// whose reduction order follows the dispatch level chosen at init.
//
// Register values are written from least to most significant lane:
//
//	lane:   0  1  2  3
//	value:  x  y  z  w
//
// Basic usage:
//
//	a := hwy.Set(1, 2, 3, 4)
//	b := hwy.Set1(2)
//	d := hwy.Dot4(a, hwy.Mul(a, b)) // every lane holds the dot product
package hwy

// Float32x4 is a register of four float32 lanes.
//
// The lanes are reachable only through accessors; code never depends on the
// in-memory layout of the register.
type Float32x4 struct {
	lanes [4]float32
}

// Set returns the register {x, y, z, w}.
func Set(x, y, z, w float32) Float32x4 {
	return Float32x4{lanes: [4]float32{x, y, z, w}}
}

// Set1 broadcasts f to all four lanes.
func Set1(f float32) Float32x4 {
	return Float32x4{lanes: [4]float32{f, f, f, f}}
}

// Zero returns a register with all lanes set to +0.
func Zero() Float32x4 {
	return Float32x4{}
}

// Load reads four lanes from src. It panics if len(src) < 4.
func Load(src []float32) Float32x4 {
	_ = src[3]
	return Float32x4{lanes: [4]float32{src[0], src[1], src[2], src[3]}}
}

// Store writes the four lanes to dst. It panics if len(dst) < 4.
func (v Float32x4) Store(dst []float32) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = v.lanes[0], v.lanes[1], v.lanes[2], v.lanes[3]
}

// Lane returns lane i. It panics if i is outside 0..3.
func (v Float32x4) Lane(i int) float32 {
	return v.lanes[i]
}

// Lowest returns lane 0, like CVTSS2F32.
func (v Float32x4) Lowest() float32 {
	return v.lanes[0]
}

// Array returns a copy of the lanes.
func (v Float32x4) Array() [4]float32 {
	return v.lanes
}

// IsBroadcast reports whether all four lanes hold the same bits. NaN lanes
// are compared bitwise, so a broadcast NaN counts as a broadcast.
func (v Float32x4) IsBroadcast() bool {
	b := f32bits(v.lanes[0])
	return f32bits(v.lanes[1]) == b && f32bits(v.lanes[2]) == b && f32bits(v.lanes[3]) == b
}

// Mask holds one bit per lane, as produced by MOVMSKPS.
type Mask uint8

// AllTrue reports whether every lane is set.
func (m Mask) AllTrue() bool {
	return m&0xf == 0xf
}

// AnyTrue reports whether at least one lane is set.
func (m Mask) AnyTrue() bool {
	return m&0xf != 0
}

// Bits returns the mask as an integer in 0..15.
func (m Mask) Bits() int {
	return int(m & 0xf)
}

// GetBit reports whether lane i is set.
func (m Mask) GetBit(i int) bool {
	if i < 0 || i > 3 {
		return false
	}
	return m&(1<<i) != 0
}
