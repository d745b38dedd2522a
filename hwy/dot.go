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

// Dot4 returns the four-lane dot product of a and b broadcast to every lane.
// The products are rounded before they are summed; the summation order is
// that of the active dispatch level.
func Dot4(a, b Float32x4) Float32x4 {
	return kernelDot4(a, b)
}

// dot4Scalar sums the products strictly left to right.
func dot4Scalar(a, b Float32x4) Float32x4 {
	p := Mul(a, b)
	return Set1(ReduceSum(p))
}

// dot4Shuffle is the SSE2 sequence: rotate by one lane and add, then swap
// halves and add. Lane 0 ends up as (p0+p3)+(p2+p1) while the other lanes
// group differently, so lane 0 is broadcast.
func dot4Shuffle(a, b Float32x4) Float32x4 {
	p := Mul(a, b)
	t := Add(p, Swizzle(p, ShuffleImm(2, 1, 0, 3)))
	t = Add(t, Swizzle(t, ShuffleImm(1, 0, 3, 2)))
	return Broadcast(t, 0)
}

// dot4HAdd is the SSE3 sequence, MULPS followed by two HADDPS.
func dot4HAdd(a, b Float32x4) Float32x4 {
	p := Mul(a, b)
	h := HAdd(p, p)
	return Broadcast(HAdd(h, h), 0)
}

// dot4DPPS follows DPPS with mask 0xff, which adds the products pairwise.
func dot4DPPS(a, b Float32x4) Float32x4 {
	p := Mul(a, b)
	lo := p.lanes[0] + p.lanes[1]
	hi := p.lanes[2] + p.lanes[3]
	return Set1(lo + hi)
}
