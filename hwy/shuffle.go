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

// ShuffleImm builds a SHUFPS immediate. Arguments are given from the highest
// destination lane down, the same order as _MM_SHUFFLE.
func ShuffleImm(w, z, y, x uint8) uint8 {
	return (w&3)<<6 | (z&3)<<4 | (y&3)<<2 | x&3
}

// Shuffle implements SHUFPS: the two low lanes of the result come from a and
// the two high lanes come from b, each selected by two bits of imm.
func Shuffle(a, b Float32x4, imm uint8) Float32x4 {
	return Float32x4{lanes: [4]float32{
		a.lanes[imm&3],
		a.lanes[imm>>2&3],
		b.lanes[imm>>4&3],
		b.lanes[imm>>6&3],
	}}
}

// Swizzle permutes the lanes of a single register, Shuffle(v, v, imm).
func Swizzle(v Float32x4, imm uint8) Float32x4 {
	return Shuffle(v, v, imm)
}

// Broadcast copies lane i to every lane.
func Broadcast(v Float32x4, i int) Float32x4 {
	return Set1(v.lanes[i&3])
}

// MoveLH implements MOVLHPS: {a0, a1, b0, b1}.
func MoveLH(a, b Float32x4) Float32x4 {
	return Float32x4{lanes: [4]float32{a.lanes[0], a.lanes[1], b.lanes[0], b.lanes[1]}}
}

// MoveHL implements MOVHLPS: {b2, b3, a2, a3}.
func MoveHL(a, b Float32x4) Float32x4 {
	return Float32x4{lanes: [4]float32{b.lanes[2], b.lanes[3], a.lanes[2], a.lanes[3]}}
}

// InterleaveLower implements UNPCKLPS: {a0, b0, a1, b1}.
func InterleaveLower(a, b Float32x4) Float32x4 {
	return Float32x4{lanes: [4]float32{a.lanes[0], b.lanes[0], a.lanes[1], b.lanes[1]}}
}

// InterleaveUpper implements UNPCKHPS: {a2, b2, a3, b3}.
func InterleaveUpper(a, b Float32x4) Float32x4 {
	return Float32x4{lanes: [4]float32{a.lanes[2], b.lanes[2], a.lanes[3], b.lanes[3]}}
}

// HAdd implements HADDPS: {a0+a1, a2+a3, b0+b1, b2+b3}.
func HAdd(a, b Float32x4) Float32x4 {
	return Float32x4{lanes: [4]float32{
		a.lanes[0] + a.lanes[1],
		a.lanes[2] + a.lanes[3],
		b.lanes[0] + b.lanes[1],
		b.lanes[2] + b.lanes[3],
	}}
}

// InsertLane returns v with lane i replaced by lane 0 of s. It uses only
// moves and shuffles, so no other lane is touched.
func InsertLane(v Float32x4, i int, s Float32x4) Float32x4 {
	switch i {
	case 0:
		r := MoveLH(s, v) // {s0, s1, v0, v1}
		return Shuffle(r, v, ShuffleImm(3, 2, 3, 0))
	case 1:
		r := MoveLH(v, s) // {v0, v1, s0, s1}
		return Shuffle(r, v, ShuffleImm(3, 2, 2, 0))
	case 2:
		r := MoveHL(s, v) // {v2, v3, s2, s3}
		r = MoveLH(r, s)  // {v2, v3, s0, s1}
		return Shuffle(v, r, ShuffleImm(1, 2, 1, 0))
	case 3:
		r := MoveHL(s, v)
		r = MoveLH(r, s)
		return Shuffle(v, r, ShuffleImm(2, 0, 1, 0))
	}
	panic("hwy: lane index out of range")
}

// Transpose4 transposes the 4x4 block held in four registers, the way
// _MM_TRANSPOSE4_PS does.
func Transpose4(r0, r1, r2, r3 Float32x4) (Float32x4, Float32x4, Float32x4, Float32x4) {
	t0 := InterleaveLower(r0, r1) // {00, 10, 01, 11}
	t1 := InterleaveLower(r2, r3) // {20, 30, 21, 31}
	t2 := InterleaveUpper(r0, r1) // {02, 12, 03, 13}
	t3 := InterleaveUpper(r2, r3) // {22, 32, 23, 33}
	return MoveLH(t0, t1), MoveHL(t1, t0), MoveLH(t2, t3), MoveHL(t3, t2)
}
