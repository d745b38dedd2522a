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
	"fmt"
	"unsafe"
)

// RegisterAlign is the alignment, in bytes, of a Float32x4 spilled to memory
// by MOVAPS.
const RegisterAlign = 16

// AllocAligned returns a slice of n elements whose first element starts on
// an align-byte boundary. align must be a power of two. T must not contain
// pointers, since the backing store is a byte slice the collector does not
// scan for them.
func AllocAligned[T any](n, align int) []T {
	if align <= 0 || align&(align-1) != 0 {
		panic(fmt.Sprintf("hwy: alignment %d is not a power of two", align))
	}
	if n == 0 {
		return []T{}
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	buf := make([]byte, n*size+align-1)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := int((uintptr(align) - base%uintptr(align)) % uintptr(align))
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[off])), n)
}

// IsAligned reports whether the first element of s starts on an align-byte
// boundary. An empty slice is always aligned.
func IsAligned[T any](s []T, align int) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%uintptr(align) == 0
}
