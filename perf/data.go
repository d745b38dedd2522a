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

import "math/rand/v2"

// DataMax is the exclusive upper bound of generated values.
const DataMax = 16

// GenerateData returns n floats drawn uniformly from [0, DataMax) by a PCG
// generator seeded with seed. The same seed always yields the same stream.
func GenerateData(seed uint64, n int) []float32 {
	r := rand.New(rand.NewPCG(seed, seed))
	data := make([]float32, n)
	for i := range data {
		data[i] = r.Float32() * DataMax
	}
	return data
}
