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

// Package assert provides invariant checks that only exist in debug builds.
//
// Build with -tags vec4debug to enable them. In regular builds Enabled is a
// false constant and every call to That folds away.
package assert

// Failure is the panic value raised by a failed assertion.
type Failure struct {
	Msg string
}

func (f Failure) Error() string {
	return "assertion failed: " + f.Msg
}

// That panics with a Failure when cond is false and assertions are enabled.
func That(cond bool, msg string) {
	if Enabled && !cond {
		panic(Failure{Msg: msg})
	}
}
