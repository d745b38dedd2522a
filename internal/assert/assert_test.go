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

package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThat(t *testing.T) {
	assert.NotPanics(t, func() { That(true, "never") })

	if !Enabled {
		assert.NotPanics(t, func() { That(false, "compiled out") })
		return
	}
	assert.PanicsWithValue(t, Failure{Msg: "boom"}, func() { That(false, "boom") })
}

func TestFailureError(t *testing.T) {
	assert.Equal(t, "assertion failed: lanes differ", Failure{Msg: "lanes differ"}.Error())
}
