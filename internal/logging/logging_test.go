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

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", "text", &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown", "backend", "intrinsic")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "backend=intrinsic")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("debug", "JSON", &buf)
	require.NoError(t, err)

	log.Debug("pass", "median_us", 1.5)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "pass", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, 1.5, rec["median_us"])
}

func TestNewErrors(t *testing.T) {
	_, err := New("info", "xml", &bytes.Buffer{})
	assert.ErrorContains(t, err, "xml")
	_, err = New("verbose", "text", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.False(t, Nop().Enabled(context.Background(), slog.LevelError))
}
