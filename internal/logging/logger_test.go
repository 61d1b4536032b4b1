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
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"string", String("backend", "avx2"), "backend", "avx2"},
		{"int", Int("samples", 42), "samples", 42},
		{"uint64", Uint64("seed", 12345678901234567890), "seed", uint64(12345678901234567890)},
		{"float64", Float64("ulp", 0.5), "ulp", 0.5},
		{"bool", Bool("fma", true), "fma", true},
		{"nil error", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.field.Key)
			assert.Equal(t, tt.value, tt.field.Value)
		})
	}

	e := errors.New("boom")
	assert.Equal(t, e, Err(e).Value)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "sweep")
	logger.Info("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"sweep"`)
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, `"level":"info"`)
}

func TestNewDefaultLogger(t *testing.T) {
	assert.NotNil(t, NewDefaultLogger())
}

func TestZerologAdapterLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("debug message", String("key", "value"))
	logger.Warn("careful")
	logger.Error("sweep failed", errors.New("ulp limit"), Int("lane", 3))

	out := buf.String()
	for _, want := range []string{"debug message", `"key":"value"`, `"level":"warn"`, "ulp limit", `"lane":3`} {
		assert.Contains(t, out, want)
	}
}

func TestZerologAdapterFieldTypes(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string", Field{Key: "str", Value: "hello"}, `"str":"hello"`},
		{"int", Field{Key: "num", Value: 42}, `"num":42`},
		{"int64", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"error", Field{Key: "cause", Value: errors.New("oops")}, `"cause":"oops"`},
		{"bool", Field{Key: "flag", Value: true}, `"flag":true`},
		{"struct", Field{Key: "data", Value: struct{ X int }{X: 1}}, `"X":1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("fields", tt.field)
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestZerologAdapterPrint(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")
	logger.Printf("formatted %s %d", "message", 42)
	logger.Println("hello", "world")

	out := buf.String()
	assert.Contains(t, out, "formatted message 42")
	assert.Contains(t, out, "hello world")
}

func TestConsoleLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleLogger(&buf, false, true).Info("hidden")
	assert.Empty(t, buf.String())

	NewConsoleLogger(&buf, true, false).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestStdLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLoggerAdapter(log.New(&buf, "", 0))

	logger.Info("started", String("backend", "scalar"), Int("lanes", 1))
	logger.Debug("detail")
	logger.Warn("slow")
	logger.Error("failed", errors.New("bad"), String("func", "exp"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"[INFO] started backend=scalar lanes=1",
		"[DEBUG] detail",
		"[WARN] slow",
		"[ERROR] failed error=bad func=exp",
	}, lines)
}

func TestLoggerInterface(t *testing.T) {
	var _ Logger = (*ZerologAdapter)(nil)
	var _ Logger = (*StdLoggerAdapter)(nil)
}
