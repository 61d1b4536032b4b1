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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-simdmath/internal/apperrors"
)

func TestRunPasses(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "out.prom")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"simdcheck", "-func", "exp,cmul", "-samples", "500",
		"-backend", "w256-fma", "-metrics-file", metrics, "-json"}, &stdout, &stderr)
	require.Equal(t, apperrors.ExitSuccess, code, stderr.String())

	var report struct {
		Results []struct {
			Function string `json:"function"`
			Backend  string `json:"backend"`
			Passed   bool   `json:"passed"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	require.Len(t, report.Results, 2)
	for _, r := range report.Results {
		assert.Equal(t, "w256-fma", r.Backend)
		assert.True(t, r.Passed)
	}

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "simdcheck_max_error_ulp")
	assert.Contains(t, stderr.String(), "backend detected")
}

func TestRunTextReport(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"simdcheck", "-func", "sin", "-samples", "200", "-q"}, &stdout, &stderr)
	require.Equal(t, apperrors.ExitSuccess, code, stderr.String())
	assert.Contains(t, stdout.String(), "FUNCTION")
	assert.Contains(t, stdout.String(), "scalar-fma")
	assert.Empty(t, stderr.String())
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"-h"}, apperrors.ExitSuccess},
		{"bad backend", []string{"-backend", "avx9"}, apperrors.ExitErrorConfig},
		{"bad samples", []string{"-samples", "-3"}, apperrors.ExitErrorConfig},
		{"tight limit", []string{"-func", "cot", "-samples", "5000", "-max-ulp", "1e-9"}, apperrors.ExitErrorAccuracy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			got := run(context.Background(), append([]string{"simdcheck"}, tt.args...), &stdout, &stderr)
			assert.Equal(t, tt.want, got, stderr.String())
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"simdcheck", "-func", "log", "-samples", "100"}, &stdout, &stderr)
	assert.Equal(t, apperrors.ExitErrorCanceled, code)
	assert.Empty(t, stdout.String())
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("SIMDCHECK_SAMPLES", "zero")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"simdcheck"}, &stdout, &stderr)
	assert.Equal(t, apperrors.ExitErrorConfig, code)
	assert.Contains(t, stderr.String(), "SIMDCHECK_SAMPLES")
}
