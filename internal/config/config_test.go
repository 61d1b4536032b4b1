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

package config

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/internal/apperrors"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	return Parse("simdcheck", args, io.Discard)
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, DefaultBackend, cfg.Backend)
	assert.Equal(t, Functions, cfg.Funcs)
	assert.Equal(t, DefaultSamples, cfg.Samples)
	assert.Equal(t, uint64(DefaultSeed), cfg.Seed)
	assert.Equal(t, float64(DefaultMaxULP), cfg.MaxULP)
	assert.Equal(t, hwy.Backends(), cfg.Backends())
	assert.False(t, cfg.JSON)
}

func TestFlags(t *testing.T) {
	cfg, err := parse(t, "-backend", "W256-FMA", "-func", "exp, cdiv,exp", "-samples", "100",
		"-seed", "7", "-workers", "3", "-max-ulp", "2.5", "-metrics-file", "out.prom", "-json", "-v")
	require.NoError(t, err)
	assert.Equal(t, []string{"exp", "cdiv"}, cfg.Funcs)
	assert.Equal(t, 100, cfg.Samples)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 2.5, cfg.MaxULP)
	assert.Equal(t, "out.prom", cfg.MetricsFile)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []hwy.Backend{hwy.Width256FMA}, cfg.Backends())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SIMDCHECK_SAMPLES", "500")
	t.Setenv("SIMDCHECK_FUNC", "sin,cos")
	t.Setenv("SIMDCHECK_QUIET", "yes")
	t.Setenv("SIMDCHECK_MAX_ULP", "1")

	cfg, err := parse(t, "-max-ulp", "3")
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Samples)
	assert.Equal(t, []string{"sin", "cos"}, cfg.Funcs)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, 3.0, cfg.MaxULP, "flags take precedence over the environment")
}

func TestInvalidEnv(t *testing.T) {
	t.Setenv("SIMDCHECK_SEED", "-1")
	_, err := parse(t)
	var cfgErr apperrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Message, "SIMDCHECK_SEED")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown backend", []string{"-backend", "avx9"}},
		{"unknown kernel", []string{"-func", "exp,erf"}},
		{"empty kernel list", []string{"-func", " , "}},
		{"zero samples", []string{"-samples", "0"}},
		{"negative workers", []string{"-workers", "-1"}},
		{"zero max-ulp", []string{"-max-ulp", "0"}},
		{"NaN max-ulp", []string{"-max-ulp", "NaN"}},
		{"verbose and quiet", []string{"-v", "-q"}},
		{"positional argument", []string{"exp"}},
		{"unknown flag", []string{"-fast"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			assert.Equal(t, apperrors.ExitErrorConfig, apperrors.ExitCode(err), "err = %v", err)
		})
	}
}

func TestHelp(t *testing.T) {
	_, err := parse(t, "-h")
	assert.ErrorIs(t, err, flag.ErrHelp)
}
