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

// Package config parses the simdcheck command line.
//
// Every flag can also be set through an environment variable with the
// SIMDCHECK_ prefix, for example SIMDCHECK_SAMPLES=100000. Values given on the
// command line take precedence over the environment, which takes precedence
// over the defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/internal/apperrors"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "SIMDCHECK_"

// Defaults.
const (
	DefaultBackend = "all"
	DefaultSamples = 20000
	DefaultSeed    = 1
	DefaultMaxULP  = 8
)

// Functions lists the kernels the tool knows how to sweep.
var Functions = []string{"exp", "log", "sin", "cos", "tan", "cot", "cmul", "cdiv"}

// Config is the resolved configuration of one simdcheck run.
type Config struct {
	Backend     string
	Funcs       []string
	Samples     int
	Seed        uint64
	Workers     int
	MaxULP      float64
	MetricsFile string
	JSON        bool
	Verbose     bool
	Quiet       bool
}

// Parse parses args (without the program name) and applies environment
// overrides for the flags that were not given. Usage and parse errors are
// written to errOut. The returned error is an apperrors.ConfigError for
// invalid input, or flag.ErrHelp when -h was requested.
func Parse(programName string, args []string, errOut io.Writer) (Config, error) {
	var cfg Config
	var funcs string

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.Backend, "backend", DefaultBackend, `backend to sweep: "all" or one of `+backendNames())
	fs.StringVar(&funcs, "func", strings.Join(Functions, ","), "comma separated kernels to sweep")
	fs.IntVar(&cfg.Samples, "samples", DefaultSamples, "samples per kernel and backend")
	fs.Uint64Var(&cfg.Seed, "seed", DefaultSeed, "random seed for the sample inputs")
	fs.IntVar(&cfg.Workers, "workers", 0, "worker goroutines (0 uses GOMAXPROCS)")
	fs.Float64Var(&cfg.MaxULP, "max-ulp", DefaultMaxULP, "largest accepted error in ulps")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	fs.BoolVar(&cfg.JSON, "json", false, "print the report as JSON")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose logging")
	fs.BoolVar(&cfg.Quiet, "q", false, "only log errors")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if err := applyEnvOverrides(&cfg, &funcs, fs); err != nil {
		return cfg, err
	}
	cfg.Funcs = splitList(funcs)
	return cfg, cfg.Validate()
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.Backend != DefaultBackend {
		if _, ok := hwy.ParseBackend(c.Backend); !ok {
			return apperrors.NewConfigError("unknown backend %q (want all or one of %s)", c.Backend, backendNames())
		}
	}
	if len(c.Funcs) == 0 {
		return apperrors.NewConfigError("no kernels selected")
	}
	for _, f := range c.Funcs {
		if !slices.Contains(Functions, f) {
			return apperrors.NewConfigError("unknown kernel %q (want %s)", f, strings.Join(Functions, ","))
		}
	}
	if c.Samples <= 0 {
		return apperrors.NewConfigError("samples must be positive, got %d", c.Samples)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers must not be negative, got %d", c.Workers)
	}
	if !(c.MaxULP > 0) {
		return apperrors.NewConfigError("max-ulp must be positive, got %v", c.MaxULP)
	}
	if c.Verbose && c.Quiet {
		return apperrors.NewConfigError("-v and -q are mutually exclusive")
	}
	return nil
}

// Backends returns the backends selected by c.Backend. It assumes c has been
// validated.
func (c Config) Backends() []hwy.Backend {
	if c.Backend == DefaultBackend {
		return hwy.Backends()
	}
	b, _ := hwy.ParseBackend(c.Backend)
	return []hwy.Backend{b}
}

func backendNames() string {
	var names []string
	for _, b := range hwy.Backends() {
		names = append(names, b.Name())
	}
	return strings.Join(names, ", ")
}

func splitList(s string) []string {
	var out []string
	for f := range strings.SplitSeq(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

func (c Config) String() string {
	return fmt.Sprintf("backend=%s funcs=%s samples=%d seed=%d workers=%d max-ulp=%g",
		c.Backend, strings.Join(c.Funcs, ","), c.Samples, c.Seed, c.Workers, c.MaxULP)
}
