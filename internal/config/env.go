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

// This file contains the environment variable overrides.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/ajroetker/go-simdmath/internal/apperrors"
)

// envOverride maps an environment key (without EnvPrefix) to the flag it
// shadows and a function that applies the value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(c *Config, funcs *string, v string) error
}

// envOverrides is the table of all environment overrides.
var envOverrides = []envOverride{
	{"BACKEND", "backend", func(c *Config, _ *string, v string) error {
		c.Backend = v
		return nil
	}},
	{"FUNC", "func", func(_ *Config, funcs *string, v string) error {
		*funcs = v
		return nil
	}},
	{"SAMPLES", "samples", func(c *Config, _ *string, v string) (err error) {
		c.Samples, err = strconv.Atoi(v)
		return err
	}},
	{"SEED", "seed", func(c *Config, _ *string, v string) (err error) {
		c.Seed, err = strconv.ParseUint(v, 10, 64)
		return err
	}},
	{"WORKERS", "workers", func(c *Config, _ *string, v string) (err error) {
		c.Workers, err = strconv.Atoi(v)
		return err
	}},
	{"MAX_ULP", "max-ulp", func(c *Config, _ *string, v string) (err error) {
		c.MaxULP, err = strconv.ParseFloat(v, 64)
		return err
	}},
	{"METRICS_FILE", "metrics-file", func(c *Config, _ *string, v string) error {
		c.MetricsFile = v
		return nil
	}},
	{"JSON", "json", func(c *Config, _ *string, v string) (err error) {
		c.JSON, err = parseBool(v)
		return err
	}},
	{"VERBOSE", "v", func(c *Config, _ *string, v string) (err error) {
		c.Verbose, err = parseBool(v)
		return err
	}},
	{"QUIET", "q", func(c *Config, _ *string, v string) (err error) {
		c.Quiet, err = parseBool(v)
		return err
	}},
}

// parseBool accepts "true", "1", "yes", "false", "0" and "no" in any case.
func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, strconv.ErrSyntax
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides applies the environment to every flag that was not given
// on the command line. A malformed value is a configuration error.
func applyEnvOverrides(c *Config, funcs *string, fs *flag.FlagSet) error {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		v := os.Getenv(EnvPrefix + o.envKey)
		if v == "" {
			continue
		}
		if err := o.apply(c, funcs, v); err != nil {
			return apperrors.NewConfigError("invalid %s%s=%q", EnvPrefix, o.envKey, v)
		}
	}
	return nil
}
