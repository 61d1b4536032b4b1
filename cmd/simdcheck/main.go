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

// Command simdcheck measures the accuracy of the vector math kernels on every
// backend against reference implementations.
//
// Usage:
//
//	simdcheck [-backend all|NAME] [-func exp,log,...] [-samples N] [-seed S]
//	          [-workers W] [-max-ulp U] [-metrics-file PATH] [-json] [-v|-q]
//
// Exit status is 0 when every sweep stays within -max-ulp, 3 when one does
// not, 4 for invalid configuration and 130 when interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/hwy/contrib/workerpool"
	"github.com/ajroetker/go-simdmath/internal/apperrors"
	"github.com/ajroetker/go-simdmath/internal/check"
	"github.com/ajroetker/go-simdmath/internal/config"
	"github.com/ajroetker/go-simdmath/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	programName := "simdcheck"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.Parse(programName, cmdArgs, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return apperrors.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return apperrors.ExitCode(err)
	}

	logger := logging.NewConsoleLogger(stderr, cfg.Verbose, cfg.Quiet)
	current := hwy.CurrentBackend()
	logger.Info("backend detected",
		logging.String("backend", current.Name()),
		logging.String("dispatch", hwy.CurrentLevel().String()),
		logging.Bool("fma", current.HasFMA()))
	logger.Debug("configuration", logging.String("config", cfg.String()))

	err = sweep(ctx, cfg, logger, stdout)
	switch code := apperrors.ExitCode(err); code {
	case apperrors.ExitSuccess:
		logger.Info("all sweeps within limit")
	case apperrors.ExitErrorCanceled:
		logger.Warn("interrupted")
		return code
	default:
		logger.Error("check failed", err)
		return code
	}
	return apperrors.ExitSuccess
}

func sweep(ctx context.Context, cfg config.Config, logger logging.Logger, stdout io.Writer) error {
	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	metrics := check.NewMetrics()
	report, err := check.Run(ctx, check.Options{
		Backends: cfg.Backends(),
		Kernels:  check.Select(cfg.Funcs),
		Samples:  cfg.Samples,
		Seed:     cfg.Seed,
		MaxULP:   cfg.MaxULP,
		Pool:     pool,
		Logger:   logger,
		Metrics:  metrics,
	})
	if report == nil {
		return err
	}

	for _, res := range report.Failed() {
		logger.Warn("limit exceeded",
			logging.String("function", res.Function),
			logging.String("backend", res.Backend),
			logging.Float64("max_ulp", float64(res.MaxULP)),
			logging.String("worst_input", res.Worst))
	}

	var werr error
	if cfg.JSON {
		werr = report.WriteJSON(stdout)
	} else {
		werr = report.WriteText(stdout)
	}
	if werr != nil {
		return apperrors.WrapError(werr, "write report")
	}

	if cfg.MetricsFile != "" {
		if merr := metrics.WriteTextfile(cfg.MetricsFile); merr != nil {
			return apperrors.WrapError(merr, "write metrics")
		}
		logger.Debug("metrics written", logging.String("path", cfg.MetricsFile))
	}
	return err
}
