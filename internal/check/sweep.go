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

package check

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"slices"
	"strconv"
	"time"

	"github.com/tphakala/simd/cpu"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/hwy/contrib/algo"
	"github.com/ajroetker/go-simdmath/hwy/contrib/workerpool"
	"github.com/ajroetker/go-simdmath/internal/apperrors"
	"github.com/ajroetker/go-simdmath/internal/logging"
)

// batchSize is the number of samples a worker evaluates between
// cancellation checks.
const batchSize = 1024

// Options configures Run.
type Options struct {
	Backends []hwy.Backend
	Kernels  []Kernel
	Samples  int
	Seed     uint64
	MaxULP   float64

	// Pool runs the sample batches. A nil Pool uses GOMAXPROCS workers.
	Pool    *workerpool.Pool
	Logger  logging.Logger
	Metrics *Metrics
}

// Result is the outcome of one kernel on one backend.
type Result struct {
	Function string        `json:"function"`
	Backend  string        `json:"backend"`
	Samples  int           `json:"samples"`
	MaxULP   ULP           `json:"max_ulp"`
	MeanULP  ULP           `json:"mean_ulp"`
	P99ULP   ULP           `json:"p99_ulp"`
	Worst    string        `json:"worst_input"`
	NaNs     int           `json:"nans"`
	Passed   bool          `json:"passed"`
	Duration time.Duration `json:"duration_ns"`
}

// Report collects the results of a run.
type Report struct {
	CPU      string   `json:"cpu"`
	Detected string   `json:"detected_backend"`
	Limit    ULP      `json:"limit_ulp"`
	Results  []Result `json:"results"`
}

// Failed returns the results that exceeded the limit.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

type inputs struct {
	x    []float64
	c, d []complex128
}

func newInputs(k Kernel, n int, seed uint64) inputs {
	h := fnv.New64a()
	h.Write([]byte(k.Name))
	r := rand.New(rand.NewPCG(seed, h.Sum64()))
	if k.IsComplex() {
		return inputs{c: complexSamples(r, n, k.Sample), d: complexSamples(r, n, k.Sample)}
	}
	return inputs{x: realSamples(r, n, k.Sample)}
}

// Run sweeps every kernel on every backend, the backends concurrently. The
// inputs of a kernel are the same on all backends. A sweep whose maximum
// error exceeds opts.MaxULP yields an apperrors.AccuracyError; the returned
// error joins all of them and the report is still returned. Cancelling ctx
// aborts the run with the context's error.
func Run(ctx context.Context, opts Options) (*Report, error) {
	pool := opts.Pool
	if pool == nil {
		pool = workerpool.New(0)
		defer pool.Close()
	}
	in := make([]inputs, len(opts.Kernels))
	for i, k := range opts.Kernels {
		in[i] = newInputs(k, opts.Samples, opts.Seed)
	}

	results := make([][]Result, len(opts.Backends))
	g, ctx := errgroup.WithContext(ctx)
	for i, b := range opts.Backends {
		g.Go(func() error {
			for j, k := range opts.Kernels {
				res, err := sweep(ctx, pool, b, k, in[j], opts)
				if err != nil {
					return apperrors.WrapError(err, "%s on %s", k.Name, b)
				}
				results[i] = append(results[i], res)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{CPU: cpu.Info(), Detected: hwy.CurrentBackend().Name(), Limit: ULP(opts.MaxULP)}
	var failures []error
	for _, rs := range results {
		for _, res := range rs {
			report.Results = append(report.Results, res)
			if !res.Passed {
				failures = append(failures, apperrors.AccuracyError{
					Function:    res.Function,
					Backend:     res.Backend,
					ObservedULP: float64(res.MaxULP),
					Limit:       opts.MaxULP,
				})
			}
		}
	}
	return report, errors.Join(failures...)
}

func sweep(ctx context.Context, pool *workerpool.Pool, b hwy.Backend, k Kernel, in inputs, opts Options) (Result, error) {
	start := time.Now()
	n := len(in.x)
	if k.IsComplex() {
		n = len(in.c)
	}
	errs := make([]float64, n)
	var (
		got   []float64
		got2  []complex128
		batch func(s, e int)
	)
	if k.IsComplex() {
		got2 = make([]complex128, n)
		want := make([]complex128, n)
		batch = func(s, e int) {
			k.EvalComplex(b, got2[s:e], in.c[s:e], in.d[s:e])
			k.RefComplex(want[s:e], in.c[s:e], in.d[s:e])
			for i := s; i < e; i++ {
				errs[i] = NormwiseError(got2[i], want[i])
			}
		}
	} else {
		got = make([]float64, n)
		batch = func(s, e int) {
			k.Eval(b, in.x[s:e], got[s:e])
			for i := s; i < e; i++ {
				errs[i] = ULPDistance(got[i], k.Ref(in.x[i]))
			}
		}
	}

	err := pool.ParallelForBatched(ctx, n, batchSize, func(s, e int) error {
		batch(s, e)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{Function: k.Name, Backend: b.Name(), Samples: n, Passed: true}
	if n > 0 {
		worst := floats.MaxIdx(errs)
		sorted := slices.Clone(errs)
		slices.Sort(sorted)
		res.MaxULP = ULP(errs[worst])
		res.MeanULP = ULP(stat.Mean(errs, nil))
		res.P99ULP = ULP(stat.Quantile(0.99, stat.Empirical, sorted, nil))
		res.Passed = errs[worst] <= opts.MaxULP
		if k.IsComplex() {
			res.Worst = fmt.Sprint(in.c[worst], " ", in.d[worst])
			res.NaNs = algo.CountIf(floatView(got2), hwy.IsNaN[float64])
		} else {
			res.Worst = strconv.FormatFloat(in.x[worst], 'g', -1, 64)
			res.NaNs = algo.CountIf(got, hwy.IsNaN[float64])
		}
	}
	res.Duration = time.Since(start)
	opts.Metrics.observe(res, errs, !res.Passed)

	if opts.Logger != nil {
		opts.Logger.Debug("sweep finished",
			logging.String("function", res.Function),
			logging.String("backend", res.Backend),
			logging.Float64("max_ulp", float64(res.MaxULP)),
			logging.Int("nans", res.NaNs),
			logging.Bool("passed", res.Passed))
	}
	return res, nil
}
