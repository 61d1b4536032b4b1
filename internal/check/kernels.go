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
	"math"
	"math/big"
	"math/rand/v2"
	"unsafe"

	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"

	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/hwy/contrib/algo"
	"github.com/ajroetker/go-simdmath/hwy/contrib/cplx"
	hwymath "github.com/ajroetker/go-simdmath/hwy/contrib/math"
)

// Kernel is one function under test. Real kernels set Eval and Ref, complex
// kernels set EvalComplex and RefComplex. Sample draws one real input, or
// one part of a complex input.
type Kernel struct {
	Name   string
	Sample func(r *rand.Rand) float64

	Eval func(b hwy.Backend, in, out []float64)
	Ref  func(x float64) float64

	EvalComplex func(b hwy.Backend, dst, x, y []complex128)
	RefComplex  func(dst, x, y []complex128)
}

// IsComplex reports whether k takes complex operands.
func (k Kernel) IsComplex() bool { return k.EvalComplex != nil }

func uniform(lo, hi float64) func(*rand.Rand) float64 {
	return func(r *rand.Rand) float64 { return lo + (hi-lo)*r.Float64() }
}

// logUniform draws a random sign times e^u with u uniform in [lo, hi).
func logUniform(lo, hi float64) func(*rand.Rand) float64 {
	u := uniform(lo, hi)
	return func(r *rand.Rand) float64 {
		return math.Copysign(math.Exp(u(r)), r.Float64()-0.5)
	}
}

func vectorized(fn func(hwy.Vec[float64]) hwy.Vec[float64]) func(hwy.Backend, []float64, []float64) {
	return func(b hwy.Backend, in, out []float64) { algo.ApplyFor(b, in, out, fn) }
}

// Kernels returns the built-in kernels keyed by their command line name.
func Kernels() map[string]Kernel {
	return map[string]Kernel{
		"exp": {Name: "exp", Sample: uniform(-700, 700), Eval: vectorized(hwymath.Exp[float64]), Ref: math.Exp},
		"log": {Name: "log", Sample: func(r *rand.Rand) float64 { return math.Exp(uniform(-690, 690)(r)) },
			Eval: vectorized(hwymath.Log[float64]), Ref: math.Log},
		"sin": {Name: "sin", Sample: uniform(-1e5, 1e5), Eval: vectorized(hwymath.Sin[float64]), Ref: math.Sin},
		"cos": {Name: "cos", Sample: uniform(-1e5, 1e5), Eval: vectorized(hwymath.Cos[float64]), Ref: math.Cos},
		"tan": {Name: "tan", Sample: uniform(-4, 4), Eval: vectorized(hwymath.Tan[float64]), Ref: math.Tan},
		"cot": {Name: "cot", Sample: uniform(-4, 4), Eval: vectorized(hwymath.Cot[float64]),
			Ref: func(x float64) float64 { return 1 / math.Tan(x) }},
		"cmul": {Name: "cmul", Sample: uniform(-100, 100),
			EvalComplex: func(b hwy.Backend, dst, x, y []complex128) { cplx.MulSlicesFor(nil, b, dst, x, y) },
			RefComplex:  c128.Mul},
		"cdiv": {Name: "cdiv", Sample: logUniform(-200, 200),
			EvalComplex: func(b hwy.Backend, dst, x, y []complex128) { cplx.DivSlicesFor(nil, b, dst, x, y) },
			RefComplex:  exactDiv},
	}
}

// Select returns the kernels with the given names in order. Unknown names are
// skipped.
func Select(names []string) []Kernel {
	all := Kernels()
	var out []Kernel
	for _, n := range names {
		if k, ok := all[n]; ok {
			out = append(out, k)
		}
	}
	return out
}

// exactDiv divides x by y with 256-bit intermediates and a single rounding
// per part, for finite nonzero divisors.
func exactDiv(dst, x, y []complex128) {
	const prec = 256
	f := func(v float64) *big.Float { return new(big.Float).SetPrec(prec).SetFloat64(v) }
	mul := func(a, b *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Mul(a, b) }
	n := min(len(dst), len(x), len(y))
	for i := range n {
		a, b := f(real(x[i])), f(imag(x[i]))
		c, d := f(real(y[i])), f(imag(y[i]))
		if c.Sign() == 0 && d.Sign() == 0 {
			dst[i] = x[i] / y[i]
			continue
		}
		den := new(big.Float).SetPrec(prec).Add(mul(c, c), mul(d, d))
		re := new(big.Float).SetPrec(prec).Add(mul(a, c), mul(b, d))
		im := new(big.Float).SetPrec(prec).Sub(mul(b, c), mul(a, d))
		r, _ := re.Quo(re, den).Float64()
		m, _ := im.Quo(im, den).Float64()
		dst[i] = complex(r, m)
	}
}

func realSamples(r *rand.Rand, n int, sample func(*rand.Rand) float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = sample(r)
	}
	return out
}

// complexSamples draws n complex values whose parts come from sample.
func complexSamples(r *rand.Rand, n int, sample func(*rand.Rand) float64) []complex128 {
	if n == 0 {
		return nil
	}
	re := realSamples(r, n, sample)
	im := realSamples(r, n, sample)
	parts := make([]float64, 2*n)
	f64.Interleave2(parts, re, im)
	return unsafe.Slice((*complex128)(unsafe.Pointer(unsafe.SliceData(parts))), n)
}

// floatView returns the interleaved parts of c.
func floatView(c []complex128) []float64 {
	if len(c) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(c))), 2*len(c))
}
