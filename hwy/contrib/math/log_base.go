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

package math

import (
	stdmath "math"

	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/hwy/contrib/poly"
)

type logConsts struct {
	ln2Hi, ln2Lo, sqrt2 float64
}

var (
	logConsts_f64 = logConsts{logLn2Hi_f64, logLn2Lo_f64, logSqrt2_f64}
	logConsts_f32 = logConsts{float64(logLn2Hi_f32), float64(logLn2Lo_f32), float64(logSqrt2_f32)}
)

// Log computes ln(x) (natural logarithm) for each element in the vector.
//
// Algorithm: x = 2^e * m with m in [sqrt(2)/2, sqrt(2)), f = m - 1,
// s = f/(2+f) and log(1+f) = f - f^2/2 + s*(f^2/2 + R(s)), where R is a
// minimax polynomial in s^2 split into odd and even halves.
// The result is e*ln2Hi + (log(1+f) + e*ln2Lo) with ln2Hi exact in the
// product.
//
// Special cases:
//   - Log(x) = NaN if x < 0
//   - Log(±0) = -Inf
//   - Log(+Inf) = +Inf
//   - Log(NaN) = NaN
func Log[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	c := logConsts_f64
	if is32[T]() {
		c = logConsts_f32
	}
	odd := coeffs[T](logOdd_f32, logOdd_f64)
	even := coeffs[T](logEven_f32, logEven_f64)

	e := Exponent(x)
	m := Fraction(x)
	big := hwy.GreaterEqual(m, splat(x, c.sqrt2))
	m = hwy.IfThenElse(big, hwy.Mul(m, splat(x, 0.5)), m)
	e = hwy.IfThenElse(big, hwy.Add(e, splat(x, 1)), e)

	f := hwy.Sub(m, splat(x, 1))
	s := hwy.Div(f, hwy.Add(f, splat(x, 2)))
	z := hwy.Mul(s, s)
	w := hwy.Mul(z, z)
	r := hwy.Add(hwy.Mul(z, poly.Horner(w, odd)), hwy.Mul(w, poly.Horner(w, even)))
	hfsq := hwy.Mul(hwy.Mul(splat(x, 0.5), f), f)

	// e*ln2Hi - ((hfsq - (s*(hfsq+r) + e*ln2Lo)) - f)
	t := hwy.MulAdd(s, hwy.Add(hfsq, r), hwy.Mul(e, splat(x, c.ln2Lo)))
	t = hwy.Sub(hwy.Sub(hfsq, t), f)
	res := hwy.MulSub(e, splat(x, c.ln2Hi), t)

	zero := splat(x, 0)
	res = hwy.IfThenElse(hwy.IsInf(x, 1), x, res)
	res = hwy.IfThenElse(hwy.Equal(x, zero), splat(x, stdmath.Inf(-1)), res)
	res = hwy.IfThenElse(hwy.LessThan(x, zero), splat(x, stdmath.NaN()), res)
	return hwy.IfThenElse(hwy.IsNaN(x), x, res)
}
