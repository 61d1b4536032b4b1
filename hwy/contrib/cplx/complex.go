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

package cplx

import (
	"math"

	"github.com/ajroetker/go-simdmath/hwy"
)

// Complex is a complex number with parts of type T. Its memory layout is
// the (re, im) pair, which is also the layout of a Vec lane.
type Complex[T hwy.Floats] struct {
	re, im T
}

// New returns re + im·i.
func New[T hwy.Floats](re, im T) Complex[T] {
	return Complex[T]{re: re, im: im}
}

// FromReal returns re + 0i.
func FromReal[T hwy.Floats](re T) Complex[T] {
	return Complex[T]{re: re}
}

// FromComplex128 converts a builtin complex value, rounding each part to T.
func FromComplex128[T hwy.Floats](c complex128) Complex[T] {
	return Complex[T]{re: T(real(c)), im: T(imag(c))}
}

// Real returns the real part.
func (c Complex[T]) Real() T { return c.re }

// Imag returns the imaginary part.
func (c Complex[T]) Imag() T { return c.im }

// Complex128 converts c to the builtin complex type.
func (c Complex[T]) Complex128() complex128 {
	return complex(float64(c.re), float64(c.im))
}

// IsNaN reports whether either part is NaN.
func (c Complex[T]) IsNaN() bool {
	return c.re != c.re || c.im != c.im
}

// box maps infinities to ±1 and everything else to a signed zero.
func box(x float64) float64 {
	if math.IsInf(x, 0) {
		return math.Copysign(1, x)
	}
	return math.Copysign(0, x)
}

// unNaN replaces a NaN by a zero of the same sign.
func unNaN(x float64) float64 {
	if math.IsNaN(x) {
		return math.Copysign(0, x)
	}
	return x
}

// MulScalar multiplies two complex numbers with the naive formula and, if
// both parts of the product are NaN, recovers the infinite result
// following C99 Annex G.
func MulScalar[T hwy.Floats](x, y Complex[T]) Complex[T] {
	re := T(x.re*y.re) - T(x.im*y.im)
	im := T(x.re*y.im) + T(x.im*y.re)
	return recoverMul(x, y, Complex[T]{re: re, im: im})
}

// recoverMul returns r, the product of x and y computed by any method,
// unless both of its parts are NaN.
func recoverMul[T hwy.Floats](x, y, r Complex[T]) Complex[T] {
	if r.re == r.re || r.im == r.im {
		return r
	}
	a, b := float64(x.re), float64(x.im)
	c, d := float64(y.re), float64(y.im)
	ac, bd := T(a*c), T(b*d)
	ad, bc := T(a*d), T(b*c)

	recalc := false
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		a, b = box(a), box(b)
		c, d = unNaN(c), unNaN(d)
		recalc = true
	}
	if math.IsInf(c, 0) || math.IsInf(d, 0) {
		c, d = box(c), box(d)
		a, b = unNaN(a), unNaN(b)
		recalc = true
	}
	if !recalc && (isInf(ac) || isInf(bd) || isInf(ad) || isInf(bc)) {
		// Overflow of a partial product: the result is an infinity.
		a, b = unNaN(a), unNaN(b)
		c, d = unNaN(c), unNaN(d)
		recalc = true
	}
	if !recalc {
		return r
	}
	inf := math.Inf(1)
	return Complex[T]{
		re: T(inf * (a*c - b*d)),
		im: T(inf * (a*d + b*c)),
	}
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func isInf[T hwy.Floats](x T) bool {
	return math.IsInf(float64(x), 0)
}

// DivScalar divides x by y following C99 Annex G: the divisor is scaled by
// a power of two to avoid spurious overflow and underflow, and a (NaN, NaN)
// quotient is recovered to the signed infinity or zero it stands for. The
// quotient is computed in float64 and rounded to T.
func DivScalar[T hwy.Floats](x, y Complex[T]) Complex[T] {
	re, im := div(float64(x.re), float64(x.im), float64(y.re), float64(y.im))
	return Complex[T]{re: T(re), im: T(im)}
}

// scaleDivisor scales c and d by the power of two that brings the larger
// of them into [1, 2). It returns the unbiased exponent of that part and the
// shift applied, which is zero for zero, infinite or NaN divisors.
func scaleDivisor(c, d float64) (cs, ds, logbw float64, shift int) {
	logbw = math.Logb(math.Max(math.Abs(c), math.Abs(d)))
	if !finite(logbw) {
		return c, d, logbw, 0
	}
	shift = int(logbw)
	return math.Ldexp(c, -shift), math.Ldexp(d, -shift), logbw, shift
}

func div(a, b, c, d float64) (re, im float64) {
	c, d, logbw, ilogbw := scaleDivisor(c, d)
	denom := c*c + d*d
	re = math.Ldexp((a*c+b*d)/denom, -ilogbw)
	im = math.Ldexp((b*c-a*d)/denom, -ilogbw)
	if !math.IsNaN(re) || !math.IsNaN(im) {
		return re, im
	}

	inf := math.Inf(1)
	switch {
	case denom == 0 && (!math.IsNaN(a) || !math.IsNaN(b)):
		re = math.Copysign(inf, c) * a
		im = math.Copysign(inf, c) * b
	case (math.IsInf(a, 0) || math.IsInf(b, 0)) && finite(c) && finite(d):
		a, b = box(a), box(b)
		re = inf * (a*c + b*d)
		im = inf * (b*c - a*d)
	case math.IsInf(logbw, 1) && finite(a) && finite(b):
		c, d = box(c), box(d)
		re = 0 * (a*c + b*d)
		im = 0 * (b*c - a*d)
	}
	return re, im
}

// RealDivScalar divides the real number x by y. It is DivScalar with an
// exactly zero imaginary dividend, so no 0·Inf products of that part can
// turn the quotient into NaN. Unlike a complex dividend a real one leaves no
// ambiguity in a single NaN part, so recovery is attempted whenever either
// part is NaN and the inputs are not.
func RealDivScalar[T hwy.Floats](x T, y Complex[T]) Complex[T] {
	a := float64(x)
	c, d, logbw, ilogbw := scaleDivisor(float64(y.re), float64(y.im))
	denom := c*c + d*d
	re := math.Ldexp(a*c/denom, -ilogbw)
	im := math.Ldexp(-a*d/denom, -ilogbw)
	if math.IsNaN(re) || math.IsNaN(im) {
		inf := math.Inf(1)
		switch {
		case denom == 0 && !math.IsNaN(a):
			re = math.Copysign(inf, c) * a
		case math.IsInf(a, 0) && finite(c) && finite(d):
			a = box(a)
			re, im = inf*(a*c), inf*(-a*d)
		case math.IsInf(logbw, 1) && finite(a):
			c, d = box(c), box(d)
			re, im = 0*(a*c), 0*(-a*d)
		}
	}
	return Complex[T]{re: T(re), im: T(im)}
}
