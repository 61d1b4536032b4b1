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
	"github.com/ajroetker/go-simdmath/hwy/contrib/reduce"
)

// Sin computes sin(x) for each element in the vector.
//
// Algorithm: Payne-Hanek reduction x = k*π/2 + r to a twofold remainder,
// polynomial kernels for sin(r) and cos(r) that use the low part of r as a
// correction, and quadrant reconstruction from k.
//
// Special cases:
//   - Sin(±0) = ±0
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
func Sin[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	s, _ := SinCos(x)
	return s
}

// Cos computes cos(x) for each element in the vector.
//
// Special cases:
//   - Cos(±Inf) = NaN
//   - Cos(NaN) = NaN
func Cos[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	_, c := SinCos(x)
	return c
}

// SinCos computes both sin(x) and cos(x) for each element in the vector.
// The reduction and both kernels are shared, so this costs the same as Sin
// or Cos alone.
//
// Float32 lanes are widened to float64, evaluated there and rounded once.
func SinCos[T hwy.Floats](x hwy.Vec[T]) (sin, cos hwy.Vec[T]) {
	s, c := sinCos64(hwy.ConvertTo[float64](x))
	return hwy.ConvertTo[T](s), hwy.ConvertTo[T](c)
}

func sinCos64(x hwy.Vec[float64]) (sin, cos hwy.Vec[float64]) {
	k, r := reduce.PiOver2(x)
	s := sinKernel(r.Value, r.Error)
	c := cosKernel(r.Value, r.Error)
	if x.Backend().IsScalar() {
		sin, cos = quadrantLookup(k, s, c)
	} else {
		sin, cos = quadrantBits(k, s, c)
	}
	sin = hwy.IfThenElse(hwy.Equal(x, hwy.SetLike(x, 0.0)), x, sin)
	return sin, cos
}

// sinKernel returns sin(x+y) for |x| <= π/4 and |y| <= ulp(x)/2:
// x - ((z*(y/2 - v*S') - y) - v*S1) with z = x^2, v = x^3.
func sinKernel(x, y hwy.Vec[float64]) hwy.Vec[float64] {
	z := hwy.Mul(x, x)
	v := hwy.Mul(z, x)
	r := poly.Horner(z, sinPoly_f64[1:])
	a := hwy.NegMulAdd(v, r, hwy.Mul(y, hwy.SetLike(y, 0.5)))
	b := hwy.MulSub(z, a, y)
	b = hwy.NegMulAdd(v, hwy.SetLike(v, sinPoly_f64[0]), b)
	return hwy.Sub(x, b)
}

// cosKernel returns cos(x+y) for |x| <= π/4 and |y| <= ulp(x)/2:
// w + (((1-w) - z/2) + (z*r - x*y)) with w = 1 - z/2, so the leading term
// is exact.
func cosKernel(x, y hwy.Vec[float64]) hwy.Vec[float64] {
	one := hwy.SetLike(x, 1.0)
	z := hwy.Mul(x, x)
	r := hwy.Mul(z, poly.Horner(z, cosPoly_f64))
	hz := hwy.Mul(z, hwy.SetLike(z, 0.5))
	w := hwy.Sub(one, hz)
	tail := hwy.Add(hwy.Sub(hwy.Sub(one, w), hz), hwy.MulSub(z, r, hwy.Mul(x, y)))
	return hwy.Add(w, tail)
}

// oddQuadrant reports the lanes with k odd as a float64 mask.
func oddQuadrant(k hwy.Vec[int64]) hwy.Mask[float64] {
	one := hwy.SetLike(k, int64(1))
	odd := hwy.Equal(hwy.And(k, one), one)
	return hwy.MaskFromVec(hwy.BitCastToFloat[float64](hwy.VecFromMask(odd)))
}

// quadrantSign moves bit 1 of k into the sign bit, giving -0.0 or +0.0.
func quadrantSign(k hwy.Vec[int64]) hwy.Vec[float64] {
	return hwy.BitCastToFloat[float64](hwy.ShiftLeft(hwy.And(k, hwy.SetLike(k, int64(2))), 62))
}

// quadrantBits reconstructs sin and cos of k*π/2 + r with lane selects
// and sign flips:
//
//	sin: swap on odd k, negate when k&2
//	cos: swap on odd k, negate when (k+1)&2
func quadrantBits(k hwy.Vec[int64], s, c hwy.Vec[float64]) (sin, cos hwy.Vec[float64]) {
	odd := oddQuadrant(k)
	sin = hwy.IfThenElse(odd, c, s)
	cos = hwy.IfThenElse(odd, s, c)
	sin = hwy.Xor(sin, quadrantSign(k))
	cos = hwy.Xor(cos, quadrantSign(hwy.Add(k, hwy.SetLike(k, int64(1)))))
	return sin, cos
}

const signBit = 1 << 63

// quadrants holds the swap flag and the sign bits XORed into sin and cos,
// matching quadrantSign so NaN lanes come out with the same sign bit on
// every backend.
var quadrants = [4]struct {
	swap             bool
	sinSign, cosSign uint64
}{
	{false, 0, 0},
	{true, 0, signBit},
	{false, signBit, signBit},
	{true, signBit, 0},
}

// quadrantLookup is quadrantBits for one-lane vectors, where a table lookup
// is cheaper than building masks.
func quadrantLookup(k hwy.Vec[int64], s, c hwy.Vec[float64]) (sin, cos hwy.Vec[float64]) {
	ks, ss, cs := k.Data(), s.Data(), c.Data()
	so := make([]float64, len(ks))
	co := make([]float64, len(ks))
	for i, q := range ks {
		e := quadrants[q&3]
		sv, cv := ss[i], cs[i]
		if e.swap {
			sv, cv = cv, sv
		}
		so[i] = stdmath.Float64frombits(stdmath.Float64bits(sv) ^ e.sinSign)
		co[i] = stdmath.Float64frombits(stdmath.Float64bits(cv) ^ e.cosSign)
	}
	b := s.Backend()
	return hwy.FromSlice(b, so), hwy.FromSlice(b, co)
}
