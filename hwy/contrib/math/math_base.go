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
	"unsafe"

	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/internal/ieee"
)

func is32[T hwy.Floats]() bool {
	return ieee.FormatOf[T]().Bits == 32
}

// coeffs returns the coefficient table matching the width of T. The tables
// are shared, never copied, and must not be modified.
func coeffs[T hwy.Floats](c32 []float32, c64 []float64) []T {
	if is32[T]() {
		return *(*[]T)(unsafe.Pointer(&c32))
	}
	return *(*[]T)(unsafe.Pointer(&c64))
}

func splat[T hwy.Floats](like hwy.Vec[T], c float64) hwy.Vec[T] {
	return hwy.SetLike(like, T(c))
}

// Pow2k returns 2^k for lanes holding integral values. Lanes above the
// largest finite exponent give +Inf, lanes below the smallest subnormal
// exponent give 0, and NaN lanes stay NaN. Non-integral k is truncated.
func Pow2k[T hwy.Floats](k hwy.Vec[T]) hwy.Vec[T] {
	if is32[T]() {
		return pow2k[T, int32](k)
	}
	return pow2k[T, int64](k)
}

func pow2k[T hwy.Floats, I int32 | int64](k hwy.Vec[T]) hwy.Vec[T] {
	f := ieee.FormatOf[T]()
	lo := splat(k, float64(f.MinExp()-f.MantBits-1))
	hi := splat(k, float64(f.MaxExp()+1))
	kc := hwy.Min(hwy.Max(k, lo), hi)
	r := Pow2kInt[T](hwy.ConvertToInt[I](kc))
	return hwy.IfThenElse(hwy.IsNaN(k), k, r)
}

// Pow2kInt returns 2^k as floats of the same width as the integer lanes,
// built directly in the exponent field. It saturates like Pow2k. Pow2kInt
// panics when F and I have different widths.
func Pow2kInt[F hwy.Floats, I int32 | int64](k hwy.Vec[I]) hwy.Vec[F] {
	f := ieee.FormatOf[F]()
	kf := hwy.ConvertToFloat[F](k)
	minExp, maxExp := I(f.MinExp()), I(f.MaxExp())

	// Subnormal powers are built 2^MantBits higher and scaled down exactly.
	sub := hwy.LessThan(k, hwy.SetLike(k, minExp))
	kn := hwy.IfThenElse(sub, hwy.Add(k, hwy.SetLike(k, I(f.MantBits))), k)
	kn = hwy.Min(hwy.Max(kn, hwy.SetLike(k, minExp)), hwy.SetLike(k, maxExp))
	bits := hwy.ShiftLeft(hwy.Add(kn, hwy.SetLike(k, I(f.Bias))), f.MantBits)
	v := hwy.BitCastToFloat[F](bits)

	v = hwy.IfThenElse(hwy.LessThan(kf, splat(kf, float64(f.MinExp()))),
		hwy.Mul(v, splat(kf, stdmath.Ldexp(1, -f.MantBits))), v)
	v = hwy.IfThenElse(hwy.GreaterThan(kf, splat(kf, float64(f.MaxExp()))),
		splat(kf, stdmath.Inf(1)), v)
	return hwy.IfThenZeroElse(hwy.LessThan(kf, splat(kf, float64(f.MinExp()-f.MantBits))), v)
}

// Exponent returns floor(log2 |x|) for finite nonzero lanes, subnormals
// included. Like logb it gives -Inf for ±0, +Inf for ±Inf and NaN for NaN.
func Exponent[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	if is32[T]() {
		return exponent[T, int32](x)
	}
	return exponent[T, int64](x)
}

func exponent[T hwy.Floats, I int32 | int64](x hwy.Vec[T]) hwy.Vec[T] {
	f := ieee.FormatOf[T]()
	scaled, adj := normalize(x)
	bits := hwy.BitCastToInt[I](scaled)
	e := hwy.ShiftRight(hwy.And(bits, hwy.SetLike(bits, I(f.ExpMask))), f.MantBits)
	e = hwy.Sub(e, hwy.SetLike(e, I(f.Bias)))
	r := hwy.Sub(hwy.ConvertToFloat[T](e), adj)

	ax := hwy.Abs(x)
	r = hwy.IfThenElse(hwy.Equal(ax, splat(x, 0)), splat(x, stdmath.Inf(-1)), r)
	r = hwy.IfThenElse(hwy.IsInf(x, 0), splat(x, stdmath.Inf(1)), r)
	return hwy.IfThenElse(hwy.IsNaN(x), x, r)
}

// Fraction returns x scaled by 2^-Exponent(x): the significand in [1, 2)
// with the sign of x. Zero, infinite and NaN lanes are returned unchanged.
func Fraction[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	if is32[T]() {
		return fraction[T, int32](x)
	}
	return fraction[T, int64](x)
}

func fraction[T hwy.Floats, I int32 | int64](x hwy.Vec[T]) hwy.Vec[T] {
	f := ieee.FormatOf[T]()
	scaled, _ := normalize(x)
	bits := hwy.BitCastToInt[I](scaled)
	one := hwy.SetLike(bits, I(uint64(f.Bias)<<uint(f.MantBits)))
	bits = hwy.Or(hwy.AndNot(hwy.SetLike(bits, I(f.ExpMask)), bits), one)
	r := hwy.BitCastToFloat[T](bits)

	special := hwy.MaskOr(hwy.Equal(x, splat(x, 0)), hwy.MaskNot(hwy.IsFinite(x)))
	return hwy.IfThenElse(special, x, r)
}

// normalize lifts subnormal lanes into the normal range by an exact power
// of two; adj holds the exponent that was added.
func normalize[T hwy.Floats](x hwy.Vec[T]) (scaled, adj hwy.Vec[T]) {
	f := ieee.FormatOf[T]()
	p := f.Precision()
	sub := hwy.LessThan(hwy.Abs(x), splat(x, stdmath.Ldexp(1, f.MinExp())))
	scaled = hwy.IfThenElse(sub, hwy.Mul(x, splat(x, stdmath.Ldexp(1, p))), x)
	adj = hwy.IfThenElseZero(sub, splat(x, float64(p)))
	return scaled, adj
}

// Copysign returns lanes with the magnitude of x and the sign of s.
func Copysign[T hwy.Floats](x, s hwy.Vec[T]) hwy.Vec[T] {
	sign := hwy.SetLike(x, ieee.FromBits[T](ieee.SignMaskOf[T]()))
	return hwy.Or(hwy.AndNot(sign, x), hwy.And(s, sign))
}
