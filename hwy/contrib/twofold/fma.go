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

package twofold

import (
	"math"

	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/internal/ieee"
)

// FMADekker returns x*y+z rounded once without using a fused multiply-add.
//
// The product is split exactly with MultDekker and its high part is added
// to z with Sum, leaving x*y+z as the exact sum of three floats. The two
// error terms are added first, rounded to odd, and the result is obtained
// with one final rounded addition. float32 arguments are evaluated in
// float64 arithmetic instead.
//
// When x*y overflows but x*y+z may still be finite, one operand and z are
// scaled down by 4 before the evaluation and the result scaled back, so
// the whole finite range of x*y+z is covered. If the splitting
// manufactures a NaN that the plain expression x*y+z does not produce,
// the plain expression is returned.
func FMADekker[T hwy.Floats](x, y, z T) T {
	if is32[T]() {
		return T(ieee.FMA32(float32(x), float32(y), float32(z)))
	}
	if p := float64(x * y); math.IsInf(p, 0) && isFinite(x) && isFinite(y) && isFinite(z) {
		return fmaDekkerScaled(x, y, z)
	}
	return fmaDekker(x, y, z)
}

func fmaDekker[T hwy.Floats](x, y, z T) T {
	p := MultDekker(x, y)
	s := Sum(z, p.Value)
	res := s.Value + addOdd(s.Error, p.Error)
	if res != res {
		if plain := T(x*y) + z; plain == plain {
			return plain
		}
		return res
	}
	if res == 0 {
		// The exact sum is zero; the plain expression gets the sign right.
		return T(x*y) + z
	}
	return res
}

// fmaDekkerScaled evaluates x*y+z as 4*((x/4)*y + z/4). A finite result
// has magnitude at least 2^970 here, so the scaled sum stays normal and
// rounds the same way. Only the larger of x and y is scaled, which is
// exact since an overflowing product needs it above 2^511. A z that
// vanishes under the scaling keeps its sign as a sticky bit.
func fmaDekkerScaled[T hwy.Floats](x, y, z T) T {
	if abs(x) < abs(y) {
		x, y = y, x
	}
	zs := z * 0.25
	if zs == 0 && z != 0 {
		zs = T(math.Copysign(math.SmallestNonzeroFloat64, float64(z)))
	}
	return fmaDekker(x*0.25, y, zs) * 4
}

func isFinite[T hwy.Floats](x T) bool {
	return !math.IsInf(float64(x), 0) && x == x
}

// addOdd returns a+b rounded to odd: an inexact sum is moved to the
// neighbouring float with an odd significand.
func addOdd[T hwy.Floats](a, b T) T {
	s := Sum(a, b)
	if s.Error == 0 || math.IsInf(float64(s.Value), 0) {
		return s.Value
	}
	bits := ieee.ToBits(s.Value)
	if bits&1 == 0 {
		if (s.Error > 0) == (s.Value > 0) {
			bits++
		} else {
			bits--
		}
	}
	return ieee.FromBits[T](bits)
}

// fmaHW is the correctly rounded fused multiply-add of the Go runtime.
func fmaHW[T hwy.Floats](x, y, z T) T {
	if is32[T]() {
		return T(ieee.FMA32(float32(x), float32(y), float32(z)))
	}
	return T(math.FMA(float64(x), float64(y), float64(z)))
}

func fmaFor[T hwy.Floats](fused bool, x, y, z T) T {
	if fused {
		return fmaHW(x, y, z)
	}
	return FMADekker(x, y, z)
}

// FMA returns x*y+z rounded once. It uses a fused multiply-add when the
// current backend has one and FMADekker otherwise.
func FMA[T hwy.Floats](x, y, z T) T {
	return fmaFor(hwy.HasFMA(), x, y, z)
}

// FMS returns x*y-z rounded once.
func FMS[T hwy.Floats](x, y, z T) T {
	return fmaFor(hwy.HasFMA(), x, y, -z)
}

// FNMA returns -x*y+z rounded once.
func FNMA[T hwy.Floats](x, y, z T) T {
	return fmaFor(hwy.HasFMA(), -x, y, z)
}

// FNMS returns -x*y-z rounded once.
func FNMS[T hwy.Floats](x, y, z T) T {
	return fmaFor(hwy.HasFMA(), -x, y, -z)
}
