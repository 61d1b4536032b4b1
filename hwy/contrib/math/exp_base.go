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
	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/hwy/contrib/poly"
)

// Exp computes e^x for each element in the vector.
//
// Algorithm (float64): split x = n*ln2 + m*ln2/256 + r with m in [-128, 128)
// and |r| <= ln2/512, look up t = 2^(m/256), evaluate e^r - 1 = r*P(r) and
// return MulAdd(r*P(r), t, t) * 2^n. The scaling by 2^n is done in two
// halves so that results near the overflow and underflow thresholds are
// rounded once.
//
// Algorithm (float32): x = n*ln2 + r with |r| <= ln2/2 and a degree 6
// polynomial, no table.
//
// Special cases:
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(NaN) = NaN
//   - Large arguments overflow to +Inf, small ones underflow gradually to 0
func Exp[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	var r hwy.Vec[T]
	if is32[T]() {
		r = expNoTable(x)
	} else {
		r = expTable(x)
	}
	return hwy.IfThenElse(hwy.IsNaN(x), x, r)
}

func expTable[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	xc := hwy.Min(hwy.Max(x, splat(x, -expLimit_f64)), splat(x, expLimit_f64))

	k := hwy.RoundToEven(hwy.Mul(xc, splat(x, expInvLn2Tick_f64)))
	r := hwy.NegMulAdd(k, splat(x, expLn2TickHi_f64), xc)
	r = hwy.NegMulAdd(k, splat(x, expLn2TickLo_f64), r)

	// k = 256*n + m, exactly.
	n := hwy.Floor(hwy.Mul(hwy.Add(k, splat(x, 128)), splat(x, 1.0/256)))
	m := hwy.NegMulAdd(n, splat(x, 256), k)
	t := lookup(hwy.Add(m, splat(x, 128)), expTable_f64[:])

	p := hwy.Mul(poly.Horner(r, coeffs[T](nil, expPoly_f64)), r)
	y := hwy.MulAdd(p, t, t)
	return scale2(y, n)
}

func expNoTable[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	xc := hwy.Min(hwy.Max(x, splat(x, float64(-expLimit_f32))), splat(x, float64(expLimit_f32)))

	n := hwy.RoundToEven(hwy.Mul(xc, hwy.SetLike(x, T(expInvLn2_f32))))
	r := hwy.NegMulAdd(n, hwy.SetLike(x, T(expLn2Hi_f32)), xc)
	r = hwy.NegMulAdd(n, hwy.SetLike(x, T(expLn2Lo_f32)), r)

	p := hwy.Mul(poly.Horner(r, coeffs[T](expPoly_f32, nil)), r)
	y := hwy.Add(p, splat(x, 1))
	return scale2(y, n)
}

// scale2 returns y*2^n as y*2^(n/2)*2^(n-n/2). Both factors are normal
// and only the final product can round.
func scale2[T hwy.Floats](y, n hwy.Vec[T]) hwy.Vec[T] {
	n1 := hwy.Floor(hwy.Mul(n, splat(n, 0.5)))
	n2 := hwy.Sub(n, n1)
	return hwy.Mul(hwy.Mul(y, Pow2k(n1)), Pow2k(n2))
}

// lookup gathers table[i] for every lane holding a valid index i.
func lookup[T hwy.Floats](idx hwy.Vec[T], table []float64) hwy.Vec[T] {
	return hwy.Map(idx, func(i T) T { return T(table[int(i)]) })
}
