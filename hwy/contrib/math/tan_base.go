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
	"github.com/ajroetker/go-simdmath/hwy/contrib/reduce"
)

// Tan computes tan(x) for each element in the vector.
//
// Algorithm: the reduction of Sin, a rational kernel
// tan(r) = r + r*z*P(z)/Q(z) with z = r^2 plus a first order correction for
// the low part of r, and tan(k*π/2 + r) = -1/tan(r) on odd k.
//
// Special cases:
//   - Tan(±0) = ±0
//   - Tan(±Inf) = NaN
//   - Tan(NaN) = NaN
func Tan[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	t, _ := tanCot64(hwy.ConvertTo[float64](x))
	return hwy.ConvertTo[T](t)
}

// Cot computes cot(x) = 1/tan(x) for each element in the vector. Odd
// quadrants use -tan(r) directly instead of inverting twice.
//
// Special cases:
//   - Cot(±0) = ±Inf
//   - Cot(±Inf) = NaN
//   - Cot(NaN) = NaN
func Cot[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	_, c := tanCot64(hwy.ConvertTo[float64](x))
	return hwy.ConvertTo[T](c)
}

func tanCot64(x hwy.Vec[float64]) (tan, cot hwy.Vec[float64]) {
	k, r := reduce.PiOver2(x)
	hi, lo := r.Value, r.Error
	one := hwy.SetLike(x, 1.0)

	zz := hwy.Mul(hi, hi)
	q := hwy.Div(hwy.Mul(zz, poly.Horner(zz, tanP_f64)), poly.Horner(zz, tanQ_f64))
	y := hwy.MulAdd(hi, q, hi)
	// tan(hi+lo) = tan(hi) + lo*(1 + tan(hi)^2)
	y = hwy.MulAdd(lo, hwy.MulAdd(y, y, one), y)
	y = hwy.IfThenElse(hwy.Equal(x, hwy.SetLike(x, 0.0)), x, y)

	odd := oddQuadrant(k)
	inv := hwy.Div(one, y)
	tan = hwy.IfThenElse(odd, hwy.Neg(inv), y)
	cot = hwy.IfThenElse(odd, hwy.Neg(y), inv)
	return tan, cot
}
