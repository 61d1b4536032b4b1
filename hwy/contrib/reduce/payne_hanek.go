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

package reduce

import (
	"math"

	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/hwy/contrib/twofold"
)

var piOver2 = twofold.New(PiOver2Hi, PiOver2Lo)

// PiOver2Scalar reduces x modulo π/2. It returns the quadrant k in [0, 3]
// and the remainder r with x = k·π/2 + r modulo 2π and |r| <= π/4.
//
// Arguments with |x| <= π/4 are returned as they are with k = 0. NaN and
// infinite arguments give k = 0 and a NaN remainder.
func PiOver2Scalar(x float64) (k int, r twofold.Twofold[float64]) {
	ax := math.Abs(x)
	if ax <= PiOver4 {
		return 0, twofold.FromFloat(x)
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		nan := math.NaN()
		return 0, twofold.New(nan, nan)
	}

	k, r = reducePositive(ax)
	if x < 0 {
		k = (4 - k) & 3
		r = twofold.Neg(r)
	}
	return k, r
}

// reducePositive reduces a finite ax > π/4.
func reducePositive(ax float64) (int, twofold.Twofold[float64]) {
	// ax = m·2^e with m an integer below 2^53.
	frac, exp := math.Frexp(ax)
	m := math.Ldexp(frac, 53)
	e := exp - 53

	// Bits of 2/π before position e-1 only add multiples of 4 to m·2^e·2/π.
	start := max(1, e-1)

	var quadrant int64
	var expansion []float64
	for t := range limbCount {
		pos := start + limbBits*t
		p := twofold.Mult(m, float64(limb(pos)))
		scale := e - pos - (limbBits - 1)
		for _, f := range [2]float64{math.Ldexp(p.Value, scale), math.Ldexp(p.Error, scale)} {
			n := math.RoundToEven(f)
			quadrant += int64(math.Mod(n, 4))
			expansion = grow(expansion, f-n)
		}
	}

	var approx float64
	for _, c := range expansion {
		approx += c
	}
	n := math.RoundToEven(approx)
	quadrant += int64(n)
	expansion = grow(expansion, -n)

	var sum twofold.Twofold[float64]
	for _, c := range expansion {
		sum = twofold.AddScalar(sum, c)
	}
	return int(quadrant & 3), twofold.Mul(sum, piOver2)
}

// grow adds b to the nonoverlapping expansion e, kept in increasing order
// of magnitude, without rounding error. Zero components are dropped.
func grow(e []float64, b float64) []float64 {
	out := e[:0]
	q := b
	for _, c := range e {
		s := twofold.Sum(q, c)
		q = s.Value
		if s.Error != 0 {
			out = append(out, s.Error)
		}
	}
	if q != 0 {
		out = append(out, q)
	}
	return out
}

// PiOver2 applies PiOver2Scalar to every lane. The quadrants are returned
// as int64 lanes of the same backend and lane count.
func PiOver2(x hwy.Vec[float64]) (hwy.Vec[int64], twofold.Vec[float64]) {
	xs := x.Data()
	ks := make([]int64, len(xs))
	hi := make([]float64, len(xs))
	lo := make([]float64, len(xs))
	for i, v := range xs {
		k, r := PiOver2Scalar(v)
		ks[i], hi[i], lo[i] = int64(k), r.Value, r.Error
	}
	b := x.Backend()
	return hwy.FromSlice(b, ks), twofold.NewVec(hwy.FromSlice(b, hi), hwy.FromSlice(b, lo))
}

// PiOver2F32 reduces float32 lanes through the float64 reduction and
// rounds the remainder to a float32 twofold value.
func PiOver2F32(x hwy.Vec[float32]) (hwy.Vec[int32], twofold.Vec[float32]) {
	xs := x.Data()
	ks := make([]int32, len(xs))
	hi := make([]float32, len(xs))
	lo := make([]float32, len(xs))
	for i, v := range xs {
		k, r := PiOver2Scalar(float64(v))
		h := float32(r.Value + r.Error)
		ks[i], hi[i], lo[i] = int32(k), h, float32((r.Value-float64(h))+r.Error)
	}
	b := x.Backend()
	return hwy.FromSlice(b, ks), twofold.NewVec(hwy.FromSlice(b, hi), hwy.FromSlice(b, lo))
}
