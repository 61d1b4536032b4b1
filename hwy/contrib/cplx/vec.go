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
	"github.com/ajroetker/go-simdmath/internal/ieee"
)

// Vec is an immutable vector of complex lanes stored as interleaved
// (re, im) pairs.
type Vec[T hwy.Floats] struct {
	v hwy.Vec[T]
}

// LanesFor returns the number of complex lanes of a vector of backend b.
func LanesFor[T hwy.Floats](b hwy.Backend) int {
	return max(1, hwy.LanesFor[T](b)/2)
}

func newVec[T hwy.Floats](b hwy.Backend, data []T) Vec[T] {
	return Vec[T]{v: hwy.FromSlice(b, data)}
}

// Load loads complex lanes for the current backend. Missing lanes are zero.
func Load[T hwy.Floats](src []Complex[T]) Vec[T] {
	return LoadFor(hwy.CurrentBackend(), src)
}

// LoadFor loads the first LanesFor(b) complex lanes of src. Missing lanes
// are zero.
func LoadFor[T hwy.Floats](b hwy.Backend, src []Complex[T]) Vec[T] {
	data := make([]T, 2*LanesFor[T](b))
	for i := 0; i < len(data)/2 && i < len(src); i++ {
		data[2*i], data[2*i+1] = src[i].re, src[i].im
	}
	return newVec(b, data)
}

// LoadInterleavedFor loads complex lanes from src laid out as
// [re0, im0, re1, im1, ...]. Missing parts are zero.
func LoadInterleavedFor[T hwy.Floats](b hwy.Backend, src []T) Vec[T] {
	data := make([]T, 2*LanesFor[T](b))
	copy(data, src)
	return newVec(b, data)
}

// FromInterleaved wraps a real vector holding (re, im) pairs as a complex
// vector. An odd trailing lane is dropped.
func FromInterleaved[T hwy.Floats](v hwy.Vec[T]) Vec[T] {
	data := v.Data()
	return newVec(v.Backend(), data[:len(data)&^1])
}

// Set returns a vector of the current backend with every lane set to c.
func Set[T hwy.Floats](c Complex[T]) Vec[T] {
	return SetFor(hwy.CurrentBackend(), c)
}

// SetFor returns a vector of backend b with every lane set to c.
func SetFor[T hwy.Floats](b hwy.Backend, c Complex[T]) Vec[T] {
	data := make([]T, 2*LanesFor[T](b))
	for i := 0; i < len(data); i += 2 {
		data[i], data[i+1] = c.re, c.im
	}
	return newVec(b, data)
}

// Zero returns the zero vector of the current backend.
func Zero[T hwy.Floats]() Vec[T] {
	return ZeroFor[T](hwy.CurrentBackend())
}

// ZeroFor returns the zero vector of backend b.
func ZeroFor[T hwy.Floats](b hwy.Backend) Vec[T] {
	return newVec(b, make([]T, 2*LanesFor[T](b)))
}

// FromParts interleaves a real and an imaginary vector into complex lanes,
// one per lane of re.
func FromParts[T hwy.Floats](re, im hwy.Vec[T]) Vec[T] {
	n := min(re.NumLanes(), im.NumLanes())
	data := make([]T, 2*n)
	hwy.StoreInterleaved2(re, im, data)
	return newVec(re.Backend(), data)
}

// FromRealVec returns the complex lanes re + 0i, one per lane of re.
func FromRealVec[T hwy.Floats](re hwy.Vec[T]) Vec[T] {
	return FromParts(re, hwy.SetLike(re, T(0)))
}

// Store writes the complex lanes of v to dst.
func Store[T hwy.Floats](v Vec[T], dst []Complex[T]) {
	for i := 0; i < v.NumLanes() && i < len(dst); i++ {
		dst[i] = v.Get(i)
	}
}

// StoreInterleaved writes v to dst as [re0, im0, re1, im1, ...]. Only
// complete pairs that fit in dst are written.
func StoreInterleaved[T hwy.Floats](v Vec[T], dst []T) {
	hwy.Store(v.v, dst[:min(len(dst)&^1, v.v.NumLanes())])
}

// NumLanes returns the number of complex lanes.
func (v Vec[T]) NumLanes() int {
	return v.v.NumLanes() / 2
}

// Backend returns the backend v was created for.
func (v Vec[T]) Backend() hwy.Backend {
	return v.v.Backend()
}

// Interleaved returns the underlying real vector of (re, im) pairs.
func (v Vec[T]) Interleaved() hwy.Vec[T] {
	return v.v
}

// Get returns complex lane i. Out of range lanes are zero.
func (v Vec[T]) Get(i int) Complex[T] {
	if i < 0 || i >= v.NumLanes() {
		return Complex[T]{}
	}
	return Complex[T]{re: hwy.GetLane(v.v, 2*i), im: hwy.GetLane(v.v, 2*i+1)}
}

// Real returns the real parts, one lane per complex lane.
func (v Vec[T]) Real() hwy.Vec[T] {
	return v.part(0)
}

// Imag returns the imaginary parts, one lane per complex lane.
func (v Vec[T]) Imag() hwy.Vec[T] {
	return v.part(1)
}

func (v Vec[T]) part(off int) hwy.Vec[T] {
	data := v.v.Data()
	out := make([]T, len(data)/2)
	for i := range out {
		out[i] = data[2*i+off]
	}
	return hwy.FromSlice(v.Backend(), out)
}

// signs returns a vector shaped like v with -0 in even (real) lanes when
// even is set, or in odd (imaginary) lanes otherwise, and +0 elsewhere.
// Xor with it flips the sign of one part of every complex lane.
func signs[T hwy.Floats](v hwy.Vec[T], even bool) hwy.Vec[T] {
	zero := hwy.SetLike(v, T(0))
	neg := hwy.SetLike(v, T(math.Copysign(0, -1)))
	if even {
		return hwy.OddEven(zero, neg)
	}
	return hwy.OddEven(neg, zero)
}

// pairs widens a per-part mask so that both parts of a complex lane are set
// when either is.
func pairs[T hwy.Floats](m hwy.Mask[T]) hwy.Mask[T] {
	return hwy.MaskOr(m, hwy.MaskFromVec(hwy.SwapAdjacent(m.AsVec())))
}

// Add returns x + y.
func Add[T hwy.Floats](x, y Vec[T]) Vec[T] {
	return Vec[T]{v: hwy.Add(x.v, y.v)}
}

// Sub returns x - y.
func Sub[T hwy.Floats](x, y Vec[T]) Vec[T] {
	return Vec[T]{v: hwy.Sub(x.v, y.v)}
}

// Neg returns -x.
func Neg[T hwy.Floats](x Vec[T]) Vec[T] {
	return Vec[T]{v: hwy.Neg(x.v)}
}

// Conj returns the complex conjugate of every lane.
func Conj[T hwy.Floats](x Vec[T]) Vec[T] {
	return Vec[T]{v: hwy.Xor(x.v, signs(x.v, false))}
}

// Reverse reverses the order of the complex lanes.
func Reverse[T hwy.Floats](x Vec[T]) Vec[T] {
	return Vec[T]{v: hwy.Reverse2(x.v)}
}

// ReduceSum returns the sum of all complex lanes.
func ReduceSum[T hwy.Floats](x Vec[T]) Complex[T] {
	return Complex[T]{re: hwy.ReduceSum(x.Real()), im: hwy.ReduceSum(x.Imag())}
}

// AnyNaN reports whether any part of any lane is NaN.
func AnyNaN[T hwy.Floats](x Vec[T]) bool {
	return hwy.AnyNaN(x.v)
}

// IsNaN returns a per-part mask that is set for both parts of every complex
// lane with a NaN part.
func IsNaN[T hwy.Floats](x Vec[T]) hwy.Mask[T] {
	return pairs(hwy.IsNaN(x.v))
}

// MulAdd returns x·y + z with the recovery of Mul.
func MulAdd[T hwy.Floats](x, y, z Vec[T]) Vec[T] {
	return Add(Mul(x, y), z)
}

// Mul returns x·y.
//
// The fast path computes re(x)·y ∓ im(x)·swap(y), fused on FMA backends.
// Lanes whose product has a NaN part are recomputed with the Annex G
// recovery of MulScalar; all other lanes keep the fast result.
func Mul[T hwy.Floats](x, y Vec[T]) Vec[T] {
	xr := hwy.DupEven(x.v)
	q := hwy.Mul(hwy.DupOdd(x.v), hwy.SwapAdjacent(y.v))
	var r hwy.Vec[T]
	if x.Backend().HasFMA() {
		r = hwy.MulAdd(xr, y.v, hwy.Xor(q, signs(q, true)))
	} else {
		r = hwy.SubAdd(hwy.Mul(xr, y.v), q)
	}
	nan := hwy.IsNaN(r)
	if !nan.AnyTrue() {
		return Vec[T]{v: r}
	}
	xs, ys := x.v.Data(), y.v.Data()
	return patch(r, nan, func(i int, fast Complex[T]) Complex[T] {
		return recoverMul(pairAt(xs, i), pairAt(ys, i), fast)
	})
}

// MulReal returns x·r, where r holds one real lane per complex lane.
func MulReal[T hwy.Floats](x Vec[T], r hwy.Vec[T]) Vec[T] {
	return Vec[T]{v: hwy.Mul(x.v, dup(r, x.v.NumLanes()))}
}

// MulRealLeft returns r·x, where r holds one real lane per complex lane.
func MulRealLeft[T hwy.Floats](r hwy.Vec[T], x Vec[T]) Vec[T] {
	return Vec[T]{v: hwy.Mul(dup(r, x.v.NumLanes()), x.v)}
}

// DivReal returns x/r, where r holds one real lane per complex lane. Both
// parts are divided independently, so IEEE semantics need no recovery.
func DivReal[T hwy.Floats](x Vec[T], r hwy.Vec[T]) Vec[T] {
	return Vec[T]{v: hwy.Div(x.v, dup(r, x.v.NumLanes()))}
}

// dup repeats every lane of r twice to match n interleaved lanes.
func dup[T hwy.Floats](r hwy.Vec[T], n int) hwy.Vec[T] {
	src := r.Data()
	data := make([]T, n)
	for i := range data {
		if i/2 < len(src) {
			data[i] = src[i/2]
		}
	}
	return hwy.FromSlice(r.Backend(), data)
}

// Limits of the naive quotient formula: squares of parts outside
// (divMin, divMax) may overflow, or underflow into less than full
// precision.
var (
	divMin_f64 = 1.42e-146 // > sqrt(MinNormal/eps*2)
	divMax_f64 = 9.48e153  // < sqrt(MaxFloat/2)
	divMin_f32 = 4.45e-16
	divMax_f32 = 1.30e19
)

// unsafeParts returns a per-part mask of the parts of v whose magnitude is
// not strictly inside the safe range of the naive quotient. Zeros,
// infinities and NaNs are all unsafe.
func unsafeParts[T hwy.Floats](v hwy.Vec[T]) hwy.Mask[T] {
	lo, hi := divMin_f64, divMax_f64
	if ieee.FormatOf[T]().Bits == 32 {
		lo, hi = divMin_f32, divMax_f32
	}
	a := hwy.Abs(v)
	safe := hwy.MaskAnd(
		hwy.GreaterThan(a, hwy.SetLike(v, T(lo))),
		hwy.LessThan(a, hwy.SetLike(v, T(hi))))
	return hwy.MaskNot(safe)
}

// Div returns x/y.
//
// The fast path computes (x·conj(y))/|y|². Lanes with a part of x or y
// outside the safe range, and lanes whose quotient has a NaN part, are
// recomputed with DivScalar.
func Div[T hwy.Floats](x, y Vec[T]) Vec[T] {
	p := hwy.Mul(hwy.DupEven(x.v), y.v)
	xi, sy := hwy.DupOdd(x.v), hwy.SwapAdjacent(y.v)
	var n hwy.Vec[T]
	if x.Backend().HasFMA() {
		n = hwy.MulAdd(xi, sy, hwy.Xor(p, signs(p, false)))
	} else {
		n = hwy.SubAdd(hwy.Mul(xi, sy), hwy.Neg(p))
	}
	yy := hwy.Mul(y.v, y.v)
	r := hwy.Div(n, hwy.Add(yy, hwy.SwapAdjacent(yy)))

	bad := hwy.MaskOr(hwy.MaskOr(unsafeParts(x.v), unsafeParts(y.v)), hwy.IsNaN(r))
	if !bad.AnyTrue() {
		return Vec[T]{v: r}
	}
	xs, ys := x.v.Data(), y.v.Data()
	return patch(r, bad, func(i int, _ Complex[T]) Complex[T] {
		return DivScalar(pairAt(xs, i), pairAt(ys, i))
	})
}

// RealDiv returns r/y, where r holds one real lane per complex lane.
func RealDiv[T hwy.Floats](r hwy.Vec[T], y Vec[T]) Vec[T] {
	rr := dup(r, y.v.NumLanes())
	yy := hwy.Mul(y.v, y.v)
	n := hwy.Xor(hwy.Mul(rr, y.v), signs(rr, false))
	q := hwy.Div(n, hwy.Add(yy, hwy.SwapAdjacent(yy)))

	bad := hwy.MaskOr(hwy.MaskOr(unsafeParts(rr), unsafeParts(y.v)), hwy.IsNaN(q))
	if !bad.AnyTrue() {
		return Vec[T]{v: q}
	}
	rs, ys := rr.Data(), y.v.Data()
	return patch(q, bad, func(i int, _ Complex[T]) Complex[T] {
		return RealDivScalar(rs[2*i], pairAt(ys, i))
	})
}

func pairAt[T hwy.Floats](data []T, i int) Complex[T] {
	return Complex[T]{re: data[2*i], im: data[2*i+1]}
}

// patch recomputes with fn the complex lanes of r for which either part of
// mask is set.
func patch[T hwy.Floats](r hwy.Vec[T], mask hwy.Mask[T], fn func(i int, fast Complex[T]) Complex[T]) Vec[T] {
	data := r.Data()
	mask = pairs(mask)
	for i := 0; 2*i+1 < len(data); i++ {
		if mask.GetBit(2 * i) {
			c := fn(i, pairAt(data, i))
			data[2*i], data[2*i+1] = c.re, c.im
		}
	}
	return newVec(r.Backend(), data)
}
