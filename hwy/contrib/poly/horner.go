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

package poly

import (
	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/internal/ieee"
)

// Horner evaluates the polynomial with Horner's scheme, one multiply-add
// per coefficient. An empty coefficient list evaluates to zero.
func Horner[T hwy.Floats](x hwy.Vec[T], c []T) hwy.Vec[T] {
	if len(c) == 0 {
		return hwy.SetLike(x, T(0))
	}
	r := hwy.SetLike(x, c[len(c)-1])
	for i := len(c) - 2; i >= 0; i-- {
		r = hwy.MulAdd(r, x, hwy.SetLike(x, c[i]))
	}
	return r
}

// Estrin evaluates the polynomial with Estrin's scheme: adjacent terms are
// paired into linear polynomials in x, then pairs of those are combined with
// x^2, x^4 and so on. The dependency chain is logarithmic in len(c), which
// pays off for long polynomials; the rounding errors are larger than with
// Horner.
func Estrin[T hwy.Floats](x hwy.Vec[T], c []T) hwy.Vec[T] {
	if len(c) == 0 {
		return hwy.SetLike(x, T(0))
	}
	terms := make([]hwy.Vec[T], (len(c)+1)/2)
	for i := range terms {
		if 2*i+1 < len(c) {
			terms[i] = hwy.MulAdd(hwy.SetLike(x, c[2*i+1]), x, hwy.SetLike(x, c[2*i]))
		} else {
			terms[i] = hwy.SetLike(x, c[2*i])
		}
	}
	xp := hwy.Mul(x, x)
	for len(terms) > 1 {
		next := make([]hwy.Vec[T], (len(terms)+1)/2)
		for i := range next {
			if 2*i+1 < len(terms) {
				next[i] = hwy.MulAdd(terms[2*i+1], xp, terms[2*i])
			} else {
				next[i] = terms[2*i]
			}
		}
		terms = next
		if len(terms) > 1 {
			xp = hwy.Mul(xp, xp)
		}
	}
	return terms[0]
}

// HornerAndError evaluates the polynomial with Horner's scheme and returns,
// alongside the value, a running error bound such that
// |value - p(x)| <= bound in every lane.
func HornerAndError[T hwy.Floats](x hwy.Vec[T], c []T) (value, bound hwy.Vec[T]) {
	if len(c) == 0 {
		zero := hwy.SetLike(x, T(0))
		return zero, zero
	}
	ax := hwy.Abs(x)
	r := hwy.SetLike(x, c[len(c)-1])
	mu := hwy.Mul(hwy.Abs(r), hwy.SetLike(x, T(0.5)))
	for i := len(c) - 2; i >= 0; i-- {
		r = hwy.MulAdd(r, x, hwy.SetLike(x, c[i]))
		mu = hwy.MulAdd(ax, mu, hwy.Abs(r))
	}
	u := hwy.SetLike(x, ieee.UnitRoundoff[T]())
	two := hwy.SetLike(x, T(2))
	bound = hwy.Mul(u, hwy.Sub(hwy.Mul(two, mu), hwy.Abs(r)))
	return r, bound
}

// HornerAprioriCond returns the condition number of evaluating the
// polynomial at x,
//
//	cond(p, x) = sum(|c[i]| * |x|^i) / |p(x)|,
//
// with the computed Horner value standing in for p(x). The relative error
// of Horner is bounded by about 2*len(c)*cond(p, x)*u.
func HornerAprioriCond[T hwy.Floats](x hwy.Vec[T], c []T) hwy.Vec[T] {
	return hwy.Div(absHorner(x, c), hwy.Abs(Horner(x, c)))
}

// HornerAposterioriCond returns a condition number derived from the running
// error bound of HornerAndError, such that
//
//	|value - p(x)| / |p(x)| <= cond * u.
//
// It accounts for the rounding errors that actually occurred and is usually
// much smaller than the a priori estimate. A negative result means the
// computed value is smaller than its own error bound and carries no correct
// digit.
func HornerAposterioriCond[T hwy.Floats](x hwy.Vec[T], c []T) hwy.Vec[T] {
	value, bound := HornerAndError(x, c)
	u := hwy.SetLike(x, ieee.UnitRoundoff[T]())
	return hwy.Div(bound, hwy.Mul(u, hwy.Sub(hwy.Abs(value), bound)))
}

// absHorner evaluates sum(|c[i]| * |x|^i).
func absHorner[T hwy.Floats](x hwy.Vec[T], c []T) hwy.Vec[T] {
	if len(c) == 0 {
		return hwy.SetLike(x, T(0))
	}
	ax := hwy.Abs(x)
	r := hwy.Abs(hwy.SetLike(x, c[len(c)-1]))
	for i := len(c) - 2; i >= 0; i-- {
		r = hwy.MulAdd(r, ax, hwy.Abs(hwy.SetLike(x, c[i])))
	}
	return r
}
