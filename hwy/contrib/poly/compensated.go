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
	"github.com/ajroetker/go-simdmath/hwy/contrib/twofold"
	"github.com/ajroetker/go-simdmath/internal/ieee"
)

// CompensatedHorner evaluates the polynomial with the compensated Horner
// scheme of Langlois and Louvet. Every Horner step is replaced by the error
// free transforms twofold.MultVec and twofold.SumVec, and the rounding
// errors are themselves evaluated as a polynomial and returned as the error
// part of the result. The value part satisfies
//
//	|value - p(x)| / |p(x)| <= u + gamma(2n)^2 * cond(p, x)
//
// with n = len(c)-1 and gamma(k) = k*u/(1-k*u).
func CompensatedHorner[T hwy.Floats](x hwy.Vec[T], c []T) twofold.Vec[T] {
	r, _ := compHorner(x, c)
	return r
}

// compHorner also returns the evaluation of |π|+|σ| at |x| that the
// a posteriori bound needs.
func compHorner[T hwy.Floats](x hwy.Vec[T], c []T) (twofold.Vec[T], hwy.Vec[T]) {
	zero := hwy.SetLike(x, T(0))
	if len(c) == 0 {
		return twofold.NewVec(zero, zero), zero
	}
	ax := hwy.Abs(x)
	s := hwy.SetLike(x, c[len(c)-1])
	corr, bound := zero, zero
	for i := len(c) - 2; i >= 0; i-- {
		p := twofold.MultVec(s, x)
		sum := twofold.SumVec(p.Value, hwy.SetLike(x, c[i]))
		s = sum.Value
		lost := hwy.Add(p.Error, sum.Error)
		corr = hwy.MulAdd(corr, x, lost)
		bound = hwy.MulAdd(bound, ax, hwy.Add(hwy.Abs(p.Error), hwy.Abs(sum.Error)))
	}
	return twofold.SumVec(s, corr), bound
}

// CompensatedHornerTwofold is CompensatedHorner with coefficients given as
// twofold values; their error parts enter the correction polynomial.
func CompensatedHornerTwofold[T hwy.Floats](x hwy.Vec[T], c []twofold.Twofold[T]) twofold.Vec[T] {
	zero := hwy.SetLike(x, T(0))
	if len(c) == 0 {
		return twofold.NewVec(zero, zero)
	}
	last := c[len(c)-1]
	s := hwy.SetLike(x, last.Value)
	corr := hwy.SetLike(x, last.Error)
	for i := len(c) - 2; i >= 0; i-- {
		p := twofold.MultVec(s, x)
		sum := twofold.SumVec(p.Value, hwy.SetLike(x, c[i].Value))
		s = sum.Value
		lost := hwy.Add(hwy.Add(p.Error, sum.Error), hwy.SetLike(x, c[i].Error))
		corr = hwy.MulAdd(corr, x, lost)
	}
	return twofold.SumVec(s, corr)
}

// CompensatedHornerTwofoldArg evaluates a polynomial with twofold
// coefficients at a twofold argument. The product of the running value
// with the error part of x is folded into the correction term.
func CompensatedHornerTwofoldArg[T hwy.Floats](x twofold.Vec[T], c []twofold.Twofold[T]) twofold.Vec[T] {
	xh, xl := x.Value, x.Error
	zero := hwy.SetLike(xh, T(0))
	if len(c) == 0 {
		return twofold.NewVec(zero, zero)
	}
	last := c[len(c)-1]
	s := hwy.SetLike(xh, last.Value)
	corr := hwy.SetLike(xh, last.Error)
	for i := len(c) - 2; i >= 0; i-- {
		p := twofold.MultVec(s, xh)
		sum := twofold.SumVec(p.Value, hwy.SetLike(xh, c[i].Value))
		lost := hwy.Add(hwy.Add(p.Error, sum.Error), hwy.SetLike(xh, c[i].Error))
		lost = hwy.MulAdd(s, xl, lost)
		s = sum.Value
		corr = hwy.MulAdd(corr, xh, lost)
	}
	return twofold.SumVec(s, corr)
}

// CompensatedHornerAndError evaluates the polynomial with CompensatedHorner
// and rounds the result to a single float. It also returns an a posteriori
// bound with |value - p(x)| <= bound, and a mask of the lanes for which the
// value is proven to be faithfully rounded, that is one of the two floats
// enclosing p(x).
func CompensatedHornerAndError[T hwy.Floats](x hwy.Vec[T], c []T) (value, bound hwy.Vec[T], faithful hwy.Mask[T]) {
	r, errPoly := compHorner(x, c)
	value = r.Value

	n := max(len(c)-1, 1)
	u := ieee.UnitRoundoff[T]()
	gamma := gammaOf[T](2*n - 1)
	scale := T(1) - T(2*(n+1))*u
	alpha := hwy.Div(hwy.Mul(hwy.SetLike(x, gamma), errPoly), hwy.SetLike(x, scale))

	absValue := hwy.Abs(value)
	vu := hwy.SetLike(x, u)
	bound = hwy.Mul(hwy.Add(hwy.Mul(vu, absValue), alpha), hwy.SetLike(x, 1+2*u))
	faithful = hwy.LessThan(alpha, hwy.Mul(hwy.SetLike(x, u/2), absValue))
	return value, bound, faithful
}

// gammaOf returns k*u/(1-k*u).
func gammaOf[T hwy.Floats](k int) T {
	u := ieee.UnitRoundoff[T]()
	ku := T(k) * u
	return ku / (1 - ku)
}

// HornerScalar evaluates the polynomial at a single point.
func HornerScalar[T hwy.Floats](x T, c []T) T {
	return hwy.GetLane(Horner(hwy.SetFor(hwy.Scalar, x), c), 0)
}

// EstrinScalar evaluates the polynomial at a single point.
func EstrinScalar[T hwy.Floats](x T, c []T) T {
	return hwy.GetLane(Estrin(hwy.SetFor(hwy.Scalar, x), c), 0)
}

// HornerAndErrorScalar is the single point form of HornerAndError.
func HornerAndErrorScalar[T hwy.Floats](x T, c []T) (value, bound T) {
	v, b := HornerAndError(hwy.SetFor(hwy.Scalar, x), c)
	return hwy.GetLane(v, 0), hwy.GetLane(b, 0)
}

// HornerAprioriCondScalar is the single point form of HornerAprioriCond.
func HornerAprioriCondScalar[T hwy.Floats](x T, c []T) T {
	return hwy.GetLane(HornerAprioriCond(hwy.SetFor(hwy.Scalar, x), c), 0)
}

// HornerAposterioriCondScalar is the single point form of
// HornerAposterioriCond.
func HornerAposterioriCondScalar[T hwy.Floats](x T, c []T) T {
	return hwy.GetLane(HornerAposterioriCond(hwy.SetFor(hwy.Scalar, x), c), 0)
}

// CompensatedHornerScalar is the single point form of CompensatedHorner.
func CompensatedHornerScalar[T hwy.Floats](x T, c []T) twofold.Twofold[T] {
	return CompensatedHorner(hwy.SetFor(hwy.Scalar, x), c).Get(0)
}

// CompensatedHornerTwofoldScalar is the single point form of
// CompensatedHornerTwofold.
func CompensatedHornerTwofoldScalar[T hwy.Floats](x T, c []twofold.Twofold[T]) twofold.Twofold[T] {
	return CompensatedHornerTwofold(hwy.SetFor(hwy.Scalar, x), c).Get(0)
}

// CompensatedHornerTwofoldArgScalar is the single point form of
// CompensatedHornerTwofoldArg.
func CompensatedHornerTwofoldArgScalar[T hwy.Floats](x twofold.Twofold[T], c []twofold.Twofold[T]) twofold.Twofold[T] {
	xv := twofold.NewVec(hwy.SetFor(hwy.Scalar, x.Value), hwy.SetFor(hwy.Scalar, x.Error))
	return CompensatedHornerTwofoldArg(xv, c).Get(0)
}

// CompensatedHornerAndErrorScalar is the single point form of
// CompensatedHornerAndError.
func CompensatedHornerAndErrorScalar[T hwy.Floats](x T, c []T) (value, bound T, faithful bool) {
	v, b, f := CompensatedHornerAndError(hwy.SetFor(hwy.Scalar, x), c)
	return hwy.GetLane(v, 0), hwy.GetLane(b, 0), f.AllTrue()
}
