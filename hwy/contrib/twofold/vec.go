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

// Vec is a vector of twofold values stored as two hwy vectors of the same
// backend and lane count.
type Vec[T hwy.Floats] struct {
	Value hwy.Vec[T]
	Error hwy.Vec[T]
}

// NewVec pairs value and err lane by lane.
func NewVec[T hwy.Floats](value, err hwy.Vec[T]) Vec[T] {
	return Vec[T]{Value: value, Error: err}
}

// FromVec returns x with zero error lanes.
func FromVec[T hwy.Floats](x hwy.Vec[T]) Vec[T] {
	return Vec[T]{Value: x, Error: hwy.SetLike(x, T(0))}
}

// NumLanes returns the lane count.
func (v Vec[T]) NumLanes() int { return v.Value.NumLanes() }

// Backend returns the backend of the value lanes.
func (v Vec[T]) Backend() hwy.Backend { return v.Value.Backend() }

// Float rounds every lane pair to a single float.
func (v Vec[T]) Float() hwy.Vec[T] { return hwy.Add(v.Value, v.Error) }

// Get returns lane i as a scalar twofold value.
func (v Vec[T]) Get(i int) Twofold[T] {
	return Twofold[T]{Value: hwy.GetLane(v.Value, i), Error: hwy.GetLane(v.Error, i)}
}

// SumVec is the lane-wise form of Sum.
func SumVec[T hwy.Floats](a, b hwy.Vec[T]) Vec[T] {
	s := hwy.Add(a, b)
	bb := hwy.Sub(s, a)
	err := hwy.Add(hwy.Sub(a, hwy.Sub(s, bb)), hwy.Sub(b, bb))
	return Vec[T]{Value: s, Error: err}
}

// FastSumVec is the lane-wise form of FastSum.
func FastSumVec[T hwy.Floats](a, b hwy.Vec[T]) Vec[T] {
	s := hwy.Add(a, b)
	return Vec[T]{Value: s, Error: hwy.Sub(b, hwy.Sub(s, a))}
}

// MultVec is the lane-wise form of Mult. The backend of a selects the
// algorithm: a fused multiply-add when it has FMA, MultDekkerVec otherwise.
func MultVec[T hwy.Floats](a, b hwy.Vec[T]) Vec[T] {
	if a.Backend().HasFMA() {
		value := hwy.Mul(a, b)
		return Vec[T]{Value: value, Error: hwy.FMA(a, b, hwy.Neg(value))}
	}
	return MultDekkerVec(a, b)
}

// MultDekkerVec is the lane-wise form of MultDekker.
func MultDekkerVec[T hwy.Floats](a, b hwy.Vec[T]) Vec[T] {
	value := hwy.Mul(a, b)
	ah, al := splitVec(a)
	bh, bl := splitVec(b)
	err := hwy.Sub(hwy.Mul(ah, bh), value)
	err = hwy.Add(err, hwy.Mul(ah, bl))
	err = hwy.Add(err, hwy.Mul(al, bh))
	err = hwy.Add(err, hwy.Mul(al, bl))
	return Vec[T]{Value: value, Error: err}
}

func splitVec[T hwy.Floats](a hwy.Vec[T]) (hi, lo hwy.Vec[T]) {
	shift := splitShift[T]()
	big := hwy.GreaterThan(hwy.Abs(a), hwy.SetLike(a, ieee.SplitLimit[T]()))
	as := a
	if big.AnyTrue() {
		as = hwy.IfThenElse(big, hwy.Mul(a, hwy.SetLike(a, T(math.Ldexp(1, -shift)))), a)
	}
	c := hwy.Mul(hwy.SetLike(a, ieee.Splitter[T]()), as)
	hi = hwy.Sub(c, hwy.Sub(c, as))
	if big.AnyTrue() {
		hi = hwy.IfThenElse(big, hwy.Mul(hi, hwy.SetLike(a, T(math.Ldexp(1, shift)))), hi)
	}
	return hi, hwy.Sub(a, hi)
}

// FMADekkerVec applies FMADekker to every lane. The rounding to odd it
// relies on is a per-lane bit operation, so lanes are unpacked and evaluated
// with the scalar function; a Scalar backend vector is a single such lane.
func FMADekkerVec[T hwy.Floats](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	xs, ys, zs := x.Data(), y.Data(), z.Data()
	n := min(len(xs), len(ys), len(zs))
	out := make([]T, n)
	for i := range n {
		out[i] = FMADekker(xs[i], ys[i], zs[i])
	}
	return hwy.FromSlice(x.Backend(), out)
}

func fmaVecFor[T hwy.Floats](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	if x.Backend().HasFMA() {
		return hwy.FMA(x, y, z)
	}
	return FMADekkerVec(x, y, z)
}

// FMAVec is the lane-wise form of FMA; the backend of x decides between the
// fused instruction and FMADekkerVec.
func FMAVec[T hwy.Floats](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return fmaVecFor(x, y, z)
}

// FMSVec is the lane-wise form of FMS.
func FMSVec[T hwy.Floats](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return fmaVecFor(x, y, hwy.Neg(z))
}

// FNMAVec is the lane-wise form of FNMA.
func FNMAVec[T hwy.Floats](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return fmaVecFor(hwy.Neg(x), y, z)
}

// FNMSVec is the lane-wise form of FNMS.
func FNMSVec[T hwy.Floats](x, y, z hwy.Vec[T]) hwy.Vec[T] {
	return fmaVecFor(hwy.Neg(x), y, hwy.Neg(z))
}

// AddVec is the lane-wise form of Add.
func AddVec[T hwy.Floats](a, b Vec[T]) Vec[T] {
	s := SumVec(a.Value, b.Value)
	t := SumVec(a.Error, b.Error)
	s = FastSumVec(s.Value, hwy.Add(s.Error, t.Value))
	return FastSumVec(s.Value, hwy.Add(s.Error, t.Error))
}

// AddScalarVec is the lane-wise form of AddScalar.
func AddScalarVec[T hwy.Floats](a Vec[T], b hwy.Vec[T]) Vec[T] {
	s := SumVec(a.Value, b)
	return FastSumVec(s.Value, hwy.Add(s.Error, a.Error))
}

// MulVec is the lane-wise form of Mul.
func MulVec[T hwy.Floats](a, b Vec[T]) Vec[T] {
	p := MultVec(a.Value, b.Value)
	cross := hwy.Add(hwy.Mul(a.Value, b.Error), hwy.Mul(a.Error, b.Value))
	return FastSumVec(p.Value, hwy.Add(p.Error, cross))
}

// MulScalarVec is the lane-wise form of MulScalar.
func MulScalarVec[T hwy.Floats](a Vec[T], b hwy.Vec[T]) Vec[T] {
	p := MultVec(a.Value, b)
	return FastSumVec(p.Value, hwy.Add(p.Error, hwy.Mul(a.Error, b)))
}

// NegVec negates both components of every lane.
func NegVec[T hwy.Floats](a Vec[T]) Vec[T] {
	return Vec[T]{Value: hwy.Neg(a.Value), Error: hwy.Neg(a.Error)}
}

// NormalizeVec is the lane-wise form of Normalize.
func NormalizeVec[T hwy.Floats](a Vec[T]) Vec[T] {
	return FastSumVec(a.Value, a.Error)
}
