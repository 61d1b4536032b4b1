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

// Twofold is the unevaluated sum Value + Error.
type Twofold[T hwy.Floats] struct {
	Value T
	Error T
}

// New returns the twofold value + err without normalizing it.
func New[T hwy.Floats](value, err T) Twofold[T] {
	return Twofold[T]{Value: value, Error: err}
}

// FromFloat returns x with a zero error term.
func FromFloat[T hwy.Floats](x T) Twofold[T] {
	return Twofold[T]{Value: x}
}

// Float rounds the pair to a single float.
func (t Twofold[T]) Float() T {
	return t.Value + t.Error
}

// Sum computes a+b exactly (Knuth's 2Sum). It makes no assumption on the
// relative magnitude of a and b.
func Sum[T hwy.Floats](a, b T) Twofold[T] {
	s := a + b
	bb := s - a
	err := (a - (s - bb)) + (b - bb)
	return Twofold[T]{Value: s, Error: err}
}

// FastSum computes a+b exactly provided |a| >= |b| or a is zero (Dekker's
// Fast2Sum).
func FastSum[T hwy.Floats](a, b T) Twofold[T] {
	s := a + b
	err := b - (s - a)
	return Twofold[T]{Value: s, Error: err}
}

// Mult computes a*b exactly as long as the product neither overflows nor
// underflows. The error term comes from a fused multiply-add when the
// current backend has hardware FMA and from MultDekker otherwise; both give
// the same pair.
func Mult[T hwy.Floats](a, b T) Twofold[T] {
	if hwy.HasFMA() || is32[T]() {
		return multFMA(a, b)
	}
	return MultDekker(a, b)
}

func multFMA[T hwy.Floats](a, b T) Twofold[T] {
	value := T(a * b)
	if is32[T]() {
		// The float64 product of two float32 values is exact, and so is its
		// distance to the rounded product.
		return Twofold[T]{Value: value, Error: T(float64(a)*float64(b) - float64(value))}
	}
	return Twofold[T]{Value: value, Error: T(math.FMA(float64(a), float64(b), -float64(value)))}
}

// MultDekker computes a*b exactly with the Veltkamp/Dekker algorithm: both
// operands are split into halves whose pairwise products are exact, and the
// rounding error of the product is rebuilt from the four partial products.
func MultDekker[T hwy.Floats](a, b T) Twofold[T] {
	value := T(a * b)
	ah, al := split(a)
	bh, bl := split(b)
	err := T(T(T(ah*bh)-value)+T(ah*bl)+T(al*bh)) + T(al*bl)
	return Twofold[T]{Value: value, Error: err}
}

// split returns hi + lo == a where hi holds the upper half of the
// significand. Values large enough to overflow the splitter product are
// scaled down first.
func split[T hwy.Floats](a T) (hi, lo T) {
	if abs(a) > ieee.SplitLimit[T]() {
		shift := splitShift[T]()
		as := T(math.Ldexp(float64(a), -shift))
		c := T(ieee.Splitter[T]() * as)
		hi = c - (c - as)
		hi = T(math.Ldexp(float64(hi), shift))
		return hi, a - hi
	}
	c := T(ieee.Splitter[T]() * a)
	hi = c - (c - a)
	return hi, a - hi
}

func splitShift[T hwy.Floats]() int {
	return (ieee.FormatOf[T]().Precision()+1)/2 + 1
}

// Add adds two twofold values with a relative error of a few units of
// u², u being the unit roundoff of T.
func Add[T hwy.Floats](a, b Twofold[T]) Twofold[T] {
	s := Sum(a.Value, b.Value)
	t := Sum(a.Error, b.Error)
	s = FastSum(s.Value, s.Error+t.Value)
	return FastSum(s.Value, s.Error+t.Error)
}

// AddScalar adds a plain float to a twofold value.
func AddScalar[T hwy.Floats](a Twofold[T], b T) Twofold[T] {
	s := Sum(a.Value, b)
	return FastSum(s.Value, s.Error+a.Error)
}

// Mul multiplies two twofold values.
func Mul[T hwy.Floats](a, b Twofold[T]) Twofold[T] {
	p := Mult(a.Value, b.Value)
	cross := T(a.Value*b.Error) + T(a.Error*b.Value)
	return FastSum(p.Value, p.Error+cross)
}

// MulScalar multiplies a twofold value by a plain float.
func MulScalar[T hwy.Floats](a Twofold[T], b T) Twofold[T] {
	p := Mult(a.Value, b)
	return FastSum(p.Value, p.Error+T(a.Error*b))
}

// Neg negates both components.
func Neg[T hwy.Floats](a Twofold[T]) Twofold[T] {
	return Twofold[T]{Value: -a.Value, Error: -a.Error}
}

// Normalize returns the pair with Value rounded from the sum and Error the
// exact remainder.
func Normalize[T hwy.Floats](a Twofold[T]) Twofold[T] {
	return FastSum(a.Value, a.Error)
}

func is32[T hwy.Floats]() bool {
	return ieee.FormatOf[T]().Bits == 32
}

func abs[T hwy.Floats](x T) T {
	return T(math.Abs(float64(x)))
}
