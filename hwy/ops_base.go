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

package hwy

import (
	"math"

	"github.com/ajroetker/go-simdmath/internal/ieee"
)

// This file provides the portable implementations of the vector contract.
// Every backend shares them; a backend only decides the lane count and
// whether the MulAdd family is fused.

func newVec[T Lanes](b Backend, n int) Vec[T] {
	return Vec[T]{data: make([]T, n), b: b}
}

// Load creates a vector for the current backend by loading data from a
// slice. Missing lanes are zero.
func Load[T Lanes](src []T) Vec[T] {
	return LoadFor(currentBackend, src)
}

// LoadFor creates a vector of backend b from the first lanes of src.
// Missing lanes are zero.
func LoadFor[T Lanes](b Backend, src []T) Vec[T] {
	v := newVec[T](b, LanesFor[T](b))
	copy(v.data, src)
	return v
}

// FromSlice wraps a copy of src as a vector of backend b with exactly
// len(src) lanes. It is meant for packed data whose lane count is fixed by
// layout rather than by register width, such as interleaved complex pairs.
func FromSlice[T Lanes](b Backend, src []T) Vec[T] {
	v := newVec[T](b, len(src))
	copy(v.data, src)
	return v
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	return SetFor(currentBackend, value)
}

// SetFor creates a vector of backend b with all lanes set to value.
func SetFor[T Lanes](b Backend, value T) Vec[T] {
	v := newVec[T](b, LanesFor[T](b))
	for i := range v.data {
		v.data[i] = value
	}
	return v
}

// SetLike creates a vector with the backend and lane count of like, all
// lanes set to value.
func SetLike[T Lanes, U Lanes](like Vec[U], value T) Vec[T] {
	v := newVec[T](like.b, len(like.data))
	for i := range v.data {
		v.data[i] = value
	}
	return v
}

// Const creates a vector with all lanes set to the given float64 constant.
// This allows writing generic code without T(constant) conversions.
// Usage: hwy.Const[T](1.0) creates a Vec[T] with all lanes set to 1.0
func Const[T Lanes](val float64) Vec[T] {
	return Set(T(val))
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return ZeroFor[T](currentBackend)
}

// ZeroFor creates a zero vector of backend b.
func ZeroFor[T Lanes](b Backend) Vec[T] {
	return newVec[T](b, LanesFor[T](b))
}

// One creates a vector with all lanes set to one.
func One[T Lanes]() Vec[T] {
	return SetFor(currentBackend, T(1))
}

// Iota returns a vector of backend b with lane i set to start+i.
func Iota[T Lanes](b Backend, start T) Vec[T] {
	v := newVec[T](b, LanesFor[T](b))
	for i := range v.data {
		v.data[i] = start + T(i)
	}
	return v
}

// Map applies fn to every lane. It is the escape hatch for per-lane scalar
// code such as recovery paths; fn must not depend on lane order.
func Map[T Lanes](v Vec[T], fn func(T) T) Vec[T] {
	out := newVec[T](v.b, len(v.data))
	for i, x := range v.data {
		out.data[i] = fn(x)
	}
	return out
}

func binary[T Lanes](a, b Vec[T], op func(x, y T) T) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := newVec[T](a.b, n)
	for i := range n {
		out.data[i] = op(a.data[i], b.data[i])
	}
	return out
}

func ternary[T Lanes](a, b, c Vec[T], op func(x, y, z T) T) Vec[T] {
	n := min(len(a.data), len(b.data), len(c.data))
	out := newVec[T](a.b, n)
	for i := range n {
		out.data[i] = op(a.data[i], b.data[i], c.data[i])
	}
	return out
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x / y })
}

// SubAdd alternately subtracts and adds: [a0-b0, a1+b1, a2-b2, a3+b3, ...].
func SubAdd[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := newVec[T](a.b, n)
	for i := range n {
		if i%2 == 0 {
			out.data[i] = a.data[i] - b.data[i]
		} else {
			out.data[i] = a.data[i] + b.data[i]
		}
	}
	return out
}

// Neg negates each lane. For floats only the sign bit changes.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return Map(v, func(x T) T { return -x })
}

// Abs computes the absolute value of each lane. For floats the sign bit is
// cleared, so Abs(-0) is +0 and NaNs stay NaN.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return Map(v, absLane[T])
}

func absLane[T Lanes](x T) T {
	if isFloat[T]() {
		return ieee.FromBits[T](ieee.ToBits(x) &^ ieee.SignMaskOf[T]())
	}
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the element-wise minimum. If either lane is NaN the lane of b
// is returned, like the x86 MINPD instruction.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if x < y {
			return x
		}
		return y
	})
}

// Max returns the element-wise maximum with the same NaN rule as Min.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if x > y {
			return x
		}
		return y
	})
}

// Sqrt computes the square root of each lane, correctly rounded.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	return Map(v, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// FMA computes a*b+c with a single rounding on every backend.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	return ternary(a, b, c, fmaLane[T])
}

func fmaLane[T Floats](x, y, z T) T {
	switch xv := any(x).(type) {
	case float32:
		return T(ieee.FMA32(xv, float32(y), float32(z)))
	default:
		return T(math.FMA(float64(x), float64(y), float64(z)))
	}
}

// MulAdd computes a*b+c. The backend of a decides the rounding: with FMA the
// result is rounded once, without it a*b and the sum are rounded separately.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	if a.b.fma {
		return ternary(a, b, c, fmaLane[T])
	}
	return ternary(a, b, c, func(x, y, z T) T { return T(x*y) + z })
}

// MulSub computes a*b-c, fused when the backend has FMA.
func MulSub[T Floats](a, b, c Vec[T]) Vec[T] {
	if a.b.fma {
		return ternary(a, b, c, func(x, y, z T) T { return fmaLane(x, y, -z) })
	}
	return ternary(a, b, c, func(x, y, z T) T { return T(x*y) - z })
}

// NegMulAdd computes c-a*b, fused when the backend has FMA.
func NegMulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	if a.b.fma {
		return ternary(a, b, c, func(x, y, z T) T { return fmaLane(-x, y, z) })
	}
	return ternary(a, b, c, func(x, y, z T) T { return z - T(x*y) })
}

// NegMulSub computes -a*b-c, fused when the backend has FMA.
func NegMulSub[T Floats](a, b, c Vec[T]) Vec[T] {
	if a.b.fma {
		return ternary(a, b, c, func(x, y, z T) T { return fmaLane(-x, y, -z) })
	}
	return ternary(a, b, c, func(x, y, z T) T { return -T(x*y) - z })
}

// reduce folds the lanes with a fixed pairwise-halving order: lane i is
// combined with lane i+n-n/2 until one lane remains.
func reduce[T Lanes](v Vec[T], op func(x, y T) T) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	buf := make([]T, len(v.data))
	copy(buf, v.data)
	for n := len(buf); n > 1; {
		h := n / 2
		for i := range h {
			buf[i] = op(buf[i], buf[i+n-h])
		}
		n -= h
	}
	return buf[0]
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	return reduce(v, func(x, y T) T { return x + y })
}

// ReduceMin returns the minimum lane, with the NaN rule of Min.
func ReduceMin[T Lanes](v Vec[T]) T {
	return reduce(v, func(x, y T) T {
		if x < y {
			return x
		}
		return y
	})
}

// ReduceMax returns the maximum lane, with the NaN rule of Max.
func ReduceMax[T Lanes](v Vec[T]) T {
	return reduce(v, func(x, y T) T {
		if x > y {
			return x
		}
		return y
	})
}

func compare[T Lanes](a, b Vec[T], pred func(x, y T) bool) Mask[T] {
	n := min(len(a.data), len(b.data))
	m := newVec[T](a.b, n)
	for i := range n {
		m.data[i] = maskLane[T](pred(a.data[i], b.data[i]))
	}
	return Mask[T](m)
}

func predicate[T Lanes](v Vec[T], pred func(x T) bool) Mask[T] {
	m := newVec[T](v.b, len(v.data))
	for i, x := range v.data {
		m.data[i] = maskLane[T](pred(x))
	}
	return Mask[T](m)
}

// Equal returns a mask of lanes where a == b.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual returns a mask of lanes where a != b (true for NaN lanes).
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// LessThan returns a mask of lanes where a < b.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// LessEqual returns a mask of lanes where a <= b.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// GreaterThan returns a mask of lanes where a > b.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual returns a mask of lanes where a >= b.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// IsNaN returns a mask of NaN lanes.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	return predicate(v, func(x T) bool { return x != x })
}

// IsInf returns a mask of infinite lanes.
// sign > 0 tests +Inf, sign < 0 tests -Inf, sign == 0 tests either.
func IsInf[T Floats](v Vec[T], sign int) Mask[T] {
	return predicate(v, func(x T) bool { return math.IsInf(float64(x), sign) })
}

// IsFinite returns a mask of lanes that are neither infinite nor NaN.
func IsFinite[T Floats](v Vec[T]) Mask[T] {
	return predicate(v, func(x T) bool {
		f := float64(x)
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})
}

// AnyNaN reports whether any lane of v is NaN.
func AnyNaN[T Floats](v Vec[T]) bool {
	for _, x := range v.data {
		if x != x {
			return true
		}
	}
	return false
}

// IfThenElse selects a where mask is set and b elsewhere. The selection is
// bitwise: (mask & a) | (^mask & b).
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(mask.data), len(a.data), len(b.data))
	out := newVec[T](a.b, n)
	for i := range n {
		m := ieee.ToBits(mask.data[i])
		out.data[i] = ieee.FromBits[T](m&ieee.ToBits(a.data[i]) | ^m&ieee.ToBits(b.data[i]))
	}
	return out
}

// IfThenElseZero returns a where mask is set and zero elsewhere.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	return And(Vec[T](mask), a)
}

// IfThenZeroElse returns zero where mask is set and b elsewhere.
func IfThenZeroElse[T Lanes](mask Mask[T], b Vec[T]) Vec[T] {
	return AndNot(Vec[T](mask), b)
}

// Merge selects a where mask is set and b elsewhere.
func Merge[T Lanes](a, b Vec[T], mask Mask[T]) Vec[T] {
	return IfThenElse(mask, a, b)
}

func isFloat[T Lanes]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	}
	return false
}

func maskLane[T Lanes](set bool) T {
	if set {
		return ieee.FromBits[T](ieee.WidthMask[T]())
	}
	var zero T
	return zero
}

func laneTrue[T Lanes](x T) bool {
	return ieee.ToBits(x) != 0
}
