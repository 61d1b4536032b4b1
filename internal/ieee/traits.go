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

package ieee

import "math"

// Epsilon is the distance from 1 to the next larger value of T.
func Epsilon[T Floats]() T {
	return T(math.Ldexp(1, -FormatOf[T]().MantBits))
}

// UnitRoundoff is half of Epsilon: the relative error bound of one
// round-to-nearest operation.
func UnitRoundoff[T Floats]() T {
	return T(math.Ldexp(1, -FormatOf[T]().Precision()))
}

// Splitter is the Veltkamp constant 2^s+1 with s = ceil(p/2): 2^27+1 for
// float64 and 2^12+1 for float32.
func Splitter[T Floats]() T {
	p := FormatOf[T]().Precision()
	return T(math.Ldexp(1, (p+1)/2) + 1)
}

// SplitLimit is the magnitude above which Splitter*x overflows.
func SplitLimit[T Floats]() T {
	f := FormatOf[T]()
	return T(math.Ldexp(1, f.MaxExp()-(f.Precision()+1)/2))
}

// MaxValue is the largest finite value of T.
func MaxValue[T Floats]() T {
	if FormatOf[T]().Bits == 32 {
		return T(math.MaxFloat32)
	}
	m := math.MaxFloat64
	return T(m)
}

// MinNormal is the smallest positive normal value of T.
func MinNormal[T Floats]() T {
	return T(math.Ldexp(1, FormatOf[T]().MinExp()))
}

// Inf returns +Inf when sign >= 0 and -Inf otherwise, as a T.
func Inf[T Floats](sign int) T {
	return T(math.Inf(sign))
}

// NaN returns a quiet NaN of type T.
func NaN[T Floats]() T {
	return T(math.NaN())
}

// Float64bits returns the bits of x, widened to 64 bits.
func Float64bits[T Floats](x T) uint64 {
	return ToBits(x)
}
