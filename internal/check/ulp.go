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

package check

import (
	"math"
	"math/cmplx"
)

// ULPDistance returns the number of representable float64 values between
// got and want. Two NaNs are 0 apart. A NaN or infinity that is not matched
// exactly is +Inf away.
func ULPDistance(got, want float64) float64 {
	switch {
	case math.IsNaN(got) || math.IsNaN(want):
		if math.IsNaN(got) && math.IsNaN(want) {
			return 0
		}
		return math.Inf(1)
	case got == want:
		return 0
	case math.IsInf(got, 0) || math.IsInf(want, 0):
		return math.Inf(1)
	}
	a, b := ordered(got), ordered(want)
	if a > b {
		return float64(a - b)
	}
	return float64(b - a)
}

// ordered maps the bits of x onto a line where adjacent floats differ by 1.
func ordered(x float64) int64 {
	bits := math.Float64bits(x)
	if bits>>63 != 0 {
		return -int64(bits &^ (1 << 63))
	}
	return int64(bits)
}

// NormwiseError returns |got-want| / |want| in units of 2^-52. Non-finite
// references must be matched part by part.
func NormwiseError(got, want complex128) float64 {
	if cmplx.IsNaN(want) || cmplx.IsInf(want) || cmplx.IsNaN(got) || cmplx.IsInf(got) {
		return max(ULPDistance(real(got), real(want)), ULPDistance(imag(got), imag(want)))
	}
	if want == 0 {
		if got == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return cmplx.Abs(got-want) / cmplx.Abs(want) / 0x1p-52
}
