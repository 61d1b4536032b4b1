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

// FMA32 returns x*y+z for float32 operands rounded once.
//
// The product of two float32 values is exact in float64. The sum with z is
// formed with an error-free transform and rounded to odd in float64, which
// has more than p+1 bits of headroom over float32; rounding that value to
// float32 gives the correctly rounded result.
func FMA32(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	zz := float64(z)
	s := p + zz
	if math.IsInf(s, 0) || math.IsNaN(s) || s == 0 {
		// Overflow, invalid operations and exact zeros (including the sign
		// of zero) are already right in float64.
		return float32(s)
	}
	bb := s - p
	e := (p - (s - bb)) + (zz - bb)
	if e != 0 {
		bits := math.Float64bits(s)
		if bits&1 == 0 {
			// Round to odd: step one ulp towards the discarded error.
			if (e > 0) == (s > 0) {
				bits++
			} else {
				bits--
			}
			s = math.Float64frombits(bits)
		}
	}
	return float32(s)
}
