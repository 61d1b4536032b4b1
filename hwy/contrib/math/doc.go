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

// Package math provides lane-parallel transcendental kernels built on the
// hwy vector contract.
//
// # Functions
//
// Exponential and logarithmic:
//   - Exp(x Vec[T]) Vec[T] - e^x
//   - Log(x Vec[T]) Vec[T] - ln(x)
//
// Trigonometric:
//   - Sin(x Vec[T]) Vec[T]
//   - Cos(x Vec[T]) Vec[T]
//   - SinCos(x Vec[T]) (sin, cos Vec[T])
//   - Tan(x Vec[T]) Vec[T]
//   - Cot(x Vec[T]) Vec[T]
//
// Primitives:
//   - Pow2k(k Vec[T]) Vec[T] - 2^k for integral k
//   - Pow2kInt(k Vec[I]) Vec[F] - 2^k from integer lanes
//   - Exponent(x Vec[T]) Vec[T] - unbiased binary exponent
//   - Fraction(x Vec[T]) Vec[T] - significand scaled to [1, 2)
//   - Copysign(x, s Vec[T]) Vec[T]
//
// Trigonometric arguments go through the Payne-Hanek reduction of the reduce
// package, so the kernels stay accurate over the whole finite range rather
// than only near zero. Float32 trigonometric lanes are evaluated in float64
// and rounded once.
//
// # Accuracy
//
// Measured against the standard library:
//   - Exp, Log, Sin, Cos: within 2 ULP
//   - Tan, Cot: within 4 ULP
//   - Special value handling: ±Inf, NaN, subnormals
//
// Results depend on the backend only through the fused multiply-add flag.
// Backends that agree on it produce identical bits.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-simdmath/hwy"
//	    "github.com/ajroetker/go-simdmath/hwy/contrib/math"
//	)
//
//	func ExpTimesX(x hwy.Vec[float64]) hwy.Vec[float64] {
//	    return hwy.Mul(math.Exp(x), x)
//	}
package math
