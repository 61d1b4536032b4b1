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

// Package algo provides bulk slice algorithms over hwy vector kernels.
//
// # Transform API
//
// Apply and Apply2 run a vector function over whole slices, vector by
// vector, padding the tail in a scratch buffer so the kernel never needs a
// scalar fallback. The Width variants fix the vector length for packed
// layouts such as interleaved complex pairs, and the Parallel variants
// split the vectors across a workerpool.Pool.
//
// Named transforms for the kernels of hwy/contrib/math:
//   - ExpTransform, LogTransform
//   - SinTransform, CosTransform, SinCosTransform
//   - TanTransform, CotTransform
//
// # Search API
//
// FindIf, CountIf, Any, All and None test a mask-valued predicate over a
// slice, ignoring the padded tail lanes.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-simdmath/hwy/contrib/algo"
//
//	func ProcessData(input []float64) []float64 {
//	    output := make([]float64, len(input))
//	    algo.ExpTransform(input, output)
//	    return output
//	}
//
//	// Generic apply with a custom operation: x² + x
//	algo.Apply(input, output, func(x hwy.Vec[float64]) hwy.Vec[float64] {
//	    return hwy.MulAdd(x, x, x)
//	})
package algo
