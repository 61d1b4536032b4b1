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

// Package contrib groups the numeric libraries built on the hwy vector
// contract.
//
// # Subpackages
//
//   - twofold: exact sums and products as unevaluated pairs, and a correctly
//     rounded FMA for backends without one
//   - poly: Horner, Estrin and compensated Horner with error bounds
//   - reduce: Payne–Hanek reduction modulo π/2
//   - math: exp, log, sin, cos, tan and cot kernels
//   - cplx: interleaved complex vectors with C99 Annex G recovery
//   - algo: bulk application of vector functions to slices
//   - workerpool: persistent goroutine pool used by algo and cplx
//
// # Example
//
//	import "github.com/ajroetker/go-simdmath/hwy/contrib/algo"
//
//	algo.ExpTransform(input, output)      // exp of every element
//	algo.SinCosTransform(input, sin, cos) // both at once
//
//	// Any vector function, on a chosen backend
//	algo.ApplyFor(hwy.Width256FMA, input, output, math.Log[float64])
package contrib
