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

package algo

import (
	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/hwy/contrib/workerpool"
)

// ParallelApply is ApplyFor with the vectors split across the workers of
// pool. Chunk boundaries fall on vector boundaries, so the output is the
// same as the sequential one. A nil pool runs sequentially.
func ParallelApply[T hwy.Lanes](pool *workerpool.Pool, b hwy.Backend, in, out []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	ParallelApplyWidth(pool, b, hwy.LanesFor[T](b), in, out, fn)
}

// ParallelApplyWidth is ApplyWidth split across the workers of pool.
func ParallelApplyWidth[T hwy.Lanes](pool *workerpool.Pool, b hwy.Backend, width int, in, out []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(in), len(out))
	if pool == nil {
		ApplyWidth(b, width, in[:n], out[:n], fn)
		return
	}
	pool.ParallelFor((n+width-1)/width, func(start, end int) {
		lo, hi := start*width, min(end*width, n)
		ApplyWidth(b, width, in[lo:hi], out[lo:hi], fn)
	})
}

// ParallelApply2 is Apply2For with the vectors split across the workers of
// pool. A nil pool runs sequentially.
func ParallelApply2[T hwy.Lanes](pool *workerpool.Pool, b hwy.Backend, x, y, out []T, fn func(x, y hwy.Vec[T]) hwy.Vec[T]) {
	ParallelApply2Width(pool, b, hwy.LanesFor[T](b), x, y, out, fn)
}

// ParallelApply2Width is Apply2Width split across the workers of pool.
func ParallelApply2Width[T hwy.Lanes](pool *workerpool.Pool, b hwy.Backend, width int, x, y, out []T, fn func(x, y hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(x), len(y), len(out))
	if pool == nil {
		Apply2Width(b, width, x[:n], y[:n], out[:n], fn)
		return
	}
	pool.ParallelFor((n+width-1)/width, func(start, end int) {
		lo, hi := start*width, min(end*width, n)
		Apply2Width(b, width, x[lo:hi], y[lo:hi], out[lo:hi], fn)
	})
}
