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

package cplx

import (
	"unsafe"

	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/hwy/contrib/algo"
	"github.com/ajroetker/go-simdmath/hwy/contrib/workerpool"
)

// Slice operations process the common length of their arguments. The
// builtin complex types are (re, im) pairs in memory, so they are viewed
// as interleaved real slices without copying.

func parts128(c []complex128) []float64 {
	if len(c) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&c[0])), 2*len(c))
}

func parts64(c []complex64) []float32 {
	if len(c) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&c[0])), 2*len(c))
}

func sliceOp[T hwy.Floats](pool *workerpool.Pool, b hwy.Backend, dst, x, y []T, op func(x, y Vec[T]) Vec[T]) {
	algo.ParallelApply2Width(pool, b, 2*LanesFor[T](b), x, y, dst, func(x, y hwy.Vec[T]) hwy.Vec[T] {
		return op(FromInterleaved(x), FromInterleaved(y)).v
	})
}

// MulSlices stores x[i]·y[i] in dst[i] using Mul on the current backend.
func MulSlices(dst, x, y []complex128) {
	MulSlicesFor(nil, hwy.CurrentBackend(), dst, x, y)
}

// DivSlices stores x[i]/y[i] in dst[i] using Div on the current backend.
func DivSlices(dst, x, y []complex128) {
	DivSlicesFor(nil, hwy.CurrentBackend(), dst, x, y)
}

// MulSlicesFor is MulSlices on backend b, split across pool when it is not
// nil.
func MulSlicesFor(pool *workerpool.Pool, b hwy.Backend, dst, x, y []complex128) {
	sliceOp(pool, b, parts128(dst), parts128(x), parts128(y), Mul[float64])
}

// DivSlicesFor is DivSlices on backend b, split across pool when it is not
// nil.
func DivSlicesFor(pool *workerpool.Pool, b hwy.Backend, dst, x, y []complex128) {
	sliceOp(pool, b, parts128(dst), parts128(x), parts128(y), Div[float64])
}

// MulSlices64 is MulSlices for complex64.
func MulSlices64(dst, x, y []complex64) {
	sliceOp(nil, hwy.CurrentBackend(), parts64(dst), parts64(x), parts64(y), Mul[float32])
}

// DivSlices64 is DivSlices for complex64.
func DivSlices64(dst, x, y []complex64) {
	sliceOp(nil, hwy.CurrentBackend(), parts64(dst), parts64(x), parts64(y), Div[float32])
}
