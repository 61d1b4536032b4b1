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

import "github.com/ajroetker/go-simdmath/hwy"

// Apply transforms in into out on the current backend using the provided
// vector function. Tail elements are handled via a zero-padded buffer, so
// fn sees only full vectors and no scalar fallback is needed.
//
// Example usage:
//
//	algo.Apply(input, output, math.Exp[float64])
func Apply[T hwy.Lanes](in, out []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	ApplyFor(hwy.CurrentBackend(), in, out, fn)
}

// ApplyFor is Apply on backend b.
func ApplyFor[T hwy.Lanes](b hwy.Backend, in, out []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	ApplyWidth(b, hwy.LanesFor[T](b), in, out, fn)
}

// ApplyWidth is ApplyFor with vectors of exactly width lanes. It serves
// packed layouts whose vector size is fixed by the data rather than by the
// register width, such as interleaved complex pairs.
func ApplyWidth[T hwy.Lanes](b hwy.Backend, width int, in, out []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(in), len(out))
	i := 0

	// Process full vectors
	for ; i+width <= n; i += width {
		hwy.Store(fn(hwy.FromSlice(b, in[i:i+width])), out[i:i+width])
	}

	// Buffer-based tail handling
	if remaining := n - i; remaining > 0 {
		buf := make([]T, width)
		copy(buf, in[i:n])
		hwy.Store(fn(hwy.FromSlice(b, buf)), buf)
		copy(out[i:n], buf[:remaining])
	}
}

// Apply2 combines x and y into out on the current backend using a binary
// vector function, with the same tail handling as Apply.
func Apply2[T hwy.Lanes](x, y, out []T, fn func(x, y hwy.Vec[T]) hwy.Vec[T]) {
	Apply2For(hwy.CurrentBackend(), x, y, out, fn)
}

// Apply2For is Apply2 on backend b.
func Apply2For[T hwy.Lanes](b hwy.Backend, x, y, out []T, fn func(x, y hwy.Vec[T]) hwy.Vec[T]) {
	Apply2Width(b, hwy.LanesFor[T](b), x, y, out, fn)
}

// Apply2Width is Apply2For with vectors of exactly width lanes. Missing
// tail lanes of both inputs are zero.
func Apply2Width[T hwy.Lanes](b hwy.Backend, width int, x, y, out []T, fn func(x, y hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(x), len(y), len(out))
	i := 0

	for ; i+width <= n; i += width {
		r := fn(hwy.FromSlice(b, x[i:i+width]), hwy.FromSlice(b, y[i:i+width]))
		hwy.Store(r, out[i:i+width])
	}

	if remaining := n - i; remaining > 0 {
		bx, by := make([]T, width), make([]T, width)
		copy(bx, x[i:n])
		copy(by, y[i:n])
		hwy.Store(fn(hwy.FromSlice(b, bx), hwy.FromSlice(b, by)), bx)
		copy(out[i:n], bx[:remaining])
	}
}
