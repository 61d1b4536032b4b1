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

// scan calls visit for every vector of slice on the current backend with
// pred's mask restricted to the valid lanes, stopping when visit returns
// false. The tail vector is zero padded.
func scan[T hwy.Lanes](slice []T, pred func(hwy.Vec[T]) hwy.Mask[T], visit func(i int, m hwy.Mask[T]) bool) {
	b := hwy.CurrentBackend()
	lanes := hwy.LanesFor[T](b)
	n := len(slice)
	i := 0

	// Process full vectors
	for ; i+lanes <= n; i += lanes {
		if !visit(i, pred(hwy.LoadFor(b, slice[i:]))) {
			return
		}
	}

	// Handle tail elements
	if remaining := n - i; remaining > 0 {
		mask := hwy.MaskAnd(pred(hwy.LoadFor(b, slice[i:])), hwy.FirstN[T](b, remaining))
		visit(i, mask)
	}
}

// FindIf returns the index of the first element where pred returns a mask with any true lane.
// Returns -1 if no element matches.
//
// Example: Find first NaN
//
//	idx := FindIf(data, hwy.IsNaN[float64])
func FindIf[T hwy.Lanes](slice []T, pred func(hwy.Vec[T]) hwy.Mask[T]) int {
	found := -1
	scan(slice, pred, func(i int, m hwy.Mask[T]) bool {
		for l := range m.NumLanes() {
			if m.GetBit(l) {
				found = i + l
				return false
			}
		}
		return true
	})
	return found
}

// CountIf returns the number of elements where pred returns a true mask lane.
//
// Example: Count elements greater than 2
//
//	n := CountIf(data, func(v hwy.Vec[float64]) hwy.Mask[float64] {
//	    return hwy.GreaterThan(v, hwy.SetLike(v, 2.0))
//	})
func CountIf[T hwy.Lanes](slice []T, pred func(hwy.Vec[T]) hwy.Mask[T]) int {
	count := 0
	scan(slice, pred, func(_ int, m hwy.Mask[T]) bool {
		count += m.CountTrue()
		return true
	})
	return count
}

// Any returns true if pred returns true for any element.
// Short-circuits on first true.
func Any[T hwy.Lanes](slice []T, pred func(hwy.Vec[T]) hwy.Mask[T]) bool {
	return FindIf(slice, pred) >= 0
}

// All returns true if pred returns true for all elements.
func All[T hwy.Lanes](slice []T, pred func(hwy.Vec[T]) hwy.Mask[T]) bool {
	return !Any(slice, func(v hwy.Vec[T]) hwy.Mask[T] { return hwy.MaskNot(pred(v)) })
}

// None returns true if pred returns false for all elements.
// This is equivalent to !Any(slice, pred).
func None[T hwy.Lanes](slice []T, pred func(hwy.Vec[T]) hwy.Mask[T]) bool {
	return !Any(slice, pred)
}
