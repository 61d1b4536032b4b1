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

package hwy

// LoadInterleaved2 loads interleaved pairs from src into two vectors of the
// current backend: [a0,b0,a1,b1,...] -> a=[a0,a1,...], b=[b0,b1,...].
func LoadInterleaved2[T Lanes](src []T) (Vec[T], Vec[T]) {
	return LoadInterleaved2For(currentBackend, src)
}

// LoadInterleaved2For is LoadInterleaved2 for backend b. Missing lanes are
// zero.
func LoadInterleaved2For[T Lanes](b Backend, src []T) (Vec[T], Vec[T]) {
	n := LanesFor[T](b)
	a, c := newVec[T](b, n), newVec[T](b, n)
	for i := range n {
		if 2*i+1 < len(src) {
			a.data[i] = src[2*i]
			c.data[i] = src[2*i+1]
		} else if 2*i < len(src) {
			a.data[i] = src[2*i]
		}
	}
	return a, c
}

// StoreInterleaved2 stores two vectors as interleaved pairs into dst:
// a=[a0,a1,...], b=[b0,b1,...] -> [a0,b0,a1,b1,...]. Only complete pairs
// that fit in dst are written.
func StoreInterleaved2[T Lanes](a, b Vec[T], dst []T) {
	n := min(len(a.data), len(b.data), len(dst)/2)
	for i := range n {
		dst[2*i] = a.data[i]
		dst[2*i+1] = b.data[i]
	}
}

// MaskStore writes the lanes of v whose mask bit is set into dst.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(mask.data), len(v.data), len(dst))
	for i := range n {
		if laneTrue(mask.data[i]) {
			dst[i] = v.data[i]
		}
	}
}
