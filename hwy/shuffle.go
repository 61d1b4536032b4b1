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

// This file provides the lane permutations the numeric kernels need.
// These are pure Go implementations that work with any type.

// Reverse reverses the order of lanes in the vector.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	n := len(v.data)
	out := newVec[T](v.b, n)
	for i := range n {
		out.data[i] = v.data[n-1-i]
	}
	return out
}

// Reverse2 reverses each pair of adjacent lanes.
// [a0,a1,a2,a3] -> [a2,a3,a0,a1]
func Reverse2[T Lanes](v Vec[T]) Vec[T] {
	n := len(v.data)
	out := newVec[T](v.b, n)
	for i := 0; i+1 < n; i += 2 {
		out.data[i] = v.data[n-2-i]
		out.data[i+1] = v.data[n-1-i]
	}
	return out
}

// GetLane returns the value of lane idx.
// Out of range indices return zero.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[idx]
}

// InsertLane returns a copy of v with lane idx set to val.
// Out of range indices return an unchanged copy.
func InsertLane[T Lanes](v Vec[T], idx int, val T) Vec[T] {
	out := newVec[T](v.b, len(v.data))
	copy(out.data, v.data)
	if idx >= 0 && idx < len(out.data) {
		out.data[idx] = val
	}
	return out
}

// OddEven combines odd lanes from a with even lanes from b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [b0,a1,b2,a3]
func OddEven[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := newVec[T](a.b, n)
	for i := range n {
		if i%2 == 0 {
			out.data[i] = b.data[i]
		} else {
			out.data[i] = a.data[i]
		}
	}
	return out
}

// DupEven duplicates even lanes.
// [a0,a1,a2,a3] -> [a0,a0,a2,a2]
func DupEven[T Lanes](v Vec[T]) Vec[T] {
	n := len(v.data)
	out := newVec[T](v.b, n)
	for i := 0; i < n; i += 2 {
		out.data[i] = v.data[i]
		if i+1 < n {
			out.data[i+1] = v.data[i]
		}
	}
	return out
}

// DupOdd duplicates odd lanes.
// [a0,a1,a2,a3] -> [a1,a1,a3,a3]
func DupOdd[T Lanes](v Vec[T]) Vec[T] {
	n := len(v.data)
	out := newVec[T](v.b, n)
	for i := 0; i < n; i += 2 {
		if i+1 < n {
			out.data[i] = v.data[i+1]
			out.data[i+1] = v.data[i+1]
		} else {
			out.data[i] = v.data[i]
		}
	}
	return out
}

// SwapAdjacent swaps every even lane with the following odd lane.
// [a0,a1,a2,a3] -> [a1,a0,a3,a2]
func SwapAdjacent[T Lanes](v Vec[T]) Vec[T] {
	n := len(v.data)
	out := newVec[T](v.b, n)
	for i := 0; i < n; i += 2 {
		if i+1 < n {
			out.data[i] = v.data[i+1]
			out.data[i+1] = v.data[i]
		} else {
			out.data[i] = v.data[i]
		}
	}
	return out
}
