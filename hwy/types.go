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

// Package hwy provides portable lane-parallel vectors with runtime backend
// selection.
//
// It follows the Highway C++ library's design philosophy: write the numeric
// algorithm once against a small vector contract and run it on every backend.
// A backend is one of a closed set of strategies, {Scalar, Width128,
// Width256} x {FMA, NoFMA}; the best one for the running CPU is picked once
// at init and every vector remembers the backend it was built for.
//
// All backends are observably equivalent: the Scalar backend is the accuracy
// oracle, and every operation except the fused multiply-add family produces
// the same bits on every backend for the same lane inputs.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-simdmath/hwy"
//
//	// Load data into vectors
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//
//	// Perform lane-wise operations
//	result := hwy.Add(a, b)
//
//	// Store results
//	hwy.Store(result, output)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is an immutable vector of lanes bound to a Backend.
//
// Vec instances should not be created directly; use Load, Set, Zero or their
// ...For variants instead. Operations never modify their inputs.
type Vec[T Lanes] struct {
	data []T
	b    Backend
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Backend returns the backend this vector was created for.
func (v Vec[T]) Backend() Backend {
	return v.b
}

// Data returns a copy of the lanes.
func (v Vec[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask is the result of a comparison: a vector whose lanes hold either the
// all-ones bit pattern (true) or all-zero bits (false).
//
// Masks are combined with And, Or, Xor and Not exactly like any other
// vector, and IfThenElse is a bitwise select. The package never produces any
// other lane pattern.
type Mask[T Lanes] Vec[T]

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.data)
}

// AsVec reinterprets the mask as a plain vector of bit patterns.
func (m Mask[T]) AsVec() Vec[T] {
	return Vec[T](m)
}

// AllTrue returns true if all lanes in the mask are set.
func (m Mask[T]) AllTrue() bool {
	for _, x := range m.data {
		if !laneTrue(x) {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is set.
func (m Mask[T]) AnyTrue() bool {
	for _, x := range m.data {
		if laneTrue(x) {
			return true
		}
	}
	return false
}

// CountTrue returns the number of set lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, x := range m.data {
		if laneTrue(x) {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is set.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.data) {
		return false
	}
	return laneTrue(m.data[i])
}
