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

import "github.com/ajroetker/go-simdmath/internal/ieee"

// Bitwise operations act on the lane bit patterns, so they apply to float
// lanes as well as integers. This is how masks and sign manipulation work.

func bitwise[T Lanes](a, b Vec[T], op func(x, y uint64) uint64) Vec[T] {
	n := min(len(a.data), len(b.data))
	out := newVec[T](a.b, n)
	w := ieee.WidthMask[T]()
	for i := range n {
		out.data[i] = ieee.FromBits[T](op(ieee.ToBits(a.data[i]), ieee.ToBits(b.data[i])) & w)
	}
	return out
}

// And returns a & b lane-wise.
func And[T Lanes](a, b Vec[T]) Vec[T] {
	return bitwise(a, b, func(x, y uint64) uint64 { return x & y })
}

// Or returns a | b lane-wise.
func Or[T Lanes](a, b Vec[T]) Vec[T] {
	return bitwise(a, b, func(x, y uint64) uint64 { return x | y })
}

// Xor returns a ^ b lane-wise.
func Xor[T Lanes](a, b Vec[T]) Vec[T] {
	return bitwise(a, b, func(x, y uint64) uint64 { return x ^ y })
}

// AndNot returns ^a & b lane-wise.
func AndNot[T Lanes](a, b Vec[T]) Vec[T] {
	return bitwise(a, b, func(x, y uint64) uint64 { return ^x & y })
}

// Not returns ^v lane-wise.
func Not[T Lanes](v Vec[T]) Vec[T] {
	return bitwise(v, v, func(x, _ uint64) uint64 { return ^x })
}

func shift[T Lanes](v Vec[T], op func(x uint64) uint64) Vec[T] {
	out := newVec[T](v.b, len(v.data))
	w := ieee.WidthMask[T]()
	for i, x := range v.data {
		out.data[i] = ieee.FromBits[T](op(ieee.ToBits(x)) & w)
	}
	return out
}

// ShiftLeft shifts every lane's bit pattern left by bits.
func ShiftLeft[T Lanes](v Vec[T], bits int) Vec[T] {
	return shift(v, func(x uint64) uint64 { return x << uint(bits) })
}

// ShiftRight shifts every lane's bit pattern right by bits, filling with
// zeros regardless of the lane type.
func ShiftRight[T Lanes](v Vec[T], bits int) Vec[T] {
	return shift(v, func(x uint64) uint64 { return x >> uint(bits) })
}

// ShiftRightArithmetic shifts every lane's bit pattern right by bits,
// replicating the top bit of the lane.
func ShiftRightArithmetic[T Lanes](v Vec[T], bits int) Vec[T] {
	sign := ieee.SignMaskOf[T]()
	w := ieee.WidthMask[T]()
	return shift(v, func(x uint64) uint64 {
		if x&sign == 0 {
			return x >> uint(bits)
		}
		// Sign-extend the lane to 64 bits before shifting.
		return uint64(int64(x|^w) >> uint(bits))
	})
}

// SignBit returns a vector for the current backend with only the sign bit
// set in each lane. For floats this is -0.0.
func SignBit[T Lanes]() Vec[T] {
	return SignBitFor[T](currentBackend)
}

// SignBitFor is SignBit for backend b.
func SignBitFor[T Lanes](b Backend) Vec[T] {
	return SetFor(b, ieee.FromBits[T](ieee.SignMaskOf[T]()))
}

// SignBitBase returns -0.0 in lanes whose sign bit is set and +0.0
// elsewhere.
func SignBitBase[T Floats](v Vec[T]) Vec[T] {
	return And(v, SetLike(v, ieee.FromBits[T](ieee.SignMaskOf[T]())))
}

// MaskAnd returns the intersection of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T](And(Vec[T](a), Vec[T](b)))
}

// MaskOr returns the union of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T](Or(Vec[T](a), Vec[T](b)))
}

// MaskXor returns the lanes set in exactly one of the masks.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T](Xor(Vec[T](a), Vec[T](b)))
}

// MaskAndNot returns the lanes set in b but not in a.
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T](AndNot(Vec[T](a), Vec[T](b)))
}

// MaskNot inverts a mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	return Mask[T](Not(Vec[T](m)))
}

// MaskFromVec turns a vector into a mask: lanes with any bit set become
// all-ones. This keeps the mask invariant for hand-built vectors.
func MaskFromVec[T Lanes](v Vec[T]) Mask[T] {
	return predicate(v, laneTrue[T])
}

// VecFromMask returns the bit patterns of a mask as a vector.
func VecFromMask[T Lanes](m Mask[T]) Vec[T] {
	return m.AsVec()
}

// FirstN returns a mask of backend b with the first n lanes set.
func FirstN[T Lanes](b Backend, n int) Mask[T] {
	m := newVec[T](b, LanesFor[T](b))
	for i := range m.data {
		m.data[i] = maskLane[T](i < n)
	}
	return Mask[T](m)
}
