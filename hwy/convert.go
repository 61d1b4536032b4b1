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

import (
	"math"

	"github.com/ajroetker/go-simdmath/internal/ieee"
)

// This file provides rounding, numeric conversion and bit reinterpretation.
// Conversions keep the lane count and the backend of the input.

// ConvertTo converts every lane to U with Go conversion semantics
// (truncation toward zero for float to integer). For float lanes that are
// NaN or outside the range of U the result is undefined.
func ConvertTo[U Lanes, T Lanes](v Vec[T]) Vec[U] {
	out := newVec[U](v.b, len(v.data))
	for i, x := range v.data {
		out.data[i] = U(x)
	}
	return out
}

// ConvertToInt32 converts float32 or float64 to int32 (truncate toward zero).
// For values outside the int32 range, the result is undefined.
func ConvertToInt32[T Floats](v Vec[T]) Vec[int32] {
	return ConvertTo[int32](v)
}

// ConvertToInt64 converts float64 to int64 (truncate toward zero).
// For values outside the int64 range, the result is undefined.
func ConvertToInt64[T Floats](v Vec[T]) Vec[int64] {
	return ConvertTo[int64](v)
}

// ConvertToFloat32 converts integer lanes to float32.
// Large int64 values may lose precision.
func ConvertToFloat32[T Integers](v Vec[T]) Vec[float32] {
	return ConvertTo[float32](v)
}

// ConvertToFloat64 converts integer lanes to float64.
// Large int64 values may lose precision.
func ConvertToFloat64[T Integers](v Vec[T]) Vec[float64] {
	return ConvertTo[float64](v)
}

// ConvertToInt converts float lanes to the signed integer type of the same
// width, truncating toward zero. It panics when the widths differ.
func ConvertToInt[I int32 | int64, T Floats](v Vec[T]) Vec[I] {
	if ieee.WidthMask[I]() != ieee.WidthMask[T]() {
		panic("hwy: ConvertToInt needs an integer type of the lane width")
	}
	return ConvertTo[I](v)
}

// ConvertToFloat converts signed integer lanes to the float type of the same
// width. It panics when the widths differ.
func ConvertToFloat[F Floats, I int32 | int64](v Vec[I]) Vec[F] {
	if ieee.WidthMask[I]() != ieee.WidthMask[F]() {
		panic("hwy: ConvertToFloat needs a float type of the lane width")
	}
	return ConvertTo[F](v)
}

func roundWith[T Floats](v Vec[T], fn func(float64) float64) Vec[T] {
	// Every float32 is exact in float64 and so is its rounded integer value.
	return Map(v, func(x T) T { return T(fn(float64(x))) })
}

// Round rounds each lane to the nearest integer, halfway cases away from
// zero.
func Round[T Floats](v Vec[T]) Vec[T] {
	return roundWith(v, math.Round)
}

// RoundToEven rounds each lane to the nearest integer, halfway cases to
// even.
func RoundToEven[T Floats](v Vec[T]) Vec[T] {
	return roundWith(v, math.RoundToEven)
}

// Trunc truncates each lane toward zero.
func Trunc[T Floats](v Vec[T]) Vec[T] {
	return roundWith(v, math.Trunc)
}

// Ceil rounds each lane toward positive infinity.
func Ceil[T Floats](v Vec[T]) Vec[T] {
	return roundWith(v, math.Ceil)
}

// Floor rounds each lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	return roundWith(v, math.Floor)
}

// BitCast reinterprets the bit pattern of every lane as U.
// U and T must have the same size; BitCast panics otherwise.
func BitCast[U Lanes, T Lanes](v Vec[T]) Vec[U] {
	if ieee.WidthMask[U]() != ieee.WidthMask[T]() {
		panic("hwy: BitCast between lane types of different size")
	}
	out := newVec[U](v.b, len(v.data))
	for i, x := range v.data {
		out.data[i] = ieee.FromBits[U](ieee.ToBits(x))
	}
	return out
}

// BitCastToInt reinterprets float lanes as the signed integer of the same
// width.
func BitCastToInt[I int32 | int64, T Floats](v Vec[T]) Vec[I] {
	return BitCast[I](v)
}

// BitCastToFloat reinterprets signed integer lanes as the float of the same
// width.
func BitCastToFloat[F Floats, I int32 | int64](v Vec[I]) Vec[F] {
	return BitCast[F](v)
}

// BitCastF32ToI32 reinterprets float32 bits as int32.
func BitCastF32ToI32(v Vec[float32]) Vec[int32] {
	return BitCast[int32](v)
}

// BitCastI32ToF32 reinterprets int32 bits as float32.
func BitCastI32ToF32(v Vec[int32]) Vec[float32] {
	return BitCast[float32](v)
}

// BitCastF64ToI64 reinterprets float64 bits as int64.
func BitCastF64ToI64(v Vec[float64]) Vec[int64] {
	return BitCast[int64](v)
}

// BitCastI64ToF64 reinterprets int64 bits as float64.
func BitCastI64ToF64(v Vec[int64]) Vec[float64] {
	return BitCast[float64](v)
}

// AsInt32 is an alias of BitCastF32ToI32.
func AsInt32(v Vec[float32]) Vec[int32] { return BitCastF32ToI32(v) }

// AsFloat32 is an alias of BitCastI32ToF32.
func AsFloat32(v Vec[int32]) Vec[float32] { return BitCastI32ToF32(v) }

// AsInt64 is an alias of BitCastF64ToI64.
func AsInt64(v Vec[float64]) Vec[int64] { return BitCastF64ToI64(v) }

// AsFloat64 is an alias of BitCastI64ToF64.
func AsFloat64(v Vec[int64]) Vec[float64] { return BitCastI64ToF64(v) }

// PromoteF32ToF64 widens float32 lanes to float64, keeping the lane count
// and the backend. Every float32 is exact in float64.
func PromoteF32ToF64(v Vec[float32]) Vec[float64] {
	return ConvertTo[float64](v)
}

// DemoteF64ToF32 rounds float64 lanes to float32.
func DemoteF64ToF32(v Vec[float64]) Vec[float32] {
	return ConvertTo[float32](v)
}
