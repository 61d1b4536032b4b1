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

package ieee

import "unsafe"

// ToBits reinterprets a lane value of 1, 2, 4 or 8 bytes as an unsigned
// integer of the same width, zero-extended to 64 bits.
func ToBits[T any](x T) uint64 {
	switch unsafe.Sizeof(x) {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&x)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&x)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&x)))
	default:
		return *(*uint64)(unsafe.Pointer(&x))
	}
}

// FromBits is the inverse of ToBits; bits above the width of T are dropped.
func FromBits[T any](bits uint64) T {
	var x T
	switch unsafe.Sizeof(x) {
	case 1:
		*(*uint8)(unsafe.Pointer(&x)) = uint8(bits)
	case 2:
		*(*uint16)(unsafe.Pointer(&x)) = uint16(bits)
	case 4:
		*(*uint32)(unsafe.Pointer(&x)) = uint32(bits)
	default:
		*(*uint64)(unsafe.Pointer(&x)) = bits
	}
	return x
}

// WidthMask is the all-ones pattern for a value of T.
func WidthMask[T any]() uint64 {
	var x T
	if unsafe.Sizeof(x) == 8 {
		return ^uint64(0)
	}
	return 1<<(8*uint(unsafe.Sizeof(x))) - 1
}

// SignMaskOf returns the pattern of the most significant bit of T.
func SignMaskOf[T any]() uint64 {
	var x T
	return 1 << (8*uint(unsafe.Sizeof(x)) - 1)
}
