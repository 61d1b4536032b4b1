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

// Floats mirrors hwy.Floats; ieee sits below hwy and cannot import it.
type Floats interface {
	~float32 | ~float64
}

// Format describes the bit layout of one binary floating-point format.
type Format struct {
	// Bits is the total storage width.
	Bits int
	// MantBits is the number of explicitly stored fraction bits.
	MantBits int
	// ExpBits is the width of the biased exponent field.
	ExpBits int
	// Bias is the exponent bias.
	Bias int

	SignMask uint64
	ExpMask  uint64
	MantMask uint64
}

// Binary64 is the float64 layout: 1 sign, 11 exponent, 52 fraction bits.
var Binary64 = Format{
	Bits:     64,
	MantBits: 52,
	ExpBits:  11,
	Bias:     1023,
	SignMask: 1 << 63,
	ExpMask:  0x7ff << 52,
	MantMask: 1<<52 - 1,
}

// Binary32 is the float32 layout: 1 sign, 8 exponent, 23 fraction bits.
var Binary32 = Format{
	Bits:     32,
	MantBits: 23,
	ExpBits:  8,
	Bias:     127,
	SignMask: 1 << 31,
	ExpMask:  0xff << 23,
	MantMask: 1<<23 - 1,
}

// FormatOf returns the layout of T.
func FormatOf[T Floats]() Format {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return Binary32
	}
	return Binary64
}

// MaxExp is the largest unbiased exponent of a finite value.
func (f Format) MaxExp() int { return f.Bias }

// MinExp is the unbiased exponent of the smallest normal value.
func (f Format) MinExp() int { return 1 - f.Bias }

// Precision is the significand width including the implicit bit.
func (f Format) Precision() int { return f.MantBits + 1 }

// AllOnes is the bit pattern with every storage bit set.
func (f Format) AllOnes() uint64 {
	if f.Bits == 64 {
		return ^uint64(0)
	}
	return 1<<uint(f.Bits) - 1
}

// Fields splits a bit pattern into its sign bit, biased exponent and
// stored fraction.
func (f Format) Fields(bits uint64) (sign uint64, exp int, frac uint64) {
	sign = bits >> uint(f.Bits-1) & 1
	exp = int(bits & f.ExpMask >> uint(f.MantBits))
	frac = bits & f.MantMask
	return sign, exp, frac
}

// Compose builds a bit pattern from its fields. exp is the biased exponent
// and is masked to the field width.
func (f Format) Compose(sign uint64, exp int, frac uint64) uint64 {
	return sign<<uint(f.Bits-1) | uint64(exp)<<uint(f.MantBits)&f.ExpMask | frac&f.MantMask
}
