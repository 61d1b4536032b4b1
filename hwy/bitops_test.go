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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitwiseOnFloats(t *testing.T) {
	v := LoadFor(Width128, []float64{-2.5, 3})
	sign := SignBitFor[float64](Width128)

	assert.Equal(t, []float64{2.5, 3}, AndNot(sign, v).Data())
	assert.Equal(t, []float64{2.5, -3}, Xor(v, sign).Data())
	assert.Equal(t, []float64{-2.5, -3}, Or(v, sign).Data())

	base := SignBitBase(v)
	assert.True(t, math.Signbit(base.data[0]))
	assert.False(t, math.Signbit(base.data[1]))
	assert.Equal(t, 0.0, base.data[0])
}

func TestNotAndIntegers(t *testing.T) {
	v := LoadFor(Width128, []int32{0, -1, 0x0f0f0f0f, 5})
	assert.Equal(t, []int32{-1, 0, -0x0f0f0f10, -6}, Not(v).Data())
	assert.Equal(t, []int32{0, 0x0f, 0x0f, 5}, And(v, SetFor(Width128, int32(0x0f))).Data())
}

func TestShifts(t *testing.T) {
	v := LoadFor(Width128, []int32{1, -8, math.MinInt32, 0x40000000})
	assert.Equal(t, []int32{4, -32, 0, 0}, ShiftLeft(v, 2).Data())
	assert.Equal(t, []int32{0, 0x3ffffffe, 0x20000000, 0x10000000}, ShiftRight(v, 2).Data())
	assert.Equal(t, []int32{0, -2, math.MinInt32 >> 2, 0x10000000}, ShiftRightArithmetic(v, 2).Data())

	w := LoadFor(Width128, []int64{-16, 16})
	assert.Equal(t, []int64{-4, 4}, ShiftRightArithmetic(w, 2).Data())
	assert.Equal(t, []int64{int64(uint64(math.MaxUint64-15) >> 2), 4}, ShiftRight(w, 2).Data())
}

func TestShiftFloatBits(t *testing.T) {
	// The exponent field of 8.0 is 1026.
	v := SetFor(Scalar, 8.0)
	assert.Equal(t, 1026.0, ConvertTo[float64](BitCast[int64](ShiftRight(v, 52))).data[0])
}
