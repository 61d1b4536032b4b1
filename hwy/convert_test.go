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

func TestRounding(t *testing.T) {
	v := LoadFor(Width256, []float64{2.5, -2.5, 1.4, -1.6})
	assert.Equal(t, []float64{3, -3, 1, -2}, Round(v).Data())
	assert.Equal(t, []float64{2, -2, 1, -2}, RoundToEven(v).Data())
	assert.Equal(t, []float64{2, -2, 1, -1}, Trunc(v).Data())
	assert.Equal(t, []float64{3, -2, 2, -1}, Ceil(v).Data())
	assert.Equal(t, []float64{2, -3, 1, -2}, Floor(v).Data())
}

func TestRoundingFloat32(t *testing.T) {
	v := LoadFor(Width128, []float32{0.5, 1.5, -0.5, 8388607.5})
	assert.Equal(t, []float32{0, 2, 0, 8388608}, RoundToEven(v).Data())
	assert.True(t, math.Signbit(float64(RoundToEven(v).data[2])))
}

func TestConvert(t *testing.T) {
	v := LoadFor(Width256, []float64{1.9, -1.9, 3, -4})
	i := ConvertToInt64(v)
	assert.Equal(t, []int64{1, -1, 3, -4}, i.Data())
	assert.Equal(t, Width256, i.Backend())
	assert.Equal(t, []float64{1, -1, 3, -4}, ConvertToFloat64(i).Data())

	f := LoadFor(Width128, []float32{7.5, -2.5, 0, 100})
	assert.Equal(t, []int32{7, -2, 0, 100}, ConvertToInt32(f).Data())
	assert.Equal(t, []float32{7, -2, 0, 100}, ConvertToFloat32(ConvertToInt32(f)).Data())
}

func TestBitCastRoundTrip(t *testing.T) {
	v := LoadFor(Width128, []float64{1, math.Copysign(0, -1)})
	bits := AsInt64(v)
	assert.Equal(t, int64(math.Float64bits(1)), bits.data[0])
	assert.Equal(t, int64(math.MinInt64), bits.data[1])
	assert.Equal(t, v.Data(), AsFloat64(bits).Data())

	f := LoadFor(Width128, []float32{1, 2, 3, 4})
	assert.Equal(t, f.Data(), AsFloat32(AsInt32(f)).Data())
	assert.Panics(t, func() { BitCast[int32](v) })
}

func TestPromoteDemote(t *testing.T) {
	f := LoadFor(Width256, []float32{1.1, 2, 3, 4, 5, 6, 7, 8})
	d := PromoteF32ToF64(f)
	assert.Equal(t, 8, d.NumLanes())
	assert.Equal(t, float64(float32(1.1)), d.data[0])
	assert.Equal(t, f.Data(), DemoteF64ToF32(d).Data())
}

func TestSameWidthConversions(t *testing.T) {
	v := LoadFor(Width128, []float64{2.75, -3.5})
	assert.Equal(t, []int64{2, -3}, ConvertToInt[int64](v).Data())
	assert.Equal(t, []float64{2, -3}, ConvertToFloat[float64](ConvertToInt[int64](v)).Data())
	assert.Panics(t, func() { ConvertToInt[int32](v) })

	bits := BitCastToInt[int64](v)
	assert.Equal(t, int64(math.Float64bits(2.75)), bits.Data()[0])
	assert.Equal(t, v.Data(), BitCastToFloat[float64](bits).Data())

	m := LessThan(v, ZeroFor[float64](Width128))
	assert.Equal(t, []int64{0, -1}, BitCast[int64](VecFromMask(m)).Data())
}
