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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterleaved2RoundTrip(t *testing.T) {
	src := []float64{1, 10, 2, 20, 3, 30, 4, 40}
	re, im := LoadInterleaved2For(Width256, src)
	assert.Equal(t, []float64{1, 2, 3, 4}, re.Data())
	assert.Equal(t, []float64{10, 20, 30, 40}, im.Data())

	dst := make([]float64, len(src))
	StoreInterleaved2(re, im, dst)
	assert.Equal(t, src, dst)
}

func TestFromSliceKeepsLength(t *testing.T) {
	v := FromSlice(Scalar, []float64{1, 2})
	assert.Equal(t, 2, v.NumLanes())
	assert.Equal(t, Scalar, v.Backend())
}

func TestMaskStore(t *testing.T) {
	v := LoadFor(Width128, []int32{1, 2, 3, 4})
	dst := []int32{9, 9, 9, 9}
	MaskStore(GreaterThan(v, SetFor(Width128, int32(2))), v, dst)
	assert.Equal(t, []int32{9, 9, 3, 4}, dst)
}
