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

func TestReverse(t *testing.T) {
	v := LoadFor(Width256, []float64{1, 2, 3, 4})
	assert.Equal(t, []float64{4, 3, 2, 1}, Reverse(v).Data())
	assert.Equal(t, []float64{3, 4, 1, 2}, Reverse2(v).Data())
}

func TestLaneAccess(t *testing.T) {
	v := LoadFor(Width128, []int32{1, 2, 3, 4})
	assert.Equal(t, int32(3), GetLane(v, 2))
	assert.Equal(t, int32(0), GetLane(v, 9))

	w := InsertLane(v, 1, 20)
	assert.Equal(t, []int32{1, 20, 3, 4}, w.Data())
	assert.Equal(t, []int32{1, 2, 3, 4}, v.Data(), "InsertLane must not modify its input")
}

func TestPairShuffles(t *testing.T) {
	a := LoadFor(Width256, []float64{1, 2, 3, 4})
	b := LoadFor(Width256, []float64{5, 6, 7, 8})
	assert.Equal(t, []float64{1, 1, 3, 3}, DupEven(a).Data())
	assert.Equal(t, []float64{2, 2, 4, 4}, DupOdd(a).Data())
	assert.Equal(t, []float64{2, 1, 4, 3}, SwapAdjacent(a).Data())
	assert.Equal(t, []float64{5, 2, 7, 4}, OddEven(a, b).Data())
}
