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

package cplx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	inf = math.Inf(1)
	nan = math.NaN()
)

// same reports whether a and b are equal or both NaN.
func same(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func TestComplexConversions(t *testing.T) {
	c := New(1.5, -2.0)
	assert.Equal(t, 1.5, c.Real())
	assert.Equal(t, -2.0, c.Imag())
	assert.Equal(t, complex(1.5, -2), c.Complex128())

	r := FromReal[float32](3)
	assert.Equal(t, float32(3), r.Real())
	assert.Zero(t, r.Imag())

	f := FromComplex128[float32](complex(1.1, 2.2))
	assert.Equal(t, float32(1.1), f.Real())
	assert.Equal(t, float32(2.2), f.Imag())

	assert.True(t, New(nan, 0).IsNaN())
	assert.True(t, New(0, nan).IsNaN())
	assert.False(t, New(inf, 0).IsNaN())
}

func TestMulScalar(t *testing.T) {
	tests := []struct {
		name       string
		x, y, want Complex[float64]
	}{
		{"exact", New(1.0, 2), New(3.0, 4), New(-5.0, 10)},
		{"inf times real", New(inf, nan), New(1.0, 0), New(inf, nan)},
		{"inf times inf", New(inf, inf), New(inf, 0), New(inf, inf)},
		{"nan times inf", New(nan, 1), New(inf, 0), New(nan, inf)},
		{"nan stays nan", New(nan, nan), New(1.0, 2), New(nan, nan)},
		{"one nan part kept", New(inf, 0), New(0.0, 1), New(nan, inf)},
	}
	for _, tt := range tests {
		got := MulScalar(tt.x, tt.y)
		if !same(got.Real(), tt.want.Real()) || !same(got.Imag(), tt.want.Imag()) {
			t.Errorf("%s: MulScalar(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDivScalar(t *testing.T) {
	negZero := math.Copysign(0, -1)
	tests := []struct {
		name       string
		x, y, want Complex[float64]
	}{
		{"by zero", New(1.0, 0), New(0.0, 0), New(inf, nan)},
		{"negative by zero", New(-1.0, 0), New(0.0, 0), New(-inf, nan)},
		{"by negative zero", New(1.0, 0), New(negZero, 0), New(-inf, nan)},
		{"finite by infinite", New(1.0, 1), New(inf, inf), New(0.0, 0)},
		{"infinite by finite", New(inf, 0), New(1.0, 1), New(inf, -inf)},
		{"infinite parts", New(inf, inf), New(1.0, 0), New(inf, inf)},
		{"ordinary", New(3.0, 4), New(1.0, 2), New(2.2, -0.4)},
		{"nan", New(nan, nan), New(1.0, 0), New(nan, nan)},
	}
	for _, tt := range tests {
		got := DivScalar(tt.x, tt.y)
		ok := same(got.Real(), tt.want.Real()) && same(got.Imag(), tt.want.Imag())
		if tt.name == "ordinary" {
			ok = math.Abs(got.Real()-2.2) < 1e-15 && math.Abs(got.Imag()+0.4) < 1e-15
		}
		if !ok {
			t.Errorf("%s: DivScalar(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDivScalarScaling(t *testing.T) {
	got := DivScalar(New(1e300, 1e300), New(1e300, 1e300))
	assert.InDelta(t, 1, got.Real(), 1e-15)
	assert.InDelta(t, 0, got.Imag(), 1e-15)

	got = DivScalar(New(1e-300, 2e-300), New(3e-300, 4e-300))
	assert.InDelta(t, 0.44, got.Real(), 1e-15)
	assert.InDelta(t, 0.08, got.Imag(), 1e-15)

	got32 := DivScalar(New[float32](1e30, 1e30), New[float32](1e30, 1e30))
	assert.InDelta(t, 1, got32.Real(), 1e-6)
	assert.InDelta(t, 0, got32.Imag(), 1e-6)
}

func TestRealDivScalar(t *testing.T) {
	got := RealDivScalar(2.0, New(1.0, 1))
	assert.InDelta(t, 1, got.Real(), 1e-15)
	assert.InDelta(t, -1, got.Imag(), 1e-15)

	got = RealDivScalar(1.0, New(0.0, 0))
	assert.True(t, math.IsInf(got.Real(), 1))
	assert.True(t, math.IsNaN(got.Imag()))

	got = RealDivScalar(1.0, New(inf, 0))
	assert.Zero(t, got.Real())
	assert.Zero(t, got.Imag())

	got = RealDivScalar(inf, New(1.0, 1))
	assert.True(t, math.IsInf(got.Real(), 1))
	assert.True(t, math.IsInf(got.Imag(), -1))
}
