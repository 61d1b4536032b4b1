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
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/simd/c128"

	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/hwy/contrib/workerpool"
)

func TestMulSlicesAgainstSIMDReference(t *testing.T) {
	r := rand.New(rand.NewPCG(10, 11))
	for _, n := range []int{0, 1, 7, 64, 1001} {
		xs := randomComplex(r, n, 300)
		ys := randomComplex(r, n, 300)
		want := make([]complex128, n)
		got := make([]complex128, n)
		c128.Mul(want, xs, ys)
		MulSlices(got, xs, ys)
		for i := range got {
			tol := 4 * eps * cmplx.Abs(xs[i]) * cmplx.Abs(ys[i])
			require.LessOrEqual(t, cmplx.Abs(got[i]-want[i]), tol, "n=%d i=%d", n, i)
		}
	}
}

func TestDivSlices(t *testing.T) {
	r := rand.New(rand.NewPCG(12, 13))
	xs := randomComplex(r, 13, 300)
	ys := randomComplex(r, 13, 300)
	ys[4] = 0
	got := make([]complex128, len(xs))
	DivSlices(got, xs, ys)
	for i := range got {
		if i == 4 {
			assert.True(t, cmplx.IsInf(got[i]) || cmplx.IsNaN(got[i]))
			continue
		}
		want := xs[i] / ys[i]
		tol := 16 * eps * cmplx.Abs(xs[i]) / cmplx.Abs(ys[i])
		require.LessOrEqual(t, cmplx.Abs(got[i]-want), tol, "i=%d", i)
	}
}

func TestSliceLengths(t *testing.T) {
	xs := []complex128{1, 2, 3, 4, 5}
	ys := []complex128{1i, 1i, 1i}
	dst := []complex128{9, 9, 9, 9, 9}
	MulSlices(dst, xs, ys)
	assert.Equal(t, []complex128{1i, 2i, 3i, 9, 9}, dst)
}

func TestParallelSlicesMatchSequential(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	r := rand.New(rand.NewPCG(14, 15))
	xs := randomComplex(r, 4099, 200)
	ys := randomComplex(r, 4099, 200)
	for _, b := range hwy.Backends() {
		want := make([]complex128, len(xs))
		got := make([]complex128, len(xs))
		MulSlicesFor(nil, b, want, xs, ys)
		MulSlicesFor(pool, b, got, xs, ys)
		require.Equal(t, want, got, b.Name())

		DivSlicesFor(nil, b, want, xs, ys)
		DivSlicesFor(pool, b, got, xs, ys)
		require.Equal(t, want, got, b.Name())
	}
}

func TestSlices64(t *testing.T) {
	xs := []complex64{complex(1, 2), complex(3, 4), complex(-1, 0.5)}
	ys := []complex64{complex(3, 4), complex(1, -1), complex(0, 0)}
	mul := make([]complex64, len(xs))
	div := make([]complex64, len(xs))
	MulSlices64(mul, xs, ys)
	DivSlices64(div, xs, ys)
	assert.Equal(t, complex64(complex(-5, 10)), mul[0])
	assert.Equal(t, complex64(complex(7, 1)), mul[1])
	assert.InDelta(t, 0.44, real(div[0]), 1e-6)
	assert.InDelta(t, 0.08, imag(div[0]), 1e-6)
	assert.True(t, cmplx.IsInf(complex128(div[2])))
}

func BenchmarkMulSlices(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 2))
	xs := randomComplex(r, 1024, 20)
	ys := randomComplex(r, 1024, 20)
	dst := make([]complex128, len(xs))
	for b.Loop() {
		MulSlices(dst, xs, ys)
	}
}

func BenchmarkMulSlicesSIMDReference(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 2))
	xs := randomComplex(r, 1024, 20)
	ys := randomComplex(r, 1024, 20)
	dst := make([]complex128, len(xs))
	for b.Loop() {
		c128.Mul(dst, xs, ys)
	}
}

func BenchmarkDivSlices(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 2))
	xs := randomComplex(r, 1024, 20)
	ys := randomComplex(r, 1024, 20)
	dst := make([]complex128, len(xs))
	for b.Loop() {
		DivSlices(dst, xs, ys)
	}
}
