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

package math_test

import (
	"testing"

	"github.com/ajroetker/go-simdmath/hwy"
	hwymath "github.com/ajroetker/go-simdmath/hwy/contrib/math"
)

// ============================================================================
// Vector kernels on the current backend
// ============================================================================

func benchKernel(b *testing.B, fn func(hwy.Vec[float64]) hwy.Vec[float64], scale float64) {
	size := 1024
	input := make([]float64, size)
	output := make([]float64, size)
	for i := range input {
		input[i] = float64(i%200-100) * scale
	}
	n := hwy.MaxLanes[float64]()
	b.ReportAllocs()
	for b.Loop() {
		for i := 0; i+n <= size; i += n {
			hwy.Store(fn(hwy.Load(input[i:])), output[i:])
		}
	}
}

func BenchmarkExp(b *testing.B) { benchKernel(b, hwymath.Exp[float64], 0.1) }
func BenchmarkSin(b *testing.B) { benchKernel(b, hwymath.Sin[float64], 0.05) }
func BenchmarkTan(b *testing.B) { benchKernel(b, hwymath.Tan[float64], 0.05) }

func BenchmarkLog(b *testing.B) {
	benchKernel(b, func(v hwy.Vec[float64]) hwy.Vec[float64] {
		return hwymath.Log(hwy.Abs(v))
	}, 0.5)
}
func BenchmarkSinLargeArguments(b *testing.B) {
	benchKernel(b, hwymath.Sin[float64], 1e15)
}

func BenchmarkSinCos(b *testing.B) {
	benchKernel(b, func(v hwy.Vec[float64]) hwy.Vec[float64] {
		s, c := hwymath.SinCos(v)
		return hwy.Add(s, c)
	}, 0.05)
}

func BenchmarkExpFloat32(b *testing.B) {
	size := 1024
	input := make([]float32, size)
	output := make([]float32, size)
	for i := range input {
		input[i] = float32(i%200-100) * 0.1
	}
	n := hwy.MaxLanes[float32]()
	b.ReportAllocs()
	for b.Loop() {
		for i := 0; i+n <= size; i += n {
			hwy.Store(hwymath.Exp(hwy.Load(input[i:])), output[i:])
		}
	}
}
