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

package algo

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const benchSize = 1024

func TestNamedTransforms(t *testing.T) {
	input := []float64{0.1, 0.5, 1, 2, 2.718, 5, 10, 100, 0.01, 0.25, 3, 4, 6, 7, 8, 9, 1e5}
	tests := []struct {
		name string
		fn   func(in, out []float64)
		ref  func(float64) float64
		ulps uint
	}{
		{"Exp", ExpTransform[float64], math.Exp, 2},
		{"Log", LogTransform[float64], math.Log, 2},
		{"Sin", SinTransform[float64], math.Sin, 2},
		{"Cos", CosTransform[float64], math.Cos, 2},
		{"Tan", TanTransform[float64], math.Tan, 4},
		{"Cot", CotTransform[float64], func(x float64) float64 { return 1 / math.Tan(x) }, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := make([]float64, len(input))
			tt.fn(input, output)
			for i, x := range input {
				want := tt.ref(x)
				if !scalar.EqualWithinULP(output[i], want, tt.ulps) {
					t.Errorf("%sTransform(%v) = %v, want %v", tt.name, x, output[i], want)
				}
			}
		})
	}
}

func TestTransformFloat32(t *testing.T) {
	input := []float32{-10, -1, 0, 0.5, 1, 2, 5, 10, -5, -2, 0.1, 0.9, 3}
	output := make([]float32, len(input))
	ExpTransform(input, output)
	for i := range input {
		expected := float32(math.Exp(float64(input[i])))
		if !relClose32(output[i], expected, 1e-6) {
			t.Errorf("ExpTransform[%d] input=%v: got %v, want %v", i, input[i], output[i], expected)
		}
	}
}

func TestSinCosTransformTail(t *testing.T) {
	input := make([]float64, 11)
	for i := range input {
		input[i] = float64(i) * 0.7
	}
	sin := make([]float64, len(input))
	cos := make([]float64, len(input))
	SinCosTransform(input, sin, cos)
	for i, x := range input {
		if !scalar.EqualWithinULP(sin[i], math.Sin(x), 2) || !scalar.EqualWithinULP(cos[i], math.Cos(x), 2) {
			t.Errorf("SinCos(%v) = (%v, %v), want (%v, %v)", x, sin[i], cos[i], math.Sin(x), math.Cos(x))
		}
	}
}

func relClose32(got, expected, relTol float32) bool {
	if got == expected {
		return true
	}
	diff := math.Abs(float64(got - expected))
	return diff <= float64(relTol)*math.Max(math.Abs(float64(expected)), 1e-30)
}

func BenchmarkExpTransform(b *testing.B) {
	input := make([]float64, benchSize)
	output := make([]float64, benchSize)
	for i := range input {
		input[i] = float64(i) / float64(benchSize) * 10
	}
	for b.Loop() {
		ExpTransform(input, output)
	}
}

func BenchmarkExpTransform_Stdlib(b *testing.B) {
	input := make([]float64, benchSize)
	output := make([]float64, benchSize)
	for i := range input {
		input[i] = float64(i) / float64(benchSize) * 10
	}
	for b.Loop() {
		for i, x := range input {
			output[i] = math.Exp(x)
		}
	}
}

func BenchmarkSinTransform(b *testing.B) {
	input := make([]float64, benchSize)
	output := make([]float64, benchSize)
	for i := range input {
		input[i] = float64(i) * 0.01
	}
	for b.Loop() {
		SinTransform(input, output)
	}
}
