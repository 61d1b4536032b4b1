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
	"github.com/ajroetker/go-simdmath/hwy"
	"github.com/ajroetker/go-simdmath/hwy/contrib/math"
)

// ExpTransform applies exp(x) to each element.
// Caller must ensure len(output) >= len(input).
func ExpTransform[T hwy.Floats](input, output []T) {
	Apply(input, output, math.Exp[T])
}

// LogTransform applies ln(x) to each element.
func LogTransform[T hwy.Floats](input, output []T) {
	Apply(input, output, math.Log[T])
}

// SinTransform applies sin(x) to each element.
func SinTransform[T hwy.Floats](input, output []T) {
	Apply(input, output, math.Sin[T])
}

// CosTransform applies cos(x) to each element.
func CosTransform[T hwy.Floats](input, output []T) {
	Apply(input, output, math.Cos[T])
}

// TanTransform applies tan(x) to each element.
func TanTransform[T hwy.Floats](input, output []T) {
	Apply(input, output, math.Tan[T])
}

// CotTransform applies cot(x) to each element.
func CotTransform[T hwy.Floats](input, output []T) {
	Apply(input, output, math.Cot[T])
}

// SinCosTransform writes sin(x) and cos(x) of each element, sharing one
// range reduction per vector.
func SinCosTransform[T hwy.Floats](input, sin, cos []T) {
	n := min(len(input), len(sin), len(cos))
	b := hwy.CurrentBackend()
	lanes := hwy.LanesFor[T](b)
	buf := make([]T, lanes)
	for i := 0; i < n; i += lanes {
		m := min(lanes, n-i)
		clear(buf)
		copy(buf, input[i:i+m])
		s, c := math.SinCos(hwy.LoadFor(b, buf))
		hwy.Store(s, sin[i:i+m])
		hwy.Store(c, cos[i:i+m])
	}
}
