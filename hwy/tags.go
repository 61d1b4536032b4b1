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
	"strings"
	"unsafe"
)

// Tag represents a vector size tag that determines how many lanes
// are used in vector operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit).
	// The scalar backend reports 0: it always holds exactly one lane.
	Width() int

	// Name returns a human-readable name for this tag ("w128-fma", ...).
	Name() string
}

// Backend is one vector strategy from the closed set
// {Scalar, Width128, Width256} x {FMA, NoFMA}.
//
// The zero value is the Scalar backend without FMA.
type Backend struct {
	width int
	fma   bool
}

// The six backends. Every algorithm in this module runs on all of them.
var (
	Scalar       = Backend{}
	ScalarFMA    = Backend{fma: true}
	Width128     = Backend{width: 16}
	Width128FMA  = Backend{width: 16, fma: true}
	Width256     = Backend{width: 32}
	Width256FMA  = Backend{width: 32, fma: true}
	allBackends  = []Backend{Scalar, ScalarFMA, Width128, Width128FMA, Width256, Width256FMA}
	backendNames = map[Backend]string{
		Scalar:      "scalar",
		ScalarFMA:   "scalar-fma",
		Width128:    "w128",
		Width128FMA: "w128-fma",
		Width256:    "w256",
		Width256FMA: "w256-fma",
	}
)

// Backends returns every backend, scalar first.
func Backends() []Backend {
	out := make([]Backend, len(allBackends))
	copy(out, allBackends)
	return out
}

// ParseBackend parses a backend name as returned by Name.
func ParseBackend(s string) (Backend, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for b, name := range backendNames {
		if name == s {
			return b, true
		}
	}
	return Scalar, false
}

// Width returns the register width in bytes, 0 for the scalar backend.
func (b Backend) Width() int {
	return b.width
}

// Name returns the backend name.
func (b Backend) Name() string {
	return backendNames[b]
}

// String implements fmt.Stringer.
func (b Backend) String() string {
	return b.Name()
}

// HasFMA reports whether MulAdd and friends are fused on this backend.
func (b Backend) HasFMA() bool {
	return b.fma
}

// IsScalar reports whether vectors of this backend hold a single lane.
func (b Backend) IsScalar() bool {
	return b.width == 0
}

// WithFMA returns the same width with the FMA capability set to fma.
func (b Backend) WithFMA(fma bool) Backend {
	b.fma = fma
	return b
}

// LanesFor returns the number of lanes of T in one vector of backend b.
func LanesFor[T Lanes](b Backend) int {
	if b.width == 0 {
		return 1
	}
	var dummy T
	return max(1, b.width/int(unsafe.Sizeof(dummy)))
}

// ScalableTag adapts to the backend selected at runtime.
// This is the recommended tag for most use cases.
//
// Usage:
//
//	tag := hwy.ScalableTag[float32]{}
//	maxLanes := tag.MaxLanes()
type ScalableTag[T Lanes] struct{}

// Width returns the current runtime register width in bytes.
func (ScalableTag[T]) Width() int {
	return currentBackend.Width()
}

// Name returns the current runtime backend name.
func (ScalableTag[T]) Name() string {
	return currentBackend.Name()
}

// MaxLanes returns the number of lanes for type T on the current backend.
func (t ScalableTag[T]) MaxLanes() int {
	return MaxLanes[T]()
}
