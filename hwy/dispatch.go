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
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the instruction set detected on this CPU.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions. Vectors are still
	// 256-bit wide; there is no 512-bit backend.
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected instruction set for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentBackend is the backend used by Load, Set and Zero.
// Set by init() in dispatch_*.go files, never changed afterwards.
var currentBackend Backend

// CurrentLevel returns the instruction set detected at init.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentBackend returns the backend selected at init.
func CurrentBackend() Backend {
	return currentBackend
}

// CurrentWidth returns the register width in bytes of the current backend.
// For example: 16 for SSE2/NEON, 32 for AVX2, 0 for the scalar backend.
func CurrentWidth() int {
	return currentBackend.Width()
}

// CurrentName returns the name of the current backend, e.g. "w256-fma".
func CurrentName() string {
	return currentBackend.Name()
}

// HasFMA reports whether the current backend has a fused multiply-add.
func HasFMA() bool {
	return currentBackend.HasFMA()
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar backend is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	return envFlag("HWY_NO_SIMD")
}

// NoFMAEnv checks if the HWY_NO_FMA environment variable is set.
// When set, the selected backend never fuses multiply-adds.
func NoFMAEnv() bool {
	return envFlag("HWY_NO_FMA")
}

func envFlag(key string) bool {
	val := os.Getenv(key)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// selectBackend applies the environment overrides to the detected backend.
// HWY_BACKEND names any backend explicitly; an unknown name is ignored.
// A backend claiming FMA is never chosen on hardware without it.
func selectBackend(detected Backend) Backend {
	b := detected
	if name := os.Getenv("HWY_BACKEND"); name != "" {
		if override, ok := ParseBackend(name); ok {
			b = override.WithFMA(override.HasFMA() && detected.HasFMA())
		}
	}
	if NoSimdEnv() {
		b = Scalar.WithFMA(b.HasFMA())
	}
	if NoFMAEnv() {
		b = b.WithFMA(false)
	}
	return b
}

// MaxLanes returns the number of lanes for type T on the current backend.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	if unsafe.Sizeof(dummy) == 0 {
		return 0
	}
	return LanesFor[T](currentBackend)
}
