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

// Package cplx provides complex arithmetic over hwy vectors with IEEE 754
// edge-case recovery.
//
// A Vec holds complex lanes as interleaved (re, im) pairs in a real
// hwy.Vec of twice the lane count: lane 2i is the real part and lane 2i+1
// the imaginary part of complex lane i. A complex vector holds half as many
// complex lanes as the backend has real lanes, and at least one.
//
// Mul and Div take a shuffle-based fast path first. Multiplication
// recomputes only the lanes whose result contains a NaN, and division also
// recomputes the lanes whose operands are too small or too large for the
// naive formula. The recomputation follows the C99 Annex G rules, so a
// product or quotient is never (NaN, NaN) when an infinite answer exists:
//
//	x := cplx.SetFor(b, cplx.New(1.0, 0))
//	y := cplx.ZeroFor[float64](b)
//	q := cplx.Div(x, y) // every lane is (+Inf, NaN)
//
// All functions are pure and safe for concurrent use.
package cplx
