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

// Package twofold provides error-free transformations and double-word
// ("twofold") arithmetic for float32 and float64, in scalar form and over
// hwy vectors.
//
// A Twofold value v represents the unevaluated sum v.Value + v.Error. Every
// error-free transform in this package returns a pair whose sum equals the
// exact result of the operation, with |Error| no larger than half an ulp of
// Value.
//
// The accurate fused multiply-add family (FMA, FMS, FNMA, FNMS) is correctly
// rounded on every backend: it uses the hardware instruction when the backend
// has one and FMADekker otherwise. Compare with hwy.MulAdd, which is fused on
// FMA backends only.
//
// All functions are pure and safe for concurrent use.
package twofold
