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

// Package reduce implements Payne–Hanek argument reduction for periodic
// functions.
//
// For a finite x it computes a quadrant k in [0, 3] and a remainder r such
// that x = (4j + k)·π/2 + r for some integer j and |r| <= π/4, with r
// returned as a twofold value accurate far beyond working precision. The
// reduction is valid over the whole finite range, including arguments near
// math.MaxFloat64 where the naive x - round(x·2/π)·π/2 has no correct bit.
//
// The constant 2/π is kept as a 1280-bit table. Only the 192 bits whose
// weight is relevant to the exponent of x are used, as eight 24-bit limbs:
// each product of a limb with the 53-bit significand of x is exact as a
// twofold value, integer parts are reduced modulo 4 on the fly and the
// fractions are summed in an exact floating-point expansion.
package reduce
