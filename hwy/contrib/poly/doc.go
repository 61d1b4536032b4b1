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

// Package poly evaluates polynomials over hwy vectors.
//
// Coefficients are given in ascending order: c[0] + c[1]*x + ... +
// c[n-1]*x^(n-1). Every evaluator works lane-wise on a vector argument and
// broadcasts the coefficients to its backend; the ...Scalar wrappers
// evaluate a single float on a one-lane Scalar backend vector.
//
// Horner and Estrin use hwy.MulAdd, so their last bits depend on whether the
// backend has FMA. The compensated evaluators return a twofold result whose
// error is of order cond(p, x) * u^2 instead of cond(p, x) * u, u being the
// unit roundoff, and CompensatedHornerAndError certifies when the rounded
// result is faithful.
//
// References:
//   - N. J. Higham, Accuracy and Stability of Numerical Algorithms, 2002,
//     chapter 5 (running error bound).
//   - P. Langlois, N. Louvet, Faithful polynomial evaluation with
//     compensated Horner algorithm, 2006.
package poly
