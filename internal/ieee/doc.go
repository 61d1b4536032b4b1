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

// Package ieee decodes and rebuilds IEEE 754 binary32 and binary64 values.
//
// All bit-level access to floating-point numbers in this module goes through
// this package: sign, exponent and mantissa layouts, reinterpretation between
// a float and its same-width integer, and a few per-type constants used by the
// error-free transforms (unit roundoff, the Veltkamp splitter).
package ieee
