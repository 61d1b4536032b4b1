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

package math

// =============================================================================
// Constants for mathematical functions
// =============================================================================

// Float64 constants for Exp. The argument is split as
// x = n*ln2 + m*ln2/256 + r with |r| <= ln2/512; expLn2TickHi_f64 has enough
// trailing zero bits that k*expLn2TickHi_f64 is exact for every k the
// clamped argument can produce.
var (
	expInvLn2Tick_f64 float64 = 369.3299304675746
	expLn2TickHi_f64  float64 = 0.00270760617331689
	expLn2TickLo_f64  float64 = 7.453964567463233e-13

	// Beyond ±expLimit_f64 the result is already Inf or 0.
	expLimit_f64 float64 = 750

	// e^r - 1 = r*P(r) on |r| <= ln2/512.
	expPoly_f64 = []float64{
		9.999999999999965009454977779701013e-01,
		5.000000000000029158791378197294776e-01,
		1.666666819398565427110017699653142e-01,
		4.166666666666664815314859891569042e-02,
	}
)

// Float32 constants for Exp. No table: x = n*ln2 + r with |r| <= ln2/2.
var (
	expLn2Hi_f32  float32 = 0.693359375
	expLn2Lo_f32  float32 = -2.12194440e-4
	expInvLn2_f32 float32 = 1.44269504088896341

	expLimit_f32 float32 = 120

	expPoly_f32 = []float32{
		1.000000010627969261079092395130339e+00,
		4.999999812480395306960342830781873e-01,
		1.666650621954377493093332051884339e-01,
		4.166713620577822464861187854099253e-02,
		8.369068563162737202515194738801366e-03,
		1.388887298908941589713690426191312e-03,
	}
)

// Float64 constants for Log
var (
	logLn2Hi_f64 float64 = 6.93147180369123816490e-01
	logLn2Lo_f64 float64 = 1.90821492927058770002e-10
	logSqrt2_f64 float64 = 1.41421356237309504880

	// R(s) = z*Odd(w) + w*Even(w), z = s^2, w = z^2.
	logOdd_f64 = []float64{
		6.666666666666735130e-01,
		2.857142874366239149e-01,
		1.818357216161805012e-01,
		1.479819860511658591e-01,
	}
	logEven_f64 = []float64{
		3.999999999940941908e-01,
		2.222219843214978396e-01,
		1.531383769920937332e-01,
	}
)

// Float32 constants for Log
var (
	logLn2Hi_f32 float32 = 6.9313812256e-01
	logLn2Lo_f32 float32 = 9.0580006145e-06
	logSqrt2_f32 float32 = 1.41421356237309504880

	logOdd_f32  = []float32{0xaaaaaa.0p-24, 0x91e9ee.0p-25}
	logEven_f32 = []float32{0xccce13.0p-25, 0xf89e26.0p-26}
)

// Float64 constants for Sin and Cos on |r| <= π/4.
var (
	// sin(r) = r + r^3*S(r^2)
	sinPoly_f64 = []float64{
		-1.66666666666666324348e-01,
		8.33333333332248946124e-03,
		-1.98412698298579493134e-04,
		2.75573137070700676789e-06,
		-2.50507602534068634195e-08,
		1.58969099521155010221e-10,
	}

	// cos(r) = 1 - r^2/2 + r^4*C(r^2)
	cosPoly_f64 = []float64{
		4.16666666666666019037e-02,
		-1.38888888888741095749e-03,
		2.48015872894767294178e-05,
		-2.75573143513906633035e-07,
		2.08757232129817482790e-09,
		-1.13596475577881948265e-11,
	}
)

// Float64 constants for Tan on |r| <= π/4: tan(r) = r + r*z*P(z)/Q(z),
// z = r^2.
var (
	tanP_f64 = []float64{
		-1.79565251976484877988e7,
		1.15351664838587416140e6,
		-1.30936939181383777646e4,
	}
	tanQ_f64 = []float64{
		-5.38695755929454629881e7,
		2.50083801823357915839e7,
		-1.32089234440210967447e6,
		1.36812963470692954678e4,
		1.0,
	}
)
