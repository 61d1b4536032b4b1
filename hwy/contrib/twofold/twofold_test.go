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

package twofold

import (
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exact(x float64) *big.Float {
	return new(big.Float).SetPrec(4000).SetFloat64(x)
}

func exactPair(t Twofold[float64]) *big.Float {
	return exact(t.Value).Add(exact(t.Value), exact(t.Error))
}

// wideFloat64 generates finite float64 values with random sign, significand
// and binary exponents in [-lim, lim].
func wideFloat64(lim int) gopter.Gen {
	return gopter.CombineGens(gen.Float64Range(1, 2), gen.IntRange(-lim, lim), gen.Bool()).
		Map(func(vs []interface{}) float64 {
			x := math.Ldexp(vs[0].(float64), vs[1].(int))
			if vs[2].(bool) {
				return -x
			}
			return x
		})
}

func TestSumTable(t *testing.T) {
	tests := []struct {
		a, b       float64
		value, err float64
	}{
		{1, 0x1p-60, 1, 0x1p-60},
		{0x1p-60, 1, 1, 0x1p-60},
		{1e16, 1, 1e16, 1},
		{0.1, 0.2, 0.30000000000000004, -2.7755575615628914e-17},
		{3, -3, 0, 0},
	}
	for _, tt := range tests {
		got := Sum(tt.a, tt.b)
		assert.Equal(t, tt.value, got.Value, "Sum(%v, %v)", tt.a, tt.b)
		assert.Equal(t, tt.err, got.Error, "Sum(%v, %v)", tt.a, tt.b)
	}
}

func TestSumExact(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("Sum is error free", prop.ForAll(
		func(a, b float64) bool {
			want := exact(a).Add(exact(a), exact(b))
			return exactPair(Sum(a, b)).Cmp(want) == 0
		},
		wideFloat64(900), wideFloat64(900),
	))
	properties.Property("FastSum is error free when |a| >= |b|", prop.ForAll(
		func(a, b float64) bool {
			if math.Abs(a) < math.Abs(b) {
				a, b = b, a
			}
			want := exact(a).Add(exact(a), exact(b))
			s := FastSum(a, b)
			return exactPair(s).Cmp(want) == 0 && math.Abs(s.Error) <= math.Abs(s.Value)*0x1p-53
		},
		wideFloat64(900), wideFloat64(900),
	))
	properties.TestingRun(t)
}

func TestMultExact(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("MultDekker is error free", prop.ForAll(
		func(a, b float64) bool {
			want := exact(a).Mul(exact(a), exact(b))
			return exactPair(MultDekker(a, b)).Cmp(want) == 0
		},
		wideFloat64(450), wideFloat64(450),
	))
	properties.Property("Mult matches MultDekker", prop.ForAll(
		func(a, b float64) bool {
			return Mult(a, b) == MultDekker(a, b)
		},
		wideFloat64(450), wideFloat64(450),
	))
	properties.TestingRun(t)
}

func TestMultDekkerLargeOperands(t *testing.T) {
	// Operands above the split limit would overflow the splitter product
	// without rescaling.
	a := math.Ldexp(1+0x1p-30+0x1p-52, 1000)
	b := math.Ldexp(1+0x1p-41, -100)
	got := MultDekker(a, b)
	assert.Zero(t, exactPair(got).Cmp(exact(a).Mul(exact(a), exact(b))))
	assert.False(t, math.IsNaN(got.Error))
}

func TestMultDekkerFloat32(t *testing.T) {
	a := float32(1 + 0x1p-12 + 0x1p-23)
	b := float32(3 - 0x1p-22)
	got := MultDekker(a, b)
	want := float64(a) * float64(b)
	assert.Equal(t, want, float64(got.Value)+float64(got.Error))
	assert.Equal(t, Mult(a, b), got)
}

func TestFMADekkerMatchesFMA(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("FMADekker is correctly rounded", prop.ForAll(
		func(x, y, z float64) bool {
			return math.Float64bits(FMADekker(x, y, z)) == math.Float64bits(math.FMA(x, y, z))
		},
		wideFloat64(200), wideFloat64(200), wideFloat64(400),
	))
	properties.Property("FMADekker is correctly rounded under cancellation", prop.ForAll(
		func(x, y float64, tweak int) bool {
			z := -(x * y) + float64(tweak)*math.Abs(x*y)*0x1p-53
			return math.Float64bits(FMADekker(x, y, z)) == math.Float64bits(math.FMA(x, y, z))
		},
		wideFloat64(200), wideFloat64(200), gen.IntRange(-4, 4),
	))
	properties.TestingRun(t)
}

func TestFMADekkerCases(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
	}{
		{"simple", 2, 3, 4},
		{"one-sided tie", 1 + 0x1p-27, 1 + 0x1p-27, 0x1p-100},
		{"tie below", 1 + 0x1p-27, 1 - 0x1p-27, -0x1p-110},
		{"exact zero", 3, 5, -15},
		{"negative zero", -0.0, 1, -0.0},
		{"zero product", 0, 1, -0.0},
		{"large", math.Ldexp(1.75, 1000), 1.25, -math.Ldexp(1, 1000)},
		{"tiny addend", 1e100, 1e-100, 1e-300},
		{"infinity", math.Inf(1), 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := math.FMA(tt.x, tt.y, tt.z)
			assert.Equal(t, math.Float64bits(want), math.Float64bits(FMADekker(tt.x, tt.y, tt.z)))
			assert.Equal(t, math.Float64bits(want), math.Float64bits(FMA(tt.x, tt.y, tt.z)))
		})
	}
}

func TestFMADekkerNaNRecovery(t *testing.T) {
	// The product overflows, so the split error term is Inf-Inf.
	got := FMADekker(1e300, 1e10, 1.0)
	assert.True(t, math.IsInf(got, 1))

	got = FMADekker(-1e300, 1e10, 1.0)
	assert.True(t, math.IsInf(got, -1))

	// A NaN that the plain expression produces as well stays NaN.
	assert.True(t, math.IsNaN(FMADekker(math.Inf(1), 0, 1)))
	assert.True(t, math.IsNaN(FMADekker(math.NaN(), 1, 1)))
}

func TestFMADekkerOverflowingProduct(t *testing.T) {
	// x*y rounds to Inf while x*y+z is finite.
	tests := []struct {
		name    string
		x, y, z float64
	}{
		{"product at max", 0x1.fffffffffffffp1000, 0x1p23, -0x1p1023},
		{"past max", 1.5 * 0x1p1000, 0x1p24, -math.MaxFloat64},
		{"cancels to max", math.MaxFloat64, 2, -math.MaxFloat64},
		{"small operand first", 0x1p24, 1.5 * 0x1p1000, -math.MaxFloat64},
		{"negative product", -1.5 * 0x1p1000, 0x1p24, math.MaxFloat64},
		{"still overflows", math.MaxFloat64, 8, -math.MaxFloat64},
		{"just past max", math.MaxFloat64, 1 + 0x1p-52, -math.SmallestNonzeroFloat64},
		// x*y is the tie between MaxFloat64 and 2^1024; z decides it.
		{"tie below overflow", math.Ldexp(0x1p27-1, 485), math.Ldexp(0x1p27+1, 485), -math.SmallestNonzeroFloat64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := math.FMA(tt.x, tt.y, tt.z)
			assert.Equal(t, math.Float64bits(want), math.Float64bits(FMADekker(tt.x, tt.y, tt.z)))
		})
	}
	assert.Equal(t, 0x1p1023+0x1p971, FMADekker(1.5*0x1p1000, 0x1p24, -math.MaxFloat64))
	assert.Equal(t, math.MaxFloat64, FMADekker(math.Ldexp(0x1p27-1, 485), math.Ldexp(0x1p27+1, 485), -math.SmallestNonzeroFloat64))

	properties := gopter.NewProperties(nil)
	properties.Property("FMADekker is correctly rounded past the product overflow", prop.ForAll(
		func(f, y, g float64) bool {
			x, z := math.Ldexp(f, 1023), -math.Ldexp(g, 1023)
			return math.Float64bits(FMADekker(x, y, z)) == math.Float64bits(math.FMA(x, y, z))
		},
		gen.Float64Range(1, 2), gen.Float64Range(1, 2), gen.Float64Range(1, 2-0x1p-52),
	))
	properties.TestingRun(t)
}

func TestFMAFamily(t *testing.T) {
	x, y, z := 0.1, 10.0, 1.0
	assert.Equal(t, math.FMA(x, y, z), FMA(x, y, z))
	assert.Equal(t, math.FMA(x, y, -z), FMS(x, y, z))
	assert.Equal(t, math.FMA(-x, y, z), FNMA(x, y, z))
	assert.Equal(t, math.FMA(-x, y, -z), FNMS(x, y, z))

	xf, yf, zf := float32(0.1), float32(10), float32(-1)
	want := float32(float64(xf)*float64(yf) + float64(zf))
	assert.Equal(t, want, FMA(xf, yf, zf))
	assert.Equal(t, want, FMADekker(xf, yf, zf))
}

func TestTwofoldArithmetic(t *testing.T) {
	third := Twofold[float64]{Value: 1.0 / 3, Error: 1.850371707708594e-17}
	sum := Add(third, third)
	want := exactPair(third)
	want.Add(want, exactPair(third))
	diff, _ := new(big.Float).Sub(exactPair(sum), want).Float64()
	assert.LessOrEqual(t, math.Abs(diff), 1e-32)

	prod := Mul(third, FromFloat(3.0))
	assert.InDelta(t, 1.0, prod.Value, 1e-16)
	assert.InDelta(t, 0, prod.Error, 1e-32)

	assert.Equal(t, Neg(Neg(third)), third)
	assert.Equal(t, Twofold[float64]{Value: 2}, AddScalar(FromFloat(1.0), 1))
	assert.Equal(t, MulScalar(FromFloat(0.25), 4), Twofold[float64]{Value: 1})

	n := Normalize(New(1.0, 1.0))
	assert.Equal(t, Twofold[float64]{Value: 2}, n)
	assert.Equal(t, 2.0, n.Float())
}

func TestSplit(t *testing.T) {
	for _, a := range []float64{math.Pi, -1e-300, 1e308, -math.Ldexp(1.5, 1000), 0} {
		hi, lo := split(a)
		require.Equal(t, a, hi+lo, "split(%v)", a)
		frac := math.Float64bits(hi) & (1<<26 - 1)
		assert.Zero(t, frac, "split(%v) high part keeps low bits", a)
	}
}
