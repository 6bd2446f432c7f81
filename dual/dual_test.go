package dual_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgraph/dual"
)

const eps = 1e-12

// assertDual compares both components within eps.
func assertDual(t *testing.T, want, got dual.Dual, msg string) {
	t.Helper()
	assert.InDelta(t, want.V, got.V, eps, msg+" value")
	assert.InDelta(t, want.D, got.D, eps, msg+" derivative")
}

// TestDual_Arithmetic checks the sum, product and quotient rules.
func TestDual_Arithmetic(t *testing.T) {
	u := dual.Dual{V: 3, D: 2}
	v := dual.Dual{V: 4, D: -1}

	assertDual(t, dual.Dual{V: 7, D: 1}, u.Add(v), "add")
	assertDual(t, dual.Dual{V: -1, D: 3}, u.Sub(v), "sub")
	assertDual(t, dual.Dual{V: 12, D: 2*4 + 3*-1}, u.Mul(v), "mul")
	assertDual(t, dual.Dual{V: 0.75, D: (2*4 - 3*-1) / 16.0}, u.Div(v), "div")
	assertDual(t, dual.Dual{V: -3, D: -2}, u.Neg(), "neg")
}

// TestDual_ChainRule checks every transcendental rule at x=0.8 seeded.
func TestDual_ChainRule(t *testing.T) {
	x := dual.Variable(0.8)
	cases := []struct {
		name string
		got  dual.Dual
		v, d float64
	}{
		{"sin", x.Sin(), math.Sin(0.8), math.Cos(0.8)},
		{"cos", x.Cos(), math.Cos(0.8), -math.Sin(0.8)},
		{"exp", x.Exp(), math.Exp(0.8), math.Exp(0.8)},
		{"log", x.Log(), math.Log(0.8), 1 / 0.8},
		{"sqrt", x.Sqrt(), math.Sqrt(0.8), 1 / (2 * math.Sqrt(0.8))},
		{"pow const exponent", x.PowScalar(3), math.Pow(0.8, 3), 3 * 0.8 * 0.8},
		{"pow variable exponent", x.Pow(x), math.Pow(0.8, 0.8), math.Pow(0.8, 0.8) * (math.Log(0.8) + 1)},
		{"scaled chain", x.MulScalar(2).Sin(), math.Sin(1.6), 2 * math.Cos(1.6)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertDual(t, dual.Dual{V: tc.v, D: tc.d}, tc.got, tc.name)
		})
	}
}

// TestDual_PowNegativeBase uses the power rule when the exponent is constant.
func TestDual_PowNegativeBase(t *testing.T) {
	got := dual.Variable(-2).Pow(dual.Constant(2))
	assertDual(t, dual.Dual{V: 4, D: -4}, got, "(-2)^2")

	got = dual.Constant(0).Pow(dual.Constant(-1))
	assert.True(t, math.IsInf(got.V, 1))
	assert.Equal(t, 0.0, got.D)
}

// TestDual_PowZeroExponent keeps d/dx x^0 at zero, including at x=0.
func TestDual_PowZeroExponent(t *testing.T) {
	for _, x := range []float64{0, 2, -3} {
		got := dual.Variable(x).Pow(dual.Constant(0))
		assert.Equal(t, 1.0, got.V, "x=%v", x)
		assert.Equal(t, 0.0, got.D, "x=%v", x)
	}
}

// TestDual_Scalars checks scalar mixing in both positions.
func TestDual_Scalars(t *testing.T) {
	x := dual.Dual{V: 2, D: 3}
	assertDual(t, dual.Dual{V: 7, D: 3}, x.AddScalar(5), "x+5")
	assertDual(t, dual.Dual{V: -3, D: 3}, x.SubScalar(5), "x-5")
	assertDual(t, dual.Dual{V: 10, D: 15}, x.MulScalar(5), "x*5")
	assertDual(t, dual.Dual{V: 0.5, D: 0.75}, x.DivScalar(4), "x/4")
	assertDual(t, dual.Dual{V: 3, D: -3}, dual.ScalarSub(5, x), "5-x")
	assertDual(t, dual.Dual{V: 2, D: -3}, dual.ScalarDiv(4, x), "4/x")
}

// TestDual_Plumbing covers FromFloat, String and AppendBinary.
func TestDual_Plumbing(t *testing.T) {
	var z dual.Dual
	assert.Equal(t, dual.Constant(1.5), z.FromFloat(1.5))
	assert.Equal(t, dual.Dual{V: 1, D: 1}, dual.Variable(1))
	assert.Equal(t, "{value: 1.5, d: -2}", dual.Dual{V: 1.5, D: -2}.String())

	a, err := dual.Dual{V: 1, D: 0}.AppendBinary(nil)
	require.NoError(t, err)
	b, err := dual.Dual{V: 1, D: 1}.AppendBinary(nil)
	require.NoError(t, err)
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b, "derivative participates in the encoding")

	negZero := math.Copysign(0, -1)
	p, err := dual.Dual{}.AppendBinary(nil)
	require.NoError(t, err)
	n, err := dual.Dual{V: negZero, D: negZero}.AppendBinary(nil)
	require.NoError(t, err)
	assert.Equal(t, p, n, "-0 encodes as +0")
}
