package dual

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/katalvlaran/cgraph/core"
)

// Dual is a value paired with its derivative.
type Dual struct {
	V float64 // value
	D float64 // derivative
}

var _ = core.NewGraph[Dual]

// Constant returns v with zero derivative.
func Constant(v float64) Dual { return Dual{V: v} }

// Variable returns v seeded with derivative 1.
func Variable(v float64) Dual { return Dual{V: v, D: 1} }

// Add returns a + b component-wise.
func (a Dual) Add(b Dual) Dual { return Dual{a.V + b.V, a.D + b.D} }

// Sub returns a - b component-wise.
func (a Dual) Sub(b Dual) Dual { return Dual{a.V - b.V, a.D - b.D} }

// Mul applies the product rule.
func (a Dual) Mul(b Dual) Dual { return Dual{a.V * b.V, a.D*b.V + a.V*b.D} }

// Div applies the quotient rule.
func (a Dual) Div(b Dual) Dual {
	return Dual{a.V / b.V, (a.D*b.V - a.V*b.D) / (b.V * b.V)}
}

// Neg returns -a.
func (a Dual) Neg() Dual { return Dual{-a.V, -a.D} }

// Sin returns sin(a); the derivative is cos(a.V)·a.D.
func (a Dual) Sin() Dual { return Dual{math.Sin(a.V), math.Cos(a.V) * a.D} }

// Cos returns cos(a); the derivative is -sin(a.V)·a.D.
func (a Dual) Cos() Dual { return Dual{math.Cos(a.V), -math.Sin(a.V) * a.D} }

// Exp returns e^a.
func (a Dual) Exp() Dual {
	e := math.Exp(a.V)
	return Dual{e, e * a.D}
}

// Log returns ln(a); the derivative is a.D/a.V.
func (a Dual) Log() Dual { return Dual{math.Log(a.V), a.D / a.V} }

// Sqrt returns √a; the derivative is a.D/(2√a.V).
func (a Dual) Sqrt() Dual {
	s := math.Sqrt(a.V)
	return Dual{s, a.D / (2 * s)}
}

// Pow returns a^b. A constant exponent uses the power rule, which stays
// defined for non-positive bases.
func (a Dual) Pow(b Dual) Dual {
	p := math.Pow(a.V, b.V)
	if b.D == 0 {
		if a.D == 0 || b.V == 0 {
			return Dual{p, 0}
		}
		return Dual{p, b.V * math.Pow(a.V, b.V-1) * a.D}
	}

	return Dual{p, p * (b.D*math.Log(a.V) + b.V*a.D/a.V)}
}

// FromFloat returns f as a Constant; the receiver is ignored.
func (Dual) FromFloat(f float64) Dual { return Constant(f) }

// AddScalar returns a + s.
func (a Dual) AddScalar(s float64) Dual { return Dual{a.V + s, a.D} }

// SubScalar returns a - s.
func (a Dual) SubScalar(s float64) Dual { return Dual{a.V - s, a.D} }

// MulScalar returns a * s.
func (a Dual) MulScalar(s float64) Dual { return Dual{a.V * s, a.D * s} }

// DivScalar returns a / s.
func (a Dual) DivScalar(s float64) Dual { return Dual{a.V / s, a.D / s} }

// PowScalar returns a^s.
func (a Dual) PowScalar(s float64) Dual { return a.Pow(Constant(s)) }

// ScalarSub returns s - a.
func ScalarSub(s float64, a Dual) Dual { return Dual{s - a.V, -a.D} }

// ScalarDiv returns s / a.
func ScalarDiv(s float64, a Dual) Dual {
	return Dual{s / a.V, -s * a.D / (a.V * a.V)}
}

// AppendBinary appends the IEEE-754 bits of V then D, with -0 encoded
// as +0 in both components.
func (a Dual) AppendBinary(b []byte) ([]byte, error) {
	if a.V == 0 {
		a.V = 0
	}
	if a.D == 0 {
		a.D = 0
	}
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(a.V))
	return binary.LittleEndian.AppendUint64(b, math.Float64bits(a.D)), nil
}

// String renders "{value: V, d: D}".
func (a Dual) String() string {
	return "{value: " + strconv.FormatFloat(a.V, 'g', -1, 64) +
		", d: " + strconv.FormatFloat(a.D, 'g', -1, 64) + "}"
}
