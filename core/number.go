package core

import (
	"encoding/binary"
	"math"
	"strconv"
)

// Arithmetic is the minimal capability set of a graph value type: the four
// arithmetic operations, each returning a new value.
type Arithmetic[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
}

// Number is the full capability set required by Graph[T].
//
// Beyond Arithmetic it provides negation, the transcendental functions the
// operation vocabulary needs, and three plumbing methods:
//   - FromFloat embeds a float64 as a constant of T; the receiver is ignored,
//     so the zero value of T can be used (var z T; z.FromFloat(math.Pi)).
//   - AppendBinary appends a canonical byte encoding of the value, fed to the
//     structural hash of Constant nodes.
//   - String renders the value for node labels.
//
// T must be comparable: Constant equivalence compares values with ==.
type Number[T any] interface {
	comparable
	Arithmetic[T]
	Neg() T
	Sin() T
	Cos() T
	Exp() T
	Log() T
	Sqrt() T
	Pow(T) T
	FromFloat(float64) T
	AppendBinary(b []byte) ([]byte, error)
	String() string
}

// Real is the plain float64 value type.
type Real float64

// isNumber only compiles when T satisfies Number; used for static checks.
func isNumber[T Number[T]]() {}

var _ = isNumber[Real]

func (r Real) Add(o Real) Real { return r + o }
func (r Real) Sub(o Real) Real { return r - o }
func (r Real) Mul(o Real) Real { return r * o }
func (r Real) Div(o Real) Real { return r / o }
func (r Real) Neg() Real       { return -r }
func (r Real) Sin() Real       { return Real(math.Sin(float64(r))) }
func (r Real) Cos() Real       { return Real(math.Cos(float64(r))) }
func (r Real) Exp() Real       { return Real(math.Exp(float64(r))) }
func (r Real) Log() Real       { return Real(math.Log(float64(r))) }
func (r Real) Sqrt() Real      { return Real(math.Sqrt(float64(r))) }

// Pow returns r**o.
func (r Real) Pow(o Real) Real { return Real(math.Pow(float64(r), float64(o))) }

// FromFloat returns f as a Real.
func (Real) FromFloat(f float64) Real { return Real(f) }

// Float returns r as a float64.
func (r Real) Float() float64 { return float64(r) }

// AppendBinary appends the IEEE-754 bits of r in little-endian order.
// -0 is encoded as +0, matching ==.
func (r Real) AppendBinary(b []byte) ([]byte, error) {
	if r == 0 {
		r = 0
	}
	return binary.LittleEndian.AppendUint64(b, math.Float64bits(float64(r))), nil
}

// String formats r with the shortest representation that round-trips.
func (r Real) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}
