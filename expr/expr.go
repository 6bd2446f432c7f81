package expr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cgraph/core"
	"github.com/katalvlaran/cgraph/eval"
)

// Expression is a handle on one node of a graph.
type Expression[T core.Number[T]] struct {
	g    *core.Graph[T]
	root core.NodeID
}

// Wrap returns the Expression for an existing node.
// It panics if g does not contain id.
func Wrap[T core.Number[T]](g *core.Graph[T], id core.NodeID) Expression[T] {
	if !g.Contains(id) {
		panic(fmt.Sprintf("expr: %v", &core.InvalidHandleError{ID: id, Len: g.Len()}))
	}
	return Expression[T]{g: g, root: id}
}

// Constant adds the constant v to g.
func Constant[T core.Number[T]](g *core.Graph[T], v T) Expression[T] {
	return Expression[T]{g: g, root: g.Constant(v)}
}

// Pi adds the constant π to g.
func Pi[T core.Number[T]](g *core.Graph[T]) Expression[T] {
	var zero T
	return Constant(g, zero.FromFloat(math.Pi))
}

// E adds Euler's number to g.
func E[T core.Number[T]](g *core.Graph[T]) Expression[T] {
	var zero T
	return Constant(g, zero.FromFloat(math.E))
}

// Input adds the input name to g. It panics on an empty name.
func Input[T core.Number[T]](g *core.Graph[T], name string) Expression[T] {
	id, err := g.Input(name)
	if err != nil {
		panic(fmt.Sprintf("expr: input: %v", err))
	}
	return Expression[T]{g: g, root: id}
}

// Graph returns the graph the expression lives in.
func (e Expression[T]) Graph() *core.Graph[T] { return e.g }

// Root returns the expression's node.
func (e Expression[T]) Root() core.NodeID { return e.root }

// Evaluate evaluates the expression's root with policy.
func (e Expression[T]) Evaluate(policy eval.Policy[T], ctx eval.Context[T]) (T, error) {
	return policy.Evaluate(e.g, e.root, ctx)
}

func (e Expression[T]) unary(op core.Op) Expression[T] {
	id, err := e.g.Unary(op, e.root)
	if err != nil {
		panic(fmt.Sprintf("expr: %s: %v", op, err))
	}
	return Expression[T]{g: e.g, root: id}
}

func (e Expression[T]) binary(op core.Op, o Expression[T]) Expression[T] {
	if e.g != o.g {
		panic("expr: cannot combine expressions from different graphs")
	}
	id, err := e.g.Binary(op, e.root, o.root)
	if err != nil {
		panic(fmt.Sprintf("expr: %s: %v", op, err))
	}
	return Expression[T]{g: e.g, root: id}
}

// Add returns e + o. Both expressions must share one graph.
func (e Expression[T]) Add(o Expression[T]) Expression[T] { return e.binary(core.OpAdd, o) }

// Sub returns e - o.
func (e Expression[T]) Sub(o Expression[T]) Expression[T] { return e.binary(core.OpSub, o) }

// Mul returns e * o.
func (e Expression[T]) Mul(o Expression[T]) Expression[T] { return e.binary(core.OpMul, o) }

// Div returns e / o.
func (e Expression[T]) Div(o Expression[T]) Expression[T] { return e.binary(core.OpDiv, o) }

// Pow raises e to the power o.
func (e Expression[T]) Pow(o Expression[T]) Expression[T] { return e.binary(core.OpPow, o) }

// AddScalar returns e + s, adding s as a shared Constant.
func (e Expression[T]) AddScalar(s T) Expression[T] { return e.Add(Constant(e.g, s)) }

// SubScalar returns e - s.
func (e Expression[T]) SubScalar(s T) Expression[T] { return e.Sub(Constant(e.g, s)) }

// MulScalar returns e * s.
func (e Expression[T]) MulScalar(s T) Expression[T] { return e.Mul(Constant(e.g, s)) }

// DivScalar returns e / s.
func (e Expression[T]) DivScalar(s T) Expression[T] { return e.Div(Constant(e.g, s)) }

// PowScalar returns e ** s.
func (e Expression[T]) PowScalar(s T) Expression[T] { return e.Pow(Constant(e.g, s)) }

// ScalarSub returns s - e.
func ScalarSub[T core.Number[T]](s T, e Expression[T]) Expression[T] {
	return Constant(e.g, s).Sub(e)
}

// ScalarDiv returns s / e.
func ScalarDiv[T core.Number[T]](s T, e Expression[T]) Expression[T] {
	return Constant(e.g, s).Div(e)
}

// ScalarPow returns s ** e.
func ScalarPow[T core.Number[T]](s T, e Expression[T]) Expression[T] {
	return Constant(e.g, s).Pow(e)
}

// Neg returns -e.
func (e Expression[T]) Neg() Expression[T] { return e.unary(core.OpNeg) }

// Sin returns sin(e).
func (e Expression[T]) Sin() Expression[T] { return e.unary(core.OpSin) }

// Cos returns cos(e).
func (e Expression[T]) Cos() Expression[T] { return e.unary(core.OpCos) }

// Exp returns exp(e).
func (e Expression[T]) Exp() Expression[T] { return e.unary(core.OpExp) }

// Log returns the natural logarithm of e.
func (e Expression[T]) Log() Expression[T] { return e.unary(core.OpLog) }

// Sqrt returns the square root of e.
func (e Expression[T]) Sqrt() Expression[T] { return e.unary(core.OpSqrt) }
