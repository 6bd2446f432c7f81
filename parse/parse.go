package parse

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/cgraph/core"
	"github.com/katalvlaran/cgraph/expr"
)

var (
	// ErrUnsupported indicates valid HCL that has no arithmetic meaning here.
	ErrUnsupported = errors.New("parse: unsupported expression")

	// ErrUnknownFunction indicates a call to a function outside the vocabulary.
	ErrUnknownFunction = errors.New("parse: unknown function")

	// ErrArity indicates a known function called with the wrong argument count.
	ErrArity = errors.New("parse: wrong number of arguments")
)

// filename appears in HCL diagnostics.
const filename = "expr"

var unaryFuncs = map[string]core.Op{
	"sin":  core.OpSin,
	"cos":  core.OpCos,
	"exp":  core.OpExp,
	"log":  core.OpLog,
	"sqrt": core.OpSqrt,
}

var nullaryFuncs = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// parseSource returns the syntax tree of src or its diagnostics.
func parseSource(src string) (hclsyntax.Expression, error) {
	e, diags := hclsyntax.ParseExpression([]byte(src), filename, hcl.Pos{Line: 1, Column: 1, Byte: 0})
	if diags.HasErrors() {
		return nil, diags
	}
	return e, nil
}

// Compile parses src and adds its nodes to g. Subexpressions already in g
// are shared, as with any other construction.
func Compile[T core.Number[T]](g *core.Graph[T], src string) (expr.Expression[T], error) {
	e, err := parseSource(src)
	if err != nil {
		return expr.Expression[T]{}, err
	}
	c := &compiler[T]{g: g}
	id, err := c.walk(e)
	if err != nil {
		return expr.Expression[T]{}, err
	}

	return expr.Wrap(g, id), nil
}

// Variables returns the sorted, unique variable names src refers to.
func Variables(src string) ([]string, error) {
	e, err := parseSource(src)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, tr := range e.Variables() {
		names = append(names, tr.RootName())
	}
	slices.Sort(names)

	return slices.Compact(names), nil
}

type compiler[T core.Number[T]] struct {
	g *core.Graph[T]
}

// walk compiles one syntax node and returns the graph node computing it.
func (c *compiler[T]) walk(e hclsyntax.Expression) (core.NodeID, error) {
	switch e := e.(type) {
	case *hclsyntax.ParenthesesExpr:
		return c.walk(e.Expression)

	case *hclsyntax.LiteralValueExpr:
		if e.Val.IsNull() || !e.Val.IsKnown() || !e.Val.Type().Equals(cty.Number) {
			return core.NodeID{}, unsupported(e, "non-numeric literal")
		}
		f, _ := e.Val.AsBigFloat().Float64()
		return c.constant(f), nil

	case *hclsyntax.ScopeTraversalExpr:
		if len(e.Traversal) != 1 {
			return core.NodeID{}, unsupported(e, "attribute or index access")
		}
		return c.g.Input(e.Traversal.RootName())

	case *hclsyntax.UnaryOpExpr:
		if e.Op != hclsyntax.OpNegate {
			return core.NodeID{}, unsupported(e, "unary operator")
		}
		v, err := c.walk(e.Val)
		if err != nil {
			return core.NodeID{}, err
		}
		return c.g.Unary(core.OpNeg, v)

	case *hclsyntax.BinaryOpExpr:
		var op core.Op
		switch e.Op {
		case hclsyntax.OpAdd:
			op = core.OpAdd
		case hclsyntax.OpSubtract:
			op = core.OpSub
		case hclsyntax.OpMultiply:
			op = core.OpMul
		case hclsyntax.OpDivide:
			op = core.OpDiv
		default:
			return core.NodeID{}, unsupported(e, "binary operator")
		}
		l, err := c.walk(e.LHS)
		if err != nil {
			return core.NodeID{}, err
		}
		r, err := c.walk(e.RHS)
		if err != nil {
			return core.NodeID{}, err
		}
		return c.g.Binary(op, l, r)

	case *hclsyntax.FunctionCallExpr:
		return c.call(e)

	default:
		return core.NodeID{}, unsupported(e, fmt.Sprintf("%T", e))
	}
}

// call compiles a function call.
func (c *compiler[T]) call(e *hclsyntax.FunctionCallExpr) (core.NodeID, error) {
	if e.ExpandFinal {
		return core.NodeID{}, unsupported(e, "argument expansion")
	}
	if v, ok := nullaryFuncs[e.Name]; ok {
		if err := arity(e, 0); err != nil {
			return core.NodeID{}, err
		}
		return c.constant(v), nil
	}

	args := make([]core.NodeID, len(e.Args))
	compileArgs := func() error {
		for i, a := range e.Args {
			id, err := c.walk(a)
			if err != nil {
				return err
			}
			args[i] = id
		}
		return nil
	}

	if op, ok := unaryFuncs[e.Name]; ok {
		if err := arity(e, 1); err != nil {
			return core.NodeID{}, err
		}
		if err := compileArgs(); err != nil {
			return core.NodeID{}, err
		}
		return c.g.Unary(op, args[0])
	}
	if e.Name == "pow" {
		if err := arity(e, 2); err != nil {
			return core.NodeID{}, err
		}
		if err := compileArgs(); err != nil {
			return core.NodeID{}, err
		}
		return c.g.Binary(core.OpPow, args[0], args[1])
	}

	return core.NodeID{}, fmt.Errorf("%w: %s at %s", ErrUnknownFunction, e.Name, e.NameRange)
}

func (c *compiler[T]) constant(f float64) core.NodeID {
	var zero T
	return c.g.Constant(zero.FromFloat(f))
}

func arity(e *hclsyntax.FunctionCallExpr, want int) error {
	if len(e.Args) != want {
		return fmt.Errorf("%w: %s takes %d, got %d at %s", ErrArity, e.Name, want, len(e.Args), e.NameRange)
	}
	return nil
}

func unsupported(e hclsyntax.Expression, what string) error {
	return fmt.Errorf("%w: %s at %s", ErrUnsupported, what, e.Range())
}
