package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgraph/core"
	"github.com/katalvlaran/cgraph/dual"
	"github.com/katalvlaran/cgraph/eval"
	"github.com/katalvlaran/cgraph/expr"
	"github.com/katalvlaran/cgraph/opt"
)

// assertAgree evaluates every node of g as a root under both policies and
// requires identical values, or failures of the same kind.
func assertAgree[T core.Number[T]](t *testing.T, g *core.Graph[T], ctx eval.Context[T]) {
	t.Helper()
	order, err := g.TopologicalSort()
	require.NoError(t, err)
	for _, id := range order {
		ev, eerr := eval.Eager[T]{}.Evaluate(g, id, ctx)
		lv, lerr := eval.Lazy[T]{}.Evaluate(g, id, ctx)
		if eerr != nil || lerr != nil {
			require.Error(t, eerr, "node %s", id)
			require.Error(t, lerr, "node %s", id)
			assert.Equal(t, eerr.Error(), lerr.Error(), "node %s", id)
			continue
		}
		assert.Equal(t, ev, lv, "node %s", id)
	}
}

// TestPolicies_AgreeAcrossGraphs compares eager and lazy on graphs that
// stress sharing, unrelated inputs, folding and dual values.
func TestPolicies_AgreeAcrossGraphs(t *testing.T) {
	t.Run("shared subexpressions", func(t *testing.T) {
		g := core.NewGraph[core.Real]()
		x3 := expr.Input(g, "x").MulScalar(3)
		x3.Mul(x3).Add(x3.Sqrt())
		assertAgree(t, g, eval.Context[core.Real]{"x": 2})
	})

	t.Run("unrelated subgraph", func(t *testing.T) {
		g := core.NewGraph[core.Real]()
		expr.Input(g, "x").AddScalar(1)
		z := expr.Input(g, "z")
		z.Mul(z.Log())
		assertAgree(t, g, eval.Context[core.Real]{"x": 4})
	})

	t.Run("folded", func(t *testing.T) {
		g := core.NewGraph[core.Real]()
		two := expr.Constant[core.Real](g, 2)
		root := two.PowScalar(10).Add(expr.Input(g, "x")).Mul(two.Exp())
		rep, err := opt.ConstantFolding[core.Real]{}.Run(g, root.Root())
		require.NoError(t, err)
		require.Positive(t, rep.Folded)
		assertAgree(t, g, eval.Context[core.Real]{"x": 1.5})
	})

	t.Run("dual values", func(t *testing.T) {
		g := core.NewGraph[dual.Dual]()
		x, y := expr.Input(g, "x"), expr.Input(g, "y")
		y.Sin().Add(x.Mul(y)).Div(x.Exp())
		assertAgree(t, g, eval.Context[dual.Dual]{
			"x": dual.Constant(1),
			"y": dual.Variable(5.25),
		})
	})
}
