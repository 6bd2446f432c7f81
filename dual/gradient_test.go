package dual_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgraph/core"
	"github.com/katalvlaran/cgraph/dual"
	"github.com/katalvlaran/cgraph/eval"
)

// buildSinYPlusXY builds sin(y) + x*y.
func buildSinYPlusXY(t *testing.T) (*core.Graph[dual.Dual], core.NodeID) {
	t.Helper()
	g := core.NewGraph[dual.Dual]()
	x, err := g.Input("x")
	require.NoError(t, err)
	y, err := g.Input("y")
	require.NoError(t, err)
	s, err := g.Unary(core.OpSin, y)
	require.NoError(t, err)
	xy, err := g.Binary(core.OpMul, x, y)
	require.NoError(t, err)
	root, err := g.Binary(core.OpAdd, s, xy)
	require.NoError(t, err)
	return g, root
}

// TestDifferentiate_SeededEvaluation seeds x, then y, by hand.
func TestDifferentiate_SeededEvaluation(t *testing.T) {
	g, root := buildSinYPlusXY(t)
	value := math.Sin(5.25) + 5.25

	for _, p := range []eval.Policy[dual.Dual]{eval.Eager[dual.Dual]{}, eval.Lazy[dual.Dual]{}} {
		dx, err := p.Evaluate(g, root, eval.Context[dual.Dual]{"x": dual.Variable(1), "y": dual.Constant(5.25)})
		require.NoError(t, err)
		assert.InDelta(t, value, dx.V, eps)
		assert.InDelta(t, 5.25, dx.D, eps)

		dy, err := p.Evaluate(g, root, eval.Context[dual.Dual]{"x": dual.Constant(1), "y": dual.Variable(5.25)})
		require.NoError(t, err)
		assert.InDelta(t, value, dy.V, eps)
		assert.InDelta(t, math.Cos(5.25)+1, dy.D, eps)
	}
}

// TestGradient collects every partial in one call.
func TestGradient(t *testing.T) {
	g, root := buildSinYPlusXY(t)
	res, err := dual.Gradient(context.Background(), eval.Lazy[dual.Dual]{}, g, root,
		map[string]float64{"x": 1, "y": 5.25})
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(5.25)+5.25, res.Value, eps)
	require.Len(t, res.Partials, 2)
	assert.InDelta(t, 5.25, res.Partials["x"], eps)
	assert.InDelta(t, math.Cos(5.25)+1, res.Partials["y"], eps)
}

// TestGradient_ConstantRoot has an empty point.
func TestGradient_ConstantRoot(t *testing.T) {
	g := core.NewGraph[dual.Dual]()
	root := g.Constant(dual.Constant(4))
	res, err := dual.Gradient(context.Background(), eval.Eager[dual.Dual]{}, g, root, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Value)
	assert.Empty(t, res.Partials)
}

// TestGradient_Missing propagates the unbound input.
func TestGradient_Missing(t *testing.T) {
	g, root := buildSinYPlusXY(t)
	_, err := dual.Gradient(context.Background(), eval.Eager[dual.Dual]{}, g, root, map[string]float64{"x": 1})
	assert.ErrorIs(t, err, eval.ErrMissingVariable)
	assert.Contains(t, err.Error(), "d/dx")
}
