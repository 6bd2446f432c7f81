package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgraph/core"
)

// position returns the index of id in order or -1.
func position(order []core.NodeID, id core.NodeID) int {
	for i, x := range order {
		if x == id {
			return i
		}
	}
	return -1
}

// assertTopological checks every node follows its dependencies.
func assertTopological(t *testing.T, g *core.Graph[core.Real], order []core.NodeID) {
	t.Helper()
	require.Len(t, order, g.Len())
	for _, id := range order {
		n, err := g.Node(id)
		require.NoError(t, err)
		for _, d := range n.Dependencies() {
			assert.Less(t, position(order, d), position(order, id), "%s must follow %s", id, d)
		}
	}
}

// TestTopo_Built verifies ordering for a graph with shared subexpressions.
func TestTopo_Built(t *testing.T) {
	g := core.NewGraph[core.Real]()
	x := mustInput(t, g, "x")
	y := mustInput(t, g, "y")
	s := mustBinary(t, g, core.OpAdd, x, y)
	sq := mustBinary(t, g, core.OpMul, s, s)
	sin, err := g.Unary(core.OpSin, x)
	require.NoError(t, err)
	mustBinary(t, g, core.OpSub, sq, sin)

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	assertTopological(t, g, order)
}

// TestTopo_Deterministic verifies FIFO seeding in NodeID order.
func TestTopo_Deterministic(t *testing.T) {
	g := core.NewGraph[core.Real]()
	a := mustInput(t, g, "a")
	b := mustInput(t, g, "b")
	c := g.Constant(1)
	ab := mustBinary(t, g, core.OpMul, a, b)
	abc := mustBinary(t, g, core.OpAdd, ab, c)

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{a, b, c, ab, abc}, order)

	again, err := g.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, order, again)
}

// TestTopo_AfterReplace keeps ordering valid when a rewrite points at a
// later node (no cycle).
func TestTopo_AfterReplace(t *testing.T) {
	g := core.NewGraph[core.Real]()
	x := mustInput(t, g, "x")
	a, err := g.Unary(core.OpNeg, x)
	require.NoError(t, err)
	y := mustInput(t, g, "y")
	require.NoError(t, g.Replace(a, core.NewUnary[core.Real](core.OpNeg, y)))

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	assertTopological(t, g, order)
	assert.Less(t, position(order, y), position(order, a))
}

// TestTopo_Cycle reports unscheduled nodes after a cycle-forming rewrite.
func TestTopo_Cycle(t *testing.T) {
	g := core.NewGraph[core.Real]()
	x := mustInput(t, g, "x")
	a, err := g.Unary(core.OpSin, x)
	require.NoError(t, err)
	b, err := g.Unary(core.OpCos, a)
	require.NoError(t, err)
	top := mustBinary(t, g, core.OpAdd, b, x)

	require.NoError(t, g.Replace(a, core.NewUnary[core.Real](core.OpSin, b)))

	order, err := g.TopologicalSort()
	assert.Nil(t, order)
	require.ErrorIs(t, err, core.ErrCycleDetected)
	var ce *core.CycleError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []core.NodeID{a, b, top}, ce.Unscheduled)
	assert.Contains(t, err.Error(), "3 node(s) unscheduled [n1 n2 n3]")
}

// TestTopo_SelfLoop detects a node rewritten to depend on itself.
func TestTopo_SelfLoop(t *testing.T) {
	g := core.NewGraph[core.Real]()
	x := mustInput(t, g, "x")
	a, err := g.Unary(core.OpExp, x)
	require.NoError(t, err)
	require.NoError(t, g.Replace(a, core.NewUnary[core.Real](core.OpExp, a)))

	_, err = g.TopologicalSort()
	assert.ErrorIs(t, err, core.ErrCycleDetected)

	_, err = g.Reachable(a)
	assert.ErrorIs(t, err, core.ErrCycleDetected)
}

// TestReachable marks exactly the dependency closure of root.
func TestReachable(t *testing.T) {
	g := core.NewGraph[core.Real]()
	x := mustInput(t, g, "x")
	y := mustInput(t, g, "y")
	s := mustBinary(t, g, core.OpAdd, x, x)
	p := mustBinary(t, g, core.OpMul, y, y)

	seen, err := g.Reachable(s)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false}, seen)

	seen, err = g.Reachable(p)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true}, seen)

	seen, err = g.Reachable(x)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false}, seen)

	other := core.NewGraph[core.Real]()
	for i := 0; i < 10; i++ {
		other.Constant(core.Real(i))
	}
	_, err = g.Reachable(other.Constant(42))
	assert.ErrorIs(t, err, core.ErrInvalidHandle)
}

// TestReachable_CyclePath reports the looping path.
func TestReachable_CyclePath(t *testing.T) {
	g := core.NewGraph[core.Real]()
	x := mustInput(t, g, "x")
	a, err := g.Unary(core.OpSin, x)
	require.NoError(t, err)
	b, err := g.Unary(core.OpCos, a)
	require.NoError(t, err)
	require.NoError(t, g.Replace(a, core.NewUnary[core.Real](core.OpSin, b)))

	_, err = g.Reachable(b)
	var ce *core.CycleError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []core.NodeID{b, a}, ce.Unscheduled)
}
