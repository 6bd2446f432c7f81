package viz_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cgraph/core"
	"github.com/katalvlaran/cgraph/expr"
	"github.com/katalvlaran/cgraph/viz"
)

// TestWriteDOT checks node statements, styles and edge direction.
func TestWriteDOT(t *testing.T) {
	g := core.NewGraph[core.Real]()
	x := expr.Input(g, "x")
	x.MulScalar(2).Sin()

	var buf bytes.Buffer
	require.NoError(t, viz.WriteDOT(&buf, g))

	want := `digraph "ComputationGraph" {
	rankdir=TB;
	node [fontname="Courier New", shape=box, style=filled, fillcolor=white];
	0 [label="x", shape=circle, fillcolor=pink];
	1 [label="2", shape=box, fillcolor=lightpink];
	2 [label="*", shape=Mcircle, fillcolor=peachpuff];
	0 -> 2;
	1 -> 2;
	3 [label="sin", shape=Mcircle, fillcolor=peachpuff];
	2 -> 3;
}
`
	assert.Equal(t, want, buf.String())
}

// TestWriteDOT_Options applies name and rank direction.
func TestWriteDOT_Options(t *testing.T) {
	g := core.NewGraph[core.Real]()
	expr.Input(g, `a"b`)

	var buf bytes.Buffer
	require.NoError(t, viz.WriteDOT(&buf, g, viz.WithName("f"), viz.WithRankDir("LR"), viz.WithRankDir("diagonal")))
	assert.Contains(t, buf.String(), `digraph "f" {`)
	assert.Contains(t, buf.String(), "rankdir=LR;")
	assert.Contains(t, buf.String(), `label="a\"b"`)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWriteDOT_WriteError wraps writer failures.
func TestWriteDOT_WriteError(t *testing.T) {
	g := core.NewGraph[core.Real]()
	err := viz.WriteDOT(brokenWriter{}, g)
	assert.ErrorContains(t, err, "viz: write dot: disk full")
}

// TestRender_Validation rejects bad programs and formats before running.
func TestRender_Validation(t *testing.T) {
	ctx := context.Background()
	assert.ErrorIs(t, viz.Render(ctx, "rm", "png", "a.dot", "a.png"), viz.ErrInvalidProgram)
	assert.ErrorIs(t, viz.Render(ctx, "dot", "exe", "a.dot", "a.png"), viz.ErrInvalidFormat)
	assert.ErrorContains(t, viz.Render(ctx, "dot", "png", "", "a.png"), "no filename")
}
