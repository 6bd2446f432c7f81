package viz

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cgraph/core"
)

// Viewer is anything exposing per-node views, such as *core.Graph[T].
type Viewer interface {
	Views() []core.View
}

// Option configures WriteDOT.
type Option func(*dotOptions)

type dotOptions struct {
	name    string
	rankDir string
}

// WithName sets the digraph name. Default "ComputationGraph".
func WithName(name string) Option {
	return func(o *dotOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithRankDir sets the layout direction: TB, BT, LR or RL. Default TB.
// Unknown values are ignored.
func WithRankDir(dir string) Option {
	return func(o *dotOptions) {
		switch dir {
		case "TB", "BT", "LR", "RL":
			o.rankDir = dir
		}
	}
}

// style returns the DOT shape and fill colour for a node kind.
func style(k core.Kind) (shape, color string) {
	switch k {
	case core.KindInput:
		return "circle", "pink"
	case core.KindConstant:
		return "box", "lightpink"
	case core.KindUnary, core.KindBinary:
		return "Mcircle", "peachpuff"
	default:
		return "box", "white"
	}
}

// WriteDOT writes g as a DOT digraph to w: one statement per node in
// NodeID order, each followed by the edges from its dependencies.
func WriteDOT(w io.Writer, g Viewer, opts ...Option) error {
	o := dotOptions{name: "ComputationGraph", rankDir: "TB"}
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", strconv.Quote(o.name))
	fmt.Fprintf(&b, "\trankdir=%s;\n", o.rankDir)
	b.WriteString("\tnode [fontname=\"Courier New\", shape=box, style=filled, fillcolor=white];\n")
	for _, v := range g.Views() {
		shape, color := style(v.Kind)
		fmt.Fprintf(&b, "\t%d [label=%s, shape=%s, fillcolor=%s];\n",
			v.ID.Index(), strconv.Quote(v.Label), shape, color)
		for _, d := range v.Dependencies {
			fmt.Fprintf(&b, "\t%d -> %d;\n", d.Index(), v.ID.Index())
		}
	}
	b.WriteString("}\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("viz: write dot: %w", err)
	}

	return nil
}
