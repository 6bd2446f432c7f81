package opt

import (
	"github.com/katalvlaran/cgraph/core"
)

// ConstantFolding replaces constant subexpressions with Constant nodes.
type ConstantFolding[T core.Number[T]] struct{}

// Name returns "constant-folding".
func (ConstantFolding[T]) Name() string { return "constant-folding" }

// Run folds every constant node reachable from root.
//
// Steps:
//  1. Mark root's dependency closure and obtain a topological order.
//  2. For each reachable node in order: a Constant is constant; an Input
//     never is; any other node is constant iff all its dependencies are,
//     in which case it is computed from the cached values and replaced.
//
// Errors: *core.InvalidHandleError for a root outside g, *core.CycleError.
func (ConstantFolding[T]) Run(g *core.Graph[T], root core.NodeID) (Report, error) {
	rep := Report{Pass: ConstantFolding[T]{}.Name()}

	// 1. Scope and order.
	reach, err := g.Reachable(root)
	if err != nil {
		return rep, err
	}
	order, err := g.TopologicalSort()
	if err != nil {
		return rep, err
	}

	// 2. Forward pass over the reachable subgraph.
	isConst := make([]bool, g.Len())
	values := make([]T, g.Len())
	for _, id := range order {
		i := id.Index()
		if !reach[i] {
			continue
		}
		rep.Visited++
		node, err := g.Node(id)
		if err != nil {
			return rep, err
		}

		switch node.Kind() {
		case core.KindConstant:
			values[i], _ = node.Value()
			isConst[i] = true
		case core.KindInput:
			// never constant
		default:
			foldable := true
			for _, d := range node.Dependencies() {
				if !isConst[d.Index()] {
					foldable = false
					break
				}
			}
			if !foldable {
				continue
			}
			v, err := node.Evaluate(values)
			if err != nil {
				return rep, err
			}
			if err := g.Replace(id, core.NewConstant(v)); err != nil {
				return rep, err
			}
			values[i] = v
			isConst[i] = true
			rep.Folded++
		}
	}

	return rep, nil
}
