package eval

import (
	"github.com/katalvlaran/cgraph/core"
)

// Eager evaluates the whole graph in topological order.
type Eager[T core.Number[T]] struct{}

// Name returns "eager".
func (Eager[T]) Name() string { return NameEager }

// Evaluate sorts g, computes every node into a dense array and returns the
// value at root.
//
// Steps:
//  1. Bounds-check root and obtain a topological order.
//  2. Walk the order: Inputs read ctx, other nodes call Node.Evaluate.
//     An unbound Input poisons itself; a node with a poisoned dependency
//     inherits the poison (left operand first) without being computed.
//  3. If root is poisoned, report the input name it inherited.
func (Eager[T]) Evaluate(g *core.Graph[T], root core.NodeID, ctx Context[T]) (T, error) {
	var zero T
	// 1. Root and order.
	if !g.Contains(root) {
		return zero, &core.InvalidHandleError{ID: root, Len: g.Len()}
	}
	order, err := g.TopologicalSort()
	if err != nil {
		return zero, err
	}

	// 2. Dense pass. poison[i] holds the unbound input name node i depends on.
	values := make([]T, g.Len())
	poison := make([]string, g.Len())
	for _, id := range order {
		node, err := g.Node(id)
		if err != nil {
			return zero, err
		}
		i := id.Index()
		if node.Kind() == core.KindInput {
			v, ok := ctx[node.Name()]
			if !ok {
				poison[i] = node.Name()
				continue
			}
			values[i] = v
			continue
		}
		for _, d := range node.Dependencies() {
			if poison[d.Index()] != "" {
				poison[i] = poison[d.Index()]
				break
			}
		}
		if poison[i] != "" {
			continue
		}
		v, err := node.Evaluate(values)
		if err != nil {
			return zero, err
		}
		values[i] = v
	}

	// 3. Result.
	if name := poison[root.Index()]; name != "" {
		return zero, &MissingVariableError{Name: name}
	}

	return values[root.Index()], nil
}
