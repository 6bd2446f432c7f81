package eval

import (
	"github.com/katalvlaran/cgraph/core"
)

// Lazy evaluates only what root depends on, memoising each node.
type Lazy[T core.Number[T]] struct{}

// Name returns "lazy".
func (Lazy[T]) Name() string { return NameLazy }

// Evaluate computes root by depth-first recursion over its dependencies.
// A node reached again while still on the current path is a cycle.
func (Lazy[T]) Evaluate(g *core.Graph[T], root core.NodeID, ctx Context[T]) (T, error) {
	var zero T
	if !g.Contains(root) {
		return zero, &core.InvalidHandleError{ID: root, Len: g.Len()}
	}
	w := &lazyWalker[T]{
		graph:  g,
		ctx:    ctx,
		values: make([]T, g.Len()),
		state:  make([]uint8, g.Len()),
	}

	return w.visit(root)
}

const (
	white = iota
	gray
	black
)

// lazyWalker holds the memo and visitation marks of one Lazy evaluation.
type lazyWalker[T core.Number[T]] struct {
	graph  *core.Graph[T]
	ctx    Context[T]
	values []T
	state  []uint8
	path   []core.NodeID
}

func (w *lazyWalker[T]) visit(id core.NodeID) (T, error) {
	var zero T
	node, err := w.graph.Node(id)
	if err != nil {
		return zero, err
	}
	i := id.Index()
	switch w.state[i] {
	case black:
		return w.values[i], nil
	case gray:
		return zero, &core.CycleError{Unscheduled: w.cycle(id)}
	}

	w.state[i] = gray
	w.path = append(w.path, id)

	var v T
	if node.Kind() == core.KindInput {
		bound, ok := w.ctx[node.Name()]
		if !ok {
			return zero, &MissingVariableError{Name: node.Name()}
		}
		v = bound
	} else {
		for _, d := range node.Dependencies() {
			if _, err := w.visit(d); err != nil {
				return zero, err
			}
		}
		if v, err = node.Evaluate(w.values); err != nil {
			return zero, err
		}
	}

	w.path = w.path[:len(w.path)-1]
	w.values[i] = v
	w.state[i] = black

	return v, nil
}

// cycle returns the gray path from id back to the current node.
func (w *lazyWalker[T]) cycle(id core.NodeID) []core.NodeID {
	for i := len(w.path) - 1; i >= 0; i-- {
		if w.path[i] == id {
			return append([]core.NodeID(nil), w.path[i:]...)
		}
	}
	return []core.NodeID{id}
}
