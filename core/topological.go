// File: topological.go
// Role: Kahn topological sort and root-reachability over the node arena.
// Determinism:
//   - The ready queue is seeded in NodeID order and drained FIFO, so the
//     same graph always yields the same order.

package core

// Visitation states for depth-first walks.
const (
	white = iota // not visited
	gray         // on the current path
	black        // fully explored
)

// TopologicalSort returns every NodeID ordered so that each node appears
// after all of its dependencies.
//
// Steps:
//  1. Count in-degrees (number of dependency slots) and build the reverse
//     (dependency -> dependents) adjacency.
//  2. Seed a FIFO queue with every zero in-degree node in NodeID order.
//  3. Pop, emit, and decrement each dependent; enqueue those that reach zero.
//  4. If fewer than Len() nodes were emitted, the rest lie on or behind a
//     cycle; return them in a *CycleError.
//
// A graph built only through Add is always acyclic; cycles can only be
// introduced through Replace.
//
// Complexity: O(V + E) time, O(V + E) memory.
func (g *Graph[T]) TopologicalSort() ([]NodeID, error) {
	n := len(g.nodes)
	// 1. In-degrees and reverse adjacency. A Binary node depending twice on
	// the same node contributes two slots; both are released together below.
	indeg := make([]int, n)
	dependents := make([][]int, n)
	for i, node := range g.nodes {
		for _, d := range node.Dependencies() {
			if d.idx < 0 || d.idx >= n {
				return nil, &InvalidHandleError{ID: d, Len: n}
			}
			indeg[i]++
			dependents[d.idx] = append(dependents[d.idx], i)
		}
	}

	// 2. Seed.
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			queue = append(queue, i)
		}
	}

	// 3. Drain.
	order := make([]NodeID, 0, n)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		order = append(order, NodeID{idx: cur})
		for _, dep := range dependents[cur] {
			indeg[dep]--
			if indeg[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	// 4. Leftovers.
	if len(order) < n {
		rest := make([]NodeID, 0, n-len(order))
		for i := 0; i < n; i++ {
			if indeg[i] > 0 {
				rest = append(rest, NodeID{idx: i})
			}
		}
		return nil, &CycleError{Unscheduled: rest}
	}

	return order, nil
}

// Reachable marks every node that root transitively depends on, root
// included. The result is indexed by NodeID.Index().
//
// Errors:
//   - *InvalidHandleError if root or any visited dependency is outside g.
//   - *CycleError listing the nodes on the detected path when a back-edge
//     (possible only after Replace) is found.
//
// Complexity: O(V + E).
func (g *Graph[T]) Reachable(root NodeID) ([]bool, error) {
	if !g.Contains(root) {
		return nil, &InvalidHandleError{ID: root, Len: len(g.nodes)}
	}
	w := &reachWalker[T]{
		graph: g,
		state: make([]uint8, len(g.nodes)),
	}
	if err := w.visit(root); err != nil {
		return nil, err
	}

	seen := make([]bool, len(g.nodes))
	for i, s := range w.state {
		seen[i] = s == black
	}

	return seen, nil
}

// reachWalker holds the state of one Reachable traversal.
type reachWalker[T Number[T]] struct {
	graph *Graph[T]
	state []uint8  // white, gray or black per node
	path  []NodeID // current gray path, reported on cycles
}

func (w *reachWalker[T]) visit(id NodeID) error {
	if !w.graph.Contains(id) {
		return &InvalidHandleError{ID: id, Len: len(w.graph.nodes)}
	}
	switch w.state[id.idx] {
	case black:
		return nil
	case gray:
		return &CycleError{Unscheduled: w.cyclePath(id)}
	}

	w.state[id.idx] = gray
	w.path = append(w.path, id)
	for _, d := range w.graph.nodes[id.idx].Dependencies() {
		if err := w.visit(d); err != nil {
			return err
		}
	}
	w.path = w.path[:len(w.path)-1]
	w.state[id.idx] = black

	return nil
}

// cyclePath returns the suffix of the gray path starting at id.
func (w *reachWalker[T]) cyclePath(id NodeID) []NodeID {
	for i := len(w.path) - 1; i >= 0; i-- {
		if w.path[i] == id {
			return append([]NodeID(nil), w.path[i:]...)
		}
	}
	return []NodeID{id}
}
