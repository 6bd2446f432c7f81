// File: graph.go
// Role: Node arena with structural deduplication and in-place replacement.
// Concurrency:
//   - No internal locking. Mutations (Add/Replace) require exclusive access;
//     read-only use from several goroutines is safe once building is done.
// AI-HINT (file):
//   - Add never creates a duplicate of an existing equivalent node.
//   - Replace keeps the NodeID; it re-buckets the id under the new hash.

package core

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-multierror"
)

// Graph owns every node of one computation DAG.
//
// nodes is indexed by NodeID; buckets maps a structural hash to the ids
// whose current contents have that hash; hashes[i] is the hash id i is
// bucketed under.
type Graph[T Number[T]] struct {
	nodes   []Node[T]
	hashes  []uint64
	buckets map[uint64][]NodeID
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphOptions)

type graphOptions struct {
	capacity int
}

// WithCapacity preallocates room for n nodes.
func WithCapacity(n int) GraphOption {
	return func(o *graphOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(capacity).
func NewGraph[T Number[T]](opts ...GraphOption) *Graph[T] {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[T]{
		nodes:   make([]Node[T], 0, o.capacity),
		hashes:  make([]uint64, 0, o.capacity),
		buckets: make(map[uint64][]NodeID, o.capacity),
	}
}

// Len returns the number of nodes in the graph.
func (g *Graph[T]) Len() int { return len(g.nodes) }

// Contains reports whether id refers to a node of g.
func (g *Graph[T]) Contains(id NodeID) bool {
	return id.idx >= 0 && id.idx < len(g.nodes)
}

// Add inserts node unless an equivalent node already exists, in which case
// the existing NodeID is returned. Repeated calls with equivalent nodes
// always return the same NodeID.
//
// Errors:
//   - ErrNilNode, ErrEmptyInputName, ErrBadOperation for malformed nodes.
//   - *InvalidHandleError if a dependency is not already in the graph.
//
// Complexity: O(1) amortized plus the length of the probed hash bucket.
func (g *Graph[T]) Add(node Node[T]) (NodeID, error) {
	// Dependencies must already exist, which keeps construction monotonic.
	if err := node.check(len(g.nodes)); err != nil {
		return NodeID{}, err
	}

	h := node.Hash()
	for _, existing := range g.buckets[h] {
		if g.nodes[existing.idx].Equivalent(node) {
			return existing, nil
		}
	}

	id := NodeID{idx: len(g.nodes)}
	g.nodes = append(g.nodes, node)
	g.hashes = append(g.hashes, h)
	g.buckets[h] = append(g.buckets[h], id)

	return id, nil
}

// Constant adds (or reuses) a Constant node holding v.
func (g *Graph[T]) Constant(v T) NodeID {
	id, _ := g.Add(NewConstant(v)) // constants are always well formed
	return id
}

// Input adds (or reuses) an Input node named name.
func (g *Graph[T]) Input(name string) (NodeID, error) {
	return g.Add(NewInput[T](name))
}

// Unary adds (or reuses) the node op(dep).
func (g *Graph[T]) Unary(op Op, dep NodeID) (NodeID, error) {
	return g.Add(NewUnary[T](op, dep))
}

// Binary adds (or reuses) the node op(left, right).
func (g *Graph[T]) Binary(op Op, left, right NodeID) (NodeID, error) {
	return g.Add(NewBinary[T](op, left, right))
}

// Node returns the node stored at id.
// Returns *InvalidHandleError if id is outside the graph.
func (g *Graph[T]) Node(id NodeID) (Node[T], error) {
	if !g.Contains(id) {
		return Node[T]{}, &InvalidHandleError{ID: id, Len: len(g.nodes)}
	}
	return g.nodes[id.idx], nil
}

// Replace overwrites the node at id, preserving the id so that dependents
// and outstanding handles stay valid. It is meant for optimization passes.
//
// The new node's dependencies must exist. Replace does not check ordering:
// the caller guarantees no cycle is introduced, and TopologicalSort reports
// one if it was.
func (g *Graph[T]) Replace(id NodeID, node Node[T]) error {
	if !g.Contains(id) {
		return &InvalidHandleError{ID: id, Len: len(g.nodes)}
	}
	if err := node.check(len(g.nodes)); err != nil {
		return fmt.Errorf("core: replace %s: %w", id, err)
	}

	old := g.hashes[id.idx]
	g.buckets[old] = slices.DeleteFunc(g.buckets[old], func(x NodeID) bool { return x == id })
	if len(g.buckets[old]) == 0 {
		delete(g.buckets, old)
	}

	h := node.Hash()
	g.nodes[id.idx] = node
	g.hashes[id.idx] = h
	g.buckets[h] = append(g.buckets[h], id)

	return nil
}

// Inputs returns the names of all Input nodes, sorted.
func (g *Graph[T]) Inputs() []string {
	var names []string
	for _, n := range g.nodes {
		if n.kind == KindInput {
			names = append(names, n.name)
		}
	}
	slices.Sort(names)

	return slices.Compact(names)
}

// View is the read-only per-node export surface used by visualizers.
type View struct {
	ID           NodeID
	Kind         Kind
	Label        string
	Dependencies []NodeID
}

// Views returns one View per node in NodeID order.
// Complexity: O(V).
func (g *Graph[T]) Views() []View {
	out := make([]View, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = View{
			ID:           NodeID{idx: i},
			Kind:         n.kind,
			Label:        n.Label(),
			Dependencies: n.Dependencies(),
		}
	}

	return out
}

// Validate checks every structural invariant and reports all violations
// at once:
//   - each node is well formed (kind, op arity, input name);
//   - each dependency refers to a node created strictly earlier;
//   - no two non-constant nodes are structurally equivalent.
//
// Constant duplicates are tolerated: constant folding turns subgraphs
// into Constants in place and may produce a value that already exists.
func (g *Graph[T]) Validate() error {
	var result *multierror.Error
	for i, n := range g.nodes {
		id := NodeID{idx: i}
		// check against i, not len: dependencies must precede the node.
		if err := n.check(i); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", id, err))
		}
	}
	for _, ids := range g.buckets {
		for a := 0; a < len(ids); a++ {
			na := g.nodes[ids[a].idx]
			if na.kind == KindConstant {
				continue
			}
			for b := a + 1; b < len(ids); b++ {
				if na.Equivalent(g.nodes[ids[b].idx]) {
					first, second := ids[a], ids[b]
					if second.Less(first) {
						first, second = second, first
					}
					result = multierror.Append(result,
						fmt.Errorf("%s: duplicates %s (%s)", second, first, na))
				}
			}
		}
	}

	return result.ErrorOrNil()
}
