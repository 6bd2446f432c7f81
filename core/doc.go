// Package core provides the computation-graph arena: node handles, the
// closed set of node variants, and the deduplicating Graph that owns them.
//
// The Graph G = (V,E) is a DAG of arithmetic operations:
//
//   - Nodes live in a single growable slice; a NodeID is an index into it.
//   - Edges are implicit: every node stores the NodeIDs it depends on, and
//     dependencies always refer to nodes created earlier (monotonic build).
//   - Structural deduplication (common-subexpression elimination): Add hashes
//     the requested node, probes the hash bucket and returns the existing
//     NodeID if an equivalent node is already present.
//   - In-place rewriting: Replace swaps a node's contents while preserving
//     its NodeID, so dependents and outstanding handles stay valid.
//   - Generic value type: Graph[T] works for any T satisfying Number[T];
//     Real is the plain float64 instance, dual.Dual the forward-mode AD one.
//
// Node variants (Kind):
//
//	const  – Constant{value}, no dependencies
//	input  – Input{name}, no dependencies, value supplied at evaluation time
//	unary  – Unary{op, dep}
//	binary – Binary{op, left, right}, order-sensitive
//
// Core Methods:
//
//	Add(node) (NodeID, error)            // O(1) amortized + bucket probe
//	Constant/Input/Unary/Binary          // Add wrappers
//	Replace(id, node) error              // O(1), used by optimization passes
//	Node(id) (Node[T], error)            // bounds-checked lookup
//	TopologicalSort() ([]NodeID, error)  // Kahn, O(V+E)
//	Reachable(root) ([]bool, error)      // dependency closure, O(V+E)
//	Views() []View                       // read-only export surface
//	Validate() error                     // aggregated structural check
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Concurrent reads (Node,
//	TopologicalSort, Views, evaluation) over a graph that is not being
//	extended or rewritten are safe: none of them touch graph state.
//
// Errors:
//
//	ErrInvalidHandle    – NodeID outside the graph (*InvalidHandleError)
//	ErrCycleDetected    – topological sort could not order all nodes (*CycleError)
//	ErrUnevaluableNode  – Input node asked to evaluate itself
//	ErrBadOperation     – op tag does not match the node variant's arity
//	ErrEmptyInputName   – Input with an empty name
//	ErrNilNode          – zero-value Node passed to Add/Replace
package core
