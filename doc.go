// Package cgraph is an in-memory toolkit for arithmetic computation graphs:
// build them with automatic sharing of identical subexpressions, evaluate
// them under interchangeable policies, rewrite them with optimisation
// passes and differentiate them with dual numbers.
//
// What is a computation graph here?
//
//	A DAG whose nodes are constants, named inputs and unary/binary
//	operations. Nodes live in an arena and are addressed by NodeID; adding a
//	node that already exists returns the existing NodeID, so x*3 built twice
//	is stored once.
//
// Packages:
//
//	core/    Graph[T], Node[T], NodeID, Op, Number constraint, Kahn sort,
//	         reachability, structural validation
//	eval/    Eager and Lazy policies, logging Evaluator, concurrent batches
//	opt/     ConstantFolding pass and Pipeline
//	dual/    Dual numbers for forward-mode differentiation, Gradient
//	expr/    operator-style Expression builder
//	parse/   HCL expression syntax -> graph compiler
//	viz/     Graphviz DOT export and rendering
//	metrics/ Prometheus collectors and /metrics endpoint
//	config/  YAML + environment configuration for the CLI
//	logging/ slog logger construction
//	cmd/cgraph  command-line front end (eval, grad, dot, repl)
//
// Quick start:
//
//	g := core.NewGraph[core.Real]()
//	x := expr.Input(g, "x")
//	y := expr.Input(g, "y")
//	f := x.Sin().Mul(y.AddScalar(2)).Add(expr.Constant[core.Real](g, 3).Mul(x).Mul(x))
//	v, err := f.Evaluate(eval.Lazy[core.Real]{}, eval.Context[core.Real]{"x": 0, "y": 4})
//
// Complexity:
//
//   - Add: O(1) amortized plus the probed hash bucket.
//   - TopologicalSort, Eager evaluation, ConstantFolding: O(V + E).
//   - Lazy evaluation: O(V' + E') over root's dependency closure.
package cgraph
