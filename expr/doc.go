// Package expr is an operator-style builder over core.Graph.
//
// An Expression is a (graph, root) pair. Combining two Expressions adds the
// corresponding node to their shared graph, so structural sharing happens
// automatically:
//
//	g := core.NewGraph[core.Real]()
//	x := expr.Input(g, "x")
//	f := x.MulScalar(3).Mul(x.MulScalar(3)) // x, 3, x*3, (x*3)*(x*3): 4 nodes
//
// Combining Expressions of different graphs is a programming error and
// panics, as does an empty Input name.
package expr
