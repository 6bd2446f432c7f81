// Package viz exports computation graphs in Graphviz DOT format and
// optionally renders them with a Graphviz filter program.
//
// WriteDOT consumes only the read-only Views of a graph:
//
//	input    circle,  pink
//	const    box,     lightpink
//	unary    Mcircle, peachpuff
//	binary   Mcircle, peachpuff
//
// Edges point from a dependency to the node that consumes it, so the
// drawing reads top-down from inputs to the result.
package viz
