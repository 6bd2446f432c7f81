// Package parse compiles arithmetic expressions written in HCL expression
// syntax into a core.Graph.
//
// Supported grammar:
//
//	number literals          1, 2.5, 1e-3
//	variable references      x, rate
//	binary operators         + - * /   (usual precedence)
//	unary minus              -x
//	parentheses              (x + 1) * y
//	functions                sin cos exp log sqrt (1 argument)
//	                         pow (2 arguments)
//	                         pi e (no arguments)
//
// Everything else HCL can express (strings, conditionals, collections,
// attribute traversals, %) is rejected with ErrUnsupported.
package parse
