// Package eval evaluates a node of a core.Graph under a named policy.
//
// What:
//
//   - Eager: one topological sort, then every node of the graph computed
//     into a dense value array. Cost is O(V+E) over the whole graph even when
//     root's subgraph is small; that is the price of no recursion and no
//     memo bookkeeping.
//   - Lazy: recursive, memoised evaluation of root's dependency closure only.
//     Each reachable node is computed once; cycles (introduced via Replace)
//     are detected by White/Gray/Black marks.
//
// Both policies read Input values from a Context and produce the same
// value for the same (graph, root, context).
//
// Missing bindings:
//
//	Eager poisons an unbound Input and everything downstream of it, so an
//	unbound input that root does not depend on is harmless. Lazy never
//	visits such inputs at all. Either way, a binding root actually needs
//	yields *MissingVariableError.
//
// Extras:
//
//	ByName(name)           – "eager"/"topological"/"naive", "lazy"/"memo"
//	New(policy, opts...)   – Evaluator: policy plus slog debug logging
//	EvaluateAll(ctx, ...)  – concurrent batch over one read-only graph
//
// Errors:
//
//	ErrMissingVariable  – Input has no binding (*MissingVariableError)
//	ErrUnknownPolicy    – ByName could not resolve the policy name
//	core.ErrCycleDetected, core.ErrInvalidHandle pass through unchanged.
//
// No partial results are ever returned alongside an error.
package eval
