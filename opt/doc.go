// Package opt provides graph rewriting passes.
//
// A Pass rewrites a core.Graph in place through Graph.Replace, so every
// NodeID stays valid and every dependent keeps pointing at the same handle.
//
// ConstantFolding walks the graph in topological order and replaces each
// operation node whose dependencies are all constant (transitively) with a
// Constant holding its value. Only nodes root depends on are touched.
// Running it twice is a no-op the second time.
//
// Pipeline runs passes in order, logging each Report through slog.
package opt
