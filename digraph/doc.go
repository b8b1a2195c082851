// Package digraph implements the densely-numbered directed multigraph that
// the CFG assembler composes: integer vertices {0,...,n-1}, an ordered
// []ctx.Ctx value list per vertex, and edges carrying an optional Label
// (True/False/Str/NoLabel).
//
// The type is intentionally minimal next to the teacher package it is
// grounded on (lvlath/core): no string-keyed vertices, no weights, no
// mixed-directedness, no locking — a digraph.Graph is built, shifted,
// unioned, and discarded within one embedder call chain, never shared
// across goroutines (specification §5).
//
//	g := digraph.New()
//	g.AddNode(0, []ctx.Ctx{cond})
//	g.AddNode(1, nil)
//	g.AddEdge(0, 1, digraph.True)
//
// Shift (G >> k) and Union (G₁ | G₂) are the two primitives every
// structural embedder composes sub-graphs with; Concat and Merge are the
// two sequencing operators used to chain straight-line fragments before an
// embedder wraps the result with construct-specific edges.
package digraph
