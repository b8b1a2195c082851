// SPDX-License-Identifier: MIT
// Package: javacfg/digraph
//
// clone.go — Copy, the snapshot every jump redirector and splitOnThrow take
// before mutating (grounded on core.Clone/core.CloneEmpty in the teacher
// package, adapted from string-keyed vertices to the dense int-id model).
//
// Role: the Python original's `h = graph.copy()` pattern — each redirector
// iterates the original graph.node_items while writing into h, so removals
// and edge rewrites on h never perturb the iteration in progress.
package digraph

// Copy returns a deep copy of g: independent value-list slices and edge
// slices, safe to mutate without affecting the receiver.
//
// Complexity: O(V + E).
func (g *Graph) Copy() *Graph { return g.clone() }

func (g *Graph) clone() *Graph {
	out := New()
	for id, val := range g.values {
		out.values[id] = append(out.values[id][:0:0], val...)
	}
	for from, edges := range g.adj {
		out.adj[from] = append(out.adj[from][:0:0], edges...)
	}
	return out
}
