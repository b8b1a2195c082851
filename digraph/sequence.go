// SPDX-License-Identifier: MIT
// Package: javacfg/digraph
//
// sequence.go — Concat and Merge, spec.md §4.2's sequencing operators.
//
// Role: every embedder that hands two straight-line fragments to the core
// (a leaf statement followed by the next) goes through one of these before
// an EmbedIn* wraps the result with construct-specific edges.
package digraph

// Concat produces a graph shaped left -> right: right is shifted by
// len(left), the two are unioned, and a fresh unlabeled edge joins
// left.Last() to the shifted right.Head(). The result's Head() is
// left.Head() (0, since left is never itself a shifted sub-graph at the
// point Concat is called) and Last() is the shifted right.Last().
//
// Complexity: O(V + E) of both graphs.
func Concat(left, right *Graph) (*Graph, error) {
	shifted := right.Shift(left.Len())
	g, err := left.Union(shifted)
	if err != nil {
		return nil, err
	}
	if err := g.AddEdge(left.Last(), shifted.Head(), NoLabel); err != nil {
		return nil, err
	}
	return g, nil
}

// Merge glues a block head onto a trailer that must share its entry point:
// right is shifted by len(left)-1 so that right.Head() fuses with
// left.Last(), then the two are unioned. If right is nil, Merge returns
// left unchanged.
//
// Complexity: O(V + E) of both graphs.
func Merge(left, right *Graph) (*Graph, error) {
	if right == nil {
		return left, nil
	}
	shifted := right.Shift(left.Len() - 1)
	return mergeUnion(left, shifted)
}

// mergeUnion unions left and shifted where shifted.Head() == left.Last():
// the fused vertex keeps left's value list and gains shifted's outgoing
// edges (Union itself requires disjoint ranges, so the one shared id is
// handled here rather than delegated to Union).
func mergeUnion(left, shifted *Graph) (*Graph, error) {
	out := left.Copy()
	fused := shifted.Head()
	for id, val := range shifted.values {
		if id == fused {
			continue // left already owns this vertex's identity
		}
		out.values[id] = val
	}
	for from, edges := range shifted.adj {
		out.adj[from] = append(out.adj[from], edges...)
	}
	return out, nil
}
