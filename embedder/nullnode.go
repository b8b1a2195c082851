// SPDX-License-Identifier: MIT
// Package: javacfg/embedder
//
// nullnode.go — resolveNullNode and resolveCatchNullNodes, grounded on
// __resolve_null_node / __resolve_catch_null_nodes in
// cfg_extractor/language_structure/digraph_embedder.py.
//
// Role: the null-node elimination pass spec.md §4.5 describes. A null
// node is a structural join with no source fragment of its own; once the
// graph it sits in is fully assembled, it collapses: every predecessor
// gets wired directly to every successor (inheriting the predecessor
// edge's label), and a null node with no successors instead promotes each
// predecessor to an exit.
package embedder

import "github.com/javacfg-go/javacfg/digraph"

// resolveNullNode collapses every null node in g, folding exits and free
// catches in along the way. exits is the caller's running exit-node list
// (e.g. from splitOnReturn); catches is the set of free catches still
// waiting to be attached — each is unioned in after the main collapse and
// run through resolveCatchNullNodes in turn, exactly mirroring the
// source's per-catch loop after the primary null-node pass.
//
// Queries against the *original* g's topology decide which vertices are
// null (a vertex's value list never changes mid-pass), but predecessor/
// successor lookups run against h, the graph actually being mutated — by
// the time a later vertex is processed, an earlier null node's collapse
// may already have rewired an edge feeding into it.
func resolveNullNode(g *digraph.Graph, catches []PendingCatch, exits []digraph.ExitEntry) (*digraph.Graph, []digraph.ExitEntry) {
	h := g.Copy()
	newExits := append([]digraph.ExitEntry(nil), exits...)

	for _, v := range g.NodeIDs() {
		if !g.IsNull(v) {
			continue
		}
		preds := h.Predecessors(v)
		succs := h.Successors(v)

		if len(succs) > 0 {
			for _, p := range preds {
				label, _ := h.EdgeLabel(p, v)
				for _, s := range succs {
					_ = h.AddEdge(p, s, label)
				}
				h.RemoveEdge(p, v)
			}
			for _, s := range succs {
				h.RemoveEdge(v, s)
			}
		} else {
			for _, p := range preds {
				label, _ := h.EdgeLabel(p, v)
				newExits = append(newExits, digraph.ExitEntry{ID: p, Value: h.Value(p), Label: label})
				h.RemoveEdge(p, v)
			}
		}
		h.RemoveNode(v)
	}

	mapping := h.ResetNodeOrder()
	newExits = digraph.ResetListOrder(newExits, mapping)

	for _, catch := range catches {
		if catch.Graph == nil {
			continue
		}
		shifted := catch.Graph.Shift(h.Len())
		unioned, err := h.Union(shifted)
		if err != nil {
			continue // disjoint by construction; a failure here means the caller mis-shifted, not a runtime condition to report through this path
		}
		h = resolveCatchNullNodes(unioned)
	}

	return h, newExits
}

// resolveCatchNullNodes collapses null nodes introduced by a just-attached
// free-catch sub-graph. Unlike resolveNullNode it never promotes a
// successor-less null node to an exit — an unreachable catch body that
// dead-ends stays dead-ended, matching the source's simpler per-catch
// pass. Predecessor/successor lookups here run against the graph argument
// itself (a static snapshot for this call), not the copy being mutated.
func resolveCatchNullNodes(g *digraph.Graph) *digraph.Graph {
	h := g.Copy()

	for _, v := range g.NodeIDs() {
		if !g.IsNull(v) {
			continue
		}
		preds := g.Predecessors(v)
		succs := g.Successors(v)

		for _, p := range preds {
			label, _ := g.EdgeLabel(p, v)
			if len(succs) > 0 {
				for _, s := range succs {
					_ = h.AddEdge(p, s, label)
				}
				h.RemoveEdge(p, v)
				for _, s := range succs {
					h.RemoveEdge(v, s)
				}
			} else {
				h.RemoveEdge(p, v)
			}
		}
		h.RemoveNode(v)
	}

	h.ResetNodeOrder()
	return h
}
