// SPDX-License-Identifier: MIT
// Package: javacfg/digraph
//
// reset.go — ResetNodeOrder and ResetListOrder: the renumbering pass every
// jump redirector, the throw splitter, and the null-node resolver run
// before returning, restoring the "vertex ids are exactly {0,...,n-1}"
// invariant after a batch of removals has left gaps.
//
// Role: spec.md §4.1. Order is preserved by ascending current id, so a
// caller who added the entry vertex as id 0 and the trailing join as the
// highest id keeps Head()==0 / Last()==len-1 after compaction, exactly as
// spec.md documents ("the caller ensures the correct vertex receives id 0
// or n-1 by adding it first / last respectively").
package digraph

import "github.com/javacfg-go/javacfg/ctx"

// ResetNodeOrder compacts vertex ids to {0, ..., len(g)-1}, preserving the
// relative (ascending) order of current ids, and relabels every incident
// edge in place. Returns the old-id -> new-id mapping so callers can re-key
// externally-held structures (exit-node lists, pending-catch lists) with
// ResetListOrder.
//
// Complexity: O(V + E).
func (g *Graph) ResetNodeOrder() map[int]int {
	oldIDs := g.NodeIDs() // ascending
	mapping := make(map[int]int, len(oldIDs))
	for newID, oldID := range oldIDs {
		mapping[oldID] = newID
	}

	newValues := make(map[int][]ctx.Ctx, len(g.values))
	for oldID, val := range g.values {
		newValues[mapping[oldID]] = val
	}

	newAdj := make(map[int][]edge, len(g.adj))
	for oldFrom, edges := range g.adj {
		relabeled := make([]edge, len(edges))
		for i, e := range edges {
			relabeled[i] = edge{to: mapping[e.to], label: e.label}
		}
		newAdj[mapping[oldFrom]] = relabeled
	}

	g.values = newValues
	g.adj = newAdj
	return mapping
}

// ExitEntry pairs a vertex id with the payload the jump redirectors and
// the null-node resolver attach to it: its value list and an optional edge
// label (the label of its own edge into the null node it was promoted
// through, when the exit was promoted from a null node — spec.md §4.5).
type ExitEntry struct {
	ID    int
	Value []ctx.Ctx
	Label Label
}

// ResetListOrder relabels an externally held list of exit entries using the
// mapping produced by the most recent ResetNodeOrder call on this graph.
// Entries whose id is absent from mapping (already renumbered, or stale)
// are passed through unchanged.
func ResetListOrder(entries []ExitEntry, mapping map[int]int) []ExitEntry {
	out := make([]ExitEntry, len(entries))
	for i, e := range entries {
		if newID, ok := mapping[e.ID]; ok {
			e.ID = newID
		}
		out[i] = e
	}
	return out
}
