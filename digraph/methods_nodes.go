// SPDX-License-Identifier: MIT
// Package: javacfg/digraph
//
// methods_nodes.go — vertex lifecycle: AddNode/AddNodes, RemoveNode/RemoveNodes.
//
// Determinism:
//   - NodeIDs() (used throughout this file's callers) is sorted ascending.
// Role:
//   - Mirrors spec.md §4.1's add_node/add_nodes_from/remove_node/remove_nodes_from.
//     Removal is silently a no-op on a missing id: the throw redirector
//     relies on this when it removes a vertex's descendants and may revisit
//     an already-removed id.
package digraph

import (
	"fmt"
	"sort"

	"github.com/javacfg-go/javacfg/ctx"
)

// AddNode inserts a fresh vertex holding value. Fails with ErrDuplicateNode
// if id is already present; callers are responsible for assigning ids that
// preserve density (the embedders add their head as 0 and give trailing
// vertices the ids just past their shifted sub-graphs).
//
// Complexity: O(1).
func (g *Graph) AddNode(id int, value []ctx.Ctx) error {
	if g.HasNode(id) {
		return fmt.Errorf("AddNode(%d): %w", id, ErrDuplicateNode)
	}
	g.values[id] = value
	g.adj[id] = nil
	return nil
}

// NodeEntry pairs a vertex id with its value list, the batched form AddNodes
// accepts (spec.md's add_nodes_from).
type NodeEntry struct {
	ID    int
	Value []ctx.Ctx
}

// AddNodes inserts every entry in order, stopping at (and returning) the
// first error.
func (g *Graph) AddNodes(entries []NodeEntry) error {
	for _, e := range entries {
		if err := g.AddNode(e.ID, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// RemoveNode deletes vertex id and every edge incident to it. No-op if id
// is missing.
//
// Complexity: O(V + deg(id)) — scans all adjacency lists to drop inbound
// edges; acceptable given the specification's per-throw O(V+E) budget.
func (g *Graph) RemoveNode(id int) {
	if !g.HasNode(id) {
		return
	}
	delete(g.values, id)
	delete(g.adj, id)
	for from, edges := range g.adj {
		kept := edges[:0]
		for _, e := range edges {
			if e.to != id {
				kept = append(kept, e)
			}
		}
		g.adj[from] = kept
	}
}

// RemoveNodes deletes every id in ids. No-op for ids that are missing.
func (g *Graph) RemoveNodes(ids []int) {
	for _, id := range ids {
		g.RemoveNode(id)
	}
}

// NodeIDs returns the live vertex ids in ascending order.
func (g *Graph) NodeIDs() []int {
	ids := make([]int, 0, len(g.values))
	for id := range g.values {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
