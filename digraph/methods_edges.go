// SPDX-License-Identifier: MIT
// Package: javacfg/digraph
//
// methods_edges.go — AddEdge/AddEdges, RemoveEdge/RemoveEdges, Predecessors/
// Successors/Descendants.
//
// Determinism:
//   - Successors(v) preserves insertion order (the order embedders wired
//     edges in); Predecessors(v) is sorted ascending by source id.
// Role:
//   - Mirrors spec.md §4.1. Duplicate unlabeled edges are idempotent;
//     RemoveEdge/RemoveEdges are silent no-ops on a missing pair, which the
//     throw redirector and null-node resolver both depend on.
package digraph

import (
	"fmt"
	"sort"
)

// EdgeEntry is one (from, to, label) triple, the batched form AddEdges
// accepts (spec.md's add_edges_from). A zero Label is NoLabel.
type EdgeEntry struct {
	From, To int
	Label    Label
}

// AddEdge adds an edge from->to with the given label. Both endpoints must
// already exist. A duplicate *unlabeled* edge between the same pair is a
// no-op (idempotent), matching networkx DiGraph.add_edge semantics the
// original relies on; labeled edges (case/catch/throw dispatch) are always
// appended, since the embedders never add two unlabeled edges between the
// same pair on purpose.
//
// Complexity: O(deg(from)) to de-duplicate.
func (g *Graph) AddEdge(from, to int, label Label) error {
	if !g.HasNode(from) || !g.HasNode(to) {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrMissingEndpoint)
	}
	if label.IsAbsent() {
		for _, e := range g.adj[from] {
			if e.to == to && e.label.IsAbsent() {
				return nil
			}
		}
	}
	g.adj[from] = append(g.adj[from], edge{to: to, label: label})
	return nil
}

// AddEdges adds every entry in order, stopping at (and returning) the first
// error.
func (g *Graph) AddEdges(entries []EdgeEntry) error {
	for _, e := range entries {
		if err := g.AddEdge(e.From, e.To, e.Label); err != nil {
			return err
		}
	}
	return nil
}

// RemoveEdge removes one from->to edge (the first one found, label
// irrespective). No-op if none exists.
func (g *Graph) RemoveEdge(from, to int) {
	edges := g.adj[from]
	for i, e := range edges {
		if e.to == to {
			g.adj[from] = append(edges[:i], edges[i+1:]...)
			return
		}
	}
}

// RemoveEdges removes every (from, to) pair in pairs. No-op for pairs that
// do not exist.
func (g *Graph) RemoveEdges(pairs [][2]int) {
	for _, p := range pairs {
		g.RemoveEdge(p[0], p[1])
	}
}

// Successors returns the ids v has outgoing edges to, in the order the
// edges were added.
func (g *Graph) Successors(v int) []int {
	edges := g.adj[v]
	out := make([]int, len(edges))
	for i, e := range edges {
		out[i] = e.to
	}
	return out
}

// SuccessorEdges returns v's outgoing (to, label) pairs, in insertion order.
func (g *Graph) SuccessorEdges(v int) []EdgeEntry {
	edges := g.adj[v]
	out := make([]EdgeEntry, len(edges))
	for i, e := range edges {
		out[i] = EdgeEntry{From: v, To: e.to, Label: e.label}
	}
	return out
}

// EdgeLabel returns the label of the first v->to edge, and whether one exists.
func (g *Graph) EdgeLabel(v, to int) (Label, bool) {
	for _, e := range g.adj[v] {
		if e.to == to {
			return e.label, true
		}
	}
	return NoLabel, false
}

// Predecessors returns the ids with an outgoing edge to v, sorted ascending.
//
// Complexity: O(V + E).
func (g *Graph) Predecessors(v int) []int {
	var preds []int
	for from, edges := range g.adj {
		for _, e := range edges {
			if e.to == v {
				preds = append(preds, from)
				break
			}
		}
	}
	sort.Ints(preds)
	return preds
}

// Descendants returns the transitive successor set of v, excluding v
// itself, as a set (order unspecified — callers needing order should sort
// the returned ids).
//
// Complexity: O(V + E).
func (g *Graph) Descendants(v int) map[int]struct{} {
	seen := make(map[int]struct{})
	stack := []int{v}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range g.Successors(cur) {
			if _, ok := seen[to]; ok {
				continue
			}
			seen[to] = struct{}{}
			stack = append(stack, to)
		}
	}
	delete(seen, v)
	return seen
}
