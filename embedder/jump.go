// SPDX-License-Identifier: MIT
// Package: javacfg/embedder
//
// jump.go — directNodesTo, the unified jump-redirection transform spec.md
// §4.4 describes, plus the three thin wrappers (splitOnBreak/Continue/
// Return) every loop, switch, and function embedder runs it through.
//
// Role: grounded directly on __direct_nodes_to_if in
// cfg_extractor/language_structure/digraph_embedder.py. The four cases in
// directNodesTo are exactly the four branches that function takes,
// dispatching on (has successors, target given).
package embedder

import (
	"github.com/javacfg-go/javacfg/ctx"
	"github.com/javacfg-go/javacfg/digraph"
)

// directNodesTo scans every vertex of g for a fragment matching predicate.
// When found:
//
//   - If the vertex still has outgoing edges (its block is still wired
//     onward, e.g. to an enclosing join or a switch arm's fallthrough):
//     those edges are dropped; if target is non-nil a fresh unlabeled edge
//     to *target is added and the jump (and everything after it) is
//     elided from the vertex's value list; if target is nil the vertex is
//     recorded as an exit (its full, untruncated value list is kept — the
//     caller has nowhere to redirect to yet).
//   - If the vertex has no outgoing edges (the jump already falls off the
//     end): target given means the fall-off-the-end path is already
//     correct and nothing changes; target nil means the vertex is recorded
//     as an exit, this time truncated to keep everything up to and
//     including the matched fragment.
//
// g is never mutated; the returned graph is always a copy, renumbered via
// ResetNodeOrder before return. When target is nil, the second return
// value carries the matched vertices as ExitEntry (value + the label that
// will later matter to a promoting null-node resolution); it is empty
// when target is given.
func directNodesTo(g *digraph.Graph, target *int, predicate func(ctx.Ctx) bool) (*digraph.Graph, []digraph.ExitEntry) {
	h := g.Copy()
	var exits []digraph.ExitEntry

	for _, v := range g.NodeIDs() {
		data := g.Value(v)
		for _, c := range data {
			if !predicate(c) {
				continue
			}
			succs := g.Successors(v)
			if len(succs) > 0 {
				for _, s := range succs {
					h.RemoveEdge(v, s)
				}
				if target != nil {
					_ = h.AddEdge(v, *target, digraph.NoLabel)
					h.SetValue(v, truncateBefore(data, c))
				} else {
					exits = append(exits, digraph.ExitEntry{ID: v, Value: data, Label: digraph.NoLabel})
				}
			} else {
				if target == nil {
					h.SetValue(v, truncateThrough(data, c))
					exits = append(exits, digraph.ExitEntry{ID: v, Value: h.Value(v), Label: digraph.NoLabel})
				}
				// target given, no successors: the fall-off path is already correct.
			}
		}
	}

	h.ResetNodeOrder()
	return h, exits
}

// truncateBefore returns data[:i] where i is the index of needle (elides
// the jump statement and anything scheduled after it).
func truncateBefore(data []ctx.Ctx, needle ctx.Ctx) []ctx.Ctx {
	i := indexOf(data, needle)
	if i < 0 {
		return data
	}
	return append([]ctx.Ctx(nil), data[:i]...)
}

// truncateThrough returns data[:i+1] where i is the index of needle (keeps
// the jump statement itself, unlike truncateBefore).
func truncateThrough(data []ctx.Ctx, needle ctx.Ctx) []ctx.Ctx {
	i := indexOf(data, needle)
	if i < 0 {
		return data
	}
	return append([]ctx.Ctx(nil), data[:i+1]...)
}

// indexOf finds the first occurrence of needle in data by identity.
func indexOf(data []ctx.Ctx, needle ctx.Ctx) int {
	for i, c := range data {
		if c == needle {
			return i
		}
	}
	return -1
}

func isBreak(c ctx.Ctx) bool    { return c.Kind() == ctx.Break }
func isContinue(c ctx.Ctx) bool { return c.Kind() == ctx.Continue }
func isReturn(c ctx.Ctx) bool   { return c.Kind() == ctx.Return }
func isThrow(c ctx.Ctx) bool    { return c.Kind() == ctx.Throw }

// splitOnBreak redirects every break fragment in g to join, the vertex
// following the enclosing loop or switch.
func splitOnBreak(g *digraph.Graph, join int) *digraph.Graph {
	h, _ := directNodesTo(g, &join, isBreak)
	return h
}

// splitOnContinue redirects every continue fragment in g to target, the
// enclosing loop's re-test point (its condition vertex for while/do-while,
// its successor vertex for for-loops).
func splitOnContinue(g *digraph.Graph, target int) *digraph.Graph {
	h, _ := directNodesTo(g, &target, isContinue)
	return h
}

// splitOnReturn has no redirect target: every return fragment becomes an
// exit node instead, to be folded into the function's overall exit set by
// the null-node resolver.
func splitOnReturn(g *digraph.Graph) (*digraph.Graph, []digraph.ExitEntry) {
	return directNodesTo(g, nil, isReturn)
}
