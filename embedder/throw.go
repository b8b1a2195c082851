// SPDX-License-Identifier: MIT
// Package: javacfg/embedder
//
// throw.go — splitOnThrow, grounded on __split_on_throw in
// cfg_extractor/language_structure/digraph_embedder.py.
//
// Role: for every throw fragment found, removes its descendants (dead
// code after an unconditional throw), tries to dispatch to the first
// matching catch clause, falls back to a synthetic uncaught-exception
// vertex when none matches, and truncates the vertex's value list down to
// and including the throw (unlike a redirected break/continue, which
// elides the jump — a throw's own fragment stays, since the thrown
// type is still meaningful to a reader of the graph).
//
// Preserved quirk (spec.md §9, intentionally not "fixed"): every catch
// scanned other than the one matched — including a catch that matches a
// *different* throw encountered later in the same pass — bubbles up in
// the returned free-catch list. A caller attaching free catches two
// levels up may see the same catch graph counted against more than one
// throw site.
package embedder

import (
	"github.com/javacfg-go/javacfg/ctx"
	"github.com/javacfg-go/javacfg/digraph"
)

// splitOnThrow scans g for throw fragments and dispatches each to the
// first catch in catches whose caught type matches, unioning the catch
// sub-graph in and adding a dispatch edge labeled with the catch clause's
// source text. Every other catch scanned (matched-elsewhere or
// never-matching) is returned in the free-catch list for an enclosing
// construct to attach. A throw matching nothing gets a synthetic,
// null-valued "uncaught" vertex labeled with the thrown type name.
func splitOnThrow(g *digraph.Graph, catches []PendingCatch, pq ctx.ParseQuery) (*digraph.Graph, []PendingCatch, error) {
	h := g.Copy()
	var freeCatches []PendingCatch
	throwSeen := false

	for _, v := range g.NodeIDs() {
		data := g.Value(v)
		for _, c := range data {
			if !isThrow(c) {
				continue
			}
			throwSeen = true

			desc := g.Descendants(v)
			descIDs := make([]int, 0, len(desc))
			for id := range desc {
				descIDs = append(descIDs, id)
			}
			h.RemoveNodes(descIDs)

			thrown, err := pq.ThrownTypeOf(c)
			if err != nil {
				return nil, nil, err
			}

			matched := false
			for _, catch := range catches {
				if matched {
					freeCatches = append(freeCatches, PendingCatch{Graph: catch.Graph})
					continue
				}
				caught, err := pq.CaughtTypeOf(catch.Clause)
				if err != nil {
					return nil, nil, err
				}
				if caught == thrown {
					shifted := catch.Graph.Shift(h.Len())
					unioned, err := h.Union(shifted)
					if err != nil {
						return nil, nil, err
					}
					h = unioned
					clauseText := ""
					if ct, ok := catch.Clause.(ctx.ClauseTexted); ok {
						clauseText = ct.ClauseText()
					}
					if err := h.AddEdge(v, shifted.Head(), digraph.Str(clauseText)); err != nil {
						return nil, nil, err
					}
					matched = true
				} else {
					freeCatches = append(freeCatches, PendingCatch{Graph: catch.Graph})
				}
			}
			if !matched {
				newID := h.Len()
				if err := h.AddNode(newID, nil); err != nil {
					return nil, nil, err
				}
				if err := h.AddEdge(v, newID, digraph.Str(thrown)); err != nil {
					return nil, nil, err
				}
			}

			h.SetValue(v, truncateThrough(data, c))
		}
	}

	if !throwSeen && len(catches) > 0 {
		freeCatches = append(freeCatches, catches...)
	}

	h.ResetNodeOrder()
	return h, freeCatches, nil
}
