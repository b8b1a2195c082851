// SPDX-License-Identifier: MIT
// Package: javacfg/embedder
//
// function.go — EmbedInFunction, grounded on embed_in_function in
// cfg_extractor/language_structure/digraph_embedder.py.
package embedder

import (
	"github.com/javacfg-go/javacfg/ctx"
	"github.com/javacfg-go/javacfg/digraph"
)

// EmbedInFunction assembles a function/method body into its final graph:
// an absent body becomes a single empty vertex, any throw reachable from
// the top level gets dispatched or marked uncaught, every return becomes
// an exit candidate, and the null-node resolver folds exits and any
// surviving free catches in.
//
// catches is the free-catch list bubbled up from the body's own nested
// try-catch constructs — accepted for symmetry with EmbedInTryCatch, but
// never actually used. This matches the source's own embed_in_function
// exactly: it calls __split_on_throw(g, []) with a hardcoded empty catch
// list rather than the catches parameter it was handed, and passes
// __split_on_throw's own (therefore always-empty) return value on to the
// null-node resolver — so a try-catch nested inside a function body that
// itself doesn't fully consume its catches silently loses them at the
// function boundary. Not a redirect-to-something-else bug like the
// free-catch over-collection in splitOnThrow; this one just drops the
// list on the floor. Preserved rather than silently corrected — see the
// design ledger.
func EmbedInFunction(body *digraph.Graph, catches []PendingCatch, pq ctx.ParseQuery) (*digraph.Graph, []digraph.ExitEntry, error) {
	if body == nil {
		// Nothing to scan for throws or returns, and the sole vertex has
		// neither predecessor nor successor — routing it through
		// resolveNullNode would delete it outright (a null vertex with no
		// predecessors is promoted to nothing, not an exit), leaving a
		// zero-vertex graph. Short-circuit instead: the vertex itself is
		// the function's only exit.
		g := digraph.New()
		if err := g.AddNode(0, nil); err != nil {
			return nil, nil, err
		}
		return g, []digraph.ExitEntry{{ID: 0, Value: nil, Label: digraph.NoLabel}}, nil
	}
	g := body.Copy()

	afterThrow, droppedCatches, err := splitOnThrow(g, nil, pq)
	if err != nil {
		return nil, nil, err
	}

	afterReturn, exits := splitOnReturn(afterThrow)

	resolved, resolvedExits := resolveNullNode(afterReturn, droppedCatches, exits)
	return resolved, resolvedExits, nil
}
