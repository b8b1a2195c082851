// SPDX-License-Identifier: MIT
// Package: javacfg/embedder
//
// trycatch.go — EmbedInTryCatch, grounded on embed_in_try_catch in
// cfg_extractor/language_structure/digraph_embedder.py.
package embedder

import (
	"github.com/javacfg-go/javacfg/ctx"
	"github.com/javacfg-go/javacfg/digraph"
)

// EmbedInTryCatch runs the try body's own throws against its own catch
// clauses. catchClauses and catchBodies are parallel slices (the i'th
// clause owns the i'th body). It returns the try body's graph — already
// dispatched to whichever catch matched a throw inside it — plus whatever
// catches went unused (no throw in the try body matched them, or a throw
// matched a catch other than them): those are not unioned into the result
// here, and nothing else in this package attaches them either —
// EmbedInFunction accepts such a list but does not use it.
func EmbedInTryCatch(tryBody *digraph.Graph, catchClauses []ctx.Ctx, catchBodies []*digraph.Graph, pq ctx.ParseQuery) (*digraph.Graph, []PendingCatch, error) {
	catches := make([]PendingCatch, len(catchBodies))
	for i, body := range catchBodies {
		catches[i] = PendingCatch{Graph: body, Clause: catchClauses[i]}
	}
	return splitOnThrow(tryBody.Copy(), catches, pq)
}
