// SPDX-License-Identifier: MIT
// Package: javacfg/embedder
//
// types.go — PendingCatch, the one type this package adds beyond what
// digraph and ctx already provide.
//
// Role: spec.md §4.3/§4.4/§9. A PendingCatch is a catch sub-graph paired
// with the catch-clause Ctx it was built from; EmbedInTryCatch produces a
// list of these, and splitOnThrow consumes (and re-produces, as "free
// catches") them. EmbedInFunction accepts such a list but does not attach
// it (see its doc comment).
package embedder

import (
	"github.com/javacfg-go/javacfg/ctx"
	"github.com/javacfg-go/javacfg/digraph"
)

// PendingCatch pairs a catch-block sub-graph with the parse-tree fragment
// for its catch clause. Clause is nil on a "free catch" that splitOnThrow
// bubbles after scanning it against a throw (spec.md §4.4 step 2: the
// matched catch keeps its clause for edge labeling; every other catch
// scanned loses it, since only the graph shape — not the dispatch edge —
// survives to be attached later). When the scanned graph holds no throw
// at all, the catches are passed through unchanged, Clause included.
type PendingCatch struct {
	Graph  *digraph.Graph
	Clause ctx.Ctx
}
