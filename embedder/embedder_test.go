// SPDX-License-Identifier: MIT
package embedder_test

import (
	"github.com/javacfg-go/javacfg/ctx"
	"github.com/javacfg-go/javacfg/digraph"
)

// leaf builds a single-vertex graph holding, in order, every fragment
// passed — mirroring how a real visitor coalesces a run of straight-line
// statements (no intervening branch) into one basic-block vertex, rather
// than chaining them with digraph.Concat (which is reserved for joining
// separate blocks, e.g. the statement right after an if/while's join
// point).
func leaf(fragments ...ctx.Ctx) *digraph.Graph {
	g := digraph.New()
	if err := g.AddNode(0, fragments); err != nil {
		panic(err)
	}
	return g
}

func other() *ctx.LeafCtx    { return &ctx.LeafCtx{K: ctx.Other} }
func breakC() *ctx.LeafCtx   { return &ctx.LeafCtx{K: ctx.Break} }
func continueC() *ctx.LeafCtx { return &ctx.LeafCtx{K: ctx.Continue} }
func returnC() *ctx.LeafCtx  { return &ctx.LeafCtx{K: ctx.Return} }

func throwC(typeName string) *ctx.LeafCtx {
	return &ctx.LeafCtx{K: ctx.Throw, Type: typeName}
}

func catchClause(typeName, text string) *ctx.LeafCtx {
	return &ctx.LeafCtx{K: ctx.Other, Type: typeName, Text: text}
}

func caseLabel(text string) *ctx.LeafCtx {
	return &ctx.LeafCtx{K: ctx.Other, Text: text}
}

// asCtxSlice adapts one or more *ctx.LeafCtx case labels into a []ctx.Ctx,
// the shape embedder.CaseArm.Labels expects.
func asCtxSlice(labels ...*ctx.LeafCtx) []ctx.Ctx {
	out := make([]ctx.Ctx, len(labels))
	for i, l := range labels {
		out[i] = l
	}
	return out
}

var pq = ctx.NewTypeNamedQuery()
