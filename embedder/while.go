// SPDX-License-Identifier: MIT
// Package: javacfg/embedder
//
// while.go — EmbedInWhile and EmbedInDoWhile, grounded on embed_in_while /
// embed_in_do_while in cfg_extractor/language_structure/digraph_embedder.py.
package embedder

import (
	"github.com/javacfg-go/javacfg/ctx"
	"github.com/javacfg-go/javacfg/digraph"
)

// EmbedInWhile builds the graph for `while (cond) { body }`: an empty
// entry vertex, a condition vertex, the shifted body, and a trailing join
// reached on a false condition. continue redirects to the condition
// vertex; break redirects to the join.
func EmbedInWhile(cond ctx.Ctx, body *digraph.Graph) (*digraph.Graph, error) {
	g := digraph.New()
	if err := g.AddNodes([]digraph.NodeEntry{
		{ID: 0, Value: nil},
		{ID: 1, Value: []ctx.Ctx{cond}},
	}); err != nil {
		return nil, err
	}
	condition := 1

	shiftedBody := body.Shift(g.Len())
	join := shiftedBody.Last() + 1
	if err := g.AddNode(join, nil); err != nil {
		return nil, err
	}
	g, err := g.Union(shiftedBody)
	if err != nil {
		return nil, err
	}
	if err := g.AddEdges([]digraph.EdgeEntry{
		{From: 0, To: condition, Label: digraph.NoLabel},
		{From: condition, To: shiftedBody.Head(), Label: digraph.True},
		{From: condition, To: join, Label: digraph.False},
		{From: shiftedBody.Last(), To: condition, Label: digraph.NoLabel},
	}); err != nil {
		return nil, err
	}

	g = splitOnContinue(g, condition)
	g = splitOnBreak(g, join)
	return g, nil
}

// EmbedInDoWhile builds the graph for `do { body } while (cond)`: the
// shifted body runs first, falls into the condition vertex, and loops back
// on true. continue redirects to the condition vertex; break redirects to
// the trailing join.
func EmbedInDoWhile(cond ctx.Ctx, body *digraph.Graph) (*digraph.Graph, error) {
	g := digraph.New()
	if err := g.AddNode(0, nil); err != nil {
		return nil, err
	}

	shiftedBody := body.Shift(g.Len())
	condition := shiftedBody.Last() + 1
	join := condition + 1
	if err := g.AddNodes([]digraph.NodeEntry{
		{ID: condition, Value: []ctx.Ctx{cond}},
		{ID: join, Value: nil},
	}); err != nil {
		return nil, err
	}
	g, err := g.Union(shiftedBody)
	if err != nil {
		return nil, err
	}
	if err := g.AddEdges([]digraph.EdgeEntry{
		{From: 0, To: shiftedBody.Head(), Label: digraph.NoLabel},
		{From: shiftedBody.Last(), To: condition, Label: digraph.NoLabel},
		{From: condition, To: shiftedBody.Head(), Label: digraph.True},
		{From: condition, To: join, Label: digraph.False},
	}); err != nil {
		return nil, err
	}

	g = splitOnContinue(g, condition)
	g = splitOnBreak(g, join)
	return g, nil
}
