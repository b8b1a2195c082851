// SPDX-License-Identifier: MIT
// Package: javacfg/embedder
//
// if.go — EmbedInIf and EmbedInIfElse, grounded on embed_in_if /
// embed_in_if_else in cfg_extractor/language_structure/digraph_embedder.py.
package embedder

import (
	"github.com/javacfg-go/javacfg/ctx"
	"github.com/javacfg-go/javacfg/digraph"
)

// EmbedInIf builds the graph for `if (cond) { then }`: a condition vertex
// at id 0, the shifted then-branch, and a trailing join vertex reachable
// both from a false condition and from the end of then.
func EmbedInIf(cond ctx.Ctx, then *digraph.Graph) (*digraph.Graph, error) {
	g := digraph.New()
	if err := g.AddNode(0, []ctx.Ctx{cond}); err != nil {
		return nil, err
	}
	shiftedThen := then.Shift(g.Len())
	join := shiftedThen.Last() + 1
	if err := g.AddNode(join, nil); err != nil {
		return nil, err
	}
	g, err := g.Union(shiftedThen)
	if err != nil {
		return nil, err
	}
	if err := g.AddEdges([]digraph.EdgeEntry{
		{From: 0, To: join, Label: digraph.False},
		{From: 0, To: shiftedThen.Head(), Label: digraph.True},
		{From: shiftedThen.Last(), To: join, Label: digraph.NoLabel},
	}); err != nil {
		return nil, err
	}
	return g, nil
}

// EmbedInIfElse builds the graph for `if (cond) { then } else { els }`: a
// condition vertex at id 0, the shifted then-branch, the shifted
// else-branch, and a trailing join both branches fall into.
func EmbedInIfElse(cond ctx.Ctx, then, els *digraph.Graph) (*digraph.Graph, error) {
	g := digraph.New()
	if err := g.AddNode(0, []ctx.Ctx{cond}); err != nil {
		return nil, err
	}
	shiftedThen := then.Shift(g.Len())
	shiftedEls := els.Shift(g.Len() + shiftedThen.Len())

	g, err := g.Union(shiftedThen)
	if err != nil {
		return nil, err
	}
	g, err = g.Union(shiftedEls)
	if err != nil {
		return nil, err
	}

	join := g.Last() + 1
	if err := g.AddNode(join, nil); err != nil {
		return nil, err
	}
	if err := g.AddEdges([]digraph.EdgeEntry{
		{From: 0, To: shiftedEls.Head(), Label: digraph.False},
		{From: 0, To: shiftedThen.Head(), Label: digraph.True},
		{From: shiftedThen.Last(), To: join, Label: digraph.NoLabel},
		{From: shiftedEls.Last(), To: join, Label: digraph.NoLabel},
	}); err != nil {
		return nil, err
	}
	return g, nil
}
