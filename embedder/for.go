// SPDX-License-Identifier: MIT
// Package: javacfg/embedder
//
// for.go — EmbedInFor, grounded on embed_in_for / __embed_in_conditional_for
// / __embed_in_unconditional_for in
// cfg_extractor/language_structure/digraph_embedder.py.
package embedder

import (
	"github.com/javacfg-go/javacfg/ctx"
	"github.com/javacfg-go/javacfg/digraph"
)

// EmbedInFor builds the graph for a Java for-loop. init and succ are the
// initializer and update-clause Ctx (nil if absent from source); cond is
// the loop condition, or nil for an unconditional `for (;;)` form.
//
// The conditional form has an explicit edge from the condition vertex to
// the trailing join on a false test. The unconditional form has no such
// edge at all — the join is reachable only via an explicit break,
// matching the source's handling of `for(;;)` as an infinite loop with no
// natural exit.
func EmbedInFor(init, cond, succ ctx.Ctx, body *digraph.Graph) (*digraph.Graph, error) {
	var g *digraph.Graph
	var join int
	var err error
	if cond != nil {
		g, join, err = embedInConditionalFor(init, cond, succ, body)
	} else {
		g, join, err = embedInUnconditionalFor(init, succ, body)
	}
	if err != nil {
		return nil, err
	}
	return splitOnBreak(g, join), nil
}

func embedInConditionalFor(init, cond, succ ctx.Ctx, body *digraph.Graph) (*digraph.Graph, int, error) {
	g := digraph.New()
	var headValue []ctx.Ctx
	if init != nil {
		headValue = []ctx.Ctx{init}
	}
	if err := g.AddNodes([]digraph.NodeEntry{
		{ID: 0, Value: headValue},
		{ID: 1, Value: []ctx.Ctx{cond}},
	}); err != nil {
		return nil, 0, err
	}
	condition := 1

	shiftedBody := body.Shift(g.Len())
	successor := shiftedBody.Last() + 1
	join := successor + 1
	var succValue []ctx.Ctx
	if succ != nil {
		succValue = []ctx.Ctx{succ}
	}
	if err := g.AddNodes([]digraph.NodeEntry{
		{ID: join, Value: nil},
		{ID: successor, Value: succValue},
	}); err != nil {
		return nil, 0, err
	}
	g, err := g.Union(shiftedBody)
	if err != nil {
		return nil, 0, err
	}
	if err := g.AddEdges([]digraph.EdgeEntry{
		{From: 0, To: condition, Label: digraph.NoLabel},
		{From: condition, To: shiftedBody.Head(), Label: digraph.True},
		{From: condition, To: join, Label: digraph.False},
		{From: shiftedBody.Last(), To: successor, Label: digraph.NoLabel},
		{From: successor, To: condition, Label: digraph.NoLabel},
	}); err != nil {
		return nil, 0, err
	}

	g = splitOnContinue(g, successor)
	return g, join, nil
}

func embedInUnconditionalFor(init, succ ctx.Ctx, body *digraph.Graph) (*digraph.Graph, int, error) {
	g := digraph.New()
	var headValue []ctx.Ctx
	if init != nil {
		headValue = []ctx.Ctx{init}
	}
	if err := g.AddNode(0, headValue); err != nil {
		return nil, 0, err
	}

	shiftedBody := body.Shift(g.Len())
	successor := shiftedBody.Last() + 1
	join := successor + 1
	var succValue []ctx.Ctx
	if succ != nil {
		succValue = []ctx.Ctx{succ}
	}
	if err := g.AddNodes([]digraph.NodeEntry{
		{ID: join, Value: nil},
		{ID: successor, Value: succValue},
	}); err != nil {
		return nil, 0, err
	}
	g, err := g.Union(shiftedBody)
	if err != nil {
		return nil, 0, err
	}
	if err := g.AddEdges([]digraph.EdgeEntry{
		{From: 0, To: shiftedBody.Head(), Label: digraph.NoLabel},
		{From: shiftedBody.Last(), To: successor, Label: digraph.NoLabel},
		{From: successor, To: shiftedBody.Head(), Label: digraph.NoLabel},
	}); err != nil {
		return nil, 0, err
	}

	g = splitOnContinue(g, successor)
	return g, join, nil
}
