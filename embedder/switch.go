// SPDX-License-Identifier: MIT
// Package: javacfg/embedder
//
// switch.go — EmbedInSwitchCase, grounded on embed_in_switch_case in
// cfg_extractor/language_structure/digraph_embedder.py.
package embedder

import (
	"github.com/javacfg-go/javacfg/ctx"
	"github.com/javacfg-go/javacfg/digraph"
)

// CaseArm is one switch-case arm: the labels it is reachable under (empty
// for a `default` arm) and its body sub-graph.
type CaseArm struct {
	Labels []ctx.Ctx
	Body   *digraph.Graph
}

// EmbedInSwitchCase builds the graph for a switch statement. switcher is
// the switch expression's Ctx (nil for a switch with no evaluated
// expression, which the original grammar allows as a degenerate form).
// Arms are shifted in source order and wired with one dispatch edge per
// label, plus a fallthrough edge from each arm's last vertex to the next
// arm's head (including the final arm, which falls into the trailing join
// vertex) — exactly the source's "every arm gets a body.last -> body.last+1
// edge" wiring, not just the ones before a break. splitOnBreak then turns
// any explicit break in an arm into an early exit to the join vertex.
func EmbedInSwitchCase(switcher ctx.Ctx, arms []CaseArm) (*digraph.Graph, error) {
	g := digraph.New()
	var headValue []ctx.Ctx
	if switcher != nil {
		headValue = []ctx.Ctx{switcher}
	}
	if err := g.AddNode(0, headValue); err != nil {
		return nil, err
	}

	start := g.Len()
	shiftedBodies := make([]*digraph.Graph, len(arms))
	for i, arm := range arms {
		shiftedBodies[i] = arm.Body.Shift(start)
		start = shiftedBodies[i].Last() + 1
	}
	join := start

	if err := g.AddNode(join, nil); err != nil {
		return nil, err
	}
	for _, sb := range shiftedBodies {
		var err error
		g, err = g.Union(sb)
		if err != nil {
			return nil, err
		}
	}

	for i, arm := range arms {
		for _, label := range arm.Labels {
			text := ""
			if ct, ok := label.(ctx.ClauseTexted); ok {
				text = ct.ClauseText()
			}
			if err := g.AddEdge(0, shiftedBodies[i].Head(), digraph.Str(text)); err != nil {
				return nil, err
			}
		}
	}
	for _, sb := range shiftedBodies {
		if err := g.AddEdge(sb.Last(), sb.Last()+1, digraph.NoLabel); err != nil {
			return nil, err
		}
	}

	return splitOnBreak(g, join), nil
}
