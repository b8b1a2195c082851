// SPDX-License-Identifier: MIT
package embedder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javacfg-go/javacfg/digraph"
	"github.com/javacfg-go/javacfg/embedder"
)

// TestScenario_EmptyBody grounds spec.md S1: a function whose body is just
// `return;` collapses to a single vertex holding the return fragment, with
// one exit and no internal edges.
func TestScenario_EmptyBody(t *testing.T) {
	ret := returnC()
	g, exits, err := embedder.EmbedInFunction(leaf(ret), nil, pq)
	require.NoError(t, err)

	require.Equal(t, 1, g.Len())
	require.Len(t, g.Value(0), 1)
	assert.Same(t, ret, g.Value(0)[0])

	require.Len(t, exits, 1)
	assert.Equal(t, 0, exits[0].ID)
	assert.True(t, exits[0].Label.IsAbsent())
}

// TestEmbedInFunction_AbsentBodyIsSingleEmptyVertex covers the nil-body
// case EmbedInFunction documents: no fragments reached the function at
// all, so it synthesizes one empty vertex and reports it as the function's
// sole exit (it is short-circuited past resolveNullNode, which would
// otherwise delete a predecessor-less, successor-less null vertex outright
// rather than promote it).
func TestEmbedInFunction_AbsentBodyIsSingleEmptyVertex(t *testing.T) {
	g, exits, err := embedder.EmbedInFunction(nil, nil, pq)
	require.NoError(t, err)

	require.Equal(t, 1, g.Len())
	assert.True(t, g.IsNull(0))
	require.Len(t, exits, 1)
	assert.Equal(t, 0, exits[0].ID)
}

// TestScenario_SimpleIf grounds spec.md S2: `if (x) { y } z;` — the
// if's trailing join and the statement after it fuse into one vertex once
// resolveNullNode collapses the join, leaving exactly x, y, z.
func TestScenario_SimpleIf(t *testing.T) {
	x, y, z := other(), other(), other()
	ifGraph, err := embedder.EmbedInIf(x, leaf(y))
	require.NoError(t, err)
	body, err := digraph.Concat(ifGraph, leaf(z))
	require.NoError(t, err)

	g, exits, err := embedder.EmbedInFunction(body, nil, pq)
	require.NoError(t, err)
	assert.Empty(t, exits)

	require.Equal(t, 3, g.Len())
	assert.Same(t, x, g.Value(0)[0])
	assert.Same(t, y, g.Value(1)[0])
	assert.Same(t, z, g.Value(2)[0])

	label, ok := g.EdgeLabel(0, 1)
	require.True(t, ok)
	v, _ := label.Bool()
	assert.True(t, v, "true branch goes to y")

	label, ok = g.EdgeLabel(0, 2)
	require.True(t, ok)
	v, _ = label.Bool()
	assert.False(t, v, "false branch skips straight to z")

	_, yToZ := g.EdgeLabel(1, 2)
	assert.True(t, yToZ, "y falls through to z once the if's own join collapses")
}

// TestScenario_WhileBreakWithNestedIf is grounded in spec.md S3's
// construct — `while (c) { if (d) break; e; }` — traced through to its
// fully null-node-resolved shape. This is the function-level result, not
// a claim that it reproduces S3's own intermediate-graph diagram
// verbatim: resolveNullNode folds the while's own join and the nested
// if's own join together with nothing left over, since nothing in this
// body follows the loop.
func TestScenario_WhileBreakWithNestedIf(t *testing.T) {
	c, d, e := other(), other(), other()
	innerIf, err := embedder.EmbedInIf(d, leaf(breakC()))
	require.NoError(t, err)
	body, err := digraph.Concat(innerIf, leaf(e))
	require.NoError(t, err)

	loop, err := embedder.EmbedInWhile(c, body)
	require.NoError(t, err)

	g, exits, err := embedder.EmbedInFunction(loop, nil, pq)
	require.NoError(t, err)

	require.Equal(t, 3, g.Len())
	assert.Same(t, c, g.Value(0)[0])
	assert.Same(t, d, g.Value(1)[0])
	assert.Same(t, e, g.Value(2)[0])

	label, ok := g.EdgeLabel(0, 1)
	require.True(t, ok)
	v, _ := label.Bool()
	assert.True(t, v, "the loop condition true enters the nested if's own condition")

	label, ok = g.EdgeLabel(1, 2)
	require.True(t, ok)
	v, _ = label.Bool()
	assert.False(t, v, "the nested if's false branch falls to e")

	_, loopsBack := g.EdgeLabel(2, 0)
	assert.True(t, loopsBack, "e re-tests the loop condition")

	// two promoted exits: the loop's own natural exit (condition false)
	// and the break's redirect (nested if's condition true), both folded
	// in once their respective join vertices collapsed to nothing.
	require.Len(t, exits, 2)
	labels := map[string]bool{}
	for _, ex := range exits {
		if bv, ok := ex.Label.Bool(); ok {
			if bv {
				labels["true"] = true
			} else {
				labels["false"] = true
			}
		}
	}
	assert.True(t, labels["true"], "break redirect promotes with a True label")
	assert.True(t, labels["false"], "the loop's natural exit promotes with a False label")
}
