// SPDX-License-Identifier: MIT
package embedder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javacfg-go/javacfg/ctx"
	"github.com/javacfg-go/javacfg/digraph"
	"github.com/javacfg-go/javacfg/embedder"
)

// TestScenario_TryCatchMatch grounds spec.md S4: try { throw new
// IOException(); } catch (IOException e) { handle; }.
func TestScenario_TryCatchMatch(t *testing.T) {
	throwCtx := throwC("IOException")
	tryBody := leaf(throwCtx)
	handle := other()
	catchBody := leaf(handle)
	clause := catchClause("IOException", "catch(IOException e)")

	g, free, err := embedder.EmbedInTryCatch(tryBody, []ctx.Ctx{clause}, []*digraph.Graph{catchBody}, pq)
	require.NoError(t, err)
	assert.Empty(t, free, "the matching catch is consumed, nothing bubbles free")

	require.Equal(t, 2, g.Len())
	require.Len(t, g.Value(0), 1)
	assert.Same(t, throwCtx, g.Value(0)[0])
	assert.Same(t, handle, g.Value(1)[0])

	label, ok := g.EdgeLabel(0, 1)
	require.True(t, ok)
	assert.Equal(t, "catch(IOException e)", label.Text())
}

// TestScenario_TryCatchMismatch grounds spec.md S5: same as S4 but
// catch (SQLException e).
func TestScenario_TryCatchMismatch(t *testing.T) {
	throwCtx := throwC("IOException")
	tryBody := leaf(throwCtx)
	catchBody := leaf(other())
	clause := catchClause("SQLException", "catch(SQLException e)")

	g, free, err := embedder.EmbedInTryCatch(tryBody, []ctx.Ctx{clause}, []*digraph.Graph{catchBody}, pq)
	require.NoError(t, err)

	require.Equal(t, 2, g.Len())
	assert.True(t, g.IsNull(1), "no catch matched: a synthetic empty vertex marks the uncaught path")

	label, ok := g.EdgeLabel(0, 1)
	require.True(t, ok)
	assert.Equal(t, "IOException", label.Text())

	require.Len(t, free, 1, "the mismatched catch bubbles up as a free catch")
	// Attaching free catches and resolving null nodes (spec.md §4.5) is
	// the enclosing construct's job; that promotion is exercised directly
	// against resolveNullNode in TestResolveNullNode_PromotesMismatchedThrow
	// (nullnode_internal_test.go), since the resolver itself is unexported.
}

// TestFreeCatchOverCollection locks in the documented over-collection
// quirk (spec.md §9, DESIGN.md Open Question #1): a catch that does not
// match one throw bubbles as free even when the same catches list
// contains the clause that matches a *different* throw scanned in the
// same pass.
func TestFreeCatchOverCollection(t *testing.T) {
	firstThrow := throwC("IOException")
	secondThrow := throwC("SQLException")
	tryBody := leaf(firstThrow)
	tryBody.SetValue(0, []ctx.Ctx{firstThrow})
	require.NoError(t, tryBody.AddNode(1, []ctx.Ctx{secondThrow}))

	ioCatch := leaf(other())
	sqlCatch := leaf(other())
	clauses := []ctx.Ctx{
		catchClause("IOException", "catch(IOException e)"),
		catchClause("SQLException", "catch(SQLException e)"),
	}

	g, free, err := embedder.EmbedInTryCatch(tryBody, clauses, []*digraph.Graph{ioCatch, sqlCatch}, pq)
	require.NoError(t, err)
	_ = g

	// Both catches matched (one per throw) yet both also appear in the
	// free-catch list: the IOException catch, scanned while processing
	// the SQLException throw, doesn't match it and bubbles; likewise the
	// SQLException catch scanned while processing the IOException throw.
	assert.Len(t, free, 2)
}

// TestEmbedInFunction_DropsBubbledCatches locks in DESIGN.md Open
// Question #2: catches bubbled up from a nested try-catch are accepted by
// EmbedInFunction but never attached, matching the original's hard-coded
// empty list at that call site.
func TestEmbedInFunction_DropsBubbledCatches(t *testing.T) {
	tryBody := leaf(throwC("IOException"))
	catchBody := leaf(other())
	clause := catchClause("SQLException", "catch(SQLException e)")

	afterTry, free, err := embedder.EmbedInTryCatch(tryBody, []ctx.Ctx{clause}, []*digraph.Graph{catchBody}, pq)
	require.NoError(t, err)
	require.Len(t, free, 1)

	g, exits, err := embedder.EmbedInFunction(afterTry, free, pq)
	require.NoError(t, err)

	// the free catch's body never got unioned in: the uncaught throw's
	// synthetic successor has no outgoing edges of its own, so null-node
	// resolution removes it and promotes the throw's own vertex to an exit,
	// leaving only that vertex behind.
	require.Equal(t, 1, g.Len())
	assert.Same(t, tryBody.Value(0)[0], g.Value(0)[0])
	require.Len(t, exits, 1)
	assert.Equal(t, "IOException", exits[0].Label.Text())
}
