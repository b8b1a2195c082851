// Package javacfg assembles intraprocedural control-flow graphs from a
// tree of already-parsed Java control constructs.
//
// The module has no top-level API of its own: a front end (an
// ANTLR-generated Java parser and a post-order tree-walk visitor, both out
// of scope for this module) drives three packages.
//
//	ctx/      — the Ctx/ParseQuery contract the core reads statement
//	            kinds and thrown/caught type names through.
//	digraph/  — the densely-numbered directed multigraph: Shift, Union,
//	            Concat, Merge, and the renumbering pass.
//	embedder/ — the eight structural embedders (EmbedInIf, EmbedInWhile,
//	            EmbedInFor, EmbedInTryCatch, EmbedInFunction, ...), the
//	            jump redirectors, and the null-node resolver.
//
// A visitor builds one digraph.Graph per leaf statement, chains them with
// digraph.Concat/Merge, and wraps the result in the matching
// embedder.EmbedIn* call as it walks back up the tree; embedder.EmbedInFunction
// is the final call for a method body, returning the finished graph and its
// exit vertices.
//
//	go get github.com/javacfg-go/javacfg/digraph
//	go get github.com/javacfg-go/javacfg/embedder
package javacfg
