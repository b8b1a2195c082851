// Package embedder implements the structural embedders, jump redirectors,
// and null-node resolver that turn shapeless straight-line digraph.Graph
// fragments into a Java method's intraprocedural control-flow graph: one
// EmbedIn* function per control construct (if/if-else/switch/while/
// do-while/for/try-catch/function), each composing its sub-graphs with
// digraph.Shift/Union and then wiring construct-specific edges.
//
// Every function here is grounded on one method of DiGraphEmbedder in
// cfg_extractor/language_structure/digraph_embedder.py: read that file's
// comment block above each function before changing its behavior, not
// just this package's comments — two deliberately preserved quirks
// (splitOnThrow's free-catch over-collection, EmbedInFunction's dropped
// catches parameter) look like bugs and are not; fixing either changes
// what graphs this package produces for real Java source.
//
// None of these functions accept or return anything from a concurrency
// primitive: a digraph.Graph is owned by exactly one goroutine for the
// duration of one EmbedIn* call, consistent with digraph's own
// no-locking design.
package embedder
