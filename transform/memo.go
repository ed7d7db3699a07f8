// Package transform implements the algebraic rewrite pipeline over
// hash-consed nodes: simplify, pushdown-not, NNF/CNF/DNF conversion,
// restriction, composition, and cofactor-based quantification.
//
// Every function here is pure: it returns a (possibly identical, by
// pointer) node and never mutates its input. Traversals are memoized by
// node identifier, never by structural equality, per spec.md §9.
package transform

import "github.com/xDarkicex/boolexpr/node"

// memo maps a source node's arena-local id to its rewritten image for one
// traversal. Transform entry points allocate a fresh memo per call; the
// arena's optional long-lived cache (node.Arena.MemoGet/MemoPut) is
// consulted first so repeated calls against the same arena can skip
// rework entirely.
type memo map[int32]*node.Node

func newMemo() memo { return make(memo) }
