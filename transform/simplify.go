package transform

import "github.com/xDarkicex/boolexpr/node"

// Simplify reapplies the §4.2 local reductions bottom-up to a fixed point.
// Because every node still in the arena was already built through a smart
// constructor, Simplify on an already-simplified node is the identity
// (same pointer); it only does work for nodes assembled by hand-walking
// raw fields, or after a restrict/compose pass that left a subtree in a
// no-longer-canonical shape.
func Simplify(a *node.Arena, x *node.Node) *node.Node {
	const cacheKind = "simplify"
	if cached, ok := a.MemoGet(cacheKey(cacheKind, x)); ok {
		return cached
	}
	out := rebuild(a, x, newMemo(), func(leafNode *node.Node) *node.Node { return leafNode })
	a.MemoPut(cacheKey(cacheKind, x), out)
	return out
}
