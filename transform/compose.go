package transform

import "github.com/xDarkicex/boolexpr/node"

// Mapping sends a variable index to a replacement expression; Compose
// substitutes a positive literal for the mapped expression directly and a
// negated literal for its negation (spec.md §4.6).
type Mapping map[int]*node.Node

// Compose substitutes each literal whose variable appears in mapping with
// the corresponding expression, rebuilding ancestors through the smart
// constructors so the result is always canonical.
func Compose(a *node.Arena, x *node.Node, mapping Mapping) *node.Node {
	leaf := func(n *node.Node) *node.Node {
		idx, ok := n.VarIndex()
		if !ok {
			return n
		}
		repl, mapped := mapping[idx]
		if !mapped {
			return n
		}
		if n.Kind() == node.Var {
			return repl
		}
		return a.Not(repl)
	}
	return rebuild(a, x, newMemo(), leaf)
}
