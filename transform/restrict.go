package transform

import "github.com/xDarkicex/boolexpr/node"

// Point is a partial assignment of Boolean values to variable indices.
type Point map[int]bool

// Restrict substitutes each literal whose variable appears in point with
// Zero or One (honoring the literal's polarity), then rebuilds every
// ancestor through the smart constructors, so a subtree that becomes
// constant collapses immediately and short-circuits the rest of that
// branch (spec.md §4.3, §4.6).
func Restrict(a *node.Arena, x *node.Node, point Point) *node.Node {
	leaf := func(n *node.Node) *node.Node {
		idx, ok := n.VarIndex()
		if !ok {
			return n
		}
		val, assigned := point[idx]
		if !assigned {
			return n
		}
		polarity := n.Kind() == node.Var
		if polarity == val {
			return a.One()
		}
		return a.Zero()
	}
	return rebuild(a, x, newMemo(), leaf)
}

// RestrictEach applies Restrict to every node in xs at the same point —
// the per-operand cofactor step the cardinality encoder's shared-variable
// expansion needs.
func RestrictEach(a *node.Arena, xs []*node.Node, point Point) []*node.Node {
	out := make([]*node.Node, len(xs))
	for i, x := range xs {
		out[i] = Restrict(a, x, point)
	}
	return out
}
