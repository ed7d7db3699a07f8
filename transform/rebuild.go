package transform

import "github.com/xDarkicex/boolexpr/node"

// rebuild walks x bottom-up, replacing each atom via leaf and every
// operator via the arena's smart constructor for its kind, memoizing by
// node identifier. Because the smart constructors already apply every
// §4.2 reduction, this single traversal implements simplify, restrict, and
// compose — they differ only in what leaf does with a literal.
//
// rebuild returns x unchanged (same pointer) whenever leaf and every
// descendant rebuild left the shape untouched, since the smart
// constructors themselves return the existing hash-consed node in that
// case.
func rebuild(a *node.Arena, x *node.Node, m memo, leaf func(*node.Node) *node.Node) *node.Node {
	if out, ok := m[x.ID()]; ok {
		return out
	}

	var out *node.Node
	switch x.Kind() {
	case node.Zero, node.One, node.Var, node.Comp:
		out = leaf(x)

	case node.Not:
		c := rebuild(a, x.Children()[0], m, leaf)
		out = a.Not(c)

	case node.And:
		out = a.And(rebuildAll(a, x.Children(), m, leaf)...)

	case node.Or:
		out = a.Or(rebuildAll(a, x.Children(), m, leaf)...)

	case node.Xor:
		out = a.Xor(rebuildAll(a, x.Children(), m, leaf)...)

	case node.Eq:
		out = a.Eq(rebuildAll(a, x.Children(), m, leaf)...)

	case node.Impl:
		kids := x.Children()
		p := rebuild(a, kids[0], m, leaf)
		q := rebuild(a, kids[1], m, leaf)
		out = a.Impl(p, q)

	case node.Ite:
		kids := x.Children()
		s := rebuild(a, kids[0], m, leaf)
		d1 := rebuild(a, kids[1], m, leaf)
		d0 := rebuild(a, kids[2], m, leaf)
		out = a.Ite(s, d1, d0)

	case node.AtLeast:
		k, _ := x.Threshold()
		out = a.AtLeast(k, rebuildAll(a, x.Children(), m, leaf)...)

	default:
		out = x
	}

	m[x.ID()] = out
	return out
}

func rebuildAll(a *node.Arena, xs []*node.Node, m memo, leaf func(*node.Node) *node.Node) []*node.Node {
	out := make([]*node.Node, len(xs))
	for i, x := range xs {
		out[i] = rebuild(a, x, m, leaf)
	}
	return out
}
