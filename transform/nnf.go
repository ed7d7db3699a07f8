package transform

import "github.com/xDarkicex/boolexpr/node"

// ToNNF rewrites x into negation normal form: Impl, Ite, Eq, and Xor are
// first eliminated in terms of And/Or/Not, then every negation is pushed
// down to a literal via PushdownNot (spec.md §4.3).
//
// AtLeast nodes are cardinality constraints, not decomposed here — they
// pass through elimination unchanged, the way a literal would. Lowering a
// cardinality node into And/Or is cardinality.Expand's job, invoked
// explicitly by a caller that wants that shape.
func ToNNF(a *node.Arena, x *node.Node) *node.Node {
	eliminated := eliminate(a, x, newMemo())
	return PushdownNot(a, eliminated)
}

func eliminate(a *node.Arena, x *node.Node, m memo) *node.Node {
	if out, ok := m[x.ID()]; ok {
		return out
	}

	var out *node.Node
	switch x.Kind() {
	case node.Zero, node.One, node.Var, node.Comp, node.AtLeast:
		out = x

	case node.Not:
		out = a.Not(eliminate(a, x.Children()[0], m))

	case node.And:
		out = a.And(eliminateAll(a, x.Children(), m)...)

	case node.Or:
		out = a.Or(eliminateAll(a, x.Children(), m)...)

	case node.Xor:
		kids := eliminateAll(a, x.Children(), m)
		acc := kids[0]
		for _, next := range kids[1:] {
			acc = a.Or(a.And(acc, a.Not(next)), a.And(a.Not(acc), next))
		}
		out = acc

	case node.Eq:
		kids := eliminateAll(a, x.Children(), m)
		negated := make([]*node.Node, len(kids))
		for i, k := range kids {
			negated[i] = a.Not(k)
		}
		out = a.Or(a.And(kids...), a.And(negated...))

	case node.Impl:
		p := eliminate(a, x.Children()[0], m)
		q := eliminate(a, x.Children()[1], m)
		out = a.Or(a.Not(p), q)

	case node.Ite:
		kids := x.Children()
		s := eliminate(a, kids[0], m)
		d1 := eliminate(a, kids[1], m)
		d0 := eliminate(a, kids[2], m)
		out = a.Or(a.And(s, d1), a.And(a.Not(s), d0))

	default:
		out = x
	}

	m[x.ID()] = out
	return out
}

func eliminateAll(a *node.Arena, xs []*node.Node, m memo) []*node.Node {
	out := make([]*node.Node, len(xs))
	for i, x := range xs {
		out[i] = eliminate(a, x, m)
	}
	return out
}
