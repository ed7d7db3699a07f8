package transform

import "github.com/xDarkicex/boolexpr/node"

// PushdownNot applies De Morgan's laws wherever a Not wraps a compound
// operator, recursively, until every negation sits directly on a literal
// or cannot be pushed further (spec.md §4.3):
//
//   - Not(And(xs...)) → Or(Not(xs)...); Not(Or(xs...)) → And(Not(xs)...)
//   - Not(Ite(s,d1,d0)) → Ite(s, Not(d1), Not(d0)) — only the branches flip
//   - Not(Xor(x, rest...)) → Xor(Not(x), rest...) — flips one operand's polarity
//   - Not(Eq(x, rest...)) → Xor(Not(x), rest...), i.e. Xnor becomes parity
//     over one negated operand
//   - Not(Impl(p,q)) → And(p, Not(q))
//
// Non-Not nodes are rebuilt with their children pushed down first; Not
// wrapping a literal or constant is left to the ordinary Not() reduction.
func PushdownNot(a *node.Arena, x *node.Node) *node.Node {
	return pushdown(a, x, newMemo())
}

func pushdown(a *node.Arena, x *node.Node, m memo) *node.Node {
	if out, ok := m[x.ID()]; ok {
		return out
	}

	var out *node.Node
	switch x.Kind() {
	case node.Not:
		child := x.Children()[0]
		switch child.Kind() {
		case node.And:
			negated := make([]*node.Node, len(child.Children()))
			for i, c := range child.Children() {
				negated[i] = pushdown(a, a.Not(c), m)
			}
			out = a.Or(negated...)
		case node.Or:
			negated := make([]*node.Node, len(child.Children()))
			for i, c := range child.Children() {
				negated[i] = pushdown(a, a.Not(c), m)
			}
			out = a.And(negated...)
		case node.Ite:
			kids := child.Children()
			s := pushdown(a, kids[0], m)
			d1 := pushdown(a, a.Not(kids[1]), m)
			d0 := pushdown(a, a.Not(kids[2]), m)
			out = a.Ite(s, d1, d0)
		case node.Xor:
			kids := child.Children()
			flipped := append([]*node.Node{a.Not(kids[0])}, kids[1:]...)
			out = a.Xor(pushdownAll(a, flipped, m)...)
		case node.Eq:
			kids := child.Children()
			flipped := append([]*node.Node{a.Not(kids[0])}, kids[1:]...)
			out = a.Xor(pushdownAll(a, flipped, m)...)
		case node.Impl:
			kids := child.Children()
			p := pushdown(a, kids[0], m)
			q := pushdown(a, a.Not(kids[1]), m)
			out = a.And(p, q)
		default:
			out = a.Not(pushdown(a, child, m))
		}

	case node.And:
		out = a.And(pushdownAll(a, x.Children(), m)...)
	case node.Or:
		out = a.Or(pushdownAll(a, x.Children(), m)...)
	case node.Xor:
		out = a.Xor(pushdownAll(a, x.Children(), m)...)
	case node.Eq:
		out = a.Eq(pushdownAll(a, x.Children(), m)...)
	case node.Impl:
		kids := x.Children()
		out = a.Impl(pushdown(a, kids[0], m), pushdown(a, kids[1], m))
	case node.Ite:
		kids := x.Children()
		out = a.Ite(pushdown(a, kids[0], m), pushdown(a, kids[1], m), pushdown(a, kids[2], m))
	case node.AtLeast:
		k, _ := x.Threshold()
		out = a.AtLeast(k, pushdownAll(a, x.Children(), m)...)
	default:
		out = x
	}

	m[x.ID()] = out
	return out
}

func pushdownAll(a *node.Arena, xs []*node.Node, m memo) []*node.Node {
	out := make([]*node.Node, len(xs))
	for i, x := range xs {
		out[i] = pushdown(a, x, m)
	}
	return out
}
