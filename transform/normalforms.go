package transform

import "github.com/xDarkicex/boolexpr/node"

// ToDNF rewrites x into disjunctive normal form: a flat Or of Ands of
// literals. It first lowers to NNF, then distributes And over Or,
// reapplying §4.2 (idempotence, absorption of constants and complement
// pairs) after every combination step (spec.md §4.3, "lazy distribution
// with early absorption").
func ToDNF(a *node.Arena, x *node.Node) *node.Node {
	nnf := ToNNF(a, x)
	if cached, ok := a.MemoGet(cacheKey("to_dnf", nnf)); ok {
		return cached
	}
	out := distribute(a, nnf, node.Or, node.And, newMemo())
	a.MemoPut(cacheKey("to_dnf", nnf), out)
	return out
}

// ToCNF rewrites x into conjunctive normal form: a flat And of Ors of
// literals. Dual of ToDNF: distributes Or over And.
func ToCNF(a *node.Arena, x *node.Node) *node.Node {
	nnf := ToNNF(a, x)
	if cached, ok := a.MemoGet(cacheKey("to_cnf", nnf)); ok {
		return cached
	}
	out := distribute(a, nnf, node.And, node.Or, newMemo())
	a.MemoPut(cacheKey("to_cnf", nnf), out)
	return out
}

// applyKind applies the arena builder matching a Kind that distribute
// only ever invokes with And or Or.
func applyKind(a *node.Arena, k node.Kind, xs []*node.Node) *node.Node {
	if k == node.And {
		return a.And(xs...)
	}
	return a.Or(xs...)
}

// termsOf returns n's operands if n has kind outer, or the singleton [n]
// otherwise — the set of "terms" a surrounding outer-kind node would
// flatten n into.
func termsOf(n *node.Node, outer node.Kind) []*node.Node {
	if n.Kind() == outer {
		return n.Children()
	}
	return []*node.Node{n}
}

// distribute pushes inner over outer bottom-up: an outer-kind node's
// children are each recursively converted and unioned; an inner-kind
// node's children are each recursively converted into a set of outer-terms,
// then combined via the cartesian product, each combination folded with
// the inner builder and the combinations unioned with the outer builder.
func distribute(a *node.Arena, x *node.Node, outer, inner node.Kind, m memo) *node.Node {
	if out, ok := m[x.ID()]; ok {
		return out
	}

	var out *node.Node
	switch {
	case x.Kind() == outer:
		kids := make([]*node.Node, len(x.Children()))
		for i, c := range x.Children() {
			kids[i] = distribute(a, c, outer, inner, m)
		}
		out = applyKind(a, outer, kids)

	case x.Kind() == inner:
		// Cartesian product of each child's outer-terms, combined via inner.
		termSets := make([][]*node.Node, len(x.Children()))
		for i, c := range x.Children() {
			termSets[i] = termsOf(distribute(a, c, outer, inner, m), outer)
		}
		combos := cartesian(termSets)
		unioned := make([]*node.Node, len(combos))
		for i, combo := range combos {
			unioned[i] = applyKind(a, inner, combo)
		}
		out = applyKind(a, outer, unioned)

	case x.Kind() == node.Not, x.Kind() == node.Zero, x.Kind() == node.One,
		x.Kind() == node.Var, x.Kind() == node.Comp, x.Kind() == node.AtLeast:
		out = x

	default:
		// Impl/Ite/Eq/Xor should not survive ToNNF; treat defensively as atomic.
		out = x
	}

	m[x.ID()] = out
	return out
}

// cartesian computes the cartesian product of sets, as slices-of-slices.
func cartesian(sets [][]*node.Node) [][]*node.Node {
	combos := [][]*node.Node{{}}
	for _, set := range sets {
		next := make([][]*node.Node, 0, len(combos)*len(set))
		for _, combo := range combos {
			for _, item := range set {
				grown := make([]*node.Node, len(combo)+1)
				copy(grown, combo)
				grown[len(combo)] = item
				next = append(next, grown)
			}
		}
		combos = next
	}
	return combos
}
