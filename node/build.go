package node

import (
	"sort"

	"github.com/xDarkicex/boolexpr/core"
)

// Lit returns the canonical node for a signed variable index: Lit(+i) is
// Var(i), Lit(-i) is Comp(i). |idx| == 0 is invalid (spec.md §4.1).
func (a *Arena) Lit(signedIdx int) (*Node, error) {
	if signedIdx == 0 {
		return nil, core.New(core.InvalidLiteralIndex, "node", "Lit", "literal index must be nonzero")
	}
	if signedIdx > 0 {
		return a.intern(Var, int64(signedIdx), nil), nil
	}
	return a.intern(Comp, int64(signedIdx), nil), nil
}

// MustLit is Lit, panicking on error; for call sites (tests, constant
// tables) that already know idx is valid.
func (a *Arena) MustLit(signedIdx int) *Node {
	n, err := a.Lit(signedIdx)
	if err != nil {
		panic(err)
	}
	return n
}

// Not builds ¬x, applying: Not(One)→Zero; Not(Zero)→One; Not(Not(x))→x;
// Not(Comp(v))→Var(v); Not(Var(v))→Comp(v). Otherwise persists as a Not node.
func (a *Arena) Not(x *Node) *Node {
	switch x.kind {
	case One:
		return a.zero
	case Zero:
		return a.one
	case Not:
		return x.kids[0]
	case Var:
		return a.intern(Comp, -x.data, nil)
	case Comp:
		return a.intern(Var, -x.data, nil)
	default:
		return a.intern(Not, 0, []*Node{x})
	}
}

func byID(xs []*Node) {
	sort.Slice(xs, func(i, j int) bool { return xs[i].id < xs[j].id })
}

// dedupSorted removes adjacent duplicate pointers from an id-sorted slice.
func dedupSorted(xs []*Node) []*Node {
	if len(xs) < 2 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

// hasComplementPair reports whether an id-sorted, deduplicated slice
// contains both some literal and its complement.
func hasComplementPair(xs []*Node) bool {
	seen := make(map[int64]bool, len(xs))
	for _, x := range xs {
		if x.kind == Var || x.kind == Comp {
			seen[x.data] = true
		}
	}
	for _, x := range xs {
		if x.kind == Var && seen[-x.data] {
			return true
		}
		if x.kind == Comp && seen[-x.data] {
			return true
		}
	}
	return false
}

// flatten appends the operands of any direct child of kind k (associative
// flattening) instead of the child itself.
func flatten(k Kind, xs []*Node) []*Node {
	out := make([]*Node, 0, len(xs))
	for _, x := range xs {
		if x.kind == k {
			out = append(out, x.kids...)
		} else {
			out = append(out, x)
		}
	}
	return out
}

// And builds a conjunction: drops One operands, short-circuits to Zero on
// any Zero operand or a complementary literal pair, flattens nested Ands,
// deduplicates, and collapses to its sole operand (or One, for zero
// operands) when arity falls below two (spec.md §4.1, §4.2).
func (a *Arena) And(xs ...*Node) *Node {
	xs = flatten(And, xs)

	kept := xs[:0:0]
	for _, x := range xs {
		switch {
		case x.kind == Zero:
			return a.zero
		case x.kind == One:
			// identity operand, drop
		default:
			kept = append(kept, x)
		}
	}

	byID(kept)
	kept = dedupSorted(kept)
	if hasComplementPair(kept) {
		return a.zero
	}

	switch len(kept) {
	case 0:
		return a.one
	case 1:
		return kept[0]
	default:
		return a.intern(And, 0, kept)
	}
}

// Or builds a disjunction: the dual of And with Zero/One and literal
// polarity swapped.
func (a *Arena) Or(xs ...*Node) *Node {
	xs = flatten(Or, xs)

	kept := xs[:0:0]
	for _, x := range xs {
		switch {
		case x.kind == One:
			return a.one
		case x.kind == Zero:
			// identity operand, drop
		default:
			kept = append(kept, x)
		}
	}

	byID(kept)
	kept = dedupSorted(kept)
	if hasComplementPair(kept) {
		return a.one
	}

	switch len(kept) {
	case 0:
		return a.zero
	case 1:
		return kept[0]
	default:
		return a.intern(Or, 0, kept)
	}
}

// Xor builds a parity (n-ary exclusive-or): flattens nested Xors, cancels
// operands occurring an even number of times, absorbs Zero operands, and
// folds One operands into an outer negation of the remaining parity
// (spec.md §4.2).
func (a *Arena) Xor(xs ...*Node) *Node {
	xs = flatten(Xor, xs)

	flip := false
	counts := make(map[*Node]int, len(xs))
	order := make([]*Node, 0, len(xs))
	for _, x := range xs {
		switch x.kind {
		case Zero:
			continue
		case One:
			flip = !flip
		default:
			if counts[x] == 0 {
				order = append(order, x)
			}
			counts[x]++
		}
	}

	kept := make([]*Node, 0, len(order))
	for _, x := range order {
		if counts[x]%2 == 1 {
			kept = append(kept, x)
		}
	}
	byID(kept)

	var result *Node
	switch len(kept) {
	case 0:
		result = a.zero
	case 1:
		result = kept[0]
	default:
		result = a.intern(Xor, 0, kept)
	}
	if flip {
		return a.Not(result)
	}
	return result
}

// Eq builds an n-ary "all operands equal" node: Eq()/Eq(x) → One; Eq(x,y) →
// ¬(x⊕y); with ≥3 operands the n-ary form is kept (semantically
// Or(And(all),And(all negated))) unless duplicates/complements/constants
// force a reduction (spec.md §4.2).
func (a *Arena) Eq(xs ...*Node) *Node {
	xs = flatten(Eq, xs)

	// A constant operand forces every other operand to match it.
	for _, x := range xs {
		if x.kind == Zero {
			rest := make([]*Node, 0, len(xs))
			for _, y := range xs {
				if y.kind != Zero {
					rest = append(rest, a.Not(y))
				}
			}
			return a.And(rest...)
		}
		if x.kind == One {
			rest := make([]*Node, 0, len(xs))
			for _, y := range xs {
				if y.kind != One {
					rest = append(rest, y)
				}
			}
			return a.And(rest...)
		}
	}

	byID(xs)
	kept := dedupSorted(xs)

	switch len(kept) {
	case 0, 1:
		return a.one
	case 2:
		return a.Not(a.Xor(kept[0], kept[1]))
	default:
		if hasComplementPair(kept) {
			return a.zero
		}
		return a.intern(Eq, 0, kept)
	}
}

// Impl builds p→q: Impl(Zero,_)→One; Impl(_,One)→One; Impl(One,q)→q;
// Impl(p,Zero)→¬p; Impl(p,p)→One (spec.md §4.2).
func (a *Arena) Impl(p, q *Node) *Node {
	switch {
	case p.kind == Zero:
		return a.one
	case q.kind == One:
		return a.one
	case p.kind == One:
		return q
	case q.kind == Zero:
		return a.Not(p)
	case p == q:
		return a.one
	default:
		return a.intern(Impl, 0, []*Node{p, q})
	}
}

// Ite builds "if s then d1 else d0": Ite(One,a,_)→a; Ite(Zero,_,b)→b;
// Ite(s,a,a)→a; Ite(s,One,Zero)→s; Ite(s,Zero,One)→¬s; Ite(¬s,a,b)→Ite(s,b,a)
// (spec.md §4.2).
func (a *Arena) Ite(s, d1, d0 *Node) *Node {
	switch {
	case s.kind == One:
		return d1
	case s.kind == Zero:
		return d0
	case d1 == d0:
		return d1
	case d1.kind == One && d0.kind == Zero:
		return s
	case d1.kind == Zero && d0.kind == One:
		return a.Not(s)
	case s.kind == Comp:
		sv := a.intern(Var, -s.data, nil)
		return a.intern(Ite, 0, []*Node{sv, d0, d1})
	case s.kind == Not:
		return a.Ite(s.kids[0], d0, d1)
	default:
		return a.intern(Ite, 0, []*Node{s, d1, d0})
	}
}

// AtLeast builds a cardinality node meaning "at least k of xs are true"
// (spec.md §4.4). Edge forms: k≤0 → One; k=1 → Or(xs); k=len(xs) →
// And(xs); k>len(xs) → Zero. simplify (via the arena's reductions) further
// removes Zero operands and decrements k for each One operand the caller
// leaves in; AtLeast itself expects a pre-simplified operand list and does
// that same reduction eagerly so the persisted node is already canonical.
func (a *Arena) AtLeast(k int, xs ...*Node) *Node {
	n := len(xs)

	// Absorb constants the same way simplify would, so AtLeast never
	// persists a node whose operands include a constant.
	reduced := make([]*Node, 0, n)
	for _, x := range xs {
		switch x.kind {
		case Zero:
			continue
		case One:
			k--
		default:
			reduced = append(reduced, x)
		}
	}
	xs = reduced
	n = len(xs)

	switch {
	case k <= 0:
		return a.one
	case k > n:
		return a.zero
	case k == 1:
		return a.Or(xs...)
	case k == n:
		return a.And(xs...)
	}

	// Duplicate operands are kept: each occurrence counts toward k.
	byID(xs)
	return a.intern(AtLeast, int64(k), xs)
}
