package transform

import "github.com/xDarkicex/boolexpr/node"

// Points enumerates every one of the 2^|vars| points over vars — exported
// for callers (e.g. the cardinality encoder's variable-sharing expansion)
// that need the same enumeration transform uses internally.
func Points(vars []int) []Point { return iterPoints(vars) }

// iterPoints enumerates every one of the 2^|vars| points over vars, in
// ascending binary-counter order (bit i of the counter selects vars[i]'s
// polarity), matching original_source's point.num2point/iter_points.
func iterPoints(vars []int) []Point {
	n := len(vars)
	total := 1 << n
	out := make([]Point, total)
	for num := 0; num < total; num++ {
		p := make(Point, n)
		for i, v := range vars {
			p[v] = (num>>i)&1 == 1
		}
		out[num] = p
	}
	return out
}

// PointTerm builds the conjunction of the literals expressing point —
// exported for the cardinality encoder's shared-variable expansion.
func PointTerm(a *node.Arena, p Point) *node.Node { return pointToTerm(a, p) }

// pointToTerm builds the conjunction of the literals expressing point
// (positive literal where true, negated where false).
func pointToTerm(a *node.Arena, p Point) *node.Node {
	lits := make([]*node.Node, 0, len(p))
	for idx, polarity := range p {
		if polarity {
			lits = append(lits, a.MustLit(idx))
		} else {
			lits = append(lits, a.MustLit(-idx))
		}
	}
	return a.And(lits...)
}

// IterCofactors returns the 2^|vars| restrictions of x over every 0/1
// assignment to vars (spec.md §4.3).
func IterCofactors(a *node.Arena, x *node.Node, vars []int) []*node.Node {
	points := iterPoints(vars)
	out := make([]*node.Node, len(points))
	for i, p := range points {
		out[i] = Restrict(a, x, p)
	}
	return out
}

// Universal returns the universal quantification of x over vars: the
// conjunction of every cofactor ("for all assignments to vars, x holds").
func Universal(a *node.Arena, x *node.Node, vars []int) *node.Node {
	return a.And(IterCofactors(a, x, vars)...)
}

// Existential returns the existential quantification of x over vars: the
// disjunction of every cofactor ("some assignment to vars makes x hold").
func Existential(a *node.Arena, x *node.Node, vars []int) *node.Node {
	return a.Or(IterCofactors(a, x, vars)...)
}

// Derivative (a.k.a. the Boolean difference) returns the parity of every
// cofactor of x over vars — nonzero wherever x is sensitive to vars.
func Derivative(a *node.Arena, x *node.Node, vars []int) *node.Node {
	return a.Xor(IterCofactors(a, x, vars)...)
}

// Shannon returns the Shannon (co-factor) decomposition of x over vars: the
// disjunction, over every point p, of (term(p) ∧ restrict(x, p)).
func Shannon(a *node.Arena, x *node.Node, vars []int) *node.Node {
	points := iterPoints(vars)
	terms := make([]*node.Node, len(points))
	for i, p := range points {
		terms[i] = a.And(pointToTerm(a, p), Restrict(a, x, p))
	}
	return a.Or(terms...)
}
