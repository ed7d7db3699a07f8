// Package cardinality implements the AtLeast/LessThan/Exactly encoders
// and the shared-variable expansion that keeps their CNF/DNF size in
// check, grounded on original_source's expression/node/cardinality.py.
package cardinality

import "github.com/xDarkicex/boolexpr/node"

// AtLeast returns an expression meaning "at least k of xs are true".
// asCNF selects the CNF expansion (And of Ors over (n-k+1)-subsets) or
// the DNF expansion (Or of Ands over k-subsets); spec.md §4.4 edge forms
// (k≤0, k=1, k=n, k>n) are handled directly.
func AtLeast(a *node.Arena, k int, xs []*node.Node, asCNF bool) *node.Node {
	n := len(xs)
	switch {
	case k <= 0:
		return a.One()
	case k == 1:
		return a.Or(xs...)
	case k == n:
		return a.And(xs...)
	case k > n:
		return a.Zero()
	}

	if asCNF {
		combos := combinations(xs, n-k+1)
		clauses := make([]*node.Node, len(combos))
		for i, combo := range combos {
			clauses[i] = a.Or(combo...)
		}
		return a.And(clauses...)
	}

	combos := combinations(xs, k)
	cubes := make([]*node.Node, len(combos))
	for i, combo := range combos {
		cubes[i] = a.And(combo...)
	}
	return a.Or(cubes...)
}

// LessThan returns an expression meaning "fewer than k of xs are true".
func LessThan(a *node.Arena, k int, xs []*node.Node, asCNF bool) *node.Node {
	n := len(xs)
	negated := make([]*node.Node, n)
	for i, x := range xs {
		negated[i] = a.Not(x)
	}

	switch {
	case k <= 0:
		return a.Zero()
	case k == 1:
		return a.And(negated...)
	case k == n:
		return a.Or(negated...)
	case k > n:
		return a.One()
	}

	if asCNF {
		combos := combinations(negated, k)
		clauses := make([]*node.Node, len(combos))
		for i, combo := range combos {
			clauses[i] = a.Or(combo...)
		}
		return a.And(clauses...)
	}

	combos := combinations(negated, n-k+1)
	cubes := make([]*node.Node, len(combos))
	for i, combo := range combos {
		cubes[i] = a.And(combo...)
	}
	return a.Or(cubes...)
}

// Exactly returns an expression meaning "exactly k of xs are true",
// defined in terms of AtLeast and LessThan (spec.md §4.4).
func Exactly(a *node.Arena, k int, xs []*node.Node, asCNF bool) *node.Node {
	return a.And(AtLeast(a, k, xs, asCNF), LessThan(a, k+1, xs, asCNF))
}

// Size returns the tree size of AtLeast's CNF or DNF expansion (operator
// nodes plus literal leaves, e.g. n+1 for k=1 and 1 for a constant result)
// without building it, for callers estimating blow-up before committing
// (original_source's at_least_size). It is not a clause or cube count.
func Size(n, k int, asCNF bool) int {
	switch {
	case k <= 0, k > n:
		return 1
	case k == 1, k == n:
		return n + 1
	}
	r := n - k + 1
	if !asCNF {
		r = k
	}
	return (r+1)*binomial(n, r) + 1
}

func binomial(n, r int) int {
	if r < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r
	}
	result := 1
	for i := 0; i < r; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}
