package cardinality

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/xDarkicex/boolexpr/node"
	"github.com/xDarkicex/boolexpr/transform"
)

// Builder is the shape shared by AtLeast, LessThan, and Exactly, so Expand
// can factor any of them over shared input variables.
type Builder func(a *node.Arena, k int, xs []*node.Node, asCNF bool) *node.Node

// Expand factors a cardinality builder over operands that share input
// variables: for every assignment to the variables occurring in more than
// one operand, it restricts every operand at that point, drops the
// resulting constants (adjusting k for each One), applies builder to the
// reduced operand list, and guards the result with the cube describing
// that assignment — keeping the CNF/DNF size bounded by the non-shared
// part of the input when operands are not literal-disjoint (spec.md §4.4,
// original_source's expression/node/cardinality.py `expand`).
func Expand(a *node.Arena, k int, builder Builder, xs []*node.Node, asCNF bool) *node.Node {
	shared := sharedVariables(xs)
	if shared.Empty() {
		return builder(a, k, xs, asCNF)
	}
	sharedVars := shared.Slice()

	var terms []*node.Node
	for _, point := range transform.Points(sharedVars) {
		deltaK, reduced := removeConstants(transform.RestrictEach(a, xs, point))
		cofactor := builder(a, k+deltaK, reduced, asCNF)
		terms = append(terms, a.And(transform.PointTerm(a, point), cofactor))
	}

	simplified := transform.Simplify(a, a.Or(terms...))
	if asCNF {
		return transform.ToCNF(a, simplified)
	}
	return transform.ToDNF(a, simplified)
}

// sharedVariables returns the variable indices that occur in the support
// of more than one element of xs.
func sharedVariables(xs []*node.Node) *set.Set[int] {
	counts := make(map[int]int, len(xs))
	for _, x := range xs {
		for _, idx := range x.Support().Slice() {
			counts[idx]++
		}
	}
	shared := set.New[int](8)
	for idx, count := range counts {
		if count > 1 {
			shared.Insert(idx)
		}
	}
	return shared
}

// removeConstants drops every Zero operand and folds every One operand
// into a negative adjustment to k, returning the remaining operands.
func removeConstants(xs []*node.Node) (deltaK int, left []*node.Node) {
	left = make([]*node.Node, 0, len(xs))
	for _, x := range xs {
		switch {
		case x.IsZero():
			continue
		case x.IsOne():
			deltaK--
		default:
			left = append(left, x)
		}
	}
	return deltaK, left
}
