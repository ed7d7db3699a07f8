// Package tseitin implements the Tseitin transformation: introducing a
// fresh auxiliary variable per internal operator so that an arbitrary
// formula becomes an equisatisfiable set of small constraints suitable
// for CNF lowering, grounded on original_source's
// expression/node/transform.py `tseitin` (itself mirroring
// expression/node.py's `tseitin_encoding`).
package tseitin

import (
	"github.com/xDarkicex/boolexpr/cardinality"
	"github.com/xDarkicex/boolexpr/node"
	"github.com/xDarkicex/boolexpr/transform"
)

// Constraint pairs an auxiliary variable with the subexpression it stands
// for: the caller conjoins aux ⇔ Sub for every constraint alongside TopLit
// to obtain a formula equisatisfiable with the original root.
type Constraint struct {
	Aux *node.Node
	Sub *node.Node
}

type frame struct {
	n       *node.Node
	visited bool
}

// Encode runs the iterative (non-recursive) postorder Tseitin
// transformation over root, using newVar to mint each fresh auxiliary
// (typically universe.Universe.GetNextVar(prefix).PosLit()). Atomic roots
// are returned unchanged with no constraints (spec.md §4.5).
//
// An explicit stack is used instead of recursion so arbitrarily deep DAGs
// don't blow the Go call stack (spec.md §9, "Iterative DFS over DAGs").
// Duplicate subnodes are visited once and share one auxiliary, since
// lookups are keyed by node identifier.
func Encode(a *node.Arena, root *node.Node, newVar func() *node.Node) (*node.Node, []Constraint) {
	if root.Kind().IsAtom() {
		return root, nil
	}

	var constraints []Constraint
	litFor := make(map[int32]*node.Node)
	stack := []frame{{root, false}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		curr := top.n

		if !top.visited {
			stack = append(stack, frame{curr, true})
			for _, child := range curr.Children() {
				if !child.Kind().IsAtom() {
					if _, done := litFor[child.ID()]; !done {
						stack = append(stack, frame{child, false})
					}
				}
			}
			continue
		}

		if _, done := litFor[curr.ID()]; done {
			continue
		}

		operands := curr.Children()
		resolved := make([]*node.Node, len(operands))
		for i, op := range operands {
			if lit, ok := litFor[op.ID()]; ok {
				resolved[i] = lit
			} else {
				resolved[i] = op
			}
		}

		sub := buildSub(a, curr, resolved)
		aux := newVar()
		constraints = append(constraints, Constraint{Aux: aux, Sub: sub})
		litFor[curr.ID()] = aux
	}

	return litFor[root.ID()], constraints
}

// buildSub reconstructs curr's operator over resolved (already-substituted)
// operands through the arena's smart constructors.
func buildSub(a *node.Arena, curr *node.Node, resolved []*node.Node) *node.Node {
	switch curr.Kind() {
	case node.Not:
		return a.Not(resolved[0])
	case node.And:
		return a.And(resolved...)
	case node.Or:
		return a.Or(resolved...)
	case node.Xor:
		return a.Xor(resolved...)
	case node.Eq:
		return a.Eq(resolved...)
	case node.Impl:
		return a.Impl(resolved[0], resolved[1])
	case node.Ite:
		return a.Ite(resolved[0], resolved[1], resolved[2])
	case node.AtLeast:
		k, _ := curr.Threshold()
		return cardinality.AtLeast(a, k, resolved, true)
	default:
		return curr
	}
}

// ToCNF lowers a Tseitin encoding into a single CNF: the conjunction of
// topLit with, for every constraint, the CNF of (aux ⇔ sub). The caller
// typically feeds the result to cnf.EncodeCNF for a DIMACS CNF projection.
func ToCNF(a *node.Arena, topLit *node.Node, constraints []Constraint) *node.Node {
	clauses := make([]*node.Node, 0, len(constraints)+1)
	clauses = append(clauses, topLit)
	for _, c := range constraints {
		clauses = append(clauses, transform.ToCNF(a, a.Eq(c.Aux, c.Sub)))
	}
	return a.And(clauses...)
}
