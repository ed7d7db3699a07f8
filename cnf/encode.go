package cnf

import (
	"github.com/hashicorp/go-multierror"

	"github.com/xDarkicex/boolexpr/core"
	"github.com/xDarkicex/boolexpr/node"
)

// EncodeInputs assigns a compact signed index in [1, nvars] to every
// variable in expr's support (in ascending original-index order) and
// returns the litmap bijection between compact indices and expr's
// literal nodes, plus nvars (spec.md §4.7).
func EncodeInputs(a *node.Arena, expr *node.Node) (litmap map[int]*node.Node, nvars int) {
	vars := expr.SupportSorted()
	litmap = make(map[int]*node.Node, 2*len(vars))
	for i, origIdx := range vars {
		compact := i + 1
		litmap[compact] = a.MustLit(origIdx)
		litmap[-compact] = a.MustLit(-origIdx)
	}
	return litmap, len(vars)
}

// reverseIndex inverts the positive half of a litmap into original
// variable index -> compact index, for projecting clause literals.
func reverseIndex(litmap map[int]*node.Node) map[int]int {
	rev := make(map[int]int, len(litmap)/2)
	for compact, n := range litmap {
		if compact <= 0 {
			continue
		}
		if idx, ok := n.VarIndex(); ok {
			rev[idx] = compact
		}
	}
	return rev
}

// EncodeCNF projects expr, which must already be in CNF (an And of Ors of
// literals, a bare Or, a literal, or a constant), into a ConjNormalForm
// over compact indices, plus the litmap EncodeInputs produced.
func EncodeCNF(a *node.Arena, expr *node.Node) (NormalForm, map[int]*node.Node, error) {
	litmap, nvars := EncodeInputs(a, expr)
	rev := reverseIndex(litmap)

	clauses, err := projectClauses(expr, node.And, node.Or, rev)
	if err != nil {
		return NormalForm{}, nil, err
	}
	return ConjNormalForm(nvars, clauses), litmap, nil
}

// EncodeDNF projects expr, which must already be in DNF (an Or of Ands of
// literals, a bare And, a literal, or a constant), into a DisjNormalForm.
func EncodeDNF(a *node.Arena, expr *node.Node) (NormalForm, map[int]*node.Node, error) {
	litmap, nvars := EncodeInputs(a, expr)
	rev := reverseIndex(litmap)

	clauses, err := projectClauses(expr, node.Or, node.And, rev)
	if err != nil {
		return NormalForm{}, nil, err
	}
	return DisjNormalForm(nvars, clauses), litmap, nil
}

// projectClauses reads expr's top-level structure (expected: outer of
// inner of literals) into a slice of signed-int rows using rev to
// translate each literal's variable index to its compact index.
func projectClauses(expr *node.Node, outer, inner node.Kind, rev map[int]int) ([][]int, error) {
	if expr.IsConstant() {
		if expr.IsOne() {
			return [][]int{}, nil
		}
		return [][]int{{}}, nil
	}

	var terms []*node.Node
	switch {
	case expr.Kind() == outer:
		terms = expr.Children()
	case expr.Kind() == inner, expr.Kind().IsLiteral():
		terms = []*node.Node{expr}
	default:
		return nil, core.New(core.ShapeError, "cnf", "projectClauses", "expression is not in the expected normal form")
	}

	rows := make([][]int, len(terms))
	var errs *multierror.Error
	for i, t := range terms {
		lits, err := projectLiterals(t, inner, rev)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		rows[i] = lits
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return rows, nil
}

func projectLiterals(term *node.Node, inner node.Kind, rev map[int]int) ([]int, error) {
	var lits []*node.Node
	switch {
	case term.Kind() == inner:
		lits = term.Children()
	case term.Kind().IsLiteral():
		lits = []*node.Node{term}
	default:
		return nil, core.New(core.ShapeError, "cnf", "projectLiterals", "term is not a conjunction/disjunction of literals")
	}

	out := make([]int, len(lits))
	for i, l := range lits {
		idx, ok := l.VarIndex()
		if !ok {
			return nil, core.New(core.ShapeError, "cnf", "projectLiterals", "operand is not a literal")
		}
		compact, known := rev[idx]
		if !known {
			return nil, core.New(core.ShapeError, "cnf", "projectLiterals", "literal outside expression support")
		}
		if l.Kind() == node.Comp {
			compact = -compact
		}
		out[i] = compact
	}
	return out, nil
}
