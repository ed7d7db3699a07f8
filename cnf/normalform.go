// Package cnf implements the normal-form container (spec.md §4.7): a
// (nvars, clauses) pair interpreted as conjunction-of-disjunctions (CNF)
// or disjunction-of-conjunctions (DNF), plus DIMACS CNF/SAT projection.
package cnf

import (
	"sort"
	"strconv"

	"github.com/xDarkicex/boolexpr/node"
	"github.com/xDarkicex/boolexpr/transform"
)

// Form tags whether a NormalForm's clause set is read as an And of Ors
// (Conj) or an Or of Ands (Disj).
type Form int8

const (
	Disj Form = iota // disjunctive normal form: Or of Ands
	Conj             // conjunctive normal form: And of Ors
)

// Clause is a signed-integer literal set: positive entries are positive
// literals, negative entries are negations. Stored sorted by ascending
// absolute value, positive before negative on a tie, the canonical
// ordering spec.md §6 suggests for DIMACS emission.
type Clause []int

func canonicalizeClause(lits []int) Clause {
	out := append(Clause(nil), lits...)
	sort.Slice(out, func(i, j int) bool {
		ai, aj := abs(out[i]), abs(out[j])
		if ai != aj {
			return ai < aj
		}
		return out[i] > out[j] // positive before negative
	})
	return dedupClause(out)
}

func dedupClause(c Clause) Clause {
	if len(c) < 2 {
		return c
	}
	out := c[:1]
	for _, lit := range c[1:] {
		if lit != out[len(out)-1] {
			out = append(out, lit)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// NormalForm is a set of clauses (or cubes, read per Form) over a
// variable universe of size NVars.
type NormalForm struct {
	Form    Form
	NVars   int
	Clauses []Clause
}

// DisjNormalForm constructs a DNF container from a set of cubes.
func DisjNormalForm(nvars int, cubes [][]int) NormalForm {
	return newNormalForm(Disj, nvars, cubes)
}

// ConjNormalForm constructs a CNF container from a set of clauses.
func ConjNormalForm(nvars int, clauses [][]int) NormalForm {
	return newNormalForm(Conj, nvars, clauses)
}

func newNormalForm(form Form, nvars int, rows [][]int) NormalForm {
	clauses := make([]Clause, len(rows))
	for i, row := range rows {
		clauses[i] = canonicalizeClause(row)
	}
	return NormalForm{Form: form, NVars: nvars, Clauses: clauses}
}

// Invert negates every literal and swaps Disj/Conj, the container-level
// De Morgan dual (spec.md §4.7).
func (nf NormalForm) Invert() NormalForm {
	out := NormalForm{NVars: nf.NVars, Clauses: make([]Clause, len(nf.Clauses))}
	if nf.Form == Conj {
		out.Form = Disj
	} else {
		out.Form = Conj
	}
	for i, c := range nf.Clauses {
		negated := make([]int, len(c))
		for j, lit := range c {
			negated[j] = -lit
		}
		out.Clauses[i] = canonicalizeClause(negated)
	}
	return out
}

// Reduce expands every clause into its full set of minterms (Disj) or
// maxterms (Conj) over all NVars variables — the canonical full form
// (spec.md §4.7).
func (nf NormalForm) Reduce() NormalForm {
	seen := make(map[string]bool)
	var full []Clause
	for _, c := range nf.Clauses {
		for _, expanded := range expandClause(c, nf.NVars) {
			key := clauseKey(expanded)
			if !seen[key] {
				seen[key] = true
				full = append(full, expanded)
			}
		}
	}
	return NormalForm{Form: nf.Form, NVars: nf.NVars, Clauses: full}
}

// expandClause splits c over every variable in [1,nvars] missing from it,
// recursively, until every returned clause mentions all nvars variables.
func expandClause(c Clause, nvars int) []Clause {
	present := make(map[int]bool, len(c))
	for _, lit := range c {
		present[abs(lit)] = true
	}

	missing := 0
	for v := 1; v <= nvars; v++ {
		if !present[v] {
			missing = v
			break
		}
	}
	if missing == 0 {
		return []Clause{canonicalizeClause(c)}
	}

	withPos := append(append(Clause(nil), c...), missing)
	withNeg := append(append(Clause(nil), c...), -missing)
	return append(expandClause(withPos, nvars), expandClause(withNeg, nvars)...)
}

func clauseKey(c Clause) string {
	key := ""
	for _, lit := range c {
		key += signedString(lit) + ","
	}
	return key
}

func signedString(x int) string {
	if x < 0 {
		return "n" + strconv.Itoa(-x)
	}
	return "p" + strconv.Itoa(x)
}

// Decode rebuilds nf as an expression: an Or-of-Ands (Disj) or And-of-Ors
// (Conj) over the literal nodes litmap maps each signed index to.
func Decode(a *node.Arena, nf NormalForm, litmap map[int]*node.Node) *node.Node {
	terms := make([]*node.Node, len(nf.Clauses))
	for i, c := range nf.Clauses {
		lits := make([]*node.Node, len(c))
		for j, lit := range c {
			lits[j] = litmap[lit]
		}
		if nf.Form == Conj {
			terms[i] = a.Or(lits...)
		} else {
			terms[i] = a.And(lits...)
		}
	}
	if nf.Form == Conj {
		return a.And(terms...)
	}
	return a.Or(terms...)
}

// Soln2Point converts a DIMACS-style full signed-assignment vector over
// compact indices into a restriction Point keyed by the expression's
// original universe variable indices, resolving each compact literal
// through litmap (the bijection EncodeInputs/EncodeCNF produced) exactly
// as Decode does, so the result is usable directly with transform.Restrict
// (spec.md §4.7, grounded on original_source/src/boolexpr/expr.py's
// soln2point).
func Soln2Point(soln []int, litmap map[int]*node.Node) transform.Point {
	p := make(transform.Point, len(soln))
	for _, lit := range soln {
		idx, ok := litmap[abs(lit)].VarIndex()
		if !ok {
			continue
		}
		p[idx] = lit > 0
	}
	return p
}
