package cnf

import (
	"strconv"
	"strings"

	"github.com/xDarkicex/boolexpr/node"
)

// DimacsCNF renders a Conj-form NormalForm as DIMACS CNF text: a header
// line `p cnf NVARS NCLAUSES` followed by one line per clause ending in
// ` 0` (spec.md §4.7, §6).
func DimacsCNF(nf NormalForm) string {
	var b strings.Builder
	b.WriteString("p cnf ")
	b.WriteString(strconv.Itoa(nf.NVars))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(len(nf.Clauses)))
	b.WriteByte('\n')
	for _, c := range nf.Clauses {
		for _, lit := range c {
			b.WriteString(strconv.Itoa(lit))
			b.WriteByte(' ')
		}
		b.WriteString("0\n")
	}
	return b.String()
}

// DimacsSAT renders an arbitrary expression (not necessarily CNF) in
// DIMACS SAT prefix-notation: a header `p <fmt> <nvars>` where fmt is
// sat/sate/satx/satex depending on whether Eq and/or Xor occur, followed
// by a prefix-operator string (spec.md §6). litmap maps each literal node
// reachable from expr to its signed DIMACS index.
func DimacsSAT(expr *node.Node, nvars int, litmap map[*node.Node]int) string {
	hasEq, hasXor := scanForEqXor(expr)
	format := "sat"
	switch {
	case hasEq && hasXor:
		format = "satex"
	case hasEq:
		format = "sate"
	case hasXor:
		format = "satx"
	}

	var b strings.Builder
	b.WriteString("p ")
	b.WriteString(format)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(nvars))
	b.WriteByte('\n')
	writePrefix(&b, expr, litmap)
	b.WriteByte('\n')
	return b.String()
}

func scanForEqXor(expr *node.Node) (hasEq, hasXor bool) {
	expr.DFS(func(n *node.Node) bool {
		switch n.Kind() {
		case node.Eq:
			hasEq = true
		case node.Xor:
			hasXor = true
		}
		return true
	})
	return hasEq, hasXor
}

func writePrefix(b *strings.Builder, n *node.Node, litmap map[*node.Node]int) {
	if idx, ok := litmap[n]; ok {
		b.WriteString(strconv.Itoa(idx))
		return
	}

	switch n.Kind() {
	case node.Zero:
		b.WriteString("0")
	case node.One:
		b.WriteString("1")
	case node.Not:
		b.WriteString("-(")
		writePrefix(b, n.Children()[0], litmap)
		b.WriteByte(')')
	case node.And:
		writeNary(b, "*(", n.Children(), litmap)
	case node.Or:
		writeNary(b, "+(", n.Children(), litmap)
	case node.Xor:
		writeNary(b, "xor(", n.Children(), litmap)
	case node.Eq:
		writeNary(b, "=(", n.Children(), litmap)
	default:
		// Impl/Ite/AtLeast have no DIMACS SAT opcode; callers are expected
		// to lower them (e.g. via transform.ToNNF) before emission.
		b.WriteString("?")
	}
}

func writeNary(b *strings.Builder, opener string, kids []*node.Node, litmap map[*node.Node]int) {
	b.WriteString(opener)
	for i, k := range kids {
		if i > 0 {
			b.WriteByte(' ')
		}
		writePrefix(b, k, litmap)
	}
	b.WriteByte(')')
}
