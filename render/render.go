// Package render pretty-prints expression DAGs: a parenthesized infix
// form and an indented tree form, grounded on the teacher's String()
// rendering convention (classical/gates.go, classical/truthtable.go).
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xDarkicex/boolexpr/node"
)

// LabelFunc resolves a variable index to its display name. The default
// (nil) renders "x<idx>".
type LabelFunc func(idx int) string

func defaultLabel(idx int) string { return "x" + strconv.Itoa(idx) }

// Option configures Infix/Tree rendering.
type Option func(*config)

type config struct {
	label LabelFunc
}

// WithLabels supplies a LabelFunc resolving variable indices to names,
// typically backed by a universe.Universe's registered identifiers.
func WithLabels(fn LabelFunc) Option {
	return func(c *config) { c.label = fn }
}

func newConfig(opts ...Option) *config {
	c := &config{label: defaultLabel}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Infix renders n as a fully parenthesized infix expression using the
// Unicode operator symbols ¬ ∧ ∨ ⊕ ↔ →. These are for display: the parser
// accepts ¬ but none of the other five.
func Infix(n *node.Node, opts ...Option) string {
	c := newConfig(opts...)
	var b strings.Builder
	writeInfix(&b, n, c)
	return b.String()
}

func writeInfix(b *strings.Builder, n *node.Node, c *config) {
	switch n.Kind() {
	case node.Zero:
		b.WriteByte('0')
	case node.One:
		b.WriteByte('1')
	case node.Var:
		idx, _ := n.VarIndex()
		b.WriteString(c.label(idx))
	case node.Comp:
		idx, _ := n.VarIndex()
		b.WriteString("~")
		b.WriteString(c.label(idx))
	case node.Not:
		b.WriteString("¬(")
		writeInfix(b, n.Children()[0], c)
		b.WriteByte(')')
	case node.And:
		writeInfixNary(b, n.Children(), " ∧ ", c)
	case node.Or:
		writeInfixNary(b, n.Children(), " ∨ ", c)
	case node.Xor:
		writeInfixNary(b, n.Children(), " ⊕ ", c)
	case node.Eq:
		writeInfixNary(b, n.Children(), " ↔ ", c)
	case node.Impl:
		kids := n.Children()
		b.WriteByte('(')
		writeInfix(b, kids[0], c)
		b.WriteString(" → ")
		writeInfix(b, kids[1], c)
		b.WriteByte(')')
	case node.Ite:
		kids := n.Children()
		b.WriteByte('(')
		writeInfix(b, kids[0], c)
		b.WriteString(" ? ")
		writeInfix(b, kids[1], c)
		b.WriteString(" : ")
		writeInfix(b, kids[2], c)
		b.WriteByte(')')
	case node.AtLeast:
		k, _ := n.Threshold()
		b.WriteString("atleast(")
		b.WriteString(strconv.Itoa(k))
		b.WriteString(", ")
		writeInfixNary(b, n.Children(), ", ", c)
		b.WriteByte(')')
	}
}

func writeInfixNary(b *strings.Builder, kids []*node.Node, sep string, c *config) {
	b.WriteByte('(')
	for i, k := range kids {
		if i > 0 {
			b.WriteString(sep)
		}
		writeInfix(b, k, c)
	}
	b.WriteByte(')')
}

// Tree renders n as an indented tree, one node per line.
func Tree(n *node.Node, opts ...Option) string {
	c := newConfig(opts...)
	var b strings.Builder
	writeTree(&b, n, 0, c)
	return b.String()
}

func writeTree(b *strings.Builder, n *node.Node, depth int, c *config) {
	b.WriteString(strings.Repeat("  ", depth))
	switch n.Kind() {
	case node.Var:
		idx, _ := n.VarIndex()
		fmt.Fprintf(b, "Var(%s)\n", c.label(idx))
		return
	case node.Comp:
		idx, _ := n.VarIndex()
		fmt.Fprintf(b, "Comp(%s)\n", c.label(idx))
		return
	case node.Zero, node.One:
		fmt.Fprintf(b, "%s\n", n.Kind())
		return
	case node.AtLeast:
		k, _ := n.Threshold()
		fmt.Fprintf(b, "AtLeast(%d)\n", k)
	default:
		fmt.Fprintf(b, "%s\n", n.Kind())
	}
	for _, kid := range n.Children() {
		writeTree(b, kid, depth+1, c)
	}
}
