// Package boolexpr is the root facade over node/universe/transform: the
// ergonomic entry point a caller reaches for first, in the teacher's
// classical/logic.go tradition of a top-level package wrapping the
// lower-level machinery with short, direct functions (And/Or/Not,
// EvaluateExpression, GenerateTruthTable).
package boolexpr

import (
	"strconv"
	"strings"

	"github.com/xDarkicex/boolexpr/core"
	"github.com/xDarkicex/boolexpr/node"
	"github.com/xDarkicex/boolexpr/parser"
	"github.com/xDarkicex/boolexpr/render"
	"github.com/xDarkicex/boolexpr/transform"
	"github.com/xDarkicex/boolexpr/universe"
)

// Engine bundles a Universe (and the Arena it owns) with the parser bound
// to it, the unit most callers want: one arena, one variable namespace, one
// surface-grammar parser, all sharing the same hash-cons table.
type Engine struct {
	universe *universe.Universe
	parser   *parser.Parser
}

// New creates an Engine with a fresh Universe and Arena. Arena options
// (node.WithLogger, node.WithMemoCacheSize) apply to the underlying arena.
func New(opts ...node.Option) *Engine {
	u := universe.New(opts...)
	return &Engine{universe: u, parser: parser.New(u)}
}

// Universe returns the Engine's variable namespace.
func (e *Engine) Universe() *universe.Universe { return e.universe }

// Arena returns the node arena backing every expression this Engine builds.
func (e *Engine) Arena() *node.Arena { return e.universe.Arena() }

// Var returns the positive literal for a named variable, registering it on
// first use.
func (e *Engine) Var(name string, indices ...int) *node.Node {
	return e.universe.Var(name, indices...).PosLit()
}

// Zero and One return the constant singletons.
func (e *Engine) Zero() *node.Node { return e.Arena().Zero() }
func (e *Engine) One() *node.Node  { return e.Arena().One() }

// Not, And, Or, Xor, Eq, Impl, Ite, AtLeast build an expression via the
// Engine's arena smart constructors (spec.md §4.2); see node.Arena for
// their reduction rules.
func (e *Engine) Not(x *node.Node) *node.Node                { return e.Arena().Not(x) }
func (e *Engine) And(xs ...*node.Node) *node.Node            { return e.Arena().And(xs...) }
func (e *Engine) Or(xs ...*node.Node) *node.Node             { return e.Arena().Or(xs...) }
func (e *Engine) Xor(xs ...*node.Node) *node.Node            { return e.Arena().Xor(xs...) }
func (e *Engine) Eq(xs ...*node.Node) *node.Node             { return e.Arena().Eq(xs...) }
func (e *Engine) Impl(p, q *node.Node) *node.Node            { return e.Arena().Impl(p, q) }
func (e *Engine) Ite(s, d1, d0 *node.Node) *node.Node        { return e.Arena().Ite(s, d1, d0) }
func (e *Engine) AtLeast(k int, xs ...*node.Node) *node.Node { return e.Arena().AtLeast(k, xs...) }

// Parse parses expr against the Engine's Universe, registering any
// previously unseen identifier on demand (spec.md §9).
func (e *Engine) Parse(expr string) (*node.Node, error) {
	return e.parser.Parse(expr)
}

// label resolves a variable index to its registered dotted/bracketed name,
// falling back to render's default "x<idx>" form for an index this Engine
// never assigned (shouldn't happen for a node built through this Engine).
func (e *Engine) label(idx int) string {
	v, err := e.universe.Lookup(idx)
	if err != nil {
		return "x" + strconv.Itoa(idx)
	}
	return v.Label.String()
}

// Infix renders n as a fully parenthesized infix expression, naming
// variables by their registered labels.
func (e *Engine) Infix(n *node.Node) string {
	return render.Infix(n, render.WithLabels(e.label))
}

// Tree renders n as an indented tree, naming variables by their registered
// labels.
func (e *Engine) Tree(n *node.Node) string {
	return render.Tree(n, render.WithLabels(e.label))
}

// Eval evaluates n under a total assignment of every variable in n's
// support, keyed by registered variable label. It returns core.TypeMismatch
// if assignment leaves any of n's support variables unassigned.
func (e *Engine) Eval(n *node.Node, assignment map[string]bool) (bool, error) {
	point := make(transform.Point, len(assignment))
	for _, support := range n.SupportSorted() {
		v, err := e.universe.Lookup(support)
		if err != nil {
			return false, err
		}
		val, ok := assignment[v.Label.String()]
		if !ok {
			return false, core.New(core.TypeMismatch, "boolexpr", "Eval", "missing assignment for variable "+v.Label.String())
		}
		point[support] = val
	}
	restricted := transform.Restrict(e.Arena(), n, point)
	if !restricted.IsConstant() {
		return false, core.New(core.TypeMismatch, "boolexpr", "Eval", "assignment did not reduce expression to a constant")
	}
	return restricted.IsOne(), nil
}

// TruthTableRow is one row of a TruthTable: a full assignment over the
// table's variables and the resulting output, in the teacher's
// classical.TruthTableRow shape.
type TruthTableRow struct {
	Inputs map[string]bool
	Output bool
}

// TruthTable is the complete input/output enumeration for an expression
// over a fixed variable order, in the teacher's classical.TruthTable shape
// (classical/truthtable.go), rebuilt on top of the DAG engine's cofactor
// machinery instead of a raw boolean function pointer.
type TruthTable struct {
	Variables []string
	Rows      []TruthTableRow
}

// TruthTable enumerates every assignment over n's support and evaluates n
// at each, in ascending binary-counter order (transform.Points).
func (e *Engine) TruthTable(n *node.Node) *TruthTable {
	support := n.SupportSorted()
	names := make([]string, len(support))
	for i, idx := range support {
		v, err := e.universe.Lookup(idx)
		if err == nil {
			names[i] = v.Label.String()
		}
	}

	points := transform.Points(support)
	tt := &TruthTable{Variables: names, Rows: make([]TruthTableRow, len(points))}
	for i, p := range points {
		restricted := transform.Simplify(e.Arena(), transform.Restrict(e.Arena(), n, p))
		inputs := make(map[string]bool, len(support))
		for j, idx := range support {
			inputs[names[j]] = p[idx]
		}
		tt.Rows[i] = TruthTableRow{Inputs: inputs, Output: restricted.IsOne()}
	}
	return tt
}

// String formats the table with one left-justified column per variable
// followed by an Output column, matching classical.TruthTable.String().
func (tt *TruthTable) String() string {
	if len(tt.Rows) == 0 {
		return "Empty truth table\n"
	}

	var b strings.Builder
	for _, v := range tt.Variables {
		b.WriteString(padRight(v, 8))
	}
	b.WriteString("Output\n")
	b.WriteString(strings.Repeat("-", len(tt.Variables)*8+6))
	b.WriteString("\n")

	for _, row := range tt.Rows {
		for _, v := range tt.Variables {
			if row.Inputs[v] {
				b.WriteString("T       ")
			} else {
				b.WriteString("F       ")
			}
		}
		if row.Output {
			b.WriteString("T")
		} else {
			b.WriteString("F")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

// SortedSupport returns n's support variable indices in ascending order,
// the order TruthTable and Eval assign columns/digits in.
func SortedSupport(n *node.Node) []int {
	return n.SupportSorted()
}
