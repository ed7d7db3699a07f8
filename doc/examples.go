// Package main demonstrates usage examples for the boolexpr module.
// This file contains runnable examples showing how to use the major
// features of the engine, in the teacher's doc/examples.go convention
// (one ExampleXxx function per feature area, invoked in sequence from
// main).
package main

import (
	"fmt"

	"github.com/xDarkicex/boolexpr"
	"github.com/xDarkicex/boolexpr/cardinality"
	"github.com/xDarkicex/boolexpr/cnf"
	"github.com/xDarkicex/boolexpr/core"
	"github.com/xDarkicex/boolexpr/node"
	"github.com/xDarkicex/boolexpr/transform"
	"github.com/xDarkicex/boolexpr/tseitin"
)

// ExampleBasicOperations demonstrates building and rendering an
// expression with the root Engine facade.
func ExampleBasicOperations() {
	fmt.Println("=== Basic Expression Building ===")

	e := boolexpr.New()
	a, b, c := e.Var("a"), e.Var("b"), e.Var("c")

	and := e.And(a, b)
	or := e.Or(a, b, c)
	not := e.Not(a)
	impl := e.Impl(a, b)

	fmt.Printf("a & b:     %s\n", e.Infix(and))
	fmt.Printf("a | b | c: %s\n", e.Infix(or))
	fmt.Printf("~a:        %s\n", e.Infix(not))
	fmt.Printf("a -> b:    %s\n", e.Infix(impl))

	// Constant absorption happens at construction time.
	fmt.Printf("a & ~a:    %s (always false)\n", e.Infix(e.And(a, e.Not(a))))
	fmt.Printf("a | ~a:    %s (always true)\n", e.Infix(e.Or(a, e.Not(a))))

	fmt.Println()
}

// ExampleParsing demonstrates parsing the surface grammar against a
// shared Engine, including dotted/bracketed identifiers.
func ExampleParsing() {
	fmt.Println("=== Parsing ===")

	e := boolexpr.New()
	n, err := e.Parse("(sensor.alarm[0] & ~sensor.alarm[1]) -> panel.armed")
	if err != nil {
		fmt.Printf("parse error: %v\n", err)
		return
	}
	fmt.Printf("parsed: %s\n", e.Infix(n))
	fmt.Printf("support size: %d\n", len(n.SupportSorted()))

	fmt.Println()
}

// ExampleSimplifyAndNNF demonstrates algebraic simplification and
// negation normal form conversion.
func ExampleSimplifyAndNNF() {
	fmt.Println("=== Simplify / NNF ===")

	e := boolexpr.New()
	a, b := e.Var("a"), e.Var("b")

	expr := e.Not(e.Ite(a, b, e.Not(b)))
	fmt.Printf("original: %s\n", e.Infix(expr))
	fmt.Printf("nnf:      %s\n", e.Infix(transform.ToNNF(e.Arena(), expr)))
	fmt.Printf("simplify: %s\n", e.Infix(transform.Simplify(e.Arena(), expr)))

	fmt.Println()
}

// ExampleCNFAndDNF demonstrates CNF/DNF lowering and DIMACS CNF
// projection.
func ExampleCNFAndDNF() {
	fmt.Println("=== CNF / DNF / DIMACS ===")

	e := boolexpr.New()
	a, b, c := e.Var("a"), e.Var("b"), e.Var("c")

	expr := e.Eq(e.And(a, b), c)
	cnfExpr := transform.ToCNF(e.Arena(), expr)
	dnfExpr := transform.ToDNF(e.Arena(), expr)

	fmt.Printf("expr: %s\n", e.Infix(expr))
	fmt.Printf("cnf:  %s\n", e.Infix(cnfExpr))
	fmt.Printf("dnf:  %s\n", e.Infix(dnfExpr))

	nf, _, err := cnf.EncodeCNF(e.Arena(), cnfExpr)
	if err != nil {
		fmt.Printf("encode error: %v\n", err)
		return
	}
	fmt.Print(cnf.DimacsCNF(nf))

	fmt.Println()
}

// ExampleCardinality demonstrates the AtLeast-k cardinality encoder.
func ExampleCardinality() {
	fmt.Println("=== Cardinality (AtLeast-k) ===")

	e := boolexpr.New()
	x1, x2, x3, x4 := e.Var("x1"), e.Var("x2"), e.Var("x3"), e.Var("x4")
	operands := []*node.Node{x1, x2, x3, x4}

	atLeast2 := e.AtLeast(2, operands...)
	fmt.Printf("atleast(2, x1..x4):     %s\n", e.Infix(atLeast2))

	cnfForm := cardinality.AtLeast(e.Arena(), 2, operands, true)
	fmt.Printf("atleast(2, ...) as cnf: %s\n", e.Infix(cnfForm))

	exactly2 := cardinality.Exactly(e.Arena(), 2, operands, false)
	fmt.Printf("exactly(2, x1..x4):     %s\n", e.Infix(exactly2))

	fmt.Println()
}

// ExampleTseitin demonstrates the Tseitin encoder producing an
// equisatisfiable CNF with one auxiliary variable per operator.
func ExampleTseitin() {
	fmt.Println("=== Tseitin Encoding ===")

	e := boolexpr.New()
	a, b, c := e.Var("a"), e.Var("b"), e.Var("c")
	expr := e.Or(e.And(a, b), e.And(b, c), e.And(a, c))

	newVar := func() *node.Node { return e.Universe().GetNextVar("t").PosLit() }
	topLit, constraints := tseitin.Encode(e.Arena(), expr, newVar)
	fmt.Printf("top literal: %s\n", e.Infix(topLit))
	for _, con := range constraints {
		fmt.Printf("  %s <-> %s\n", e.Infix(con.Aux), e.Infix(con.Sub))
	}

	fmt.Println()
}

// ExampleTruthTable demonstrates enumerating every assignment of an
// expression's support.
func ExampleTruthTable() {
	fmt.Println("=== Truth Table ===")

	e := boolexpr.New()
	a, b := e.Var("a"), e.Var("b")
	fmt.Print(e.TruthTable(e.Xor(a, b)).String())

	fmt.Println()
}

// ExampleErrorHandling demonstrates the shared core.Error surface.
func ExampleErrorHandling() {
	fmt.Println("=== Error Handling ===")

	e := boolexpr.New()
	_, err := e.Parse("a &")
	if err != nil {
		fmt.Printf("parse error: %v\n", err)
		fmt.Printf("is ParseError kind: %v\n", core.Is(err, core.ParseError))
	}

	fmt.Println()
}

// main runs all the examples to demonstrate the boolexpr module's
// capabilities.
func main() {
	fmt.Println("boolexpr Module Examples")
	fmt.Println("========================")
	fmt.Println()

	ExampleBasicOperations()
	ExampleParsing()
	ExampleSimplifyAndNNF()
	ExampleCNFAndDNF()
	ExampleCardinality()
	ExampleTseitin()
	ExampleTruthTable()
	ExampleErrorHandling()

	fmt.Println("All examples completed successfully!")
}
