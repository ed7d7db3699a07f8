package tseitin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/boolexpr/node"
	"github.com/xDarkicex/boolexpr/transform"
	"github.com/xDarkicex/boolexpr/universe"
)

func newTestUniverse(t *testing.T) *universe.Universe {
	t.Helper()
	return universe.New()
}

func TestEncodeOfAtomIsUnchangedWithNoConstraints(t *testing.T) {
	u := newTestUniverse(t)
	a := u.Arena()
	x := u.Var("a").PosLit()

	topLit, constraints := Encode(a, x, func() *node.Node { return u.GetNextVar("t").PosLit() })
	assert.Same(t, x, topLit)
	assert.Empty(t, constraints)
}

func TestEncodeProducesOneConstraintPerInternalOperator(t *testing.T) {
	u := newTestUniverse(t)
	a := u.Arena()
	x := u.Var("a").PosLit()
	y := u.Var("b").PosLit()
	z := u.Var("c").PosLit()
	expr := a.Or(a.And(x, y), a.And(y, z)) // two And operators + one Or

	topLit, constraints := Encode(a, expr, func() *node.Node { return u.GetNextVar("t").PosLit() })
	require.Len(t, constraints, 3)

	// The top literal must be the auxiliary for the last (root) constraint.
	assert.Same(t, constraints[len(constraints)-1].Aux, topLit)
}

func TestEncodeSharesOneAuxiliaryForADuplicatedSubnode(t *testing.T) {
	u := newTestUniverse(t)
	a := u.Arena()
	x := u.Var("a").PosLit()
	y := u.Var("b").PosLit()
	shared := a.And(x, y)
	expr := a.Or(shared, a.Not(shared))

	_, constraints := Encode(a, expr, func() *node.Node { return u.GetNextVar("t").PosLit() })
	// shared, Not(shared), and the root Or: exactly 3 constraints, not 4,
	// since the shared And subnode must only be encoded once.
	assert.Len(t, constraints, 3)
}

func TestToCNFIsEquisatisfiableWithTheOriginalExpression(t *testing.T) {
	u := newTestUniverse(t)
	a := u.Arena()
	x := u.Var("a").PosLit()
	y := u.Var("b").PosLit()
	z := u.Var("c").PosLit()
	expr := a.Or(a.And(x, y), a.And(y, z))

	topLit, constraints := Encode(a, expr, func() *node.Node { return u.GetNextVar("t").PosLit() })
	cnfExpr := ToCNF(a, topLit, constraints)

	// For every assignment to the original variables, there must exist an
	// assignment to the auxiliary variables making cnfExpr agree with expr.
	auxVars := make([]int, 0, len(constraints))
	for _, c := range constraints {
		idx, _ := c.Aux.VarIndex()
		auxVars = append(auxVars, idx)
	}

	for _, p := range transform.Points([]int{1, 2, 3}) {
		want := transform.Simplify(a, transform.Restrict(a, expr, p)).IsOne()
		got := transform.Existential(a, transform.Restrict(a, cnfExpr, p), auxVars).IsOne()
		assert.Equal(t, want, got, "point %v", p)
	}
}
