package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/boolexpr/core"
	"github.com/xDarkicex/boolexpr/node"
	"github.com/xDarkicex/boolexpr/universe"
)

func mustParse(t *testing.T, u *universe.Universe, expr string) *node.Node {
	t.Helper()
	n, err := New(u).Parse(expr)
	require.NoError(t, err, "expr: %s", expr)
	return n
}

func TestParsePrecedenceChain(t *testing.T) {
	u := universe.New()
	a := u.Arena()
	x := u.Var("a").PosLit()
	y := u.Var("b").PosLit()
	z := u.Var("c").PosLit()

	assert.Same(t, a.And(x, y), mustParse(t, u, "a & b"))
	assert.Same(t, a.Or(x, y), mustParse(t, u, "a | b"))
	assert.Same(t, a.Xor(x, y), mustParse(t, u, "a ^ b"))
	assert.Same(t, a.Xor(x, y), mustParse(t, u, "a <+> b"))
	assert.Same(t, a.Eq(x, y), mustParse(t, u, "a = b"))
	assert.Same(t, a.Eq(x, y), mustParse(t, u, "a <-> b"))
	assert.Same(t, a.Impl(x, y), mustParse(t, u, "a -> b"))
	assert.Same(t, a.Not(x), mustParse(t, u, "~a"))
	assert.Same(t, a.Not(x), mustParse(t, u, "¬a"))

	// & binds tighter than |
	assert.Same(t, a.Or(x, a.And(y, z)), mustParse(t, u, "a | b & c"))
	// | binds tighter than ^
	assert.Same(t, a.Xor(x, a.Or(y, z)), mustParse(t, u, "a ^ b | c"))
}

func TestParseImpliesIsRightAssociative(t *testing.T) {
	u := universe.New()
	a := u.Arena()
	x := u.Var("a").PosLit()
	y := u.Var("b").PosLit()
	z := u.Var("c").PosLit()

	assert.Same(t, a.Impl(x, a.Impl(y, z)), mustParse(t, u, "a -> b -> c"))
}

func TestParseNaryOperatorsFoldFlatChains(t *testing.T) {
	u := universe.New()
	a := u.Arena()
	x := u.Var("a").PosLit()
	y := u.Var("b").PosLit()
	z := u.Var("c").PosLit()

	assert.Same(t, a.And(x, y, z), mustParse(t, u, "a & b & c"))
}

func TestParseTernary(t *testing.T) {
	u := universe.New()
	a := u.Arena()
	x := u.Var("a").PosLit()
	y := u.Var("b").PosLit()
	z := u.Var("c").PosLit()

	assert.Same(t, a.Ite(x, y, z), mustParse(t, u, "a ? b : c"))
}

func TestParseConstants(t *testing.T) {
	u := universe.New()
	a := u.Arena()

	assert.Same(t, a.One(), mustParse(t, u, "1"))
	assert.Same(t, a.Zero(), mustParse(t, u, "0"))
}

func TestParseDottedBracketedIdentifier(t *testing.T) {
	u := universe.New()

	n := mustParse(t, u, "sensor.alarm[1,2]")
	idx, ok := n.VarIndex()
	require.True(t, ok)

	v, err := u.Lookup(idx)
	require.NoError(t, err)
	assert.Equal(t, "sensor.alarm[1,2]", v.Label.String())
}

func TestParseIsIdempotentOnRepeatedIdentifier(t *testing.T) {
	u := universe.New()
	first := mustParse(t, u, "sensor.alarm[0]")
	second := mustParse(t, u, "sensor.alarm[0]")
	assert.Same(t, first, second)
}

func TestParseRejectsUnexpectedTrailingInput(t *testing.T) {
	u := universe.New()
	_, err := New(u).Parse("a & b )")
	require.Error(t, err)
	assert.True(t, core.Is(err, core.ParseError))
}

func TestParseRejectsIncompleteExpression(t *testing.T) {
	u := universe.New()
	_, err := New(u).Parse("a &")
	require.Error(t, err)
	assert.True(t, core.Is(err, core.ParseError))
}

func TestParseRejectsUnbalancedParens(t *testing.T) {
	u := universe.New()
	_, err := New(u).Parse("(a & b")
	require.Error(t, err)
	assert.True(t, core.Is(err, core.ParseError))
}

func TestParseRejectsMissingTernaryColon(t *testing.T) {
	u := universe.New()
	_, err := New(u).Parse("a ? b")
	require.Error(t, err)
}
