package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/boolexpr/core"
)

func newTestArena(t *testing.T) *Arena {
	t.Helper()
	return NewArena()
}

func TestLitRejectsZeroIndex(t *testing.T) {
	a := newTestArena(t)
	_, err := a.Lit(0)
	require.Error(t, err)
	assert.True(t, core.Is(err, core.InvalidLiteralIndex))
}

func TestNotConstantsAndDoubleNegation(t *testing.T) {
	a := newTestArena(t)
	v := a.MustLit(1)

	assert.True(t, a.Not(a.One()).IsZero())
	assert.True(t, a.Not(a.Zero()).IsOne())
	assert.Same(t, v, a.Not(a.Not(v)))

	comp := a.Not(v)
	assert.Equal(t, Comp, comp.Kind())
	assert.Same(t, v, a.Not(comp))
}

func TestAndOrIdentityAndAbsorption(t *testing.T) {
	a := newTestArena(t)
	x := a.MustLit(1)
	y := a.MustLit(2)

	assert.Same(t, x, a.And(x, a.One()))
	assert.True(t, a.And(x, a.Zero()).IsZero())
	assert.True(t, a.And(x, a.Not(x)).IsZero())

	assert.Same(t, x, a.Or(x, a.Zero()))
	assert.True(t, a.Or(x, a.One()).IsOne())
	assert.True(t, a.Or(x, a.Not(x)).IsOne())

	// commutativity: order shouldn't matter post-canonicalization
	assert.Same(t, a.And(x, y), a.And(y, x))
	assert.Same(t, a.Or(x, y), a.Or(y, x))
}

func TestAndFlattensAndDedups(t *testing.T) {
	a := newTestArena(t)
	x := a.MustLit(1)
	y := a.MustLit(2)
	z := a.MustLit(3)

	nested := a.And(a.And(x, y), z)
	flat := a.And(x, y, z)
	assert.Same(t, flat, nested)

	dup := a.And(x, x, y)
	assert.Same(t, a.And(x, y), dup)
}

func TestXorParityAndConstants(t *testing.T) {
	a := newTestArena(t)
	x := a.MustLit(1)
	y := a.MustLit(2)

	assert.Same(t, x, a.Xor(x, a.Zero()))
	assert.Equal(t, a.Not(x), a.Xor(x, a.One()))
	assert.True(t, a.Xor(x, x).IsZero())

	// odd number of the same operand collapses like one copy
	assert.Same(t, x, a.Xor(x, x, x))

	// order independence
	assert.Same(t, a.Xor(x, y), a.Xor(y, x))
}

func TestEqTwoOperandsIsNotXor(t *testing.T) {
	a := newTestArena(t)
	x := a.MustLit(1)
	y := a.MustLit(2)

	eq := a.Eq(x, y)
	assert.Equal(t, a.Not(a.Xor(x, y)), eq)

	// constant operand forces an And/Nor of the rest
	assert.Same(t, x, a.Eq(x, a.One()))
	assert.Equal(t, a.Not(x), a.Eq(x, a.Zero()))
}

func TestImplTruthTable(t *testing.T) {
	a := newTestArena(t)
	x := a.MustLit(1)
	y := a.MustLit(2)

	assert.True(t, a.Impl(a.Zero(), y).IsOne())
	assert.True(t, a.Impl(x, a.One()).IsOne())
	assert.Same(t, a.Not(x), a.Impl(x, a.Zero()))
	assert.Same(t, y, a.Impl(a.One(), y))
}

func TestIteSelectorPolarityNormalizesToVar(t *testing.T) {
	a := newTestArena(t)
	s := a.MustLit(1)
	d1 := a.MustLit(2)
	d0 := a.MustLit(3)

	viaVar := a.Ite(s, d1, d0)
	viaComp := a.Ite(a.Not(s), d0, d1)
	assert.Same(t, viaVar, viaComp)
}

func TestIteConstantSelector(t *testing.T) {
	a := newTestArena(t)
	d1 := a.MustLit(1)
	d0 := a.MustLit(2)

	assert.Same(t, d1, a.Ite(a.One(), d1, d0))
	assert.Same(t, d0, a.Ite(a.Zero(), d1, d0))
	assert.Same(t, d1, a.Ite(d1, a.One(), a.Zero()))
}

func TestAtLeastEdgeCases(t *testing.T) {
	a := newTestArena(t)
	x := a.MustLit(1)
	y := a.MustLit(2)
	z := a.MustLit(3)

	assert.True(t, a.AtLeast(0, x, y, z).IsOne())
	assert.True(t, a.AtLeast(-1, x, y, z).IsOne())
	assert.True(t, a.AtLeast(4, x, y, z).IsZero())
	assert.Same(t, a.Or(x, y, z), a.AtLeast(1, x, y, z))
	assert.Same(t, a.And(x, y, z), a.AtLeast(3, x, y, z))
}

func TestAtLeastAbsorbsConstantOperands(t *testing.T) {
	a := newTestArena(t)
	x := a.MustLit(1)
	y := a.MustLit(2)

	// One operand already satisfies one unit of k.
	withOne := a.AtLeast(2, x, y, a.One())
	assert.Same(t, a.Or(x, y), withOne)

	withZero := a.AtLeast(1, x, y, a.Zero())
	assert.Same(t, a.Or(x, y), withZero)
}

func TestHashConsingStructuralUniqueness(t *testing.T) {
	a := newTestArena(t)
	x := a.MustLit(1)
	y := a.MustLit(2)

	n1 := a.And(x, y)
	n2 := a.And(x, y)
	assert.Same(t, n1, n2, "structurally identical nodes must share one pointer")
	assert.Equal(t, n1.ID(), n2.ID())
}
