package assume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/boolexpr/core"
	"github.com/xDarkicex/boolexpr/node"
)

func TestEnterRejectsNonLiteralOperand(t *testing.T) {
	a := node.NewArena()
	x := a.MustLit(1)
	y := a.MustLit(2)
	s := NewScope()

	err := s.Enter(a.And(x, y))
	require.Error(t, err)
	assert.True(t, core.Is(err, core.InvalidAssumption))
	assert.Equal(t, 0, s.Depth(), "a rejected Enter must not push a frame")
}

func TestEnterExitNestFramesLIFO(t *testing.T) {
	a := node.NewArena()
	x := a.MustLit(1)
	y := a.MustLit(2)
	s := NewScope()

	require.NoError(t, s.Enter(x))
	require.NoError(t, s.Enter(y))
	assert.Equal(t, 2, s.Depth())

	s.Exit()
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, []*node.Node{x}, s.Literals())

	s.Exit()
	assert.Equal(t, 0, s.Depth())
}

func TestExitOnEmptyScopeIsNoOp(t *testing.T) {
	s := NewScope()
	s.Exit()
	assert.Equal(t, 0, s.Depth())
}

func TestLiteralsReturnsOutermostFirstAcrossFrames(t *testing.T) {
	a := node.NewArena()
	x := a.MustLit(1)
	y := a.MustLit(2)
	z := a.MustLit(3)
	s := NewScope()

	require.NoError(t, s.Enter(x, y))
	require.NoError(t, s.Enter(z))

	assert.Equal(t, []*node.Node{x, y, z}, s.Literals())
}

func TestTermConjoinsEveryAssumedLiteral(t *testing.T) {
	a := node.NewArena()
	x := a.MustLit(1)
	y := a.MustLit(2)
	s := NewScope()

	require.NoError(t, s.Enter(x))
	require.NoError(t, s.Enter(y))

	assert.Same(t, a.And(x, y), s.Term(a))
}

func TestTermOfEmptyScopeIsOne(t *testing.T) {
	a := node.NewArena()
	s := NewScope()
	assert.True(t, s.Term(a).IsOne())
}
