package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/boolexpr/core"
)

func TestIdentifierStringReversesNamesAndAppendsIndices(t *testing.T) {
	id := NewIdentifier([]string{"alarm", "sensor"})
	assert.Equal(t, "sensor.alarm", id.String())

	withIdx := NewIdentifier([]string{"alarm", "sensor"}, 0, 3)
	assert.Equal(t, "sensor.alarm[0,3]", withIdx.String())

	bare := NewIdentifier([]string{"x"})
	assert.Equal(t, "x", bare.String())
}

func TestGetOrMakeAssignsMonotonicIndicesStartingAtOne(t *testing.T) {
	u := New()
	a := u.Var("a")
	b := u.Var("b")

	assert.Equal(t, 1, a.Index)
	assert.Equal(t, 2, b.Index)
	assert.Equal(t, 2, u.Len())
}

func TestGetOrMakeIsIdempotentByLabel(t *testing.T) {
	u := New()
	first := u.Var("sensor", 1)
	second := u.Var("sensor", 1)

	assert.Equal(t, first.Index, second.Index)
	assert.Same(t, first.PosLit(), second.PosLit())
	assert.Equal(t, 1, u.Len(), "re-requesting the same label must not register a new variable")
}

func TestVariableLitReturnsMatchingPolarity(t *testing.T) {
	u := New()
	v := u.Var("a")

	assert.Same(t, v.PosLit(), v.Lit(true))
	assert.Same(t, v.NegLit(), v.Lit(false))
	assert.NotSame(t, v.PosLit(), v.NegLit())
}

func TestLookupResolvesSignedAndUnsignedIndices(t *testing.T) {
	u := New()
	v := u.Var("a")

	byPos, err := u.Lookup(v.Index)
	require.NoError(t, err)
	assert.Equal(t, v.Label, byPos.Label)

	byNeg, err := u.Lookup(-v.Index)
	require.NoError(t, err)
	assert.Equal(t, v.Label, byNeg.Label)
}

func TestLookupOutOfRangeReturnsInvalidLiteralIndex(t *testing.T) {
	u := New()
	u.Var("a")

	_, err := u.Lookup(99)
	require.Error(t, err)
	assert.True(t, core.Is(err, core.InvalidLiteralIndex))
}

func TestGetNextVarNeverCollidesWithExistingLabels(t *testing.T) {
	u := New()
	u.Var("t", 0)

	fresh := u.GetNextVar("t")
	assert.NotEqual(t, u.Var("t", 0).Index, fresh.Index)

	again := u.GetNextVar("t")
	assert.NotEqual(t, fresh.Index, again.Index)
}

func TestLabelsAndVariablesPreserveIndexOrder(t *testing.T) {
	u := New()
	u.Var("c")
	u.Var("a")
	u.Var("b")

	labels := u.Labels()
	require.Len(t, labels, 3)
	assert.Equal(t, "c", labels[0].String())
	assert.Equal(t, "a", labels[1].String())
	assert.Equal(t, "b", labels[2].String())

	vars := u.Variables()
	require.Len(t, vars, 3)
	assert.Equal(t, labels[0], vars[0].Label)
}
