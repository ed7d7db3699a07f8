package cardinality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xDarkicex/boolexpr/node"
	"github.com/xDarkicex/boolexpr/transform"
)

func newTestArena(t *testing.T) *node.Arena {
	t.Helper()
	return node.NewArena()
}

// countTrue returns how many of vars are true under p.
func countTrue(p transform.Point, vars []int) int {
	n := 0
	for _, v := range vars {
		if p[v] {
			n++
		}
	}
	return n
}

func assertMatchesThreshold(t *testing.T, a *node.Arena, expr *node.Node, vars []int, k int) {
	t.Helper()
	for _, p := range transform.Points(vars) {
		want := countTrue(p, vars) >= k
		got := transform.Simplify(a, transform.Restrict(a, expr, p)).IsOne()
		assert.Equal(t, want, got, "point %v: want atleast(%d)=%v", p, k, want)
	}
}

func TestAtLeastCNFAndDNFAgreeWithBruteForce(t *testing.T) {
	a := newTestArena(t)
	vars := []int{1, 2, 3, 4}
	xs := make([]*node.Node, len(vars))
	for i, v := range vars {
		xs[i] = a.MustLit(v)
	}

	for k := 0; k <= len(vars)+1; k++ {
		cnf := AtLeast(a, k, xs, true)
		dnf := AtLeast(a, k, xs, false)
		assertMatchesThreshold(t, a, cnf, vars, k)
		assertMatchesThreshold(t, a, dnf, vars, k)
	}
}

func TestLessThanIsComplementOfAtLeast(t *testing.T) {
	a := newTestArena(t)
	vars := []int{1, 2, 3}
	xs := make([]*node.Node, len(vars))
	for i, v := range vars {
		xs[i] = a.MustLit(v)
	}

	for k := 0; k <= len(vars)+1; k++ {
		lt := LessThan(a, k, xs, true)
		for _, p := range transform.Points(vars) {
			want := countTrue(p, vars) < k
			got := transform.Simplify(a, transform.Restrict(a, lt, p)).IsOne()
			assert.Equal(t, want, got)
		}
	}
}

func TestExactlyMatchesEqualityOnCount(t *testing.T) {
	a := newTestArena(t)
	vars := []int{1, 2, 3}
	xs := make([]*node.Node, len(vars))
	for i, v := range vars {
		xs[i] = a.MustLit(v)
	}

	for k := 0; k <= len(vars); k++ {
		exactly := Exactly(a, k, xs, true)
		for _, p := range transform.Points(vars) {
			want := countTrue(p, vars) == k
			got := transform.Simplify(a, transform.Restrict(a, exactly, p)).IsOne()
			assert.Equal(t, want, got)
		}
	}
}

func TestCombinationsCountMatchesBinomial(t *testing.T) {
	a := newTestArena(t)
	xs := []*node.Node{a.MustLit(1), a.MustLit(2), a.MustLit(3), a.MustLit(4)}

	combos := combinations(xs, 2)
	assert.Equal(t, binomial(4, 2), len(combos))

	for _, c := range combos {
		assert.Len(t, c, 2)
	}
}

func TestCombinationsEdgeCases(t *testing.T) {
	a := newTestArena(t)
	xs := []*node.Node{a.MustLit(1), a.MustLit(2)}

	assert.Equal(t, [][]*node.Node{{}}, combinations(xs, 0))
	assert.Nil(t, combinations(xs, 3))
}

func TestSizeEdgeCases(t *testing.T) {
	assert.Equal(t, 1, Size(4, 0, true))
	assert.Equal(t, 1, Size(4, 5, true))
	assert.Equal(t, 5, Size(4, 1, true))
	assert.Equal(t, 5, Size(4, 4, true))
}

func TestAtLeastCNFClauseCountMatchesCombinationCount(t *testing.T) {
	a := newTestArena(t)
	xs := []*node.Node{a.MustLit(1), a.MustLit(2), a.MustLit(3), a.MustLit(4)}

	cnf := AtLeast(a, 2, xs, true)
	// r = n-k+1 = 3, so C(4,3) = 4 clauses at the top-level And.
	assert.Equal(t, binomial(4, 3), len(cnf.Children()))
}

func TestExpandIsNoOpWithoutSharedVariables(t *testing.T) {
	a := newTestArena(t)
	x := a.MustLit(1)
	y := a.MustLit(2)

	direct := AtLeast(a, 1, []*node.Node{x, y}, true)
	expanded := Expand(a, 1, AtLeast, []*node.Node{x, y}, true)
	assert.Equal(t, direct, expanded)
}

func TestExpandFactorsSharedVariablesWithoutChangingSemantics(t *testing.T) {
	a := newTestArena(t)
	x := a.MustLit(1)
	y := a.MustLit(2)

	// x occurs in two operands, forcing Expand's shared-variable factoring
	// path.
	xs := []*node.Node{x, y, x}
	k := 2

	direct := AtLeast(a, k, xs, true)
	expanded := Expand(a, k, AtLeast, xs, true)

	for _, p := range transform.Points([]int{1, 2}) {
		want := transform.Simplify(a, transform.Restrict(a, direct, p)).IsOne()
		got := transform.Simplify(a, transform.Restrict(a, expanded, p)).IsOne()
		assert.Equal(t, want, got, "point %v: Expand must preserve AtLeast's semantics", p)
	}
}
