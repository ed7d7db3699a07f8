package node

import (
	"testing"

	"pgregory.net/rapid"
)

// genExpr draws a small random expression over vars, bounded by depth, in
// the manner of a recursive rapid generator (spec.md §8's Universal
// invariants, grounded on hashicorp-nomad's pgregory.net/rapid dependency).
func genExpr(t *rapid.T, a *Arena, vars []*Node, depth int) *Node {
	if depth <= 0 {
		return vars[rapid.IntRange(0, len(vars)-1).Draw(t, "leaf")]
	}
	switch rapid.IntRange(0, 5).Draw(t, "kind") {
	case 0:
		return vars[rapid.IntRange(0, len(vars)-1).Draw(t, "leaf")]
	case 1:
		return a.Not(genExpr(t, a, vars, depth-1))
	case 2:
		return a.And(genExpr(t, a, vars, depth-1), genExpr(t, a, vars, depth-1))
	case 3:
		return a.Or(genExpr(t, a, vars, depth-1), genExpr(t, a, vars, depth-1))
	case 4:
		return a.Xor(genExpr(t, a, vars, depth-1), genExpr(t, a, vars, depth-1))
	default:
		return a.Impl(genExpr(t, a, vars, depth-1), genExpr(t, a, vars, depth-1))
	}
}

// rebuild reconstructs n from its own Kind/Children/Data through the same
// arena's smart constructors, the way a caller who built x once would build
// it again from scratch.
func rebuild(a *Arena, n *Node) *Node {
	switch n.Kind() {
	case Zero:
		return a.Zero()
	case One:
		return a.One()
	case Var:
		idx, _ := n.VarIndex()
		return a.MustLit(idx)
	case Comp:
		idx, _ := n.VarIndex()
		return a.Not(a.MustLit(idx))
	case Not:
		return a.Not(rebuild(a, n.Children()[0]))
	case And:
		return a.And(rebuildAll(a, n.Children())...)
	case Or:
		return a.Or(rebuildAll(a, n.Children())...)
	case Xor:
		return a.Xor(rebuildAll(a, n.Children())...)
	case Eq:
		return a.Eq(rebuildAll(a, n.Children())...)
	case Impl:
		kids := n.Children()
		return a.Impl(rebuild(a, kids[0]), rebuild(a, kids[1]))
	case Ite:
		kids := n.Children()
		return a.Ite(rebuild(a, kids[0]), rebuild(a, kids[1]), rebuild(a, kids[2]))
	case AtLeast:
		k, _ := n.Threshold()
		return a.AtLeast(k, rebuildAll(a, n.Children())...)
	default:
		panic("unhandled kind in rebuild")
	}
}

func rebuildAll(a *Arena, kids []*Node) []*Node {
	out := make([]*Node, len(kids))
	for i, k := range kids {
		out[i] = rebuild(a, k)
	}
	return out
}

func TestPropertyStructuralUniqueness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := NewArena()
		vars := make([]*Node, 4)
		for i := range vars {
			vars[i] = a.MustLit(i + 1)
		}
		expr := genExpr(t, a, vars, 3)

		if rebuild(a, expr) != expr {
			t.Fatalf("rebuild(%v) did not yield the identical node", expr)
		}
	})
}

func TestPropertyDoubleNegationIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := NewArena()
		vars := make([]*Node, 3)
		for i := range vars {
			vars[i] = a.MustLit(i + 1)
		}
		expr := genExpr(t, a, vars, 2)

		if a.Not(a.Not(expr)) != expr {
			t.Fatalf("Not(Not(%v)) != %v", expr, expr)
		}
	})
}

func TestPropertySizeIsPositiveAndDepthIsNonNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := NewArena()
		vars := make([]*Node, 3)
		for i := range vars {
			vars[i] = a.MustLit(i + 1)
		}
		expr := genExpr(t, a, vars, 3)

		if expr.Size() < 1 {
			t.Fatalf("Size() = %d, want >= 1", expr.Size())
		}
		if expr.Depth() < 0 {
			t.Fatalf("Depth() = %d, want >= 0", expr.Depth())
		}
	})
}
