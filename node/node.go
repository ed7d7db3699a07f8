package node

import (
	"sort"

	"github.com/hashicorp/go-set/v3"
)

// Node is an immutable expression DAG node. Two structurally identical nodes
// in the same Arena share one Node (hash-consing), so pointer equality
// implies semantic equality (spec.md §3, "Structural uniqueness").
//
// Do not construct Node directly; use Arena's builders.
type Node struct {
	kind Kind
	id   int32
	data int64   // variable index for Var/Comp, k for AtLeast, unused otherwise
	kids []*Node // canonical child tuple; empty for atoms

	depth int32 // memoized at construction
}

// Kind returns the node's variant tag.
func (n *Node) Kind() Kind { return n.kind }

// ID returns the node's arena-local identifier, assigned in creation order.
// IDs are stable for the arena's lifetime and are the canonical sort key for
// n-ary operand ordering (spec.md §9, "Universal sorting convention").
func (n *Node) ID() int32 { return n.id }

// Data returns the opaque data slot: a signed variable index for Var/Comp
// (positive for Var, negative for Comp), the cardinality threshold k for
// AtLeast, and zero for every other kind.
func (n *Node) Data() int64 { return n.data }

// Children returns the node's operands in canonical order. Callers must not
// mutate the returned slice.
func (n *Node) Children() []*Node { return n.kids }

// Depth is 0 for an atom, 1+max(child depth) for an operator.
func (n *Node) Depth() int { return int(n.depth) }

// Size is the count of distinct nodes reachable from n, including n itself
// (DAG-aware size, not tree size): a subgraph reached through more than one
// path — routine under hash-consing — is counted once, not once per path.
func (n *Node) Size() int {
	count := 0
	n.DFS(func(*Node) bool {
		count++
		return true
	})
	return count
}

// IsZero reports whether n is the constant false.
func (n *Node) IsZero() bool { return n.kind == Zero }

// IsOne reports whether n is the constant true.
func (n *Node) IsOne() bool { return n.kind == One }

// IsConstant reports whether n is Zero or One.
func (n *Node) IsConstant() bool { return n.kind == Zero || n.kind == One }

// VarIndex returns the unsigned variable index of a Var or Comp node, and
// false for any other kind.
func (n *Node) VarIndex() (int, bool) {
	switch n.kind {
	case Var:
		return int(n.data), true
	case Comp:
		return int(-n.data), true
	default:
		return 0, false
	}
}

// Threshold returns the cardinality threshold k of an AtLeast node, and
// false for any other kind.
func (n *Node) Threshold() (int, bool) {
	if n.kind != AtLeast {
		return 0, false
	}
	return int(n.data), true
}

// DFS returns an iterator-style callback walk over every *distinct* subnode
// reachable from n, each visited exactly once (the DAG property), in
// postorder (children before parents) matching the teacher's DFS iterator
// convention. Returning false from visit stops the walk early.
func (n *Node) DFS(visit func(*Node) bool) {
	seen := make(map[int32]bool)
	var walk func(*Node) bool
	walk = func(cur *Node) bool {
		if seen[cur.id] {
			return true
		}
		seen[cur.id] = true
		for _, k := range cur.kids {
			if !walk(k) {
				return false
			}
		}
		return visit(cur)
	}
	walk(n)
}

// Support returns the set of variable indices (always positive) of n's
// literal descendants.
func (n *Node) Support() *set.Set[int] {
	s := set.New[int](8)
	n.DFS(func(cur *Node) bool {
		if idx, ok := cur.VarIndex(); ok {
			s.Insert(idx)
		}
		return true
	})
	return s
}

// SupportSorted returns Support() as a slice sorted in ascending order, the
// order in which encode_inputs assigns compact DIMACS indices.
func (n *Node) SupportSorted() []int {
	out := n.Support().Slice()
	sort.Ints(out)
	return out
}
