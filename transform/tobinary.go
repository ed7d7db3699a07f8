package transform

import "github.com/xDarkicex/boolexpr/node"

// ToBinary returns x unchanged; it does not rewrite n-ary operators with
// arity >2 into left-associated trees of binary operators. In this arena,
// such a rewrite collides with the canonical-form invariant: the And/Or/Xor/Eq
// smart constructors flatten any operand that is itself the same kind
// (spec.md §3, "no operator appears as its own direct child"), so pairing
// two canonical n-ary nodes back together through the constructors just
// re-flattens them to the same n-ary node. A hash-consed DAG has no way to
// represent "the same And, but shaped as nested binary pairs" — there is
// only ever one canonical And(x1,...,xn).
//
// ToBinary is therefore the identity on every node already built through
// the arena's constructors (the only way nodes are built). It exists so
// callers migrating code that expects a to_binary step keep a stable call
// site; a consumer that genuinely needs strictly-binary gates (e.g. a
// downstream format without n-ary support) should fold Children() itself
// rather than ask the arena to misrepresent its own canonical form.
func ToBinary(a *node.Arena, x *node.Node) *node.Node {
	return x
}
