package universe

import "github.com/xDarkicex/boolexpr/node"

// Variable pairs an Identifier with its monotonic index and the two literal
// nodes (negative, positive) that denote it, grounded on original_source's
// variable/variable.py.
type Variable struct {
	Label Identifier
	Index int

	negLit *node.Node
	posLit *node.Node
}

// PosLit returns the Var(idx) literal node.
func (v Variable) PosLit() *node.Node { return v.posLit }

// NegLit returns the Comp(idx) literal node.
func (v Variable) NegLit() *node.Node { return v.negLit }

// Lit returns the literal node for the given polarity (true → PosLit).
func (v Variable) Lit(polarity bool) *node.Node {
	if polarity {
		return v.posLit
	}
	return v.negLit
}

func (v Variable) String() string { return v.Label.String() }
