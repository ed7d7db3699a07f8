// Package universe assigns stable, monotonically increasing DIMACS-style
// indices to named variables and interns their literal nodes through a
// shared Arena, grounded on original_source's variable/universe.py.
package universe

import (
	"github.com/xDarkicex/boolexpr/core"
	"github.com/xDarkicex/boolexpr/node"
)

// Universe owns an Arena and the label<->index bijection over it. An index
// is assigned the first time a label is seen and never reused (spec.md §4.1
// "Variable indices").
type Universe struct {
	arena *node.Arena

	labelToIdx map[string]int
	idxToVar   []Variable

	offset int
}

// New creates an empty Universe backed by a fresh arena whose first
// variable is assigned index 1.
func New(opts ...node.Option) *Universe {
	return &Universe{
		arena:      node.NewArena(opts...),
		labelToIdx: make(map[string]int),
		offset:     1,
	}
}

// Arena returns the node arena backing this universe's literals.
func (u *Universe) Arena() *node.Arena { return u.arena }

// Len returns the number of distinct variables registered so far.
func (u *Universe) Len() int { return len(u.idxToVar) }

// GetOrMake returns the Variable for label, registering a new one (and
// interning its literal pair) on first use.
func (u *Universe) GetOrMake(label Identifier) Variable {
	key := label.key()
	if idx, ok := u.labelToIdx[key]; ok {
		return u.idxToVar[idx]
	}

	slot := len(u.idxToVar)
	signedIdx := u.offset + slot
	v := Variable{
		Label:  label,
		Index:  signedIdx,
		posLit: u.arena.MustLit(signedIdx),
		negLit: u.arena.MustLit(-signedIdx),
	}
	u.idxToVar = append(u.idxToVar, v)
	u.labelToIdx[key] = slot
	return v
}

// Var is a convenience wrapper over GetOrMake for a dotted-name-plus-indices
// label, matching original_source's Universe.var.
func (u *Universe) Var(prefix string, indices ...int) Variable {
	return u.GetOrMake(NewIdentifier([]string{prefix}, indices...))
}

// GetNextVar allocates a fresh, never-before-seen variable named
// "<prefix>[n]", where n starts at the current variable count and is
// increased past any label already registered — the idiom callers use to
// introduce Tseitin auxiliary variables (original_source's
// Universe.get_next_var).
func (u *Universe) GetNextVar(prefix string) Variable {
	if prefix == "" {
		prefix = "v"
	}
	for n := u.Len(); ; n++ {
		id := NewIdentifier([]string{prefix}, n)
		if _, taken := u.labelToIdx[id.key()]; !taken {
			return u.GetOrMake(id)
		}
	}
}

// Lookup returns the Variable at the given signed-or-unsigned DIMACS index
// (the unsigned magnitude is used), or an error if idx is out of range.
func (u *Universe) Lookup(idx int) (Variable, error) {
	if idx < 0 {
		idx = -idx
	}
	slot := idx - u.offset
	if slot < 0 || slot >= len(u.idxToVar) {
		return Variable{}, core.New(core.InvalidLiteralIndex, "universe", "Lookup", "index out of range")
	}
	return u.idxToVar[slot], nil
}

// Labels returns every registered label in index order.
func (u *Universe) Labels() []Identifier {
	out := make([]Identifier, len(u.idxToVar))
	for i, v := range u.idxToVar {
		out[i] = v.Label
	}
	return out
}

// Variables returns every registered Variable in index order.
func (u *Universe) Variables() []Variable {
	return append([]Variable(nil), u.idxToVar...)
}
