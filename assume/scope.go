// Package assume implements the scoped-assumption protocol (spec.md §6,
// §9): literals pushed on entry to a scope and popped on exit, used to
// pre-commit variables before a solve without mutating the expression
// itself.
package assume

import (
	"github.com/xDarkicex/boolexpr/core"
	"github.com/xDarkicex/boolexpr/node"
)

// Scope is an explicit stack of literal frames. Scopes nest: entering
// pushes a new frame, exiting pops the innermost one. Exiting past the
// bottom is a no-op (spec.md §6, "exiting an unknown scope is a no-op").
type Scope struct {
	frames [][]*node.Node
}

// NewScope returns an empty assumption scope.
func NewScope() *Scope {
	return &Scope{}
}

// Enter pushes a new frame containing lits, every one of which must be a
// literal (Var or Comp) — a non-literal fails with InvalidAssumption and
// no frame is pushed.
func (s *Scope) Enter(lits ...*node.Node) error {
	for _, l := range lits {
		if !l.Kind().IsLiteral() {
			return core.New(core.InvalidAssumption, "assume", "Enter", "assumption operand is not a literal")
		}
	}
	frame := append([]*node.Node(nil), lits...)
	s.frames = append(s.frames, frame)
	return nil
}

// Exit pops the innermost frame. A no-op on an empty scope.
func (s *Scope) Exit() {
	if len(s.frames) == 0 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth returns the number of currently nested frames.
func (s *Scope) Depth() int { return len(s.frames) }

// Literals returns every assumed literal across all active frames,
// outermost first.
func (s *Scope) Literals() []*node.Node {
	var out []*node.Node
	for _, frame := range s.frames {
		out = append(out, frame...)
	}
	return out
}

// Term returns the conjunction of every currently assumed literal — the
// term satisfy_one pre-commits before search.
func (s *Scope) Term(a *node.Arena) *node.Node {
	return a.And(s.Literals()...)
}
