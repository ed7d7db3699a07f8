package parser

import "github.com/xDarkicex/boolexpr/universe"

type astKind int8

const (
	astConst astKind = iota
	astIdent
	astNot
	astAnd
	astOr
	astXor
	astEquiv
	astImplies
	astIte
)

// ast is the parse tree's node, built before any identifier is resolved
// through a universe — per spec.md §9's Open Question resolution,
// identifier resolution happens during tree transformation, not parsing.
type ast struct {
	kind  astKind
	value bool // for astConst

	ident universe.Identifier // for astIdent

	kids []*ast
}
