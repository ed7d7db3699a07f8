// Package parser implements the surface grammar of spec.md §6: a
// recursive-descent parser producing DAG nodes via a Universe's smart
// constructors, grounded on classical/parser.go's hand-written descent
// style and extended for dotted/bracketed identifiers and the ternary
// if-then-else form.
package parser

import (
	"strconv"

	"github.com/xDarkicex/boolexpr/core"
	"github.com/xDarkicex/boolexpr/node"
	"github.com/xDarkicex/boolexpr/universe"
)

// Parser parses one expression string against a Universe, resolving
// identifiers on demand (spec.md §9: "unknown identifiers are created on
// demand in the universe").
type Parser struct {
	universe *universe.Universe
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// New creates a Parser that resolves identifiers through u.
func New(u *universe.Universe, opts ...Option) *Parser {
	p := &Parser{universe: u}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses expr and returns the resulting DAG node.
func (p *Parser) Parse(expr string) (*node.Node, error) {
	tokens := NewLexer(expr).Lex()
	ps := &parseState{tokens: tokens}

	tree, err := ps.parseTernary()
	if err != nil {
		return nil, err
	}
	if ps.peek().Type != TokenEOF {
		return nil, parseErrorAt(ps.peek(), "unexpected trailing input")
	}
	return p.resolve(tree)
}

func (p *Parser) resolve(t *ast) (*node.Node, error) {
	switch t.kind {
	case astConst:
		if t.value {
			return p.universe.Arena().One(), nil
		}
		return p.universe.Arena().Zero(), nil

	case astIdent:
		v := p.universe.GetOrMake(t.ident)
		return v.PosLit(), nil

	case astNot:
		c, err := p.resolve(t.kids[0])
		if err != nil {
			return nil, err
		}
		return p.universe.Arena().Not(c), nil

	case astAnd, astOr, astXor, astEquiv:
		kids := make([]*node.Node, len(t.kids))
		for i, k := range t.kids {
			c, err := p.resolve(k)
			if err != nil {
				return nil, err
			}
			kids[i] = c
		}
		a := p.universe.Arena()
		switch t.kind {
		case astAnd:
			return a.And(kids...), nil
		case astOr:
			return a.Or(kids...), nil
		case astXor:
			return a.Xor(kids...), nil
		default:
			return a.Eq(kids...), nil
		}

	case astImplies:
		lhs, err := p.resolve(t.kids[0])
		if err != nil {
			return nil, err
		}
		rhs, err := p.resolve(t.kids[1])
		if err != nil {
			return nil, err
		}
		return p.universe.Arena().Impl(lhs, rhs), nil

	case astIte:
		s, err := p.resolve(t.kids[0])
		if err != nil {
			return nil, err
		}
		d1, err := p.resolve(t.kids[1])
		if err != nil {
			return nil, err
		}
		d0, err := p.resolve(t.kids[2])
		if err != nil {
			return nil, err
		}
		return p.universe.Arena().Ite(s, d1, d0), nil

	default:
		return nil, core.New(core.ParseError, "parser", "resolve", "unreachable ast kind")
	}
}

// parseState walks the token stream with one token of lookahead.
type parseState struct {
	tokens []Token
	pos    int
}

func (ps *parseState) peek() Token {
	if ps.pos >= len(ps.tokens) {
		return Token{Type: TokenEOF}
	}
	return ps.tokens[ps.pos]
}

func (ps *parseState) advance() Token {
	t := ps.peek()
	if ps.pos < len(ps.tokens) {
		ps.pos++
	}
	return t
}

func (ps *parseState) expect(tt TokenType) (Token, error) {
	t := ps.peek()
	if t.Type != tt {
		return t, parseErrorAt(t, "expected "+tt.String())
	}
	return ps.advance(), nil
}

func parseErrorAt(t Token, msg string) error {
	return core.New(core.ParseError, "parser", "parse", msg+" at position "+strconv.Itoa(t.Position))
}

// Precedence, loosest to tightest:
// ternary  s ? d1 : d0
// implies  ->
// equiv    <-> / =
// xor      <+> / ^
// or       |
// and      &
// unary    ~ / ¬
// atom     0 / 1 / ident / ( expr )

func (ps *parseState) parseTernary() (*ast, error) {
	cond, err := ps.parseImplies()
	if err != nil {
		return nil, err
	}
	if ps.peek().Type != TokenQuestion {
		return cond, nil
	}
	ps.advance()
	d1, err := ps.parseTernary()
	if err != nil {
		return nil, err
	}
	if _, err := ps.expect(TokenColon); err != nil {
		return nil, err
	}
	d0, err := ps.parseTernary()
	if err != nil {
		return nil, err
	}
	return &ast{kind: astIte, kids: []*ast{cond, d1, d0}}, nil
}

func (ps *parseState) parseImplies() (*ast, error) {
	lhs, err := ps.parseEquiv()
	if err != nil {
		return nil, err
	}
	if ps.peek().Type != TokenImplies {
		return lhs, nil
	}
	ps.advance()
	rhs, err := ps.parseImplies()
	if err != nil {
		return nil, err
	}
	return &ast{kind: astImplies, kids: []*ast{lhs, rhs}}, nil
}

func (ps *parseState) parseEquiv() (*ast, error) {
	return ps.parseNaryLevel(astEquiv, TokenEquiv, ps.parseXor)
}

func (ps *parseState) parseXor() (*ast, error) {
	return ps.parseNaryLevel(astXor, TokenXor, ps.parseOr)
}

func (ps *parseState) parseOr() (*ast, error) {
	return ps.parseNaryLevel(astOr, TokenOr, ps.parseAnd)
}

func (ps *parseState) parseAnd() (*ast, error) {
	return ps.parseNaryLevel(astAnd, TokenAnd, ps.parseUnary)
}

// parseNaryLevel parses a left-associative chain `next (OP next)*` and
// folds it into a flat n-ary ast node when more than one operand appears.
func (ps *parseState) parseNaryLevel(kind astKind, op TokenType, next func() (*ast, error)) (*ast, error) {
	first, err := next()
	if err != nil {
		return nil, err
	}
	kids := []*ast{first}
	for ps.peek().Type == op {
		ps.advance()
		rhs, err := next()
		if err != nil {
			return nil, err
		}
		kids = append(kids, rhs)
	}
	if len(kids) == 1 {
		return kids[0], nil
	}
	return &ast{kind: kind, kids: kids}, nil
}

func (ps *parseState) parseUnary() (*ast, error) {
	if ps.peek().Type == TokenNot {
		ps.advance()
		operand, err := ps.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast{kind: astNot, kids: []*ast{operand}}, nil
	}
	return ps.parseAtom()
}

func (ps *parseState) parseAtom() (*ast, error) {
	t := ps.peek()
	switch t.Type {
	case TokenConstant:
		ps.advance()
		return &ast{kind: astConst, value: t.Value == "1"}, nil

	case TokenLParen:
		ps.advance()
		inner, err := ps.parseTernary()
		if err != nil {
			return nil, err
		}
		if _, err := ps.expect(TokenRParen); err != nil {
			return nil, err
		}
		return inner, nil

	case TokenIdent:
		return ps.parseIdentifier()

	default:
		return nil, parseErrorAt(t, "expected an expression")
	}
}

// parseIdentifier parses a dotted, optionally bracket-indexed identifier:
// name ('.' name)* ('[' int (',' int)* ']')?
func (ps *parseState) parseIdentifier() (*ast, error) {
	first, err := ps.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	names := []string{first.Value}
	for ps.peek().Type == TokenDot {
		ps.advance()
		part, err := ps.expect(TokenIdent)
		if err != nil {
			return nil, err
		}
		names = append(names, part.Value)
	}

	var indices []int
	if ps.peek().Type == TokenLBracket {
		ps.advance()
		for {
			// The lexer reads a lone 0 or 1 as a Constant token.
			idxTok := ps.advance()
			if idxTok.Type != TokenIdent && idxTok.Type != TokenConstant {
				return nil, parseErrorAt(idxTok, "expected an integer index")
			}
			n, convErr := strconv.Atoi(idxTok.Value)
			if convErr != nil {
				return nil, parseErrorAt(idxTok, "expected an integer index")
			}
			indices = append(indices, n)
			if ps.peek().Type == TokenComma {
				ps.advance()
				continue
			}
			break
		}
		if _, err := ps.expect(TokenRBracket); err != nil {
			return nil, err
		}
	}

	// identifier names were scanned outermost-first; universe.Identifier
	// stores them innermost-first (see Identifier.String()'s reversal).
	reversed := make([]string, len(names))
	for i, n := range names {
		reversed[len(names)-1-i] = n
	}
	return &ast{kind: astIdent, ident: universe.NewIdentifier(reversed, indices...)}, nil
}
