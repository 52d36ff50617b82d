package lang

import "log/slog"

// Parse parses the tokens of one statement:
//
//	statement → "let" Identifier "=" expr
//	          | Identifier "=" expr
//	          | "include" Identifier
//	expr      → HexColor | Int | Identifier
//	          | Identifier "(" ( expr ( "," expr )* )? ")"
//
// Every token must be consumed.
func Parse(tokens []Token) (Stmt, error) {
	p := &parser{tokens: tokens}

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if !p.eof() {
		return nil, p.unexpected("end of statement")
	}

	return stmt, nil
}

// parser holds the parser state.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) parseStatement() (Stmt, error) {
	switch {
	case p.peek(TokenLet):
		p.advance()

		return p.parseLet(false)

	case p.peek(TokenInclude):
		p.advance()

		tok, err := p.expect(TokenIdentifier)
		if err != nil {
			return nil, err
		}

		return &IncludeStmt{Path: tok.Text}, nil

	case p.peek(TokenIdentifier) && p.peekAt(1, TokenAssign):
		return p.parseLet(true)

	default:
		return nil, p.unexpected("statement")
	}
}

// parseLet parses: Identifier '=' expr.
func (p *parser) parseLet(short bool) (Stmt, error) {
	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenAssign); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &LetStmt{Name: name.Text, Value: value, Short: short}, nil
}

func (p *parser) parseExpr() (Expr, error) {
	if p.eof() {
		return nil, p.unexpected("expression")
	}

	tok := p.advance()

	switch tok.Kind {
	case TokenHexColor:
		return &ColorLit{Value: tok.Color}, nil

	case TokenInt:
		return &IntLit{Value: tok.Int}, nil

	case TokenIdentifier:
		if !p.peek(TokenLeftParen) {
			return &Ident{Name: tok.Text}, nil
		}

		p.advance()

		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}

		return &Call{Name: tok.Text, Args: args}, nil

	default:
		p.pos--

		return nil, p.unexpected("expression")
	}
}

// parseArgs parses the arguments of a call after its '('.
func (p *parser) parseArgs() ([]Expr, error) {
	args := []Expr{}

	if p.peek(TokenRightParen) {
		p.advance()

		return args, nil
	}

	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		switch {
		case p.peek(TokenComma):
			p.advance()

		case p.peek(TokenRightParen):
			p.advance()

			return args, nil

		default:
			return nil, p.unexpected("',' or ')'")
		}
	}
}

func (p *parser) eof() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek(kind Kind) bool { return p.peekAt(0, kind) }

func (p *parser) peekAt(n int, kind Kind) bool {
	return p.pos+n < len(p.tokens) && p.tokens[p.pos+n].Kind == kind
}

func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	p.pos++

	return tok
}

func (p *parser) expect(kind Kind) (Token, error) {
	if !p.peek(kind) {
		return Token{}, p.unexpected(kind.String())
	}

	return p.advance(), nil
}

// unexpected reports the token at the current position.
func (p *parser) unexpected(expected string) *Error {
	if p.eof() {
		return ErrSyntax.With(
			slog.String("expected", expected),
			slog.String("found", "end of statement"),
		)
	}

	tok := p.tokens[p.pos]

	return ErrSyntax.With(
		slog.String("expected", expected),
		slog.String("found", tok.String()),
		slog.Int("offset", tok.Pos),
	)
}
