package algebra

import "strconv"

// Resolver returns the value of line reference #n, or an error when the line
// has no usable result.
type Resolver func(n int) (Expr, error)

// Parser holds the state for parsing a token stream.
type Parser struct {
	tokens  []Token
	pos     int
	resolve Resolver
}

// Statement is a parsed line: Left = Right. HasEquals is false for a plain
// expression, in which case Right is Number(0).
type Statement struct {
	Left, Right Expr
	HasEquals   bool
}

// ParseStatement parses a token slice into a statement. The grammar is
//
//	statement  = expression [ "=" expression ]
//	expression = term { ("+" | "-") term }
//	term       = power { ("*" | "/") power }
//	power      = factor { "^" factor }
//	factor     = ( "-" factor | primary ) [ factor-starting-with-variable-or-"(" ]
//	primary    = number | variable | "#" number | "(" expression ")"
//
// resolve may be nil, in which case any #N reference is an error.
func ParseStatement(tokens []Token, resolve Resolver) (Statement, error) {
	p := &Parser{tokens: tokens, resolve: resolve}

	left, err := p.parseExpression()
	if err != nil {
		return Statement{}, err
	}
	stmt := Statement{Left: left, Right: integer(0)}

	if p.peek().Type == TOKEN_EQUALS {
		p.advance() // consume '='
		right, err := p.parseExpression()
		if err != nil {
			return Statement{}, err
		}
		stmt.Right = right
		stmt.HasEquals = true
	}

	if p.peek().Type != TOKEN_EOF {
		return Statement{}, syntaxError("unexpected token: " + p.peek().Literal)
	}
	return stmt, nil
}

// Parse parses a token slice holding a single expression without "=".
func Parse(tokens []Token) (Expr, error) {
	stmt, err := ParseStatement(tokens, nil)
	if err != nil {
		return nil, err
	}
	if stmt.HasEquals {
		return nil, syntaxError("unexpected token: =")
	}
	return stmt.Left, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TOKEN_EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// parseExpression: term ( ("+" | "-") term )*
func (p *Parser) parseExpression() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TOKEN_PLUS || p.peek().Type == TOKEN_MINUS {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op.Type == TOKEN_MINUS {
			right = negate(right)
		}
		left = &Add{Left: left, Right: right}
	}

	return left, nil
}

// parseTerm: power ( ("*" | "/") power )*
func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TOKEN_STAR || p.peek().Type == TOKEN_SLASH {
		op := p.advance()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		if op.Type == TOKEN_STAR {
			left = &Multiply{Left: left, Right: right}
		} else {
			left = &Divide{Left: left, Right: right}
		}
	}

	return left, nil
}

// parsePower: factor ( "^" factor )*, left-associative.
func (p *Parser) parsePower() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TOKEN_CARET {
		p.advance() // consume '^'
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &Power{Left: left, Right: right}
	}

	return left, nil
}

// parseFactor: ( "-" factor | primary ) [ factor ]
// A variable or "(" directly after a factor multiplies it, binding tighter
// than "^" and "/": 2x^2 is (2x)^2 and 1/2x is 1/(2x).
func (p *Parser) parseFactor() (Expr, error) {
	if p.peek().Type == TOKEN_MINUS {
		p.advance() // consume '-'
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return negate(operand), nil
	}

	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if t := p.peek().Type; t == TOKEN_VARIABLE || t == TOKEN_LPAREN {
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &Multiply{Left: left, Right: right}
	}
	return left, nil
}

// parsePrimary: number | variable | "#" number | "(" expression ")"
func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.peek()

	switch tok.Type {
	case TOKEN_NUMBER:
		p.advance()
		return num(tok.Value), nil

	case TOKEN_VARIABLE:
		p.advance()
		return &Variable{Name: tok.Literal}, nil

	case TOKEN_LPAREN:
		p.advance() // consume '('
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.peek().Type != TOKEN_RPAREN {
			return nil, syntaxError("expected ')'")
		}
		p.advance() // consume ')'
		return expr, nil

	case TOKEN_HASH:
		p.advance() // consume '#'
		ref := p.peek()
		if ref.Type != TOKEN_NUMBER || !ref.Value.IsInteger() {
			return nil, syntaxError("expected line number after #")
		}
		p.advance()
		return p.lineRef(ref.Literal)

	case TOKEN_EOF:
		return nil, syntaxError("unexpected end of input")

	case TOKEN_ILLEGAL:
		return nil, syntaxError("unexpected character: " + tok.Literal)

	default:
		return nil, syntaxError("unexpected token: " + tok.Literal)
	}
}

func (p *Parser) lineRef(lit string) (Expr, error) {
	n, err := strconv.Atoi(lit)
	if err != nil || p.resolve == nil {
		return nil, &EvalError{Kind: KindUnsupported, Msg: "undefined reference #" + lit}
	}
	return p.resolve(n)
}
