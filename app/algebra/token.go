package algebra

import "fmt"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TOKEN_NUMBER TokenType = iota
	TOKEN_VARIABLE
	TOKEN_PLUS
	TOKEN_MINUS
	TOKEN_STAR
	TOKEN_SLASH
	TOKEN_CARET
	TOKEN_LPAREN
	TOKEN_RPAREN
	TOKEN_EQUALS
	TOKEN_HASH
	TOKEN_ILLEGAL
	TOKEN_EOF
)

var tokenNames = [...]string{
	TOKEN_NUMBER:   "NUMBER",
	TOKEN_VARIABLE: "VARIABLE",
	TOKEN_PLUS:     "PLUS",
	TOKEN_MINUS:    "MINUS",
	TOKEN_STAR:     "STAR",
	TOKEN_SLASH:    "SLASH",
	TOKEN_CARET:    "CARET",
	TOKEN_LPAREN:   "LPAREN",
	TOKEN_RPAREN:   "RPAREN",
	TOKEN_EQUALS:   "EQUALS",
	TOKEN_HASH:     "HASH",
	TOKEN_ILLEGAL:  "ILLEGAL",
	TOKEN_EOF:      "EOF",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token represents a single lexer token.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int      // byte offset in the normalized input
	Value   Fraction // exact value, set for TOKEN_NUMBER only
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, %d)", t.Type, t.Literal, t.Pos)
}
