package algebra

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Normalize folds full-width and other wide forms to their narrow ASCII
// equivalents so that input typed with a CJK keyboard lexes the same as ASCII.
func Normalize(input string) string {
	return width.Narrow.String(input)
}

// Lex tokenizes a single line of input into a slice of tokens ending in
// TOKEN_EOF. Positions are byte offsets into input. Characters the grammar
// does not know become TOKEN_ILLEGAL so the parser can report them.
func Lex(input string) []Token {
	var tokens []Token
	i := 0
	for i < len(input) {
		ch := input[i]

		// Skip whitespace, including Unicode spaces such as NBSP
		if ch == ' ' || ch == '\t' {
			i++
			continue
		}
		if r, size := utf8.DecodeRuneInString(input[i:]); unicode.IsSpace(r) {
			i += size
			continue
		}

		switch ch {
		case '+':
			tokens = append(tokens, Token{Type: TOKEN_PLUS, Literal: "+", Pos: i})
			i++
		case '-':
			tokens = append(tokens, Token{Type: TOKEN_MINUS, Literal: "-", Pos: i})
			i++
		case '*':
			if i+1 < len(input) && input[i+1] == '*' {
				tokens = append(tokens, Token{Type: TOKEN_CARET, Literal: "**", Pos: i})
				i += 2
			} else {
				tokens = append(tokens, Token{Type: TOKEN_STAR, Literal: "*", Pos: i})
				i++
			}
		case '/':
			tokens = append(tokens, Token{Type: TOKEN_SLASH, Literal: "/", Pos: i})
			i++
		case '^':
			tokens = append(tokens, Token{Type: TOKEN_CARET, Literal: "^", Pos: i})
			i++
		case '(':
			tokens = append(tokens, Token{Type: TOKEN_LPAREN, Literal: "(", Pos: i})
			i++
		case ')':
			tokens = append(tokens, Token{Type: TOKEN_RPAREN, Literal: ")", Pos: i})
			i++
		case '=':
			tokens = append(tokens, Token{Type: TOKEN_EQUALS, Literal: "=", Pos: i})
			i++
		case '#':
			tokens = append(tokens, Token{Type: TOKEN_HASH, Literal: "#", Pos: i})
			i++
		default:
			if isDigit(ch) || (ch == '.' && i+1 < len(input) && isDigit(input[i+1])) {
				start := i
				seenDot := false
				for i < len(input) && (isDigit(input[i]) || (input[i] == '.' && !seenDot)) {
					if input[i] == '.' {
						seenDot = true
					}
					i++
				}
				lit := input[start:i]
				val, ok := parseDecimal(lit)
				if !ok {
					tokens = append(tokens, Token{Type: TOKEN_ILLEGAL, Literal: lit, Pos: start})
					continue
				}
				tokens = append(tokens, Token{Type: TOKEN_NUMBER, Literal: lit, Pos: start, Value: val})
			} else if isWordStart(ch) {
				start := i
				for i < len(input) && isWordContinue(input[i]) {
					i++
				}
				tokens = append(tokens, Token{Type: TOKEN_VARIABLE, Literal: input[start:i], Pos: start})
			} else {
				_, size := utf8.DecodeRuneInString(input[i:])
				tokens = append(tokens, Token{Type: TOKEN_ILLEGAL, Literal: input[i : i+size], Pos: i})
				i += size
			}
		}
	}
	tokens = append(tokens, Token{Type: TOKEN_EOF, Literal: "", Pos: i})
	return tokens
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isWordStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isWordContinue(ch byte) bool {
	return isWordStart(ch) || isDigit(ch)
}
