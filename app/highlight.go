package main

import (
	"image/color"
	"strings"

	"ratsolve/app/algebra"
)

// TokenKind is the display category of a span of text.
type TokenKind int

const (
	TokenPlain TokenKind = iota
	TokenNumber
	TokenVariable
	TokenOperator
	TokenEquals
	TokenParen
	TokenRef
	TokenComment
	TokenIllegal
)

// Token is a span of text with a display category.
type Token struct {
	Text string
	Kind TokenKind
}

// Dark-theme palette.
var tokenColors = map[TokenKind]color.NRGBA{
	TokenPlain:    {R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF},
	TokenNumber:   {R: 0xB5, G: 0xCE, B: 0xA8, A: 0xFF}, // green
	TokenVariable: {R: 0x9C, G: 0xDB, B: 0xFE, A: 0xFF}, // light blue
	TokenOperator: {R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF},
	TokenEquals:   {R: 0xC5, G: 0x86, B: 0xC0, A: 0xFF}, // purple
	TokenParen:    {R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}, // yellow
	TokenRef:      {R: 0xCE, G: 0x91, B: 0x78, A: 0xFF}, // orange
	TokenComment:  {R: 0x6A, G: 0x99, B: 0x55, A: 0xFF},
	TokenIllegal:  {R: 0xF4, G: 0x47, B: 0x47, A: 0xFF}, // red
}

// TokenColor returns the color for a token kind.
func TokenColor(kind TokenKind) color.NRGBA {
	if c, ok := tokenColors[kind]; ok {
		return c
	}
	return tokenColors[TokenPlain]
}

func tokenKind(t algebra.TokenType) TokenKind {
	switch t {
	case algebra.TOKEN_NUMBER:
		return TokenNumber
	case algebra.TOKEN_VARIABLE:
		return TokenVariable
	case algebra.TOKEN_PLUS, algebra.TOKEN_MINUS, algebra.TOKEN_STAR, algebra.TOKEN_SLASH, algebra.TOKEN_CARET:
		return TokenOperator
	case algebra.TOKEN_LPAREN, algebra.TOKEN_RPAREN:
		return TokenParen
	case algebra.TOKEN_EQUALS:
		return TokenEquals
	case algebra.TOKEN_HASH:
		return TokenRef
	case algebra.TOKEN_ILLEGAL:
		return TokenIllegal
	default:
		return TokenPlain
	}
}

// Tokenize splits a line into highlighted spans. The line is lexed in its
// normalized form, as the solver sees it, but the spans are cut from the
// original text so they concatenate back to line exactly and the overlay
// lines up with the editor.
func Tokenize(line string) []Token {
	if line == "" {
		return nil
	}
	if algebra.IsComment(line) {
		return []Token{{Text: line, Kind: TokenComment}}
	}

	norm, origin := normalizeWithOffsets(line)
	var result []Token
	lastEnd := 0
	prevHash := false
	for _, lt := range algebra.Lex(norm) {
		if lt.Type == algebra.TOKEN_EOF {
			break
		}
		start, end := origin[lt.Pos], origin[lt.Pos+len(lt.Literal)]
		if start > lastEnd {
			result = append(result, Token{Text: line[lastEnd:start], Kind: TokenPlain})
		}

		kind := tokenKind(lt.Type)
		if prevHash && lt.Type == algebra.TOKEN_NUMBER {
			kind = TokenRef
		}
		prevHash = lt.Type == algebra.TOKEN_HASH

		result = append(result, Token{Text: line[start:end], Kind: kind})
		lastEnd = end
	}

	if lastEnd < len(line) {
		result = append(result, Token{Text: line[lastEnd:], Kind: TokenPlain})
	}
	return result
}

// normalizeWithOffsets normalizes line one rune at a time. origin[i] is the
// byte offset in line of the rune that produced byte i of the result, and
// origin[len(result)] is len(line).
func normalizeWithOffsets(line string) (string, []int) {
	var b strings.Builder
	origin := make([]int, 0, len(line)+1)
	for pos, r := range line {
		narrow := algebra.Normalize(string(r))
		b.WriteString(narrow)
		for i := 0; i < len(narrow); i++ {
			origin = append(origin, pos)
		}
	}
	origin = append(origin, len(line))
	return b.String(), origin
}
