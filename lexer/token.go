package lexer

import (
	"github.com/ava12/relex/source"
)

// Token is a recognized unit of source text.
type Token struct {
	kind string
	text string
	pos  source.Pos
}

func NewToken(kind, text string, pos source.Pos) Token {
	return Token{kind, text, pos}
}

// Kind returns the name of the pattern that produced the token.
func (t Token) Kind() string {
	return t.kind
}

// Text returns the exact matched substring.
func (t Token) Text() string {
	return t.text
}

// Pos returns the position of the first character of the token.
func (t Token) Pos() source.Pos {
	return t.pos
}
